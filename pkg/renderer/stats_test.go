package renderer

import (
	"image"
	"math"
	"testing"

	"github.com/sdaley/go-pathtracer/pkg/core"
)

func TestPixelStats_AddSampleAndGetColor(t *testing.T) {
	ps := &PixelStats{}

	if ps.GetColor() != (core.Vec3{}) {
		t.Error("Empty pixel stats should report black")
	}

	ps.AddSample(core.NewVec3(1, 0, 0))
	ps.AddSample(core.NewVec3(0, 1, 0))

	expected := core.NewVec3(0.5, 0.5, 0)
	if ps.GetColor() != expected {
		t.Errorf("Expected averaged color %v, got %v", expected, ps.GetColor())
	}
	if ps.SampleCount != 2 {
		t.Errorf("Expected 2 samples, got %d", ps.SampleCount)
	}
}

func TestPixelStats_Variance(t *testing.T) {
	ps := &PixelStats{}
	if ps.Variance() != 0 {
		t.Error("Empty pixel stats should have zero variance")
	}

	// Identical samples have zero variance
	for i := 0; i < 10; i++ {
		ps.AddSample(core.NewVec3(0.5, 0.5, 0.5))
	}
	if ps.Variance() > 1e-12 {
		t.Errorf("Expected zero variance for identical samples, got %f", ps.Variance())
	}

	// Alternating black and white: luminance variance 0.25
	ps = &PixelStats{}
	for i := 0; i < 10; i++ {
		if i%2 == 0 {
			ps.AddSample(core.NewVec3(1, 1, 1))
		} else {
			ps.AddSample(core.Vec3{})
		}
	}
	if math.Abs(ps.Variance()-0.25) > 1e-12 {
		t.Errorf("Expected variance 0.25, got %f", ps.Variance())
	}
}

func TestSummarizeBounds(t *testing.T) {
	grid := NewPixelStatsGrid(2, 2)
	grid[0][0].AddSample(core.NewVec3(1, 1, 1)) // luminance 1
	grid[0][1].AddSample(core.Vec3{})           // luminance 0
	grid[1][0].AddSample(core.NewVec3(1, 1, 1))
	grid[1][1].AddSample(core.Vec3{})

	stats := summarizeBounds(image.Rect(0, 0, 2, 2), grid)

	if stats.TotalPixels != 4 {
		t.Errorf("Expected 4 pixels, got %d", stats.TotalPixels)
	}
	if stats.TotalSamples != 4 {
		t.Errorf("Expected 4 samples, got %d", stats.TotalSamples)
	}
	if math.Abs(stats.MeanLuminance-0.5) > 1e-12 {
		t.Errorf("Expected mean luminance 0.5, got %f", stats.MeanLuminance)
	}
	if stats.StdDevLuminance <= 0 {
		t.Errorf("Expected positive luminance stddev, got %f", stats.StdDevLuminance)
	}
}

func TestMergeRenderStats(t *testing.T) {
	parts := []RenderStats{
		{TotalPixels: 100, TotalSamples: 400, MeanLuminance: 0.2},
		{TotalPixels: 300, TotalSamples: 1200, MeanLuminance: 0.6},
	}

	merged := MergeRenderStats(parts)

	if merged.TotalPixels != 400 {
		t.Errorf("Expected 400 pixels, got %d", merged.TotalPixels)
	}
	if merged.TotalSamples != 1600 {
		t.Errorf("Expected 1600 samples, got %d", merged.TotalSamples)
	}
	if merged.AverageSamples != 4 {
		t.Errorf("Expected 4 average samples, got %f", merged.AverageSamples)
	}
	// Pixel-weighted mean: (0.2*100 + 0.6*300) / 400 = 0.5
	if math.Abs(merged.MeanLuminance-0.5) > 1e-12 {
		t.Errorf("Expected merged mean luminance 0.5, got %f", merged.MeanLuminance)
	}
}

func TestMergeRenderStats_PooledStdDev(t *testing.T) {
	grid := NewPixelStatsGrid(2, 2)
	grid[0][0].AddSample(core.NewVec3(1, 1, 1))
	grid[0][1].AddSample(core.Vec3{})
	grid[1][0].AddSample(core.NewVec3(0.5, 0.5, 0.5))
	grid[1][1].AddSample(core.NewVec3(0.25, 0.25, 0.25))

	whole := summarizeBounds(image.Rect(0, 0, 2, 2), grid)
	if whole.StdDevLuminance <= 0 {
		t.Fatalf("Expected positive whole-region stddev, got %f", whole.StdDevLuminance)
	}

	// Merging column halves reproduces the whole-region summary
	left := summarizeBounds(image.Rect(0, 0, 1, 2), grid)
	right := summarizeBounds(image.Rect(1, 0, 2, 2), grid)
	merged := MergeRenderStats([]RenderStats{left, right})

	if math.Abs(merged.MeanLuminance-whole.MeanLuminance) > 1e-12 {
		t.Errorf("Expected merged mean %f, got %f", whole.MeanLuminance, merged.MeanLuminance)
	}
	if math.Abs(merged.StdDevLuminance-whole.StdDevLuminance) > 1e-12 {
		t.Errorf("Expected merged stddev %f, got %f", whole.StdDevLuminance, merged.StdDevLuminance)
	}

	// Single-pixel parts carry zero stddev but still pool correctly
	var singles []RenderStats
	for j := 0; j < 2; j++ {
		for i := 0; i < 2; i++ {
			singles = append(singles, summarizeBounds(image.Rect(i, j, i+1, j+1), grid))
		}
	}
	merged = MergeRenderStats(singles)
	if math.Abs(merged.StdDevLuminance-whole.StdDevLuminance) > 1e-12 {
		t.Errorf("Expected pooled stddev %f from single-pixel parts, got %f",
			whole.StdDevLuminance, merged.StdDevLuminance)
	}
}
