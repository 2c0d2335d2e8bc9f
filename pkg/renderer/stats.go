package renderer

import (
	"image"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/sdaley/go-pathtracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int     // Total number of pixels rendered
	TotalSamples    int     // Total number of samples taken
	AverageSamples  float64 // Average samples per pixel
	MeanLuminance   float64 // Mean pixel luminance across the region
	StdDevLuminance float64 // Standard deviation of pixel luminance
}

// PixelStats tracks sampling statistics for a single pixel
type PixelStats struct {
	ColorAccum       core.Vec3 // RGB accumulator for the final result
	LuminanceAccum   float64   // Luminance accumulator
	LuminanceSqAccum float64   // Luminance squared, for per-pixel variance
	SampleCount      int       // Number of samples taken
}

// NewPixelStatsGrid allocates a width x height stats grid indexed [row][col]
func NewPixelStatsGrid(width, height int) [][]PixelStats {
	grid := make([][]PixelStats, height)
	for j := range grid {
		grid[j] = make([]PixelStats, width)
	}
	return grid
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	luminance := color.Luminance()
	ps.LuminanceAccum += luminance
	ps.LuminanceSqAccum += luminance * luminance
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// Variance returns the sample variance of this pixel's luminance
func (ps *PixelStats) Variance() float64 {
	if ps.SampleCount == 0 {
		return 0
	}
	mean := ps.LuminanceAccum / float64(ps.SampleCount)
	meanSq := ps.LuminanceSqAccum / float64(ps.SampleCount)
	return math.Max(0, meanSq-mean*mean)
}

// summarizeBounds computes region statistics over accumulated pixel stats
func summarizeBounds(bounds image.Rectangle, pixelStats [][]PixelStats) RenderStats {
	luminances := make([]float64, 0, bounds.Dx()*bounds.Dy())
	totalSamples := 0

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			ps := &pixelStats[j][i]
			luminances = append(luminances, ps.GetColor().Luminance())
			totalSamples += ps.SampleCount
		}
	}

	stats := RenderStats{
		TotalPixels:  len(luminances),
		TotalSamples: totalSamples,
	}
	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(totalSamples) / float64(stats.TotalPixels)
		stats.MeanLuminance = stat.Mean(luminances, nil)
	}
	if stats.TotalPixels > 1 {
		stats.StdDevLuminance = stat.StdDev(luminances, nil)
	}
	return stats
}

// MergeRenderStats combines statistics from independently rendered regions.
// The merged standard deviation is pooled from each part's mean and stddev,
// so it matches what a single summary over the union would report.
func MergeRenderStats(parts []RenderStats) RenderStats {
	merged := RenderStats{}
	sumLum := 0.0
	sumLumSq := 0.0

	for _, part := range parts {
		n := float64(part.TotalPixels)
		merged.TotalPixels += part.TotalPixels
		merged.TotalSamples += part.TotalSamples
		sumLum += part.MeanLuminance * n
		// Recover the part's luminance sum of squares from its unbiased stddev
		if part.TotalPixels > 0 {
			variance := part.StdDevLuminance * part.StdDevLuminance
			sumLumSq += variance*(n-1) + n*part.MeanLuminance*part.MeanLuminance
		}
	}
	if merged.TotalPixels > 0 {
		merged.AverageSamples = float64(merged.TotalSamples) / float64(merged.TotalPixels)
		merged.MeanLuminance = sumLum / float64(merged.TotalPixels)
	}
	if merged.TotalPixels > 1 {
		n := float64(merged.TotalPixels)
		variance := (sumLumSq - n*merged.MeanLuminance*merged.MeanLuminance) / (n - 1)
		merged.StdDevLuminance = math.Sqrt(math.Max(0, variance))
	}
	return merged
}
