package renderer

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/sdaley/go-pathtracer/pkg/core"
)

// tMinEpsilon is the lower intersection bound. Starting slightly above zero
// avoids self-intersection ("shadow acne") from floating-point error at the
// origin of a scattered ray.
const tMinEpsilon = 0.001

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 250,
		MaxDepth:        10,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
	GetWorld() core.Hittable
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene   Scene
	width   int
	height  int
	config  SamplingConfig
	sampler core.Sampler
}

// NewRaytracer creates a new raytracer with a deterministic default seed
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	return NewRaytracerWithSeed(scene, width, height, 42)
}

// NewRaytracerWithSeed creates a new raytracer with an explicit seed
func NewRaytracerWithSeed(scene Scene, width, height int, seed int64) *Raytracer {
	return &Raytracer{
		scene:   scene,
		width:   width,
		height:  height,
		config:  DefaultSamplingConfig(),
		sampler: core.NewRandomSampler(rand.New(rand.NewSource(seed))),
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
}

// backgroundGradient returns the sky color for a ray that escaped the scene
func (rt *Raytracer) backgroundGradient(r core.Ray) core.Vec3 {
	topColor, bottomColor := rt.scene.GetBackgroundColors()

	unitDirection := r.Direction.Normalize()

	// Map the direction's vertical component from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return bottomColor.Lerp(topColor, t)
}

// RayColor estimates the radiance along a ray. The recursive formulation
// (attenuation ⊙ RayColor(scattered, depth-1)) is expressed as an explicit
// loop with a throughput accumulator, which is mathematically equivalent and
// keeps deep bounce chains off the call stack.
func (rt *Raytracer) RayColor(r core.Ray, depth int, sampler core.Sampler) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)

	for ; depth > 0; depth-- {
		hit, isHit := rt.scene.GetWorld().Hit(r, tMinEpsilon, math.Inf(1))
		if !isHit {
			return throughput.MultiplyVec(rt.backgroundGradient(r))
		}

		scatter, didScatter := hit.Material.Scatter(r, *hit, sampler)
		if !didScatter {
			// Material absorbed the ray
			return core.Vec3{}
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		r = scatter.Scattered
	}

	// Bounce budget exhausted; no more light is gathered
	return core.Vec3{}
}

// RenderBounds renders all pixels within the given bounds into the shared
// pixel stats grid using the supplied sampler. Bounds use viewport rows
// (row 0 at the bottom of the image).
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, pixelStats [][]PixelStats, sampler core.Sampler) RenderStats {
	camera := rt.scene.GetCamera()

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			ps := &pixelStats[j][i]
			for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
				// Jitter within the pixel
				s := (float64(i) + sampler.Get1D()) / float64(rt.width)
				t := (float64(j) + sampler.Get1D()) / float64(rt.height)

				ray := camera.GetRay(s, t, sampler)
				ps.AddSample(rt.RayColor(ray, rt.config.MaxDepth, sampler))
			}
		}
	}

	return summarizeBounds(bounds, pixelStats)
}

// RenderPass renders the full image single-threaded and returns it with stats
func (rt *Raytracer) RenderPass() (*image.RGBA, RenderStats) {
	pixelStats := NewPixelStatsGrid(rt.width, rt.height)
	stats := rt.RenderBounds(image.Rect(0, 0, rt.width, rt.height), pixelStats, rt.sampler)
	return rt.assembleImage(pixelStats), stats
}

// assembleImage converts accumulated pixel stats into the final image.
// Viewport row 0 is the bottom of the image, so rows are flipped on write.
func (rt *Raytracer) assembleImage(pixelStats [][]PixelStats) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))

	for j := 0; j < rt.height; j++ {
		for i := 0; i < rt.width; i++ {
			img.SetRGBA(i, rt.height-1-j, rt.vec3ToColor(pixelStats[j][i].GetColor()))
		}
	}

	return img
}

// vec3ToColor converts a linear color to RGBA with gamma correction and clamping
func (rt *Raytracer) vec3ToColor(colorVec core.Vec3) color.RGBA {
	// Square-root tone map (gamma = 2.0)
	colorVec = colorVec.GammaCorrect(2.0)
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
