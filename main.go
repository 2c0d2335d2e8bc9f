package main

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sdaley/go-pathtracer/pkg/config"
	"github.com/sdaley/go-pathtracer/pkg/renderer"
	"github.com/sdaley/go-pathtracer/pkg/scene"
)

const version = "v1.0.0"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "go-pathtracer",
	Short: "A recursive stochastic sphere path tracer",
	Long: `go-pathtracer renders scenes of spheres with diffuse, metal and
dielectric materials via Monte Carlo path sampling.

Output format is chosen by the output file extension (.png or .ppm);
use "-" to stream PPM to stdout.`,
	Version: version,
	RunE:    runRender,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "Path to a YAML config file")
	flags.String("scene", "", "Scene to render: 'default' or 'ground'")
	flags.Int("width", 0, "Image width in pixels")
	flags.Float64("aspect-ratio", 0, "Image aspect ratio (width/height)")
	flags.Int("samples", 0, "Samples per pixel")
	flags.Int("max-depth", 0, "Maximum ray bounce depth")
	flags.Int64("seed", 0, "Base random seed")
	flags.Int("workers", -1, "Render workers (0 = one per CPU)")
	flags.StringP("output", "o", "", "Output file (.png or .ppm, '-' for stdout)")
}

// applyFlagOverrides merges explicitly set flags over the loaded config
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("scene") {
		cfg.Render.Scene, _ = flags.GetString("scene")
	}
	if flags.Changed("width") {
		cfg.Render.Width, _ = flags.GetInt("width")
	}
	if flags.Changed("aspect-ratio") {
		cfg.Render.AspectRatio, _ = flags.GetFloat64("aspect-ratio")
	}
	if flags.Changed("samples") {
		cfg.Render.SamplesPerPixel, _ = flags.GetInt("samples")
	}
	if flags.Changed("max-depth") {
		cfg.Render.MaxDepth, _ = flags.GetInt("max-depth")
	}
	if flags.Changed("seed") {
		cfg.Render.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("workers") {
		cfg.Render.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("output") {
		cfg.Render.Output, _ = flags.GetString("output")
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)

	selectedScene, err := scene.CreateScene(cfg.Render.Scene)
	if err != nil {
		return err
	}

	width := cfg.Render.Width
	height := cfg.Render.Height()
	logger.Printf("Rendering scene %q at %dx%d, %d samples, depth %d",
		cfg.Render.Scene, width, height, cfg.Render.SamplesPerPixel, cfg.Render.MaxDepth)

	pool := renderer.NewWorkerPool(selectedScene, width, height,
		cfg.Render.Workers, cfg.Render.Seed, logger)
	pool.SetSamplingConfig(renderer.SamplingConfig{
		SamplesPerPixel: cfg.Render.SamplesPerPixel,
		MaxDepth:        cfg.Render.MaxDepth,
	})

	startTime := time.Now()
	img, stats := pool.Render()
	logger.Printf("Render completed in %v (%d samples, mean luminance %.4f)",
		time.Since(startTime), stats.TotalSamples, stats.MeanLuminance)

	if err := saveImage(img, cfg.Render.Output); err != nil {
		return err
	}
	if cfg.Render.Output != "-" {
		logger.Printf("Saved %s", cfg.Render.Output)
	}
	return nil
}

// saveImage writes the image in the format implied by the output path
func saveImage(img *image.RGBA, output string) error {
	if output == "-" {
		return renderer.WritePPM(os.Stdout, img)
	}

	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(output)) {
	case ".ppm":
		return renderer.WritePPM(file, img)
	case ".png":
		return png.Encode(file, img)
	default:
		return fmt.Errorf("unsupported output format %q (use .png or .ppm)", filepath.Ext(output))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
