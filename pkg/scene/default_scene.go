package scene

import (
	"github.com/sdaley/go-pathtracer/pkg/core"
	"github.com/sdaley/go-pathtracer/pkg/geometry"
	"github.com/sdaley/go-pathtracer/pkg/material"
	"github.com/sdaley/go-pathtracer/pkg/renderer"
)

// NewDefaultScene creates the default sphere showcase: a large ground
// sphere, a lambertian centerpiece, hollow glass doublets and an assortment
// of metals at varying fuzz
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(0.35, 0.5, 2),
		LookAt:        core.NewVec3(0, 0, -0.75),
		Up:            core.NewVec3(0, 1.75, 0),
		AspectRatio:   16.0 / 9.0,
		VFov:          40.0,
		Aperture:      0.075,
		FocusDistance: 0.0, // Auto-focus on the look-at point
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := NewScene(cameraConfig)

	// Materials, shared across spheres
	lambertianGround := material.NewLambertian(core.NewVec3(0.3, 0.0, 0.4))
	lambertianPink := material.NewLambertian(core.NewVec3(0.9, 0.1, 0.6))
	glass := material.NewDielectric(1.5)
	metalSilver := material.NewMetal(core.NewVec3(0.7, 0.7, 0.7), 0.2)
	metalFuzzy := material.NewMetal(core.NewVec3(0.7, 0.7, 0.7), 0.9)
	metalBronze := material.NewMetal(core.NewVec3(0.8, 0.45, 0.3), 0.6)
	metalRed := material.NewMetal(core.NewVec3(1.0, 0.0, 0.0), 0.1)

	s.World.Add(
		// Ground
		geometry.NewSphere(core.NewVec3(0, -1000.5, -1), 1000, lambertianGround),
		// Middle lambertian sphere
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, lambertianPink),
		// Left hollow glass shell (negative inner radius) with a bronze core
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.49, glass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.2, metalBronze),
		// Right metal sphere
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, metalSilver),
		// Small solid glass sphere
		geometry.NewSphere(core.NewVec3(-1.2, -0.3, -0.3), 0.2, glass),
		// Small hollow glass sphere
		geometry.NewSphere(core.NewVec3(-0.6, -0.3, -0.3), 0.2, glass),
		geometry.NewSphere(core.NewVec3(-0.6, -0.3, -0.3), -0.19, glass),
		// Small metal spheres
		geometry.NewSphere(core.NewVec3(0, -0.3, -0.3), 0.2, metalFuzzy),
		geometry.NewSphere(core.NewVec3(0.6, -0.3, -0.3), 0.2, metalRed),
		geometry.NewSphere(core.NewVec3(1.2, -0.3, -0.3), 0.2, metalBronze),
	)

	return s
}

// NewGroundScene creates a minimal two-sphere scene: a large ground sphere
// and one lambertian sphere. Useful for smoke tests and quick renders.
func NewGroundScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:      core.NewVec3(0, 0, 1),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 1.0,
		VFov:        60.0,
		Aperture:    0.0,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := NewScene(cameraConfig)
	s.SamplingConfig = renderer.SamplingConfig{
		SamplesPerPixel: 4,
		MaxDepth:        5,
	}

	s.World.Add(
		geometry.NewSphere(core.NewVec3(0, -1000.5, -1), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.9, 0.1, 0.6))),
	)

	return s
}
