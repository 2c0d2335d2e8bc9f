package scene

import (
	"fmt"
	"sync"

	"github.com/sdaley/go-pathtracer/pkg/core"
	"github.com/sdaley/go-pathtracer/pkg/geometry"
	"github.com/sdaley/go-pathtracer/pkg/renderer"
)

// Scene holds everything needed to render: world geometry, camera and
// background. Built once before rendering and read-only afterwards, so it is
// safe to share across render workers.
type Scene struct {
	CameraConfig   renderer.CameraConfig
	SamplingConfig renderer.SamplingConfig
	World          *geometry.HittableList
	TopColor       core.Vec3 // Background gradient sky color
	BottomColor    core.Vec3 // Background gradient horizon color

	cameraOnce sync.Once
	camera     *renderer.Camera
}

// NewScene creates an empty scene with the given camera configuration and
// the standard white-to-sky-blue background
func NewScene(cameraConfig renderer.CameraConfig) *Scene {
	return &Scene{
		CameraConfig:   cameraConfig,
		SamplingConfig: renderer.DefaultSamplingConfig(),
		World:          geometry.NewHittableList(),
		TopColor:       core.NewVec3(0.5, 0.7, 1.0),
		BottomColor:    core.NewVec3(1.0, 1.0, 1.0),
	}
}

// GetCamera returns the scene's camera, building it on first use. Render
// workers call this concurrently, so the build is guarded.
func (s *Scene) GetCamera() *renderer.Camera {
	s.cameraOnce.Do(func() {
		s.camera = renderer.NewCamera(s.CameraConfig)
	})
	return s.camera
}

// GetBackgroundColors returns the background gradient colors
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}

// GetWorld returns the scene's geometry aggregate
func (s *Scene) GetWorld() core.Hittable {
	return s.World
}

// CreateScene builds a named scene
func CreateScene(name string) (*Scene, error) {
	switch name {
	case "default":
		return NewDefaultScene(), nil
	case "ground":
		return NewGroundScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %s", name)
	}
}
