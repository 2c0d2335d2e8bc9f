package scene

import (
	"math"
	"sync"
	"testing"

	"github.com/sdaley/go-pathtracer/pkg/core"
	"github.com/sdaley/go-pathtracer/pkg/geometry"
	"github.com/sdaley/go-pathtracer/pkg/material"
	"github.com/sdaley/go-pathtracer/pkg/renderer"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"default scene", "default", false},
		{"ground scene", "ground", false},
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := CreateScene(tt.sceneType)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type %q, but got none", tt.sceneType)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type %q: %v", tt.sceneType, err)
			}
			if s == nil {
				t.Fatalf("Expected scene for valid type %q, got nil", tt.sceneType)
			}
			if len(s.World.Objects) == 0 {
				t.Error("Scene world should not be empty")
			}
			if s.CameraConfig.AspectRatio <= 0 {
				t.Errorf("Scene aspect ratio should be positive, got %f", s.CameraConfig.AspectRatio)
			}
			if s.GetCamera() == nil {
				t.Error("Scene should build a camera")
			}
		})
	}
}

func TestDefaultScene_Contents(t *testing.T) {
	s := NewDefaultScene()

	if got := len(s.World.Objects); got != 12 {
		t.Errorf("Expected 12 spheres in the default scene, got %d", got)
	}

	// Hollow glass shells: negative-radius inner spheres sharing center and
	// material with their outer sphere
	hollowPairs := 0
	for _, outer := range s.World.Objects {
		outerSphere := outer.(*geometry.Sphere)
		if outerSphere.Radius <= 0 {
			continue
		}
		for _, inner := range s.World.Objects {
			innerSphere := inner.(*geometry.Sphere)
			if innerSphere.Radius < 0 &&
				innerSphere.Center == outerSphere.Center &&
				innerSphere.Material == outerSphere.Material {
				hollowPairs++
			}
		}
	}
	if hollowPairs != 2 {
		t.Errorf("Expected 2 hollow glass shells, got %d", hollowPairs)
	}

	// Hollow shells only make physical sense with dielectric materials
	for _, object := range s.World.Objects {
		sphere := object.(*geometry.Sphere)
		if sphere.Radius < 0 {
			if _, ok := sphere.Material.(*material.Dielectric); !ok {
				t.Errorf("Negative-radius sphere at %v should be dielectric, got %T",
					sphere.Center, sphere.Material)
			}
		}
	}
}

func TestDefaultScene_SharedMaterials(t *testing.T) {
	s := NewDefaultScene()

	// Materials are shared by reference across spheres
	counts := make(map[core.Material]int)
	for _, object := range s.World.Objects {
		counts[object.(*geometry.Sphere).Material]++
	}

	shared := 0
	for _, n := range counts {
		if n > 1 {
			shared++
		}
	}
	if shared == 0 {
		t.Error("Expected at least one material shared across multiple spheres")
	}
}

func TestDefaultScene_CameraOverrides(t *testing.T) {
	s := NewDefaultScene(renderer.CameraConfig{VFov: 90})

	if s.CameraConfig.VFov != 90 {
		t.Errorf("Expected overridden VFov 90, got %f", s.CameraConfig.VFov)
	}
	if s.CameraConfig.Center != core.NewVec3(0.35, 0.5, 2) {
		t.Errorf("Expected default camera center, got %v", s.CameraConfig.Center)
	}
}

func TestGetCamera_Concurrent(t *testing.T) {
	s := NewGroundScene()

	// Render workers all fetch the camera at the start of their first tile
	const goroutines = 8
	cameras := make([]*renderer.Camera, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cameras[i] = s.GetCamera()
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		if cameras[i] != cameras[0] {
			t.Fatalf("Goroutine %d got a different camera instance", i)
		}
	}
}

func TestWorkerPoolRender_SceneShared(t *testing.T) {
	s := NewGroundScene()

	// 96x96 spans four tiles, so all four workers share the scene
	pool := renderer.NewWorkerPool(s, 96, 96, 4, 42, nil)
	pool.SetSamplingConfig(s.SamplingConfig)

	img, stats := pool.Render()
	if img == nil {
		t.Fatal("Expected a rendered image")
	}
	if stats.TotalPixels != 96*96 {
		t.Errorf("Expected %d pixels, got %d", 96*96, stats.TotalPixels)
	}
}

func TestGroundScene_HitsGroundAndSky(t *testing.T) {
	s := NewGroundScene()

	// Downward-forward ray hits geometry
	down := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, -1, -1))
	if _, isHit := s.GetWorld().Hit(down, 0.001, math.Inf(1)); !isHit {
		t.Error("Expected downward ray to hit the ground sphere")
	}

	// Upward ray escapes to the sky
	up := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 1, 0))
	if _, isHit := s.GetWorld().Hit(up, 0.001, math.Inf(1)); isHit {
		t.Error("Expected upward ray to miss all geometry")
	}

	top, bottom := s.GetBackgroundColors()
	if top != core.NewVec3(0.5, 0.7, 1.0) || bottom != core.NewVec3(1.0, 1.0, 1.0) {
		t.Errorf("Unexpected background colors: top %v, bottom %v", top, bottom)
	}
}
