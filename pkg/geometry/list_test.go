package geometry

import (
	"math"
	"testing"

	"github.com/sdaley/go-pathtracer/pkg/core"
)

func TestHittableList_NearestHit(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, -2), 0.5, nil)
	far := NewSphere(core.NewVec3(0, 0, -5), 0.5, nil)

	// Insertion order must not matter: only the nearest hit does
	tests := []struct {
		name string
		list *HittableList
	}{
		{"near first", NewHittableList(near, far)},
		{"far first", NewHittableList(far, near)},
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := tt.list.Hit(ray, 0.001, math.Inf(1))
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-1.5) > 1e-9 {
				t.Errorf("Expected nearest hit at t=1.5, got t=%f", hit.T)
			}
		})
	}
}

func TestHittableList_NoFalseHits(t *testing.T) {
	list := NewHittableList(
		NewSphere(core.NewVec3(0, 0, -2), 0.5, nil),
		NewSphere(core.NewVec3(0, -1000.5, -1), 1000, nil),
	)

	// Aimed away from all geometry
	ray := core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, 1, 0))

	if hit, isHit := list.Hit(ray, 0.001, math.Inf(1)); isHit {
		t.Errorf("Expected no hit for ray aimed away from geometry, got hit at t=%f", hit.T)
	}

	// Each member individually reports no hit as well
	for i, object := range list.Objects {
		if _, isHit := object.Hit(ray, 0.001, math.Inf(1)); isHit {
			t.Errorf("Expected no hit for object %d", i)
		}
	}
}

func TestHittableList_Empty(t *testing.T) {
	list := NewHittableList()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, isHit := list.Hit(ray, 0.001, math.Inf(1)); isHit {
		t.Error("Expected no hit in an empty list")
	}
}

func TestHittableList_AddAndClear(t *testing.T) {
	list := NewHittableList()
	list.Add(NewSphere(core.NewVec3(0, 0, -2), 0.5, nil))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, isHit := list.Hit(ray, 0.001, math.Inf(1)); !isHit {
		t.Error("Expected hit after Add")
	}

	list.Clear()
	if _, isHit := list.Hit(ray, 0.001, math.Inf(1)); isHit {
		t.Error("Expected no hit after Clear")
	}
}
