package geometry

import (
	"github.com/sdaley/go-pathtracer/pkg/core"
)

// HittableList is an unordered collection of hittable objects.
// Insertion order is irrelevant to results but kept deterministic
// for reproducibility.
type HittableList struct {
	Objects []core.Hittable
}

// NewHittableList creates a hittable list from the given objects
func NewHittableList(objects ...core.Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends objects to the list
func (l *HittableList) Add(objects ...core.Hittable) {
	l.Objects = append(l.Objects, objects...)
}

// Clear removes all objects from the list
func (l *HittableList) Clear() {
	l.Objects = nil
}

// Hit finds the nearest intersection among all members within (tMin, tMax),
// tightening the upper bound as closer hits are found
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
