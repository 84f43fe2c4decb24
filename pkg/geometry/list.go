package geometry

import (
	"math/rand"

	"github.com/AndreasKarg/raytracer-weekend/pkg/core"
)

// HittableList is a plain unordered collection of Hittables. It serves both
// as a simple scene container and as the raw input to BVH construction.
type HittableList struct {
	Objects []core.Hittable
}

// NewHittableList creates a list from the given objects
func NewHittableList(objects ...core.Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends objects to the list
func (l *HittableList) Add(objects ...core.Hittable) {
	l.Objects = append(l.Objects, objects...)
}

// Hit tests every member sequentially, narrowing the search interval to the
// closest hit found so far.
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, ok := object.Hit(ray, tMin, closestSoFar, rng); ok {
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union of all members' boxes. It reports false for
// an empty list or when any member is unbounded.
func (l *HittableList) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if len(l.Objects) == 0 {
		return core.AABB{}, false
	}

	var box core.AABB
	first := true

	for _, object := range l.Objects {
		objectBox, ok := object.BoundingBox(time0, time1)
		if !ok {
			return core.AABB{}, false
		}
		if first {
			box = objectBox
			first = false
		} else {
			box = box.Union(objectBox)
		}
	}

	return box, true
}
