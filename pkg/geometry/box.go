package geometry

import (
	"math/rand"

	"github.com/AndreasKarg/raytracer-weekend/pkg/core"
)

// Box is an axis-aligned cuboid built from six rectangles sharing one
// material.
type Box struct {
	Min, Max core.Vec3
	sides    *HittableList
}

// NewBox creates a box spanning the corners p0 (min) and p1 (max)
func NewBox(p0, p1 core.Vec3, material core.Material) *Box {
	sides := NewHittableList(
		NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p1.Z, material),
		NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p0.Z, material),
		NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p1.Y, material),
		NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p0.Y, material),
		NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p1.X, material),
		NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p0.X, material),
	)

	return &Box{Min: p0, Max: p1, sides: sides}
}

// Hit delegates to the six faces
func (b *Box) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand) (*core.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax, rng)
}

// BoundingBox returns the corner-to-corner box directly
func (b *Box) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}
