package core

import "math"

// AABB is an axis-aligned bounding box. Invariant: Min <= Max component-wise.
type AABB struct {
	Min Vec3
	Max Vec3
}

// NewAABB creates a new AABB from min and max corners
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	minCorner := points[0]
	maxCorner := points[0]

	for _, point := range points[1:] {
		minCorner.X = math.Min(minCorner.X, point.X)
		minCorner.Y = math.Min(minCorner.Y, point.Y)
		minCorner.Z = math.Min(minCorner.Z, point.Z)

		maxCorner.X = math.Max(maxCorner.X, point.X)
		maxCorner.Y = math.Max(maxCorner.Y, point.Y)
		maxCorner.Z = math.Max(maxCorner.Z, point.Z)
	}

	return AABB{Min: minCorner, Max: maxCorner}
}

// Hit tests the ray against the box with the slab method, restricted to the
// parametric interval [tMin, tMax]. A zero direction component produces
// signed infinities, which the comparisons below handle without any explicit
// special case.
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		invD := 1.0 / ray.Direction.Axis(axis)
		t0 := (aabb.Min.Axis(axis) - ray.Origin.Axis(axis)) * invD
		t1 := (aabb.Max.Axis(axis) - ray.Origin.Axis(axis)) * invD

		if invD < 0 {
			t0, t1 = t1, t0
		}

		tMin = math.Max(tMin, t0)
		tMax = math.Min(tMax, t1)

		if tMax <= tMin {
			return false
		}
	}

	return true
}

// Union returns the smallest AABB containing both this box and another
func (aabb AABB) Union(other AABB) AABB {
	small := Vec3{
		X: math.Min(aabb.Min.X, other.Min.X),
		Y: math.Min(aabb.Min.Y, other.Min.Y),
		Z: math.Min(aabb.Min.Z, other.Min.Z),
	}
	big := Vec3{
		X: math.Max(aabb.Max.X, other.Max.X),
		Y: math.Max(aabb.Max.Y, other.Max.Y),
		Z: math.Max(aabb.Max.Z, other.Max.Z),
	}
	return AABB{Min: small, Max: big}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the extent of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// IsValid returns true if min <= max on all axes
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}

// Contains reports whether other fits entirely inside this box
func (aabb AABB) Contains(other AABB) bool {
	return aabb.Min.X <= other.Min.X && aabb.Min.Y <= other.Min.Y && aabb.Min.Z <= other.Min.Z &&
		aabb.Max.X >= other.Max.X && aabb.Max.Y >= other.Max.Y && aabb.Max.Z >= other.Max.Z
}

// Expand returns an AABB grown by the given amount in all directions
func (aabb AABB) Expand(amount float64) AABB {
	expansion := NewVec3(amount, amount, amount)
	return AABB{
		Min: aabb.Min.Subtract(expansion),
		Max: aabb.Max.Add(expansion),
	}
}
