package geometry

import (
	"math/rand"

	"github.com/AndreasKarg/raytracer-weekend/pkg/core"
)

// rectPadding thickens the degenerate axis of a rectangle's bounding box so
// it has nonzero volume and can be compared and unioned by the BVH.
const rectPadding = 0.0001

// XYRect is an axis-aligned rectangle in the plane z=K
type XYRect struct {
	X0, X1   float64
	Y0, Y1   float64
	K        float64
	Material core.Material
}

// NewXYRect creates a rectangle spanning [x0,x1]x[y0,y1] at z=k
func NewXYRect(x0, x1, y0, y1, k float64, material core.Material) *XYRect {
	return &XYRect{X0: x0, X1: x1, Y0: y0, Y1: y1, K: k, Material: material}
}

// Hit tests if a ray crosses the rectangle's plane inside its bounds
func (r *XYRect) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand) (*core.HitRecord, bool) {
	t := (r.K - ray.Origin.Z) / ray.Direction.Z
	if t < tMin || t > tMax {
		return nil, false
	}

	x := ray.Origin.X + t*ray.Direction.X
	y := ray.Origin.Y + t*ray.Direction.Y
	if x < r.X0 || x > r.X1 || y < r.Y0 || y > r.Y1 {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		UV:       core.NewVec2((x-r.X0)/(r.X1-r.X0), (y-r.Y0)/(r.Y1-r.Y0)),
		Material: r.Material,
	}
	hit.SetFaceNormal(ray, core.NewVec3(0, 0, 1))

	return hit, true
}

// BoundingBox returns the rectangle's slab, thickened along Z
func (r *XYRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.X0, r.Y0, r.K-rectPadding),
		core.NewVec3(r.X1, r.Y1, r.K+rectPadding),
	), true
}

// XZRect is an axis-aligned rectangle in the plane y=K
type XZRect struct {
	X0, X1   float64
	Z0, Z1   float64
	K        float64
	Material core.Material
}

// NewXZRect creates a rectangle spanning [x0,x1]x[z0,z1] at y=k
func NewXZRect(x0, x1, z0, z1, k float64, material core.Material) *XZRect {
	return &XZRect{X0: x0, X1: x1, Z0: z0, Z1: z1, K: k, Material: material}
}

// Hit tests if a ray crosses the rectangle's plane inside its bounds
func (r *XZRect) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand) (*core.HitRecord, bool) {
	t := (r.K - ray.Origin.Y) / ray.Direction.Y
	if t < tMin || t > tMax {
		return nil, false
	}

	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	if x < r.X0 || x > r.X1 || z < r.Z0 || z > r.Z1 {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		UV:       core.NewVec2((x-r.X0)/(r.X1-r.X0), (z-r.Z0)/(r.Z1-r.Z0)),
		Material: r.Material,
	}
	hit.SetFaceNormal(ray, core.NewVec3(0, 1, 0))

	return hit, true
}

// BoundingBox returns the rectangle's slab, thickened along Y
func (r *XZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.X0, r.K-rectPadding, r.Z0),
		core.NewVec3(r.X1, r.K+rectPadding, r.Z1),
	), true
}

// YZRect is an axis-aligned rectangle in the plane x=K
type YZRect struct {
	Y0, Y1   float64
	Z0, Z1   float64
	K        float64
	Material core.Material
}

// NewYZRect creates a rectangle spanning [y0,y1]x[z0,z1] at x=k
func NewYZRect(y0, y1, z0, z1, k float64, material core.Material) *YZRect {
	return &YZRect{Y0: y0, Y1: y1, Z0: z0, Z1: z1, K: k, Material: material}
}

// Hit tests if a ray crosses the rectangle's plane inside its bounds
func (r *YZRect) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand) (*core.HitRecord, bool) {
	t := (r.K - ray.Origin.X) / ray.Direction.X
	if t < tMin || t > tMax {
		return nil, false
	}

	y := ray.Origin.Y + t*ray.Direction.Y
	z := ray.Origin.Z + t*ray.Direction.Z
	if y < r.Y0 || y > r.Y1 || z < r.Z0 || z > r.Z1 {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		UV:       core.NewVec2((y-r.Y0)/(r.Y1-r.Y0), (z-r.Z0)/(r.Z1-r.Z0)),
		Material: r.Material,
	}
	hit.SetFaceNormal(ray, core.NewVec3(1, 0, 0))

	return hit, true
}

// BoundingBox returns the rectangle's slab, thickened along X
func (r *YZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.K-rectPadding, r.Y0, r.Z0),
		core.NewVec3(r.K+rectPadding, r.Y1, r.Z1),
	), true
}
