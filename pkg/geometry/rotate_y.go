package geometry

import (
	"math"
	"math/rand"

	"github.com/AndreasKarg/raytracer-weekend/pkg/core"
)

// RotateY rotates an inner Hittable about the Y axis. Sin/cos of the angle
// and a conservative bounding box are computed once at construction; the
// rotation does not change over time.
type RotateY struct {
	inner    core.Hittable
	sinTheta float64
	cosTheta float64
	box      core.AABB
	hasBox   bool
}

// NewRotateY wraps inner rotated by angleDegrees around the Y axis
func NewRotateY(inner core.Hittable, angleDegrees float64) *RotateY {
	radians := angleDegrees * math.Pi / 180.0

	r := &RotateY{
		inner:    inner,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	if innerBox, ok := inner.BoundingBox(0, 1); ok {
		r.box = r.rotatedBox(innerBox)
		r.hasBox = true
	}

	return r
}

// rotatedBox rotates all 8 corners of the inner box and takes their
// axis-aligned extent.
func (r *RotateY) rotatedBox(box core.AABB) core.AABB {
	minCorner := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	maxCorner := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := float64(i)*box.Max.X + float64(1-i)*box.Min.X
				y := float64(j)*box.Max.Y + float64(1-j)*box.Min.Y
				z := float64(k)*box.Max.Z + float64(1-k)*box.Min.Z

				newX := r.cosTheta*x + r.sinTheta*z
				newZ := -r.sinTheta*x + r.cosTheta*z

				minCorner.X = math.Min(minCorner.X, newX)
				minCorner.Y = math.Min(minCorner.Y, y)
				minCorner.Z = math.Min(minCorner.Z, newZ)

				maxCorner.X = math.Max(maxCorner.X, newX)
				maxCorner.Y = math.Max(maxCorner.Y, y)
				maxCorner.Z = math.Max(maxCorner.Z, newZ)
			}
		}
	}

	return core.NewAABB(minCorner, maxCorner)
}

// Hit rotates the ray into the inner object's local space, delegates, then
// rotates the resulting point and normal back to world space.
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand) (*core.HitRecord, bool) {
	origin := core.NewVec3(
		r.cosTheta*ray.Origin.X-r.sinTheta*ray.Origin.Z,
		ray.Origin.Y,
		r.sinTheta*ray.Origin.X+r.cosTheta*ray.Origin.Z,
	)
	direction := core.NewVec3(
		r.cosTheta*ray.Direction.X-r.sinTheta*ray.Direction.Z,
		ray.Direction.Y,
		r.sinTheta*ray.Direction.X+r.cosTheta*ray.Direction.Z,
	)

	rotatedRay := core.NewRay(origin, direction, ray.Time)

	hit, ok := r.inner.Hit(rotatedRay, tMin, tMax, rng)
	if !ok {
		return nil, false
	}

	outwardNormal := hit.Normal
	if !hit.FrontFace {
		outwardNormal = outwardNormal.Negate()
	}

	hit.Point = core.NewVec3(
		r.cosTheta*hit.Point.X+r.sinTheta*hit.Point.Z,
		hit.Point.Y,
		-r.sinTheta*hit.Point.X+r.cosTheta*hit.Point.Z,
	)
	rotatedNormal := core.NewVec3(
		r.cosTheta*outwardNormal.X+r.sinTheta*outwardNormal.Z,
		outwardNormal.Y,
		-r.sinTheta*outwardNormal.X+r.cosTheta*outwardNormal.Z,
	)
	// Both the direction and the normal are back in world space here, so the
	// face orientation comes from the original ray.
	hit.SetFaceNormal(ray, rotatedNormal)

	return hit, true
}

// BoundingBox returns the conservative box memoized at construction
func (r *RotateY) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return r.box, r.hasBox
}
