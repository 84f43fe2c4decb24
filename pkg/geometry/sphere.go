package geometry

import (
	"math"
	"math/rand"

	"github.com/AndreasKarg/raytracer-weekend/pkg/core"
)

// Sphere is a static sphere
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: material}
}

// Hit tests if a ray intersects the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand) (*core.HitRecord, bool) {
	return hitSphere(ray, tMin, tMax, s.Center, s.Radius, s.Material)
}

// BoundingBox returns the axis-aligned bounding box of the sphere
func (s *Sphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(radius), s.Center.Add(radius)), true
}

// hitSphere solves the quadratic formed by substituting the ray into the
// sphere equation, preferring the near root and falling back to the far one.
// Shared between Sphere and MovingSphere.
func hitSphere(ray core.Ray, tMin, tMax float64, center core.Vec3, radius float64, material core.Material) (*core.HitRecord, bool) {
	oc := ray.Origin.Subtract(center)

	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	hit := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: material,
	}

	outwardNormal := hit.Point.Subtract(center).Multiply(1.0 / radius)
	hit.UV = sphereUV(outwardNormal)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}

// sphereUV maps a point on the unit sphere to latitude/longitude texture
// coordinates. u is the angle around the Y axis from X=-1, v the angle from
// Y=-1 to Y=+1, both in [0,1].
func sphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi

	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}
