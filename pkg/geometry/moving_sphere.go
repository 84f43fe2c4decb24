package geometry

import (
	"math/rand"

	"github.com/AndreasKarg/raytracer-weekend/pkg/core"
)

// MovingSphere is a sphere whose center moves linearly between two keyframes.
// The ray's time selects the center used for intersection, which is what
// produces motion blur when the camera jitters ray times across a shutter
// interval.
type MovingSphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         core.Material
}

// NewMovingSphere creates a sphere moving from center0 at time0 to center1 at time1
func NewMovingSphere(center0 core.Vec3, time0 float64, center1 core.Vec3, time1 float64, radius float64, material core.Material) *MovingSphere {
	return &MovingSphere{
		Center0:  center0,
		Center1:  center1,
		Time0:    time0,
		Time1:    time1,
		Radius:   radius,
		Material: material,
	}
}

// CenterAt returns the interpolated center at the given time
func (s *MovingSphere) CenterAt(time float64) core.Vec3 {
	frac := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(frac))
}

// Hit tests if a ray intersects the sphere at the ray's time
func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand) (*core.HitRecord, bool) {
	return hitSphere(ray, tMin, tMax, s.CenterAt(ray.Time), s.Radius, s.Material)
}

// BoundingBox returns the union of the boxes at both interval endpoints
func (s *MovingSphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)

	startCenter := s.CenterAt(time0)
	endCenter := s.CenterAt(time1)

	startBox := core.NewAABB(startCenter.Subtract(radius), startCenter.Add(radius))
	endBox := core.NewAABB(endCenter.Subtract(radius), endCenter.Add(radius))

	return startBox.Union(endBox), true
}
