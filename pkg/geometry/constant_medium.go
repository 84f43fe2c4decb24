package geometry

import (
	"math"
	"math/rand"

	"github.com/AndreasKarg/raytracer-weekend/pkg/core"
)

// ConstantMedium treats its boundary as the surface of a participating
// medium with uniform density. Intersection samples a random free-flight
// distance inside the boundary, so it consumes entropy from the per-worker
// random stream and is only repeatable by replaying the same sequence.
type ConstantMedium struct {
	boundary      core.Hittable
	phase         core.Material
	negInvDensity float64
}

// NewConstantMedium wraps boundary as a medium of the given density whose
// scattering events use the supplied phase function material (normally an
// isotropic one).
func NewConstantMedium(boundary core.Hittable, density float64, phase core.Material) *ConstantMedium {
	return &ConstantMedium{
		boundary:      boundary,
		phase:         phase,
		negInvDensity: -1.0 / density,
	}
}

// Hit finds the ray's entry and exit against the boundary, then samples an
// exponential free-flight distance. No hit means the ray left the medium
// before scattering.
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand) (*core.HitRecord, bool) {
	entry, ok := m.boundary.Hit(ray, math.Inf(-1), math.Inf(1), rng)
	if !ok {
		return nil, false
	}

	exit, ok := m.boundary.Hit(ray, entry.T+0.0001, math.Inf(1), rng)
	if !ok {
		return nil, false
	}

	tEntry := math.Max(entry.T, tMin)
	tExit := math.Min(exit.T, tMax)

	if tEntry >= tExit {
		return nil, false
	}
	tEntry = math.Max(tEntry, 0)

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (tExit - tEntry) * rayLength
	hitDistance := m.negInvDensity * math.Log(rng.Float64())

	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := tEntry + hitDistance/rayLength

	return &core.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary; unused for isotropic scattering
		FrontFace: true,
		Material:  m.phase,
	}, true
}

// BoundingBox is the boundary's box
func (m *ConstantMedium) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return m.boundary.BoundingBox(time0, time1)
}
