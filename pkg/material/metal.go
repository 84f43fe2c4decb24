package material

import (
	"math/rand"

	"github.com/AndreasKarg/raytracer-weekend/pkg/core"
)

// Metal reflects rays about the surface normal, optionally perturbed by a
// fuzz factor. Fuzz of 0 is a perfect mirror; 1 is maximally rough.
type Metal struct {
	Albedo core.Vec3
	Fuzz   float64
}

// NewMetal creates a metal material, clamping fuzz to [0, 1]
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	if fuzz < 0 {
		fuzz = 0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter mirrors the incoming direction and perturbs it by a random point
// in a fuzz-scaled unit sphere. Rays perturbed below the surface are
// absorbed.
func (m *Metal) Scatter(rayIn core.Ray, rec *core.HitRecord, rng *rand.Rand) (core.ScatterResult, bool) {
	reflected := rayIn.Direction.Normalize().Reflect(rec.Normal)

	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(rng).Multiply(m.Fuzz))
	}

	scattered := core.NewRay(rec.Point, reflected, rayIn.Time)
	if scattered.Direction.Dot(rec.Normal) <= 0 {
		return core.ScatterResult{}, false
	}

	return core.ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo,
	}, true
}

// Emitted returns black; metals do not emit
func (m *Metal) Emitted(uv core.Vec2, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}
