package material

import (
	"math"
	"math/rand"

	"github.com/AndreasKarg/raytracer-weekend/pkg/core"
)

// Dielectric is a clear refractive material like glass. It chooses between
// reflection and refraction probabilistically using Schlick's approximation,
// and always reflects when Snell's law has no solution.
type Dielectric struct {
	RefractiveIndex float64
}

// NewDielectric creates a dielectric with the given index of refraction
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter refracts or reflects the incoming ray. Attenuation is always
// neutral; clear glass absorbs nothing.
func (d *Dielectric) Scatter(rayIn core.Ray, rec *core.HitRecord, rng *rand.Rand) (core.ScatterResult, bool) {
	refractionRatio := d.RefractiveIndex
	if rec.FrontFace {
		refractionRatio = 1.0 / d.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(rec.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || reflectance(cosTheta, refractionRatio) > rng.Float64() {
		direction = unitDirection.Reflect(rec.Normal)
	} else {
		direction = unitDirection.Refract(rec.Normal, refractionRatio)
	}

	return core.ScatterResult{
		Scattered:   core.NewRay(rec.Point, direction, rayIn.Time),
		Attenuation: core.NewVec3(1, 1, 1),
	}, true
}

// Emitted returns black; glass does not emit
func (d *Dielectric) Emitted(uv core.Vec2, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// reflectance is Schlick's approximation of the Fresnel factor
func reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
