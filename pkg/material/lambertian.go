package material

import (
	"math/rand"

	"github.com/AndreasKarg/raytracer-weekend/pkg/core"
)

// Lambertian is a perfectly diffuse material. Scattered directions are
// cosine-weighted around the surface normal via an orthonormal basis.
type Lambertian struct {
	Albedo Texture
}

// NewLambertian creates a diffuse material over an albedo texture
func NewLambertian(albedo Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// NewLambertianSolid creates a diffuse material with a constant albedo
func NewLambertianSolid(color core.Vec3) *Lambertian {
	return NewLambertian(NewSolidColor(color))
}

// Scatter samples a cosine-weighted direction in the hemisphere around the
// hit normal
func (l *Lambertian) Scatter(rayIn core.Ray, rec *core.HitRecord, rng *rand.Rand) (core.ScatterResult, bool) {
	basis := core.NewONBFromW(rec.Normal)
	direction := basis.Local(core.RandomCosineDirection(rng)).Normalize()

	return core.ScatterResult{
		Scattered:   core.NewRay(rec.Point, direction, rayIn.Time),
		Attenuation: l.Albedo.Value(rec.UV, rec.Point),
	}, true
}

// Emitted returns black; diffuse surfaces do not emit
func (l *Lambertian) Emitted(uv core.Vec2, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}
