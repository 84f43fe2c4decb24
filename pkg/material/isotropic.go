package material

import (
	"math/rand"

	"github.com/AndreasKarg/raytracer-weekend/pkg/core"
)

// Isotropic scatters uniformly in all directions. It is the phase function
// used inside participating media.
type Isotropic struct {
	Albedo Texture
}

// NewIsotropic creates an isotropic phase function over an albedo texture
func NewIsotropic(albedo Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter picks a uniformly random direction in the unit sphere
func (i *Isotropic) Scatter(rayIn core.Ray, rec *core.HitRecord, rng *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{
		Scattered:   core.NewRay(rec.Point, core.RandomInUnitSphere(rng), rayIn.Time),
		Attenuation: i.Albedo.Value(rec.UV, rec.Point),
	}, true
}

// Emitted returns black; media scatter, they do not emit
func (i *Isotropic) Emitted(uv core.Vec2, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}
