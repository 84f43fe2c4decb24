package material

import (
	"math/rand"

	"github.com/AndreasKarg/raytracer-weekend/pkg/core"
)

// DiffuseLight is a pure emitter. It never scatters, which is what makes
// light sources terminate paths; there is no separate light primitive type.
type DiffuseLight struct {
	Emit Texture
}

// NewDiffuseLight creates a light emitting the texture's color
func NewDiffuseLight(emit Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// NewDiffuseLightSolid creates a light with constant emission
func NewDiffuseLightSolid(color core.Vec3) *DiffuseLight {
	return NewDiffuseLight(NewSolidColor(color))
}

// Scatter always returns false; lights absorb incoming rays
func (dl *DiffuseLight) Scatter(rayIn core.Ray, rec *core.HitRecord, rng *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// Emitted returns the emission texture's value
func (dl *DiffuseLight) Emitted(uv core.Vec2, p core.Vec3) core.Vec3 {
	return dl.Emit.Value(uv, p)
}
