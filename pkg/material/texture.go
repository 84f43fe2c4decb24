package material

import (
	"math"

	"github.com/AndreasKarg/raytracer-weekend/pkg/core"
)

// Texture maps a surface coordinate and a world-space position to a color.
// Implementations are pure functions over immutable backing data, so they
// are safe for unsynchronized concurrent reads.
type Texture interface {
	Value(uv core.Vec2, p core.Vec3) core.Vec3
}

// SolidColor is a uniform color texture
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a solid color texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// NewSolidColorRGB creates a solid color texture from components
func NewSolidColorRGB(r, g, b float64) *SolidColor {
	return NewSolidColor(core.NewVec3(r, g, b))
}

// Value returns the color regardless of UV or position
func (s *SolidColor) Value(uv core.Vec2, p core.Vec3) core.Vec3 {
	return s.Color
}

// Checker alternates between two sub-textures in a 3D checker pattern driven
// by the sign of a product of sine waves of the world-space position.
type Checker struct {
	Even, Odd Texture
	Frequency float64
}

// NewChecker creates a checker texture with the given spatial frequency
func NewChecker(even, odd Texture, frequency float64) *Checker {
	return &Checker{Even: even, Odd: odd, Frequency: frequency}
}

// Value selects between the two sub-textures based on position
func (c *Checker) Value(uv core.Vec2, p core.Vec3) core.Vec3 {
	sines := math.Sin(c.Frequency*p.X) * math.Sin(c.Frequency*p.Y) * math.Sin(c.Frequency*p.Z)
	if sines < 0 {
		return c.Odd.Value(uv, p)
	}
	return c.Even.Value(uv, p)
}

// UVDebug visualizes surface coordinates: u maps to red, v to green.
type UVDebug struct{}

// NewUVDebug creates a UV visualization texture
func NewUVDebug() *UVDebug {
	return &UVDebug{}
}

// Value returns the UV coordinates as a color
func (u *UVDebug) Value(uv core.Vec2, p core.Vec3) core.Vec3 {
	return core.NewVec3(uv.U, uv.V, 0)
}
