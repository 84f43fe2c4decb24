package material

import (
	"math"
	"math/rand"

	"github.com/AndreasKarg/raytracer-weekend/pkg/core"
)

const perlinPointCount = 256

// Perlin is a coherent gradient-noise field over a fixed-size random
// permutation table. Built once at scene-generation time, read-only after.
type Perlin struct {
	gradients [perlinPointCount]core.Vec3
	permX     [perlinPointCount]int
	permY     [perlinPointCount]int
	permZ     [perlinPointCount]int
}

// NewPerlin builds the gradient and permutation tables from the given
// random source, so a fixed seed reproduces the same field.
func NewPerlin(rng *rand.Rand) *Perlin {
	p := &Perlin{}

	for i := range p.gradients {
		p.gradients[i] = core.RandomVec3(rng, -1, 1).Normalize()
	}

	generatePerm(rng, &p.permX)
	generatePerm(rng, &p.permY)
	generatePerm(rng, &p.permZ)

	return p
}

func generatePerm(rng *rand.Rand, perm *[perlinPointCount]int) {
	for i := range perm {
		perm[i] = i
	}
	for i := perlinPointCount - 1; i > 0; i-- {
		target := rng.Intn(i)
		perm[i], perm[target] = perm[target], perm[i]
	}
}

// Noise evaluates the gradient noise field at p, in roughly [-1, 1].
func (pl *Perlin) Noise(p core.Vec3) float64 {
	u := p.X - math.Floor(p.X)
	v := p.Y - math.Floor(p.Y)
	w := p.Z - math.Floor(p.Z)

	i := int(math.Floor(p.X))
	j := int(math.Floor(p.Y))
	k := int(math.Floor(p.Z))

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				hash := pl.permX[(i+di)&255] ^ pl.permY[(j+dj)&255] ^ pl.permZ[(k+dk)&255]
				c[di][dj][dk] = pl.gradients[hash]
			}
		}
	}

	return perlinInterp(c, u, v, w)
}

// Turbulence sums several octaves of noise with halving weights.
func (pl *Perlin) Turbulence(p core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0

	for i := 0; i < depth; i++ {
		accum += weight * pl.Noise(p)
		weight *= 0.5
		p = p.Multiply(2)
	}

	return math.Abs(accum)
}

// perlinInterp trilinearly interpolates the gradient contributions with a
// Hermite fade applied to the cell-local coordinates.
func perlinInterp(c [2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}

	return accum
}

// Noise is a marble-like procedural texture: a sinusoid of position
// modulated by several octaves of Perlin turbulence, remapped into [0,1].
type Noise struct {
	Perlin *Perlin
	Scale  float64
}

// NewNoise creates a noise texture over the given Perlin field
func NewNoise(perlin *Perlin, scale float64) *Noise {
	return &Noise{Perlin: perlin, Scale: scale}
}

// Value evaluates the marbled pattern at p
func (n *Noise) Value(uv core.Vec2, p core.Vec3) core.Vec3 {
	brightness := 0.5 * (1 + math.Sin(n.Scale*p.Z+10*n.Perlin.Turbulence(p, 7)))
	return core.NewVec3(1, 1, 1).Multiply(brightness)
}
