package core

import (
	"math"
	"math/rand"
)

// ONB is an orthonormal basis used to convert locally-sampled directions
// into world space.
type ONB struct {
	U, V, W Vec3
}

// NewONBFromW builds an orthonormal basis whose W axis points along w.
func NewONBFromW(w Vec3) ONB {
	w = w.Normalize()

	var a Vec3
	if math.Abs(w.X) > 0.9 {
		a = NewVec3(0, 1, 0)
	} else {
		a = NewVec3(1, 0, 0)
	}

	v := w.Cross(a).Normalize()
	u := w.Cross(v)

	return ONB{U: u, V: v, W: w}
}

// Local converts a vector expressed in basis coordinates into world space.
func (o ONB) Local(v Vec3) Vec3 {
	return o.U.Multiply(v.X).Add(o.V.Multiply(v.Y)).Add(o.W.Multiply(v.Z))
}

// RandomCosineDirection samples a cosine-weighted direction in the +Z
// hemisphere of the local frame.
func RandomCosineDirection(rng *rand.Rand) Vec3 {
	r1 := rng.Float64()
	r2 := rng.Float64()

	phi := 2 * math.Pi * r1
	sqrtR2 := math.Sqrt(r2)

	x := math.Cos(phi) * sqrtR2
	y := math.Sin(phi) * sqrtR2
	z := math.Sqrt(1 - r2)

	return NewVec3(x, y, z)
}

// RandomInUnitSphere generates a uniformly random point inside the unit sphere
func RandomInUnitSphere(rng *rand.Rand) Vec3 {
	for {
		p := NewVec3(2*rng.Float64()-1, 2*rng.Float64()-1, 2*rng.Float64()-1)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomUnitVector generates a uniformly random direction on the unit sphere
func RandomUnitVector(rng *rand.Rand) Vec3 {
	return RandomInUnitSphere(rng).Normalize()
}

// RandomInUnitDisk generates a random point in the unit disk on the XY plane
func RandomInUnitDisk(rng *rand.Rand) Vec3 {
	for {
		p := NewVec3(2*rng.Float64()-1, 2*rng.Float64()-1, 0)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomVec3 generates a vector with components uniform in [min, max)
func RandomVec3(rng *rand.Rand, min, max float64) Vec3 {
	span := max - min
	return NewVec3(
		min+span*rng.Float64(),
		min+span*rng.Float64(),
		min+span*rng.Float64(),
	)
}
