package core

import (
	"math"
	"math/rand"
	"testing"
)

// bruteForceHit is an independent reference intersection test: it clips the
// ray against each axis' plane pair, handling zero direction components
// explicitly instead of relying on infinities.
func bruteForceHit(box AABB, ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)
		lo := box.Min.Axis(axis)
		hi := box.Max.Axis(axis)

		if direction == 0 {
			if origin < lo || origin > hi {
				return false
			}
			continue
		}

		t0 := (lo - origin) / direction
		t1 := (hi - origin) / direction
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		tMin = math.Max(tMin, t0)
		tMax = math.Min(tMax, t1)
		if tMax <= tMin {
			return false
		}
	}

	return true
}

func TestAABB_Hit_Basic(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name      string
		ray       Ray
		expectHit bool
	}{
		{
			name:      "straight through center",
			ray:       NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1), 0),
			expectHit: true,
		},
		{
			name:      "parallel miss",
			ray:       NewRay(NewVec3(0, 5, 5), NewVec3(0, 0, -1), 0),
			expectHit: false,
		},
		{
			name:      "pointing away",
			ray:       NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, 1), 0),
			expectHit: false,
		},
		{
			name:      "diagonal through corner region",
			ray:       NewRay(NewVec3(3, 3, 3), NewVec3(-1, -1, -1), 0),
			expectHit: true,
		},
		{
			name:      "zero direction component inside slab",
			ray:       NewRay(NewVec3(0.5, 0, 5), NewVec3(0, 0, -1), 0),
			expectHit: true,
		},
		{
			name:      "zero direction component outside slab",
			ray:       NewRay(NewVec3(2, 0, 5), NewVec3(0, 0, -1), 0),
			expectHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, 0.001, math.Inf(1)); got != tt.expectHit {
				t.Errorf("Expected hit=%t, got %t", tt.expectHit, got)
			}
		})
	}
}

func TestAABB_Hit_AgreesWithBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 2000; i++ {
		min := RandomVec3(rng, -5, 5)
		box := NewAABB(min, min.Add(RandomVec3(rng, 0.01, 5)))

		origin := RandomVec3(rng, -10, 10)
		direction := RandomVec3(rng, -1, 1)
		if direction.NearZero() {
			continue
		}
		ray := NewRay(origin, direction, 0)

		got := box.Hit(ray, 0.001, math.Inf(1))
		want := bruteForceHit(box, ray, 0.001, math.Inf(1))
		if got != want {
			t.Fatalf("Case %d: slab test returned %t, brute force returned %t (box %v-%v, ray %v -> %v)",
				i, got, want, box.Min, box.Max, origin, direction)
		}
	}
}

func TestAABB_Union(t *testing.T) {
	a := NewAABB(NewVec3(-1, 0, 0), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(0, -2, 0.5), NewVec3(3, 0.5, 0.6))

	union := a.Union(b)
	expected := NewAABB(NewVec3(-1, -2, 0), NewVec3(3, 1, 1))

	if !vecEquals(union.Min, expected.Min, tolerance) || !vecEquals(union.Max, expected.Max, tolerance) {
		t.Errorf("Expected union %v-%v, got %v-%v", expected.Min, expected.Max, union.Min, union.Max)
	}

	if !union.Contains(a) || !union.Contains(b) {
		t.Error("Union must contain both inputs")
	}
}

func TestAABB_FromPoints(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(1, 5, -2), NewVec3(-3, 0, 4), NewVec3(2, 2, 2))

	if !vecEquals(box.Min, NewVec3(-3, 0, -2), tolerance) {
		t.Errorf("Expected min (-3,0,-2), got %v", box.Min)
	}
	if !vecEquals(box.Max, NewVec3(2, 5, 4), tolerance) {
		t.Errorf("Expected max (2,5,4), got %v", box.Max)
	}
}
