package core

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func vecEquals(a, b Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

func TestVec3_BasicArithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	if got := a.Add(b); !vecEquals(got, NewVec3(5, -3, 9), tolerance) {
		t.Errorf("Add: expected (5,-3,9), got %v", got)
	}
	if got := a.Subtract(b); !vecEquals(got, NewVec3(-3, 7, -3), tolerance) {
		t.Errorf("Subtract: expected (-3,7,-3), got %v", got)
	}
	if got := a.Multiply(2); !vecEquals(got, NewVec3(2, 4, 6), tolerance) {
		t.Errorf("Multiply: expected (2,4,6), got %v", got)
	}
	if got := a.MultiplyVec(b); !vecEquals(got, NewVec3(4, -10, 18), tolerance) {
		t.Errorf("MultiplyVec: expected (4,-10,18), got %v", got)
	}
	if got := a.Dot(b); math.Abs(got-12) > tolerance {
		t.Errorf("Dot: expected 12, got %f", got)
	}
}

func TestVec3_CrossIsOrthogonal(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(-2, 0.5, 4)

	cross := a.Cross(b)
	if math.Abs(cross.Dot(a)) > tolerance || math.Abs(cross.Dot(b)) > tolerance {
		t.Errorf("Cross product %v is not orthogonal to its inputs", cross)
	}

	if got := NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)); !vecEquals(got, NewVec3(0, 0, 1), tolerance) {
		t.Errorf("x cross y: expected (0,0,1), got %v", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()

	if math.Abs(v.Length()-1) > tolerance {
		t.Errorf("Expected unit length, got %f", v.Length())
	}
	if !vecEquals(v, NewVec3(0.6, 0.8, 0), tolerance) {
		t.Errorf("Expected (0.6,0.8,0), got %v", v)
	}
}

func TestVec3_Axis(t *testing.T) {
	v := NewVec3(1, 2, 3)
	for axis, expected := range []float64{1, 2, 3} {
		if got := v.Axis(axis); got != expected {
			t.Errorf("Axis(%d): expected %f, got %f", axis, expected, got)
		}
	}
}

func TestVec3_NearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("Expected tiny vector to be near zero")
	}
	if NewVec3(0.1, 0, 0).NearZero() {
		t.Error("Expected non-degenerate vector to not be near zero")
	}
}

func TestVec3_Reflect(t *testing.T) {
	incoming := NewVec3(1, -1, 0)
	normal := NewVec3(0, 1, 0)

	if got := incoming.Reflect(normal); !vecEquals(got, NewVec3(1, 1, 0), tolerance) {
		t.Errorf("Expected mirror reflection (1,1,0), got %v", got)
	}
}

func TestVec3_RefractStraightThrough(t *testing.T) {
	// Index-matched media must not bend the ray.
	incoming := NewVec3(1, -2, 0.5).Normalize()
	normal := NewVec3(0, 1, 0)

	refracted := incoming.Refract(normal, 1.0)
	if !vecEquals(refracted, incoming, 1e-6) {
		t.Errorf("Expected unchanged direction %v, got %v", incoming, refracted)
	}
}
