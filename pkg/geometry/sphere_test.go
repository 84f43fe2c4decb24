package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/AndreasKarg/raytracer-weekend/pkg/core"
)

const tolerance = 1e-9

// testMaterial is an inert material for geometry tests.
type testMaterial struct{}

func (testMaterial) Scatter(_ core.Ray, _ *core.HitRecord, _ *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

func (testMaterial) Emitted(_ core.Vec2, _ core.Vec3) core.Vec3 {
	return core.Vec3{}
}

func testRng() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func vecEquals(a, b core.Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

func TestSphere_Hit_RoundTrip(t *testing.T) {
	// A ray from (0,0,5) toward the origin must hit a radius-r sphere at
	// z=r with t=5-r and an outward normal along +Z.
	for _, radius := range []float64{0.5, 1.0, 2.0} {
		sphere := NewSphere(core.Vec3{}, radius, testMaterial{})
		ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 0)

		hit, ok := sphere.Hit(ray, 0.001, math.Inf(1), testRng())
		if !ok {
			t.Fatalf("radius %f: expected hit, got miss", radius)
		}

		if math.Abs(hit.T-(5-radius)) > tolerance {
			t.Errorf("radius %f: expected t=%f, got t=%f", radius, 5-radius, hit.T)
		}
		if !vecEquals(hit.Point, core.NewVec3(0, 0, radius), tolerance) {
			t.Errorf("radius %f: expected point (0,0,%f), got %v", radius, radius, hit.Point)
		}
		if !vecEquals(hit.Normal, core.NewVec3(0, 0, 1), tolerance) {
			t.Errorf("radius %f: expected normal (0,0,1), got %v", radius, hit.Normal)
		}
		if !hit.FrontFace {
			t.Errorf("radius %f: expected front face hit", radius)
		}
	}
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.Vec3{}, 1.0, testMaterial{})
	ray := core.NewRay(core.NewVec3(3, 0, 5), core.NewVec3(0, 0, -1), 0)

	if hit, ok := sphere.Hit(ray, 0.001, math.Inf(1), testRng()); ok {
		t.Errorf("Expected miss, got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FromInside(t *testing.T) {
	sphere := NewSphere(core.Vec3{}, 1.0, testMaterial{})
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1), 0)

	hit, ok := sphere.Hit(ray, 0.001, math.Inf(1), testRng())
	if !ok {
		t.Fatal("Expected hit from inside")
	}
	if hit.FrontFace {
		t.Error("Expected back face hit from inside the sphere")
	}
	if !vecEquals(hit.Normal, core.NewVec3(0, 0, -1), tolerance) {
		t.Errorf("Expected inward normal (0,0,-1), got %v", hit.Normal)
	}
}

func TestSphere_Hit_RespectsTMax(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -10), 1.0, testMaterial{})
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1), 0)

	if _, ok := sphere.Hit(ray, 0.001, 5, testRng()); ok {
		t.Error("Expected miss when the hit lies beyond tMax")
	}
}

func TestSphere_UV(t *testing.T) {
	sphere := NewSphere(core.Vec3{}, 1.0, testMaterial{})

	tests := []struct {
		name       string
		rayOrigin  core.Vec3
		expectedUV core.Vec2
	}{
		{
			name:       "+z meridian",
			rayOrigin:  core.NewVec3(0, 0, 5),
			expectedUV: core.NewVec2(0.25, 0.5),
		},
		{
			name:       "-x meridian",
			rayOrigin:  core.NewVec3(-5, 0, 0),
			expectedUV: core.NewVec2(0, 0.5),
		},
		{
			name:       "north pole",
			rayOrigin:  core.NewVec3(0, 5, 0),
			expectedUV: core.NewVec2(0.5, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			direction := tt.rayOrigin.Negate().Normalize()
			ray := core.NewRay(tt.rayOrigin, direction, 0)

			hit, ok := sphere.Hit(ray, 0.001, math.Inf(1), testRng())
			if !ok {
				t.Fatal("Expected hit")
			}

			// u wraps at the seam, so 0 and 1 are the same meridian.
			uDiff := math.Abs(hit.UV.U - tt.expectedUV.U)
			uDiff = math.Min(uDiff, 1-uDiff)
			if uDiff > 1e-6 || math.Abs(hit.UV.V-tt.expectedUV.V) > 1e-6 {
				t.Errorf("Expected uv (%f,%f), got (%f,%f)", tt.expectedUV.U, tt.expectedUV.V, hit.UV.U, hit.UV.V)
			}
		})
	}
}

func TestSphere_BoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 2.0, testMaterial{})

	box, ok := sphere.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected bounding box")
	}
	if !vecEquals(box.Min, core.NewVec3(-1, 0, 1), tolerance) || !vecEquals(box.Max, core.NewVec3(3, 4, 5), tolerance) {
		t.Errorf("Expected box (-1,0,1)-(3,4,5), got %v-%v", box.Min, box.Max)
	}
}

func TestMovingSphere_CenterInterpolation(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, 0), 0, core.NewVec3(10, 0, 0), 1, 1.0, testMaterial{})

	// At shutter time 0.5 the sphere sits at x=5.
	ray := core.NewRay(core.NewVec3(5, 0, 5), core.NewVec3(0, 0, -1), 0.5)
	hit, ok := sphere.Hit(ray, 0.001, math.Inf(1), testRng())
	if !ok {
		t.Fatal("Expected hit at interpolated center")
	}
	if math.Abs(hit.T-4) > tolerance {
		t.Errorf("Expected t=4, got t=%f", hit.T)
	}

	// At time 0 the same ray misses.
	ray = core.NewRay(core.NewVec3(5, 0, 5), core.NewVec3(0, 0, -1), 0)
	if _, ok := sphere.Hit(ray, 0.001, math.Inf(1), testRng()); ok {
		t.Error("Expected miss at time 0")
	}
}

func TestMovingSphere_BoundingBoxCoversBothEndpoints(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, 0), 0, core.NewVec3(10, 0, 0), 1, 1.0, testMaterial{})

	box, ok := sphere.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected bounding box")
	}
	if !vecEquals(box.Min, core.NewVec3(-1, -1, -1), tolerance) || !vecEquals(box.Max, core.NewVec3(11, 1, 1), tolerance) {
		t.Errorf("Expected box (-1,-1,-1)-(11,1,1), got %v-%v", box.Min, box.Max)
	}
}
