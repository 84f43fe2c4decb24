package renderer

import (
	"math"
	"testing"

	"github.com/AndreasKarg/raytracer-weekend/pkg/core"
	"github.com/AndreasKarg/raytracer-weekend/pkg/geometry"
	"github.com/AndreasKarg/raytracer-weekend/pkg/material"
)

func testScene(world core.Hittable, background core.Vec3) *Scene {
	camera := NewCamera(CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 5),
		LookAt:        core.NewVec3(0, 0, 0),
		VUp:           core.NewVec3(0, 1, 0),
		VFovDegrees:   60,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0,
		FocusDistance: 5,
	})
	return &Scene{World: world, Camera: camera, Background: background}
}

func testOptions(width, height, spp int) Options {
	opts := DefaultOptions()
	opts.Width = width
	opts.Height = height
	opts.SamplesPerPixel = spp
	return opts
}

func TestRenderer_EmptyWorldIsExactBackground(t *testing.T) {
	background := core.NewVec3(0.2, 0.3, 0.5)
	scene := testScene(geometry.NewHittableList(), background)

	opts := testOptions(8, 6, 10)
	pixels := New(scene, opts).Render()

	if len(pixels) != 8*6 {
		t.Fatalf("Expected %d pixels, got %d", 8*6, len(pixels))
	}

	// Every sample resolves to the background, so the sum is exact.
	expected := background.Multiply(float64(opts.SamplesPerPixel))
	for i, p := range pixels {
		if p.Color != expected {
			t.Fatalf("Pixel %d (row %d col %d): expected %v, got %v", i, p.Row, p.Col, expected, p.Color)
		}
	}
}

func TestRenderer_PixelsAreRowMajor(t *testing.T) {
	scene := testScene(geometry.NewHittableList(), core.Vec3{})
	pixels := New(scene, testOptions(4, 3, 1)).Render()

	for i, p := range pixels {
		if p.Row != i/4 || p.Col != i%4 {
			t.Fatalf("Pixel %d: expected row %d col %d, got row %d col %d", i, i/4, i%4, p.Row, p.Col)
		}
	}
}

func TestRenderer_OutputIndependentOfWorkerCount(t *testing.T) {
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1, material.NewLambertianSolid(core.NewVec3(0.7, 0.3, 0.3))),
		geometry.NewSphere(core.NewVec3(0, -101, 0), 100, material.NewLambertianSolid(core.NewVec3(0.5, 0.5, 0.5))),
	)
	scene := testScene(world, core.NewVec3(0.7, 0.8, 1.0))

	optsSerial := testOptions(32, 18, 8)
	optsSerial.Workers = 1
	optsParallel := optsSerial
	optsParallel.Workers = 8

	serial := New(scene, optsSerial).Render()
	parallel := New(scene, optsParallel).Render()

	if len(serial) != len(parallel) {
		t.Fatalf("Pixel count mismatch: %d vs %d", len(serial), len(parallel))
	}
	for i := range serial {
		if serial[i] != parallel[i] {
			t.Fatalf("Pixel %d differs between worker counts: %v vs %v", i, serial[i], parallel[i])
		}
	}
}

func TestRenderer_SameSeedSameImage(t *testing.T) {
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1, material.NewLambertianSolid(core.NewVec3(0.4, 0.6, 0.2))),
	)
	scene := testScene(world, core.NewVec3(0.7, 0.8, 1.0))

	opts := testOptions(16, 9, 4)
	a := New(scene, opts).Render()
	b := New(scene, opts).Render()

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Pixel %d differs between identical renders: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestRenderer_ConvergesWithMoreSamples(t *testing.T) {
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1, material.NewLambertianSolid(core.NewVec3(0.5, 0.5, 0.5))),
	)
	scene := testScene(world, core.NewVec3(0.7, 0.8, 1.0))

	// RMS distance between renders from different seeds must shrink as the
	// sample count grows.
	rms := func(spp int) float64 {
		optsA := testOptions(16, 9, spp)
		optsA.Seed = 100
		optsB := testOptions(16, 9, spp)
		optsB.Seed = 200

		a := New(scene, optsA).Render()
		b := New(scene, optsB).Render()

		var sum float64
		for i := range a {
			diff := a[i].Color.Multiply(1 / float64(spp)).Subtract(b[i].Color.Multiply(1 / float64(spp)))
			sum += diff.LengthSquared()
		}
		return math.Sqrt(sum / float64(len(a)))
	}

	low := rms(4)
	high := rms(64)

	if high >= low {
		t.Errorf("Expected noise to shrink with more samples: rms(4)=%f, rms(64)=%f", low, high)
	}
}

func TestRenderer_DepthZeroIsBlack(t *testing.T) {
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1, material.NewMetal(core.NewVec3(1, 1, 1), 0)),
	)
	scene := testScene(world, core.NewVec3(1, 1, 1))

	r := New(scene, testOptions(4, 3, 2))
	rayToSphere := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 0)

	if got := r.rayColor(rayToSphere, 0, nil); got != (core.Vec3{}) {
		t.Errorf("Expected black at depth 0, got %v", got)
	}
}

func TestRenderStream_MatchesPixelCountAndOrder(t *testing.T) {
	scene := testScene(geometry.NewHittableList(), core.NewVec3(0.1, 0.1, 0.1))
	opts := testOptions(6, 4, 2)

	var pixels []Pixel
	New(scene, opts).RenderStream(func(p Pixel) {
		pixels = append(pixels, p)
	})

	if len(pixels) != 6*4 {
		t.Fatalf("Expected %d pixels, got %d", 6*4, len(pixels))
	}
	for i, p := range pixels {
		if p.Row != i/6 || p.Col != i%6 {
			t.Fatalf("Pixel %d out of order: row %d col %d", i, p.Row, p.Col)
		}
	}
}

func TestRenderer_ProgressReportsEveryRow(t *testing.T) {
	scene := testScene(geometry.NewHittableList(), core.Vec3{})

	opts := testOptions(4, 5, 1)
	var calls int
	var lastTotal int
	opts.Progress = func(completedRows, totalRows int) {
		calls++
		lastTotal = totalRows
		if completedRows < 1 || completedRows > totalRows {
			t.Errorf("Progress out of range: %d/%d", completedRows, totalRows)
		}
	}

	New(scene, opts).Render()

	if calls != 5 {
		t.Errorf("Expected 5 progress calls, got %d", calls)
	}
	if lastTotal != 5 {
		t.Errorf("Expected total of 5 rows, got %d", lastTotal)
	}
}

func TestToImage_AppliesGammaAndClamp(t *testing.T) {
	pixels := []Pixel{
		{Row: 0, Col: 0, Color: core.NewVec3(0.25, 1, 100)}, // 1 sample: raw values
	}

	img := ToImage(pixels, 1, 1, 1)

	r, g, b, a := img.At(0, 0).RGBA()
	if a>>8 != 255 {
		t.Errorf("Expected opaque alpha, got %d", a>>8)
	}
	// sqrt(0.25)=0.5 -> 127; sqrt(1)=1 clamps to 0.999 -> 255; huge clamps too.
	if r>>8 != 127 {
		t.Errorf("Expected red 127, got %d", r>>8)
	}
	if g>>8 != 255 || b>>8 != 255 {
		t.Errorf("Expected saturated green/blue 255, got %d/%d", g>>8, b>>8)
	}
}
