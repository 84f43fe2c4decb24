package scene

import (
	"encoding/json"
	"math"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AndreasKarg/raytracer-weekend/pkg/core"
	"github.com/AndreasKarg/raytracer-weekend/pkg/geometry"
)

func testBuildContext() *BuildContext {
	return &BuildContext{
		Rng:   rand.New(rand.NewSource(1)),
		Time0: 0,
		Time1: 1,
	}
}

func testWorld() *World {
	return &World{
		Background: [3]float64{0.7, 0.8, 1.0},
		Cameras: []CameraDescriptor{
			{
				LookFrom:      [3]float64{0, 0, 5},
				LookAt:        [3]float64{0, 0, 0},
				VUp:           [3]float64{0, 1, 0},
				VFovDegrees:   60,
				Aperture:      0,
				FocusDistance: 5,
			},
		},
		Geometry: []HittableRef{
			{Descriptor: &SphereDescriptor{
				Center: [3]float64{0, 0, 0},
				Radius: 1,
				Material: MaterialRef{Descriptor: &LambertianDescriptor{
					Albedo: TextureRef{Descriptor: &SolidColorDescriptor{Color: [3]float64{0.5, 0.2, 0.1}}},
				}},
			}},
			{Descriptor: &TranslateDescriptor{
				Inner: HittableRef{Descriptor: &BoxDescriptor{
					Min:      [3]float64{0, 0, 0},
					Max:      [3]float64{1, 1, 1},
					Material: MaterialRef{Descriptor: &MetalDescriptor{Albedo: [3]float64{0.8, 0.8, 0.8}, Fuzz: 0.1}},
				}},
				Offset: [3]float64{3, 0, 0},
			}},
		},
	}
}

func TestWorld_JSONRoundTrip(t *testing.T) {
	world := testWorld()

	data, err := json.Marshal(world)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	if !strings.Contains(string(data), `"type":"sphere"`) {
		t.Errorf("Expected a sphere discriminator tag in %s", data)
	}

	var decoded World
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if len(decoded.Geometry) != 2 {
		t.Fatalf("Expected 2 geometry entries, got %d", len(decoded.Geometry))
	}

	sphere, ok := decoded.Geometry[0].Descriptor.(*SphereDescriptor)
	if !ok {
		t.Fatalf("Expected *SphereDescriptor, got %T", decoded.Geometry[0].Descriptor)
	}
	if sphere.Radius != 1 {
		t.Errorf("Expected radius 1, got %f", sphere.Radius)
	}

	lambertian, ok := sphere.Material.Descriptor.(*LambertianDescriptor)
	if !ok {
		t.Fatalf("Expected nested *LambertianDescriptor, got %T", sphere.Material.Descriptor)
	}
	solid, ok := lambertian.Albedo.Descriptor.(*SolidColorDescriptor)
	if !ok {
		t.Fatalf("Expected nested *SolidColorDescriptor, got %T", lambertian.Albedo.Descriptor)
	}
	if solid.Color != [3]float64{0.5, 0.2, 0.1} {
		t.Errorf("Expected albedo (0.5,0.2,0.1), got %v", solid.Color)
	}

	translate, ok := decoded.Geometry[1].Descriptor.(*TranslateDescriptor)
	if !ok {
		t.Fatalf("Expected *TranslateDescriptor, got %T", decoded.Geometry[1].Descriptor)
	}
	if _, ok := translate.Inner.Descriptor.(*BoxDescriptor); !ok {
		t.Fatalf("Expected nested *BoxDescriptor, got %T", translate.Inner.Descriptor)
	}
}

func TestWorld_UnknownTypeTagFailsFast(t *testing.T) {
	input := `{"geometry":[{"type":"teapot"}],"cameras":[],"background":[0,0,0]}`

	var world World
	err := json.Unmarshal([]byte(input), &world)
	if err == nil {
		t.Fatal("Expected unknown tag to fail")
	}
	if !strings.Contains(err.Error(), "teapot") {
		t.Errorf("Expected error to name the unknown tag, got: %v", err)
	}
}

func TestWorld_MissingTypeTagFailsFast(t *testing.T) {
	input := `{"geometry":[{"center":[0,0,0],"radius":1}],"cameras":[],"background":[0,0,0]}`

	var world World
	if err := json.Unmarshal([]byte(input), &world); err == nil {
		t.Fatal("Expected missing tag to fail")
	}
}

func TestWorld_BuildProducesRenderableScene(t *testing.T) {
	sc, err := testWorld().Build(16.0/9.0, 0, testBuildContext())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	// The sphere at the origin must be hittable through the built BVH.
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 0)
	hit, ok := sc.World.Hit(ray, 0.001, math.Inf(1), rand.New(rand.NewSource(2)))
	if !ok {
		t.Fatal("Expected built world to contain the sphere")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected t=4, got t=%f", hit.T)
	}

	if sc.Background != core.NewVec3(0.7, 0.8, 1.0) {
		t.Errorf("Expected background (0.7,0.8,1.0), got %v", sc.Background)
	}
	if sc.Camera == nil {
		t.Error("Expected a built camera")
	}
}

func TestWorld_BuildValidatesCameraIndex(t *testing.T) {
	if _, err := testWorld().Build(1, 5, testBuildContext()); err == nil {
		t.Error("Expected out-of-range camera index to fail")
	}
	if _, err := testWorld().Build(1, -1, testBuildContext()); err == nil {
		t.Error("Expected negative camera index to fail")
	}
}

func TestWorld_BuildRejectsEmptyGeometry(t *testing.T) {
	world := testWorld()
	world.Geometry = nil

	if _, err := world.Build(1, 0, testBuildContext()); err == nil {
		t.Error("Expected empty world to fail")
	}
}

func TestWorld_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.json")

	if err := testWorld().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := LoadWorld(path)
	if err != nil {
		t.Fatalf("LoadWorld failed: %v", err)
	}
	if len(loaded.Geometry) != 2 || len(loaded.Cameras) != 1 {
		t.Errorf("Expected 2 objects and 1 camera, got %d and %d", len(loaded.Geometry), len(loaded.Cameras))
	}
}

func TestConstantMediumDescriptor_BuildsVolume(t *testing.T) {
	descriptor := &ConstantMediumDescriptor{
		Boundary: HittableRef{Descriptor: &SphereDescriptor{
			Center:   [3]float64{0, 0, 0},
			Radius:   1,
			Material: MaterialRef{Descriptor: &DielectricDescriptor{RefractiveIndex: 1.5}},
		}},
		Density: 0.5,
		Albedo:  TextureRef{Descriptor: &SolidColorDescriptor{Color: [3]float64{1, 1, 1}}},
	}

	built, err := descriptor.Build(testBuildContext())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if _, ok := built.(*geometry.ConstantMedium); !ok {
		t.Errorf("Expected *geometry.ConstantMedium, got %T", built)
	}
}

func TestBuiltinNames_AreSortedAndResolvable(t *testing.T) {
	names := BuiltinNames()
	if len(names) != 8 {
		t.Fatalf("Expected 8 built-in scenes, got %d", len(names))
	}

	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Names not sorted: %q before %q", names[i-1], names[i])
		}
	}

	for _, name := range names {
		if _, ok := Builtin(name); !ok {
			t.Errorf("Listed scene %q does not resolve", name)
		}
	}

	if _, ok := Builtin("NoSuchScene"); ok {
		t.Error("Expected unknown scene to not resolve")
	}
}

func TestCornellBox_Builds(t *testing.T) {
	sc, err := CornellBox(1.0, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("CornellBox failed: %v", err)
	}

	// A ray down the box axis from the camera side must hit the back wall.
	ray := core.NewRay(core.NewVec3(278, 278, -800), core.NewVec3(0, 0, 1), 0)
	hit, ok := sc.World.Hit(ray, 0.001, math.Inf(1), rand.New(rand.NewSource(2)))
	if !ok {
		t.Fatal("Expected hit inside the Cornell box")
	}
	if hit.T <= 0 {
		t.Errorf("Expected positive hit distance, got %f", hit.T)
	}

	if sc.Background != (core.Vec3{}) {
		t.Errorf("Expected black background, got %v", sc.Background)
	}
}
