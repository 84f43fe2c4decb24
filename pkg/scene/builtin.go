// Package scene provides the built-in scene catalogue and a JSON
// descriptor format for loading worlds from disk.
package scene

import (
	"math/rand"
	"sort"

	"github.com/AndreasKarg/raytracer-weekend/pkg/core"
	"github.com/AndreasKarg/raytracer-weekend/pkg/geometry"
	"github.com/AndreasKarg/raytracer-weekend/pkg/material"
	"github.com/AndreasKarg/raytracer-weekend/pkg/renderer"
)

// Generator builds a complete scene for the given output aspect ratio.
// Scenes that place objects randomly draw from rng, so the same seed
// reproduces the same world.
type Generator func(aspectRatio float64, rng *rand.Rand) (*renderer.Scene, error)

var defaultBackground = core.Vec3{X: 0.7, Y: 0.8, Z: 1.0}

var builtins = map[string]Generator{
	"JumpyBalls":       JumpyBalls,
	"TwoSpheres":       TwoSpheres,
	"TwoPerlinSpheres": TwoPerlinSpheres,
	"Earth":            Earth,
	"SimpleLight":      SimpleLight,
	"CornellBox":       CornellBox,
	"SmokeyCornellBox": SmokeyCornellBox,
	"Book2FinalScene":  Book2FinalScene,
}

// Builtin looks up a catalogue scene by name.
func Builtin(name string) (Generator, bool) {
	gen, ok := builtins[name]
	return gen, ok
}

// BuiltinNames returns the catalogue scene names in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// JumpyBalls is the book-one cover scene with motion-blurred small spheres.
func JumpyBalls(aspectRatio float64, rng *rand.Rand) (*renderer.Scene, error) {
	checker := material.NewChecker(
		material.NewSolidColorRGB(0.2, 0.3, 0.1),
		material.NewSolidColorRGB(0.9, 0.9, 0.9),
		10.0,
	)
	ground := material.NewLambertian(checker)
	brown := material.NewLambertianSolid(core.Vec3{X: 0.4, Y: 0.2, Z: 0.1})
	glass := material.NewDielectric(1.5)
	metal := material.NewMetal(core.Vec3{X: 0.7, Y: 0.6, Z: 0.5}, 0.0)

	world := geometry.NewHittableList(
		geometry.NewSphere(core.Vec3{X: 0, Y: -1000, Z: 0}, 1000, ground),
		geometry.NewSphere(core.Vec3{X: -4, Y: 0.2, Z: 0.1}, 1.0, brown),
		geometry.NewSphere(core.Vec3{X: 0, Y: 1, Z: 0}, 1.0, glass),
		geometry.NewSphere(core.Vec3{X: 0, Y: 1, Z: 0}, -0.95, glass),
		geometry.NewSphere(core.Vec3{X: 4, Y: 1, Z: 0}, 1.0, metal),
	)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.Vec3{
				X: float64(a) + 0.9*rng.Float64(),
				Y: 0.2,
				Z: float64(b) + 0.9*rng.Float64(),
			}
			if center.Subtract(core.Vec3{X: 4, Y: 0.2, Z: 0}).Length() <= 0.9 {
				continue
			}

			var mat core.Material
			switch chooseMat := rng.Float64(); {
			case chooseMat < 0.8:
				albedo := core.RandomVec3(rng, 0, 1).MultiplyVec(core.RandomVec3(rng, 0, 1))
				mat = material.NewLambertianSolid(albedo)
			case chooseMat < 0.95:
				albedo := core.RandomVec3(rng, 0.5, 1)
				fuzz := 0.5 * rng.Float64()
				mat = material.NewMetal(albedo, fuzz)
			default:
				mat = material.NewDielectric(1.5)
			}

			center2 := center.Add(core.Vec3{Y: 0.5 * rng.Float64()})
			world.Add(geometry.NewMovingSphere(center, 0, center2, 1, 0.2, mat))
		}
	}

	camera := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:      core.Vec3{X: 13, Y: 2, Z: 3},
		LookAt:        core.Vec3{},
		VUp:           core.Vec3{Y: 1},
		VFovDegrees:   20,
		AspectRatio:   aspectRatio,
		Aperture:      0.1,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	})

	return &renderer.Scene{World: world, Camera: camera, Background: defaultBackground}, nil
}

// TwoSpheres shows two checkered spheres touching at the origin.
func TwoSpheres(aspectRatio float64, _ *rand.Rand) (*renderer.Scene, error) {
	checker := material.NewChecker(
		material.NewSolidColorRGB(0.2, 0.3, 0.1),
		material.NewSolidColorRGB(0.9, 0.9, 0.9),
		10.0,
	)
	ground := material.NewLambertian(checker)

	world := geometry.NewHittableList(
		geometry.NewSphere(core.Vec3{X: 0, Y: -10, Z: 0}, 10, ground),
		geometry.NewSphere(core.Vec3{X: 0, Y: 10, Z: 0}, 10, ground),
	)

	camera := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:      core.Vec3{X: 13, Y: 2, Z: 3},
		LookAt:        core.Vec3{},
		VUp:           core.Vec3{Y: 1},
		VFovDegrees:   40,
		AspectRatio:   aspectRatio,
		Aperture:      0,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	})

	return &renderer.Scene{World: world, Camera: camera, Background: defaultBackground}, nil
}

// TwoPerlinSpheres shows a marble sphere resting on a marble ground.
func TwoPerlinSpheres(aspectRatio float64, rng *rand.Rand) (*renderer.Scene, error) {
	marble := material.NewLambertian(material.NewNoise(material.NewPerlin(rng), 4.0))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.Vec3{X: 0, Y: -1000, Z: 0}, 1000, marble),
		geometry.NewSphere(core.Vec3{X: 0, Y: 2, Z: 0}, 2, marble),
	)

	camera := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:      core.Vec3{X: 13, Y: 2, Z: 3},
		LookAt:        core.Vec3{},
		VUp:           core.Vec3{Y: 1},
		VFovDegrees:   40,
		AspectRatio:   aspectRatio,
		Aperture:      0,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	})

	return &renderer.Scene{World: world, Camera: camera, Background: defaultBackground}, nil
}

// Earth maps an equirectangular earth photo onto a single sphere.
// It requires earthmap.jpg in the working directory.
func Earth(aspectRatio float64, _ *rand.Rand) (*renderer.Scene, error) {
	earthTexture, err := material.LoadImageTexture("earthmap.jpg")
	if err != nil {
		return nil, err
	}
	surface := material.NewLambertian(earthTexture)

	world := geometry.NewHittableList(
		geometry.NewSphere(core.Vec3{}, 2, surface),
	)

	camera := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:      core.Vec3{X: 13, Y: 2, Z: 3},
		LookAt:        core.Vec3{},
		VUp:           core.Vec3{Y: 1},
		VFovDegrees:   20,
		AspectRatio:   aspectRatio,
		Aperture:      0,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	})

	return &renderer.Scene{World: world, Camera: camera, Background: defaultBackground}, nil
}

// SimpleLight lights two marble spheres with an emissive rectangle and an
// emissive earth-textured sphere against a black background.
func SimpleLight(aspectRatio float64, rng *rand.Rand) (*renderer.Scene, error) {
	earthTexture, err := material.LoadImageTexture("earthmap.jpg")
	if err != nil {
		return nil, err
	}
	earthLight := material.NewDiffuseLight(earthTexture)
	marble := material.NewLambertian(material.NewNoise(material.NewPerlin(rng), 4.0))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.Vec3{X: 0, Y: -1000, Z: 0}, 1000, marble),
		geometry.NewSphere(core.Vec3{X: 0, Y: 2, Z: 0}, 2, marble),
		geometry.NewXYRect(3, 5, 1, 3, -2, earthLight),
		geometry.NewSphere(core.Vec3{X: 0, Y: 6, Z: 0}, 2, earthLight),
	)

	camera := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:      core.Vec3{X: 26, Y: 3, Z: 6},
		LookAt:        core.Vec3{Y: 2},
		VUp:           core.Vec3{Y: 1},
		VFovDegrees:   20,
		AspectRatio:   aspectRatio,
		Aperture:      0,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	})

	return &renderer.Scene{World: world, Camera: camera, Background: core.Vec3{}}, nil
}

func cornellWalls(lightX0, lightX1, lightZ0, lightZ1 float64, light core.Material) *geometry.HittableList {
	red := material.NewLambertianSolid(core.Vec3{X: 0.65, Y: 0.05, Z: 0.05})
	white := material.NewLambertianSolid(core.Vec3{X: 0.73, Y: 0.73, Z: 0.73})
	green := material.NewLambertianSolid(core.Vec3{X: 0.12, Y: 0.45, Z: 0.15})

	return geometry.NewHittableList(
		geometry.NewYZRect(0, 555, 0, 555, 555, green),
		geometry.NewYZRect(0, 555, 0, 555, 0, red),
		geometry.NewXZRect(lightX0, lightX1, lightZ0, lightZ1, 554, light),
		geometry.NewXZRect(0, 555, 0, 555, 0, white),
		geometry.NewXZRect(0, 555, 0, 555, 555, white),
		geometry.NewXYRect(0, 555, 0, 555, 555, white),
	)
}

func cornellBoxes() (core.Hittable, core.Hittable) {
	white := material.NewLambertianSolid(core.Vec3{X: 0.73, Y: 0.73, Z: 0.73})

	tall := geometry.NewTranslate(
		geometry.NewRotateY(
			geometry.NewBox(core.Vec3{}, core.Vec3{X: 165, Y: 330, Z: 165}, white),
			15,
		),
		core.Vec3{X: 265, Y: 0, Z: 295},
	)
	short := geometry.NewTranslate(
		geometry.NewRotateY(
			geometry.NewBox(core.Vec3{}, core.Vec3{X: 165, Y: 165, Z: 165}, white),
			-18,
		),
		core.Vec3{X: 130, Y: 0, Z: 65},
	)
	return tall, short
}

func cornellCamera(aspectRatio float64) *renderer.Camera {
	return renderer.NewCamera(renderer.CameraConfig{
		LookFrom:      core.Vec3{X: 278, Y: 278, Z: -800},
		LookAt:        core.Vec3{X: 278, Y: 278, Z: 0},
		VUp:           core.Vec3{Y: 1},
		VFovDegrees:   40,
		AspectRatio:   aspectRatio,
		Aperture:      0,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	})
}

// CornellBox is the classic red/green/white box with two rotated blocks.
func CornellBox(aspectRatio float64, _ *rand.Rand) (*renderer.Scene, error) {
	light := material.NewDiffuseLightSolid(core.Vec3{X: 15, Y: 15, Z: 15})
	world := cornellWalls(213, 343, 227, 332, light)

	tall, short := cornellBoxes()
	world.Add(tall, short)

	return &renderer.Scene{
		World:      world,
		Camera:     cornellCamera(aspectRatio),
		Background: core.Vec3{},
	}, nil
}

// SmokeyCornellBox replaces the Cornell blocks with participating media
// under a wider, dimmer ceiling light.
func SmokeyCornellBox(aspectRatio float64, _ *rand.Rand) (*renderer.Scene, error) {
	light := material.NewDiffuseLightSolid(core.Vec3{X: 7, Y: 7, Z: 7})
	world := cornellWalls(113, 443, 127, 432, light)

	tall, short := cornellBoxes()
	world.Add(
		geometry.NewConstantMedium(tall, 0.005, material.NewIsotropic(material.NewSolidColorRGB(0, 0, 0))),
		geometry.NewConstantMedium(short, 0.005, material.NewIsotropic(material.NewSolidColorRGB(1, 1, 1))),
	)

	return &renderer.Scene{
		World:      world,
		Camera:     cornellCamera(aspectRatio),
		Background: core.Vec3{},
	}, nil
}

// Book2FinalScene is the showcase scene combining boxes, motion blur,
// glass, metal, volumes, textures and a cluster of small spheres.
func Book2FinalScene(aspectRatio float64, rng *rand.Rand) (*renderer.Scene, error) {
	ground := material.NewLambertianSolid(core.Vec3{X: 0.48, Y: 0.83, Z: 0.53})

	const boxesPerSide = 20
	floorBoxes := make([]core.Hittable, 0, boxesPerSide*boxesPerSide)
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			const w = 100.0
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			x1 := x0 + w
			y1 := 1.0 + 100.0*rng.Float64()
			z1 := z0 + w
			floorBoxes = append(floorBoxes, geometry.NewBox(
				core.Vec3{X: x0, Y: 0, Z: z0},
				core.Vec3{X: x1, Y: y1, Z: z1},
				ground,
			))
		}
	}

	world := geometry.NewHittableList(core.NewBVHNode(floorBoxes, 0, 1, rng))

	light := material.NewDiffuseLightSolid(core.Vec3{X: 7, Y: 7, Z: 7})
	world.Add(geometry.NewXZRect(123, 423, 147, 412, 554, light))

	center1 := core.Vec3{X: 400, Y: 400, Z: 200}
	center2 := center1.Add(core.Vec3{X: 30})
	world.Add(geometry.NewMovingSphere(
		center1, 0, center2, 1, 50,
		material.NewLambertianSolid(core.Vec3{X: 0.7, Y: 0.3, Z: 0.1}),
	))

	world.Add(
		geometry.NewSphere(core.Vec3{X: 260, Y: 150, Z: 45}, 50, material.NewDielectric(1.5)),
		geometry.NewSphere(core.Vec3{X: 0, Y: 150, Z: 145}, 50, material.NewMetal(core.Vec3{X: 0.8, Y: 0.8, Z: 0.9}, 1.0)),
	)

	boundary := geometry.NewSphere(core.Vec3{X: 360, Y: 150, Z: 145}, 70, material.NewDielectric(1.5))
	world.Add(
		boundary,
		geometry.NewConstantMedium(boundary, 0.2, material.NewIsotropic(material.NewSolidColorRGB(0.2, 0.4, 0.9))),
	)

	mist := geometry.NewSphere(core.Vec3{}, 5000, material.NewDielectric(1.5))
	world.Add(geometry.NewConstantMedium(mist, 0.0001, material.NewIsotropic(material.NewSolidColorRGB(1, 1, 1))))

	earthTexture, err := material.LoadImageTexture("earthmap.jpg")
	if err != nil {
		return nil, err
	}
	world.Add(geometry.NewSphere(core.Vec3{X: 400, Y: 200, Z: 400}, 100, material.NewLambertian(earthTexture)))

	marble := material.NewLambertian(material.NewNoise(material.NewPerlin(rng), 0.1))
	world.Add(geometry.NewSphere(core.Vec3{X: 220, Y: 280, Z: 300}, 80, marble))

	white := material.NewLambertianSolid(core.Vec3{X: 0.73, Y: 0.73, Z: 0.73})
	const clusterSpheres = 1000
	cluster := make([]core.Hittable, 0, clusterSpheres)
	for i := 0; i < clusterSpheres; i++ {
		cluster = append(cluster, geometry.NewSphere(core.RandomVec3(rng, 0, 165), 10, white))
	}
	world.Add(geometry.NewTranslate(
		geometry.NewRotateY(core.NewBVHNode(cluster, 0, 1, rng), 15),
		core.Vec3{X: -100, Y: 270, Z: 395},
	))

	lookFrom := core.Vec3{X: 478, Y: 278, Z: -600}
	lookAt := core.Vec3{X: 278, Y: 278, Z: 0}
	camera := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:      lookFrom,
		LookAt:        lookAt,
		VUp:           core.Vec3{Y: 1},
		VFovDegrees:   40,
		AspectRatio:   aspectRatio,
		Aperture:      0,
		FocusDistance: lookAt.Subtract(lookFrom).Length(),
		Time0:         0,
		Time1:         1,
	})

	return &renderer.Scene{World: world, Camera: camera, Background: core.Vec3{}}, nil
}
