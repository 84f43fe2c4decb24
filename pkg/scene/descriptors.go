package scene

import (
	"fmt"

	"github.com/AndreasKarg/raytracer-weekend/pkg/core"
	"github.com/AndreasKarg/raytracer-weekend/pkg/geometry"
	"github.com/AndreasKarg/raytracer-weekend/pkg/loaders"
	"github.com/AndreasKarg/raytracer-weekend/pkg/material"
)

func init() {
	RegisterTexture("solid_color", func() TextureDescriptor { return &SolidColorDescriptor{} })
	RegisterTexture("checker", func() TextureDescriptor { return &CheckerDescriptor{} })
	RegisterTexture("noise", func() TextureDescriptor { return &NoiseDescriptor{} })
	RegisterTexture("image", func() TextureDescriptor { return &ImageDescriptor{} })
	RegisterTexture("uv_debug", func() TextureDescriptor { return &UVDebugDescriptor{} })

	RegisterMaterial("lambertian", func() MaterialDescriptor { return &LambertianDescriptor{} })
	RegisterMaterial("metal", func() MaterialDescriptor { return &MetalDescriptor{} })
	RegisterMaterial("dielectric", func() MaterialDescriptor { return &DielectricDescriptor{} })
	RegisterMaterial("diffuse_light", func() MaterialDescriptor { return &DiffuseLightDescriptor{} })
	RegisterMaterial("isotropic", func() MaterialDescriptor { return &IsotropicDescriptor{} })

	RegisterHittable("sphere", func() HittableDescriptor { return &SphereDescriptor{} })
	RegisterHittable("moving_sphere", func() HittableDescriptor { return &MovingSphereDescriptor{} })
	RegisterHittable("xy_rect", func() HittableDescriptor { return &XYRectDescriptor{} })
	RegisterHittable("xz_rect", func() HittableDescriptor { return &XZRectDescriptor{} })
	RegisterHittable("yz_rect", func() HittableDescriptor { return &YZRectDescriptor{} })
	RegisterHittable("box", func() HittableDescriptor { return &BoxDescriptor{} })
	RegisterHittable("triangle", func() HittableDescriptor { return &TriangleDescriptor{} })
	RegisterHittable("mesh", func() HittableDescriptor { return &MeshDescriptor{} })
	RegisterHittable("translate", func() HittableDescriptor { return &TranslateDescriptor{} })
	RegisterHittable("rotate_y", func() HittableDescriptor { return &RotateYDescriptor{} })
	RegisterHittable("constant_medium", func() HittableDescriptor { return &ConstantMediumDescriptor{} })
}

// SolidColorDescriptor serializes a uniform color texture.
type SolidColorDescriptor struct {
	Color [3]float64 `json:"color"`
}

func (d *SolidColorDescriptor) Build(_ *BuildContext) (material.Texture, error) {
	return material.NewSolidColor(vec(d.Color)), nil
}

// CheckerDescriptor serializes a two-texture checker pattern.
type CheckerDescriptor struct {
	Even      TextureRef `json:"even"`
	Odd       TextureRef `json:"odd"`
	Frequency float64    `json:"frequency"`
}

func (d *CheckerDescriptor) Build(ctx *BuildContext) (material.Texture, error) {
	even, err := d.Even.Build(ctx)
	if err != nil {
		return nil, err
	}
	odd, err := d.Odd.Build(ctx)
	if err != nil {
		return nil, err
	}
	return material.NewChecker(even, odd, d.Frequency), nil
}

// NoiseDescriptor serializes a Perlin marble texture. The gradient and
// permutation tables come from the build context's rng.
type NoiseDescriptor struct {
	Scale float64 `json:"scale"`
}

func (d *NoiseDescriptor) Build(ctx *BuildContext) (material.Texture, error) {
	return material.NewNoise(material.NewPerlin(ctx.Rng), d.Scale), nil
}

// ImageDescriptor serializes an image-backed texture. The path resolves
// relative to the world file's directory.
type ImageDescriptor struct {
	Path string `json:"path"`
}

func (d *ImageDescriptor) Build(ctx *BuildContext) (material.Texture, error) {
	texture, err := material.LoadImageTexture(ctx.resolvePath(d.Path))
	if err != nil {
		return nil, fmt.Errorf("image texture %q: %w", d.Path, err)
	}
	return texture, nil
}

// UVDebugDescriptor serializes the UV visualisation texture.
type UVDebugDescriptor struct{}

func (d *UVDebugDescriptor) Build(_ *BuildContext) (material.Texture, error) {
	return material.NewUVDebug(), nil
}

// LambertianDescriptor serializes a diffuse material.
type LambertianDescriptor struct {
	Albedo TextureRef `json:"albedo"`
}

func (d *LambertianDescriptor) Build(ctx *BuildContext) (core.Material, error) {
	albedo, err := d.Albedo.Build(ctx)
	if err != nil {
		return nil, err
	}
	return material.NewLambertian(albedo), nil
}

// MetalDescriptor serializes a fuzzy mirror material.
type MetalDescriptor struct {
	Albedo [3]float64 `json:"albedo"`
	Fuzz   float64    `json:"fuzz"`
}

func (d *MetalDescriptor) Build(_ *BuildContext) (core.Material, error) {
	return material.NewMetal(vec(d.Albedo), d.Fuzz), nil
}

// DielectricDescriptor serializes a clear refractive material.
type DielectricDescriptor struct {
	RefractiveIndex float64 `json:"refractive_index"`
}

func (d *DielectricDescriptor) Build(_ *BuildContext) (core.Material, error) {
	return material.NewDielectric(d.RefractiveIndex), nil
}

// DiffuseLightDescriptor serializes an emissive material.
type DiffuseLightDescriptor struct {
	Emit TextureRef `json:"emit"`
}

func (d *DiffuseLightDescriptor) Build(ctx *BuildContext) (core.Material, error) {
	emit, err := d.Emit.Build(ctx)
	if err != nil {
		return nil, err
	}
	return material.NewDiffuseLight(emit), nil
}

// IsotropicDescriptor serializes the phase function used by volumes.
type IsotropicDescriptor struct {
	Albedo TextureRef `json:"albedo"`
}

func (d *IsotropicDescriptor) Build(ctx *BuildContext) (core.Material, error) {
	albedo, err := d.Albedo.Build(ctx)
	if err != nil {
		return nil, err
	}
	return material.NewIsotropic(albedo), nil
}

// SphereDescriptor serializes a static sphere.
type SphereDescriptor struct {
	Center   [3]float64  `json:"center"`
	Radius   float64     `json:"radius"`
	Material MaterialRef `json:"material"`
}

func (d *SphereDescriptor) Build(ctx *BuildContext) (core.Hittable, error) {
	mat, err := d.Material.Build(ctx)
	if err != nil {
		return nil, err
	}
	return geometry.NewSphere(vec(d.Center), d.Radius, mat), nil
}

// MovingSphereDescriptor serializes a sphere whose center interpolates
// between two keyframes.
type MovingSphereDescriptor struct {
	Center0  [3]float64  `json:"center0"`
	Time0    float64     `json:"time0"`
	Center1  [3]float64  `json:"center1"`
	Time1    float64     `json:"time1"`
	Radius   float64     `json:"radius"`
	Material MaterialRef `json:"material"`
}

func (d *MovingSphereDescriptor) Build(ctx *BuildContext) (core.Hittable, error) {
	mat, err := d.Material.Build(ctx)
	if err != nil {
		return nil, err
	}
	return geometry.NewMovingSphere(vec(d.Center0), d.Time0, vec(d.Center1), d.Time1, d.Radius, mat), nil
}

// XYRectDescriptor serializes an axis-aligned rectangle at z = k.
type XYRectDescriptor struct {
	X0       float64     `json:"x0"`
	X1       float64     `json:"x1"`
	Y0       float64     `json:"y0"`
	Y1       float64     `json:"y1"`
	K        float64     `json:"k"`
	Material MaterialRef `json:"material"`
}

func (d *XYRectDescriptor) Build(ctx *BuildContext) (core.Hittable, error) {
	mat, err := d.Material.Build(ctx)
	if err != nil {
		return nil, err
	}
	return geometry.NewXYRect(d.X0, d.X1, d.Y0, d.Y1, d.K, mat), nil
}

// XZRectDescriptor serializes an axis-aligned rectangle at y = k.
type XZRectDescriptor struct {
	X0       float64     `json:"x0"`
	X1       float64     `json:"x1"`
	Z0       float64     `json:"z0"`
	Z1       float64     `json:"z1"`
	K        float64     `json:"k"`
	Material MaterialRef `json:"material"`
}

func (d *XZRectDescriptor) Build(ctx *BuildContext) (core.Hittable, error) {
	mat, err := d.Material.Build(ctx)
	if err != nil {
		return nil, err
	}
	return geometry.NewXZRect(d.X0, d.X1, d.Z0, d.Z1, d.K, mat), nil
}

// YZRectDescriptor serializes an axis-aligned rectangle at x = k.
type YZRectDescriptor struct {
	Y0       float64     `json:"y0"`
	Y1       float64     `json:"y1"`
	Z0       float64     `json:"z0"`
	Z1       float64     `json:"z1"`
	K        float64     `json:"k"`
	Material MaterialRef `json:"material"`
}

func (d *YZRectDescriptor) Build(ctx *BuildContext) (core.Hittable, error) {
	mat, err := d.Material.Build(ctx)
	if err != nil {
		return nil, err
	}
	return geometry.NewYZRect(d.Y0, d.Y1, d.Z0, d.Z1, d.K, mat), nil
}

// BoxDescriptor serializes an axis-aligned cuboid.
type BoxDescriptor struct {
	Min      [3]float64  `json:"min"`
	Max      [3]float64  `json:"max"`
	Material MaterialRef `json:"material"`
}

func (d *BoxDescriptor) Build(ctx *BuildContext) (core.Hittable, error) {
	mat, err := d.Material.Build(ctx)
	if err != nil {
		return nil, err
	}
	return geometry.NewBox(vec(d.Min), vec(d.Max), mat), nil
}

// TriangleDescriptor serializes a single flat-shaded triangle.
type TriangleDescriptor struct {
	Vertices [3][3]float64 `json:"vertices"`
	Material MaterialRef   `json:"material"`
}

func (d *TriangleDescriptor) Build(ctx *BuildContext) (core.Hittable, error) {
	mat, err := d.Material.Build(ctx)
	if err != nil {
		return nil, err
	}
	return geometry.NewTriangle(vec(d.Vertices[0]), vec(d.Vertices[1]), vec(d.Vertices[2]), mat), nil
}

// MeshDescriptor serializes a Wavefront OBJ mesh reference. The path
// resolves relative to the world file's directory.
type MeshDescriptor struct {
	Path     string      `json:"path"`
	Material MaterialRef `json:"material"`
}

func (d *MeshDescriptor) Build(ctx *BuildContext) (core.Hittable, error) {
	mat, err := d.Material.Build(ctx)
	if err != nil {
		return nil, err
	}
	triangles, err := loaders.LoadOBJ(ctx.resolvePath(d.Path), mat)
	if err != nil {
		return nil, fmt.Errorf("mesh %q: %w", d.Path, err)
	}
	return geometry.NewTriangleMesh(triangles, ctx.Time0, ctx.Time1, ctx.Rng), nil
}

// TranslateDescriptor serializes a rigid translation of inner geometry.
type TranslateDescriptor struct {
	Inner  HittableRef `json:"inner"`
	Offset [3]float64  `json:"offset"`
}

func (d *TranslateDescriptor) Build(ctx *BuildContext) (core.Hittable, error) {
	inner, err := d.Inner.Build(ctx)
	if err != nil {
		return nil, err
	}
	return geometry.NewTranslate(inner, vec(d.Offset)), nil
}

// RotateYDescriptor serializes a rotation about the world y axis.
type RotateYDescriptor struct {
	Inner        HittableRef `json:"inner"`
	AngleDegrees float64     `json:"angle_degrees"`
}

func (d *RotateYDescriptor) Build(ctx *BuildContext) (core.Hittable, error) {
	inner, err := d.Inner.Build(ctx)
	if err != nil {
		return nil, err
	}
	return geometry.NewRotateY(inner, d.AngleDegrees), nil
}

// ConstantMediumDescriptor serializes a uniform-density volume filling the
// boundary geometry, scattering isotropically with the given albedo.
type ConstantMediumDescriptor struct {
	Boundary HittableRef `json:"boundary"`
	Density  float64     `json:"density"`
	Albedo   TextureRef  `json:"albedo"`
}

func (d *ConstantMediumDescriptor) Build(ctx *BuildContext) (core.Hittable, error) {
	boundary, err := d.Boundary.Build(ctx)
	if err != nil {
		return nil, err
	}
	albedo, err := d.Albedo.Build(ctx)
	if err != nil {
		return nil, err
	}
	return geometry.NewConstantMedium(boundary, d.Density, material.NewIsotropic(albedo)), nil
}
