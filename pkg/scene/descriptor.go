package scene

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"reflect"
	"strconv"

	"github.com/AndreasKarg/raytracer-weekend/pkg/core"
	"github.com/AndreasKarg/raytracer-weekend/pkg/material"
	"github.com/AndreasKarg/raytracer-weekend/pkg/renderer"
)

// BuildContext carries the state descriptor rehydration needs. Rng feeds
// procedural content (Perlin tables, BVH splits), the time interval bounds
// motion-blurred geometry, and BaseDir anchors relative asset paths.
type BuildContext struct {
	Rng          *rand.Rand
	Time0, Time1 float64
	BaseDir      string
}

func (c *BuildContext) resolvePath(path string) string {
	if c.BaseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.BaseDir, path)
}

// HittableDescriptor is the serializable form of a piece of geometry.
type HittableDescriptor interface {
	Build(ctx *BuildContext) (core.Hittable, error)
}

// MaterialDescriptor is the serializable form of a material.
type MaterialDescriptor interface {
	Build(ctx *BuildContext) (core.Material, error)
}

// TextureDescriptor is the serializable form of a texture.
type TextureDescriptor interface {
	Build(ctx *BuildContext) (material.Texture, error)
}

// registry maps JSON "type" tags to descriptor factories and back. Each
// descriptor kind (hittable, material, texture) gets its own instance.
type registry[T any] struct {
	kind      string
	factories map[string]func() T
	tags      map[reflect.Type]string
}

func newRegistry[T any](kind string) *registry[T] {
	return &registry[T]{
		kind:      kind,
		factories: make(map[string]func() T),
		tags:      make(map[reflect.Type]string),
	}
}

func (r *registry[T]) register(tag string, factory func() T) {
	if _, exists := r.factories[tag]; exists {
		panic(fmt.Sprintf("scene: duplicate %s type %q", r.kind, tag))
	}
	r.factories[tag] = factory
	r.tags[reflect.TypeOf(factory())] = tag
}

func (r *registry[T]) marshal(descriptor T) ([]byte, error) {
	tag, ok := r.tags[reflect.TypeOf(descriptor)]
	if !ok {
		return nil, fmt.Errorf("scene: unregistered %s descriptor %T", r.kind, descriptor)
	}

	data, err := json.Marshal(descriptor)
	if err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	fields["type"] = json.RawMessage(strconv.Quote(tag))

	return json.Marshal(fields)
}

func (r *registry[T]) unmarshal(data []byte) (T, error) {
	var zero T

	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return zero, err
	}
	if head.Type == "" {
		return zero, fmt.Errorf("scene: %s descriptor is missing a \"type\" field", r.kind)
	}

	factory, ok := r.factories[head.Type]
	if !ok {
		return zero, fmt.Errorf("scene: unknown %s type %q", r.kind, head.Type)
	}

	descriptor := factory()
	if err := json.Unmarshal(data, descriptor); err != nil {
		return zero, fmt.Errorf("scene: decoding %s %q: %w", r.kind, head.Type, err)
	}

	return descriptor, nil
}

var (
	hittableRegistry = newRegistry[HittableDescriptor]("hittable")
	materialRegistry = newRegistry[MaterialDescriptor]("material")
	textureRegistry  = newRegistry[TextureDescriptor]("texture")
)

// RegisterHittable makes a geometry descriptor type available under the given
// JSON tag. The factory must return a pointer to a fresh descriptor.
func RegisterHittable(tag string, factory func() HittableDescriptor) {
	hittableRegistry.register(tag, factory)
}

// RegisterMaterial makes a material descriptor type available under the given
// JSON tag.
func RegisterMaterial(tag string, factory func() MaterialDescriptor) {
	materialRegistry.register(tag, factory)
}

// RegisterTexture makes a texture descriptor type available under the given
// JSON tag.
func RegisterTexture(tag string, factory func() TextureDescriptor) {
	textureRegistry.register(tag, factory)
}

// HittableRef wraps a HittableDescriptor so it round-trips through JSON with
// a "type" discriminator field.
type HittableRef struct {
	Descriptor HittableDescriptor
}

func (r HittableRef) MarshalJSON() ([]byte, error) {
	return hittableRegistry.marshal(r.Descriptor)
}

func (r *HittableRef) UnmarshalJSON(data []byte) error {
	descriptor, err := hittableRegistry.unmarshal(data)
	if err != nil {
		return err
	}
	r.Descriptor = descriptor
	return nil
}

func (r HittableRef) Build(ctx *BuildContext) (core.Hittable, error) {
	return r.Descriptor.Build(ctx)
}

// MaterialRef wraps a MaterialDescriptor analogously to HittableRef.
type MaterialRef struct {
	Descriptor MaterialDescriptor
}

func (r MaterialRef) MarshalJSON() ([]byte, error) {
	return materialRegistry.marshal(r.Descriptor)
}

func (r *MaterialRef) UnmarshalJSON(data []byte) error {
	descriptor, err := materialRegistry.unmarshal(data)
	if err != nil {
		return err
	}
	r.Descriptor = descriptor
	return nil
}

func (r MaterialRef) Build(ctx *BuildContext) (core.Material, error) {
	return r.Descriptor.Build(ctx)
}

// TextureRef wraps a TextureDescriptor analogously to HittableRef.
type TextureRef struct {
	Descriptor TextureDescriptor
}

func (r TextureRef) MarshalJSON() ([]byte, error) {
	return textureRegistry.marshal(r.Descriptor)
}

func (r *TextureRef) UnmarshalJSON(data []byte) error {
	descriptor, err := textureRegistry.unmarshal(data)
	if err != nil {
		return err
	}
	r.Descriptor = descriptor
	return nil
}

func (r TextureRef) Build(ctx *BuildContext) (material.Texture, error) {
	return r.Descriptor.Build(ctx)
}

// CameraDescriptor is the serializable camera placement. The aspect ratio is
// deliberately absent so it follows the output resolution at build time.
type CameraDescriptor struct {
	LookFrom      [3]float64 `json:"look_from"`
	LookAt        [3]float64 `json:"look_at"`
	VUp           [3]float64 `json:"v_up"`
	VFovDegrees   float64    `json:"vertical_fov_degrees"`
	Aperture      float64    `json:"aperture"`
	FocusDistance float64    `json:"focus_distance"`
}

// Camera builds the live camera for the given output aspect ratio and
// shutter interval.
func (d CameraDescriptor) Camera(aspectRatio, time0, time1 float64) *renderer.Camera {
	return renderer.NewCamera(renderer.CameraConfig{
		LookFrom:      vec(d.LookFrom),
		LookAt:        vec(d.LookAt),
		VUp:           vec(d.VUp),
		VFovDegrees:   d.VFovDegrees,
		AspectRatio:   aspectRatio,
		Aperture:      d.Aperture,
		FocusDistance: d.FocusDistance,
		Time0:         time0,
		Time1:         time1,
	})
}

// World is the root of a scene descriptor file.
type World struct {
	Background [3]float64         `json:"background"`
	Cameras    []CameraDescriptor `json:"cameras"`
	Geometry   []HittableRef      `json:"geometry"`
}

// LoadWorld reads and decodes a world descriptor file.
func LoadWorld(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: reading world file: %w", err)
	}

	var world World
	if err := json.Unmarshal(data, &world); err != nil {
		return nil, fmt.Errorf("scene: parsing %s: %w", path, err)
	}

	return &world, nil
}

// Save writes the world descriptor to path as indented JSON.
func (w *World) Save(path string) error {
	data, err := json.MarshalIndent(w, "", "  ")
	if err != nil {
		return fmt.Errorf("scene: encoding world: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Build rehydrates the descriptor tree into a renderable scene using the
// camera at cameraIndex. The geometry is gathered under a single BVH.
func (w *World) Build(aspectRatio float64, cameraIndex int, ctx *BuildContext) (*renderer.Scene, error) {
	if len(w.Geometry) == 0 {
		return nil, fmt.Errorf("scene: world has no geometry")
	}
	if cameraIndex < 0 || cameraIndex >= len(w.Cameras) {
		return nil, fmt.Errorf("scene: camera index %d out of range, world has %d camera(s)", cameraIndex, len(w.Cameras))
	}

	objects := make([]core.Hittable, 0, len(w.Geometry))
	for i, ref := range w.Geometry {
		object, err := ref.Build(ctx)
		if err != nil {
			return nil, fmt.Errorf("scene: building geometry[%d]: %w", i, err)
		}
		objects = append(objects, object)
	}

	return &renderer.Scene{
		World:      core.NewBVHNode(objects, ctx.Time0, ctx.Time1, ctx.Rng),
		Camera:     w.Cameras[cameraIndex].Camera(aspectRatio, ctx.Time0, ctx.Time1),
		Background: vec(w.Background),
	}, nil
}

func vec(a [3]float64) core.Vec3 {
	return core.Vec3{X: a[0], Y: a[1], Z: a[2]}
}
