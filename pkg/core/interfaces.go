package core

import "math/rand"

// HitRecord describes a single ray-surface intersection. It lives for exactly
// one shading step; the material reference is borrowed, never owned.
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal, oriented against the incoming ray
	T         float64  // Ray parameter at the intersection
	UV        Vec2     // Surface coordinates at the intersection
	FrontFace bool     // Whether the ray hit the front face
	Material  Material // Material at the hit point
}

// SetFaceNormal orients the normal against the incoming ray and records
// which face was hit.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Hittable is anything a ray can be tested against.
//
// Hit reports the closest intersection with t in [tMin, tMax], if any. The
// random source is threaded explicitly because volumetric primitives sample
// a free-flight distance during intersection.
//
// BoundingBox reports a box valid over [time0, time1]. The second return is
// false only for unbounded primitives, which must never be placed inside a
// BVH.
type Hittable interface {
	Hit(ray Ray, tMin, tMax float64, rng *rand.Rand) (*HitRecord, bool)
	BoundingBox(time0, time1 float64) (AABB, bool)
}

// ScatterResult is a material's continuation of a light path.
type ScatterResult struct {
	Scattered   Ray  // The scattered continuation ray
	Attenuation Vec3 // Color attenuation applied to light carried by it
}

// Material maps an incoming ray and a hit to emitted light and, for
// scattering materials, an attenuated continuation ray.
//
// Scatter returns false when the material terminates the path (pure
// emitters, absorbed rays). Emitted returns black for non-emissive
// materials.
type Material interface {
	Scatter(rayIn Ray, rec *HitRecord, rng *rand.Rand) (ScatterResult, bool)
	Emitted(uv Vec2, p Vec3) Vec3
}
