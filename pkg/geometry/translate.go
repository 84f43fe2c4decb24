package geometry

import (
	"math/rand"

	"github.com/AndreasKarg/raytracer-weekend/pkg/core"
)

// Translate rigidly shifts an inner Hittable by a fixed offset. The wrapper
// exclusively owns its inner object; composition forms a tree, never a graph.
type Translate struct {
	inner  core.Hittable
	offset core.Vec3
}

// NewTranslate wraps inner so it appears shifted by offset
func NewTranslate(inner core.Hittable, offset core.Vec3) *Translate {
	return &Translate{inner: inner, offset: offset}
}

// Hit moves the ray into the inner object's local space, delegates, then
// shifts the hit point back. Face orientation is re-derived against the
// translated ray, whose direction equals the original's.
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand) (*core.HitRecord, bool) {
	movedRay := core.NewRay(ray.Origin.Subtract(t.offset), ray.Direction, ray.Time)

	hit, ok := t.inner.Hit(movedRay, tMin, tMax, rng)
	if !ok {
		return nil, false
	}

	outwardNormal := hit.Normal
	if !hit.FrontFace {
		outwardNormal = outwardNormal.Negate()
	}

	hit.Point = hit.Point.Add(t.offset)
	hit.SetFaceNormal(movedRay, outwardNormal)

	return hit, true
}

// BoundingBox returns the inner box shifted by the offset
func (t *Translate) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := t.inner.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}

	return core.NewAABB(box.Min.Add(t.offset), box.Max.Add(t.offset)), true
}
