package geometry

import (
	"math/rand"

	"github.com/AndreasKarg/raytracer-weekend/pkg/core"
)

// TriangleMesh owns a collection of triangles behind an internal BVH, so a
// loaded model costs O(log n) per ray instead of a linear scan.
type TriangleMesh struct {
	root *core.BVHNode
}

// NewTriangleMesh builds a mesh over the given triangles. The random source
// drives the internal BVH construction.
func NewTriangleMesh(triangles []*Triangle, time0, time1 float64, rng *rand.Rand) *TriangleMesh {
	objects := make([]core.Hittable, len(triangles))
	for i, tri := range triangles {
		objects[i] = tri
	}

	return &TriangleMesh{root: core.NewBVHNode(objects, time0, time1, rng)}
}

// Hit delegates to the internal BVH
func (m *TriangleMesh) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand) (*core.HitRecord, bool) {
	return m.root.Hit(ray, tMin, tMax, rng)
}

// BoundingBox returns the internal BVH root box
func (m *TriangleMesh) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return m.root.BoundingBox(time0, time1)
}
