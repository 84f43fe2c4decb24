package geometry

import (
	"math/rand"

	"github.com/AndreasKarg/raytracer-weekend/pkg/core"
)

// trianglePadding thickens an axis-degenerate triangle's bounding box so the
// BVH never sees a zero-volume box.
const trianglePadding = 0.0001

// Triangle is a single triangle. When Normals is set, shading normals are
// interpolated barycentrically (smooth shading); otherwise the geometric
// normal of the face is used. When UVs is set, texture coordinates are
// interpolated the same way; otherwise the barycentric coordinates
// themselves serve as UV.
type Triangle struct {
	Vertices [3]core.Vec3
	Normals  *[3]core.Vec3
	UVs      *[3]core.Vec2
	Material core.Material
}

// NewTriangle creates a flat-shaded triangle
func NewTriangle(v0, v1, v2 core.Vec3, material core.Material) *Triangle {
	return &Triangle{Vertices: [3]core.Vec3{v0, v1, v2}, Material: material}
}

// NewSmoothTriangle creates a triangle with per-vertex normals and optional UVs
func NewSmoothTriangle(vertices [3]core.Vec3, normals *[3]core.Vec3, uvs *[3]core.Vec2, material core.Material) *Triangle {
	return &Triangle{Vertices: vertices, Normals: normals, UVs: uvs, Material: material}
}

// Hit runs a Möller-Trumbore intersection test. Degenerate and back-facing
// triangles are rejected.
func (tr *Triangle) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand) (*core.HitRecord, bool) {
	edge1 := tr.Vertices[1].Subtract(tr.Vertices[0])
	edge2 := tr.Vertices[2].Subtract(tr.Vertices[0])

	pvec := ray.Direction.Cross(edge2)
	det := edge1.Dot(pvec)

	// det <= 0 covers both degenerate triangles and back faces.
	if det < 1e-12 {
		return nil, false
	}
	invDet := 1.0 / det

	tvec := ray.Origin.Subtract(tr.Vertices[0])
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return nil, false
	}

	qvec := tvec.Cross(edge1)
	v := ray.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return nil, false
	}

	t := edge2.Dot(qvec) * invDet
	if t < tMin || t > tMax {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		UV:       tr.uvAt(u, v),
		Material: tr.Material,
	}
	hit.SetFaceNormal(ray, tr.normalAt(u, v, edge1, edge2))

	return hit, true
}

func (tr *Triangle) normalAt(u, v float64, edge1, edge2 core.Vec3) core.Vec3 {
	if tr.Normals == nil {
		return edge1.Cross(edge2).Normalize()
	}

	w := 1 - u - v
	return tr.Normals[0].Multiply(w).
		Add(tr.Normals[1].Multiply(u)).
		Add(tr.Normals[2].Multiply(v)).
		Normalize()
}

func (tr *Triangle) uvAt(u, v float64) core.Vec2 {
	if tr.UVs == nil {
		return core.NewVec2(u, v)
	}

	w := 1 - u - v
	return core.NewVec2(
		w*tr.UVs[0].U+u*tr.UVs[1].U+v*tr.UVs[2].U,
		w*tr.UVs[0].V+u*tr.UVs[1].V+v*tr.UVs[2].V,
	)
}

// BoundingBox returns the vertex extent, padded on any axis where the
// triangle is degenerate (zero thickness).
func (tr *Triangle) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box := core.NewAABBFromPoints(tr.Vertices[0], tr.Vertices[1], tr.Vertices[2])

	size := box.Size()
	if size.X < trianglePadding {
		box.Min.X -= trianglePadding
		box.Max.X += trianglePadding
	}
	if size.Y < trianglePadding {
		box.Min.Y -= trianglePadding
		box.Max.Y += trianglePadding
	}
	if size.Z < trianglePadding {
		box.Min.Z -= trianglePadding
		box.Max.Z += trianglePadding
	}

	return box, true
}
