package core

import (
	"fmt"
	"math/rand"
	"sort"
)

// BVHNode is a node in the bounding volume hierarchy. Every node owns one or
// two child Hittables and a box equal to the union of its children's boxes
// over the construction time interval. Built once, immutable thereafter.
type BVHNode struct {
	left  Hittable
	right Hittable // nil for single-leaf nodes
	box   AABB
}

// NewBVHNode recursively partitions objects into a binary tree. The random
// source picks the split axis and is threaded explicitly so builds are
// reproducible given a fixed seed.
//
// Every object must report a bounding box over [time0, time1]; constructing
// a BVH over an unbounded primitive is a precondition violation and panics.
func NewBVHNode(objects []Hittable, time0, time1 float64, rng *rand.Rand) *BVHNode {
	if len(objects) == 0 {
		panic("bvh: cannot build over an empty object list")
	}

	// Copy so concurrent builds over the same slice never race on the sort.
	objs := make([]Hittable, len(objects))
	copy(objs, objects)

	return buildBVH(objs, time0, time1, rng)
}

func buildBVH(objects []Hittable, time0, time1 float64, rng *rand.Rand) *BVHNode {
	axis := rng.Intn(3)

	node := &BVHNode{}

	switch len(objects) {
	case 1:
		node.left = objects[0]
	case 2:
		node.left = objects[0]
		node.right = objects[1]
	default:
		sort.Slice(objects, func(i, j int) bool {
			return boxMin(objects[i], time0, time1, axis) < boxMin(objects[j], time0, time1, axis)
		})

		mid := len(objects) / 2
		node.left = buildBVH(objects[:mid], time0, time1, rng)
		node.right = buildBVH(objects[mid:], time0, time1, rng)
	}

	node.box = mustBoundingBox(node.left, time0, time1)
	if node.right != nil {
		node.box = node.box.Union(mustBoundingBox(node.right, time0, time1))
	}

	return node
}

func boxMin(object Hittable, time0, time1 float64, axis int) float64 {
	return mustBoundingBox(object, time0, time1).Min.Axis(axis)
}

func mustBoundingBox(object Hittable, time0, time1 float64) AABB {
	box, ok := object.BoundingBox(time0, time1)
	if !ok {
		panic(fmt.Sprintf("bvh: object %T has no bounding box", object))
	}
	return box
}

// Hit tests the ray against the node's box first, then recurses into the
// children. The right child is tested with tMax narrowed to the left hit's
// t, so whichever child reports a hit last is necessarily the closest.
func (n *BVHNode) Hit(ray Ray, tMin, tMax float64, rng *rand.Rand) (*HitRecord, bool) {
	if !n.box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	hitLeft, okLeft := n.left.Hit(ray, tMin, tMax, rng)
	if okLeft {
		tMax = hitLeft.T
	}

	if n.right != nil {
		if hitRight, okRight := n.right.Hit(ray, tMin, tMax, rng); okRight {
			return hitRight, true
		}
	}

	return hitLeft, okLeft
}

// BoundingBox returns the precomputed union of the children's boxes.
func (n *BVHNode) BoundingBox(time0, time1 float64) (AABB, bool) {
	return n.box, true
}
