// Package bvh implements the bounding-volume hierarchy acceleration
// structure: a flat-array binary tree over hittables built once and
// traversed many times, optionally consulting a per-tree HRPP predictor
// (package hrpp) to skip upper levels for spatially coherent rays.
package bvh

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"sync/atomic"

	"github.com/loamlabs/pathtrace/aabb"
	"github.com/loamlabs/pathtrace/hittable"
	"github.com/loamlabs/pathtrace/hrpp"
	"github.com/loamlabs/pathtrace/ray"
)

// noParent marks a node with no parent, i.e. the root.
const noParent = -1

// Child is a tagged reference to a Node's child: either another
// interior node (by index) or a leaf hittable. Parent links are stored
// as indices rather than back-pointers so nodes stay relocatable inside
// a growing slice and ownership never cycles.
type Child struct {
	IsLeaf bool
	Index  int               // valid when !IsLeaf: index into BVH.Nodes
	Leaf   hittable.Hittable // valid when IsLeaf
}

func interiorChild(index int) Child { return Child{IsLeaf: false, Index: index} }
func leafChild(h hittable.Hittable) Child { return Child{IsLeaf: true, Leaf: h} }

// Node is one entry of the flat node array.
type Node struct {
	Parent int // noParent if this is the root
	Left   Child
	Right  Child
	Box    aabb.AABB
}

// idCounter hands out unique BVH ids so a predictor registry can locate
// the predictor belonging to the tree currently being traversed.
var idCounter uint64

// BVH is an immutable flat binary tree over a set of hittables.
type BVH struct {
	ID        uint64
	RootIndex int
	Nodes     []Node

	// registry is the optional HRPP predictor registry this BVH was
	// attached to via AttachPredictor (see predictor.go). Nil means
	// Hit always does a plain traversal.
	registry *hrpp.Registry
}

// buildItem pairs a hittable with its precomputed bounding box so the
// axis-key sort and union never need to recompute it.
type buildItem struct {
	h   hittable.Hittable
	box aabb.AABB
}

// Build constructs a BVH over objects for the motion interval [t0, t1].
// It is a fatal, build-time error (panic) for any object to lack a
// bounding box: the BVH requires bounded geometry.
func Build(objects []hittable.Hittable, t0, t1 float64, rng *rand.Rand) *BVH {
	items := make([]buildItem, len(objects))
	for i, o := range objects {
		box, ok := o.BoundingBox(t0, t1)
		if !ok {
			panic(fmt.Sprintf("bvh: object %d has no bounding box; BVH requires bounded geometry", i))
		}
		items[i] = buildItem{h: o, box: box}
	}

	b := &BVH{
		ID:    atomic.AddUint64(&idCounter, 1),
		Nodes: make([]Node, 0, 2*len(objects)+1),
	}
	b.RootIndex = b.build(items, rng)
	return b
}

// build recursively partitions items and returns the index of the node
// it pushed as the subtree root. The last node pushed overall is the
// tree root.
func (b *BVH) build(items []buildItem, rng *rand.Rand) int {
	axis := rng.Intn(3)
	less := func(i, j int) bool {
		return axisKey(items[i].box, axis) < axisKey(items[j].box, axis)
	}

	var left, right Child
	var box aabb.AABB

	switch len(items) {
	case 1:
		left = leafChild(items[0].h)
		right = left
		box = items[0].box

	case 2:
		if less(1, 0) {
			items[0], items[1] = items[1], items[0]
		}
		left = leafChild(items[0].h)
		right = leafChild(items[1].h)
		box = *aabb.Union(&items[0].box, &items[1].box)

	default:
		sort.Slice(items, less)
		mid := len(items) / 2
		leftIdx := b.build(items[:mid], rng)
		rightIdx := b.build(items[mid:], rng)
		left = interiorChild(leftIdx)
		right = interiorChild(rightIdx)
		box = *aabb.Union(&b.Nodes[leftIdx].Box, &b.Nodes[rightIdx].Box)
	}

	node := Node{Parent: noParent, Left: left, Right: right, Box: box}
	b.Nodes = append(b.Nodes, node)
	index := len(b.Nodes) - 1

	if !left.IsLeaf {
		b.Nodes[left.Index].Parent = index
	}
	if !right.IsLeaf && right.Index != left.Index {
		b.Nodes[right.Index].Parent = index
	}
	return index
}

// axisKey orders boxes by the minimum corner's coordinate on axis,
// using total float ordering so NaN components sort deterministically
// rather than corrupting the partition.
func axisKey(box aabb.AABB, axis int) float64 {
	v := box.Min.At(axis)
	if v != v { // NaN: push to one consistent end of the ordering
		return math.Inf(1)
	}
	return v
}

// BoundingBox returns the root node's box.
func (b *BVH) BoundingBox(t0, t1 float64) (aabb.AABB, bool) {
	if len(b.Nodes) == 0 {
		return aabb.AABB{}, false
	}
	return b.Nodes[b.RootIndex].Box, true
}

// hitNode intersects the subtree rooted at nodeIndex and additionally
// reports the index of the node whose leaf produced the hit (or the
// nearer of the two subtrees' reported leaf-parent when both hit) so
// HRPP can learn from it. leafNode is -1 when there is no hit.
func (b *BVH) hitNode(nodeIndex int, r ray.Ray, tMin, tMax float64) (rec hittable.HitRecord, leafNode int, hit bool) {
	node := &b.Nodes[nodeIndex]
	if !node.Box.Hit(r, tMin, tMax) {
		return hittable.HitRecord{}, -1, false
	}

	leftRec, leftLeaf, leftHit := b.hitChild(node.Left, nodeIndex, r, tMin, tMax)

	rightMax := tMax
	if leftHit {
		rightMax = leftRec.T
	}
	rightRec, rightLeaf, rightHit := b.hitChild(node.Right, nodeIndex, r, tMin, rightMax)

	switch {
	case leftHit && rightHit:
		if rightRec.T < leftRec.T {
			return rightRec, rightLeaf, true
		}
		return leftRec, leftLeaf, true
	case leftHit:
		return leftRec, leftLeaf, true
	case rightHit:
		return rightRec, rightLeaf, true
	default:
		return hittable.HitRecord{}, -1, false
	}
}

// hitChild dispatches to either a nested interior node or a leaf
// hittable's own Hit. For a leaf, the reported "leaf node" for HRPP
// purposes is the parent node's index (the leaf itself has no slot in
// the node array).
func (b *BVH) hitChild(c Child, parentIndex int, r ray.Ray, tMin, tMax float64) (hittable.HitRecord, int, bool) {
	if c.IsLeaf {
		rec, ok := c.Leaf.Hit(r, tMin, tMax)
		if !ok {
			return hittable.HitRecord{}, -1, false
		}
		return rec, parentIndex, true
	}
	return b.hitNode(c.Index, r, tMin, tMax)
}
