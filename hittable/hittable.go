// Package hittable defines the capability contract shared by every
// intersectable scene item: geometric primitives, the aggregate list,
// transform wrappers, volumetric media, and the BVH itself.
package hittable

import (
	"math/rand"

	"github.com/loamlabs/pathtrace/aabb"
	"github.com/loamlabs/pathtrace/hrpp"
	"github.com/loamlabs/pathtrace/ray"
	"github.com/loamlabs/pathtrace/vec3"
)

// Material is the minimal surface-shading contract a HitRecord needs to
// carry. It is defined here (rather than imported from package material)
// to avoid a dependency cycle: package material implements it, and both
// the shading kernel and geometry primitives only need this interface.
type Material interface {
	Scatter(rIn ray.Ray, rec *HitRecord, rng *rand.Rand) (attenuation vec3.Vec3, scattered ray.Ray, ok bool)
	Emit(u, v float64, p vec3.Vec3) vec3.Vec3
}

// HitRecord describes a single ray-surface intersection.
type HitRecord struct {
	Point     vec3.Vec3
	Normal    vec3.Vec3 // unit, oriented against the incoming ray
	Material  Material
	T         float64
	U, V      float64
	FrontFace bool
}

// SetFaceNormal orients Normal against r and records which face was hit.
// outward must be a unit vector.
func (h *HitRecord) SetFaceNormal(r ray.Ray, outward vec3.Vec3) {
	h.FrontFace = r.Direction.Dot(outward) < 0
	if h.FrontFace {
		h.Normal = outward
	} else {
		h.Normal = outward.Neg()
	}
}

// Hittable is satisfied by anything a ray can intersect: geometric
// primitives, HittableList, transform wrappers, volumetric media, and
// the BVH node tree.
type Hittable interface {
	Hit(r ray.Ray, tMin, tMax float64) (HitRecord, bool)
	BoundingBox(t0, t1 float64) (aabb.AABB, bool)
}

// List is an insertion-ordered aggregate of hittables.
type List struct {
	Objects []Hittable
}

// NewList builds a List from the given objects.
func NewList(objects ...Hittable) *List {
	return &List{Objects: append([]Hittable{}, objects...)}
}

// Add appends a hittable to the list.
func (l *List) Add(h Hittable) { l.Objects = append(l.Objects, h) }

// Hit returns the nearest intersection among all objects with
// t in [tMin, tMax].
func (l *List) Hit(r ray.Ray, tMin, tMax float64) (HitRecord, bool) {
	var closest HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, obj := range l.Objects {
		if rec, ok := obj.Hit(r, tMin, closestSoFar); ok {
			hitAnything = true
			closestSoFar = rec.T
			closest = rec
		}
	}
	return closest, hitAnything
}

// PredictorAttacher is satisfied by anything that can have an HRPP
// predictor registry attached, namely *bvh.BVH. It is defined here
// (rather than imported from package bvh) for the same reason as
// Material above: avoiding a dependency cycle, since List.AttachPredictor
// needs to recognize a nested BVH without importing package bvh.
type PredictorAttacher interface {
	AttachPredictor(reg *hrpp.Registry)
}

// AttachPredictor forwards reg to every child object that implements
// PredictorAttacher. A renderer can call this on the top-level world
// without knowing where, or whether, a BVH sits inside it.
func (l *List) AttachPredictor(reg *hrpp.Registry) {
	for _, obj := range l.Objects {
		if a, ok := obj.(PredictorAttacher); ok {
			a.AttachPredictor(reg)
		}
	}
}

// BoundingBox returns the union of every child's box, or false if any
// child is unbounded or the list is empty.
func (l *List) BoundingBox(t0, t1 float64) (aabb.AABB, bool) {
	if len(l.Objects) == 0 {
		return aabb.AABB{}, false
	}
	var out *aabb.AABB
	for _, obj := range l.Objects {
		box, ok := obj.BoundingBox(t0, t1)
		if !ok {
			return aabb.AABB{}, false
		}
		out = aabb.Union(out, &box)
	}
	return *out, true
}
