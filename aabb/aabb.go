// Package aabb implements axis-aligned bounding boxes and the slab-method
// ray intersection test used throughout the BVH.
package aabb

import (
	"github.com/loamlabs/pathtrace/ray"
	"github.com/loamlabs/pathtrace/vec3"
)

// AABB is an axis-aligned box with Min <= Max component-wise.
type AABB struct {
	Min, Max vec3.Vec3
}

// New builds an AABB from two corners.
func New(min, max vec3.Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// Hit reports whether r's parametric interval [tMin, tMax] intersects
// all three slabs of the box, using Andrew Kensler's slab method.
// Axis-aligned rays divide by zero and propagate infinities correctly;
// no special case is needed.
func (b AABB) Hit(r ray.Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		invD := 1.0 / r.Direction.At(axis)
		t0 := (b.Min.At(axis) - r.Origin.At(axis)) * invD
		t1 := (b.Max.At(axis) - r.Origin.At(axis)) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax < tMin {
			return false
		}
	}
	return true
}

// Union returns the tightest box enclosing both a and b. Either may be
// absent (nil); Union(nil, nil) is nil.
func Union(a, b *AABB) *AABB {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		cp := *b
		return &cp
	case b == nil:
		cp := *a
		return &cp
	default:
		u := AABB{Min: vec3.Min(a.Min, b.Min), Max: vec3.Max(a.Max, b.Max)}
		return &u
	}
}
