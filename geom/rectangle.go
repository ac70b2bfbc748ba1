package geom

import (
	"github.com/loamlabs/pathtrace/aabb"
	"github.com/loamlabs/pathtrace/hittable"
	"github.com/loamlabs/pathtrace/ray"
	"github.com/loamlabs/pathtrace/vec3"
)

// RectXY is an axis-aligned rectangle in the plane z = K, spanning
// [X0,X1] x [Y0,Y1]. RectXZ and RectYZ are the analogous rectangles on
// the other two axis-aligned planes; all three share the same
// intersection shape, just permuted across axes.
type RectXY struct {
	X0, X1, Y0, Y1, K float64
	Material          hittable.Material
}

func NewRectXY(x0, x1, y0, y1, k float64, mat hittable.Material) *RectXY {
	return &RectXY{X0: x0, X1: x1, Y0: y0, Y1: y1, K: k, Material: mat}
}

func (rect *RectXY) Hit(r ray.Ray, tMin, tMax float64) (hittable.HitRecord, bool) {
	t := (rect.K - r.Origin.Z) / r.Direction.Z
	if t < tMin || t > tMax {
		return hittable.HitRecord{}, false
	}
	x := r.Origin.X + t*r.Direction.X
	y := r.Origin.Y + t*r.Direction.Y
	if x < rect.X0 || x > rect.X1 || y < rect.Y0 || y > rect.Y1 {
		return hittable.HitRecord{}, false
	}
	rec := hittable.HitRecord{
		T: t,
		U: (x - rect.X0) / (rect.X1 - rect.X0),
		V: (y - rect.Y0) / (rect.Y1 - rect.Y0),
	}
	rec.Point = r.At(t)
	rec.Material = rect.Material
	rec.SetFaceNormal(r, vec3.New(0, 0, 1))
	return rec, true
}

func (rect *RectXY) BoundingBox(t0, t1 float64) (aabb.AABB, bool) {
	const pad = 0.0001
	return aabb.New(
		vec3.New(rect.X0, rect.Y0, rect.K-pad),
		vec3.New(rect.X1, rect.Y1, rect.K+pad),
	), true
}

// RectXZ is an axis-aligned rectangle in the plane y = K.
type RectXZ struct {
	X0, X1, Z0, Z1, K float64
	Material          hittable.Material
}

func NewRectXZ(x0, x1, z0, z1, k float64, mat hittable.Material) *RectXZ {
	return &RectXZ{X0: x0, X1: x1, Z0: z0, Z1: z1, K: k, Material: mat}
}

func (rect *RectXZ) Hit(r ray.Ray, tMin, tMax float64) (hittable.HitRecord, bool) {
	t := (rect.K - r.Origin.Y) / r.Direction.Y
	if t < tMin || t > tMax {
		return hittable.HitRecord{}, false
	}
	x := r.Origin.X + t*r.Direction.X
	z := r.Origin.Z + t*r.Direction.Z
	if x < rect.X0 || x > rect.X1 || z < rect.Z0 || z > rect.Z1 {
		return hittable.HitRecord{}, false
	}
	rec := hittable.HitRecord{
		T: t,
		U: (x - rect.X0) / (rect.X1 - rect.X0),
		V: (z - rect.Z0) / (rect.Z1 - rect.Z0),
	}
	rec.Point = r.At(t)
	rec.Material = rect.Material
	rec.SetFaceNormal(r, vec3.New(0, 1, 0))
	return rec, true
}

func (rect *RectXZ) BoundingBox(t0, t1 float64) (aabb.AABB, bool) {
	const pad = 0.0001
	return aabb.New(
		vec3.New(rect.X0, rect.K-pad, rect.Z0),
		vec3.New(rect.X1, rect.K+pad, rect.Z1),
	), true
}

// RectYZ is an axis-aligned rectangle in the plane x = K.
type RectYZ struct {
	Y0, Y1, Z0, Z1, K float64
	Material          hittable.Material
}

func NewRectYZ(y0, y1, z0, z1, k float64, mat hittable.Material) *RectYZ {
	return &RectYZ{Y0: y0, Y1: y1, Z0: z0, Z1: z1, K: k, Material: mat}
}

func (rect *RectYZ) Hit(r ray.Ray, tMin, tMax float64) (hittable.HitRecord, bool) {
	t := (rect.K - r.Origin.X) / r.Direction.X
	if t < tMin || t > tMax {
		return hittable.HitRecord{}, false
	}
	y := r.Origin.Y + t*r.Direction.Y
	z := r.Origin.Z + t*r.Direction.Z
	if y < rect.Y0 || y > rect.Y1 || z < rect.Z0 || z > rect.Z1 {
		return hittable.HitRecord{}, false
	}
	rec := hittable.HitRecord{
		T: t,
		U: (y - rect.Y0) / (rect.Y1 - rect.Y0),
		V: (z - rect.Z0) / (rect.Z1 - rect.Z0),
	}
	rec.Point = r.At(t)
	rec.Material = rect.Material
	rec.SetFaceNormal(r, vec3.New(1, 0, 0))
	return rec, true
}

func (rect *RectYZ) BoundingBox(t0, t1 float64) (aabb.AABB, bool) {
	const pad = 0.0001
	return aabb.New(
		vec3.New(rect.K-pad, rect.Y0, rect.Z0),
		vec3.New(rect.K+pad, rect.Y1, rect.Z1),
	), true
}
