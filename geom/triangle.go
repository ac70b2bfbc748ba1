package geom

import (
	"math"

	"github.com/loamlabs/pathtrace/aabb"
	"github.com/loamlabs/pathtrace/hittable"
	"github.com/loamlabs/pathtrace/ray"
	"github.com/loamlabs/pathtrace/vec3"
)

// Triangle is a flat triangle defined by three vertices, intersected
// with the Möller-Trumbore algorithm. Used by OBJ-loaded meshes (the
// OBJ loader itself is an external collaborator).
type Triangle struct {
	V0, V1, V2 vec3.Vec3
	Material   hittable.Material
}

func NewTriangle(v0, v1, v2 vec3.Vec3, mat hittable.Material) *Triangle {
	return &Triangle{V0: v0, V1: v1, V2: v2, Material: mat}
}

func (tr *Triangle) Hit(r ray.Ray, tMin, tMax float64) (hittable.HitRecord, bool) {
	const epsilon = 1e-8
	edge1 := tr.V1.Sub(tr.V0)
	edge2 := tr.V2.Sub(tr.V0)
	h := r.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if math.Abs(a) < epsilon {
		return hittable.HitRecord{}, false // ray parallel to the triangle
	}

	f := 1.0 / a
	s := r.Origin.Sub(tr.V0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return hittable.HitRecord{}, false
	}

	q := s.Cross(edge1)
	v := f * r.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return hittable.HitRecord{}, false
	}

	t := f * edge2.Dot(q)
	if t < tMin || t > tMax {
		return hittable.HitRecord{}, false
	}

	rec := hittable.HitRecord{T: t, U: u, V: v, Material: tr.Material}
	rec.Point = r.At(t)
	rec.SetFaceNormal(r, edge1.Cross(edge2).Unit())
	return rec, true
}

func (tr *Triangle) BoundingBox(t0, t1 float64) (aabb.AABB, bool) {
	min := vec3.Min(vec3.Min(tr.V0, tr.V1), tr.V2)
	max := vec3.Max(vec3.Max(tr.V0, tr.V1), tr.V2)
	const pad = 0.0001
	padVec := vec3.New(pad, pad, pad)
	return aabb.New(min.Sub(padVec), max.Add(padVec)), true
}
