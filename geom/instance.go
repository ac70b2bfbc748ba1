package geom

import (
	"math"

	"github.com/loamlabs/pathtrace/aabb"
	"github.com/loamlabs/pathtrace/hittable"
	"github.com/loamlabs/pathtrace/ray"
	"github.com/loamlabs/pathtrace/vec3"
)

// Translate wraps a hittable, offsetting it by Offset. It transforms
// the incoming ray into the wrapped object's local space rather than
// transforming the geometry itself.
type Translate struct {
	Object hittable.Hittable
	Offset vec3.Vec3
}

func NewTranslate(object hittable.Hittable, offset vec3.Vec3) *Translate {
	return &Translate{Object: object, Offset: offset}
}

func (t *Translate) Hit(r ray.Ray, tMin, tMax float64) (hittable.HitRecord, bool) {
	moved := ray.New(r.Origin.Sub(t.Offset), r.Direction, r.Time)
	rec, ok := t.Object.Hit(moved, tMin, tMax)
	if !ok {
		return hittable.HitRecord{}, false
	}
	rec.Point = rec.Point.Add(t.Offset)
	rec.SetFaceNormal(moved, rec.Normal)
	return rec, true
}

func (t *Translate) BoundingBox(t0, t1 float64) (aabb.AABB, bool) {
	box, ok := t.Object.BoundingBox(t0, t1)
	if !ok {
		return aabb.AABB{}, false
	}
	return aabb.New(box.Min.Add(t.Offset), box.Max.Add(t.Offset)), true
}

// RotateY wraps a hittable, rotating it by AngleDegrees around the Y
// axis. Like Translate, the ray is rotated into local space rather than
// the geometry being rebuilt.
type RotateY struct {
	Object       hittable.Hittable
	sinTheta     float64
	cosTheta     float64
	box          aabb.AABB
	hasBox       bool
}

func NewRotateY(object hittable.Hittable, angleDegrees, t0, t1 float64) *RotateY {
	radians := angleDegrees * math.Pi / 180
	r := &RotateY{
		Object:   object,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	box, ok := object.BoundingBox(t0, t1)
	r.hasBox = ok
	if !ok {
		return r
	}

	min := vec3.New(math.Inf(1), math.Inf(1), math.Inf(1))
	max := vec3.New(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := float64(i)*box.Max.X + float64(1-i)*box.Min.X
				y := float64(j)*box.Max.Y + float64(1-j)*box.Min.Y
				z := float64(k)*box.Max.Z + float64(1-k)*box.Min.Z

				newX := r.cosTheta*x + r.sinTheta*z
				newZ := -r.sinTheta*x + r.cosTheta*z
				tester := vec3.New(newX, y, newZ)

				min = vec3.Min(min, tester)
				max = vec3.Max(max, tester)
			}
		}
	}
	r.box = aabb.New(min, max)
	return r
}

func (r *RotateY) Hit(ry ray.Ray, tMin, tMax float64) (hittable.HitRecord, bool) {
	origin := r.toLocal(ry.Origin)
	direction := r.toLocal(ry.Direction)
	rotated := ray.New(origin, direction, ry.Time)

	rec, ok := r.Object.Hit(rotated, tMin, tMax)
	if !ok {
		return hittable.HitRecord{}, false
	}

	rec.Point = r.toWorld(rec.Point)
	normal := r.toWorld(rec.Normal)
	rec.SetFaceNormal(rotated, normal)
	return rec, true
}

func (r *RotateY) toLocal(v vec3.Vec3) vec3.Vec3 {
	x := r.cosTheta*v.X - r.sinTheta*v.Z
	z := r.sinTheta*v.X + r.cosTheta*v.Z
	return vec3.New(x, v.Y, z)
}

func (r *RotateY) toWorld(v vec3.Vec3) vec3.Vec3 {
	x := r.cosTheta*v.X + r.sinTheta*v.Z
	z := -r.sinTheta*v.X + r.cosTheta*v.Z
	return vec3.New(x, v.Y, z)
}

func (r *RotateY) BoundingBox(t0, t1 float64) (aabb.AABB, bool) {
	return r.box, r.hasBox
}
