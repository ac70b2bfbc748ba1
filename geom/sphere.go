// Package geom implements the geometric primitive collaborators:
// spheres (static and moving), axis-aligned rectangles, a cube, a
// triangle, instance transforms, and a constant-density volumetric
// medium. Their intersection math is standard path-tracer fare; what
// matters is that each satisfies hittable.Hittable so the BVH and
// shading kernel never special-case the concrete type.
package geom

import (
	"math"

	"github.com/loamlabs/pathtrace/aabb"
	"github.com/loamlabs/pathtrace/hittable"
	"github.com/loamlabs/pathtrace/ray"
	"github.com/loamlabs/pathtrace/vec3"
)

// Sphere is a static sphere centered at Center with the given Radius.
type Sphere struct {
	Center   vec3.Vec3
	Radius   float64
	Material hittable.Material
}

func NewSphere(center vec3.Vec3, radius float64, mat hittable.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

func (s *Sphere) Hit(r ray.Ray, tMin, tMax float64) (hittable.HitRecord, bool) {
	return hitSphere(s.Center, s.Radius, s.Material, r, tMin, tMax)
}

func (s *Sphere) BoundingBox(t0, t1 float64) (aabb.AABB, bool) {
	radiusVec := vec3.New(s.Radius, s.Radius, s.Radius)
	return aabb.New(s.Center.Sub(radiusVec), s.Center.Add(radiusVec)), true
}

// MovingSphere linearly interpolates its center between Center0 at
// Time0 and Center1 at Time1, giving motion blur under a nonzero
// shutter interval.
type MovingSphere struct {
	Center0, Center1 vec3.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         hittable.Material
}

func NewMovingSphere(c0, c1 vec3.Vec3, t0, t1, radius float64, mat hittable.Material) *MovingSphere {
	return &MovingSphere{Center0: c0, Center1: c1, Time0: t0, Time1: t1, Radius: radius, Material: mat}
}

// CenterAt returns the sphere's center at time t.
func (s *MovingSphere) CenterAt(t float64) vec3.Vec3 {
	if s.Time1 == s.Time0 {
		return s.Center0
	}
	frac := (t - s.Time0) / (s.Time1 - s.Time0)
	return vec3.Lerp(s.Center0, s.Center1, frac)
}

func (s *MovingSphere) Hit(r ray.Ray, tMin, tMax float64) (hittable.HitRecord, bool) {
	return hitSphere(s.CenterAt(r.Time), s.Radius, s.Material, r, tMin, tMax)
}

// BoundingBox sweeps the box across the shutter interval by unioning
// the box at both endpoints; this is conservative but correct for
// linear motion.
func (s *MovingSphere) BoundingBox(t0, t1 float64) (aabb.AABB, bool) {
	radiusVec := vec3.New(s.Radius, s.Radius, s.Radius)
	c0 := s.CenterAt(t0)
	c1 := s.CenterAt(t1)
	box0 := aabb.New(c0.Sub(radiusVec), c0.Add(radiusVec))
	box1 := aabb.New(c1.Sub(radiusVec), c1.Add(radiusVec))
	return *aabb.Union(&box0, &box1), true
}

// hitSphere is the shared ray-sphere intersection used by both sphere
// variants: solve |r.At(t) - center|^2 = radius^2 for the nearest root
// in [tMin, tMax].
func hitSphere(center vec3.Vec3, radius float64, mat hittable.Material, r ray.Ray, tMin, tMax float64) (hittable.HitRecord, bool) {
	oc := r.Origin.Sub(center)
	a := r.Direction.LengthSquared()
	halfB := oc.Dot(r.Direction)
	c := oc.LengthSquared() - radius*radius
	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return hittable.HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return hittable.HitRecord{}, false
		}
	}

	rec := hittable.HitRecord{T: root, Material: mat}
	rec.Point = r.At(root)
	outwardNormal := rec.Point.Sub(center).Scale(1 / radius)
	rec.SetFaceNormal(r, outwardNormal)
	rec.U, rec.V = sphereUV(outwardNormal)
	return rec, true
}

// sphereUV maps a point on the unit sphere to (u, v) texture
// coordinates using the standard spherical parameterization.
func sphereUV(p vec3.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}
