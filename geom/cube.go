package geom

import (
	"github.com/loamlabs/pathtrace/aabb"
	"github.com/loamlabs/pathtrace/hittable"
	"github.com/loamlabs/pathtrace/ray"
	"github.com/loamlabs/pathtrace/vec3"
)

// Cube is an axis-aligned box built from six rectangles, one per face.
type Cube struct {
	Min, Max vec3.Vec3
	sides    *hittable.List
}

func NewCube(min, max vec3.Vec3, mat hittable.Material) *Cube {
	sides := hittable.NewList(
		NewRectXY(min.X, max.X, min.Y, max.Y, max.Z, mat),
		NewRectXY(min.X, max.X, min.Y, max.Y, min.Z, mat),
		NewRectXZ(min.X, max.X, min.Z, max.Z, max.Y, mat),
		NewRectXZ(min.X, max.X, min.Z, max.Z, min.Y, mat),
		NewRectYZ(min.Y, max.Y, min.Z, max.Z, max.X, mat),
		NewRectYZ(min.Y, max.Y, min.Z, max.Z, min.X, mat),
	)
	return &Cube{Min: min, Max: max, sides: sides}
}

func (c *Cube) Hit(r ray.Ray, tMin, tMax float64) (hittable.HitRecord, bool) {
	return c.sides.Hit(r, tMin, tMax)
}

func (c *Cube) BoundingBox(t0, t1 float64) (aabb.AABB, bool) {
	return aabb.New(c.Min, c.Max), true
}
