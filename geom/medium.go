package geom

import (
	"math"
	"math/rand"

	"github.com/loamlabs/pathtrace/aabb"
	"github.com/loamlabs/pathtrace/hittable"
	"github.com/loamlabs/pathtrace/ray"
	"github.com/loamlabs/pathtrace/vec3"
)

// ConstantMedium is a homogeneous volumetric hittable (fog, smoke):
// rays entering Boundary scatter at a random depth governed by
// Density, with an Isotropic phase function.
type ConstantMedium struct {
	Boundary      hittable.Hittable
	Density       float64
	PhaseFunction hittable.Material
	rng           *rand.Rand
}

// NewConstantMedium builds a constant medium of the given density
// bounded by boundary, scattering with phaseFunction (typically an
// Isotropic material). rng must be the caller's thread-local source;
// the medium is stochastic in where it scatters.
func NewConstantMedium(boundary hittable.Hittable, density float64, phaseFunction hittable.Material, rng *rand.Rand) *ConstantMedium {
	return &ConstantMedium{Boundary: boundary, Density: density, PhaseFunction: phaseFunction, rng: rng}
}

func (m *ConstantMedium) Hit(r ray.Ray, tMin, tMax float64) (hittable.HitRecord, bool) {
	rec1, ok := m.Boundary.Hit(r, math.Inf(-1), math.Inf(1))
	if !ok {
		return hittable.HitRecord{}, false
	}
	rec2, ok := m.Boundary.Hit(r, rec1.T+0.0001, math.Inf(1))
	if !ok {
		return hittable.HitRecord{}, false
	}

	if rec1.T < tMin {
		rec1.T = tMin
	}
	if rec2.T > tMax {
		rec2.T = tMax
	}
	if rec1.T >= rec2.T {
		return hittable.HitRecord{}, false
	}
	if rec1.T < 0 {
		rec1.T = 0
	}

	rayLength := r.Direction.Length()
	distanceInsideBoundary := (rec2.T - rec1.T) * rayLength
	hitDistance := -(1 / m.Density) * math.Log(m.rng.Float64())
	if hitDistance > distanceInsideBoundary {
		return hittable.HitRecord{}, false
	}

	t := rec1.T + hitDistance/rayLength
	rec := hittable.HitRecord{
		T:         t,
		Point:     r.At(t),
		Normal:    vec3.New(1, 0, 0), // arbitrary: isotropic scattering ignores it
		FrontFace: true,
		Material:  m.PhaseFunction,
	}
	return rec, true
}

func (m *ConstantMedium) BoundingBox(t0, t1 float64) (aabb.AABB, bool) {
	return m.Boundary.BoundingBox(t0, t1)
}
