// Package shade implements the recursive shading kernel: it bounces a
// ray through the scene, accumulating emission and attenuated scattered
// light up to a depth cap.
package shade

import (
	"math"
	"math/rand"

	"github.com/loamlabs/pathtrace/hittable"
	"github.com/loamlabs/pathtrace/ray"
	"github.com/loamlabs/pathtrace/vec3"
)

var posInf = math.Inf(1)

// epsilon avoids re-intersection with the just-hit surface due to
// floating point rounding at the origin of a scattered ray.
const epsilon = 0.001

// World is the scene root the kernel intersects against. A BVH, a
// hittable.List, or any other Hittable satisfies it.
type World interface {
	Hit(r ray.Ray, tMin, tMax float64) (hittable.HitRecord, bool)
}

// Color computes the radiance along r: emission from the surface hit,
// plus the attenuated contribution of the recursively traced scattered
// ray, or background if nothing is hit. Depth reaching zero terminates
// the recursion with black, bounding worst-case bounce count.
func Color(r ray.Ray, world World, depth int, background vec3.Vec3, rng *rand.Rand) vec3.Vec3 {
	if depth <= 0 {
		return vec3.Vec3{}
	}

	rec, hit := world.Hit(r, epsilon, posInf)
	if !hit {
		return background
	}

	emitted := rec.Material.Emit(rec.U, rec.V, rec.Point)

	attenuation, scattered, ok := rec.Material.Scatter(r, &rec, rng)
	if !ok {
		return emitted
	}

	return emitted.Add(attenuation.Mul(Color(scattered, world, depth-1, background, rng)))
}
