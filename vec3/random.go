package vec3

import "math/rand"

// Random returns a vector with each component drawn independently from
// rng in [0, 1). Callers keep one *rand.Rand per goroutine; this package
// never touches the global rand source so per-pixel jitter and
// per-material scattering stay thread-local.
func Random(rng *rand.Rand) Vec3 {
	return Vec3{rng.Float64(), rng.Float64(), rng.Float64()}
}

// RandomRange returns a vector with each component drawn from [min, max).
func RandomRange(rng *rand.Rand, min, max float64) Vec3 {
	span := max - min
	return Vec3{min + rng.Float64()*span, min + rng.Float64()*span, min + rng.Float64()*span}
}

// RandomInUnitSphere returns a uniformly-distributed point inside the
// unit ball via rejection sampling.
func RandomInUnitSphere(rng *rand.Rand) Vec3 {
	for {
		p := RandomRange(rng, -1, 1)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomUnitVector returns a uniformly-distributed point on the unit
// sphere's surface.
func RandomUnitVector(rng *rand.Rand) Vec3 {
	return RandomInUnitSphere(rng).Unit()
}

// RandomInHemisphere returns a random unit-sphere point oriented into
// the same hemisphere as normal.
func RandomInHemisphere(rng *rand.Rand, normal Vec3) Vec3 {
	v := RandomInUnitSphere(rng)
	if v.Dot(normal) > 0 {
		return v
	}
	return v.Neg()
}

// RandomInUnitDisk returns a point inside the unit disk on the XY
// plane, used by the camera to simulate a finite aperture (defocus blur).
func RandomInUnitDisk(rng *rand.Rand) Vec3 {
	for {
		p := Vec3{2*rng.Float64() - 1, 2*rng.Float64() - 1, 0}
		if p.LengthSquared() < 1 {
			return p
		}
	}
}
