// Package hrpp implements the Hash-Based Ray-Path Predictor: a per-BVH
// hash table mapping a ray fingerprint to a previously visited interior
// node, based on Demoullin et al., "Hash-Based Ray Path Prediction"
// (arXiv:1910.01304). It memoizes coherent rays so subsequent
// traversals can start deep inside the tree, trading a bounded accuracy
// risk for skipping the upper levels.
package hrpp

import (
	"math"

	"github.com/loamlabs/pathtrace/ray"
)

// Precision is the number of high bits kept from each float's exponent
// and mantissa when hashing; the paper's recommended regime is 6.
const Precision = 6

// Fingerprint computes a 64-bit digest of a ray's six floats (origin
// xyz, direction xyz). Geometrically similar rays collapse to the same
// fingerprint, which is what makes the predictor effective for coherent
// ray batches (adjacent pixels, shadow rays toward the same light, ...).
func Fingerprint(r ray.Ray) uint64 {
	h := func(f float64) uint64 { return subHash(float32(f)) }

	h0 := h(r.Origin.X) ^ h(r.Direction.Z)
	h1 := h(r.Origin.Y) ^ h(r.Direction.Y)
	h2 := h(r.Origin.Z) ^ h(r.Direction.X)

	return h0 | (h1 << 16) | (h2 << 32)
}

// subHash reduces a single float32 to a 16 bit digest: 1 sign bit,
// Precision exponent bits, Precision mantissa bits, all taken from the
// high end of their respective fields.
func subHash(f float32) uint64 {
	bits := uint64(math.Float32bits(f))

	const p = Precision
	sign := (bits >> 31) & 1
	exponent := (bits >> (31 - p)) & ((1 << p) - 1)
	mantissa := (bits >> (23 - p)) & ((1 << p) - 1)

	return sign<<15 | exponent<<7 | mantissa
}
