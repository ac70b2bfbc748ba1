// Package vec3 provides the 3 element vector math needed by the path
// tracer: points, directions, and colors all share the same type. The
// field layout and naming follow the vu math/lin vector conventions;
// unlike lin.V3 these are immutable value types since rays and hit
// records must stay safe to share across traversal and shading without
// aliasing surprises.
package vec3

import "math"

// Vec3 is a 3 element vector, used interchangeably as a point, a
// direction, or a linear-RGB color.
type Vec3 struct {
	X, Y, Z float64
}

// New returns the vector (x, y, z).
func New(x, y, z float64) Vec3 { return Vec3{x, y, z} }

func (v Vec3) Add(a Vec3) Vec3   { return Vec3{v.X + a.X, v.Y + a.Y, v.Z + a.Z} }
func (v Vec3) Sub(a Vec3) Vec3   { return Vec3{v.X - a.X, v.Y - a.Y, v.Z - a.Z} }
func (v Vec3) Mul(a Vec3) Vec3   { return Vec3{v.X * a.X, v.Y * a.Y, v.Z * a.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Neg() Vec3         { return Vec3{-v.X, -v.Y, -v.Z} }

// Div divides each component by s. Division by zero is tolerated and
// propagates infinities, matching the slab-method AABB test's reliance
// on IEEE-754 behavior rather than a special case.
func (v Vec3) Div(s float64) Vec3 { return Vec3{v.X / s, v.Y / s, v.Z / s} }

func (v Vec3) Dot(a Vec3) float64 {
	return v.X*a.X + v.Y*a.Y + v.Z*a.Z
}

func (v Vec3) Cross(a Vec3) Vec3 {
	return Vec3{
		v.Y*a.Z - v.Z*a.Y,
		v.Z*a.X - v.X*a.Z,
		v.X*a.Y - v.Y*a.X,
	}
}

func (v Vec3) LengthSquared() float64 { return v.Dot(v) }
func (v Vec3) Length() float64        { return math.Sqrt(v.LengthSquared()) }

// Unit returns v scaled to length 1. A zero-length vector divides by
// zero and returns a vector of infinities/NaNs; callers in the hot path
// never construct zero-length directions, and this is filtered by
// comparisons elsewhere rather than special-cased here.
func (v Vec3) Unit() Vec3 { return v.Scale(1 / v.Length()) }

// NearZero reports whether all components are close enough to zero
// that scattered rays built from this vector would misbehave.
func (v Vec3) NearZero() bool {
	const eps = 1e-8
	return math.Abs(v.X) < eps && math.Abs(v.Y) < eps && math.Abs(v.Z) < eps
}

// At index i, for the axis-uniform slab iteration used by AABB and the
// BVH axis-key sort.
func (v Vec3) At(axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Min returns the component-wise minimum of a and b.
func Min(a, b Vec3) Vec3 {
	return Vec3{math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)}
}

// Max returns the component-wise maximum of a and b.
func Max(a, b Vec3) Vec3 {
	return Vec3{math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)}
}

// Lerp interpolates linearly between a and b at parameter t.
func Lerp(a, b Vec3, t float64) Vec3 {
	return a.Scale(1 - t).Add(b.Scale(t))
}

// Reflect reflects v about a surface with unit normal n.
func Reflect(v, n Vec3) Vec3 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Refract bends the unit vector uv crossing a boundary with unit normal
// n (oriented against uv) and ratio of refractive indices etaIOverEtaT.
func Refract(uv, n Vec3, etaIOverEtaT float64) Vec3 {
	cosTheta := math.Min(uv.Neg().Dot(n), 1.0)
	rOutPerp := uv.Add(n.Scale(cosTheta)).Scale(etaIOverEtaT)
	rOutParallel := n.Scale(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}
