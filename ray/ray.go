// Package ray defines the value type shared by every intersection and
// shading operation in the tracer.
package ray

import "github.com/loamlabs/pathtrace/vec3"

// Ray is a half line origin + t*direction, carrying a time coordinate
// for motion blur. It is a pure value type: immutable everywhere it is
// passed through traversal and shading.
type Ray struct {
	Origin    vec3.Vec3
	Direction vec3.Vec3
	Time      float64
}

// New builds a ray at the given time.
func New(origin, direction vec3.Vec3, time float64) Ray {
	return Ray{Origin: origin, Direction: direction, Time: time}
}

// At evaluates the ray's parametric position at t.
func (r Ray) At(t float64) vec3.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}
