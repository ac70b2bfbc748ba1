// Package camera implements the Camera collaborator: get_ray(s, t)
// maps a point on the image plane to a ray whose origin is jittered
// across a lens disk (defocus blur) and whose time is uniform over the
// configured shutter interval (motion blur).
package camera

import (
	"math"
	"math/rand"

	"github.com/loamlabs/pathtrace/ray"
	"github.com/loamlabs/pathtrace/vec3"
)

// Camera holds the orthonormal basis and focus-plane geometry derived
// once at construction from the look-from/look-at/view-up pose.
type Camera struct {
	Origin          vec3.Vec3
	LowerLeftCorner vec3.Vec3
	Horizontal      vec3.Vec3
	Vertical        vec3.Vec3
	u, v, w         vec3.Vec3
	LensRadius      float64
	Time0, Time1    float64 // shutter open/close
}

// New builds a camera.
//
//	lookFrom, lookAt, viewUp: pose.
//	vFovDegrees:              vertical field of view in degrees.
//	aspectRatio:              image width / height.
//	aperture, focusDist:      defocus-blur lens size and focus distance.
//	time0, time1:             shutter open/close times.
func New(lookFrom, lookAt, viewUp vec3.Vec3, vFovDegrees, aspectRatio, aperture, focusDist, time0, time1 float64) *Camera {
	theta := vFovDegrees * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := aspectRatio * viewportHeight

	w := lookFrom.Sub(lookAt).Unit()
	u := viewUp.Cross(w).Unit()
	v := w.Cross(u)

	origin := lookFrom
	horizontal := u.Scale(viewportWidth * focusDist)
	vertical := v.Scale(viewportHeight * focusDist)
	lowerLeftCorner := origin.
		Sub(horizontal.Scale(0.5)).
		Sub(vertical.Scale(0.5)).
		Sub(w.Scale(focusDist))

	return &Camera{
		Origin:          origin,
		LowerLeftCorner: lowerLeftCorner,
		Horizontal:      horizontal,
		Vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		LensRadius:      aperture / 2,
		Time0:           time0,
		Time1:           time1,
	}
}

// GetRay returns a ray through the focus plane at normalized image
// coordinates (s, t), with origin jittered across the lens disk and
// time sampled uniformly over the shutter interval.
func (c *Camera) GetRay(s, t float64, rng *rand.Rand) ray.Ray {
	rd := vec3.RandomInUnitDisk(rng).Scale(c.LensRadius)
	offset := c.u.Scale(rd.X).Add(c.v.Scale(rd.Y))

	direction := c.LowerLeftCorner.
		Add(c.Horizontal.Scale(s)).
		Add(c.Vertical.Scale(t)).
		Sub(c.Origin).
		Sub(offset)

	time := c.Time0 + rng.Float64()*(c.Time1-c.Time0)
	return ray.New(c.Origin.Add(offset), direction, time)
}
