// Package texture implements the Texture collaborator contract:
// value(u, v, point) -> color. SolidColor, Checker, Marble (noise-driven)
// and Image textures cover the required pattern-generating collaborators.
package texture

import (
	"math"

	"github.com/loamlabs/pathtrace/vec3"
)

// Texture maps a surface parameterization (u, v, point) to a color.
type Texture interface {
	Value(u, v float64, p vec3.Vec3) vec3.Vec3
}

// SolidColor is a uniform texture.
type SolidColor struct {
	Color vec3.Vec3
}

func NewSolidColor(c vec3.Vec3) *SolidColor { return &SolidColor{Color: c} }

func (t *SolidColor) Value(u, v float64, p vec3.Vec3) vec3.Vec3 { return t.Color }

// Checker alternates between two sub-textures based on the sign of
// sin(x)*sin(y)*sin(z), producing a 3D checkerboard independent of uv.
type Checker struct {
	Odd, Even Texture
	Scale     float64
}

// NewChecker builds a checker texture; scale controls the cell size
// (larger scale -> smaller cells).
func NewChecker(odd, even Texture, scale float64) *Checker {
	if scale == 0 {
		scale = 10
	}
	return &Checker{Odd: odd, Even: even, Scale: scale}
}

func (t *Checker) Value(u, v float64, p vec3.Vec3) vec3.Vec3 {
	sines := math.Sin(t.Scale*p.X) * math.Sin(t.Scale*p.Y) * math.Sin(t.Scale*p.Z)
	if sines < 0 {
		return t.Odd.Value(u, v, p)
	}
	return t.Even.Value(u, v, p)
}
