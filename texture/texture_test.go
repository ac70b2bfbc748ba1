package texture

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/loamlabs/pathtrace/vec3"
)

func twoByTwoCheckerboard() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.White)
	img.Set(1, 1, color.White)
	return img
}

func TestSolidColorIgnoresUVAndPoint(t *testing.T) {
	c := vec3.New(0.2, 0.4, 0.6)
	tex := NewSolidColor(c)
	if got := tex.Value(0, 0, vec3.Vec3{}); got != c {
		t.Errorf("got %v, want %v", got, c)
	}
	if got := tex.Value(0.9, 0.1, vec3.New(99, 99, 99)); got != c {
		t.Errorf("got %v, want %v", got, c)
	}
}

func TestCheckerAlternates(t *testing.T) {
	odd := NewSolidColor(vec3.New(0, 0, 0))
	even := NewSolidColor(vec3.New(1, 1, 1))
	checker := NewChecker(odd, even, 1)

	// sin(x)*sin(y)*sin(z) at (pi/2, pi/2, pi/2) is 1 (positive) -> even.
	got := checker.Value(0, 0, vec3.New(1.5707963267948966, 1.5707963267948966, 1.5707963267948966))
	if got != vec3.New(1, 1, 1) {
		t.Errorf("expected even color at positive sines, got %v", got)
	}

	// flipping the sign of x makes the product -1 (negative) -> odd.
	got = checker.Value(0, 0, vec3.New(-1.5707963267948966, 1.5707963267948966, 1.5707963267948966))
	if got != vec3.New(0, 0, 0) {
		t.Errorf("expected odd color at negative sines, got %v", got)
	}
}

func TestCheckerDefaultsScaleWhenZero(t *testing.T) {
	checker := NewChecker(NewSolidColor(vec3.Vec3{}), NewSolidColor(vec3.Vec3{}), 0)
	if checker.Scale != 10 {
		t.Errorf("expected default scale 10, got %v", checker.Scale)
	}
}

func TestMarbleIsDeterministicGivenSeed(t *testing.T) {
	a := NewMarble(rand.New(rand.NewSource(5)), 4)
	b := NewMarble(rand.New(rand.NewSource(5)), 4)
	p := vec3.New(1.2, 3.4, 5.6)
	if a.Value(0, 0, p) != b.Value(0, 0, p) {
		t.Error("expected identical seeds to produce identical marble textures")
	}
}

func TestMarbleDefaultsScaleWhenZero(t *testing.T) {
	m := NewMarble(rand.New(rand.NewSource(1)), 0)
	if m.Scale != 1 {
		t.Errorf("expected default scale 1, got %v", m.Scale)
	}
}

func TestMarbleValueChannelsMatch(t *testing.T) {
	m := NewMarble(rand.New(rand.NewSource(1)), 4)
	c := m.Value(0, 0, vec3.New(1, 2, 3))
	if c.X != c.Y || c.Y != c.Z {
		t.Errorf("expected a gray value, got %v", c)
	}
}

func TestImageValueFallsBackToCyanWhenEmpty(t *testing.T) {
	img := &Image{}
	got := img.Value(0.5, 0.5, vec3.Vec3{})
	want := vec3.New(0, 1, 1)
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestImageValueClampsOutOfRangeUV(t *testing.T) {
	img := &Image{width: 2, height: 2, pix: twoByTwoCheckerboard()}
	// out-of-range uv must clamp rather than panic on an out-of-bounds pixel access.
	_ = img.Value(-1, -1, vec3.Vec3{})
	_ = img.Value(2, 2, vec3.Vec3{})
}
