package texture

import (
	"math"
	"math/rand"

	"github.com/loamlabs/pathtrace/vec3"
)

// perlin is a 3D gradient-noise generator used by the Marble texture:
// a permutation-table / gradient-dot-product lattice noise, summed
// across octaves to produce a turbulent, vein-like pattern.
type perlin struct {
	ranvec  [pointCount]vec3.Vec3
	permX   [pointCount]int
	permY   [pointCount]int
	permZ   [pointCount]int
}

const pointCount = 256

// newPerlin builds a permutation table and random gradient vectors from
// rng, so a scene's marble texture is reproducible given a seeded RNG.
func newPerlin(rng *rand.Rand) *perlin {
	p := &perlin{}
	for i := range p.ranvec {
		p.ranvec[i] = vec3.RandomRange(rng, -1, 1).Unit()
	}
	p.permX = generatePerm(rng)
	p.permY = generatePerm(rng)
	p.permZ = generatePerm(rng)
	return p
}

func generatePerm(rng *rand.Rand) [pointCount]int {
	var perm [pointCount]int
	for i := range perm {
		perm[i] = i
	}
	for i := len(perm) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

// noise returns a smoothed gradient-noise value at p, roughly in [-1, 1].
func (pn *perlin) noise(p vec3.Vec3) float64 {
	u := p.X - math.Floor(p.X)
	v := p.Y - math.Floor(p.Y)
	w := p.Z - math.Floor(p.Z)
	i := int(math.Floor(p.X))
	j := int(math.Floor(p.Y))
	k := int(math.Floor(p.Z))

	var c [2][2][2]vec3.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				idx := pn.permX[(i+di)&255] ^ pn.permY[(j+dj)&255] ^ pn.permZ[(k+dk)&255]
				c[di][dj][dk] = pn.ranvec[idx]
			}
		}
	}
	return perlinInterp(c, u, v, w)
}

func perlinInterp(c [2][2][2]vec3.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)
	var accum float64
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				weight := vec3.New(u-float64(i), v-float64(j), w-float64(k))
				fi, fj, fk := float64(i), float64(j), float64(k)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// turbulence sums several octaves of noise at decreasing amplitude to
// produce the marbled, vein-like pattern the Marble texture renders.
func (pn *perlin) turbulence(p vec3.Vec3, depth int) float64 {
	accum := 0.0
	temp := p
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * pn.noise(temp)
		weight *= 0.5
		temp = temp.Scale(2)
	}
	return math.Abs(accum)
}

// Marble is a solid turbulence texture modulating a sine wave along Z.
type Marble struct {
	noise *perlin
	Scale float64
}

// NewMarble builds a marble texture with a fresh noise table seeded
// from rng, so scene construction stays reproducible given one RNG.
func NewMarble(rng *rand.Rand, scale float64) *Marble {
	if scale == 0 {
		scale = 1
	}
	return &Marble{noise: newPerlin(rng), Scale: scale}
}

func (t *Marble) Value(u, v float64, p vec3.Vec3) vec3.Vec3 {
	turb := t.noise.turbulence(p, 7)
	gray := 0.5 * (1 + math.Sin(t.Scale*p.Z+10*turb))
	return vec3.Vec3{X: gray, Y: gray, Z: gray}
}
