package render

import (
	"bufio"
	"fmt"
	"io"
	"math"
)

// WritePPM emits f as an ASCII PPM (P3) image: a 3-line header
// followed by W*H "R G B" lines, written bottom-to-top (the first
// emitted row is y = Height-1). Each channel is clamped to [0, 0.999]
// and scaled by 256 before truncating to an integer; gamma applies an
// optional sqrt (exponent 1/2) correction for display prior to that
// scaling.
func WritePPM(w io.Writer, f *Framebuffer, gamma bool) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", f.Width, f.Height); err != nil {
		return err
	}

	for y := f.Height - 1; y >= 0; y-- {
		for x := 0; x < f.Width; x++ {
			c := f.At(x, y)
			r, g, b := c.X, c.Y, c.Z
			if gamma {
				r, g, b = math.Sqrt(r), math.Sqrt(g), math.Sqrt(b)
			}
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", toByte(r), toByte(g), toByte(b)); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// toByte clamps a linear channel value to [0, 0.999] and converts it to
// a byte via floor(c*256).
func toByte(c float64) int {
	if c < 0 {
		c = 0
	} else if c > 0.999 {
		c = 0.999
	}
	return int(c * 256)
}
