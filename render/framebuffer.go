package render

import "github.com/loamlabs/pathtrace/vec3"

// Framebuffer is a dense W x H array of linear-RGB colors in row-major
// order. Row y = 0 is the bottom of the image (camera v = 0); WritePPM
// emits rows starting from y = Height-1.
type Framebuffer struct {
	Width, Height int
	Pixels        []vec3.Vec3
}

// NewFramebuffer allocates a black W x H framebuffer.
func NewFramebuffer(w, h int) *Framebuffer {
	return &Framebuffer{Width: w, Height: h, Pixels: make([]vec3.Vec3, w*h)}
}

// At returns the color at (x, y).
func (f *Framebuffer) At(x, y int) vec3.Vec3 {
	return f.Pixels[y*f.Width+x]
}

// Set stores the color at (x, y).
func (f *Framebuffer) Set(x, y int, c vec3.Vec3) {
	f.Pixels[y*f.Width+x] = c
}

// MergeTile copies src, a tile-local framebuffer, into f at the given
// pixel offset. Each tile's worker owns src exclusively until this
// call; this serial merge step is the only place tile results touch
// the shared framebuffer, so no lock is needed.
func (f *Framebuffer) MergeTile(src *Framebuffer, xStart, yStart int) {
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			f.Set(xStart+x, yStart+y, src.At(x, y))
		}
	}
}
