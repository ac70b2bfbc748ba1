package texture

import (
	"image"
	"os"

	"golang.org/x/image/bmp"

	"github.com/loamlabs/pathtrace/vec3"
)

// Image samples a decoded raster image by uv coordinate. Decoding goes
// through golang.org/x/image/bmp rather than the stdlib image/jpeg or
// image/png codecs, since scene texture assets are shipped as BMP.
type Image struct {
	pix           image.Image
	width, height int
}

// NewImageFromFile decodes the BMP at path.
func NewImageFromFile(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := bmp.Decode(f)
	if err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	return &Image{pix: img, width: bounds.Dx(), height: bounds.Dy()}, nil
}

// Value clamps (u, v) into [0,1] and samples the nearest pixel. v is
// flipped since image rows run top-to-bottom while texture v runs
// bottom-to-top.
func (t *Image) Value(u, v float64, p vec3.Vec3) vec3.Vec3 {
	if t.width == 0 || t.height == 0 {
		return vec3.Vec3{X: 0, Y: 1, Z: 1} // cyan debug color: no texture data
	}
	if u < 0 {
		u = 0
	} else if u > 1 {
		u = 1
	}
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	v = 1 - v

	i := int(u * float64(t.width))
	j := int(v * float64(t.height))
	if i >= t.width {
		i = t.width - 1
	}
	if j >= t.height {
		j = t.height - 1
	}

	r, g, b, _ := t.pix.At(i, j).RGBA()
	const maxChannel = 65535.0
	return vec3.Vec3{X: float64(r) / maxChannel, Y: float64(g) / maxChannel, Z: float64(b) / maxChannel}
}
