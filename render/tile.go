package render

// Tile is a rectangular subregion of the image, in pixel coordinates,
// processed as one parallel task.
type Tile struct {
	Width, Height  int
	XStart, YStart int
}

// Tiles partitions a W x H image into Tile rectangles of size tw x th
// in row-major order. The returned tiles cover the image exactly once:
// each row of full tiles is followed by one narrower tile when W is not
// a multiple of tw; after the full-height rows comes a shorter final row
// when H is not a multiple of th, ending with a single corner tile when
// both remainders are nonzero.
func Tiles(w, h, tw, th int) []Tile {
	nx, rx := w/tw, w%tw
	ny, ry := h/th, h%th

	tiles := make([]Tile, 0, (nx+1)*(ny+1))

	for row := 0; row < ny; row++ {
		y := row * th
		for col := 0; col < nx; col++ {
			tiles = append(tiles, Tile{Width: tw, Height: th, XStart: col * tw, YStart: y})
		}
		if rx > 0 {
			tiles = append(tiles, Tile{Width: rx, Height: th, XStart: nx * tw, YStart: y})
		}
	}

	if ry > 0 {
		y := ny * th
		for col := 0; col < nx; col++ {
			tiles = append(tiles, Tile{Width: tw, Height: ry, XStart: col * tw, YStart: y})
		}
		if rx > 0 {
			tiles = append(tiles, Tile{Width: rx, Height: ry, XStart: nx * tw, YStart: y})
		}
	}

	return tiles
}
