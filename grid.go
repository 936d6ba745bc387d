package pixdec

import (
	"fmt"
	"image"
	"math"
)

// Grid is the canonical decoded image: width*height BGRA pixels, row-major,
// origin top-left. A Grid owns its pixels; it never aliases a source buffer.
type Grid struct {
	width  int
	height int
	pixels []Pixel
}

// pixelCount validates geometry and returns width*height without overflow.
func pixelCount(width, height int) (int, error) {
	if width < 0 || height < 0 {
		return 0, fmt.Errorf("%w: geometry %dx%d", ErrBadDataSize, width, height)
	}
	if height != 0 && width > math.MaxInt/height {
		return 0, fmt.Errorf("%w: geometry %dx%d overflows", ErrBadDataSize, width, height)
	}
	return width * height, nil
}

// NewGrid returns a zeroed grid of the given geometry.
func NewGrid(width, height int) (*Grid, error) {
	n, err := pixelCount(width, height)
	if err != nil {
		return nil, err
	}
	return &Grid{width: width, height: height, pixels: make([]Pixel, n)}, nil
}

// NewGridFromBytes decodes raw pixel data of format f into a grid.
// data shorter than the geometry requires is a size error; excess bytes are
// ignored (some containers pad the final block).
func NewGridFromBytes(width, height int, data []byte, f PixelFormat) (*Grid, error) {
	bpp := f.bytesPerPixel()
	if bpp == 0 {
		return nil, fmt.Errorf("%w: pixel format %d", ErrUnsupportedBitDepth, int(f))
	}

	n, err := pixelCount(width, height)
	if err != nil {
		return nil, err
	}
	if n > math.MaxInt/bpp || len(data) < n*bpp {
		return nil, fmt.Errorf("%w: %d pixel bytes for %dx%d format %d", ErrBadDataSize, len(data), width, height, int(f))
	}

	g := &Grid{width: width, height: height, pixels: make([]Pixel, n)}
	for i := range g.pixels {
		g.pixels[i] = decodePixel(f, data[i*bpp:])
	}

	return g, nil
}

// NewGridFromPalette decodes per-pixel indices of the given bit width and
// resolves them through pal. Indices may span byte boundaries.
func NewGridFromPalette(width, height int, data []byte, depth int, pal Palette) (*Grid, error) {
	if depth < 1 || depth > 32 {
		return nil, fmt.Errorf("%w: palette index depth %d", ErrUnsupportedBitDepth, depth)
	}

	g, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	r := NewReader(data)
	for i := range g.pixels {
		idx, err := r.ReadBits(uint(depth))
		if err != nil {
			return nil, err
		}
		if int(idx) >= len(pal) {
			return nil, fmt.Errorf("%w: palette index %d of %d", ErrCorruptData, idx, len(pal))
		}
		g.pixels[i] = pal[idx]
	}

	return g, nil
}

// Width returns the grid width in pixels.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in pixels.
func (g *Grid) Height() int { return g.height }

// At returns the pixel at (x, y). Coordinates must be inside the grid.
func (g *Grid) At(x, y int) *Pixel {
	return &g.pixels[y*g.width+x]
}

// Pixels exposes the row-major pixel storage.
func (g *Grid) Pixels() []Pixel { return g.pixels }

// FlipVertically reverses the row order in place.
func (g *Grid) FlipVertically() {
	for y := 0; y < g.height/2; y++ {
		a := g.pixels[y*g.width : (y+1)*g.width]
		b := g.pixels[(g.height-1-y)*g.width : (g.height-y)*g.width]
		for x := range a {
			a[x], b[x] = b[x], a[x]
		}
	}
}

// FlipHorizontally reverses each row in place.
func (g *Grid) FlipHorizontally() {
	for y := 0; y < g.height; y++ {
		row := g.pixels[y*g.width : (y+1)*g.width]
		for x := 0; x < g.width/2; x++ {
			row[x], row[g.width-1-x] = row[g.width-1-x], row[x]
		}
	}
}

// InvertAlpha flips the alpha channel of every pixel.
func (g *Grid) InvertAlpha() {
	for i := range g.pixels {
		g.pixels[i].A ^= 0xFF
	}
}

// NRGBA copies the grid into a stdlib image for further processing or encoding.
func (g *Grid) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.width, g.height))
	for i, p := range g.pixels {
		img.Pix[i*4+0] = p.R
		img.Pix[i*4+1] = p.G
		img.Pix[i*4+2] = p.B
		img.Pix[i*4+3] = p.A
	}
	return img
}
