package pixdec

import "fmt"

// Palette is an ordered list of color entries indexed by pixel value.
type Palette []Pixel

// ReadPalette reads size palette entries of the given bit depth from r.
// 15- and 16-bit palettes decode as BGR555X with opaque alpha; the alpha bit
// is not honored inside palettes.
func ReadPalette(r *Reader, size, depth int) (Palette, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: palette size %d", ErrBadDataSize, size)
	}

	var f PixelFormat
	switch depth {
	case 32:
		f = BGRA8888
	case 24:
		f = BGR888
	case 16, 15:
		f = BGR555X
	default:
		return nil, fmt.Errorf("%w: palette depth %d", ErrUnsupportedBitDepth, depth)
	}

	bpp := f.bytesPerPixel()
	data, err := r.Read(size * bpp)
	if err != nil {
		return nil, err
	}

	pal := make(Palette, size)
	for i := range pal {
		pal[i] = decodePixel(f, data[i*bpp:])
	}

	return pal, nil
}
