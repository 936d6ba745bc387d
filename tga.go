package pixdec

import (
	"bytes"
	"fmt"
	"math"
)

var tgaFooter = []byte("TRUEVISION-XFILE.\x00")

// TGA descriptor flag bits.
const (
	tgaRightToLeft = 0x10
	tgaTopToBottom = 0x20
)

// DecompressRLE decodes control-byte RLE pixel data into exactly
// width*height*channels bytes. Bit 7 of a control byte selects a repeated
// pixel, otherwise a literal run; the low 7 bits plus one give the pixel
// count. A run crossing the target size is clipped, never overproduced.
func DecompressRLE(r *Reader, width, height, channels int) ([]byte, error) {
	n, err := pixelCount(width, height)
	if err != nil {
		return nil, err
	}
	if channels < 0 || (n > 0 && channels > math.MaxInt/n) {
		return nil, fmt.Errorf("%w: %d channels for %dx%d", ErrBadDataSize, channels, width, height)
	}

	target := n * channels
	out := make([]byte, 0, target)
	for len(out) < target {
		control, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		repetitions := int(control&0x7F) + 1

		if control&0x80 != 0 {
			chunk, err := r.Read(channels)
			if err != nil {
				return nil, err
			}
			for i := 0; i < repetitions && len(out) < target; i++ {
				out = append(out, chunk...)
			}
		} else {
			for i := 0; i < repetitions && len(out) < target; i++ {
				chunk, err := r.Read(channels)
				if err != nil {
					return nil, err
				}
				out = append(out, chunk...)
			}
		}
	}

	return out, nil
}

// RecognizeTGA reports whether data carries the optional TGA footer magic.
// Files without the footer must be routed here by the caller.
func RecognizeTGA(data []byte) bool {
	return len(data) >= len(tgaFooter) && bytes.Equal(data[len(data)-len(tgaFooter):], tgaFooter)
}

// DecodeTGA decodes a Truevision TGA container into a pixel grid.
func DecodeTGA(r *Reader) (*Grid, error) {
	if err := r.Seek(0); err != nil {
		return nil, err
	}
	idSize, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	paletteFlag, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	usePalette := paletteFlag == 1
	dataType, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	paletteStart, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	paletteEnd, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	paletteDepth, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	if err := r.Skip(4); err != nil { // x and y origin
		return nil, err
	}
	width, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	height, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	depth, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	flags, err := r.ReadU8()
	if err != nil {
		return nil, err
	}

	channels := int(depth) / 8
	flipHorizontally := flags&tgaRightToLeft != 0
	flipVertically := flags&tgaTopToBottom == 0
	compressed := dataType&8 != 0

	if err := r.Skip(int(idSize)); err != nil {
		return nil, err
	}

	var palette Palette
	if usePalette {
		palette, err = ReadPalette(r, int(paletteEnd)-int(paletteStart), int(paletteDepth))
		if err != nil {
			return nil, err
		}
	}

	var data []byte
	if compressed {
		data, err = DecompressRLE(r, int(width), int(height), channels)
	} else {
		data, err = r.Read(int(width) * int(height) * channels)
	}
	if err != nil {
		return nil, err
	}

	var pixels *Grid
	if usePalette {
		pixels, err = NewGridFromPalette(int(width), int(height), data, int(depth), palette)
	} else {
		var f PixelFormat
		switch depth {
		case 8:
			f = Gray8
		case 16:
			f = BGRA5551
		case 24:
			f = BGR888
		case 32:
			f = BGRA8888
		default:
			return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, depth)
		}
		pixels, err = NewGridFromBytes(int(width), int(height), data, f)
	}
	if err != nil {
		return nil, err
	}

	if flipVertically {
		pixels.FlipVertically()
	}
	if flipHorizontally {
		pixels.FlipHorizontally()
	}
	// The source convention stores alpha inverted at these depths.
	if depth == 16 || depth == 32 {
		pixels.InvertAlpha()
	}

	return pixels, nil
}
