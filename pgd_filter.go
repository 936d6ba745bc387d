package pixdec

import "fmt"

// clampByte saturates v to the 0..255 range.
func clampByte(v int) byte {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return byte(v)
}

// ComposePlanar rebuilds interleaved BGR bytes from the PGD planar layout:
// two signed quarter-resolution chroma planes of width*height/4 bytes each,
// followed by a full-resolution unsigned luma plane addressed with stride
// width. Each 2x2 output block combines one sample from each chroma plane
// with four luma samples; channel sums are fixed-point with 7 fractional
// bits and saturate independently.
func ComposePlanar(input []byte, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 || width%2 != 0 || height%2 != 0 {
		return nil, fmt.Errorf("%w: planar geometry %dx%d", ErrBadDataSize, width, height)
	}
	n, err := pixelCount(width, height)
	if err != nil {
		return nil, err
	}

	blockSize := n / 4
	lumaOff := 2 * blockSize
	if len(input) < lumaOff+n {
		return nil, fmt.Errorf("%w: %d planar bytes for %dx%d", ErrBadDataSize, len(input), width, height)
	}

	outStride := width * 3
	out := make([]byte, height*outStride)

	p1, p2, p3, dst := 0, blockSize, lumaOff, 0
	offsets := [4]int{0, 1, width, width + 1}
	for y := 0; y < height/2; y++ {
		for x := 0; x < width/2; x++ {
			c1 := int(int8(input[p1]))
			c2 := int(int8(input[p2]))
			valueB := 226 * c1
			valueG := -43*c1 - 89*c2
			valueR := 179 * c2

			for _, off := range offsets {
				base := int(input[p3+off]) << 7
				out[dst+3*off+0] = clampByte((base + valueB) >> 7)
				out[dst+3*off+1] = clampByte((base + valueG) >> 7)
				out[dst+3*off+2] = clampByte((base + valueR) >> 7)
			}

			p1++
			p2++
			p3 += 2
			dst += 6
		}

		// Skip the luma row and output row already covered by the 2x2 blocks.
		p3 += width
		dst += outStride
	}

	return out, nil
}

// Scanline prediction modes.
const (
	deltaSameLine = 1 // predict from the pixel `channels` bytes earlier
	deltaPrevLine = 2 // predict from the previous scanline
	deltaAverage  = 4 // predict from the mean of both neighbors
)

// ApplyScanlineDelta reconstructs pixel bytes from per-scanline deltas.
// deltaSpec holds one mode byte per row; rows are processed top-to-bottom so
// a row may depend on the already-reconstructed previous row and on earlier
// bytes of the same row. Modes 2 and 4 have no previous row at row 0 and fail
// there; the byte arithmetic wraps modulo 256 by design of the format.
func ApplyScanlineDelta(deltaSpec, input []byte, width, height, channels int) ([]byte, error) {
	if len(deltaSpec) != height {
		return nil, fmt.Errorf("%w: %d delta modes for height %d", ErrBadDataSize, len(deltaSpec), height)
	}
	n, err := pixelCount(width, height)
	if err != nil {
		return nil, err
	}
	if channels < 0 || (n > 0 && channels > len(input)/n) {
		return nil, fmt.Errorf("%w: %d bytes for %dx%dx%d", ErrBadDataSize, len(input), width, height, channels)
	}

	stride := width * channels
	out := make([]byte, len(input))
	copy(out, input)

	for y := 0; y < height; y++ {
		dst := out[y*stride : (y+1)*stride]
		var prev []byte
		if y > 0 {
			prev = out[(y-1)*stride : y*stride]
		}

		switch deltaSpec[y] {
		case deltaSameLine:
			for x := channels; x < stride; x++ {
				dst[x] = dst[x-channels] - dst[x]
			}

		case deltaPrevLine:
			if prev == nil {
				return nil, fmt.Errorf("%w: previous-line prediction on first scanline", ErrCorruptData)
			}
			for x := 0; x < stride; x++ {
				dst[x] = prev[x] - dst[x]
			}

		case deltaAverage:
			if prev == nil {
				return nil, fmt.Errorf("%w: averaged prediction on first scanline", ErrCorruptData)
			}
			for x := channels; x < stride; x++ {
				mean := (int(prev[x]) + int(dst[x-channels])) / 2
				dst[x] = byte(mean - int(dst[x]))
			}

		default:
			return nil, fmt.Errorf("%w: delta mode %d on scanline %d", ErrCorruptData, deltaSpec[y], y)
		}
	}

	return out, nil
}
