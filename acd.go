package pixdec

import (
	"bytes"
	"fmt"

	"github.com/woozymasta/lzss"
)

var acdMagic = []byte("ACD 1.00")

// LZSSFunc decompresses a generic LZSS payload into exactly outLen bytes.
// The ACD pixel stream is wrapped in such a payload before its own bit
// coding; implementations must fail on inconsistent sizes rather than
// return a short buffer.
type LZSSFunc func(src []byte, outLen int) ([]byte, error)

// DefaultLZSS backs the ACD first stage with the LZSS:8bit decoder.
// Checksum trailers differ between games, so verification is lenient.
func DefaultLZSS(src []byte, outLen int) ([]byte, error) {
	out, _, err := lzss.DecompressBlock(src, outLen, lzss.SignedLenientOptions())
	return out, err
}

// ExpandBitLiterals re-derives canvasSize pixel bytes from the ACD bit
// stream. Per output byte: bit 0 emits 0x00; bits 1,1 emit 0xFF (a -1 that
// wraps under byte truncation); bits 1,0 enter an accumulator seeded with 2
// that shifts in bits until bit 8 of the 9-bit value is set, then remaps any
// non-zero result through a fixed-point quantization curve.
func ExpandBitLiterals(data []byte, canvasSize int) ([]byte, error) {
	if canvasSize < 0 {
		return nil, fmt.Errorf("%w: negative canvas size %d", ErrBadDataSize, canvasSize)
	}

	r := NewReader(data)
	out := make([]byte, canvasSize)
	for i := range out {
		var v int32
		bit, err := r.ReadBits(1)
		if err != nil {
			return nil, err
		}
		if bit == 1 {
			v--
			bit, err = r.ReadBits(1)
			if err != nil {
				return nil, err
			}
			if bit == 0 {
				v += 3
				for {
					b, err := r.ReadBits(1)
					if err != nil {
						return nil, err
					}
					v = v<<1 | int32(b)
					stop := v>>8&1 == 1
					v &= 0xFF
					if stop {
						break
					}
				}
				if v != 0 {
					// 0x28CCCCD is 256/6 in 8.24 fixed point. The multiply
					// wraps in 32-bit arithmetic; truncation at each step is
					// load-bearing for the exact output byte.
					v++
					v *= 0x28CCCCD
					v >>= 24
				}
			}
		}
		out[i] = byte(v)
	}

	return out, nil
}

// RecognizeACD reports whether data starts with the ACD magic.
func RecognizeACD(data []byte) bool {
	return len(data) >= len(acdMagic) && bytes.Equal(data[:len(acdMagic)], acdMagic)
}

// DecodeACD decodes a whole ACD container into a grayscale pixel grid using
// the default LZSS stage.
func DecodeACD(r *Reader) (*Grid, error) {
	return DecodeACDWith(r, DefaultLZSS)
}

// DecodeACDWith decodes an ACD container with a caller-supplied LZSS stage.
func DecodeACDWith(r *Reader, lz LZSSFunc) (*Grid, error) {
	if lz == nil {
		lz = DefaultLZSS
	}

	if err := r.Seek(len(acdMagic)); err != nil {
		return nil, err
	}
	dataOffset, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	sizeComp, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	sizeOrig, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	width, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	height, err := r.ReadU32()
	if err != nil {
		return nil, err
	}

	if err := r.Seek(int(dataOffset)); err != nil {
		return nil, err
	}
	compressed, err := r.Read(int(sizeComp))
	if err != nil {
		return nil, err
	}
	expanded, err := lz(compressed, int(sizeOrig))
	if err != nil {
		return nil, err
	}

	canvas, err := pixelCount(int(width), int(height))
	if err != nil {
		return nil, err
	}
	pixels, err := ExpandBitLiterals(expanded, canvas)
	if err != nil {
		return nil, err
	}

	return NewGridFromBytes(int(width), int(height), pixels, Gray8)
}
