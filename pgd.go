package pixdec

import (
	"bytes"
	"fmt"
)

var pgdMagic = []byte{'G', 'E', 0x20, 0x00}

// DecompressPGD decodes the PGD sliding-window scheme into exactly
// expectedSize bytes. An 8-bit control word is refilled with 0xFF00 set above
// it so the sentinel bit marks when 8 control decisions have been consumed.
// Control bit 1 is a back-reference into already-produced output, control bit
// 0 a literal run copied from the compressed stream.
func DecompressPGD(compressed []byte, expectedSize int) ([]byte, error) {
	if expectedSize < 0 {
		return nil, fmt.Errorf("%w: negative output size %d", ErrBadDataSize, expectedSize)
	}

	r := NewReader(compressed)
	out := make([]byte, expectedSize)
	pos := 0

	var control uint16
	for pos < expectedSize {
		control >>= 1
		if control&0x100 == 0 {
			b, err := r.ReadU8()
			if err != nil {
				return nil, err
			}
			control = uint16(b) | 0xFF00
		}

		if control&1 == 1 {
			tmp, err := r.ReadU16()
			if err != nil {
				return nil, err
			}

			var repetitions, lookBehind int
			if tmp&8 != 0 {
				// Short form: 3-bit count, 12-bit distance.
				repetitions = int(tmp&7) + 4
				lookBehind = int(tmp >> 4)
			} else {
				// Long form: one extra byte, split count, 12-bit distance.
				b, err := r.ReadU8()
				if err != nil {
					return nil, err
				}
				wide := uint32(tmp)<<8 | uint32(b)
				repetitions = int(((wide&0xFFC)>>2+1)<<2 | wide&3)
				lookBehind = int(wide >> 12)
			}

			src := pos - lookBehind
			if src < 0 {
				return nil, fmt.Errorf("%w: distance %d at output %d", ErrBadDataOffset, lookBehind, pos)
			}
			// Byte-by-byte so an overlapping back-reference re-reads bytes
			// written earlier in the same copy (RLE-like self-reference).
			for pos < expectedSize && repetitions > 0 {
				out[pos] = out[src]
				pos++
				src++
				repetitions--
			}
		} else {
			n, err := r.ReadU8()
			if err != nil {
				return nil, err
			}
			lit, err := r.Read(int(n))
			if err != nil {
				return nil, err
			}
			for i := 0; pos < expectedSize && i < len(lit); i++ {
				out[pos] = lit[i]
				pos++
			}
		}
	}

	return out, nil
}

// RecognizePGD reports whether data starts with the PGD magic.
func RecognizePGD(data []byte) bool {
	return len(data) >= len(pgdMagic) && bytes.Equal(data[:len(pgdMagic)], pgdMagic)
}

// DecodePGD decodes a whole PGD container into a pixel grid.
func DecodePGD(r *Reader) (*Grid, error) {
	if err := r.Seek(len(pgdMagic)); err != nil {
		return nil, err
	}
	if err := r.Skip(8); err != nil {
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
	if err := r.Skip(8); err != nil {
		return nil, err
	}
	filterType, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	if err := r.Skip(2); err != nil {
		return nil, err
	}
	sizeOrig, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	sizeComp, err := r.ReadU32()
	if err != nil {
		return nil, err
	}

	compressed, err := r.Read(int(sizeComp))
	if err != nil {
		return nil, err
	}
	data, err := DecompressPGD(compressed, int(sizeOrig))
	if err != nil {
		return nil, err
	}

	switch filterType {
	case 2:
		pixels, err := ComposePlanar(data, int(width), int(height))
		if err != nil {
			return nil, err
		}
		return NewGridFromBytes(int(width), int(height), pixels, BGR888)

	case 3:
		fr := NewReader(data)
		if err := fr.Skip(2); err != nil {
			return nil, err
		}
		depth, err := fr.ReadU16()
		if err != nil {
			return nil, err
		}
		channels := int(depth >> 3)
		w, err := fr.ReadU16()
		if err != nil {
			return nil, err
		}
		h, err := fr.ReadU16()
		if err != nil {
			return nil, err
		}
		if uint32(w) != width || uint32(h) != height {
			return nil, fmt.Errorf("%w: filter geometry %dx%d, header %dx%d", ErrBadDataSize, w, h, width, height)
		}
		deltaSpec, err := fr.Read(int(height))
		if err != nil {
			return nil, err
		}
		pixels, err := ApplyScanlineDelta(deltaSpec, fr.ReadToEOF(), int(width), int(height), channels)
		if err != nil {
			return nil, err
		}
		switch channels {
		case 4:
			return NewGridFromBytes(int(width), int(height), pixels, BGRA8888)
		case 3:
			return NewGridFromBytes(int(width), int(height), pixels, BGR888)
		}
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, depth)
	}

	return nil, fmt.Errorf("%w: filter %d", ErrNotSupported, filterType)
}
