package pixdec

import "encoding/binary"

// Pixel is one color entry in blue, green, red, alpha order.
type Pixel struct {
	B, G, R, A uint8
}

// decodePixel decodes one pixel from data according to f.
// data must hold at least f.bytesPerPixel() bytes.
func decodePixel(f PixelFormat, data []byte) Pixel {
	switch f {
	case Gray8:
		v := data[0]
		return Pixel{B: v, G: v, R: v, A: 0xFF}
	case BGR888:
		return Pixel{B: data[0], G: data[1], R: data[2], A: 0xFF}
	case BGRA8888:
		return Pixel{B: data[0], G: data[1], R: data[2], A: data[3]}
	case BGRA5551, BGR555X:
		word := binary.LittleEndian.Uint16(data)
		p := Pixel{
			B: uint8(word&0x1F) << 3,
			G: uint8(word>>5&0x1F) << 3,
			R: uint8(word>>10&0x1F) << 3,
			A: 0xFF,
		}
		if f == BGRA5551 && word&0x8000 == 0 {
			p.A = 0
		}
		return p
	}
	return Pixel{}
}
