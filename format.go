package pixdec

// PixelFormat identifies the byte layout of raw pixel data.
type PixelFormat int

// Pixel format constants.
const (
	Gray8    PixelFormat = iota // 1 byte: luminance, alpha forced opaque.
	BGR888                      // 3 bytes: blue, green, red.
	BGRA8888                    // 4 bytes: blue, green, red, alpha.
	BGRA5551                    // 2 bytes LE: 5b blue, 5b green, 5b red, 1b alpha.
	BGR555X                     // 2 bytes LE: like BGRA5551 but the high bit is ignored.
)

// bytesPerPixel returns the encoded size of one pixel, 0 for unknown formats.
func (f PixelFormat) bytesPerPixel() int {
	switch f {
	case Gray8:
		return 1
	case BGR888:
		return 3
	case BGRA8888:
		return 4
	case BGRA5551, BGR555X:
		return 2
	}
	return 0
}
