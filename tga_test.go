package pixdec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestDecompressRLERun(t *testing.T) {
	// Control 0x83: RLE flag set, count 3+1. One 3-channel pixel followed by
	// EOF must produce exactly 4 repeated pixels without reading further.
	r := NewReader([]byte{0x83, 1, 2, 3})
	out, err := DecompressRLE(r, 4, 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{1, 2, 3, 1, 2, 3, 1, 2, 3, 1, 2, 3}
	if !bytes.Equal(out, want) {
		t.Fatalf("got % x", out)
	}
	if !r.EOF() {
		t.Fatal("decoder read past the run")
	}
}

func TestDecompressRLELiteralRun(t *testing.T) {
	r := NewReader([]byte{0x01, 0xAA, 0xBB, 0xCC, 0xDD})
	out, err := DecompressRLE(r, 2, 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, []byte{0xAA, 0xBB, 0xCC, 0xDD}) {
		t.Fatalf("got % x", out)
	}
}

func TestDecompressRLEClipsAtTarget(t *testing.T) {
	// A 128-pixel run against a 2-pixel target: clipped, not overproduced.
	r := NewReader([]byte{0xFF, 0x42})
	out, err := DecompressRLE(r, 2, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, []byte{0x42, 0x42}) {
		t.Fatalf("got % x", out)
	}
}

func TestDecompressRLETruncated(t *testing.T) {
	r := NewReader([]byte{0x02, 0xAA})
	if _, err := DecompressRLE(r, 3, 1, 1); !errors.Is(err, ErrReadPastEnd) {
		t.Fatalf("want ErrReadPastEnd, got %v", err)
	}
}

// buildTGA assembles a minimal container. payload layout is caller-provided
// palette entries followed by pixel data.
func buildTGA(usePalette bool, dataType byte, paletteSize int, paletteDepth, width, height, depth, flags byte, payload []byte) []byte {
	var buf bytes.Buffer
	buf.WriteByte(0) // no id block
	if usePalette {
		buf.WriteByte(1)
	} else {
		buf.WriteByte(0)
	}
	buf.WriteByte(dataType)
	binary.Write(&buf, binary.LittleEndian, uint16(0))
	binary.Write(&buf, binary.LittleEndian, uint16(paletteSize))
	buf.WriteByte(paletteDepth)
	buf.Write(make([]byte, 4)) // origin
	binary.Write(&buf, binary.LittleEndian, uint16(width))
	binary.Write(&buf, binary.LittleEndian, uint16(height))
	buf.WriteByte(depth)
	buf.WriteByte(flags)
	buf.Write(payload)
	return buf.Bytes()
}

func TestDecodeTGATrueColor(t *testing.T) {
	pixels := []byte{
		1, 2, 3, 4, 5, 6,
		7, 8, 9, 10, 11, 12,
	}
	data := buildTGA(false, 2, 0, 0, 2, 2, 24, tgaTopToBottom, pixels)
	grid, err := DecodeTGA(NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if got := *grid.At(0, 0); got != (Pixel{B: 1, G: 2, R: 3, A: 0xFF}) {
		t.Fatalf("at 0,0: %+v", got)
	}
	if got := *grid.At(1, 1); got != (Pixel{B: 10, G: 11, R: 12, A: 0xFF}) {
		t.Fatalf("at 1,1: %+v", got)
	}
}

func TestDecodeTGAVerticalFlip(t *testing.T) {
	// Without the top-to-bottom flag rows are stored bottom-up and must be
	// flipped into top-left origin.
	pixels := []byte{
		1, 1, 1,
		2, 2, 2,
	}
	data := buildTGA(false, 2, 0, 0, 1, 2, 24, 0, pixels)
	grid, err := DecodeTGA(NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if grid.At(0, 0).B != 2 || grid.At(0, 1).B != 1 {
		t.Fatalf("rows not flipped: %+v %+v", *grid.At(0, 0), *grid.At(0, 1))
	}
}

func TestDecodeTGAAlphaInversion(t *testing.T) {
	// 32-bit stores alpha inverted: 0x00 in the container means opaque.
	pixels := []byte{9, 8, 7, 0x00}
	data := buildTGA(false, 2, 0, 0, 1, 1, 32, tgaTopToBottom, pixels)
	grid, err := DecodeTGA(NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if got := *grid.At(0, 0); got != (Pixel{B: 9, G: 8, R: 7, A: 0xFF}) {
		t.Fatalf("got %+v", got)
	}
}

func TestDecodeTGARLECompressed(t *testing.T) {
	payload := []byte{0x83, 5, 6, 7} // one run filling the 4-pixel image
	data := buildTGA(false, 10, 0, 0, 4, 1, 24, tgaTopToBottom, payload)
	grid, err := DecodeTGA(NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	for x := 0; x < 4; x++ {
		if got := *grid.At(x, 0); got != (Pixel{B: 5, G: 6, R: 7, A: 0xFF}) {
			t.Fatalf("at %d: %+v", x, got)
		}
	}
}

func TestDecodeTGAPalette(t *testing.T) {
	payload := []byte{
		1, 2, 3, // palette entry 0, BGR
		4, 5, 6, // palette entry 1
		1, 0, // pixel indices, 8 bits each
	}
	data := buildTGA(true, 1, 2, 24, 2, 1, 8, tgaTopToBottom, payload)
	grid, err := DecodeTGA(NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if got := *grid.At(0, 0); got != (Pixel{B: 4, G: 5, R: 6, A: 0xFF}) {
		t.Fatalf("at 0,0: %+v", got)
	}
	if got := *grid.At(1, 0); got != (Pixel{B: 1, G: 2, R: 3, A: 0xFF}) {
		t.Fatalf("at 1,0: %+v", got)
	}
}

func TestDecodeTGAPaletteIndexOutOfRange(t *testing.T) {
	payload := []byte{
		1, 2, 3,
		5, // index beyond the single palette entry
	}
	data := buildTGA(true, 1, 1, 24, 1, 1, 8, tgaTopToBottom, payload)
	if _, err := DecodeTGA(NewReader(data)); !errors.Is(err, ErrCorruptData) {
		t.Fatalf("want ErrCorruptData, got %v", err)
	}
}

func TestDecodeTGAUnsupportedDepth(t *testing.T) {
	// Depth 17 has no pixel format, with or without a palette.
	payload := make([]byte, 4)
	data := buildTGA(false, 2, 0, 0, 1, 1, 17, tgaTopToBottom, payload)
	if _, err := DecodeTGA(NewReader(data)); !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Fatalf("direct: want ErrUnsupportedBitDepth, got %v", err)
	}

	data = buildTGA(true, 1, 1, 17, 1, 1, 8, tgaTopToBottom, payload)
	if _, err := DecodeTGA(NewReader(data)); !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Fatalf("palette: want ErrUnsupportedBitDepth, got %v", err)
	}
}

func TestDecodeTGAPalette16Bit(t *testing.T) {
	var entry bytes.Buffer
	// 5-bit channels: blue 31, green 0, red 16, high bit set (ignored).
	binary.Write(&entry, binary.LittleEndian, uint16(0x8000|16<<10|0<<5|31))
	payload := append(entry.Bytes(), 0) // one pixel, index 0
	data := buildTGA(true, 1, 1, 16, 1, 1, 8, tgaTopToBottom, payload)
	grid, err := DecodeTGA(NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if got := *grid.At(0, 0); got != (Pixel{B: 248, G: 0, R: 128, A: 0xFF}) {
		t.Fatalf("got %+v", got)
	}
}

func TestRecognizeTGA(t *testing.T) {
	data := append(make([]byte, 20), tgaFooter...)
	if !RecognizeTGA(data) {
		t.Fatal("footer not recognized")
	}
	if RecognizeTGA([]byte("TRUEVISION")) {
		t.Fatal("false positive")
	}
}
