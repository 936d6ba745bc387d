package pixdec

import (
	"bytes"
	"errors"
	"testing"
)

func TestReaderByteReads(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07})
	if v, err := r.ReadU8(); err != nil || v != 0x01 {
		t.Fatalf("u8: %v %v", v, err)
	}
	if v, err := r.ReadU16(); err != nil || v != 0x0302 {
		t.Fatalf("u16: %#x %v", v, err)
	}
	if v, err := r.ReadU32(); err != nil || v != 0x07060504 {
		t.Fatalf("u32: %#x %v", v, err)
	}
	if !r.EOF() {
		t.Fatal("expected EOF")
	}
	if _, err := r.ReadU8(); !errors.Is(err, ErrReadPastEnd) {
		t.Fatalf("want ErrReadPastEnd, got %v", err)
	}
}

func TestReaderSeekSkip(t *testing.T) {
	r := NewReader([]byte("abcdef"))
	if err := r.Seek(4); err != nil {
		t.Fatal(err)
	}
	b, err := r.Read(2)
	if err != nil || !bytes.Equal(b, []byte("ef")) {
		t.Fatalf("got %q %v", b, err)
	}
	if err := r.Seek(1); err != nil {
		t.Fatal(err)
	}
	if err := r.Skip(2); err != nil {
		t.Fatal(err)
	}
	if got := r.ReadToEOF(); !bytes.Equal(got, []byte("def")) {
		t.Fatalf("got %q", got)
	}
	if err := r.Seek(7); !errors.Is(err, ErrBadSeek) {
		t.Fatalf("want ErrBadSeek, got %v", err)
	}
	if r.Size() != 6 {
		t.Fatalf("size %d", r.Size())
	}
}

func TestReaderBitsMSBFirst(t *testing.T) {
	r := NewReader([]byte{0b1011_0110, 0b1100_0000})
	got := make([]uint32, 0, 4)
	for _, n := range []uint{1, 3, 4, 2} {
		v, err := r.ReadBits(n)
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, v)
	}
	want := []uint32{1, 0b011, 0b0110, 0b11}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bit read %d: got %#b want %#b", i, got[i], want[i])
		}
	}
}

func TestReaderBitsExhausted(t *testing.T) {
	r := NewReader([]byte{0xFF})
	if _, err := r.ReadBits(8); err != nil {
		t.Fatal(err)
	}
	if _, err := r.ReadBits(1); !errors.Is(err, ErrReadPastEnd) {
		t.Fatalf("want ErrReadPastEnd, got %v", err)
	}
}

func TestReaderByteReadRealignsBits(t *testing.T) {
	r := NewReader([]byte{0xF0, 0xAB})
	if v, err := r.ReadBits(4); err != nil || v != 0xF {
		t.Fatalf("bits: %#x %v", v, err)
	}
	// The partially consumed first byte is dropped.
	if v, err := r.ReadU8(); err != nil || v != 0xAB {
		t.Fatalf("u8 after bits: %#x %v", v, err)
	}
}
