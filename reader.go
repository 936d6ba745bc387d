package pixdec

import (
	"encoding/binary"
	"fmt"
)

// Reader is a sequential cursor over an immutable byte buffer. It exposes
// byte-oriented little-endian reads and bit-oriented reads (MSB-first within
// each consumed byte). The bit position persists across ReadBits calls; any
// byte-oriented read or seek discards pending bits and realigns to the next
// byte boundary. A Reader is local to one decode call and never shared.
type Reader struct {
	data []byte
	pos  int    // next unconsumed byte
	acc  uint64 // pending bits, most significant first
	nacc uint   // number of pending bits in acc
}

// NewReader wraps data in a cursor positioned at the start.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Size returns the total length of the underlying buffer.
func (r *Reader) Size() int { return len(r.data) }

// Pos returns the current byte position.
func (r *Reader) Pos() int { return r.pos }

// EOF reports whether all bytes have been consumed.
func (r *Reader) EOF() bool { return r.pos >= len(r.data) }

// Read returns the next n bytes. The slice aliases the underlying buffer,
// which callers treat as immutable.
func (r *Reader) Read(n int) ([]byte, error) {
	r.align()
	if n < 0 || r.pos+n > len(r.data) {
		return nil, fmt.Errorf("%w: need %d bytes at %d of %d", ErrReadPastEnd, n, r.pos, len(r.data))
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadToEOF returns all remaining bytes.
func (r *Reader) ReadToEOF() []byte {
	r.align()
	b := r.data[r.pos:]
	r.pos = len(r.data)
	return b
}

// ReadU8 reads one byte.
func (r *Reader) ReadU8() (byte, error) {
	b, err := r.Read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadU16 reads a little-endian 16-bit value.
func (r *Reader) ReadU16() (uint16, error) {
	b, err := r.Read(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadU32 reads a little-endian 32-bit value.
func (r *Reader) ReadU32() (uint32, error) {
	b, err := r.Read(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// Seek moves the cursor to an absolute byte position.
func (r *Reader) Seek(pos int) error {
	if pos < 0 || pos > len(r.data) {
		return fmt.Errorf("%w: %d of %d", ErrBadSeek, pos, len(r.data))
	}
	r.pos = pos
	r.acc, r.nacc = 0, 0
	return nil
}

// Skip advances the cursor by n bytes.
func (r *Reader) Skip(n int) error {
	r.align()
	return r.Seek(r.pos + n)
}

// ReadBits reads n bits (n <= 32), MSB-first within each underlying byte.
// Bits left over from a partially consumed byte are used first.
func (r *Reader) ReadBits(n uint) (uint32, error) {
	if n > 32 {
		return 0, fmt.Errorf("%w: %d bits in one read", ErrReadPastEnd, n)
	}
	for r.nacc < n {
		if r.pos >= len(r.data) {
			return 0, fmt.Errorf("%w: bit read at byte %d", ErrReadPastEnd, r.pos)
		}
		r.acc = r.acc<<8 | uint64(r.data[r.pos])
		r.pos++
		r.nacc += 8
	}
	r.nacc -= n
	v := uint32(r.acc >> r.nacc)
	if n < 32 {
		v &= 1<<n - 1
	}
	r.acc &= 1<<r.nacc - 1
	return v, nil
}

// align drops pending bits so the next read starts on a byte boundary.
func (r *Reader) align() {
	r.acc, r.nacc = 0, 0
}
