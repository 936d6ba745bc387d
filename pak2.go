package pixdec

import "bytes"

var pak2Magic = []byte{0x03, 0x95, 0xAD, 0x4B}

// RecognizePAK2 reports whether data carries the PAK2 audio magic at offset 4.
func RecognizePAK2(data []byte) bool {
	return len(data) >= 8 && bytes.Equal(data[4:8], pak2Magic)
}

// ExtractPAK2Audio returns the raw audio payload of a PAK2 container. The
// payload is stored uncompressed behind a size-prefixed header; the returned
// slice is a copy, so the caller may discard the container bytes.
func ExtractPAK2Audio(r *Reader) ([]byte, error) {
	if err := r.Seek(12); err != nil {
		return nil, err
	}
	size, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	if err := r.Skip(4); err != nil {
		return nil, err
	}
	data, err := r.Read(int(size))
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), data...), nil
}
