package pixdec

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	// Decode failures. All are terminal for the single decode call; nothing is retried.
	ErrBadDataOffset       = errors.New("backreference points before start of output")
	ErrBadDataSize         = errors.New("declared size does not match actual size")
	ErrCorruptData         = errors.New("structurally invalid control value")
	ErrUnsupportedBitDepth = errors.New("bit depth has no defined pixel format")
	ErrNotSupported        = errors.New("unknown filter or format selector")

	// Cursor failures.
	ErrReadPastEnd = errors.New("read past end of input")
	ErrBadSeek     = errors.New("seek position outside input")

	ErrUnknownFormat = errors.New("no format recognizes this data")
)
