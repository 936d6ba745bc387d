/*
Package pixdec decodes raster images from proprietary game-asset containers.

Supported containers:

PGD (Amuse Craft, magic "GE \x00"): sliding-window compression driven by an
8-bit control word (bit 1 = back-reference, bit 0 = literal run), followed by
either a planar color filter (three sub-resolution planes composed into BGR)
or a per-scanline delta filter with three prediction modes.

ACD (FC01, magic "ACD 1.00"): a generic LZSS stage followed by a secondary
bit-coded literal stream that re-derives grayscale pixel bytes through a
fixed-point quantization curve.

TGA (Truevision, optional trailing footer): control-byte RLE or raw pixel
data at 8/16/24/32-bit depth, with optional palettes and flip/alpha
post-processing.

Every decoder is a pure transform: container bytes in, an exclusively owned
Grid of BGRA pixels out. Output sizes are validated against the header-declared
sizes; any structural inconsistency is a terminal error for that decode, never
a partial buffer. Decoders hold no cross-call state and are safe to run
concurrently over distinct inputs.

# Examples

Sniff and decode a container:

	grid, name, err := pixdec.Decode(data)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	img := grid.NRGBA()

Decode a known PGD container:

	grid, err := pixdec.DecodePGD(pixdec.NewReader(data))
	if err != nil {
		return err
	}

Decode an ACD container with a custom first-stage LZSS implementation:

	grid, err := pixdec.DecodeACDWith(pixdec.NewReader(data), myLZSS)
	if err != nil {
		return err
	}

Match failures against the error taxonomy:

	if errors.Is(err, pixdec.ErrUnsupportedBitDepth) {
		// skip this entry, keep unpacking the rest of the archive
	}
*/
package pixdec
