package pixdec

// Format couples magic-byte recognition with decoding for one container type.
type Format struct {
	// Name identifies the format in caller-facing error reports, e.g.
	// "amuse-craft/pgd".
	Name string
	// Recognize probes raw container bytes for the format's magic.
	Recognize func(data []byte) bool
	// Decode turns a recognized container into a pixel grid.
	Decode func(r *Reader) (*Grid, error)
}

// Formats is the static image format registry, in probe order.
var Formats = []Format{
	{Name: "amuse-craft/pgd", Recognize: RecognizePGD, Decode: DecodePGD},
	{Name: "fc01/acd", Recognize: RecognizeACD, Decode: DecodeACD},
	{Name: "truevision/tga", Recognize: RecognizeTGA, Decode: DecodeTGA},
}

// Decode sniffs data against the registry and decodes it with the first
// matching format. The format name is returned even when decoding fails so
// callers can report the offending format alongside the error.
func Decode(data []byte) (*Grid, string, error) {
	for _, f := range Formats {
		if f.Recognize(data) {
			g, err := f.Decode(NewReader(data))
			return g, f.Name, err
		}
	}
	return nil, "", ErrUnknownFormat
}
