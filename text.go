package blob

import "encoding"

// String returns the base64 form of the Blob's bytes.
func (b Blob[C]) String() string {
	return b.Encode()
}

// MarshalText returns the base64 form of the Blob's bytes.
func (b Blob[C]) MarshalText() ([]byte, error) {
	enc := encodingOf[C]()
	out := make([]byte, enc.EncodedLen(len(b.data)))
	enc.Encode(out, b.data)
	return out, nil
}

// UnmarshalText decodes text as base64, replacing the Blob's contents.
// Parsing a Blob from a plain string is equivalent to Decode.
func (b *Blob[C]) UnmarshalText(text []byte) error {
	decoded, err := Decode[C](text)
	if err != nil {
		return err
	}
	b.data = decoded.data
	return nil
}

var (
	_ encoding.TextMarshaler   = Blob[Standard]{}
	_ encoding.TextUnmarshaler = (*Blob[Standard])(nil)
)
