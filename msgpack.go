package blob

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

// EncodeMsgpack implements msgpack.CustomEncoder, emitting the Blob as a
// base64 string.
func (b Blob[C]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(b.Encode())
}

// DecodeMsgpack implements msgpack.CustomDecoder. It peeks the next wire code
// and dispatches: a string is decoded as base64 under the Blob's encoding, a
// bin payload is copied verbatim, an array is consumed as a sequence of byte
// values with each element validated to fit in a byte.
func (b *Blob[C]) DecodeMsgpack(dec *msgpack.Decoder) error {
	code, err := dec.PeekCode()
	if err != nil {
		return err
	}
	switch {
	case msgpcode.IsString(code):
		s, err := dec.DecodeString()
		if err != nil {
			return err
		}
		decoded, err := Decode[C](s)
		if err != nil {
			return fmt.Errorf("blob: expected %s: %w", expecting, err)
		}
		b.data = decoded.data
	case msgpcode.IsBin(code):
		raw, err := dec.DecodeBytes()
		if err != nil {
			return err
		}
		b.data = raw
	case msgpcode.IsFixedArray(code), code == msgpcode.Array16, code == msgpcode.Array32:
		n, err := dec.DecodeArrayLen()
		if err != nil {
			return err
		}
		buf := make([]byte, 0, min(n, maxPrealloc))
		for i := 0; i < n; i++ {
			v, err := dec.DecodeInt64()
			if err != nil {
				return err
			}
			if v < 0 || v > 255 {
				return newRangeError(i, v)
			}
			buf = append(buf, byte(v))
		}
		b.data = buf
	default:
		return fmt.Errorf("blob: expected %s, got msgpack code 0x%02x", expecting, code)
	}
	return nil
}

var (
	_ msgpack.CustomEncoder = Blob[Standard]{}
	_ msgpack.CustomDecoder = (*Blob[Standard])(nil)
)
