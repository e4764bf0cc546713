package blob

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// MarshalBSONValue implements bson.ValueMarshaler, emitting the Blob as a
// base64 string.
func (b Blob[C]) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bsontype.String, bsoncore.AppendString(nil, b.Encode()), nil
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler. It dispatches on the
// BSON element type: a string is decoded as base64 under the Blob's encoding,
// a binary payload is copied verbatim, an array is consumed as a sequence of
// byte values with each element validated to fit in a byte.
func (b *Blob[C]) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	v := bsoncore.Value{Type: t, Data: data}
	switch t {
	case bsontype.String:
		s, ok := v.StringValueOK()
		if !ok {
			return fmt.Errorf("blob: malformed bson string value")
		}
		decoded, err := Decode[C](s)
		if err != nil {
			return fmt.Errorf("blob: expected %s: %w", expecting, err)
		}
		b.data = decoded.data
	case bsontype.Binary:
		_, raw, ok := v.BinaryOK()
		if !ok {
			return fmt.Errorf("blob: malformed bson binary value")
		}
		// data aliases the enclosing document, so take a copy.
		b.data = append([]byte(nil), raw...)
	case bsontype.Array:
		arr, ok := v.ArrayOK()
		if !ok {
			return fmt.Errorf("blob: malformed bson array value")
		}
		vals, err := arr.Values()
		if err != nil {
			return err
		}
		buf := make([]byte, 0, min(len(vals), maxPrealloc))
		for i, el := range vals {
			n, ok := el.AsInt64OK()
			if !ok {
				return fmt.Errorf("blob: expected %s, got %s array element", expecting, el.Type)
			}
			if n < 0 || n > 255 {
				return newRangeError(i, n)
			}
			buf = append(buf, byte(n))
		}
		b.data = buf
	default:
		return fmt.Errorf("blob: expected %s, got bson %s", expecting, t)
	}
	return nil
}

var (
	_ bson.ValueMarshaler   = Blob[Standard]{}
	_ bson.ValueUnmarshaler = (*Blob[Standard])(nil)
)
