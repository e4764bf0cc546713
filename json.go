package blob

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalJSON implements json.Marshaler, emitting the Blob as a base64
// string.
func (b Blob[C]) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Encode())
}

// UnmarshalJSON implements json.Unmarshaler. It dispatches on the JSON value
// kind: a string is decoded as base64 under the Blob's encoding, an array is
// consumed as a sequence of byte values. Any array element outside 0-255
// aborts with a RangeError.
func (b *Blob[C]) UnmarshalJSON(data []byte) error {
	iter := json.BorrowIterator(data)
	defer json.ReturnIterator(iter)

	switch iter.WhatIsNext() {
	case jsoniter.StringValue:
		decoded, err := Decode[C](iter.ReadString())
		if err != nil {
			return fmt.Errorf("blob: expected %s: %w", expecting, err)
		}
		b.data = decoded.data
	case jsoniter.ArrayValue:
		var buf []byte
		i := 0
		for iter.ReadArray() {
			v := iter.ReadInt64()
			if iter.Error != nil {
				break
			}
			if v < 0 || v > 255 {
				return newRangeError(i, v)
			}
			buf = append(buf, byte(v))
			i++
		}
		if iter.Error != nil && iter.Error != io.EOF {
			return fmt.Errorf("blob: expected %s: %w", expecting, iter.Error)
		}
		b.data = buf
	case jsoniter.NilValue:
		// No-op on null, per json.Unmarshaler convention.
	default:
		return fmt.Errorf("blob: expected %s", expecting)
	}
	return nil
}
