// Package blob provides a binary container that serializes as base64 text.
//
// A Blob behaves like a plain byte buffer everywhere except at serialization
// boundaries, where it renders as a base64 string and accepts either a base64
// string or a sequence of byte values on the way back in. Call sites store and
// mutate raw bytes; the encoding happens only when a value crosses a format
// boundary.
//
// # Encodings
//
// The base64 alphabet and padding rule are selected at the type level:
//
//	b := blob.FromBytes[blob.Standard]([]byte{1, 2, 3, 4, 5})
//	b.Encode() // "AQIDBAU="
//
//	u := blob.FromBytes[blob.URLSafeNoPad]([]byte{0xFB, 0xFF})
//	u.Encode() // "-_8"
//
// Available selectors: Standard, StandardNoPad, URLSafe, URLSafeNoPad, Crypt.
// The selector is an empty struct, so it costs nothing at runtime and is not
// part of a Blob's value identity: Equal compares bytes only.
//
// # Serialization
//
// Blob integrates with JSON, MessagePack, YAML, and BSON by implementing each
// format's marshaler interfaces. Serializing always produces the format's
// string kind carrying the base64 text. Deserializing dispatches on the
// format's own type tag and accepts three shapes:
//
//   - a string, decoded as base64 under the Blob's encoding
//   - the format's native byte blob, copied verbatim (formats that have one)
//   - a sequence of integers, each validated to fit in a byte
//
// So both of these populate the same value:
//
//	{"payload": "AQIDBAU="}
//	{"payload": [1, 2, 3, 4, 5]}
//
// A sequence element outside 0-255 aborts deserialization with a RangeError;
// malformed base64 yields a DecodeError. Both wrap sentinel errors for
// errors.Is checks.
//
// # Buffer access
//
// Bytes returns the underlying storage, and Write appends, so a Blob can be
// used directly as an io.Writer or handed to code expecting a byte slice.
package blob

import (
	"bytes"
	"encoding/base64"
	"io"
	"slices"
)

// maxPrealloc caps sequence size hints during deserialization so a malformed
// or hostile length prefix cannot force a large allocation up front.
const maxPrealloc = 4096

// Blob is an owned byte buffer whose textual form is base64 under the
// encoding selected by C.
//
// The zero value is an empty Blob ready to use.
type Blob[C Encoding] struct {
	data []byte
}

// New returns an empty Blob. No allocation is performed.
func New[C Encoding]() Blob[C] {
	return Blob[C]{}
}

// FromBytes returns a Blob holding the byte form of src.
//
// String input is copied. Slice input is adopted without copying, like
// bytes.NewBuffer: the caller should not use src afterwards.
func FromBytes[C Encoding, T ~[]byte | ~string](src T) Blob[C] {
	return Blob[C]{data: []byte(src)}
}

// WithCapacity returns an empty Blob with space reserved for n bytes.
func WithCapacity[C Encoding](n int) Blob[C] {
	return Blob[C]{data: make([]byte, 0, n)}
}

// Decode parses encoded as base64 under the encoding selected by C.
// It returns a *DecodeError if encoded violates the encoding's alphabet,
// padding, or length rules.
func Decode[C Encoding, T ~string | ~[]byte](encoded T) (Blob[C], error) {
	enc := encodingOf[C]()
	data := make([]byte, enc.DecodedLen(len(encoded)))
	n, err := enc.Decode(data, []byte(encoded))
	if err != nil {
		return Blob[C]{}, newDecodeError(err)
	}
	return Blob[C]{data: data[:n]}, nil
}

// As re-tags b with a different encoding without copying the bytes.
// The bytes are not re-interpreted; only future Encode and Decode calls
// are affected.
func As[To Encoding, From Encoding](b Blob[From]) Blob[To] {
	return Blob[To]{data: b.data}
}

// Equal reports whether two Blobs hold the same bytes. The encoding
// selectors are ignored: they are a formatting lens, not data.
func Equal[A Encoding, B Encoding](a Blob[A], b Blob[B]) bool {
	return bytes.Equal(a.data, b.data)
}

// Encode returns the base64 form of the Blob's bytes.
func (b Blob[C]) Encode() string {
	return encodingOf[C]().EncodeToString(b.data)
}

// EncodeTo streams the base64 form of the Blob's bytes to w without
// materializing the full string. The output is byte-identical to Encode.
// The only error source is the sink; its error is returned as-is.
func (b Blob[C]) EncodeTo(w io.Writer) error {
	enc := base64.NewEncoder(encodingOf[C](), w)
	if _, err := enc.Write(b.data); err != nil {
		return err
	}
	return enc.Close()
}

// AppendDecoded decodes encoded and appends the resulting bytes to the Blob.
// On failure the Blob is left unchanged: the input is decoded into a scratch
// buffer before anything is appended.
func (b *Blob[C]) AppendDecoded(encoded string) error {
	decoded, err := Decode[C](encoded)
	if err != nil {
		return err
	}
	b.data = append(b.data, decoded.data...)
	return nil
}

// Bytes returns the Blob's underlying storage. The slice is a view, not a
// copy: mutating it mutates the Blob, and it remains valid until the next
// growing operation.
func (b Blob[C]) Bytes() []byte {
	return b.data
}

// Len returns the number of bytes in the Blob.
func (b Blob[C]) Len() int {
	return len(b.data)
}

// Cap returns the number of bytes the Blob can hold without reallocating.
func (b Blob[C]) Cap() int {
	return cap(b.data)
}

// Grow reserves capacity for at least n more bytes.
func (b *Blob[C]) Grow(n int) {
	b.data = slices.Grow(b.data, n)
}

// Append appends raw bytes to the Blob.
func (b *Blob[C]) Append(p ...byte) {
	b.data = append(b.data, p...)
}

// Write appends p to the Blob, implementing io.Writer. It never fails.
func (b *Blob[C]) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

// Clone returns a Blob with an independent copy of the bytes.
func (b Blob[C]) Clone() Blob[C] {
	return Blob[C]{data: slices.Clone(b.data)}
}

var _ io.Writer = (*Blob[Standard])(nil)
