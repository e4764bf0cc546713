package blob

import (
	"encoding/base64"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML implements yaml.Marshaler, emitting the Blob as a base64
// string.
func (b Blob[C]) MarshalYAML() (any, error) {
	return b.Encode(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. It dispatches on the node kind:
// a string scalar is decoded as base64 under the Blob's encoding, a !!binary
// scalar is taken verbatim, a sequence is consumed as byte values with each
// element validated to fit in a byte.
func (b *Blob[C]) UnmarshalYAML(node *yaml.Node) error {
	switch {
	case node.Kind == yaml.ScalarNode && node.Tag == "!!binary":
		// YAML binary scalars are standard base64 regardless of the
		// Blob's own encoding.
		raw, err := base64.StdEncoding.DecodeString(node.Value)
		if err != nil {
			return newDecodeError(err)
		}
		b.data = raw
	case node.Kind == yaml.ScalarNode && node.Tag == "!!str":
		decoded, err := Decode[C](node.Value)
		if err != nil {
			return fmt.Errorf("blob: line %d: expected %s: %w", node.Line, expecting, err)
		}
		b.data = decoded.data
	case node.Kind == yaml.SequenceNode:
		buf := make([]byte, 0, min(len(node.Content), maxPrealloc))
		for i, item := range node.Content {
			var v int64
			if err := item.Decode(&v); err != nil {
				return err
			}
			if v < 0 || v > 255 {
				return newRangeError(i, v)
			}
			buf = append(buf, byte(v))
		}
		b.data = buf
	default:
		return fmt.Errorf("blob: line %d: expected %s, got %s", node.Line, expecting, node.Tag)
	}
	return nil
}

var (
	_ yaml.Marshaler   = Blob[Standard]{}
	_ yaml.Unmarshaler = (*Blob[Standard])(nil)
)
