package blob

import "encoding/base64"

// cryptAlphabet is the character set used by crypt(3) password hashes.
const cryptAlphabet = "./0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

var cryptEncoding = base64.NewEncoding(cryptAlphabet).WithPadding(base64.NoPadding)

// Encoding selects the base64 alphabet and padding rule a Blob uses.
//
// The set of encodings is closed: Standard, StandardNoPad, URLSafe,
// URLSafeNoPad, and Crypt. Each is an empty struct, so a Blob parametrized
// over one carries no runtime state for it. The encoding only affects how
// bytes are rendered to and parsed from text; it is not part of a Blob's
// value identity.
type Encoding interface {
	encoding() *base64.Encoding
}

// Standard is the standard base64 character set with padding.
type Standard struct{}

// StandardNoPad is the standard base64 character set without padding.
type StandardNoPad struct{}

// URLSafe is the URL-safe base64 character set with padding.
type URLSafe struct{}

// URLSafeNoPad is the URL-safe base64 character set without padding.
type URLSafeNoPad struct{}

// Crypt is the base64 variant used by crypt(3), without padding.
type Crypt struct{}

func (Standard) encoding() *base64.Encoding      { return base64.StdEncoding }
func (StandardNoPad) encoding() *base64.Encoding { return base64.RawStdEncoding }
func (URLSafe) encoding() *base64.Encoding       { return base64.URLEncoding }
func (URLSafeNoPad) encoding() *base64.Encoding  { return base64.RawURLEncoding }
func (Crypt) encoding() *base64.Encoding         { return cryptEncoding }

// encodingOf resolves the base64 encoding for a selector type.
func encodingOf[C Encoding]() *base64.Encoding {
	var c C
	return c.encoding()
}
