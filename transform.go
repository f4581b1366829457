package utf8codec

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

var replacementBytes = []byte{0xEF, 0xBF, 0xBD} // U+FFFD

// NewSanitizer returns a transformer that copies well-formed UTF-8 and
// replaces every invalid span with the encoding of U+FFFD, using the same
// spans as DecodeLossy.
func NewSanitizer() transform.Transformer { return sanitizer{} }

// NewValidator returns a transformer that copies well-formed UTF-8 and fails
// with ErrInvalidByteSequence at the first invalid span.
func NewValidator() transform.Transformer { return validator{} }

// Encoding plugs the codec into golang.org/x/text/encoding. Its decoder
// sanitizes input the way DecodeLossy does; its encoder rejects input that is
// not well-formed UTF-8.
var Encoding encoding.Encoding = utf8Encoding{}

type utf8Encoding struct{}

func (utf8Encoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: sanitizer{}}
}

func (utf8Encoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: validator{}}
}

type sanitizer struct{ transform.NopResetter }

func (sanitizer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		o := Inspect(src[nSrc:])
		if o.Reason == ReasonTruncated && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}
		out := src[nSrc : nSrc+o.Size]
		if !o.OK() {
			out = replacementBytes
		}
		if len(out) > len(dst)-nDst {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], out)
		nSrc += o.Size
	}
	return nDst, nSrc, nil
}

type validator struct{ transform.NopResetter }

func (validator) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		o := Inspect(src[nSrc:])
		switch {
		case o.Reason == ReasonTruncated && !atEOF:
			return nDst, nSrc, transform.ErrShortSrc
		case !o.OK():
			return nDst, nSrc, ErrInvalidByteSequence
		case o.Size > len(dst)-nDst:
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], src[nSrc:nSrc+o.Size])
		nSrc += o.Size
	}
	return nDst, nSrc, nil
}
