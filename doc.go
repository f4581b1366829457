// Package utf8codec implements a strict UTF-8 codec over Unicode scalar values.
//
// Decoding never panics and never desynchronizes: every call of the
// incremental step reports how many leading bytes it used up, at least one for
// non-empty input, so a caller can resume at b[n:] after any failure.
//
// Components:
//   - Scalar: a Unicode scalar value, U+0000..U+D7FF and U+E000..U+10FFFF.
//   - Encode / AppendScalar / EncodeAll: minimal-length UTF-8 encoding.
//   - Inspect / DecodeOne: decode exactly one scalar from the front of a buffer.
//   - IsValid / Validate / Decode: strict full-buffer decoding.
//   - DecodeLossy: one U+FFFD per invalid span, then continue.
//   - Reader: the same step over an io.Reader.
//   - NewSanitizer / NewValidator: golang.org/x/text transformers.
//
// Consumption rules for an invalid span:
//
//	bad lead byte (10xxxxxx, 11111xxx)  - 1 byte
//	missing continuation byte           - lead + continuations seen so far
//	truncated at end of input           - every remaining byte
//	overlong, surrogate, > U+10FFFF     - the full sequence length
//
// Example:
//
//	out := utf8codec.DecodeLossy([]byte("A\xe2\x89\xa2\x91."))
//	// [U+0041 U+2262 U+FFFD U+002E]
package utf8codec
