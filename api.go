package utf8codec

import "fmt"

// Codec is the configurable form of the package-level functions. Strict and
// lossy decoding share the same step; the caller picks the policy per call.
type Codec interface {
	Encode(s Scalar) ([]byte, error)
	EncodeAll(ss []Scalar) ([]byte, error)

	// DecodeOne decodes the first scalar in b; see the package-level DecodeOne.
	DecodeOne(b []byte) (s Scalar, n int, ok bool)

	// Strict
	Validate(b []byte) error
	Decode(b []byte) ([]Scalar, error)

	// Lossy. Fails only when b exceeds MaxDecode.
	DecodeLossy(b []byte) ([]Scalar, error)
}

// Options tune a Codec. The zero value is usable.
type Options struct {
	Logger    Logger // if nil, NopLogger is used
	Hooks     Hooks  // if nil, NopHooks is used
	MaxDecode int    // bytes; 0 => unlimited
}

// New returns a UTF-8 Codec configured by opts.
func New(opts Options) (Codec, error) {
	if opts.MaxDecode < 0 {
		return nil, fmt.Errorf("utf8codec: MaxDecode must not be negative (got %d)", opts.MaxDecode)
	}
	return newCodec(opts), nil
}
