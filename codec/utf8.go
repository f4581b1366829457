package codec

import "github.com/unkn0wn-root/utf8codec"

// Scalars is a strict Codec for scalar sequences in their UTF-8 form.
// Encode rejects surrogates and values above U+10FFFF; Decode rejects any
// malformed input. The zero value is ready to use.
type Scalars struct{}

var _ Codec[[]utf8codec.Scalar] = Scalars{}

func (Scalars) Encode(ss []utf8codec.Scalar) ([]byte, error) { return utf8codec.EncodeAll(ss) }
func (Scalars) Decode(b []byte) ([]utf8codec.Scalar, error)  { return utf8codec.Decode(b) }

// LossyScalars is like Scalars but Decode never fails: each invalid span
// becomes U+FFFD.
type LossyScalars struct{}

var _ Codec[[]utf8codec.Scalar] = LossyScalars{}

func (LossyScalars) Encode(ss []utf8codec.Scalar) ([]byte, error) { return utf8codec.EncodeAll(ss) }
func (LossyScalars) Decode(b []byte) ([]utf8codec.Scalar, error) {
	return utf8codec.DecodeLossy(b), nil
}
