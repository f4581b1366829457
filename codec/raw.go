package codec

import "github.com/unkn0wn-root/utf8codec"

// Bytes is an identity codec for []byte values. Encode/Decode return the
// input unchanged.
type Bytes struct{}

func (Bytes) Encode(b []byte) ([]byte, error) { return b, nil }
func (Bytes) Decode(b []byte) ([]byte, error) { return b, nil }

// String is a codec for Go string values that enforces well-formed UTF-8 in
// both directions. Errors wrap utf8codec.ErrInvalidByteSequence.
type String struct{}

func (String) Encode(s string) ([]byte, error) {
	b := []byte(s)
	if err := utf8codec.Validate(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (String) Decode(b []byte) (string, error) {
	if err := utf8codec.Validate(b); err != nil {
		return "", err
	}
	return string(b), nil
}
