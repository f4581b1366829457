package utf8codec

import "fmt"

// Scalar is a Unicode scalar value. Only values accepted by Valid are ever
// produced by a successful decode.
type Scalar uint32

const (
	// ReplacementScalar is substituted for each invalid span by lossy decoding.
	ReplacementScalar Scalar = 0xFFFD

	// MaxScalar is the largest Unicode code point.
	MaxScalar Scalar = 0x10FFFF

	// MaxLen is the longest encoding of a single scalar.
	MaxLen = 4

	surrogateMin Scalar = 0xD800
	surrogateMax Scalar = 0xDFFF
)

// IsValidScalar reports whether v is a Unicode scalar value.
func IsValidScalar(v uint32) bool {
	return Scalar(v).Valid()
}

// Valid reports whether s is in [U+0000, U+D7FF] or [U+E000, U+10FFFF].
func (s Scalar) Valid() bool {
	return s <= MaxScalar && (s < surrogateMin || s > surrogateMax)
}

// Len returns the number of bytes Encode produces for s, or -1 if s is not a
// valid scalar value.
func (s Scalar) Len() int {
	switch {
	case !s.Valid():
		return -1
	case s <= rune1Max:
		return 1
	case s <= rune2Max:
		return 2
	case s <= rune3Max:
		return 3
	default:
		return 4
	}
}

// Rune converts s to a Go rune.
func (s Scalar) Rune() rune { return rune(s) }

func (s Scalar) String() string {
	return fmt.Sprintf("U+%04X", uint32(s))
}

// FromASCII converts an ASCII string to scalar values, one per byte.
// Bytes outside ASCII are not decoded as UTF-8; each becomes ReplacementScalar.
func FromASCII(ascii string) []Scalar {
	out := make([]Scalar, len(ascii))
	for i := 0; i < len(ascii); i++ {
		if c := ascii[i]; c < tx {
			out[i] = Scalar(c)
		} else {
			out[i] = ReplacementScalar
		}
	}
	return out
}
