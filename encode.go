package utf8codec

// Bit layout of a UTF-8 sequence.
const (
	tx = 0x80 // 1000 0000
	t2 = 0xC0 // 1100 0000
	t3 = 0xE0 // 1110 0000
	t4 = 0xF0 // 1111 0000

	maskx = 0x3F // 0011 1111
	mask2 = 0x1F // 0001 1111
	mask3 = 0x0F // 0000 1111
	mask4 = 0x07 // 0000 0111

	rune1Max = 1<<7 - 1
	rune2Max = 1<<11 - 1
	rune3Max = 1<<16 - 1
)

// Encode returns the minimal UTF-8 encoding of s.
// It fails with *InvalidScalarError when s is a surrogate half or exceeds
// U+10FFFF.
func Encode(s Scalar) ([]byte, error) {
	n := s.Len()
	if n < 0 {
		return nil, &InvalidScalarError{Value: s, Index: -1}
	}
	return appendScalar(make([]byte, 0, n), s), nil
}

// AppendScalar appends the UTF-8 encoding of s to dst and returns the
// extended buffer. On error dst is returned unchanged.
func AppendScalar(dst []byte, s Scalar) ([]byte, error) {
	if !s.Valid() {
		return dst, &InvalidScalarError{Value: s, Index: -1}
	}
	return appendScalar(dst, s), nil
}

// EncodeAll encodes a sequence of scalars. The first invalid scalar aborts
// the encode and is reported with its index.
func EncodeAll(ss []Scalar) ([]byte, error) {
	total := 0
	for i, s := range ss {
		n := s.Len()
		if n < 0 {
			return nil, &InvalidScalarError{Value: s, Index: i}
		}
		total += n
	}
	out := make([]byte, 0, total)
	for _, s := range ss {
		out = appendScalar(out, s)
	}
	return out, nil
}

// appendScalar assumes s is valid.
func appendScalar(p []byte, s Scalar) []byte {
	switch {
	case s <= rune1Max:
		return append(p, byte(s))
	case s <= rune2Max:
		return append(p,
			t2|byte(s>>6),
			tx|byte(s)&maskx)
	case s <= rune3Max:
		return append(p,
			t3|byte(s>>12),
			tx|byte(s>>6)&maskx,
			tx|byte(s)&maskx)
	default:
		return append(p,
			t4|byte(s>>18),
			tx|byte(s>>12)&maskx,
			tx|byte(s>>6)&maskx,
			tx|byte(s)&maskx)
	}
}
