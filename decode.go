package utf8codec

// Reason classifies the outcome of one decode step.
type Reason uint8

const (
	ReasonNone            Reason = iota // a scalar was decoded
	ReasonEmpty                         // no input
	ReasonInvalidLead                   // 10xxxxxx or 11111xxx in lead position
	ReasonTruncated                     // input ended inside a sequence
	ReasonBadContinuation               // expected 10xxxxxx, found something else
	ReasonOverlong                      // value fits a shorter sequence
	ReasonSurrogate                     // value in U+D800..U+DFFF
	ReasonOutOfRange                    // value above U+10FFFF
)

var reasonNames = [...]string{
	ReasonNone:            "none",
	ReasonEmpty:           "empty",
	ReasonInvalidLead:     "invalid_lead",
	ReasonTruncated:       "truncated",
	ReasonBadContinuation: "bad_continuation",
	ReasonOverlong:        "overlong",
	ReasonSurrogate:       "surrogate",
	ReasonOutOfRange:      "out_of_range",
}

func (r Reason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return "unknown"
}

// Outcome is the result of decoding one sequence from the front of a buffer.
// Size is the number of bytes used up, valid or not.
type Outcome struct {
	Scalar Scalar
	Size   int
	Reason Reason
}

// OK reports whether the step decoded a scalar.
func (o Outcome) OK() bool { return o.Reason == ReasonNone }

// Inspect decodes the first scalar in b.
//
// Size is never larger than len(b) and is at least 1 unless b is empty. After
// a failure, decoding from b[Size:] resynchronizes on the next sequence
// boundary.
func Inspect(b []byte) Outcome {
	if len(b) == 0 {
		return Outcome{Reason: ReasonEmpty}
	}

	lead := b[0]
	var (
		size int
		lo   Scalar
		v    Scalar
	)
	switch {
	case lead < tx:
		return Outcome{Scalar: Scalar(lead), Size: 1}
	case lead&0xE0 == t2:
		size, lo, v = 2, rune1Max+1, Scalar(lead&mask2)
	case lead&0xF0 == t3:
		size, lo, v = 3, rune2Max+1, Scalar(lead&mask3)
	case lead&0xF8 == t4:
		size, lo, v = 4, rune3Max+1, Scalar(lead&mask4)
	default:
		return Outcome{Size: 1, Reason: ReasonInvalidLead}
	}

	for n := 1; n < size; n++ {
		if n == len(b) {
			return Outcome{Size: n, Reason: ReasonTruncated}
		}
		c := b[n]
		if c&0xC0 != tx {
			return Outcome{Size: n, Reason: ReasonBadContinuation}
		}
		v = v<<6 | Scalar(c&maskx)
	}

	switch {
	case v < lo:
		return Outcome{Size: size, Reason: ReasonOverlong}
	case v > MaxScalar:
		return Outcome{Size: size, Reason: ReasonOutOfRange}
	case v >= surrogateMin && v <= surrogateMax:
		return Outcome{Size: size, Reason: ReasonSurrogate}
	}
	return Outcome{Scalar: v, Size: size}
}

// DecodeOne decodes the first scalar in b and reports how many bytes it used.
// ok is false for invalid input; n is still >= 1 so the caller can skip the
// bad span. An empty b yields (0, 0, false).
func DecodeOne(b []byte) (s Scalar, n int, ok bool) {
	o := Inspect(b)
	return o.Scalar, o.Size, o.OK()
}

// IsValid reports whether b consists entirely of well-formed UTF-8.
// The empty buffer is valid.
func IsValid(b []byte) bool {
	for len(b) > 0 {
		if b[0] < tx {
			b = b[1:]
			continue
		}
		o := Inspect(b)
		if !o.OK() {
			return false
		}
		b = b[o.Size:]
	}
	return true
}

// Validate is IsValid with a position: it returns a *SequenceError describing
// the first invalid span, or nil.
func Validate(b []byte) error {
	for off := 0; off < len(b); {
		o := Inspect(b[off:])
		if !o.OK() {
			return &SequenceError{Offset: int64(off), Size: o.Size, Reason: o.Reason}
		}
		off += o.Size
	}
	return nil
}

// Decode strictly decodes b. It fails on the first invalid span with a
// *SequenceError and returns no scalars.
func Decode(b []byte) ([]Scalar, error) {
	out := make([]Scalar, 0, len(b))
	for off := 0; off < len(b); {
		o := Inspect(b[off:])
		if !o.OK() {
			return nil, &SequenceError{Offset: int64(off), Size: o.Size, Reason: o.Reason}
		}
		out = append(out, o.Scalar)
		off += o.Size
	}
	return out, nil
}

// DecodeLossy decodes b, substituting ReplacementScalar once for every
// invalid span reported by Inspect. The empty buffer yields an empty slice.
func DecodeLossy(b []byte) []Scalar {
	out := make([]Scalar, 0, len(b))
	for off := 0; off < len(b); {
		o := Inspect(b[off:])
		if o.OK() {
			out = append(out, o.Scalar)
		} else {
			out = append(out, ReplacementScalar)
		}
		off += o.Size
	}
	return out
}

// Count returns len(DecodeLossy(b)) without allocating.
func Count(b []byte) int {
	n := 0
	for off := 0; off < len(b); n++ {
		off += Inspect(b[off:]).Size
	}
	return n
}
