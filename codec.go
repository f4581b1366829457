package utf8codec

import "github.com/unkn0wn-root/utf8codec/internal/util"

type codec struct {
	log       Logger
	hooks     Hooks
	maxDecode int
}

var _ Codec = (*codec)(nil)

func newCodec(opts Options) *codec {
	c := &codec{maxDecode: opts.MaxDecode}
	c.log = util.Coalesce[Logger](opts.Logger, NopLogger{})
	c.hooks = util.Coalesce[Hooks](opts.Hooks, NopHooks{})
	return c
}

func (c *codec) Encode(s Scalar) ([]byte, error) {
	b, err := Encode(s)
	if err != nil {
		c.rejectScalar(s, -1)
	}
	return b, err
}

func (c *codec) EncodeAll(ss []Scalar) ([]byte, error) {
	b, err := EncodeAll(ss)
	if ise, ok := err.(*InvalidScalarError); ok {
		c.rejectScalar(ise.Value, ise.Index)
	}
	return b, err
}

func (c *codec) DecodeOne(b []byte) (Scalar, int, bool) {
	o := Inspect(b)
	if !o.OK() && o.Reason != ReasonEmpty {
		c.invalid(0, o)
	}
	return o.Scalar, o.Size, o.OK()
}

func (c *codec) Validate(b []byte) error {
	if err := c.checkSize(b); err != nil {
		return err
	}
	err := Validate(b)
	if se, ok := err.(*SequenceError); ok {
		c.invalid(se.Offset, Outcome{Size: se.Size, Reason: se.Reason})
	}
	return err
}

func (c *codec) Decode(b []byte) ([]Scalar, error) {
	if err := c.checkSize(b); err != nil {
		return nil, err
	}
	out, err := Decode(b)
	if se, ok := err.(*SequenceError); ok {
		c.invalid(se.Offset, Outcome{Size: se.Size, Reason: se.Reason})
	}
	return out, err
}

func (c *codec) DecodeLossy(b []byte) ([]Scalar, error) {
	if err := c.checkSize(b); err != nil {
		return nil, err
	}
	out := make([]Scalar, 0, len(b))
	for off := 0; off < len(b); {
		o := Inspect(b[off:])
		if o.OK() {
			out = append(out, o.Scalar)
		} else {
			c.invalid(int64(off), o)
			out = append(out, ReplacementScalar)
		}
		off += o.Size
	}
	return out, nil
}

func (c *codec) checkSize(b []byte) error {
	if c.maxDecode <= 0 || len(b) <= c.maxDecode {
		return nil
	}
	c.hooks.PayloadRejected(len(b), c.maxDecode)
	c.log.Warn("decode refused (payload too large)", Fields{"size": len(b), "limit": c.maxDecode})
	return &PayloadTooLargeError{Size: len(b), Limit: c.maxDecode}
}

func (c *codec) invalid(off int64, o Outcome) {
	c.hooks.InvalidSequence(off, o)
	c.log.Debug("invalid byte sequence", Fields{"offset": off, "size": o.Size, "reason": o.Reason.String()})
}

func (c *codec) rejectScalar(s Scalar, idx int) {
	c.hooks.ScalarRejected(s)
	c.log.Debug("encode rejected scalar", Fields{"value": s.String(), "index": idx})
}
