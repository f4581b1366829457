package utf8codec

import (
	"bufio"
	"errors"
	"io"
)

// Reader decodes scalars from an io.Reader. A sequence split across reads of
// the underlying reader is reassembled; truncation is reported only once the
// underlying reader is exhausted.
//
// Reader is not safe for concurrent use.
type Reader struct {
	br     *bufio.Reader
	strict bool
	off    int64
	err    error // sticky strict-mode failure
}

// NewReader returns a lossy Reader: invalid spans decode as ReplacementScalar.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// NewStrictReader returns a Reader that stops at the first invalid span with
// a *SequenceError carrying the stream offset.
func NewStrictReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r), strict: true}
}

// Offset returns the number of input bytes consumed so far.
func (d *Reader) Offset() int64 { return d.off }

// ReadScalar decodes the next scalar and returns it with the number of bytes
// it used. At the end of input it returns io.EOF.
func (d *Reader) ReadScalar() (s Scalar, size int, err error) {
	if d.err != nil {
		return 0, 0, d.err
	}

	p, perr := d.br.Peek(MaxLen)
	if len(p) == 0 {
		if perr == nil {
			perr = io.ErrNoProgress
		}
		return 0, 0, perr
	}

	o := Inspect(p)
	// a short peek only means truncation if the source is really done
	if o.Reason == ReasonTruncated && perr != nil && !errors.Is(perr, io.EOF) {
		return 0, 0, perr
	}

	if _, err := d.br.Discard(o.Size); err != nil {
		return 0, 0, err
	}
	at := d.off
	d.off += int64(o.Size)

	if o.OK() {
		return o.Scalar, o.Size, nil
	}
	if d.strict {
		d.err = &SequenceError{Offset: at, Size: o.Size, Reason: o.Reason}
		return 0, o.Size, d.err
	}
	return ReplacementScalar, o.Size, nil
}

// ReadAll decodes until io.EOF. For strict readers the scalars decoded before
// a failure are returned along with the error.
func (d *Reader) ReadAll() ([]Scalar, error) {
	var out []Scalar
	for {
		s, _, err := d.ReadScalar()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return out, err
		}
		out = append(out, s)
	}
}
