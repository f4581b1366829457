package utf8codec

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"
)

func TestReaderSplitSequences(t *testing.T) {
	in := []byte("日本語 𣎴 A≢Α.")
	want := DecodeLossy(in)

	// one byte per Read forces every multi-byte sequence across reads
	r := NewReader(iotest.OneByteReader(bytes.NewReader(in)))
	got, err := r.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !scalarsEqual(got, want) {
		t.Fatalf("ReadAll = %v want %v", got, want)
	}
	if r.Offset() != int64(len(in)) {
		t.Fatalf("Offset = %d want %d", r.Offset(), len(in))
	}
}

func TestReaderLossyMatchesDecodeLossy(t *testing.T) {
	inputs := [][]byte{
		[]byte("\x41\xe2\x89\xa2\x91\x2e"),
		[]byte("\x41\xe2\x89\xa2\xce\x2e"),
		[]byte("\xc0\xaf\xe0\x80\xaf\xf0\x80\x80\xaf"),
		[]byte("\xE6\x97\xA5\xE6\x9C\xAC\xE8\xAA"),
		[]byte("\xf0\xa3"),
	}
	for _, in := range inputs {
		r := NewReader(iotest.HalfReader(bytes.NewReader(in)))
		got, err := r.ReadAll()
		if err != nil {
			t.Fatalf("ReadAll(% X): %v", in, err)
		}
		if want := DecodeLossy(in); !scalarsEqual(got, want) {
			t.Fatalf("Reader(% X) = %v want %v", in, got, want)
		}
	}
}

func TestReaderReadScalarSizes(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte("a\xf0\xa3")))
	s, n, err := r.ReadScalar()
	if err != nil || s != 'a' || n != 1 {
		t.Fatalf("first = (%v, %d, %v)", s, n, err)
	}
	s, n, err = r.ReadScalar()
	if err != nil || s != ReplacementScalar || n != 2 {
		t.Fatalf("truncated tail = (%v, %d, %v)", s, n, err)
	}
	if _, _, err = r.ReadScalar(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestStrictReaderStopsWithOffset(t *testing.T) {
	r := NewStrictReader(iotest.OneByteReader(bytes.NewReader([]byte("ab\xe2\x89x"))))
	got, err := r.ReadAll()
	var se *SequenceError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SequenceError, got %v", err)
	}
	if se.Offset != 2 || se.Size != 2 || se.Reason != ReasonBadContinuation {
		t.Fatalf("unexpected span %+v", se)
	}
	if !scalarsEqual(got, []Scalar{'a', 'b'}) {
		t.Fatalf("scalars before failure = %v", got)
	}
	// sticky
	if _, _, err2 := r.ReadScalar(); err2 != err {
		t.Fatalf("expected sticky error, got %v", err2)
	}
}

func TestReaderPropagatesSourceError(t *testing.T) {
	boom := errors.New("boom")
	src := io.MultiReader(bytes.NewReader([]byte("a\xe6\x97")), iotest.ErrReader(boom))
	r := NewReader(src)
	if s, _, err := r.ReadScalar(); err != nil || s != 'a' {
		t.Fatalf("first = %v, %v", s, err)
	}
	// the split sequence cannot be completed; the source error wins over truncation
	if _, _, err := r.ReadScalar(); !errors.Is(err, boom) {
		t.Fatalf("expected source error, got %v", err)
	}
}

func TestReaderEmpty(t *testing.T) {
	got, err := NewReader(bytes.NewReader(nil)).ReadAll()
	if err != nil || len(got) != 0 {
		t.Fatalf("empty ReadAll = %v, %v", got, err)
	}
}
