package utf8codec

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"golang.org/x/text/transform"
)

func TestSanitizerReplacesInvalidSpans(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"A\xe2\x89\xa2\x91.", "A≢�."},
		{"A\xe2\x89\xa2\xce.", "A≢�."},
		{"\xc0\xaf", "�"},
		{"日本\xe8\xaa", "日本�"},
		{"clean", "clean"},
		{"", ""},
	}
	for _, tc := range cases {
		got, _, err := transform.String(NewSanitizer(), tc.in)
		if err != nil {
			t.Fatalf("sanitize %q: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("sanitize %q = %q want %q", tc.in, got, tc.want)
		}
		if !IsValid([]byte(got)) {
			t.Fatalf("sanitized output %q is not valid UTF-8", got)
		}
	}
}

func TestSanitizerStreamingSplit(t *testing.T) {
	in := []byte("x\xf0\xa3\x8e\xb4y\x91z")
	r := transform.NewReader(iotest.OneByteReader(bytes.NewReader(in)), NewSanitizer())
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != "x𣎴y�z" {
		t.Fatalf("streamed = %q", got)
	}
}

func TestSanitizerShortSrcBeforeEOF(t *testing.T) {
	dst := make([]byte, 16)
	nDst, nSrc, err := NewSanitizer().Transform(dst, []byte("a\xe6\x97"), false)
	if !errors.Is(err, transform.ErrShortSrc) || nDst != 1 || nSrc != 1 {
		t.Fatalf("Transform = %d, %d, %v", nDst, nSrc, err)
	}
	_, _, err = NewSanitizer().Transform(make([]byte, 2), []byte("\xff"), true)
	if !errors.Is(err, transform.ErrShortDst) {
		t.Fatalf("expected ErrShortDst, got %v", err)
	}
}

func TestValidator(t *testing.T) {
	got, _, err := transform.String(NewValidator(), "日本語")
	if err != nil || got != "日本語" {
		t.Fatalf("validate valid = %q, %v", got, err)
	}
	if _, _, err := transform.String(NewValidator(), "ok\xed\xa0\x80"); !errors.Is(err, ErrInvalidByteSequence) {
		t.Fatalf("expected ErrInvalidByteSequence, got %v", err)
	}
	if _, _, err := transform.String(NewValidator(), "ok\xe6\x97"); !errors.Is(err, ErrInvalidByteSequence) {
		t.Fatalf("truncated tail at EOF should fail, got %v", err)
	}
}

func TestEncodingAdapter(t *testing.T) {
	got, err := Encoding.NewDecoder().String("A\xe2\x89\xa2\x91.")
	if err != nil || got != "A≢�." {
		t.Fatalf("decoder = %q, %v", got, err)
	}
	if _, err := Encoding.NewEncoder().Bytes([]byte("\xc0\xaf")); !errors.Is(err, ErrInvalidByteSequence) {
		t.Fatalf("encoder should reject invalid input, got %v", err)
	}
	r := Encoding.NewDecoder().Reader(iotest.HalfReader(bytes.NewReader([]byte("日本\xe8\xaa"))))
	b, err := io.ReadAll(r)
	if err != nil || string(b) != "日本�" {
		t.Fatalf("decoder reader = %q, %v", b, err)
	}
}
