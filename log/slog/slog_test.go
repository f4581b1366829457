//go:build go1.21

package slog

import (
	"bytes"
	stdslog "log/slog"
	"strings"
	"testing"

	"github.com/unkn0wn-root/utf8codec"
)

func TestSlogLoggerFieldsAreSorted(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{L: stdslog.New(stdslog.NewTextHandler(&buf, &stdslog.HandlerOptions{Level: stdslog.LevelDebug}))}
	c, err := utf8codec.New(utf8codec.Options{Logger: l})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.Decode([]byte("\xc0\xaf")); err == nil {
		t.Fatalf("expected strict decode error")
	}
	out := buf.String()
	if !strings.Contains(out, "level=DEBUG") || !strings.Contains(out, "offset=0 reason=overlong size=2") {
		t.Fatalf("unexpected log line: %q", out)
	}
}
