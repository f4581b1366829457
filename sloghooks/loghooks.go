// Package sloghooks reports codec events through log/slog.
package sloghooks

import (
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/utf8codec"
)

type Options struct {
	// Sampling to avoid floods on garbage input; 0/1 = log all.
	InvalidEvery uint64
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	invalidCtr atomic.Uint64
}

var _ utf8codec.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) InvalidSequence(offset int64, o utf8codec.Outcome) {
	if h.l == nil || !sample(h.opts.InvalidEvery, &h.invalidCtr) {
		return
	}
	h.l.Debug("utf8codec.invalid_sequence",
		"offset", offset,
		"size", o.Size,
		"reason", o.Reason.String())
}

func (h *Hooks) ScalarRejected(v utf8codec.Scalar) {
	if h.l == nil {
		return
	}
	h.l.Warn("utf8codec.scalar_rejected",
		"value", v.String())
}

func (h *Hooks) PayloadRejected(size, limit int) {
	if h.l == nil {
		return
	}
	h.l.Warn("utf8codec.payload_rejected",
		"size", size,
		"limit", limit)
}
