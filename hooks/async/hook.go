// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    InvalidEvery: 100, // sample logs: ~every 100th invalid span
//	})
//
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	c, _ := utf8codec.New(utf8codec.Options{Hooks: hooks})
package asynchook

import (
	"sync"
	"sync/atomic"

	"github.com/unkn0wn-root/utf8codec"
)

// Hooks forwards events to inner on a fixed pool of workers. Events are
// dropped, not queued, when the queue is full or after Close.
type Hooks struct {
	inner   utf8codec.Hooks
	q       chan func()
	wg      sync.WaitGroup
	once    sync.Once
	mu      sync.RWMutex
	closed  bool
	dropped atomic.Uint64
}

var _ utf8codec.Hooks = (*Hooks)(nil)

func New(inner utf8codec.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers.
func (h *Hooks) Close() {
	h.once.Do(func() {
		h.mu.Lock()
		h.closed = true
		close(h.q)
		h.mu.Unlock()
		h.wg.Wait()
	})
}

// Dropped returns how many events were discarded.
func (h *Hooks) Dropped() uint64 { return h.dropped.Load() }

func (h *Hooks) try(f func()) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		h.dropped.Add(1)
		return
	}
	select {
	case h.q <- f:
	default: // drop
		h.dropped.Add(1)
	}
}

func (h *Hooks) InvalidSequence(off int64, o utf8codec.Outcome) {
	h.try(func() { h.inner.InvalidSequence(off, o) })
}
func (h *Hooks) ScalarRejected(v utf8codec.Scalar) { h.try(func() { h.inner.ScalarRejected(v) }) }
func (h *Hooks) PayloadRejected(size, limit int) {
	h.try(func() { h.inner.PayloadRejected(size, limit) })
}
