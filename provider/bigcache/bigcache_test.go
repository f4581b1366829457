package bigcache

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func newTestProvider(t *testing.T) *Provider {
	t.Helper()
	p, err := New(Config{LifeWindow: time.Minute, MaxEntriesInWindow: 16, MaxEntrySize: 64})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = p.Close(context.Background()) })
	return p
}

func TestGetSetDel(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider(t)

	if _, ok, err := p.Get(ctx, "utf8:ns:a"); ok || err != nil {
		t.Fatalf("miss = %v, %v", ok, err)
	}
	val := []byte("UTF8\x01\x01\x00\x00\x00\x00")
	if ok, err := p.Set(ctx, "utf8:ns:a", val, 1, time.Minute); !ok || err != nil {
		t.Fatalf("Set = %v, %v", ok, err)
	}
	got, ok, err := p.Get(ctx, "utf8:ns:a")
	if !ok || err != nil || !bytes.Equal(got, val) {
		t.Fatalf("Get = %x, %v, %v", got, ok, err)
	}
	if err := p.Del(ctx, "utf8:ns:a"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	if err := p.Del(ctx, "utf8:ns:a"); err != nil {
		t.Fatalf("Del of missing key should be nil, got %v", err)
	}
	if _, ok, _ := p.Get(ctx, "utf8:ns:a"); ok {
		t.Fatalf("expected miss after Del")
	}
}
