package ristretto

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/unkn0wn-root/utf8codec"
	"github.com/unkn0wn-root/utf8codec/memo"
)

func newTestProvider(t *testing.T) *Provider {
	t.Helper()
	p, err := New(Config{NumCounters: 1e4, MaxCost: 1 << 20, BufferItems: 64, SyncWrites: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p
}

func TestInvalidConfig(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatalf("expected error for zero config")
	}
}

func TestSyncWritesVisible(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider(t)
	defer p.Close(ctx)

	if ok, err := p.Set(ctx, "k", []byte("v"), 1, time.Minute); !ok || err != nil {
		t.Fatalf("Set = %v, %v", ok, err)
	}
	got, ok, err := p.Get(ctx, "k")
	if !ok || err != nil || !bytes.Equal(got, []byte("v")) {
		t.Fatalf("Get = %q, %v, %v", got, ok, err)
	}
	_ = p.Del(ctx, "k")
	if _, ok, _ := p.Get(ctx, "k"); ok {
		t.Fatalf("expected miss after Del")
	}
}

func TestMemoOverRistretto(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider(t)
	d, err := memo.New(memo.Options{Namespace: "docs", Provider: p, MinSize: 1})
	if err != nil {
		t.Fatalf("memo.New: %v", err)
	}
	defer d.Close(ctx)

	in := []byte("\xE6\x97\xA5\xE6\x9C\xAC\xE8\xAA")
	want := []utf8codec.Scalar{0x65E5, 0x672C, utf8codec.ReplacementScalar}
	for i := 0; i < 2; i++ {
		got, err := d.DecodeLossy(ctx, in)
		if err != nil || len(got) != len(want) {
			t.Fatalf("pass %d: DecodeLossy = %v, %v", i, got, err)
		}
		for j := range want {
			if got[j] != want[j] {
				t.Fatalf("pass %d: DecodeLossy = %v want %v", i, got, want)
			}
		}
	}
	if _, ok, _ := p.Get(ctx, d.Key(in)); !ok {
		t.Fatalf("expected entry under %q", d.Key(in))
	}
}
