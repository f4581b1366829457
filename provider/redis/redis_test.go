package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/unkn0wn-root/utf8codec"
	"github.com/unkn0wn-root/utf8codec/memo"
)

func TestNewRequiresClient(t *testing.T) {
	if _, err := New(Config{}); !errors.Is(err, ErrNilClient) {
		t.Fatalf("expected ErrNilClient, got %v", err)
	}
}

// An unreachable server surfaces as errors from the provider and memo
// falls back to decoding directly.
func TestUnreachableServerFallsBack(t *testing.T) {
	client := goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	p, err := New(Config{Client: client, CloseClient: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()
	if _, _, err := p.Get(ctx, "utf8:ns:k"); err == nil {
		t.Fatalf("expected transport error")
	}

	d, err := memo.New(memo.Options{Namespace: "ns", Provider: p, MinSize: 1})
	if err != nil {
		t.Fatalf("memo.New: %v", err)
	}
	got, err := d.DecodeLossy(ctx, []byte("A\x91"))
	if err != nil || len(got) != 2 || got[1] != utf8codec.ReplacementScalar {
		t.Fatalf("DecodeLossy = %v, %v", got, err)
	}
	if err := d.Close(ctx); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := p.Close(ctx); err != nil {
		t.Fatalf("second Close should be a no-op, got %v", err)
	}
}
