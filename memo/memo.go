// Package memo caches lossy decode results keyed by buffer content.
//
// Repeated payloads (config blobs, templates, fixed protocol frames) are
// decoded once and served from a provider.Provider afterwards.
//
// Keys live under "utf8:<ns>:" followed by a content hash. Entries that fail
// to unframe, fail to decode, or hold values that no decode of the buffer
// could produce are deleted and recomputed.
package memo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/unkn0wn-root/utf8codec"
	"github.com/unkn0wn-root/utf8codec/codec"
	"github.com/unkn0wn-root/utf8codec/internal/util"
	"github.com/unkn0wn-root/utf8codec/internal/wire"
	pr "github.com/unkn0wn-root/utf8codec/provider"
)

const (
	defaultTTL     = 10 * time.Minute
	defaultMinSize = 256
)

// SetCostFunc returns the cost passed to Provider.Set for an entry.
type SetCostFunc func(key string, raw []byte) int64

var errBadScalars = errors.New("memo: entry does not match buffer")

// Options configures a Decoder. Namespace and Provider are required; every
// other field has a default.
type Options struct {
	Namespace string      // required; isolates keyspaces
	Provider  pr.Provider // required

	// Codec serializes decoded scalars into the entry payload.
	// Default: deterministic CBOR.
	Codec codec.Codec[[]utf8codec.Scalar]

	Logger         utf8codec.Logger // default NopLogger
	TTL            time.Duration    // default 10m
	MinSize        int              // default 256; shorter buffers bypass the cache
	ComputeSetCost SetCostFunc      // default len(raw)
	Disabled       bool
}

// Decoder answers decode calls from a provider-backed cache.
// Safe for concurrent use when its Provider and Logger are.
type Decoder struct {
	prefix         string
	provider       pr.Provider
	codec          codec.Codec[[]utf8codec.Scalar]
	log            utf8codec.Logger
	ttl            time.Duration
	minSize        int
	computeSetCost SetCostFunc
	enabled        bool
}

func New(opts Options) (*Decoder, error) {
	if opts.Provider == nil {
		return nil, fmt.Errorf("memo: provider is required")
	}
	if opts.Namespace == "" {
		return nil, fmt.Errorf("memo: namespace is required")
	}
	if opts.MinSize < 0 {
		return nil, fmt.Errorf("memo: MinSize must be >= 0, got %d", opts.MinSize)
	}

	d := &Decoder{
		prefix:   "utf8:" + opts.Namespace,
		provider: opts.Provider,
		enabled:  !opts.Disabled,
	}

	d.log = util.Coalesce[utf8codec.Logger](opts.Logger, utf8codec.NopLogger{})
	d.ttl = util.Coalesce(opts.TTL, defaultTTL)
	d.minSize = util.Coalesce(opts.MinSize, defaultMinSize)

	if opts.Codec != nil {
		d.codec = opts.Codec
	} else {
		c, err := codec.NewCBOR[[]utf8codec.Scalar](true)
		if err != nil {
			return nil, err
		}
		d.codec = c
	}

	if opts.ComputeSetCost != nil {
		d.computeSetCost = opts.ComputeSetCost
	} else {
		d.computeSetCost = func(_ string, raw []byte) int64 { return int64(len(raw)) }
	}

	return d, nil
}

func (d *Decoder) Enabled() bool { return d.enabled }

// Key returns the provider key an entry for b is stored under.
func (d *Decoder) Key(b []byte) string {
	return util.ContentKey(d.prefix, b)
}

// DecodeLossy is utf8codec.DecodeLossy with caching. The returned slice is
// owned by the caller.
func (d *Decoder) DecodeLossy(ctx context.Context, b []byte) ([]utf8codec.Scalar, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !d.enabled || len(b) < d.minSize {
		return utf8codec.DecodeLossy(b), nil
	}

	k := d.Key(b)
	if scalars, ok := d.get(ctx, k, len(b)); ok {
		return scalars, nil
	}

	scalars := utf8codec.DecodeLossy(b)
	d.set(ctx, k, scalars)
	return scalars, nil
}

// IsValid reports whether b is well-formed UTF-8. It scans b directly and
// never touches the provider.
func (d *Decoder) IsValid(ctx context.Context, b []byte) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return utf8codec.IsValid(b), nil
}

// Invalidate drops the entry for b (best-effort).
func (d *Decoder) Invalidate(ctx context.Context, b []byte) error {
	if !d.enabled {
		return nil
	}
	return d.provider.Del(ctx, d.Key(b))
}

func (d *Decoder) Close(ctx context.Context) error {
	return d.provider.Close(ctx)
}

func (d *Decoder) get(ctx context.Context, k string, size int) ([]utf8codec.Scalar, bool) {
	raw, ok, err := d.provider.Get(ctx, k)
	if err != nil {
		// provider down; decode directly
		d.log.Warn("memo get failed", utf8codec.Fields{"key": k, "err": err})
		return nil, false
	}
	if !ok {
		return nil, false
	}
	payload, err := wire.DecodeEntry(raw)
	if err != nil {
		d.heal(ctx, k, err)
		return nil, false
	}
	scalars, err := d.codec.Decode(payload)
	if err != nil {
		d.heal(ctx, k, err)
		return nil, false
	}
	if !plausible(scalars, size) {
		d.heal(ctx, k, errBadScalars)
		return nil, false
	}
	if scalars == nil {
		scalars = []utf8codec.Scalar{}
	}
	return scalars, true
}

// plausible reports whether scalars could be DecodeLossy of a size-byte
// buffer: every value is a scalar value and each used 1..4 bytes.
func plausible(scalars []utf8codec.Scalar, size int) bool {
	if len(scalars) > size || len(scalars)*utf8codec.MaxLen < size {
		return false
	}
	for _, s := range scalars {
		if !s.Valid() {
			return false
		}
	}
	return true
}

func (d *Decoder) set(ctx context.Context, k string, scalars []utf8codec.Scalar) {
	payload, err := d.codec.Encode(scalars)
	if err != nil {
		d.log.Error("memo encode failed", utf8codec.Fields{"key": k, "err": err})
		return
	}
	raw := wire.EncodeEntry(payload)
	ok, err := d.provider.Set(ctx, k, raw, d.computeSetCost(k, raw), d.ttl)
	if err != nil {
		d.log.Warn("memo set failed", utf8codec.Fields{"key": k, "err": err})
		return
	}
	if !ok {
		d.log.Debug("memo set rejected by provider (pressure)", utf8codec.Fields{"key": k})
	}
}

func (d *Decoder) heal(ctx context.Context, k string, cause error) {
	d.log.Debug("memo dropped corrupt entry", utf8codec.Fields{"key": k, "err": cause})
	_ = d.provider.Del(ctx, k)
}
