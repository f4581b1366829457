package utf8codec

// Hooks lightweight callbacks for high-signal codec events.
// Implementations MUST be cheap and non-blocking.
// The codec calls them on hot paths.
type Hooks interface {
	// An invalid span was found while decoding.
	// offset is the position of the span in the input; o.Size its length.
	InvalidSequence(offset int64, o Outcome)

	// A surrogate half or a value above U+10FFFF was passed to an encoder.
	ScalarRejected(value Scalar)

	// Input longer than Options.MaxDecode was refused.
	PayloadRejected(size, limit int)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) InvalidSequence(int64, Outcome) {}
func (NopHooks) ScalarRejected(Scalar)          {}
func (NopHooks) PayloadRejected(int, int)       {}
