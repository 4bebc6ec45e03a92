package encode

import "errors"

// Sentinel errors returned by the encoding engine. All returned errors wrap
// one of these, so callers can match with errors.Is.
var (
	// ErrIndexNotFound is returned by reverse lookups of an index that was
	// never assigned.
	ErrIndexNotFound = errors.New("encode: index not found")

	// ErrInvalidConfig is returned when encoder options cannot satisfy the
	// batch, e.g. a fixed column size smaller than the longest sequence.
	ErrInvalidConfig = errors.New("encode: invalid configuration")

	// ErrPolicyTraits is returned when a policy's traits are contradictory,
	// e.g. declaring both single-pass and multi-pass. This is a construction
	// time contract violation, not a runtime condition.
	ErrPolicyTraits = errors.New("encode: unsupported policy traits")
)
