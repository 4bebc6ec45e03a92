package encode

import "fmt"

// Traits is the static descriptor a policy declares about itself. The driver
// reads it once at construction to decide whether a dictionary pre-scan is
// needed and whether a ragged (no-padding) emission path exists — allocation
// strategy is fixed before any allocation occurs.
//
// Exactly one of SinglePass and MultiPass must be set.
type Traits struct {
	// SinglePass: encoding may proceed while the dictionary is still being
	// built; allocation does not depend on vocabulary size.
	SinglePass bool

	// MultiPass: a full pre-scan populating the dictionary (and any corpus
	// statistics) must complete before the output is allocated.
	MultiPass bool

	// NoPadding: the policy supports ragged emission without
	// length-normalizing padding (EncodeRagged). The dense path still
	// zero-pads short rows.
	NoPadding bool

	// IndexBase is the first index the policy's dictionary assigns.
	IndexBase int
}

// Validate reports whether the traits are internally consistent.
// Returns an error wrapping ErrPolicyTraits otherwise.
func (t Traits) Validate() error {
	if t.SinglePass == t.MultiPass {
		return fmt.Errorf("%w: SinglePass=%v MultiPass=%v, exactly one must be set",
			ErrPolicyTraits, t.SinglePass, t.MultiPass)
	}
	if t.IndexBase < 0 {
		return fmt.Errorf("%w: negative index base %d", ErrPolicyTraits, t.IndexBase)
	}
	return nil
}
