package encode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraits_Validate(t *testing.T) {
	tests := []struct {
		name    string
		traits  Traits
		wantErr bool
	}{
		{
			name:   "single pass",
			traits: Traits{SinglePass: true},
		},
		{
			name:   "multi pass",
			traits: Traits{MultiPass: true},
		},
		{
			name:    "both passes",
			traits:  Traits{SinglePass: true, MultiPass: true},
			wantErr: true,
		},
		{
			name:    "neither pass",
			traits:  Traits{},
			wantErr: true,
		},
		{
			name:    "negative base",
			traits:  Traits{SinglePass: true, IndexBase: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.traits.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrPolicyTraits)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestShippedPolicyTraits(t *testing.T) {
	tests := []struct {
		name   string
		policy Policy
		single bool
		ragged bool
	}{
		{name: "dictionary", policy: NewDictionaryPolicy(), single: true, ragged: true},
		{name: "one-hot", policy: NewOneHotPolicy()},
		{name: "bag-of-words", policy: NewBagOfWordsPolicy()},
		{name: "tf-idf", policy: NewTfIdfPolicy()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			traits := tt.policy.Traits()
			assert.NoError(t, traits.Validate())
			assert.Equal(t, tt.single, traits.SinglePass)
			assert.Equal(t, !tt.single, traits.MultiPass)
			assert.Equal(t, tt.ragged, traits.NoPadding)
			assert.Zero(t, traits.IndexBase)
		})
	}
}
