// Copyright 2025 Strenc Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package encode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strenc-ml/strenc/encode"
	"github.com/strenc-ml/strenc/matrix"
	"github.com/strenc-ml/strenc/split"
)

// Smoke test of the public surface: the internal packages carry the
// detailed coverage.
func TestPublicAPI(t *testing.T) {
	enc, err := encode.NewEncoder(encode.NewDictionaryPolicy(), encode.WithColumnSize(2))
	require.NoError(t, err)

	out, err := enc.EncodeText([]string{"cat dog", "dog"}, split.NewWhitespace())
	require.NoError(t, err)

	want, err := matrix.FromRows([][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)
	assert.True(t, out.(*matrix.Dense).Equal(want))

	token, err := enc.Dictionary().TokenAt(0)
	require.NoError(t, err)
	assert.Equal(t, "cat", token)

	_, err = enc.Dictionary().TokenAt(99)
	assert.ErrorIs(t, err, encode.ErrIndexNotFound)
}
