// Copyright (c) 2021, The color-conv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorconv

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHex(t *testing.T) {
	h, err := NewHex("#FFFFFF")
	require.NoError(t, err)
	assert.Equal(t, Hex("FFFFFF"), h)

	// input is case-insensitive and the prefix is optional; the
	// canonical form is uppercase without a prefix
	lower, err := NewHex("ffffff")
	require.NoError(t, err)
	assert.Equal(t, h, lower)

	h, err = NewHex("#1e323c")
	require.NoError(t, err)
	assert.Equal(t, Hex("1E323C"), h)
}

func TestNewHexInvalid(t *testing.T) {
	for _, s := range []string{"12345", "1234567", "GGHHII", "#GGHHII", "", "#", "##FFFFFF"} {
		_, err := NewHex(s)
		var inv *InvalidFormatError
		require.True(t, errors.As(err, &inv), "%q", s)
		assert.Equal(t, s, inv.Input)
	}
}

func TestHexToRGB(t *testing.T) {
	h, err := NewHex("#FFFFFF")
	require.NoError(t, err)
	assert.Equal(t, NewRGB(255, 255, 255), h.ToRGB())

	h, err = NewHex("6b4d3d")
	require.NoError(t, err)
	assert.Equal(t, RGB{107, 77, 61}, h.ToRGB())

	assert.Equal(t, RGB{0, 0, 0}, Hex("000000").ToRGB())
}

func TestHexUnchecked(t *testing.T) {
	// direct string conversion skips validation; invalid or missing
	// digits read as zero
	assert.NotPanics(t, func() {
		Hex("ZZZZZZ").ToRGB()
	})
	assert.Equal(t, RGB{0, 0, 0}, Hex("ZZZZZZ").ToRGB())
	assert.Equal(t, RGB{171, 0, 0}, Hex("AB").ToRGB())
	assert.Equal(t, RGB{}, Hex("").ToRGB())
}

func TestHexComposed(t *testing.T) {
	h, err := NewHex("#00FFFF")
	require.NoError(t, err)
	assert.Equal(t, CMYK{100, 0, 0, 0}, h.ToCMYK())
	assert.Equal(t, HSL{180, 100, 50}, h.ToHSL())
}

func TestHexIdentity(t *testing.T) {
	h := Hex("CC9966")
	assert.Equal(t, h, h.ToHex())
}

func TestHexString(t *testing.T) {
	assert.Equal(t, "#00FFFF", Hex("00FFFF").String())
}
