// Copyright (c) 2021, The color-conv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorconv

import (
	"image/color"

	"github.com/chewxy/math32"
)

// Color is implemented by every color format in this package. All
// conversions are total: once a value is constructed, they always
// succeed. Converting a value to its own format returns the value
// unchanged.
type Color interface {
	// ToRGB converts the color to [RGB].
	ToRGB() RGB

	// ToCMYK converts the color to [CMYK].
	ToCMYK() CMYK

	// ToHSL converts the color to [HSL].
	ToHSL() HSL

	// ToHex converts the color to its [Hex] code.
	ToHex() Hex
}

// FromColor returns the RGB representation of any standard
// [color.Color], discarding alpha.
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
}

// clampU8 rounds v to the nearest integer, half away from zero, and
// clamps the result to [0, 255]. Clamping keeps conversions on
// out-of-range unchecked values defined.
func clampU8(v float32) uint8 {
	v = math32.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// roundPct rounds a [0, 1] fraction to an integer percentage.
func roundPct(v float32) uint8 {
	return uint8(math32.Round(v * 100))
}
