// Copyright (c) 2021, The color-conv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorconv

import (
	"fmt"

	"github.com/chewxy/math32"
)

// HSL is a color in the HSL (hue, saturation, lightness) cylindrical
// color model. Hue is in degrees in [0, 360); saturation and lightness
// are percentages in [0, 100].
type HSL struct {
	H    uint16
	S, L uint8
}

// NewHSL returns a new HSL color with the given hue, saturation, and
// lightness. Hue is cyclic, so it is wrapped modulo 360 rather than
// rejected: a hue of 370 is the same color as a hue of 10. It returns
// an [*OutOfRangeError] if saturation or lightness is greater than
// 100, as they represent percentages. See [NewHSLUnchecked] for a
// version that skips validation.
func NewHSL(h uint16, s, l uint8) (HSL, error) {
	if s > 100 {
		return HSL{}, &OutOfRangeError{Field: "saturation", Value: int(s), Max: 100}
	}
	if l > 100 {
		return HSL{}, &OutOfRangeError{Field: "lightness", Value: int(l), Max: 100}
	}
	return HSL{h % 360, s, l}, nil
}

// NewHSLUnchecked is like [NewHSL] but performs no validation or hue
// wrapping, for callers that have already validated their inputs.
// Conversions on an out-of-range value clamp the result; they never
// panic.
func NewHSLUnchecked(h uint16, s, l uint8) HSL {
	return HSL{h, s, l}
}

// RGBA implements [color.Color].
func (c HSL) RGBA() (r, g, b, a uint32) {
	return c.ToRGB().RGBA()
}

// ToRGB converts the color to [RGB] using the standard chroma-based
// algorithm with six 60° hue sectors. Each channel is rounded to the
// nearest integer and clamped to [0, 255], so values from
// [NewHSLUnchecked] convert to a defined, in-range color.
func (c HSL) ToRGB() RGB {
	h := math32.Mod(float32(c.H), 360)
	s := float32(c.S) / 100
	l := float32(c.L) / 100

	ch := (1 - math32.Abs(2*l-1)) * s
	x := ch * (1 - math32.Abs(math32.Mod(h/60, 2)-1))
	m := l - ch/2

	var r, g, b float32
	switch {
	case h < 60:
		r, g = ch, x
	case h < 120:
		r, g = x, ch
	case h < 180:
		g, b = ch, x
	case h < 240:
		g, b = x, ch
	case h < 300:
		r, b = x, ch
	default:
		r, b = ch, x
	}

	return RGB{clampU8((r + m) * 255), clampU8((g + m) * 255), clampU8((b + m) * 255)}
}

// ToCMYK converts the color to [CMYK] by way of [RGB].
func (c HSL) ToCMYK() CMYK {
	return c.ToRGB().ToCMYK()
}

// ToHSL returns the color unchanged, implementing [Color].
func (c HSL) ToHSL() HSL {
	return c
}

// ToHex converts the color to its [Hex] code by way of [RGB].
func (c HSL) ToHex() Hex {
	return c.ToRGB().ToHex()
}

// String returns the color as a CSS-style string, such as
// "hsl(180°, 100%, 50%)".
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d°, %d%%, %d%%)", c.H, c.S, c.L)
}
