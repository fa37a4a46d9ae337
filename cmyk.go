// Copyright (c) 2021, The color-conv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorconv

import "fmt"

// CMYK is a color in the CMYK (cyan, magenta, yellow, key) subtractive
// color model used in printing, with each channel stored as an ink
// coverage percentage in [0, 100].
type CMYK struct {
	C, M, Y, K uint8
}

// NewCMYK returns a new CMYK color with the given cyan, magenta,
// yellow, and key channels. It returns an [*OutOfRangeError] if any
// channel is greater than 100, as the channels represent percentages.
// See [NewCMYKUnchecked] for a version that skips validation.
func NewCMYK(c, m, y, k uint8) (CMYK, error) {
	for _, ch := range []struct {
		field string
		value uint8
	}{{"cyan", c}, {"magenta", m}, {"yellow", y}, {"key", k}} {
		if ch.value > 100 {
			return CMYK{}, &OutOfRangeError{Field: ch.field, Value: int(ch.value), Max: 100}
		}
	}
	return CMYK{c, m, y, k}, nil
}

// NewCMYKUnchecked is like [NewCMYK] but performs no validation, for
// callers that have already validated their inputs. Conversions on an
// out-of-range value clamp the result; they never panic.
func NewCMYKUnchecked(c, m, y, k uint8) CMYK {
	return CMYK{c, m, y, k}
}

// RGBA implements [color.Color].
func (c CMYK) RGBA() (r, g, b, a uint32) {
	return c.ToRGB().RGBA()
}

// ToRGB converts the color to [RGB]. Each channel is rounded to the
// nearest integer and clamped to [0, 255], so values from
// [NewCMYKUnchecked] convert to a defined, in-range color.
func (c CMYK) ToRGB() RGB {
	k := 1 - float32(c.K)/100
	apply := func(v uint8) uint8 {
		return clampU8(255 * (1 - float32(v)/100) * k)
	}
	return RGB{apply(c.C), apply(c.M), apply(c.Y)}
}

// ToCMYK returns the color unchanged, implementing [Color].
func (c CMYK) ToCMYK() CMYK {
	return c
}

// ToHSL converts the color to [HSL] by way of [RGB].
func (c CMYK) ToHSL() HSL {
	return c.ToRGB().ToHSL()
}

// ToHex converts the color to its [Hex] code by way of [RGB].
func (c CMYK) ToHex() Hex {
	return c.ToRGB().ToHex()
}

// String returns the color as a CSS-style string, such as
// "cmyk(100%, 0%, 0%, 0%)".
func (c CMYK) String() string {
	return fmt.Sprintf("cmyk(%d%%, %d%%, %d%%, %d%%)", c.C, c.M, c.Y, c.K)
}
