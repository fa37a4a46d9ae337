// Copyright (c) 2021, The color-conv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorconv

import (
	"fmt"

	"github.com/chewxy/math32"
)

// RGB is a color in the RGB (red, green, blue) color model, with each
// channel stored as an 8-bit value in [0, 255]. It is the hub format:
// every other format converts to and from RGB directly.
type RGB struct {
	R, G, B uint8
}

// NewRGB returns a new RGB color with the given red, green, and blue
// channels. The uint8 channel type already restricts every channel to
// [0, 255], so unlike [NewCMYK] and [NewHSL] there is nothing to
// validate and no error to return.
func NewRGB(r, g, b uint8) RGB {
	return RGB{r, g, b}
}

// RGBA implements [color.Color]. RGB colors are fully opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = 0xffff
	return
}

// ToRGB returns the color unchanged, implementing [Color].
func (c RGB) ToRGB() RGB {
	return c
}

// ToCMYK converts the color to [CMYK]. Black (all channels zero) maps
// to cmyk(0%, 0%, 0%, 100%), avoiding the division by zero in the
// general formula.
func (c RGB) ToCMYK() CMYK {
	r := float32(c.R) / 255
	g := float32(c.G) / 255
	b := float32(c.B) / 255

	k := 1 - math32.Max(r, math32.Max(g, b))
	if k == 1 {
		return CMYK{0, 0, 0, 100}
	}

	apply := func(v float32) uint8 {
		return roundPct((1 - v - k) / (1 - k))
	}
	return CMYK{apply(r), apply(g), apply(b), roundPct(k)}
}

// ToHSL converts the color to [HSL]. Achromatic colors (grays, black,
// and white) have zero hue and saturation.
func (c RGB) ToHSL() HSL {
	r := float32(c.R) / 255
	g := float32(c.G) / 255
	b := float32(c.B) / 255

	max := math32.Max(r, math32.Max(g, b))
	min := math32.Min(r, math32.Min(g, b))
	l := (max + min) / 2
	d := max - min

	if d == 0 {
		return HSL{0, 0, roundPct(l)}
	}

	var h float32
	switch max {
	case r:
		h = 60 * math32.Mod((g-b)/d, 6)
	case g:
		h = 60 * ((b-r)/d + 2)
	default:
		h = 60 * ((r-g)/d + 4)
	}
	if h < 0 {
		h += 360
	}

	s := d / (1 - math32.Abs(2*l-1))
	return HSL{uint16(math32.Round(h)) % 360, roundPct(s), roundPct(l)}
}

// ToHex converts the color to its [Hex] code: two uppercase
// hexadecimal digits per channel, no prefix.
func (c RGB) ToHex() Hex {
	return Hex(fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B))
}

// String returns the color as a CSS-style string, such as
// "rgb(0, 255, 255)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}
