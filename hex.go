// Copyright (c) 2021, The color-conv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorconv

import "strings"

// Hex is a color encoded as a 6-hexadecimal-digit string, two digits
// per RGB channel. The canonical form produced by [NewHex] and the
// ToHex conversions is uppercase with no prefix, such as "00FFFF", so
// equal colors compare equal regardless of how their codes were
// spelled on input.
//
// Converting a string to Hex directly, without [NewHex], is the
// unchecked escape hatch: conversions on a malformed code read any
// invalid or missing digit as zero, and never panic.
type Hex string

// NewHex parses a hexadecimal color code. It strips one optional
// leading '#' and accepts digits in either case, canonicalizing to
// uppercase. It returns an [*InvalidFormatError] if the remainder is
// not exactly 6 hexadecimal digits.
func NewHex(s string) (Hex, error) {
	code := strings.TrimPrefix(s, "#")
	if len(code) != 6 {
		return "", &InvalidFormatError{Input: s}
	}
	for i := 0; i < len(code); i++ {
		if _, ok := hexNibble(code[i]); !ok {
			return "", &InvalidFormatError{Input: s}
		}
	}
	return Hex(strings.ToUpper(code)), nil
}

func hexNibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// RGBA implements [color.Color].
func (h Hex) RGBA() (r, g, b, a uint32) {
	return h.ToRGB().RGBA()
}

// ToRGB parses the code into an [RGB] color, two digits per channel in
// RRGGBB order. For codes from [NewHex] the conversion is exact and
// lossless. Invalid or missing digits read as zero.
func (h Hex) ToRGB() RGB {
	var d [6]uint8
	for i := 0; i < len(d) && i < len(h); i++ {
		d[i], _ = hexNibble(h[i])
	}
	return RGB{d[0]<<4 | d[1], d[2]<<4 | d[3], d[4]<<4 | d[5]}
}

// ToCMYK converts the color to [CMYK] by way of [RGB].
func (h Hex) ToCMYK() CMYK {
	return h.ToRGB().ToCMYK()
}

// ToHSL converts the color to [HSL] by way of [RGB].
func (h Hex) ToHSL() HSL {
	return h.ToRGB().ToHSL()
}

// ToHex returns the color unchanged, implementing [Color].
func (h Hex) ToHex() Hex {
	return h
}

// String returns the code prefixed with '#', such as "#00FFFF".
func (h Hex) String() string {
	return "#" + string(h)
}
