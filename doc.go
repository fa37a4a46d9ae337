// Copyright (c) 2021, The color-conv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorconv converts color values between the RGB, CMYK, HSL,
// and hexadecimal color formats.
//
// The four value types [RGB], [CMYK], [HSL], and [Hex] each implement
// the [Color] interface, which provides a conversion to every other
// format. RGB is the hub representation: conversions between two
// non-RGB formats always compose through RGB rather than using a
// direct formula, which keeps round trips consistent.
//
// Constructors validate their inputs and return an [*OutOfRangeError]
// or [*InvalidFormatError] on bad values. The Unchecked constructor
// variants skip validation for callers that have already validated
// their inputs; conversions on out-of-range unchecked values clamp
// the result instead of failing, and never panic.
//
// All conversion math is done in float32, rounding half away from
// zero. Once a value is constructed, every conversion is total.
//
//	cyan := colorconv.NewCMYKUnchecked(100, 0, 0, 0)
//	rgb := cyan.ToRGB() // colorconv.RGB{R: 0, G: 255, B: 255}
package colorconv
