// Copyright (c) 2021, The color-conv Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorconv

import "fmt"

// An OutOfRangeError reports a channel value outside the range
// documented for its color model. The lower bound is always 0, as all
// channel inputs are unsigned.
type OutOfRangeError struct {
	Field string // channel name, such as "cyan" or "saturation"
	Value int    // the offending value
	Max   int    // inclusive upper bound of the valid range
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("colorconv: %s value %d out of range [0, %d]", e.Field, e.Value, e.Max)
}

// An InvalidFormatError reports a string that is not a valid
// hexadecimal color code.
type InvalidFormatError struct {
	Input string // the rejected string, as given
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("colorconv: invalid hex color %q: need 6 hexadecimal digits with an optional leading '#'", e.Input)
}
