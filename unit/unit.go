// SPDX-License-Identifier: Unlicense OR MIT

/*

Package unit implements device independent units and values.

Device independent pixel, or dp, is the unit for distances independent of
the underlying display device. Touch slop and touchable areas are given
in dp so that a drag feels the same on every screen.

Pixels, or px, is the unit for display dependent pixels. Pointer
positions and slide offsets are always in pixels.

*/
package unit

import (
	"fmt"
)

// Metric converts Dp values to pixels.
type Metric struct {
	// PxPerDp is the device-dependent density for dp values.
	// A zero value is treated as 1.
	PxPerDp float32
}

// Dp represents device independent pixels. 1 dp will
// have the same apparent size across platforms and
// display resolutions.
type Dp float32

// DpF converts v to pixels without rounding.
func (c Metric) DpF(v Dp) float32 {
	return nonZero(c.PxPerDp) * float32(v)
}

func (v Dp) String() string {
	return fmt.Sprintf("%gdp", float32(v))
}

func nonZero(v float32) float32 {
	if v == 0. {
		return 1
	}
	return v
}
