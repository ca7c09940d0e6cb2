// SPDX-License-Identifier: Unlicense OR MIT

/*
Package unit implements device independent units for icon and padding
sizes.

Device independent pixel, or dp, is the unit for sizes independent of
the underlying display device.

Scaled pixels, or sp, is the unit for text sizes. An sp is like dp with
text scaling applied.

Icon sizes are configured in dp and resolved to whole device pixels
before they reach the layout code, which only deals in pixels.
*/
package unit

import (
	"fmt"
	"math"
)

// Metric converts Values to device-dependent pixels, px. The zero
// value represents a 1-to-1 scale from dp, sp to pixels.
type Metric struct {
	// PxPerDp is the device-dependent pixels per dp.
	PxPerDp float32
	// PxPerSp is the device-dependent pixels per sp.
	PxPerSp float32
}

type (
	// Dp represents device independent pixels. 1 dp will
	// have the same apparent size across platforms and
	// display resolutions.
	Dp float32
	// Sp is like UnitDp but for font sizes.
	Sp float32
)

// Dp converts v to pixels, rounded to the nearest integer value.
//
// A non-zero v never resolves to zero pixels, so a configured size
// stays visible on low density displays.
func (c Metric) Dp(v Dp) int {
	return toPx(float32(v), nonZero(c.PxPerDp))
}

// Sp converts v to pixels, rounded to the nearest integer value.
func (c Metric) Sp(v Sp) int {
	return toPx(float32(v), nonZero(c.PxPerSp))
}

func (v Dp) String() string {
	return fmt.Sprintf("%gdp", float32(v))
}

func (v Sp) String() string {
	return fmt.Sprintf("%gsp", float32(v))
}

func toPx(v, scale float32) int {
	px := float64(v * scale)
	r := int(math.Round(px))
	switch {
	case r == 0 && px > 0:
		return 1
	case r == 0 && px < 0:
		return -1
	}
	return r
}

func nonZero(v float32) float32 {
	if v == 0. {
		return 1
	}
	return v
}
