// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"math"
)

// sized returns the box with origin min and size sz.
func sized(min, sz image.Point) image.Rectangle {
	return image.Rectangle{Min: min, Max: min.Add(sz)}
}

// atX moves r horizontally so its left edge is at x.
func atX(r image.Rectangle, x int) image.Rectangle {
	w := r.Dx()
	r.Min.X = x
	r.Max.X = x + w
	return r
}

// boxWidth returns the width of b, or 0 for a missing box.
func boxWidth(b *image.Rectangle) int {
	if b == nil {
		return 0
	}
	return b.Dx()
}

// intrinsic returns the box a drawable occupies before scaling.
func intrinsic(d Drawable) image.Rectangle {
	sz := d.Size()
	if sz.X < 0 {
		sz.X = 0
	}
	if sz.Y < 0 {
		sz.Y = 0
	}
	return image.Rectangle{Max: sz}
}

// round rounds half up. Sizes are never negative.
func round(v float64) int {
	return int(math.Floor(v + .5))
}
