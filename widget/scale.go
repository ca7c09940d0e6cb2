// SPDX-License-Identifier: Unlicense OR MIT

package widget

import "image"

// Unconstrained marks a Size dimension that keeps its current value.
const Unconstrained = -1

// Size is a target icon size in pixels. Each dimension is either
// a non-negative pixel count or Unconstrained.
type Size struct {
	Width, Height int
}

// Free is the Size that leaves icons at their intrinsic size.
var Free = Size{Width: Unconstrained, Height: Unconstrained}

func (s Size) valid() bool {
	return (s.Width >= 0 || s.Width == Unconstrained) &&
		(s.Height >= 0 || s.Height == Unconstrained)
}

// Scale resizes box to the target width and height, keeping box.Min.
// A negative target leaves that dimension to follow the aspect ratio
// of box.
//
// The width is resolved first and the height is then derived from
// the new width. If the height still differs from a constrained
// target height, the height is set and the width derived from it, so
// the height constraint wins when both constraints disagree with the
// aspect ratio.
//
// Boxes with a zero width or height have no aspect ratio and are
// returned unchanged, as is box when both targets are negative.
func Scale(box image.Rectangle, width, height int) image.Rectangle {
	if width < 0 && height < 0 {
		return box
	}
	sz := box.Size()
	if sz.X <= 0 || sz.Y <= 0 {
		return box
	}
	aspect := float64(sz.Y) / float64(sz.X)
	if width >= 0 && sz.X != width {
		sz.X = width
		sz.Y = round(float64(sz.X) * aspect)
	}
	if height >= 0 && sz.Y != height {
		sz.Y = height
		sz.X = round(float64(sz.Y) / aspect)
	}
	return sized(box.Min, sz)
}
