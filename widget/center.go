// SPDX-License-Identifier: Unlicense OR MIT

package widget

import "image"

// LayoutContext is the result of a host measurement pass, in pixels.
type LayoutContext struct {
	// AvailableWidth is the measured width of the whole widget.
	AvailableWidth int
	// TextWidth is the width of the text, at most the width the text
	// was laid out in.
	TextWidth int
	// LeadingIconWidth and TrailingIconWidth are the widths of the
	// scaled leading and trailing icons, zero when absent.
	LeadingIconWidth, TrailingIconWidth int
	// IconTextSpacing is the space between an icon and the text.
	IconTextSpacing int
	// LeadingPadding and TrailingPadding are the horizontal paddings
	// of the widget.
	LeadingPadding, TrailingPadding int
}

// Offset returns the horizontal shift that centers the leading icon,
// the text and the trailing icon as one block.
func (c LayoutContext) Offset() int {
	return (c.AvailableWidth -
		c.TextWidth -
		c.TrailingPadding -
		c.LeadingIconWidth -
		c.TrailingIconWidth -
		c.IconTextSpacing -
		c.LeadingPadding) / 2
}

// Centering positions the left and right icon boxes of centered
// text. It remembers the last applied offset and leaves the boxes
// alone while the offset is unchanged.
//
// The zero value is ready to use and assumes boxes at x = 0.
type Centering struct {
	offset int
}

// Apply computes the offset for ctx and, if it differs from the last
// applied one, moves the left box to start at the offset and the
// right box to start at the negated offset. Nil boxes are
// skipped. Apply reports whether the boxes were moved.
func (c *Centering) Apply(ctx LayoutContext, left, right *image.Rectangle) bool {
	off := ctx.Offset()
	if off == c.offset {
		return false
	}
	c.offset = off
	if left != nil {
		*left = atX(*left, off)
	}
	if right != nil {
		*right = atX(*right, -off)
	}
	return true
}

// Offset returns the last applied offset.
func (c *Centering) Offset() int {
	return c.offset
}

// Reset forgets the last applied offset. It must be called when the
// boxes are moved back to x = 0 by other means.
func (c *Centering) Reset() {
	c.offset = 0
}
