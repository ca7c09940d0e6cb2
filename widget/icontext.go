// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"errors"
	"fmt"
	"image"

	"gioui.org/icontext/layout"
)

// ErrInvalidSize is returned when an icon size has a negative
// dimension.
var ErrInvalidSize = errors.New("invalid icon size")

// Drawable is an icon image with a known intrinsic size in pixels.
type Drawable interface {
	Size() image.Point
}

// Surface is the measured text block an IconText decorates.
type Surface interface {
	// MeasuredWidth returns the width of the whole widget, including
	// padding and icons.
	MeasuredWidth() int
	// TextWidth returns the width of the text laid out in at most
	// maxWidth pixels. The result must not exceed maxWidth.
	TextWidth(maxWidth int) int
	// Padding returns the padding around the text and icons.
	Padding() layout.Inset
	// IconPadding returns the space between an icon and the text.
	IconPadding() int
}

// IconText holds the icons around a text block and their bounding
// boxes. Boxes are relative to the origin the host draws each icon
// at.
//
// The zero value has no icons and leaves icons at their intrinsic
// size.
type IconText struct {
	// Alignment is the horizontal text alignment of the host.
	// Icons are only repositioned for Middle.
	Alignment layout.Alignment
	// Direction is the writing direction of the host. Centering
	// moves the icon drawn on the left and the one drawn on the
	// right, whichever slots those are.
	Direction layout.TextDirection
	// Invalidate, if set, is called when a new layout pass is
	// needed.
	Invalidate func()

	size      Size
	sized     bool
	icons     [len(layout.Slots)]icon
	centering Centering
	// centered is the direction of the last centering pass.
	centered layout.TextDirection
}

type icon struct {
	src    Drawable
	bounds image.Rectangle
}

// SetIconSize sets the size every icon is scaled to. Both dimensions
// must be non-negative.
func (it *IconText) SetIconSize(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("widget: width %d, height %d: %w", width, height, ErrInvalidSize)
	}
	return it.SetIconConstraint(Size{Width: width, Height: height})
}

// SetIconSquare is like SetIconSize with equal width and height.
func (it *IconText) SetIconSquare(size int) error {
	return it.SetIconSize(size, size)
}

// SetIconConstraint is like SetIconSize but accepts Unconstrained
// dimensions, which follow the icon's aspect ratio.
func (it *IconText) SetIconConstraint(sz Size) error {
	if !sz.valid() {
		return fmt.Errorf("widget: width %d, height %d: %w", sz.Width, sz.Height, ErrInvalidSize)
	}
	if it.IconSize() == sz {
		return nil
	}
	it.size = sz
	it.sized = true
	for _, s := range layout.Slots {
		it.scale(s)
	}
	it.resetCentering()
	it.invalidate()
	return nil
}

// IconSize returns the size icons are scaled to.
func (it *IconText) IconSize() Size {
	if !it.sized {
		return Free
	}
	return it.size
}

// SetIcon replaces the icon in slot s and scales it. A nil Drawable
// clears the slot.
func (it *IconText) SetIcon(s layout.Slot, d Drawable) {
	it.icons[s] = icon{src: d}
	it.scale(s)
	it.resetCentering()
	it.invalidate()
}

// SetIcons replaces all four icons.
func (it *IconText) SetIcons(leading, top, trailing, bottom Drawable) {
	for s, d := range [...]Drawable{leading, top, trailing, bottom} {
		it.icons[s] = icon{src: d}
		it.scale(layout.Slot(s))
	}
	it.resetCentering()
	it.invalidate()
}

// Icon returns the icon in slot s, or nil.
func (it *IconText) Icon(s layout.Slot) Drawable {
	return it.icons[s].src
}

// Bounds returns the bounding box of the icon in slot s. Empty slots
// have an empty box.
func (it *IconText) Bounds(s layout.Slot) image.Rectangle {
	return it.icons[s].bounds
}

// At returns the icon and its bounding box drawn at the physical side
// for the writing direction dir.
func (it *IconText) At(side layout.Side, dir layout.TextDirection) (Drawable, image.Rectangle) {
	s := layout.Resolve(side, dir)
	return it.icons[s].src, it.icons[s].bounds
}

// Measured runs the centering pass for the result of a measurement
// pass. It does nothing unless Alignment is Middle, and reports
// whether any icon box moved.
func (it *IconText) Measured(ctx LayoutContext) bool {
	if it.Alignment != layout.Middle {
		return false
	}
	dir := it.Direction
	if dir != it.centered {
		it.resetCentering()
		it.centered = dir
	}
	left := it.box(layout.Resolve(layout.Left, dir))
	right := it.box(layout.Resolve(layout.Right, dir))
	return it.centering.Apply(ctx, left, right)
}

// Layout measures s, runs Measured and returns the measurement.
func (it *IconText) Layout(s Surface) LayoutContext {
	pad := s.Padding()
	spacing := s.IconPadding()
	ctx := LayoutContext{
		AvailableWidth:    s.MeasuredWidth(),
		LeadingIconWidth:  boxWidth(it.box(layout.Leading)),
		TrailingIconWidth: boxWidth(it.box(layout.Trailing)),
		IconTextSpacing:   spacing,
		LeadingPadding:    pad.Leading,
		TrailingPadding:   pad.Trailing,
	}
	avail := ctx.AvailableWidth - pad.Leading - pad.Trailing
	if it.icons[layout.Leading].src != nil {
		avail -= ctx.LeadingIconWidth + spacing
	}
	if it.icons[layout.Trailing].src != nil {
		avail -= ctx.TrailingIconWidth + spacing
	}
	if avail < 0 {
		avail = 0
	}
	ctx.TextWidth = s.TextWidth(avail)
	if ctx.TextWidth > avail {
		ctx.TextWidth = avail
	}
	it.Measured(ctx)
	return ctx
}

// box returns the box of slot s, or nil if the slot is empty.
func (it *IconText) box(s layout.Slot) *image.Rectangle {
	ic := &it.icons[s]
	if ic.src == nil {
		return nil
	}
	return &ic.bounds
}

// scale recomputes the box of slot s from its intrinsic size.
func (it *IconText) scale(s layout.Slot) {
	ic := &it.icons[s]
	if ic.src == nil {
		ic.bounds = image.Rectangle{}
		return
	}
	sz := it.IconSize()
	ic.bounds = Scale(intrinsic(ic.src), sz.Width, sz.Height)
}

// resetCentering moves the leading and trailing boxes back to x = 0
// to match a reset Centering.
func (it *IconText) resetCentering() {
	for _, s := range [...]layout.Slot{layout.Leading, layout.Trailing} {
		if b := it.box(s); b != nil {
			*b = atX(*b, 0)
		}
	}
	it.centering.Reset()
}

func (it *IconText) invalidate() {
	if it.Invalidate != nil {
		it.Invalidate()
	}
}
