// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"gioui.org/icontext/layout"
	"gioui.org/icontext/text"
)

// Label is a single line Surface measured with a text.Shaper.
type Label struct {
	Text string
	// Transform, if set, rewrites Text before measuring.
	Transform text.Transformation
	Shaper    *text.Shaper
	// Width is the measured width of the widget.
	Width int
	// Inset is the padding around the text and icons.
	Inset layout.Inset
	// Spacing is the space between an icon and the text.
	Spacing int
}

func (l *Label) MeasuredWidth() int {
	return l.Width
}

func (l *Label) TextWidth(maxWidth int) int {
	return l.Shaper.Width(l.Transform.Apply(l.Text), maxWidth)
}

func (l *Label) Padding() layout.Inset {
	return l.Inset
}

func (l *Label) IconPadding() int {
	return l.Spacing
}

// WrapWidth returns the smallest width that fits the padding, the
// leading and trailing icons of it and the whole text.
func (l *Label) WrapWidth(it *IconText) int {
	w := l.Inset.Leading + l.Inset.Trailing + l.Shaper.Measure(l.Transform.Apply(l.Text))
	for _, s := range [...]layout.Slot{layout.Leading, layout.Trailing} {
		if it.Icon(s) != nil {
			w += it.Bounds(s).Dx() + l.Spacing
		}
	}
	return w
}
