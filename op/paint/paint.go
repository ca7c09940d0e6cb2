// SPDX-License-Identifier: Unlicense OR MIT

package paint

import (
	"image"

	"golang.org/x/image/draw"

	"gioui.org/icontext/layout"
)

// Source is implemented by drawables that can produce their pixels
// at a requested size. widget.Image and widget.Icon are Sources.
type Source interface {
	Image(sz image.Point) image.Image
}

// ImageOp draws a Source into its bounding box.
type ImageOp struct {
	Src Source
	// Box is relative to the origin of the side the icon is drawn at.
	Box image.Rectangle
}

// Draw draws the source scaled to the box, with the box offset by
// origin. Empty boxes draw nothing.
func (op ImageOp) Draw(dst draw.Image, origin image.Point) {
	if op.Src == nil || op.Box.Empty() {
		return
	}
	r := op.Box.Add(origin)
	src := op.Src.Image(op.Box.Size())
	sr := src.Bounds()
	if sr.Size() == r.Size() {
		draw.Draw(dst, r, src, sr.Min, draw.Over)
		return
	}
	draw.CatmullRom.Scale(dst, r, src, sr, draw.Over, nil)
}

// Origin returns the point an icon box of size sz is drawn relative
// to, on side s of a canvas with logical padding in and writing
// direction dir. Left and right icons are centered vertically, top
// and bottom icons horizontally, within the padded area.
func Origin(s layout.Side, canvas image.Point, in layout.Inset, dir layout.TextDirection, sz image.Point) image.Point {
	left, right := in.Leading, in.Trailing
	if dir == layout.RTL {
		left, right = right, left
	}
	midX := left + (canvas.X-left-right-sz.X)/2
	midY := in.Top + (canvas.Y-in.Top-in.Bottom-sz.Y)/2
	switch s {
	case layout.Left:
		return image.Pt(left, midY)
	case layout.Right:
		return image.Pt(canvas.X-right-sz.X, midY)
	case layout.Above:
		return image.Pt(midX, in.Top)
	case layout.Below:
		return image.Pt(midX, canvas.Y-in.Bottom-sz.Y)
	default:
		panic("unreachable")
	}
}
