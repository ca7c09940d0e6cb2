// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"

	"golang.org/x/image/draw"

	"gioui.org/icontext/layout"
	"gioui.org/icontext/op/paint"
	"gioui.org/icontext/widget"
)

// render draws the text and icons of it into a PNG file at path.
func render(path string, it *widget.IconText, l *widget.Label, ctx widget.LayoutContext, dir layout.TextDirection) error {
	img := draw.Image(image.NewRGBA(image.Rectangle{Max: canvasSize(it, l)}))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	canvas := img.Bounds().Size()

	for _, side := range [...]layout.Side{layout.Left, layout.Above, layout.Right, layout.Below} {
		d, box := it.At(side, dir)
		if d == nil {
			continue
		}
		src, ok := d.(paint.Source)
		if !ok {
			log.Printf("%v icon %T has no pixels", side, d)
			continue
		}
		origin := paint.Origin(side, canvas, l.Inset, dir, box.Size())
		paint.ImageOp{Src: src, Box: box}.Draw(img, origin)
	}

	lh := l.Shaper.LineHeight()
	str := l.Transform.Apply(l.Text)
	l.Shaper.Draw(img, textOrigin(it, l, ctx, dir, canvas, lh), str, color.Black)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// canvasSize returns the size of a widget with the measured width of
// l, tall enough for the text, the side icons and the top and bottom
// icons.
func canvasSize(it *widget.IconText, l *widget.Label) image.Point {
	h := l.Shaper.LineHeight()
	for _, s := range [...]layout.Slot{layout.Leading, layout.Trailing} {
		if b := it.Bounds(s); b.Dy() > h {
			h = b.Dy()
		}
	}
	for _, s := range [...]layout.Slot{layout.Top, layout.Bottom} {
		if it.Icon(s) != nil {
			h += it.Bounds(s).Dy() + l.Spacing
		}
	}
	return image.Pt(l.Width, l.Inset.Top+h+l.Inset.Bottom)
}

// textOrigin returns the top left corner of the text line, aligned
// within the space left between the padding and side icons.
func textOrigin(it *widget.IconText, l *widget.Label, ctx widget.LayoutContext, dir layout.TextDirection, canvas image.Point, lh int) image.Point {
	start, end := l.Inset.Leading, l.Inset.Trailing
	if it.Icon(layout.Leading) != nil {
		start += ctx.LeadingIconWidth + l.Spacing
	}
	if it.Icon(layout.Trailing) != nil {
		end += ctx.TrailingIconWidth + l.Spacing
	}
	avail := canvas.X - start - end
	var x int
	switch it.Alignment {
	case layout.Start:
	case layout.Middle:
		x = (avail - ctx.TextWidth) / 2
	case layout.End:
		x = avail - ctx.TextWidth
	}
	if dir == layout.RTL {
		x = canvas.X - start - x - ctx.TextWidth
	} else {
		x += start
	}

	top, bottom := l.Inset.Top, l.Inset.Bottom
	if it.Icon(layout.Top) != nil {
		top += it.Bounds(layout.Top).Dy() + l.Spacing
	}
	if it.Icon(layout.Bottom) != nil {
		bottom += it.Bounds(layout.Bottom).Dy() + l.Spacing
	}
	y := top + (canvas.Y-top-bottom-lh)/2
	return image.Pt(x, y)
}
