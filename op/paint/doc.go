// SPDX-License-Identifier: Unlicense OR MIT

/*
Package paint draws icon boxes computed by widget.IconText into a
raster image.

Boxes are relative to an origin per side, like compound drawables of
a platform text view: Origin places the origin and ImageOp.Draw scales
the icon pixels into the offset box.
*/
package paint
