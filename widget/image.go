// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
)

// Image is a Drawable backed by a decoded raster image. Its intrinsic
// size is the size of the image bounds.
type Image struct {
	// Src is the image to display.
	Src image.Image
}

// DecodeImage decodes a PNG or JPEG image.
func DecodeImage(r io.Reader) (Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return Image{}, fmt.Errorf("widget: decode image: %w", err)
	}
	return Image{Src: img}, nil
}

func (im Image) Size() image.Point {
	if im.Src == nil {
		return image.Point{}
	}
	return im.Src.Bounds().Size()
}

// Image returns the source image. Scaling to sz is left to the
// drawing pass.
func (im Image) Image(sz image.Point) image.Image {
	return im.Src
}
