// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/exp/shiny/iconvg"
)

// DefaultIconWidth is the intrinsic width of an Icon in pixels.
const DefaultIconWidth = 24

// iconCacheSize is the number of rasterized sizes kept per Icon.
const iconCacheSize = 8

// Icon is a Drawable vector icon in the IconVG format. Its intrinsic
// width is DefaultIconWidth and its height follows the aspect ratio
// of the icon's view box.
type Icon struct {
	Color color.RGBA
	src   []byte
	size  image.Point
	// Rasterized images by iconKey.
	cache *lru.Cache
}

type iconKey struct {
	size  image.Point
	color color.RGBA
}

// NewIcon returns a new Icon from IconVG data.
func NewIcon(data []byte) (*Icon, error) {
	m, err := iconvg.DecodeMetadata(data)
	if err != nil {
		return nil, fmt.Errorf("widget: icon: %w", err)
	}
	cache, err := lru.New(iconCacheSize)
	if err != nil {
		return nil, err
	}
	dx, dy := m.ViewBox.AspectRatio()
	h := DefaultIconWidth
	if dx > 0 {
		h = round(float64(DefaultIconWidth) * float64(dy) / float64(dx))
	}
	return &Icon{
		Color: color.RGBA{A: 0xff},
		src:   data,
		size:  image.Point{X: DefaultIconWidth, Y: h},
		cache: cache,
	}, nil
}

func (ic *Icon) Size() image.Point {
	return ic.size
}

// Image rasterizes the icon at size sz with the current Color.
// Recently used sizes are cached. Icon data that fails to decode
// rasterizes to a transparent image, which is not cached.
func (ic *Icon) Image(sz image.Point) image.Image {
	key := iconKey{size: sz, color: ic.Color}
	if img, ok := ic.cache.Get(key); ok {
		return img.(*image.RGBA)
	}
	img := image.NewRGBA(image.Rectangle{Max: sz})
	if sz.X > 0 && sz.Y > 0 {
		if err := ic.rasterize(img); err != nil {
			return image.NewRGBA(image.Rectangle{Max: sz})
		}
	}
	ic.cache.Add(key, img)
	return img
}

func (ic *Icon) rasterize(dst *image.RGBA) error {
	m, err := iconvg.DecodeMetadata(ic.src)
	if err != nil {
		return err
	}
	var ico iconvg.Rasterizer
	ico.SetDstImage(dst, dst.Bounds(), draw.Src)
	m.Palette[0] = ic.Color
	return iconvg.Decode(&ico, ic.src, &iconvg.DecodeOptions{
		Palette: &m.Palette,
	})
}
