// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"gioui.org/icontext/unit"
)

// widthCacheSize is the number of measured strings kept by a Shaper.
const widthCacheSize = 256

// Shaper measures and draws single lines of text in one font face
// and size.
//
// A Shaper is not safe for concurrent use, because font.Face is not.
type Shaper struct {
	face   font.Face
	widths *lru.Cache
}

// NewShaper returns a Shaper for the OpenType or TrueType font ttf at
// size, resolved to pixels with m.
func NewShaper(ttf []byte, size unit.Sp, m unit.Metric) (*Shaper, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(m.Sp(size)),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: font face: %w", err)
	}
	widths, err := lru.New(widthCacheSize)
	if err != nil {
		return nil, err
	}
	return &Shaper{face: face, widths: widths}, nil
}

// NewDefaultShaper returns a Shaper for the Go Regular font.
func NewDefaultShaper(size unit.Sp, m unit.Metric) (*Shaper, error) {
	return NewShaper(goregular.TTF, size, m)
}

// Measure returns the advance width of str in whole pixels, rounded
// down.
func (s *Shaper) Measure(str string) int {
	if w, ok := s.widths.Get(str); ok {
		return w.(int)
	}
	w := font.MeasureString(s.face, str).Floor()
	s.widths.Add(str, w)
	return w
}

// Width is like Measure, but never exceeds maxWidth, the width the
// text is laid out in.
func (s *Shaper) Width(str string, maxWidth int) int {
	w := s.Measure(str)
	if w > maxWidth {
		w = maxWidth
	}
	return w
}

// LineHeight returns the height of a line of text in pixels.
func (s *Shaper) LineHeight() int {
	m := s.face.Metrics()
	return (m.Ascent + m.Descent).Ceil()
}

// Draw draws str with its line box at origin.
func (s *Shaper) Draw(dst draw.Image, origin image.Point, str string, col color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: s.face,
		Dot:  fixed.P(origin.X, origin.Y).Add(fixed.Point26_6{Y: s.face.Metrics().Ascent}),
	}
	d.DrawString(str)
}

// Close releases the font face.
func (s *Shaper) Close() error {
	return s.face.Close()
}
