// SPDX-License-Identifier: Unlicense OR MIT

// Package style loads the appearance of an icon text widget from TOML:
//
//	icon_size = 24
//	icon_padding = 8
//	alignment = "center"
//	direction = "ltr"
//
//	[padding]
//	leading = 10
//	trailing = 10
//
// Sizes are in dp, the text size in sp. An icon_size overrides
// icon_width and icon_height; a negative size leaves that dimension
// unconstrained.
package style

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"gioui.org/icontext/layout"
	"gioui.org/icontext/unit"
	"gioui.org/icontext/widget"
)

// unset marks an icon dimension that is not configured.
const unset = -1

// Style is the decoded form of a style file.
type Style struct {
	IconSize    int     `toml:"icon_size"`
	IconWidth   int     `toml:"icon_width"`
	IconHeight  int     `toml:"icon_height"`
	IconPadding int     `toml:"icon_padding"`
	TextSize    int     `toml:"text_size"`
	Alignment   string  `toml:"alignment"`
	Direction   string  `toml:"direction"`
	Padding     Padding `toml:"padding"`
}

// Padding is the padding around the text and icons, in dp.
type Padding struct {
	Top      int `toml:"top"`
	Trailing int `toml:"trailing"`
	Bottom   int `toml:"bottom"`
	Leading  int `toml:"leading"`
}

// Default returns the style used for keys missing from a file.
func Default() Style {
	return Style{
		IconSize:   unset,
		IconWidth:  unset,
		IconHeight: unset,
		TextSize:   14,
		Alignment:  "start",
		Direction:  "ltr",
	}
}

// Decode reads a style from r. Keys not present keep their Default
// value; unknown keys are an error.
func Decode(r io.Reader) (Style, error) {
	s := Default()
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return Style{}, fmt.Errorf("style: %w", err)
	}
	if u := md.Undecoded(); len(u) > 0 {
		keys := make([]string, len(u))
		for i, k := range u {
			keys[i] = k.String()
		}
		return Style{}, fmt.Errorf("style: unknown keys: %s", strings.Join(keys, ", "))
	}
	if _, err := s.TextAlignment(); err != nil {
		return Style{}, err
	}
	if _, err := s.TextDirection(); err != nil {
		return Style{}, err
	}
	return s, nil
}

// Load reads the style file at path.
func Load(path string) (Style, error) {
	f, err := os.Open(path)
	if err != nil {
		return Style{}, err
	}
	defer f.Close()
	s, err := Decode(f)
	if err != nil {
		return Style{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// IconConstraint returns the configured icon size in pixels.
func (s Style) IconConstraint(m unit.Metric) widget.Size {
	w, h := s.IconWidth, s.IconHeight
	if s.IconSize != unset {
		w, h = s.IconSize, s.IconSize
	}
	return widget.Size{Width: dp(m, w), Height: dp(m, h)}
}

// Inset returns the padding in pixels.
func (s Style) Inset(m unit.Metric) layout.Inset {
	return layout.Inset{
		Top:      m.Dp(unit.Dp(s.Padding.Top)),
		Trailing: m.Dp(unit.Dp(s.Padding.Trailing)),
		Bottom:   m.Dp(unit.Dp(s.Padding.Bottom)),
		Leading:  m.Dp(unit.Dp(s.Padding.Leading)),
	}
}

// Spacing returns the space between an icon and the text in pixels.
func (s Style) Spacing(m unit.Metric) int {
	return m.Dp(unit.Dp(s.IconPadding))
}

// TextAlignment parses the alignment key.
func (s Style) TextAlignment() (layout.Alignment, error) {
	switch s.Alignment {
	case "start", "":
		return layout.Start, nil
	case "center":
		return layout.Middle, nil
	case "end":
		return layout.End, nil
	default:
		return 0, fmt.Errorf("style: invalid alignment %q", s.Alignment)
	}
}

// TextDirection parses the direction key.
func (s Style) TextDirection() (layout.TextDirection, error) {
	switch s.Direction {
	case "ltr", "":
		return layout.LTR, nil
	case "rtl":
		return layout.RTL, nil
	default:
		return 0, fmt.Errorf("style: invalid direction %q", s.Direction)
	}
}

// Apply sets the alignment and direction of it and, if a width or
// height is configured, its icon size.
func (s Style) Apply(m unit.Metric, it *widget.IconText) error {
	a, err := s.TextAlignment()
	if err != nil {
		return err
	}
	dir, err := s.TextDirection()
	if err != nil {
		return err
	}
	it.Alignment = a
	it.Direction = dir
	sz := s.IconConstraint(m)
	if sz.Width <= 0 && sz.Height <= 0 {
		return nil
	}
	return it.SetIconConstraint(sz)
}

func dp(m unit.Metric, v int) int {
	if v < 0 {
		return widget.Unconstrained
	}
	return m.Dp(unit.Dp(v))
}
