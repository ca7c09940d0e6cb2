// SPDX-License-Identifier: Unlicense OR MIT

package style

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gioui.org/icontext/layout"
	"gioui.org/icontext/unit"
	"gioui.org/icontext/widget"
)

const sample = `
icon_size = 24
icon_padding = 8
alignment = "center"
direction = "rtl"

[padding]
leading = 10
trailing = 12
`

func TestDecode(t *testing.T) {
	s, err := Decode(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	m := unit.Metric{PxPerDp: 2}
	if got, want := s.IconConstraint(m), (widget.Size{Width: 48, Height: 48}); got != want {
		t.Errorf("icon size %v, want %v", got, want)
	}
	if got, want := s.Inset(m), (layout.Inset{Leading: 20, Trailing: 24}); got != want {
		t.Errorf("inset %+v, want %+v", got, want)
	}
	if got := s.Spacing(m); got != 16 {
		t.Errorf("spacing %d, want 16", got)
	}
	if a, _ := s.TextAlignment(); a != layout.Middle {
		t.Errorf("alignment %v, want Middle", a)
	}
	if d, _ := s.TextDirection(); d != layout.RTL {
		t.Errorf("direction %v, want RTL", d)
	}
	if s.TextSize != 14 {
		t.Errorf("default text size %d, want 14", s.TextSize)
	}
}

func TestIconConstraint(t *testing.T) {
	tests := []struct {
		src  string
		want widget.Size
	}{
		{"", widget.Free},
		{"icon_width = 32", widget.Size{Width: 32, Height: widget.Unconstrained}},
		{"icon_height = 16", widget.Size{Width: widget.Unconstrained, Height: 16}},
		{"icon_width = 32\nicon_height = 16", widget.Size{Width: 32, Height: 16}},
		{"icon_size = 20\nicon_width = 32", widget.Size{Width: 20, Height: 20}},
	}
	for _, test := range tests {
		s, err := Decode(strings.NewReader(test.src))
		if err != nil {
			t.Fatalf("%q: %v", test.src, err)
		}
		if got := s.IconConstraint(unit.Metric{}); got != test.want {
			t.Errorf("%q: icon size %v, want %v", test.src, got, test.want)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, src := range []string{
		"icon_sise = 3",
		`alignment = "middle"`,
		`direction = "up"`,
		"icon_size = ",
		`icon_size = "big"`,
	} {
		if _, err := Decode(strings.NewReader(src)); err == nil {
			t.Errorf("%q: no error", src)
		}
	}
}

type fixed image.Point

func (f fixed) Size() image.Point { return image.Point(f) }

func TestApply(t *testing.T) {
	it := new(widget.IconText)
	it.SetIcon(layout.Leading, fixed{100, 50})

	if err := Default().Apply(unit.Metric{}, it); err != nil {
		t.Fatal(err)
	}
	if got := it.IconSize(); got != widget.Free {
		t.Errorf("default style set icon size %v", got)
	}

	s, err := Decode(strings.NewReader("icon_width = 40\nalignment = \"center\"\ndirection = \"rtl\""))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Apply(unit.Metric{}, it); err != nil {
		t.Fatal(err)
	}
	if it.Alignment != layout.Middle {
		t.Errorf("alignment %v, want Middle", it.Alignment)
	}
	if it.Direction != layout.RTL {
		t.Errorf("direction %v, want RTL", it.Direction)
	}
	if got, want := it.Bounds(layout.Leading), image.Rect(0, 0, 40, 20); got != want {
		t.Errorf("icon box %v, want %v", got, want)
	}

	s.Alignment = "sideways"
	if err := s.Apply(unit.Metric{}, it); err == nil {
		t.Error("invalid alignment applied")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.toml")
	if err := os.WriteFile(path, []byte(sample), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("loading a missing file: %v", err)
	}
}
