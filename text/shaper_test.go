// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"image"
	"image/color"
	"testing"

	"gioui.org/icontext/unit"
)

func newTestShaper(t *testing.T) *Shaper {
	t.Helper()
	s, err := NewDefaultShaper(16, unit.Metric{})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestShaperMeasure(t *testing.T) {
	s := newTestShaper(t)
	if w := s.Measure(""); w != 0 {
		t.Errorf("empty string width %d, want 0", w)
	}
	short, long := s.Measure("icon"), s.Measure("icon text")
	if short <= 0 {
		t.Errorf("width of %q is %d, want > 0", "icon", short)
	}
	if long <= short {
		t.Errorf("width of longer text %d not greater than %d", long, short)
	}
	if again := s.Measure("icon"); again != short {
		t.Errorf("cached width %d differs from %d", again, short)
	}
}

func TestShaperWidthClamped(t *testing.T) {
	s := newTestShaper(t)
	full := s.Measure("a fairly long label")
	if got := s.Width("a fairly long label", full/2); got != full/2 {
		t.Errorf("clamped width %d, want %d", got, full/2)
	}
	if got := s.Width("a fairly long label", full+10); got != full {
		t.Errorf("unclamped width %d, want %d", got, full)
	}
}

func TestShaperScalesWithMetric(t *testing.T) {
	s1 := newTestShaper(t)
	s2, err := NewDefaultShaper(16, unit.Metric{PxPerSp: 2})
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()
	if h1, h2 := s1.LineHeight(), s2.LineHeight(); h2 <= h1 {
		t.Errorf("line height at 2x %d not greater than at 1x %d", h2, h1)
	}
}

func TestShaperDraw(t *testing.T) {
	s := newTestShaper(t)
	img := image.NewRGBA(image.Rect(0, 0, 100, s.LineHeight()))
	s.Draw(img, image.Point{}, "Hi", color.Black)
	for _, px := range img.Pix {
		if px != 0 {
			return
		}
	}
	t.Error("no pixels drawn")
}

func TestTransformation(t *testing.T) {
	tests := []struct {
		t    Transformation
		in   string
		want string
	}{
		{nil, "Send", "Send"},
		{AllCaps, "Send", "SEND"},
		{Password, "héllo", "•••••"},
	}
	for _, test := range tests {
		if got := test.t.Apply(test.in); got != test.want {
			t.Errorf("Apply(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}
