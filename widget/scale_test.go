// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"math"
	"testing"
)

func TestScale(t *testing.T) {
	tests := []struct {
		name          string
		box           image.Rectangle
		width, height int
		want          image.Rectangle
	}{
		{
			name:   "unconstrained",
			box:    image.Rect(0, 0, 100, 50),
			width:  Unconstrained,
			height: Unconstrained,
			want:   image.Rect(0, 0, 100, 50),
		}, {
			name:   "width",
			box:    image.Rect(0, 0, 100, 50),
			width:  40,
			height: Unconstrained,
			want:   image.Rect(0, 0, 40, 20),
		}, {
			name:   "height after width",
			box:    image.Rect(0, 0, 40, 20),
			width:  Unconstrained,
			height: 30,
			want:   image.Rect(0, 0, 60, 30),
		}, {
			name:   "height",
			box:    image.Rect(0, 0, 100, 50),
			width:  Unconstrained,
			height: 10,
			want:   image.Rect(0, 0, 20, 10),
		}, {
			name:   "consistent",
			box:    image.Rect(0, 0, 100, 50),
			width:  40,
			height: 20,
			want:   image.Rect(0, 0, 40, 20),
		}, {
			name:   "height wins",
			box:    image.Rect(0, 0, 100, 50),
			width:  40,
			height: 40,
			want:   image.Rect(0, 0, 80, 40),
		}, {
			name:   "round half up",
			box:    image.Rect(0, 0, 4, 3),
			width:  2,
			height: Unconstrained,
			want:   image.Rect(0, 0, 2, 2),
		}, {
			name:   "keeps origin",
			box:    image.Rect(5, 7, 105, 57),
			width:  40,
			height: Unconstrained,
			want:   image.Rect(5, 7, 45, 27),
		}, {
			name:   "zero target",
			box:    image.Rect(0, 0, 100, 50),
			width:  0,
			height: Unconstrained,
			want:   image.Rect(0, 0, 0, 0),
		}, {
			name:   "zero width",
			box:    image.Rect(0, 0, 0, 50),
			width:  40,
			height: 40,
			want:   image.Rect(0, 0, 0, 50),
		}, {
			name:   "zero height",
			box:    image.Rect(0, 0, 50, 0),
			width:  40,
			height: 40,
			want:   image.Rect(0, 0, 50, 0),
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Scale(test.box, test.width, test.height)
			if got != test.want {
				t.Errorf("Scale(%v, %d, %d) = %v, want %v", test.box, test.width, test.height, got, test.want)
			}
		})
	}
}

func TestScaleWidthKeepsAspect(t *testing.T) {
	for w := 1; w < 120; w += 7 {
		for h := 1; h < 120; h += 11 {
			box := image.Rect(0, 0, w, h)
			aspect := float64(h) / float64(w)
			for tw := 1; tw < 100; tw += 3 {
				got := Scale(box, tw, Unconstrained)
				if got.Dx() != tw {
					t.Fatalf("Scale(%v, %d, -1) width %d", box, tw, got.Dx())
				}
				// Rounding moves the height by at most half a pixel.
				if d := math.Abs(float64(got.Dy())/float64(tw) - aspect); d > .5/float64(tw)+1e-9 {
					t.Errorf("Scale(%v, %d, -1) = %v: aspect off by %g", box, tw, got, d)
				}
			}
		}
	}
}

func TestScaleIdempotent(t *testing.T) {
	targets := []Size{
		{40, Unconstrained},
		{Unconstrained, 30},
		{24, Unconstrained},
		{Unconstrained, 1},
		{0, Unconstrained},
		{Unconstrained, Unconstrained},
	}
	for w := 1; w < 100; w += 9 {
		for h := 1; h < 100; h += 13 {
			box := image.Rect(0, 0, w, h)
			for _, sz := range targets {
				once := Scale(box, sz.Width, sz.Height)
				twice := Scale(once, sz.Width, sz.Height)
				if once != twice {
					t.Errorf("Scale(%v, %v) = %v, then %v", box, sz, once, twice)
				}
			}
		}
	}
	// Constraints in both dimensions.
	box := image.Rect(0, 0, 100, 50)
	for _, sz := range []Size{{40, 30}, {40, 40}, {40, 20}, {64, 64}} {
		once := Scale(box, sz.Width, sz.Height)
		if twice := Scale(once, sz.Width, sz.Height); once != twice {
			t.Errorf("Scale(%v, %v) = %v, then %v", box, sz, once, twice)
		}
	}
}

func TestScaleInconsistentTargets(t *testing.T) {
	// Targets that disagree with the aspect ratio are resolved width
	// first, then height. The second pass starts from the rounded
	// aspect ratio of the first and can settle on the width target.
	box := image.Rect(0, 0, 13, 6)
	once := Scale(box, 1, 1)
	if want := image.Rect(0, 0, 2, 1); once != want {
		t.Fatalf("Scale(%v, 1, 1) = %v, want %v", box, once, want)
	}
	if got, want := Scale(once, 1, 1), image.Rect(0, 0, 1, 1); got != want {
		t.Errorf("Scale(%v, 1, 1) = %v, want %v", once, got, want)
	}
}

func TestSizeValid(t *testing.T) {
	tests := []struct {
		sz    Size
		valid bool
	}{
		{Free, true},
		{Size{0, 0}, true},
		{Size{24, Unconstrained}, true},
		{Size{-2, 4}, false},
		{Size{4, -5}, false},
	}
	for _, test := range tests {
		if got := test.sz.valid(); got != test.valid {
			t.Errorf("%v.valid() = %v, want %v", test.sz, got, test.valid)
		}
	}
}
