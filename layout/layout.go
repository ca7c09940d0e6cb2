// SPDX-License-Identifier: Unlicense OR MIT

// Package layout defines the directional model of icons around a text
// block: logical slots, the physical sides they resolve to for a
// writing direction, text alignment and padding.
package layout

// Slot is one of the four logical icon positions around a text block.
// Leading and Trailing follow the writing direction; they are mapped
// to physical sides only when drawing, with Slot.Side.
type Slot uint8

// Side is a physical edge of a text block.
type Side uint8

// TextDirection is the writing direction of a text block.
type TextDirection uint8

// Alignment is the horizontal alignment of text within its
// available width.
type Alignment uint8

const (
	Leading Slot = iota
	Top
	Trailing
	Bottom
)

// Slots lists every Slot in drawing order.
var Slots = [...]Slot{Leading, Top, Trailing, Bottom}

const (
	Left Side = iota
	Above
	Right
	Below
)

const (
	LTR TextDirection = iota
	RTL
)

const (
	Start Alignment = iota
	Middle
	End
)

// Inset is the padding around a text block, in pixels. Leading and
// Trailing are logical like Slot.
type Inset struct {
	Top, Trailing, Bottom, Leading int
}

// UniformInset returns an Inset with a single inset applied to all
// edges.
func UniformInset(v int) Inset {
	return Inset{Top: v, Trailing: v, Bottom: v, Leading: v}
}

// Side resolves the slot to a physical side for the writing
// direction d.
func (s Slot) Side(d TextDirection) Side {
	switch s {
	case Top:
		return Above
	case Bottom:
		return Below
	case Leading:
		if d == RTL {
			return Right
		}
		return Left
	case Trailing:
		if d == RTL {
			return Left
		}
		return Right
	default:
		panic("unreachable")
	}
}

// Resolve returns the slot drawn at side s for the writing
// direction d. It is the inverse of Slot.Side.
func Resolve(s Side, d TextDirection) Slot {
	switch s {
	case Above:
		return Top
	case Below:
		return Bottom
	case Left:
		if d == RTL {
			return Trailing
		}
		return Leading
	case Right:
		if d == RTL {
			return Leading
		}
		return Trailing
	default:
		panic("unreachable")
	}
}

func (s Slot) String() string {
	switch s {
	case Leading:
		return "Leading"
	case Top:
		return "Top"
	case Trailing:
		return "Trailing"
	case Bottom:
		return "Bottom"
	default:
		panic("unreachable")
	}
}

func (s Side) String() string {
	switch s {
	case Left:
		return "Left"
	case Above:
		return "Above"
	case Right:
		return "Right"
	case Below:
		return "Below"
	default:
		panic("unreachable")
	}
}

func (d TextDirection) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	default:
		panic("unreachable")
	}
}

func (a Alignment) String() string {
	switch a {
	case Start:
		return "Start"
	case Middle:
		return "Middle"
	case End:
		return "End"
	default:
		panic("unreachable")
	}
}
