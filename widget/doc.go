// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements the icon layout of a text widget: it
// scales up to four icons placed around a text block and, for centered
// text, shifts the leading and trailing icons so the icons and the
// text appear centered as one block.
//
// The text itself is measured and drawn by a host, described by the
// Surface interface. Label is a Surface backed by a text.Shaper.
package widget
