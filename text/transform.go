// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"strings"
	"unicode/utf8"
)

// Transformation rewrites text before it is measured and drawn, such
// as masking a password.
type Transformation func(string) string

// AllCaps displays text in upper case.
func AllCaps(s string) string {
	return strings.ToUpper(s)
}

// Password replaces every rune with a bullet.
func Password(s string) string {
	return strings.Repeat("•", utf8.RuneCountInString(s))
}

// Apply returns s transformed by t. A nil t leaves s unchanged.
func (t Transformation) Apply(s string) string {
	if t == nil {
		return s
	}
	return t(s)
}
