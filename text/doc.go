// SPDX-License-Identifier: Unlicense OR MIT

// Package text measures single lines of text for hosts of
// widget.IconText.
package text
