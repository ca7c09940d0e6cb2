// SPDX-License-Identifier: Unlicense OR MIT

package main

const mainUsage = `The icontext command lays out a line of text with icons around it.

Usage:

	icontext [flags] -text <text>

It scales the icons to the configured icon size and, for centered text,
shifts the leading and trailing icons so icons and text appear centered
as one block. The resulting icon boxes are printed, one line per slot.

The -leading, -top, -trailing and -bottom flags name an icon: a PNG or
JPEG file, an IconVG file with the .ivg suffix, or one of the built-in
material icons as md:<name>, for example md:home.

The -style flag names a TOML style file with icon_size, icon_width,
icon_height, icon_padding, text_size, alignment, direction and a
[padding] table. Sizes are in dp.

The -width flag sets the measured width of the widget in pixels. The
default, 0, fits the widget to its content.

The -density flag sets the number of pixels per dp and sp.

The -o flag renders the widget to a PNG file.

The -v flag enables verbose output.
`
