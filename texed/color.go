// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texed/color.go
// Summary: 24-bit cell colors.

package texed

// Color is a 24-bit RGB color packed as 0xRRGGBB, the only color model the
// cell devices understand.
type Color uint32

const (
	Black Color = 0x000000
	White Color = 0xFFFFFF
)

// RGB packs the three channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Channels unpacks the color into its red, green and blue components.
func (c Color) Channels() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}
