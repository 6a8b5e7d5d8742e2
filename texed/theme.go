// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texed/theme.go
// Summary: Colors for the widget chrome. The text body itself is colored by
// the layout engine; these only cover the list overlay, scrollbars and call
// tips.

package texed

// Theme holds the chrome colors of a widget.
type Theme struct {
	ListSelectedFore Color
	ListSelectedBack Color
	ListFore         Color
	ListBack         Color
	ScrollGutter     Color
	ScrollThumb      Color
	CallTipFore      Color
	CallTipBack      Color
}

// DefaultTheme returns the stock dark theme.
func DefaultTheme() Theme {
	return Theme{
		ListSelectedFore: 0x383838,
		ListSelectedBack: 0x7CAFC2,
		ListFore:         0xD8D8D8,
		ListBack:         0x383838,
		ScrollGutter:     0x282828,
		ScrollThumb:      0xD8D8D8,
		CallTipFore:      0x000000,
		CallTipBack:      0xFFFFC6,
	}
}
