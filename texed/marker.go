// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texed/marker.go
// Summary: Symbolic glyph substitution for line markers. The layout engine
// describes markers as shapes; a character grid can only show one glyph, so
// each shape maps to the closest Unicode symbol.

package texed

// MarkerSymbol identifies a line marker shape. Values at or above
// MarkerCharacter encode a literal character to draw instead of a shape.
type MarkerSymbol int

const (
	MarkerCircle               MarkerSymbol = 0
	MarkerRoundRect            MarkerSymbol = 1
	MarkerArrow                MarkerSymbol = 2
	MarkerSmallRect            MarkerSymbol = 3
	MarkerShortArrow           MarkerSymbol = 4
	MarkerEmpty                MarkerSymbol = 5
	MarkerArrowDown            MarkerSymbol = 6
	MarkerMinus                MarkerSymbol = 7
	MarkerPlus                 MarkerSymbol = 8
	MarkerVLine                MarkerSymbol = 9
	MarkerLCorner              MarkerSymbol = 10
	MarkerTCorner              MarkerSymbol = 11
	MarkerBoxPlus              MarkerSymbol = 12
	MarkerBoxPlusConnected     MarkerSymbol = 13
	MarkerBoxMinus             MarkerSymbol = 14
	MarkerBoxMinusConnected    MarkerSymbol = 15
	MarkerLCornerCurve         MarkerSymbol = 16
	MarkerTCornerCurve         MarkerSymbol = 17
	MarkerCirclePlus           MarkerSymbol = 18
	MarkerCirclePlusConnected  MarkerSymbol = 19
	MarkerCircleMinus          MarkerSymbol = 20
	MarkerCircleMinusConnected MarkerSymbol = 21
	MarkerBackground           MarkerSymbol = 22
	MarkerDotDotDot            MarkerSymbol = 23
	MarkerArrows               MarkerSymbol = 24
	MarkerPixmap               MarkerSymbol = 25
	MarkerFullRect             MarkerSymbol = 26
	MarkerLeftRect             MarkerSymbol = 27
	MarkerAvailable            MarkerSymbol = 28
	MarkerUnderline            MarkerSymbol = 29
	MarkerRGBAImage            MarkerSymbol = 30
	MarkerBookmark             MarkerSymbol = 31
	MarkerVerticalBookmark     MarkerSymbol = 32
	MarkerBar                  MarkerSymbol = 33

	// MarkerCharacter is the base of the range reserved for user-supplied
	// characters. MarkerCharacter+ch draws ch literally.
	MarkerCharacter MarkerSymbol = 10000
)

// MarkerDescriptor describes one line marker to draw.
type MarkerDescriptor struct {
	Type MarkerSymbol
	Fore Color
	Back Color
}

var markerGlyphs = map[MarkerSymbol]rune{
	MarkerCircle:               0x25CF, // ●
	MarkerRoundRect:            0x25A0, // ■
	MarkerSmallRect:            0x25A0,
	MarkerArrow:                0x25B6, // ▶
	MarkerShortArrow:           0x2192, // →
	MarkerEmpty:                ' ',
	MarkerArrowDown:            0x25BC, // ▼
	MarkerMinus:                0x2500, // ─
	MarkerBoxMinus:             0x229F, // ⊟
	MarkerBoxMinusConnected:    0x229F,
	MarkerCircleMinus:          0x2295, // ⊕
	MarkerCircleMinusConnected: 0x2295,
	MarkerPlus:                 0x253C, // ┼
	MarkerBoxPlus:              0x229E, // ⊞
	MarkerBoxPlusConnected:     0x229E,
	MarkerCirclePlus:           0x2296, // ⊖
	MarkerCirclePlusConnected:  0x2296,
	MarkerVLine:                0x2502, // │
	MarkerLCorner:              0x2514, // └
	MarkerLCornerCurve:         0x2514,
	MarkerTCorner:              0x251C, // ├
	MarkerTCornerCurve:         0x251C,
	MarkerDotDotDot:            0x22EF, // ⋯
	MarkerArrows:               0x22D9, // ⋙
	MarkerLeftRect:             0x258E, // ▎
	MarkerBookmark:             0x2211, // ∑
	MarkerBar:                  0x2590, // ▐
}

// MarkerGlyph returns the glyph substituted for the given marker shape, or
// false when the shape has no single-glyph representation.
func MarkerGlyph(t MarkerSymbol) (rune, bool) {
	r, ok := markerGlyphs[t]
	return r, ok
}

// DrawMarker draws one line marker into rc. Full-rectangle markers fill the
// whole rectangle with the marker's background; character markers draw their
// literal character; shapes with no representation draw nothing.
func (s *Surface) DrawMarker(rc Rectangle, marker MarkerDescriptor) {
	if s.win == nil || s.dev == nil {
		return
	}
	if marker.Type == MarkerFullRect {
		s.FillRectangle(rc, marker.Back)
		return
	}
	if r, ok := markerGlyphs[marker.Type]; ok {
		s.dev.SetCell(s.win.Left+int(rc.Left), s.win.Top+int(rc.Top), r, marker.Fore, marker.Back)
		return
	}
	if marker.Type >= MarkerCharacter {
		ch := rune(marker.Type - MarkerCharacter)
		s.DrawTextClipped(rc, string(ch), marker.Fore, marker.Back)
	}
}
