// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texed/surface.go
// Summary: Drawing target bound to a cell window. Projects the layout
// engine's fractional pixel rectangles onto integer character cells.

package texed

import "unicode/utf8"

// Surface renders rectangles and text runs into the cells of one bound
// Window. The layout engine addresses it in a continuous pixel space; every
// draw is projected down to whole cells with one glyph and two colors each.
//
// A surface allocated by AllocatePixMap is a pattern surface: it has no
// device and only records the fill color it was painted with, for replay by
// FillRectanglePattern.
type Surface struct {
	dev Device
	win *Window

	// Fractional clip region. Only text draws honor it, and only on the
	// left edge. Zero value means no clipping.
	clip Rectangle

	pattern       bool
	patternSet    bool
	patternColour Color
}

// NewSurface creates a surface drawing on dev. It must be bound to a window
// with Init before use.
func NewSurface(dev Device) *Surface {
	return &Surface{dev: dev}
}

// Init binds the surface to a window and resets the clip region. Rebinding
// needs no other cleanup.
func (s *Surface) Init(win *Window) {
	s.win = win
	s.clip = Rectangle{}
}

// Window returns the currently bound window, or nil.
func (s *Surface) Window() *Window { return s.win }

// AllocatePixMap returns a pattern surface of nominal size width x height.
// The layout engine treats a nil result as fatal, so this never fails; the
// returned surface captures fill colors instead of drawing cells.
func (s *Surface) AllocatePixMap(width, height int) *Surface {
	return &Surface{pattern: true}
}

// FillRectangle writes (' ', white, colour) into every cell of rc that lies
// inside the bound window. Coordinates beyond the window on any side are
// clamped before iterating, so no write can land outside the window.
func (s *Surface) FillRectangle(rc Rectangle, colour Color) {
	if s.pattern {
		s.patternColour = colour
		s.patternSet = true
		return
	}
	if s.win == nil || s.dev == nil {
		return
	}
	left := int(rc.Left)
	top := int(rc.Top)
	right := int(rc.Right)
	bottom := int(rc.Bottom)
	if left < 0 {
		left = 0
	}
	if top < 0 {
		top = 0
	}
	if right > s.win.Width() {
		right = s.win.Width()
	}
	if bottom > s.win.Height() {
		bottom = s.win.Height()
	}
	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			s.dev.SetCell(s.win.Left+x, s.win.Top+y, ' ', White, colour)
		}
	}
}

// FillRectanglePattern fills rc with the color captured by the given pattern
// surface, or black when the pattern never recorded one.
func (s *Surface) FillRectanglePattern(rc Rectangle, pattern *Surface) {
	colour := Black
	if pattern != nil && pattern.pattern && pattern.patternSet {
		colour = pattern.patternColour
	}
	s.FillRectangle(rc, colour)
}

// DrawText draws text at rc with explicit foreground and background colors.
// Runs starting left of the clip region have leading glyphs skipped until the
// clip boundary is reached; a wide glyph straddling the boundary is dropped
// whole, never drawn half. Runs are truncated at the window's right edge.
// Each glyph occupies one written cell; a width-2 glyph advances the cursor
// two columns but the second column is left untouched.
func (s *Surface) DrawText(rc Rectangle, text string, fore, back Color) {
	if s.win == nil || s.dev == nil || text == "" {
		return
	}

	if rc.Left < s.clip.Left {
		// Do not overwrite margin text.
		clipChars := int(s.clip.Left - rc.Left)
		offset := 0
		chars := 0
		for offset < len(text) && chars < clipChars {
			chars += GraphemeWidth(text[offset:])
			offset++
			for offset < len(text) && IsContinuationByte(text[offset]) {
				offset++
			}
		}
		text = text[offset:]
		rc.Left = s.clip.Left + float64(chars-clipChars)
	}

	// Do not write beyond the right window boundary.
	avail := s.win.Width() - int(rc.Left)
	bytes := 0
	for chars := 0; bytes < len(text); {
		w := GraphemeWidth(text[bytes:])
		if chars+w > avail {
			break
		}
		chars += w
		bytes++
		for bytes < len(text) && IsContinuationByte(text[bytes]) {
			bytes++
		}
	}
	if bytes == 0 {
		return
	}

	x := s.win.Left + int(rc.Left)
	y := s.win.Top + int(rc.Top)
	for i := 0; i < bytes; {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size <= 1 {
			r = rune(text[i])
			size = 1
		}
		w := GraphemeWidth(text[i:])
		s.dev.SetCell(x, y, r, fore, back)
		x += w
		i += size
	}
}

// DrawTextClipped draws text like DrawText. A degenerate rectangle whose
// left edge is at or past its right edge marks a text blob; its cell padding
// is removed before drawing.
func (s *Surface) DrawTextClipped(rc Rectangle, text string, fore, back Color) {
	if rc.Left >= rc.Right {
		rc.Left -= 2
		rc.Right -= 2
		rc.Top -= 1
		rc.Bottom -= 1
	}
	s.DrawText(rc, text, fore, back)
}

// DrawTextTransparent draws text reusing the background color already on the
// device at the run's leading cell. The sample is taken once and applied to
// the whole run, so backgrounds must be painted before transparent text.
func (s *Surface) DrawTextTransparent(rc Rectangle, text string, fore Color) {
	if s.win == nil || s.dev == nil {
		return
	}
	if int(rc.Top) >= s.win.Height() {
		return
	}
	_, _, back := s.dev.CellAt(s.win.Left+int(rc.Left), s.win.Top+int(rc.Top))
	s.DrawText(rc, text, fore, back)
}

// MeasureWidth returns the display width of text in cells.
func (s *Surface) MeasureWidth(text string) int { return MeasureText(text) }

// MeasureWidths records, for every byte of text, the total display width up
// to and including the glyph that byte belongs to. positions must have at
// least len(text) entries.
func (s *Surface) MeasureWidths(text string, positions []int) {
	total := 0
	for i := 0; i < len(text); i++ {
		if !IsContinuationByte(text[i]) {
			total += GraphemeWidth(text[i:])
		}
		positions[i] = total
	}
}

// SetClip restricts subsequent text draws so long lines scrolled to the
// right do not overwrite margin text. Fill operations are unaffected.
func (s *Surface) SetClip(rc Rectangle) { s.clip = rc }

// PopClip removes the clip region.
func (s *Surface) PopClip() { s.clip = Rectangle{} }

// Polygon draws the character equivalent of the shape outlined by pts. The
// layout engine only requests polygons for call tip arrows, so an upward or
// downward triangle glyph is substituted based on point order.
func (s *Surface) Polygon(pts []Point, fill Color) {
	if s.win == nil || s.dev == nil || len(pts) == 0 {
		return
	}
	last := pts[len(pts)-1]
	if pts[0].Y < last.Y {
		s.dev.SetCell(s.win.Left+last.X-2, s.win.Top+pts[0].Y, '▲', Black, fill)
	} else {
		s.dev.SetCell(s.win.Left+last.X-2, s.win.Top+pts[0].Y-2, '▼', Black, fill)
	}
}
