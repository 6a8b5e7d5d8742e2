// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texed/window.go
// Summary: Cell window geometry: absolute rectangular regions of the terminal grid.
// Usage: Addressing unit for all drawing; overlays and the main widget each own one.

package texed

// Point is a position in a window's cell coordinate space.
type Point struct {
	X, Y int
}

// Rectangle is a region in the layout engine's fractional coordinate space.
// The engine thinks in "pixels"; on a terminal one pixel is one cell, but
// fractional values still show up (e.g. whitespace dot rectangles), so the
// fields stay float64 and are truncated at the device boundary.
type Rectangle struct {
	Left, Top, Right, Bottom float64
}

// Rect builds a Rectangle from its four edges.
func Rect(left, top, right, bottom float64) Rectangle {
	return Rectangle{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Width returns the horizontal extent of the rectangle.
func (r Rectangle) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent of the rectangle.
func (r Rectangle) Height() float64 { return r.Bottom - r.Top }

// Window is a rectangular sub-region of the terminal grid. All four
// coordinates are absolute, inclusive cell positions, so a one-cell window
// has Left==Right and Top==Bottom.
type Window struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// NewWindow creates a window covering the given inclusive bounds.
func NewWindow(left, top, right, bottom int) *Window {
	return &Window{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Width returns the number of columns the window covers.
func (w *Window) Width() int { return w.Right - w.Left + 1 }

// Height returns the number of rows the window covers.
func (w *Window) Height() int { return w.Bottom - w.Top + 1 }

// Move translates the window to a new top-left position, preserving its size.
func (w *Window) Move(newX, newY int) {
	w.Right += newX - w.Left
	w.Bottom += newY - w.Top
	w.Left = newX
	w.Top = newY
}

// Resize adjusts the right and bottom edges so the window spans the given
// number of columns and rows. No validation against the terminal's real
// dimensions happens here; drawing code clamps before writing cells.
func (w *Window) Resize(width, height int) {
	w.Right = w.Left + width - 1
	w.Bottom = w.Top + height - 1
}

// Bounds reports the window's extent with the window itself as origin.
// Painting is always relative to a window's own top-left corner, regardless
// of where the window sits on the terminal.
func (w *Window) Bounds() Rectangle {
	return Rect(0, 0, float64(w.Width()), float64(w.Height()))
}

// PlaceWithin positions the window at rc, interpreted relative to parent,
// clamping so the window does not run off the parent's edges. A window taller
// than the remaining space below is pushed up; when the parent is a single
// row the window is placed directly above it instead.
func (w *Window) PlaceWithin(rc Rectangle, parent *Window) {
	begx, begy := parent.Left, parent.Top
	x := begx + int(rc.Left)
	if x < begx {
		x = begx
	}
	y := begy + int(rc.Top)
	if y < begy {
		y = begy
	}
	sizex := int(rc.Right - rc.Left)
	sizey := int(rc.Bottom - rc.Top)
	parentWidth := parent.Width()
	parentHeight := parent.Height()
	if sizex > parentWidth {
		x = begx // align left
	} else if x+sizex > begx+parentWidth {
		x = begx + parentWidth - sizex // align right
	}
	if y+sizey > begy+parentHeight {
		y = begy + parentHeight - sizey // align bottom
		if parentHeight == 1 {
			y-- // show directly above the parent row
		}
	}
	if y < 0 {
		y = begy // align top
	}
	w.Move(x, y)
}
