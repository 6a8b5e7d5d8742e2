// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texed/calltip.go
// Summary: Call tip overlay. A small bordered window of informational text
// placed near the caret, repainted over the widget's content while active.

package texed

import "strings"

// CallTip is the popup shown for function signatures and similar hints.
type CallTip struct {
	dev    Device
	theme  Theme
	win    *Window
	text   string
	active bool
}

// NewCallTip creates an inactive call tip drawing on dev.
func NewCallTip(dev Device, theme Theme) *CallTip {
	return &CallTip{dev: dev, theme: theme}
}

// Active reports whether the call tip is showing.
func (ct *CallTip) Active() bool { return ct.active }

// Window returns the call tip's window, or nil while inactive.
func (ct *CallTip) Window() *Window { return ct.win }

// Show places the call tip at rc, given relative to parent, and paints it.
// The placement is shifted and clamped so the tip stays inside the parent
// window.
func (ct *CallTip) Show(rc Rectangle, text string, parent *Window) {
	rc.Right -= 1 // remove right-side padding

	left := parent.Left + int(rc.Left)
	top := parent.Top + int(rc.Top)
	if left < parent.Left {
		left = parent.Left
	}
	if top < parent.Top {
		top = parent.Top
	}
	width := int(rc.Width())
	height := int(rc.Height())
	if width > parent.Width() {
		width = parent.Width()
	}
	if height > parent.Height() {
		height = parent.Height()
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if left+width-1 > parent.Right {
		left = parent.Right - width + 1
	}
	if top+height-1 > parent.Bottom {
		top = parent.Bottom - height + 1
	}

	ct.win = NewWindow(left, top, left+width-1, top+height-1)
	ct.text = text
	ct.active = true
	ct.Redraw()
}

// Redraw repaints the call tip over whatever is underneath it.
func (ct *CallTip) Redraw() {
	if !ct.active || ct.win == nil {
		return
	}
	fore, back := ct.theme.CallTipFore, ct.theme.CallTipBack
	for y := 0; y < ct.win.Height(); y++ {
		for x := 0; x < ct.win.Width(); x++ {
			ct.dev.SetCell(ct.win.Left+x, ct.win.Top+y, ' ', fore, back)
		}
	}
	sur := NewSurface(ct.dev)
	sur.Init(ct.win)
	for i, line := range strings.Split(ct.text, "\n") {
		if i >= ct.win.Height() {
			break
		}
		sur.DrawText(Rect(1, float64(i), float64(ct.win.Width()), float64(i+1)), line, fore, back)
	}
	ct.dev.Show()
}

// Hide dismisses the call tip. The widget's next refresh repaints the cells
// underneath.
func (ct *CallTip) Hide() {
	ct.active = false
	ct.win = nil
	ct.text = ""
}

// Contains reports whether the parent-relative point lies inside the call
// tip.
func (ct *CallTip) Contains(p Point, parent *Window) bool {
	if !ct.active || ct.win == nil {
		return false
	}
	rx := p.X - (ct.win.Left - parent.Left)
	ry := p.Y - (ct.win.Top - parent.Top)
	return rx >= 0 && rx < ct.win.Width() && ry >= 0 && ry < ct.win.Height()
}
