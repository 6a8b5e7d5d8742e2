// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texed/calltip_test.go
// Summary: Exercises call tip placement, clamping and hit testing.
// Usage: Executed during `go test` to guard against regressions.

package texed

import "testing"

func TestCallTipShow(t *testing.T) {
	dev := NewMemDevice(40, 10)
	ct := NewCallTip(dev, DefaultTheme())
	parent := NewWindow(0, 0, 39, 9)

	ct.Show(Rect(5, 2, 25, 4), "hi\nthere", parent)
	if !ct.Active() {
		t.Fatalf("call tip not active after show")
	}
	w := ct.Window()
	if w.Left != 5 || w.Top != 2 {
		t.Fatalf("placed at (%d,%d), want (5,2)", w.Left, w.Top)
	}
	if w.Width() != 19 || w.Height() != 2 {
		t.Fatalf("size %dx%d, want 19x2", w.Width(), w.Height())
	}

	// Text is indented one column inside the tip.
	if ch, _, _ := dev.CellAt(6, 2); ch != 'h' {
		t.Fatalf("cell (6,2) = %q, want 'h'", ch)
	}
	if ch, _, _ := dev.CellAt(6, 3); ch != 't' {
		t.Fatalf("cell (6,3) = %q, want 't'", ch)
	}
	if _, _, bg := dev.CellAt(5, 2); bg != DefaultTheme().CallTipBack {
		t.Fatalf("tip background not painted")
	}
}

func TestCallTipClampsToParent(t *testing.T) {
	dev := NewMemDevice(40, 10)
	ct := NewCallTip(dev, DefaultTheme())
	parent := NewWindow(0, 0, 39, 9)

	ct.Show(Rect(35, 8, 70, 15), "x", parent)
	w := ct.Window()
	if w.Right > parent.Right || w.Bottom > parent.Bottom {
		t.Fatalf("tip (%d,%d)-(%d,%d) leaves parent", w.Left, w.Top, w.Right, w.Bottom)
	}
	if w.Left < parent.Left || w.Top < parent.Top {
		t.Fatalf("tip (%d,%d) above parent origin", w.Left, w.Top)
	}
}

func TestCallTipContains(t *testing.T) {
	dev := NewMemDevice(40, 10)
	ct := NewCallTip(dev, DefaultTheme())
	parent := NewWindow(0, 0, 39, 9)

	if ct.Contains(Point{X: 0, Y: 0}, parent) {
		t.Fatalf("inactive tip contains points")
	}
	ct.Show(Rect(5, 2, 25, 4), "hi", parent)
	if !ct.Contains(Point{X: 6, Y: 2}, parent) {
		t.Fatalf("interior point not contained")
	}
	if ct.Contains(Point{X: 4, Y: 2}, parent) {
		t.Fatalf("point left of tip contained")
	}
	ct.Hide()
	if ct.Contains(Point{X: 6, Y: 2}, parent) {
		t.Fatalf("hidden tip contains points")
	}
}
