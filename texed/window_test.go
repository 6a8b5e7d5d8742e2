// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texed/window_test.go
// Summary: Exercises cell window geometry and overlay placement clamping.
// Usage: Executed during `go test` to guard against regressions.

package texed

import "testing"

func TestWindowDimensions(t *testing.T) {
	w := NewWindow(2, 3, 11, 7)
	if w.Width() != 10 || w.Height() != 5 {
		t.Fatalf("got %dx%d, want 10x5", w.Width(), w.Height())
	}
	b := w.Bounds()
	if b.Left != 0 || b.Top != 0 || b.Right != 10 || b.Bottom != 5 {
		t.Fatalf("bounds = %+v, want origin-relative 10x5", b)
	}
}

func TestWindowMovePreservesSize(t *testing.T) {
	w := NewWindow(2, 3, 11, 7)
	w.Move(20, 10)
	if w.Left != 20 || w.Top != 10 {
		t.Fatalf("moved to (%d,%d), want (20,10)", w.Left, w.Top)
	}
	if w.Width() != 10 || w.Height() != 5 {
		t.Fatalf("size changed to %dx%d", w.Width(), w.Height())
	}
}

func TestWindowResizeKeepsPosition(t *testing.T) {
	w := NewWindow(5, 5, 10, 10)
	w.Resize(20, 8)
	if w.Left != 5 || w.Top != 5 {
		t.Fatalf("position changed to (%d,%d)", w.Left, w.Top)
	}
	if w.Width() != 20 || w.Height() != 8 {
		t.Fatalf("got %dx%d, want 20x8", w.Width(), w.Height())
	}
}

func TestPlaceWithinInterior(t *testing.T) {
	parent := NewWindow(0, 0, 79, 23)
	w := NewWindow(0, 0, 9, 5)
	w.PlaceWithin(Rect(10, 5, 20, 11), parent)
	if w.Left != 10 || w.Top != 5 {
		t.Fatalf("placed at (%d,%d), want (10,5)", w.Left, w.Top)
	}
}

func TestPlaceWithinClampsRightEdge(t *testing.T) {
	parent := NewWindow(0, 0, 79, 23)
	w := NewWindow(0, 0, 9, 5)
	w.PlaceWithin(Rect(75, 5, 85, 11), parent)
	if w.Left != 70 {
		t.Fatalf("left = %d, want 70", w.Left)
	}
}

func TestPlaceWithinClampsBottomEdge(t *testing.T) {
	parent := NewWindow(0, 0, 79, 23)
	w := NewWindow(0, 0, 9, 5)
	w.PlaceWithin(Rect(10, 21, 20, 27), parent)
	if w.Top != 18 {
		t.Fatalf("top = %d, want 18", w.Top)
	}
}

func TestPlaceWithinNegativeOrigin(t *testing.T) {
	parent := NewWindow(5, 2, 60, 20)
	w := NewWindow(0, 0, 9, 5)
	w.PlaceWithin(Rect(-3, -1, 7, 5), parent)
	if w.Left != 5 || w.Top != 2 {
		t.Fatalf("placed at (%d,%d), want parent origin (5,2)", w.Left, w.Top)
	}
}

func TestPlaceWithinSingleRowParent(t *testing.T) {
	parent := NewWindow(0, 10, 79, 10)
	w := NewWindow(0, 0, 9, 1)
	w.PlaceWithin(Rect(4, 0, 14, 2), parent)
	if w.Top != 8 {
		t.Fatalf("top = %d, want 8 (above the parent row)", w.Top)
	}
}
