// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texed/surface_test.go
// Summary: Exercises rectangle fills, text runs, clipping and transparent
// draws against the in-memory device.
// Usage: Executed during `go test` to guard against regressions.

package texed

import (
	"strings"
	"testing"
)

func newTestSurface(devW, devH, winW, winH int) (*MemDevice, *Surface) {
	dev := NewMemDevice(devW, devH)
	sur := NewSurface(dev)
	sur.Init(NewWindow(0, 0, winW-1, winH-1))
	return dev, sur
}

func TestFillRectangleStaysInsideWindow(t *testing.T) {
	dev, sur := newTestSurface(20, 5, 10, 5)
	red := RGB(0xFF, 0, 0)
	sur.FillRectangle(Rect(8, 0, 15, 1), red)

	for x := 0; x < 20; x++ {
		_, _, bg := dev.CellAt(x, 0)
		want := Black
		if x == 8 || x == 9 {
			want = red
		}
		if bg != want {
			t.Fatalf("cell %d bg = %06x, want %06x", x, bg, want)
		}
	}
}

func TestFillRectangleClampsNegativeEdges(t *testing.T) {
	dev, sur := newTestSurface(10, 5, 10, 5)
	blue := RGB(0, 0, 0xFF)
	sur.FillRectangle(Rect(-2, -1, 3, 2), blue)

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if _, _, bg := dev.CellAt(x, y); bg != blue {
				t.Fatalf("cell (%d,%d) not filled", x, y)
			}
		}
	}
	if _, _, bg := dev.CellAt(3, 0); bg != Black {
		t.Fatalf("fill spilled right")
	}
	if _, _, bg := dev.CellAt(0, 2); bg != Black {
		t.Fatalf("fill spilled down")
	}
}

func TestFillRectanglePattern(t *testing.T) {
	dev, sur := newTestSurface(10, 2, 10, 2)
	green := RGB(0, 0xFF, 0)
	pm := sur.AllocatePixMap(1, 1)
	pm.FillRectangle(Rect(0, 0, 1, 1), green)

	sur.FillRectanglePattern(Rect(0, 0, 2, 1), pm)
	if _, _, bg := dev.CellAt(0, 0); bg != green {
		t.Fatalf("pattern fill bg = %06x, want %06x", bg, green)
	}

	sur.FillRectanglePattern(Rect(0, 1, 2, 2), nil)
	if _, _, bg := dev.CellAt(0, 1); bg != Black {
		t.Fatalf("nil pattern fill bg = %06x, want black", bg)
	}
}

func TestDrawTextBasic(t *testing.T) {
	dev := NewMemDevice(20, 5)
	sur := NewSurface(dev)
	sur.Init(NewWindow(2, 1, 15, 3))
	sur.DrawText(Rect(0, 0, 10, 1), "hello", White, Black)

	for i, want := range "hello" {
		if ch, _, _ := dev.CellAt(2+i, 1); ch != want {
			t.Fatalf("cell %d = %q, want %q", i, ch, want)
		}
	}
}

func TestDrawTextTruncatesAtRightEdge(t *testing.T) {
	dev, sur := newTestSurface(10, 2, 5, 2)
	sur.DrawText(Rect(0, 0, 10, 1), "abcdefg", White, Black)
	if got := strings.TrimRight(dev.Row(0), " "); got != "abcde" {
		t.Fatalf("row = %q, want \"abcde\"", got)
	}
}

func TestDrawTextWideGlyphAdvancesTwoColumns(t *testing.T) {
	dev, sur := newTestSurface(10, 2, 10, 2)
	sur.DrawText(Rect(0, 0, 10, 1), "a世b", White, Black)
	if ch, _, _ := dev.CellAt(0, 0); ch != 'a' {
		t.Fatalf("cell 0 = %q", ch)
	}
	if ch, _, _ := dev.CellAt(1, 0); ch != '世' {
		t.Fatalf("cell 1 = %q", ch)
	}
	if ch, _, _ := dev.CellAt(2, 0); ch != ' ' {
		t.Fatalf("shadow cell written: %q", ch)
	}
	if ch, _, _ := dev.CellAt(3, 0); ch != 'b' {
		t.Fatalf("cell 3 = %q", ch)
	}
}

func TestDrawTextLeftClip(t *testing.T) {
	dev, sur := newTestSurface(20, 2, 20, 2)
	sur.SetClip(Rect(4, 0, 20, 1))
	sur.DrawText(Rect(0, 0, 20, 1), "abcdef", White, Black)

	if ch, _, _ := dev.CellAt(3, 0); ch != ' ' {
		t.Fatalf("clipped column written: %q", ch)
	}
	if ch, _, _ := dev.CellAt(4, 0); ch != 'e' {
		t.Fatalf("cell 4 = %q, want 'e'", ch)
	}
	if ch, _, _ := dev.CellAt(5, 0); ch != 'f' {
		t.Fatalf("cell 5 = %q, want 'f'", ch)
	}
}

func TestDrawTextLeftClipDropsStraddlingWideGlyph(t *testing.T) {
	dev, sur := newTestSurface(20, 2, 20, 2)
	sur.SetClip(Rect(4, 0, 20, 1))
	// 世 spans columns 3-4, straddling the clip edge: dropped whole, the
	// run resumes one column past the boundary.
	sur.DrawText(Rect(0, 0, 20, 1), "abc世ef", White, Black)

	if ch, _, _ := dev.CellAt(4, 0); ch != ' ' {
		t.Fatalf("cell 4 = %q, want blank", ch)
	}
	if ch, _, _ := dev.CellAt(5, 0); ch != 'e' {
		t.Fatalf("cell 5 = %q, want 'e'", ch)
	}
}

func TestPopClipRestoresFullRun(t *testing.T) {
	dev, sur := newTestSurface(20, 2, 20, 2)
	sur.SetClip(Rect(4, 0, 20, 1))
	sur.PopClip()
	sur.DrawText(Rect(0, 0, 20, 1), "abc", White, Black)
	if ch, _, _ := dev.CellAt(0, 0); ch != 'a' {
		t.Fatalf("cell 0 = %q after PopClip", ch)
	}
}

func TestDrawTextClippedShiftsTextBlob(t *testing.T) {
	dev, sur := newTestSurface(10, 5, 10, 5)
	sur.DrawTextClipped(Rect(6, 2, 6, 3), "*", White, Black)
	if ch, _, _ := dev.CellAt(4, 1); ch != '*' {
		t.Fatalf("blob not shifted: cell (4,1) = %q", ch)
	}
}

func TestDrawTextTransparentSamplesBackground(t *testing.T) {
	dev, sur := newTestSurface(10, 3, 10, 3)
	blue := RGB(0, 0, 0xFF)
	sur.FillRectangle(Rect(0, 0, 10, 1), blue)
	sur.DrawTextTransparent(Rect(2, 0, 10, 1), "hi", White)

	ch, _, bg := dev.CellAt(2, 0)
	if ch != 'h' || bg != blue {
		t.Fatalf("cell = %q bg %06x, want 'h' on %06x", ch, bg, blue)
	}
}

func TestDrawTextTransparentBelowWindow(t *testing.T) {
	dev, sur := newTestSurface(10, 5, 10, 3)
	sur.DrawTextTransparent(Rect(0, 3, 10, 4), "x", White)
	if ch, _, _ := dev.CellAt(0, 3); ch != ' ' {
		t.Fatalf("draw below window height wrote %q", ch)
	}
}

func TestMeasureWidths(t *testing.T) {
	_, sur := newTestSurface(1, 1, 1, 1)
	text := "a世b"
	positions := make([]int, len(text))
	sur.MeasureWidths(text, positions)
	want := []int{1, 3, 3, 3, 4}
	for i, p := range positions {
		if p != want[i] {
			t.Fatalf("positions[%d] = %d, want %d", i, p, want[i])
		}
	}
}

func TestPolygonDrawsArrowGlyphs(t *testing.T) {
	dev, sur := newTestSurface(10, 5, 10, 5)
	sur.Polygon([]Point{{X: 5, Y: 1}, {X: 7, Y: 3}}, White)
	if ch, _, _ := dev.CellAt(5, 1); ch != '▲' {
		t.Fatalf("upward polygon = %q, want ▲", ch)
	}

	sur.Polygon([]Point{{X: 5, Y: 3}, {X: 7, Y: 1}}, White)
	if ch, _, _ := dev.CellAt(5, 1); ch != '▼' {
		t.Fatalf("downward polygon = %q, want ▼", ch)
	}
}
