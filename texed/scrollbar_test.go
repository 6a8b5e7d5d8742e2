// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texed/scrollbar_test.go
// Summary: Exercises scrollbar thumb projection math.
// Usage: Executed during `go test` to guard against regressions.

package texed

import "testing"

func TestVThumbPosition(t *testing.T) {
	if p := VThumbPosition(0, 10, 5, 14); p != 0 {
		t.Fatalf("top of document: %d, want 0", p)
	}
	if p := VThumbPosition(10, 10, 5, 14); p != 10 {
		t.Fatalf("bottom of document: %d, want 10", p)
	}
	if p := VThumbPosition(5, 0, 1, 14); p != 0 {
		t.Fatalf("degenerate document: %d, want 0", p)
	}
}

func TestHThumbPosition(t *testing.T) {
	if p := HThumbPosition(40, 80, 20); p != 10 {
		t.Fatalf("mid pan: %d, want 10", p)
	}
	if p := HThumbPosition(0, 0, 20); p != 0 {
		t.Fatalf("zero width: %d, want 0", p)
	}
}

func TestThumbLength(t *testing.T) {
	if l := ThumbLength(10, 20, 10); l != 5 {
		t.Fatalf("half page: %d, want 5", l)
	}
	if l := ThumbLength(1, 1000, 20); l != 1 {
		t.Fatalf("tiny page: %d, want minimum 1", l)
	}
	if l := ThumbLength(200, 100, 20); l != 20 {
		t.Fatalf("page larger than document: %d, want extent 20", l)
	}
	if l := ThumbLength(5, 0, 20); l != 1 {
		t.Fatalf("empty document: %d, want 1", l)
	}
}
