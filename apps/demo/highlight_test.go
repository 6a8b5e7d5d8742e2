// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/demo/highlight_test.go
// Summary: Exercises syntax highlighting span extraction.
// Usage: Executed during `go test` to guard against regressions.

package demo

import "testing"

func TestHighlighterSpansStayInBounds(t *testing.T) {
	content := "package main\n\nfunc main() {}\n"
	hl := NewHighlighter("main.go", content, "native")

	line := "func main() {}"
	runes := len([]rune(line))
	prev := 0
	for _, span := range hl.Spans(line) {
		if span.Start < prev || span.End < span.Start || span.End > runes {
			t.Fatalf("span out of order or out of bounds: %+v", span)
		}
		prev = span.End
	}
}

func TestHighlighterKeywordColored(t *testing.T) {
	content := "package main\n\nfunc main() {}\n"
	hl := NewHighlighter("main.go", content, "native")

	spans := hl.Spans("func main() {}")
	if len(spans) == 0 {
		t.Fatalf("no spans for a Go keyword line")
	}
	if spans[0].Start != 0 {
		t.Fatalf("first span starts at %d, want 0 (the func keyword)", spans[0].Start)
	}
	if spans[0].Fore == hl.BaseFore() {
		t.Fatalf("keyword not distinguished from base color")
	}
}

func TestHighlighterPlainTextHasNoSpans(t *testing.T) {
	hl := NewHighlighter("notes.txt", "plain words only\n", "native")
	if spans := hl.Spans("plain words only"); len(spans) != 0 {
		t.Fatalf("plain text produced %d spans", len(spans))
	}
}

func TestHighlighterBaseFore(t *testing.T) {
	hl := NewHighlighter("main.go", "package main\n", "native")
	if hl.BaseFore() == 0 {
		t.Fatalf("base foreground is black/zero")
	}
}
