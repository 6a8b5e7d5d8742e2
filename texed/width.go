// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texed/width.go
// Summary: Terminal display width of UTF-8 code points and strings.

package texed

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// GraphemeWidth returns the number of columns used to display the first
// UTF-8 code point of s: 0 for combining marks, 2 for wide (CJK) characters
// and 1 otherwise. Malformed bytes and non-printable characters count as 1,
// matching what a terminal renders for them. Callers iterating a string must
// skip continuation bytes themselves and call this once per code point.
func GraphemeWidth(s string) int {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || (r == utf8.RuneError && size == 1) {
		return 1
	}
	if r < ' ' || (r >= 0x7F && r < 0xA0) {
		// Control characters, DEL and the C1 range have no printable form;
		// the terminal shows a replacement occupying one cell.
		return 1
	}
	return runewidth.RuneWidth(r)
}

// IsContinuationByte reports whether b is a UTF-8 trailing byte.
func IsContinuationByte(b byte) bool { return b&0xC0 == 0x80 }

// MeasureText returns the total number of columns needed to display s.
// The sum is additive: splitting s at any code point boundary and measuring
// the parts separately yields the same total.
func MeasureText(s string) int {
	width := 0
	for i := 0; i < len(s); i++ {
		if !IsContinuationByte(s[i]) {
			width += GraphemeWidth(s[i:])
		}
	}
	return width
}
