// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texed/scrollbar.go
// Summary: Proportional projection of document scroll state onto one-cell
// scrollbar tracks.

package texed

// VThumbPosition returns the top cell of the vertical scrollbar thumb for a
// document scrolled to topLine, projected onto a track of extent cells.
func VThumbPosition(topLine, maxScrollPos, linesOnScreen, extent int) int {
	denom := maxScrollPos + linesOnScreen - 1
	if denom <= 0 {
		return 0
	}
	return int(float64(topLine) / float64(denom) * float64(extent))
}

// HThumbPosition returns the left cell of the horizontal scrollbar thumb for
// a view panned to xOffset of scrollWidth total columns.
func HThumbPosition(xOffset, scrollWidth, extent int) int {
	if scrollWidth <= 0 {
		return 0
	}
	return int(float64(xOffset) / float64(scrollWidth) * float64(extent))
}

// ThumbLength returns the thumb size in cells for a view showing page of max
// total units on a track of extent cells. Always at least one cell so the
// thumb stays visible, and never longer than the track.
func ThumbLength(page, max, extent int) int {
	if max <= 0 || extent <= 0 {
		return 1
	}
	length := int(float64(page)/float64(max)*float64(extent) + 0.5)
	if length < 1 {
		length = 1
	}
	if length > extent {
		length = extent
	}
	return length
}
