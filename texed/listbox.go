// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texed/listbox.go
// Summary: Autocompletion and user list overlay. Draws directly on the
// device over the widget's content; the widget repaints it after every
// refresh while it is active.

package texed

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// MaxListType is the largest registerable list item type.
const MaxListType = 31

// ListBoxEventType identifies a list delegate notification.
type ListBoxEventType int

const (
	ListSelectionChange ListBoxEventType = iota
	ListDoubleClick
)

// ListBoxEvent is passed to the list delegate on selection activity.
type ListBoxEvent struct {
	Type ListBoxEventType
}

// ListBoxDelegate receives list selection notifications.
type ListBoxDelegate interface {
	ListNotify(*ListBoxEvent)
}

// ListBox is the popup list used for autocompletion and user lists. Each
// item is stored with its one-glyph type prefix so rows render as
// "<glyph><text>" padded to the list width.
type ListBox struct {
	dev       Device
	theme     Theme
	win       *Window
	height    int
	width     int
	list      []string
	types     [MaxListType + 1]string
	selection int
	delegate  ListBoxDelegate
}

// NewListBox creates an empty list box drawing on dev.
func NewListBox(dev Device, theme Theme) *ListBox {
	lb := &ListBox{
		dev:    dev,
		theme:  theme,
		win:    NewWindow(0, 0, 1, 1),
		height: 5,
		width:  10,
	}
	lb.ClearTypeGlyphs()
	return lb
}

// Window returns the list's window for placement by the widget.
func (lb *ListBox) Window() *Window { return lb.win }

// SetDelegate sets the receiver of selection notifications.
func (lb *ListBox) SetDelegate(d ListBoxDelegate) { lb.delegate = d }

// SetVisibleRows sets the number of rows shown at once.
func (lb *ListBox) SetVisibleRows(rows int) {
	lb.height = rows
	lb.win.Bottom = lb.win.Top + lb.height - 1
}

// VisibleRows returns the number of rows shown at once.
func (lb *ListBox) VisibleRows() int { return lb.height }

// DesiredRect returns the size the list wants, as a rectangle at the origin.
func (lb *ListBox) DesiredRect() Rectangle {
	return Rect(0, 0, float64(lb.width), float64(lb.height))
}

// CaretFromEdge returns how far the list's left edge sits from the caret
// column, accounting for the type glyph column and border.
func (lb *ListBox) CaretFromEdge() int { return 2 }

// Clear removes all items.
func (lb *ListBox) Clear() {
	lb.list = lb.list[:0]
	lb.width = 0
}

// Append adds an item with the given type. The type's registered glyph is
// prepended for display; unregistered types show a space.
func (lb *ListBox) Append(s string, itemType int) {
	glyph := " "
	if itemType >= 0 && itemType <= MaxListType {
		glyph = lb.types[itemType]
	}
	lb.list = append(lb.list, glyph+s)
	if w := MeasureText(s) + 2; lb.width < w {
		lb.width = w
	}
	lb.win.Right = lb.win.Left + lb.width - 1
	lb.win.Bottom = lb.win.Top + lb.height - 1
}

// Length returns the number of items.
func (lb *ListBox) Length() int { return len(lb.list) }

// Selection returns the index of the selected item.
func (lb *ListBox) Selection() int { return lb.selection }

// Select makes n the selected item and repaints the list. The selection is
// kept centered when possible; near either end the visible range is pinned
// to the list bounds. Rows past the last item render blank.
func (lb *ListBox) Select(n int) {
	left := lb.win.Left
	top := lb.win.Top
	length := len(lb.list)
	start := n - lb.height/2
	if start+lb.height > length {
		start = length - lb.height
	}
	if start < 0 {
		start = 0
	}
	for i := start; i < start+lb.height; i++ {
		fore, back := lb.theme.ListFore, lb.theme.ListBack
		if i == n {
			fore, back = lb.theme.ListSelectedFore, lb.theme.ListSelectedBack
		}
		col := 0
		if i < length {
			item := lb.list[i]
			for _, r := range item {
				lb.dev.SetCell(left+col, top+i-start, r, fore, back)
				col += GraphemeWidth(string(r))
			}
		}
		for ; col < lb.width; col++ {
			lb.dev.SetCell(left+col, top+i-start, ' ', fore, back)
		}
	}
	lb.dev.Show()
	changed := lb.selection != n
	lb.selection = n
	if changed && lb.delegate != nil {
		lb.delegate.ListNotify(&ListBoxEvent{Type: ListSelectionChange})
	}
}

// NotifyDoubleClick tells the delegate a list item was double clicked.
func (lb *ListBox) NotifyDoubleClick() {
	if lb.delegate != nil {
		lb.delegate.ListNotify(&ListBoxEvent{Type: ListDoubleClick})
	}
}

// Find returns the index of the first item whose text starts with prefix,
// ignoring the type glyph, or -1.
func (lb *ListBox) Find(prefix string) int {
	for i, item := range lb.list {
		if strings.HasPrefix(stripTypeGlyph(item), prefix) {
			return i
		}
	}
	return -1
}

// Value returns the text of item n without its type glyph.
func (lb *ListBox) Value(n int) string {
	if n < 0 || n >= len(lb.list) {
		return ""
	}
	return stripTypeGlyph(lb.list[n])
}

func stripTypeGlyph(item string) string {
	_, size := utf8.DecodeRuneInString(item)
	return item[size:]
}

// RegisterTypeGlyph registers the first code point of glyph as the display
// prefix for items of the given type.
func (lb *ListBox) RegisterTypeGlyph(itemType int, glyph string) {
	if itemType < 0 || itemType > MaxListType || glyph == "" {
		return
	}
	_, size := utf8.DecodeRuneInString(glyph)
	lb.types[itemType] = glyph[:size]
}

// ClearTypeGlyphs resets every type's glyph back to a space.
func (lb *ListBox) ClearTypeGlyphs() {
	for i := range lb.types {
		lb.types[i] = " "
	}
}

// SetList replaces the items with those parsed from text. Items are split on
// separator; within an item, typesep separates the text from its numeric
// type ("word:2" with typesep ':' appends "word" as type 2).
func (lb *ListBox) SetList(text string, separator, typesep byte) {
	lb.Clear()
	if text == "" {
		return
	}
	for _, word := range strings.Split(text, string(separator)) {
		itemType := -1
		if i := strings.IndexByte(word, typesep); i >= 0 {
			if t, err := strconv.Atoi(word[i+1:]); err == nil {
				itemType = t
			}
			word = word[:i]
		}
		lb.Append(word, itemType)
	}
}
