// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/demo/app.go
// Summary: A small text editor engine hosted by the texed widget. Line
// buffer, caret, margin with bookmarks, syntax highlighting and word
// completion.

package demo

import (
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/framegrace/texedit/texed"
)

// Engine-defined messages serviced by HandleMessage.
const (
	MsgLineCount texed.Message = iota + 1
	MsgCaretLine
	MsgCaretColumn
	MsgGoToLine
	MsgBookmarkCount
)

const (
	bodyBack     = texed.Color(0x181818)
	marginBack   = texed.Color(0x202020)
	marginFore   = texed.Color(0x585858)
	bookmarkFore = texed.Color(0x7CAFC2)
)

// App is the demo editor engine.
type App struct {
	host texed.Host
	path string

	lines     []string
	caretLine int
	caretCol  int // rune index within the caret line
	top       int
	xOff      int

	width  int
	height int

	bookmarks map[int]bool
	capture   bool
	tabWidth  int

	hl *Highlighter
}

// NewApp creates an engine editing content, highlighted according to the
// file name and styleName.
func NewApp(path, content, styleName string) *App {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 {
		lines = []string{""}
	}
	return &App{
		path:      path,
		lines:     lines,
		bookmarks: make(map[int]bool),
		tabWidth:  4,
		hl:        NewHighlighter(path, content, styleName),
	}
}

// SetTabWidth sets how many spaces the tab key inserts.
func (a *App) SetTabWidth(width int) {
	if width < 1 {
		width = 1
	}
	a.tabWidth = width
}

func (a *App) Attach(host texed.Host) { a.host = host }

func (a *App) ChangeSize(width, height int) {
	a.width = width
	a.height = height
}

func (a *App) marginWidth() int {
	return len(strconv.Itoa(len(a.lines))) + 2
}

// Paint draws the visible lines: row backgrounds, highlighted text behind a
// clip protecting the margin, then the margin with bookmarks and numbers.
func (a *App) Paint(sur *texed.Surface, rc texed.Rectangle) {
	sur.FillRectangle(rc, bodyBack)
	margin := a.marginWidth()

	sur.SetClip(texed.Rect(float64(margin), 0, float64(a.width), float64(a.height)))
	for row := 0; row < a.height; row++ {
		idx := a.top + row
		if idx >= len(a.lines) {
			break
		}
		a.paintLine(sur, row, idx, margin)
	}
	sur.PopClip()

	for row := 0; row < a.height; row++ {
		idx := a.top + row
		rowRect := texed.Rect(0, float64(row), float64(margin), float64(row+1))
		if idx >= len(a.lines) {
			sur.FillRectangle(rowRect, bodyBack)
			continue
		}
		sur.FillRectangle(rowRect, marginBack)
		if a.bookmarks[idx] {
			sur.DrawMarker(rowRect, texed.MarkerDescriptor{
				Type: texed.MarkerBookmark,
				Fore: bookmarkFore,
				Back: marginBack,
			})
		}
		num := strconv.Itoa(idx + 1)
		numRect := texed.Rect(float64(margin-1-len(num)), float64(row),
			float64(margin-1), float64(row+1))
		sur.DrawTextTransparent(numRect, num, marginFore)
	}
}

func (a *App) paintLine(sur *texed.Surface, row, idx, margin int) {
	line := a.lines[idx]
	runes := []rune(line)
	left := float64(margin - a.xOff)
	rowRect := func(from, to int) texed.Rectangle {
		fromX := left + float64(texed.MeasureText(string(runes[:from])))
		toX := left + float64(texed.MeasureText(string(runes[:to])))
		return texed.Rect(fromX, float64(row), toX, float64(row+1))
	}

	pos := 0
	for _, span := range a.hl.Spans(line) {
		if span.Start > pos {
			sur.DrawText(rowRect(pos, span.Start), string(runes[pos:span.Start]),
				a.hl.BaseFore(), bodyBack)
		}
		sur.DrawText(rowRect(span.Start, span.End), string(runes[span.Start:span.End]),
			span.Fore, bodyBack)
		pos = span.End
	}
	if pos < len(runes) {
		sur.DrawText(rowRect(pos, len(runes)), string(runes[pos:]),
			a.hl.BaseFore(), bodyBack)
	}
}

// KeyDown handles navigation and editing keys. Unconsumed keys return false
// so the widget can fall back to insertion or notification.
func (a *App) KeyDown(key texed.Key, ch rune, mod texed.Modifiers) bool {
	if mod.Has(texed.ModCtrl) && key == texed.KeyRune {
		switch ch {
		case 's':
			a.SaveFile()
			return true
		case 'b':
			a.ToggleBookmark(a.caretLine)
			return true
		}
		return false
	}
	switch key {
	case texed.KeyUp:
		a.moveCaret(a.caretLine-1, a.caretCol)
	case texed.KeyDown:
		a.moveCaret(a.caretLine+1, a.caretCol)
	case texed.KeyLeft:
		if a.caretCol > 0 {
			a.moveCaret(a.caretLine, a.caretCol-1)
		} else if a.caretLine > 0 {
			a.moveCaret(a.caretLine-1, len([]rune(a.lines[a.caretLine-1])))
		}
	case texed.KeyRight:
		if a.caretCol < len([]rune(a.lines[a.caretLine])) {
			a.moveCaret(a.caretLine, a.caretCol+1)
		} else if a.caretLine < len(a.lines)-1 {
			a.moveCaret(a.caretLine+1, 0)
		}
	case texed.KeyPageUp:
		a.moveCaret(a.caretLine-a.LinesOnScreen(), a.caretCol)
	case texed.KeyPageDown:
		a.moveCaret(a.caretLine+a.LinesOnScreen(), a.caretCol)
	case texed.KeyHome:
		a.moveCaret(a.caretLine, 0)
	case texed.KeyEnd:
		a.moveCaret(a.caretLine, len([]rune(a.lines[a.caretLine])))
	case texed.KeyEnter:
		a.splitLine()
	case texed.KeyBackspace:
		a.backspace()
	case texed.KeyDelete:
		a.deleteForward()
	case texed.KeyTab:
		a.InsertCharacter(strings.Repeat(" ", a.tabWidth))
	default:
		return false
	}
	return true
}

// InsertCharacter inserts typed text at the caret.
func (a *App) InsertCharacter(s string) {
	runes := []rune(a.lines[a.caretLine])
	out := make([]rune, 0, len(runes)+len(s))
	out = append(out, runes[:a.caretCol]...)
	out = append(out, []rune(s)...)
	out = append(out, runes[a.caretCol:]...)
	a.lines[a.caretLine] = string(out)
	a.caretCol += len([]rune(s))
	a.ensureCaretVisible()
}

func (a *App) splitLine() {
	runes := []rune(a.lines[a.caretLine])
	head, tail := string(runes[:a.caretCol]), string(runes[a.caretCol:])
	a.lines[a.caretLine] = head
	rest := append([]string{tail}, a.lines[a.caretLine+1:]...)
	a.lines = append(a.lines[:a.caretLine+1], rest...)
	a.caretLine++
	a.caretCol = 0
	a.ensureCaretVisible()
}

func (a *App) backspace() {
	if a.caretCol > 0 {
		runes := []rune(a.lines[a.caretLine])
		a.lines[a.caretLine] = string(append(runes[:a.caretCol-1:a.caretCol-1], runes[a.caretCol:]...))
		a.caretCol--
	} else if a.caretLine > 0 {
		prev := a.lines[a.caretLine-1]
		a.caretCol = len([]rune(prev))
		a.lines[a.caretLine-1] = prev + a.lines[a.caretLine]
		a.lines = append(a.lines[:a.caretLine], a.lines[a.caretLine+1:]...)
		a.caretLine--
	}
	a.ensureCaretVisible()
}

func (a *App) deleteForward() {
	runes := []rune(a.lines[a.caretLine])
	if a.caretCol < len(runes) {
		a.lines[a.caretLine] = string(append(runes[:a.caretCol:a.caretCol], runes[a.caretCol+1:]...))
	} else if a.caretLine < len(a.lines)-1 {
		a.lines[a.caretLine] += a.lines[a.caretLine+1]
		a.lines = append(a.lines[:a.caretLine+1], a.lines[a.caretLine+2:]...)
	}
}

func (a *App) moveCaret(line, col int) {
	if line < 0 {
		line = 0
	}
	if line > len(a.lines)-1 {
		line = len(a.lines) - 1
	}
	runes := []rune(a.lines[line])
	if col > len(runes) {
		col = len(runes)
	}
	if col < 0 {
		col = 0
	}
	a.caretLine = line
	a.caretCol = col
	a.ensureCaretVisible()
}

func (a *App) ensureCaretVisible() {
	if a.caretLine < a.top {
		a.top = a.caretLine
	}
	if lines := a.LinesOnScreen(); a.caretLine >= a.top+lines {
		a.top = a.caretLine - lines + 1
	}
	cell := a.caretCellX()
	body := a.width - a.marginWidth() - 1
	if body < 1 {
		body = 1
	}
	if cell < a.xOff {
		a.xOff = cell
	}
	if cell >= a.xOff+body {
		a.xOff = cell - body + 1
	}
}

func (a *App) caretCellX() int {
	runes := []rune(a.lines[a.caretLine])
	return texed.MeasureText(string(runes[:a.caretCol]))
}

// Mouse handling.

func (a *App) ButtonDown(p texed.Point, when time.Time, mod texed.Modifiers) {
	a.caretFromPoint(p)
	a.capture = true
}

func (a *App) ButtonMove(p texed.Point) {
	if a.capture {
		a.caretFromPoint(p)
	}
}

func (a *App) ButtonUp(p texed.Point, when time.Time, ctrl bool) {
	a.capture = false
}

func (a *App) HaveMouseCapture() bool { return a.capture }

func (a *App) caretFromPoint(p texed.Point) {
	line := a.top + p.Y
	if line < 0 {
		line = 0
	}
	if line > len(a.lines)-1 {
		line = len(a.lines) - 1
	}
	target := p.X - a.marginWidth() + a.xOff
	runes := []rune(a.lines[line])
	col := 0
	cell := 0
	for col < len(runes) && cell < target {
		cell += texed.GraphemeWidth(string(runes[col]))
		col++
	}
	a.caretLine = line
	a.caretCol = col
}

// Scroll state.

func (a *App) TopLine() int { return a.top }

func (a *App) MaxScrollPos() int {
	max := len(a.lines) - a.LinesOnScreen()
	if max < 0 {
		max = 0
	}
	return max
}

func (a *App) LinesOnScreen() int {
	if a.height < 1 {
		return 1
	}
	return a.height
}

func (a *App) ScrollWidth() int {
	width := a.width
	for _, line := range a.lines {
		if w := texed.MeasureText(line) + a.marginWidth(); w > width {
			width = w
		}
	}
	return width
}

func (a *App) XOffset() int { return a.xOff }

func (a *App) ScrollTo(line int) {
	if line > a.MaxScrollPos() {
		line = a.MaxScrollPos()
	}
	if line < 0 {
		line = 0
	}
	a.top = line
}

func (a *App) HorizontalScrollTo(xOffset int) {
	if xOffset < 0 {
		xOffset = 0
	}
	a.xOff = xOffset
}

func (a *App) CaretPoint() texed.Point {
	return texed.Point{
		X: a.marginWidth() + a.caretCellX() - a.xOff,
		Y: a.caretLine - a.top,
	}
}

func (a *App) CallTipClick(p texed.Point) {}

func (a *App) HandleMessage(msg texed.Message, wParam uint64, lParam int64) int64 {
	switch msg {
	case MsgLineCount:
		return int64(len(a.lines))
	case MsgCaretLine:
		return int64(a.caretLine)
	case MsgCaretColumn:
		return int64(a.caretCol)
	case MsgGoToLine:
		a.moveCaret(int(wParam), 0)
		return 0
	case MsgBookmarkCount:
		return int64(len(a.bookmarks))
	}
	return 0
}

// Editing state accessors.

// Caret returns the caret line and column plus the top visible line.
func (a *App) Caret() (line, col, top int) { return a.caretLine, a.caretCol, a.top }

// SetCaret positions the caret and scroll top, clamping to the buffer.
func (a *App) SetCaret(line, col, top int) {
	a.moveCaret(line, col)
	a.ScrollTo(top)
}

// ToggleBookmark flips the bookmark on a line.
func (a *App) ToggleBookmark(line int) {
	if a.bookmarks[line] {
		delete(a.bookmarks, line)
	} else {
		a.bookmarks[line] = true
	}
}

// Content returns the buffer as one string.
func (a *App) Content() string { return strings.Join(a.lines, "\n") }

// Path returns the file being edited.
func (a *App) Path() string { return a.path }

// SaveFile writes the buffer back to its file.
func (a *App) SaveFile() error {
	return os.WriteFile(a.path, []byte(a.Content()), 0644)
}

// Word completion.

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// WordPrefix returns the identifier characters immediately before the caret.
func (a *App) WordPrefix() string {
	runes := []rune(a.lines[a.caretLine])
	start := a.caretCol
	for start > 0 && isWordRune(runes[start-1]) {
		start--
	}
	return string(runes[start:a.caretCol])
}

// CompletionList returns the buffer's identifiers starting with prefix as a
// space-separated list suitable for the widget's user list.
func (a *App) CompletionList(prefix string) string {
	seen := make(map[string]bool)
	for _, line := range a.lines {
		for _, word := range strings.FieldsFunc(line, func(r rune) bool {
			return !isWordRune(r)
		}) {
			if word != prefix && strings.HasPrefix(word, prefix) {
				seen[word] = true
			}
		}
	}
	words := make([]string, 0, len(seen))
	for word := range seen {
		words = append(words, word)
	}
	sort.Strings(words)
	return strings.Join(words, " ")
}

// InsertCompletion replaces the word prefix before the caret with word.
func (a *App) InsertCompletion(word string) {
	prefix := a.WordPrefix()
	runes := []rune(a.lines[a.caretLine])
	start := a.caretCol - len([]rune(prefix))
	out := make([]rune, 0, len(runes)+len(word))
	out = append(out, runes[:start]...)
	out = append(out, []rune(word)...)
	out = append(out, runes[a.caretCol:]...)
	a.lines[a.caretLine] = string(out)
	a.caretCol = start + len([]rune(word))
	a.ensureCaretVisible()
}
