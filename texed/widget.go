// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texed/widget.go
// Summary: The widget controller. Owns the window, the drawing surface, the
// overlays and the scrollbars, and hosts the text-layout engine.

package texed

import (
	"log"
	"strings"
	"time"
)

// Widget ties a layout engine to a region of a terminal device. It owns all
// screen geometry; the engine only ever sees window-relative coordinates.
type Widget struct {
	dev    Device
	engine Engine
	theme  Theme
	notify func(Notification)

	win *Window
	sur *Surface

	// Size last given to the engine, to detect window changes on refresh.
	width  int
	height int

	listBox    *ListBox
	listActive bool
	callTip    *CallTip

	clipboard string
	status    Status

	vScrollVisible  bool
	hScrollVisible  bool
	scrollBarVPos   int
	scrollBarHeight int
	scrollBarHPos   int
	scrollBarWidth  int

	draggingVScrollBar bool
	draggingHScrollBar bool
	dragOffset         int

	autoCompleteLastClick time.Time
	hasFocus              bool
}

// New creates a widget covering the whole device and attaches the engine to
// it. notify receives engine and overlay notifications; it may be nil.
func New(dev Device, engine Engine, notify func(Notification)) *Widget {
	width, height := dev.Size()
	w := &Widget{
		dev:            dev,
		engine:         engine,
		theme:          DefaultTheme(),
		notify:         notify,
		win:            NewWindow(0, 0, width-1, height-1),
		width:          width,
		height:         height,
		vScrollVisible: true,
		hScrollVisible: true,
		hasFocus:       true,
	}
	w.sur = NewSurface(dev)
	w.sur.Init(w.win)
	w.listBox = NewListBox(dev, w.theme)
	w.callTip = NewCallTip(dev, w.theme)
	engine.Attach(w)
	engine.ChangeSize(w.win.Width(), w.win.Height())
	return w
}

// SetTheme replaces the chrome colors. Takes effect on the next refresh.
func (w *Widget) SetTheme(theme Theme) {
	w.theme = theme
	w.listBox.theme = theme
	w.callTip.theme = theme
}

// Window returns the widget's window.
func (w *Widget) Window() *Window { return w.win }

// ListBox returns the widget's list overlay.
func (w *Widget) ListBox() *ListBox { return w.listBox }

// Status returns the sticky error state.
func (w *Widget) Status() Status { return w.status }

// ResetStatus clears the sticky error state.
func (w *Widget) ResetStatus() { w.status = StatusOK }

// Refresh repaints the widget: engine content first, then scrollbars, then
// any active overlay on top, then the cursor.
func (w *Widget) Refresh() {
	rc := w.win.Bounds()
	if int(rc.Bottom) != w.height || int(rc.Right) != w.width {
		w.height = int(rc.Bottom)
		w.width = int(rc.Right)
		w.engine.ChangeSize(w.width, w.height)
	}
	w.engine.Paint(w.sur, rc)
	w.ModifyScrollBars(w.engine.MaxScrollPos()+w.engine.LinesOnScreen(), w.engine.LinesOnScreen())
	w.setVerticalScrollPos()
	w.setHorizontalScrollPos()
	w.dev.Show()
	if w.listActive {
		w.listBox.Select(w.listBox.Selection())
	} else if w.callTip.Active() {
		w.callTip.Redraw()
	}
	if w.hasFocus {
		w.updateCursor()
	}
}

// SendMessage forwards an engine-defined message. A panicking engine is
// contained here: the panic is logged, the sticky status is set and zero is
// returned.
func (w *Widget) SendMessage(msg Message, wParam uint64, lParam int64) (result int64) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("texed: message %d panicked: %v", msg, r)
			w.status = StatusFailure
			result = 0
		}
	}()
	return w.engine.HandleMessage(msg, wParam, lParam)
}

// Resize changes the widget's size, keeping its position, and repaints.
func (w *Widget) Resize(width, height int) {
	w.win.Resize(width, height)
	w.dev.Clear()
	w.Refresh()
}

// MovePos moves the widget's top-left corner and repaints.
func (w *Widget) MovePos(x, y int) {
	w.win.Move(x, y)
	w.dev.Clear()
	w.Refresh()
}

// SetFocus controls whether the widget shows the hardware cursor.
func (w *Widget) SetFocus(focus bool) {
	w.hasFocus = focus
	if !focus {
		w.dev.HideCursor()
	}
}

// Destroy releases the widget's overlays. The device is owned by the caller
// and stays open.
func (w *Widget) Destroy() {
	w.listActive = false
	w.callTip.Hide()
	w.dev.HideCursor()
}

// ClipboardText returns the widget's internal clipboard contents.
func (w *Widget) ClipboardText() string { return w.clipboard }

// Host interface.

func (w *Widget) Bounds() Rectangle { return w.win.Bounds() }

func (w *Widget) CopyToClipboard(text string) { w.clipboard = text }

func (w *Widget) Notify(n Notification) {
	if w.notify != nil {
		w.notify(n)
	}
}

func (w *Widget) AutoCompleteActive() bool { return w.listActive }

func (w *Widget) CallTipActive() bool { return w.callTip.Active() }

// ShowUserList fills the list overlay from items and shows it next to the
// caret. Items are separated by separator; typesep introduces a numeric item
// type whose registered glyph is displayed.
func (w *Widget) ShowUserList(items string, separator, typesep byte) {
	w.listBox.SetList(items, separator, typesep)
	w.showList()
}

// ShowAutoComplete shows the already-filled list overlay next to the caret.
// The engine appends items itself before calling this.
func (w *Widget) ShowAutoComplete() { w.showList() }

func (w *Widget) showList() {
	if w.listBox.Length() == 0 {
		return
	}
	rows := w.listBox.Length()
	if rows > 10 {
		rows = 10
	}
	w.listBox.SetVisibleRows(rows)
	caret := w.engine.CaretPoint()
	d := w.listBox.DesiredRect()
	x := float64(caret.X - w.listBox.CaretFromEdge())
	y := float64(caret.Y + 1)
	w.listBox.Window().PlaceWithin(Rect(x, y, x+d.Width(), y+d.Height()), w.win)
	w.listActive = true
	w.listBox.Select(0)
}

// CancelAutoComplete dismisses the list overlay and repaints the content
// underneath it.
func (w *Widget) CancelAutoComplete() {
	if !w.listActive {
		return
	}
	w.listActive = false
	w.Refresh()
}

// ShowCallTip shows text in a call tip below the caret.
func (w *Widget) ShowCallTip(text string) {
	caret := w.engine.CaretPoint()
	lines := strings.Split(text, "\n")
	width := 0
	for _, line := range lines {
		if lw := MeasureText(line) + 2; lw > width {
			width = lw
		}
	}
	x := float64(caret.X)
	y := float64(caret.Y + 1)
	w.callTip.Show(Rect(x, y, x+float64(width), y+float64(len(lines))), text, w.win)
}

// CancelCallTip dismisses the call tip and repaints the content underneath.
func (w *Widget) CancelCallTip() {
	if !w.callTip.Active() {
		return
	}
	w.callTip.Hide()
	w.Refresh()
}

// ModifyScrollBars sizes the scrollbar thumbs for a document of nMax lines
// showing nPage lines per screen.
func (w *Widget) ModifyScrollBars(nMax, nPage int) {
	w.scrollBarHeight = ThumbLength(nPage, nMax, w.win.Height())
	w.scrollBarWidth = ThumbLength(w.win.Width(), w.engine.ScrollWidth(), w.win.Width())
}

// SetScrollBarsVisible controls whether the scrollbars are drawn and whether
// the scrollbar columns respond to clicks.
func (w *Widget) SetScrollBarsVisible(vertical, horizontal bool) {
	w.vScrollVisible = vertical
	w.hScrollVisible = horizontal
}

func (w *Widget) setVerticalScrollPos() {
	if !w.vScrollVisible {
		return
	}
	maxy := w.win.Height()
	col := w.win.Left + w.win.Width() - 1
	for i := 0; i < maxy; i++ {
		w.dev.SetCell(col, w.win.Top+i, ' ', w.theme.ScrollGutter, w.theme.ScrollGutter)
	}
	w.scrollBarVPos = VThumbPosition(
		w.engine.TopLine(), w.engine.MaxScrollPos(), w.engine.LinesOnScreen(), maxy)
	for i := w.scrollBarVPos; i < w.scrollBarVPos+w.scrollBarHeight && i < maxy; i++ {
		w.dev.SetCell(col, w.win.Top+i, ' ', w.theme.ScrollThumb, w.theme.ScrollThumb)
	}
}

func (w *Widget) setHorizontalScrollPos() {
	if !w.hScrollVisible {
		return
	}
	maxx := w.win.Width()
	row := w.win.Top + w.win.Height() - 1
	for i := 0; i < maxx; i++ {
		w.dev.SetCell(w.win.Left+i, row, ' ', w.theme.ScrollGutter, w.theme.ScrollGutter)
	}
	w.scrollBarHPos = HThumbPosition(w.engine.XOffset(), w.engine.ScrollWidth(), maxx)
	for i := w.scrollBarHPos; i < w.scrollBarHPos+w.scrollBarWidth && i < maxx; i++ {
		w.dev.SetCell(w.win.Left+i, row, ' ', w.theme.ScrollThumb, w.theme.ScrollThumb)
	}
}

// updateCursor places the hardware cursor at the caret even when it is not
// visible on screen, as the container may have a use for it.
func (w *Widget) updateCursor() {
	p := w.engine.CaretPoint()
	w.dev.SetCursor(w.win.Left+p.X, w.win.Top+p.Y)
	w.dev.Show()
}
