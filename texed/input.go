// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texed/input.go
// Summary: Translates device key and mouse events into engine calls,
// routing mouse presses through the overlay and scrollbar priority chain.

package texed

import "time"

// DoubleClickTime is the longest gap between two clicks still counted as a
// double click.
const DoubleClickTime = 500 * time.Millisecond

// SendKey offers a key to the engine. Unconsumed plain characters are
// inserted at the caret; other unconsumed keys are reported to the embedder
// through the notification callback.
func (w *Widget) SendKey(key Key, ch rune, mod Modifiers) {
	if w.engine.KeyDown(key, ch, mod) {
		return
	}
	if mod == 0 && key == KeyRune && ch != 0 {
		w.engine.InsertCharacter(string(ch))
		return
	}
	w.Notify(Notification{Code: NotifyKey, Key: key, Rune: ch, Mod: mod})
}

// SendMouse dispatches a mouse event given in absolute terminal coordinates.
// Events outside the widget's window are rejected, except wheel events and
// in-progress drags. Returns whether the event was handled.
func (w *Widget) SendMouse(ev Event) bool {
	outside := ev.X < w.win.Left || ev.X > w.win.Right ||
		ev.Y < w.win.Top || ev.Y > w.win.Bottom
	if outside && ev.Button != WheelUp && ev.Button != WheelDown && ev.Mouse != MouseDrag {
		return false
	}
	x := ev.X - w.win.Left
	y := ev.Y - w.win.Top
	switch ev.Mouse {
	case MousePress:
		return w.mousePress(ev.Button, ev.When, y, x, ev.Mod)
	case MouseDrag:
		return w.mouseMove(y, x)
	case MouseRelease:
		w.mouseRelease(ev.When, y, x, ev.Mod.Has(ModCtrl))
		return true
	}
	return false
}

// mousePress handles a button press at window-relative (x, y). Priority
// order: active list overlay, call tip, vertical scrollbar, horizontal
// scrollbar, then the engine.
func (w *Widget) mousePress(button MouseButton, when time.Time, y, x int, mod Modifiers) bool {
	if w.listActive && (button == ButtonLeft || button == WheelUp || button == WheelDown) {
		lw := w.listBox.Window()
		begy := lw.Top - w.win.Top
		begx := lw.Left - w.win.Left
		maxy := lw.Height() - 1
		maxx := lw.Width() - 1
		ry := y - begy
		rx := x - begx
		if ry > 0 && ry < maxy && rx > 0 && rx < maxx {
			if button == ButtonLeft {
				// The selected item is normally displayed in the middle row.
				middle := w.listBox.VisibleRows() / 2
				n := w.listBox.Selection()
				ny := middle
				if n < middle {
					ny = n // near the beginning
				} else if n >= w.listBox.Length()-middle {
					ny = (n - 1) % w.listBox.VisibleRows() // near the end
				}
				offset := ry - ny - 1 // ignore the list box border
				if offset == 0 && when.Sub(w.autoCompleteLastClick) < DoubleClickTime {
					w.listBox.NotifyDoubleClick()
					w.Notify(Notification{Code: NotifyDoubleClick, Position: Point{X: x, Y: y}})
				} else {
					target := n + offset
					if target < 0 {
						target = 0
					}
					if target >= w.listBox.Length() {
						target = w.listBox.Length() - 1
					}
					w.listBox.Select(target)
				}
				w.autoCompleteLastClick = when
			} else {
				n := w.listBox.Selection()
				if button == WheelUp && n > 0 {
					w.listBox.Select(n - 1)
				} else if button == WheelDown && n < w.listBox.Length()-1 {
					w.listBox.Select(n + 1)
				}
			}
			return true
		} else if ry == 0 || ry == maxy || rx == 0 || rx == maxx {
			return true // swallow border clicks
		}
	} else if w.callTip.Active() && button == ButtonLeft {
		if w.callTip.Contains(Point{X: x, Y: y}, w.win) {
			cw := w.callTip.Window()
			rel := Point{
				X: x - (cw.Left - w.win.Left),
				Y: y - (cw.Top - w.win.Top),
			}
			w.engine.CallTipClick(rel)
			w.Notify(Notification{Code: NotifyCallTipClick, Position: rel})
			return true
		}
	}

	switch button {
	case ButtonLeft:
		if w.vScrollVisible && x == w.win.Width()-1 {
			if y < w.scrollBarVPos {
				w.engine.ScrollTo(w.engine.TopLine() - w.engine.LinesOnScreen())
			} else if y >= w.scrollBarVPos+w.scrollBarHeight {
				w.engine.ScrollTo(w.engine.TopLine() + w.engine.LinesOnScreen())
			} else {
				w.draggingVScrollBar = true
				w.dragOffset = y - w.scrollBarVPos
			}
			return true
		}
		if w.hScrollVisible && y == w.win.Height()-1 {
			if x < w.scrollBarHPos {
				w.engine.HorizontalScrollTo(w.engine.XOffset() - w.win.Width()/2)
			} else if x >= w.scrollBarHPos+w.scrollBarWidth {
				w.engine.HorizontalScrollTo(w.engine.XOffset() + w.win.Width()/2)
			} else {
				w.draggingHScrollBar = true
				w.dragOffset = x - w.scrollBarHPos
			}
			return true
		}
		w.engine.ButtonDown(Point{X: x, Y: y}, when, mod)
		return true
	case WheelUp, WheelDown:
		lines := w.win.Height() / 4
		if lines < 1 {
			lines = 1
		}
		if button == WheelUp {
			lines = -lines
		}
		w.engine.ScrollTo(w.engine.TopLine() + lines)
		return true
	}
	return false
}

// mouseMove handles a drag at window-relative (x, y), continuing a scrollbar
// drag if one is in progress.
func (w *Widget) mouseMove(y, x int) bool {
	if w.draggingVScrollBar {
		maxy := w.win.Height() - 1 - w.scrollBarHeight
		pos := y - w.dragOffset
		if maxy > 0 && pos >= 0 && pos <= maxy {
			w.engine.ScrollTo(pos * w.engine.MaxScrollPos() / maxy)
		}
		return true
	}
	if w.draggingHScrollBar {
		maxx := w.win.Width() - 1 - w.scrollBarWidth
		pos := x - w.dragOffset
		if maxx > 0 && pos >= 0 && pos <= maxx {
			w.engine.HorizontalScrollTo(
				pos * (w.engine.ScrollWidth() - maxx - w.scrollBarWidth) / maxx)
		}
		return true
	}
	w.engine.ButtonMove(Point{X: x, Y: y})
	return w.engine.HaveMouseCapture()
}

// mouseRelease ends a scrollbar drag or forwards the release to the engine
// if it captured the mouse.
func (w *Widget) mouseRelease(when time.Time, y, x int, ctrl bool) {
	if w.draggingVScrollBar || w.draggingHScrollBar {
		w.draggingVScrollBar = false
		w.draggingHScrollBar = false
	} else if w.engine.HaveMouseCapture() {
		w.engine.ButtonUp(Point{X: x, Y: y}, when, ctrl)
	}
}
