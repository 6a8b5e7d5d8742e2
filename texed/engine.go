// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texed/engine.go
// Summary: Contract between the widget and the text-layout engine it hosts.

package texed

import "time"

// Status is the widget's sticky error state. Once set it stays set until
// read and cleared by the embedder.
type Status int

const (
	StatusOK Status = iota
	StatusBadAlloc
	StatusFailure
)

// Message is an engine-defined message identifier passed through
// SendMessage. The widget forwards messages opaquely.
type Message uint32

// NotificationCode identifies why the engine or widget notified the
// embedder.
type NotificationCode int

const (
	// NotifyKey reports a key the engine did not consume.
	NotifyKey NotificationCode = iota
	// NotifyDoubleClick reports a double click on a list item.
	NotifyDoubleClick
	// NotifyCallTipClick reports a click inside the call tip.
	NotifyCallTipClick
)

// Notification is delivered to the embedder's callback.
type Notification struct {
	Code     NotificationCode
	Key      Key
	Rune     rune
	Mod      Modifiers
	Position Point
}

// Host is what the widget offers the engine it embeds: geometry, clipboard,
// notification delivery and overlay state.
type Host interface {
	// Bounds returns the paintable area in window-relative cells.
	Bounds() Rectangle

	// CopyToClipboard stores text on the widget's internal clipboard.
	CopyToClipboard(text string)

	// Notify forwards an engine notification to the embedder.
	Notify(n Notification)

	// AutoCompleteActive reports whether a list overlay is showing.
	AutoCompleteActive() bool

	// CallTipActive reports whether a call tip is showing.
	CallTipActive() bool
}

// Engine is the text-layout engine a widget hosts. The widget owns the
// device and all screen geometry; the engine paints through the surface it
// is handed and reports scroll state on request.
type Engine interface {
	// Attach gives the engine its host. Called once before any other
	// method.
	Attach(host Host)

	// Paint draws the region rc of the engine's content through sur.
	Paint(sur *Surface, rc Rectangle)

	// ChangeSize informs the engine its paintable area changed.
	ChangeSize(width, height int)

	// KeyDown offers a key to the engine's keymap. Returns false when the
	// key was not consumed.
	KeyDown(key Key, ch rune, mod Modifiers) bool

	// InsertCharacter inserts typed text at the caret.
	InsertCharacter(s string)

	// ButtonDown, ButtonMove and ButtonUp forward mouse activity in
	// window-relative cells.
	ButtonDown(p Point, when time.Time, mod Modifiers)
	ButtonMove(p Point)
	ButtonUp(p Point, when time.Time, ctrl bool)

	// HaveMouseCapture reports whether the engine is tracking a drag.
	HaveMouseCapture() bool

	// Scroll state, in lines and columns.
	TopLine() int
	MaxScrollPos() int
	LinesOnScreen() int
	ScrollWidth() int
	XOffset() int
	ScrollTo(line int)
	HorizontalScrollTo(xOffset int)

	// CaretPoint returns the caret position in window-relative cells.
	CaretPoint() Point

	// CallTipClick tells the engine the call tip was clicked at p,
	// relative to the call tip window.
	CallTipClick(p Point)

	// HandleMessage services an engine-defined message.
	HandleMessage(msg Message, wParam uint64, lParam int64) int64
}
