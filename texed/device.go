// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texed/device.go
// Summary: Terminal cell device abstraction and the in-memory device used for
// tests and headless rendering.

package texed

import "time"

// Device is the terminal the widget draws on: a grid of cells, each holding
// one glyph plus foreground and background colors. It is an explicit handle —
// there is no ambient global cell buffer — so several independent widgets can
// coexist and tests can substitute a fake. Writes outside the grid are
// silently dropped.
type Device interface {
	// Size returns the device dimensions in cells.
	Size() (width, height int)

	// SetCell writes one cell. Out-of-range coordinates are ignored.
	SetCell(x, y int, ch rune, fg, bg Color)

	// CellAt reads back one cell. Out-of-range coordinates return an empty
	// cell. Reading the current buffer is what makes transparent text draws
	// possible.
	CellAt(x, y int) (ch rune, fg, bg Color)

	// Clear resets every cell to the empty state.
	Clear()

	// Show flushes the buffer to the physical screen.
	Show()

	// SetCursor positions and shows the hardware cursor.
	SetCursor(x, y int)

	// HideCursor hides the hardware cursor.
	HideCursor()

	// PollEvent blocks until the next input event. A zero-kind event means
	// the device has shut down and the control loop should terminate.
	PollEvent() Event

	// Fini releases the device and restores the terminal.
	Fini()
}

// EventKind identifies the type of a device event.
type EventKind int

const (
	EventNone EventKind = iota
	EventKey
	EventMouse
	EventResize
)

// MouseEventKind distinguishes the phases of a mouse gesture.
type MouseEventKind int

const (
	MousePress MouseEventKind = iota
	MouseDrag
	MouseRelease
)

// MouseButton numbers follow the classic terminal convention: buttons 1-3,
// wheel up 4, wheel down 5.
type MouseButton int

const (
	ButtonNone   MouseButton = 0
	ButtonLeft   MouseButton = 1
	ButtonMiddle MouseButton = 2
	ButtonRight  MouseButton = 3
	WheelUp      MouseButton = 4
	WheelDown    MouseButton = 5
)

// Key identifies a non-character key, or KeyRune for a plain character
// carried in the event's Rune field.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// Modifiers is a bitmask of modifier keys held during an event.
type Modifiers int

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
)

// Mods builds a Modifiers mask from individual flags.
func Mods(shift, ctrl, alt bool) Modifiers {
	var m Modifiers
	if shift {
		m |= ModShift
	}
	if ctrl {
		m |= ModCtrl
	}
	if alt {
		m |= ModAlt
	}
	return m
}

// Has reports whether the mask contains the given modifier.
func (m Modifiers) Has(mod Modifiers) bool { return m&mod != 0 }

// Event is a single device input event. Which fields are meaningful depends
// on Kind.
type Event struct {
	Kind EventKind
	When time.Time

	// Key event fields.
	Key  Key
	Rune rune
	Mod  Modifiers

	// Mouse event fields. X and Y are absolute terminal coordinates.
	Mouse  MouseEventKind
	Button MouseButton
	X, Y   int

	// Resize event fields.
	Width, Height int
}

type memCell struct {
	ch     rune
	fg, bg Color
}

// MemDevice is a Device backed by an in-memory grid with a posted-event
// queue. It keeps no terminal state, so it doubles as the test double and as
// a headless rendering target.
type MemDevice struct {
	width, height int
	cells         [][]memCell
	events        chan Event
	cursorX       int
	cursorY       int
	cursorShown   bool
	shows         int
}

// NewMemDevice creates an in-memory device with the given dimensions.
func NewMemDevice(width, height int) *MemDevice {
	d := &MemDevice{
		width:  width,
		height: height,
		events: make(chan Event, 64),
	}
	d.Clear()
	return d
}

func (d *MemDevice) Size() (int, int) { return d.width, d.height }

func (d *MemDevice) SetCell(x, y int, ch rune, fg, bg Color) {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return
	}
	d.cells[y][x] = memCell{ch: ch, fg: fg, bg: bg}
}

func (d *MemDevice) CellAt(x, y int) (rune, Color, Color) {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return ' ', White, Black
	}
	c := d.cells[y][x]
	return c.ch, c.fg, c.bg
}

func (d *MemDevice) Clear() {
	d.cells = make([][]memCell, d.height)
	for y := range d.cells {
		d.cells[y] = make([]memCell, d.width)
		for x := range d.cells[y] {
			d.cells[y][x] = memCell{ch: ' ', fg: White, bg: Black}
		}
	}
}

func (d *MemDevice) Show() { d.shows++ }

func (d *MemDevice) SetCursor(x, y int) {
	d.cursorX, d.cursorY = x, y
	d.cursorShown = true
}

func (d *MemDevice) HideCursor() { d.cursorShown = false }

func (d *MemDevice) PollEvent() Event { return <-d.events }

// PostEvent queues a synthetic event for PollEvent. Non-blocking; events are
// dropped once the queue is full.
func (d *MemDevice) PostEvent(ev Event) {
	select {
	case d.events <- ev:
	default:
	}
}

func (d *MemDevice) Fini() {}

// Resize changes the grid dimensions, clearing all cells.
func (d *MemDevice) Resize(width, height int) {
	d.width, d.height = width, height
	d.Clear()
}

// Cursor reports the cursor position and visibility, for tests.
func (d *MemDevice) Cursor() (x, y int, shown bool) {
	return d.cursorX, d.cursorY, d.cursorShown
}

// ShowCount reports how many times the buffer was presented, for tests.
func (d *MemDevice) ShowCount() int { return d.shows }

// Row returns the glyphs of row y as a string, for tests. Wide glyphs appear
// once followed by the untouched cell under their second column.
func (d *MemDevice) Row(y int) string {
	if y < 0 || y >= d.height {
		return ""
	}
	runes := make([]rune, 0, d.width)
	for x := 0; x < d.width; x++ {
		runes = append(runes, d.cells[y][x].ch)
	}
	return string(runes)
}
