// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texed/driver_termbox.go
// Summary: Device implementation on top of termbox-go.

package texed

import (
	"time"

	termbox "github.com/nsf/termbox-go"
)

// TermboxDevice adapts the termbox library to the Device interface. termbox
// keeps a single global cell buffer, so only one TermboxDevice may exist at
// a time.
type TermboxDevice struct {
	lastButton MouseButton
}

// NewTermboxDevice initializes termbox in RGB output mode with mouse
// reporting enabled.
func NewTermboxDevice() (*TermboxDevice, error) {
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetOutputMode(termbox.OutputRGB)
	termbox.SetInputMode(termbox.InputEsc | termbox.InputMouse)
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	return &TermboxDevice{}, nil
}

func (d *TermboxDevice) Size() (int, int) { return termbox.Size() }

func (d *TermboxDevice) SetCell(x, y int, ch rune, fg, bg Color) {
	fr, fgc, fb := fg.Channels()
	br, bgc, bb := bg.Channels()
	termbox.SetCell(x, y, ch,
		termbox.RGBToAttribute(fr, fgc, fb),
		termbox.RGBToAttribute(br, bgc, bb))
}

func (d *TermboxDevice) CellAt(x, y int) (rune, Color, Color) {
	w, h := termbox.Size()
	if x < 0 || x >= w || y < 0 || y >= h {
		return ' ', White, Black
	}
	cell := termbox.CellBuffer()[y*w+x]
	return cell.Ch, attrColor(cell.Fg, White), attrColor(cell.Bg, Black)
}

func attrColor(a termbox.Attribute, fallback Color) Color {
	if a == termbox.ColorDefault {
		return fallback
	}
	r, g, b := termbox.AttributeToRGB(a)
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func (d *TermboxDevice) Clear() {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
}

func (d *TermboxDevice) Show() { termbox.Flush() }

func (d *TermboxDevice) SetCursor(x, y int) { termbox.SetCursor(x, y) }

func (d *TermboxDevice) HideCursor() { termbox.HideCursor() }

func (d *TermboxDevice) Fini() { termbox.Close() }

var termboxKeys = map[termbox.Key]Key{
	termbox.KeyEsc:        KeyEscape,
	termbox.KeyEnter:      KeyEnter,
	termbox.KeyTab:        KeyTab,
	termbox.KeyBackspace:  KeyBackspace,
	termbox.KeyBackspace2: KeyBackspace,
	termbox.KeyDelete:     KeyDelete,
	termbox.KeyInsert:     KeyInsert,
	termbox.KeyHome:       KeyHome,
	termbox.KeyEnd:        KeyEnd,
	termbox.KeyPgup:       KeyPageUp,
	termbox.KeyPgdn:       KeyPageDown,
	termbox.KeyArrowUp:    KeyUp,
	termbox.KeyArrowDown:  KeyDown,
	termbox.KeyArrowLeft:  KeyLeft,
	termbox.KeyArrowRight: KeyRight,
	termbox.KeyF1:         KeyF1,
	termbox.KeyF2:         KeyF2,
	termbox.KeyF3:         KeyF3,
	termbox.KeyF4:         KeyF4,
	termbox.KeyF5:         KeyF5,
	termbox.KeyF6:         KeyF6,
	termbox.KeyF7:         KeyF7,
	termbox.KeyF8:         KeyF8,
	termbox.KeyF9:         KeyF9,
	termbox.KeyF10:        KeyF10,
	termbox.KeyF11:        KeyF11,
	termbox.KeyF12:        KeyF12,
}

func (d *TermboxDevice) PollEvent() Event {
	for {
		tev := termbox.PollEvent()
		switch tev.Type {
		case termbox.EventKey:
			return d.translateKey(tev)
		case termbox.EventMouse:
			return d.translateMouse(tev)
		case termbox.EventResize:
			return Event{Kind: EventResize, When: time.Now(), Width: tev.Width, Height: tev.Height}
		case termbox.EventInterrupt, termbox.EventError:
			return Event{Kind: EventNone}
		}
	}
}

func (d *TermboxDevice) translateKey(tev termbox.Event) Event {
	ev := Event{Kind: EventKey, When: time.Now()}
	if tev.Mod&termbox.ModAlt != 0 {
		ev.Mod |= ModAlt
	}
	if tev.Ch != 0 {
		ev.Key = KeyRune
		ev.Rune = tev.Ch
		return ev
	}
	if mapped, ok := termboxKeys[tev.Key]; ok {
		ev.Key = mapped
		return ev
	}
	// Control chords come through as raw control bytes.
	if tev.Key >= termbox.KeyCtrlA && tev.Key <= termbox.KeyCtrlZ {
		ev.Key = KeyRune
		ev.Rune = rune('a' + rune(tev.Key) - rune(termbox.KeyCtrlA))
		ev.Mod |= ModCtrl
		return ev
	}
	if tev.Key == termbox.KeySpace {
		ev.Key = KeyRune
		ev.Rune = ' '
		return ev
	}
	ev.Key = KeyNone
	return ev
}

func (d *TermboxDevice) translateMouse(tev termbox.Event) Event {
	ev := Event{Kind: EventMouse, When: time.Now(), X: tev.MouseX, Y: tev.MouseY}
	switch tev.Key {
	case termbox.MouseLeft:
		ev.Button = ButtonLeft
	case termbox.MouseMiddle:
		ev.Button = ButtonMiddle
	case termbox.MouseRight:
		ev.Button = ButtonRight
	case termbox.MouseWheelUp:
		ev.Button = WheelUp
	case termbox.MouseWheelDown:
		ev.Button = WheelDown
	case termbox.MouseRelease:
		ev.Mouse = MouseRelease
		ev.Button = d.lastButton
		d.lastButton = ButtonNone
		return ev
	}
	if tev.Mod&termbox.ModMotion != 0 {
		ev.Mouse = MouseDrag
	} else {
		ev.Mouse = MousePress
	}
	if ev.Button >= ButtonLeft && ev.Button <= ButtonRight {
		d.lastButton = ev.Button
	}
	return ev
}
