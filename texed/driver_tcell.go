// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texed/driver_tcell.go
// Summary: Device implementation on top of tcell.

package texed

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// TcellDevice adapts a tcell.Screen to the Device interface.
type TcellDevice struct {
	screen tcell.Screen

	// tcell reports the full button mask per mouse event rather than
	// press/release transitions, so the previous mask is tracked to
	// synthesize them.
	lastButtons tcell.ButtonMask
}

// NewTcellDevice initializes a tcell screen with mouse reporting enabled.
func NewTcellDevice() (*TcellDevice, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.Clear()
	return &TcellDevice{screen: screen}, nil
}

// NewTcellDeviceFromScreen wraps an existing screen, e.g. a SimulationScreen.
func NewTcellDeviceFromScreen(screen tcell.Screen) *TcellDevice {
	return &TcellDevice{screen: screen}
}

func (d *TcellDevice) Size() (int, int) { return d.screen.Size() }

func (d *TcellDevice) SetCell(x, y int, ch rune, fg, bg Color) {
	st := tcell.StyleDefault.
		Foreground(tcell.NewHexColor(int32(fg))).
		Background(tcell.NewHexColor(int32(bg)))
	d.screen.SetContent(x, y, ch, nil, st)
}

func (d *TcellDevice) CellAt(x, y int) (rune, Color, Color) {
	ch, _, st, _ := d.screen.GetContent(x, y)
	fg, bg, _ := st.Decompose()
	if ch == 0 {
		ch = ' '
	}
	return ch, hexColor(fg, White), hexColor(bg, Black)
}

func hexColor(c tcell.Color, fallback Color) Color {
	if !c.Valid() {
		return fallback
	}
	return Color(c.Hex())
}

func (d *TcellDevice) Clear() { d.screen.Clear() }

func (d *TcellDevice) Show() { d.screen.Show() }

func (d *TcellDevice) SetCursor(x, y int) { d.screen.ShowCursor(x, y) }

func (d *TcellDevice) HideCursor() { d.screen.HideCursor() }

func (d *TcellDevice) Fini() { d.screen.Fini() }

func (d *TcellDevice) PollEvent() Event {
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return Event{Kind: EventNone}
		}
		switch tev := ev.(type) {
		case *tcell.EventKey:
			return d.translateKey(tev)
		case *tcell.EventMouse:
			if mev, ok := d.translateMouse(tev); ok {
				return mev
			}
		case *tcell.EventResize:
			w, h := tev.Size()
			return Event{Kind: EventResize, When: tev.When(), Width: w, Height: h}
		}
	}
}

var tcellKeys = map[tcell.Key]Key{
	tcell.KeyEscape:    KeyEscape,
	tcell.KeyEnter:     KeyEnter,
	tcell.KeyTab:       KeyTab,
	tcell.KeyBackspace: KeyBackspace,
	tcell.KeyDelete:    KeyDelete,
	tcell.KeyInsert:    KeyInsert,
	tcell.KeyHome:      KeyHome,
	tcell.KeyEnd:       KeyEnd,
	tcell.KeyPgUp:      KeyPageUp,
	tcell.KeyPgDn:      KeyPageDown,
	tcell.KeyUp:        KeyUp,
	tcell.KeyDown:      KeyDown,
	tcell.KeyLeft:      KeyLeft,
	tcell.KeyRight:     KeyRight,
	tcell.KeyF1:        KeyF1,
	tcell.KeyF2:        KeyF2,
	tcell.KeyF3:        KeyF3,
	tcell.KeyF4:        KeyF4,
	tcell.KeyF5:        KeyF5,
	tcell.KeyF6:        KeyF6,
	tcell.KeyF7:        KeyF7,
	tcell.KeyF8:        KeyF8,
	tcell.KeyF9:        KeyF9,
	tcell.KeyF10:       KeyF10,
	tcell.KeyF11:       KeyF11,
	tcell.KeyF12:       KeyF12,
}

func (d *TcellDevice) translateKey(tev *tcell.EventKey) Event {
	ev := Event{Kind: EventKey, When: tev.When()}
	mod := tev.Modifiers()
	ev.Mod = Mods(mod&tcell.ModShift != 0, mod&tcell.ModCtrl != 0, mod&tcell.ModAlt != 0)

	k := tev.Key()
	if mapped, ok := tcellKeys[k]; ok {
		ev.Key = mapped
		return ev
	}
	if k == tcell.KeyBackspace2 {
		ev.Key = KeyBackspace
		return ev
	}
	// Control-letter chords arrive as dedicated key codes; surface them as
	// the plain letter with ModCtrl set so key bindings see one shape.
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		ev.Key = KeyRune
		ev.Rune = rune('a' + (k - tcell.KeyCtrlA))
		ev.Mod |= ModCtrl
		return ev
	}
	ev.Key = KeyRune
	ev.Rune = tev.Rune()
	return ev
}

func (d *TcellDevice) translateMouse(tev *tcell.EventMouse) (Event, bool) {
	x, y := tev.Position()
	buttons := tev.Buttons()
	ev := Event{Kind: EventMouse, When: tev.When(), X: x, Y: y}
	mod := tev.Modifiers()
	ev.Mod = Mods(mod&tcell.ModShift != 0, mod&tcell.ModCtrl != 0, mod&tcell.ModAlt != 0)

	if buttons&tcell.WheelUp != 0 {
		ev.Mouse = MousePress
		ev.Button = WheelUp
		return ev, true
	}
	if buttons&tcell.WheelDown != 0 {
		ev.Mouse = MousePress
		ev.Button = WheelDown
		return ev, true
	}

	held := buttons & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	prev := d.lastButtons & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	d.lastButtons = buttons

	switch {
	case held != 0 && prev == 0:
		ev.Mouse = MousePress
		ev.Button = maskButton(held)
	case held != 0 && prev != 0:
		ev.Mouse = MouseDrag
		ev.Button = maskButton(held)
	case held == 0 && prev != 0:
		ev.Mouse = MouseRelease
		ev.Button = maskButton(prev)
	default:
		return Event{}, false
	}
	if ev.When.IsZero() {
		ev.When = time.Now()
	}
	return ev, true
}

func maskButton(mask tcell.ButtonMask) MouseButton {
	// tcell numbers Button2 as the secondary (right) button and Button3 as
	// the middle one.
	switch {
	case mask&tcell.Button1 != 0:
		return ButtonLeft
	case mask&tcell.Button2 != 0:
		return ButtonRight
	case mask&tcell.Button3 != 0:
		return ButtonMiddle
	}
	return ButtonNone
}
