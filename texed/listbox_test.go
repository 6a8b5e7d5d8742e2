// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texed/listbox_test.go
// Summary: Exercises the autocompletion list: item parsing, type glyphs,
// selection centering and delegate notifications.
// Usage: Executed during `go test` to guard against regressions.

package texed

import (
	"fmt"
	"strings"
	"testing"
)

type recordingDelegate struct {
	events []ListBoxEventType
}

func (d *recordingDelegate) ListNotify(ev *ListBoxEvent) {
	d.events = append(d.events, ev.Type)
}

func newTestListBox(items int) (*MemDevice, *ListBox) {
	dev := NewMemDevice(30, 12)
	lb := NewListBox(dev, DefaultTheme())
	for i := 0; i < items; i++ {
		lb.Append(fmt.Sprintf("item%d", i), -1)
	}
	return dev, lb
}

func TestListBoxAppendSizesWindow(t *testing.T) {
	_, lb := newTestListBox(3)
	if lb.Length() != 3 {
		t.Fatalf("length = %d, want 3", lb.Length())
	}
	// Widest item is "item0" (5 cells) plus glyph and border columns.
	if w := lb.Window().Width(); w != 7 {
		t.Fatalf("window width = %d, want 7", w)
	}
	if h := lb.Window().Height(); h != 5 {
		t.Fatalf("window height = %d, want default rows 5", h)
	}
}

func TestListBoxTypeGlyphs(t *testing.T) {
	dev, lb := newTestListBox(0)
	lb.RegisterTypeGlyph(1, "*")
	lb.Append("plain", -1)
	lb.Append("starred", 1)

	if v := lb.Value(0); v != "plain" {
		t.Fatalf("value 0 = %q", v)
	}
	if v := lb.Value(1); v != "starred" {
		t.Fatalf("value 1 = %q", v)
	}
	if v := lb.Value(5); v != "" {
		t.Fatalf("out of range value = %q, want empty", v)
	}

	lb.Select(1)
	if row := dev.Row(1); !strings.HasPrefix(row, "*starred") {
		t.Fatalf("row 1 = %q, want type glyph prefix", row)
	}
}

func TestListBoxSetList(t *testing.T) {
	dev, lb := newTestListBox(0)
	lb.RegisterTypeGlyph(2, "+")
	lb.SetList("alpha:1,beta,gamma:2", ',', ':')

	if lb.Length() != 3 {
		t.Fatalf("length = %d, want 3", lb.Length())
	}
	if v := lb.Value(0); v != "alpha" {
		t.Fatalf("value 0 = %q", v)
	}
	if n := lb.Find("be"); n != 1 {
		t.Fatalf("find = %d, want 1", n)
	}
	if n := lb.Find("zz"); n != -1 {
		t.Fatalf("find missing = %d, want -1", n)
	}

	lb.Select(2)
	if row := dev.Row(2); !strings.HasPrefix(row, "+gamma") {
		t.Fatalf("row 2 = %q, want \"+gamma\"", row)
	}
}

func TestListBoxSetListEmpty(t *testing.T) {
	_, lb := newTestListBox(3)
	lb.SetList("", ',', ':')
	if lb.Length() != 0 {
		t.Fatalf("length = %d after empty SetList", lb.Length())
	}
}

func TestListBoxSelectNearStart(t *testing.T) {
	dev, lb := newTestListBox(10)
	lb.Select(0)
	if row := dev.Row(0); !strings.HasPrefix(row, " item0") {
		t.Fatalf("top row = %q, want item0", row)
	}
	if _, _, bg := dev.CellAt(0, 0); bg != DefaultTheme().ListSelectedBack {
		t.Fatalf("selected row not highlighted")
	}
}

func TestListBoxSelectCentersSelection(t *testing.T) {
	dev, lb := newTestListBox(10)
	lb.Select(7)
	// Visible range pins to items 5-9; the selection sits on row 2.
	if row := dev.Row(0); !strings.HasPrefix(row, " item5") {
		t.Fatalf("top row = %q, want item5", row)
	}
	if _, _, bg := dev.CellAt(0, 2); bg != DefaultTheme().ListSelectedBack {
		t.Fatalf("row 2 not highlighted")
	}
}

func TestListBoxSelectNearEnd(t *testing.T) {
	dev, lb := newTestListBox(10)
	lb.Select(9)
	if row := dev.Row(4); !strings.HasPrefix(row, " item9") {
		t.Fatalf("bottom row = %q, want item9", row)
	}
	if _, _, bg := dev.CellAt(0, 4); bg != DefaultTheme().ListSelectedBack {
		t.Fatalf("last row not highlighted")
	}
}

func TestListBoxBlankRowsPastEnd(t *testing.T) {
	dev, lb := newTestListBox(3)
	lb.Select(0)
	if row := dev.Row(3); strings.TrimSpace(row) != "" {
		t.Fatalf("row 3 = %q, want blank", row)
	}
	if _, _, bg := dev.CellAt(0, 4); bg != DefaultTheme().ListBack {
		t.Fatalf("blank row not painted with list background")
	}
}

func TestListBoxDelegateNotifications(t *testing.T) {
	_, lb := newTestListBox(5)
	d := &recordingDelegate{}
	lb.SetDelegate(d)

	lb.Select(1)
	lb.Select(1)
	lb.NotifyDoubleClick()

	want := []ListBoxEventType{ListSelectionChange, ListDoubleClick}
	if len(d.events) != len(want) {
		t.Fatalf("events = %v, want %v", d.events, want)
	}
	for i := range want {
		if d.events[i] != want[i] {
			t.Fatalf("event %d = %v, want %v", i, d.events[i], want[i])
		}
	}
}

func TestListBoxFindAndValue(t *testing.T) {
	dev, lb := newTestListBox(0)
	lb.RegisterTypeGlyph(1, "*")
	lb.Append("foo", -1)
	lb.Append("bar", 1)

	if n := lb.Find("bar"); n != 1 {
		t.Fatalf("find = %d, want 1", n)
	}
	if v := lb.Value(1); v != "bar" {
		t.Fatalf("value = %q, want \"bar\"", v)
	}

	lb.Select(0)
	if row := dev.Row(0); !strings.HasPrefix(row, " foo") {
		t.Fatalf("row 0 = %q, want \" foo\"", row)
	}
	if row := dev.Row(1); !strings.HasPrefix(row, "*bar") {
		t.Fatalf("row 1 = %q, want \"*bar\"", row)
	}
}

func TestListBoxClear(t *testing.T) {
	_, lb := newTestListBox(5)
	lb.Clear()
	if lb.Length() != 0 {
		t.Fatalf("length = %d after clear", lb.Length())
	}
}
