// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: main.go
// Summary: texedit entry point. Opens a file in the demo editor engine
// hosted by a texed widget and runs the event loop.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/framegrace/texedit/apps/demo"
	"github.com/framegrace/texedit/config"
	"github.com/framegrace/texedit/texed"
)

func main() {
	driverFlag := flag.String("driver", "", "terminal driver: tcell or termbox (default from config)")
	styleFlag := flag.String("style", "", "highlight style name (default from config)")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <file>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	logFile, err := os.OpenFile("texedit.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err == nil {
		defer logFile.Close()
		log.SetOutput(logFile)
	}
	log.Println("Application starting...")

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "texedit requires a terminal")
		os.Exit(1)
	}

	content, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "texedit: %v\n", err)
		os.Exit(1)
	}

	cfg := config.System()
	appCfg := config.App("demo")

	driver := *driverFlag
	if driver == "" {
		driver = cfg.GetString("", "driver", "tcell")
	}
	style := *styleFlag
	if style == "" {
		style = appCfg.GetString("demo.highlight", "style", "native")
	}

	dev, err := openDevice(driver)
	if err != nil {
		fmt.Fprintf(os.Stderr, "texedit: %v\n", err)
		os.Exit(1)
	}
	defer dev.Fini()

	app := demo.NewApp(path, string(content), style)
	app.SetTabWidth(appCfg.GetInt("demo", "tab_width", 4))
	autocomplete := appCfg.GetBool("demo", "autocomplete", true)

	store := openSession(appCfg)
	if store != nil {
		defer store.Close()
		if line, col, top, ok, err := store.Lookup(path); err == nil && ok {
			app.SetCaret(line, col, top)
		}
	}

	var widget *texed.Widget
	widget = texed.New(dev, app, func(n texed.Notification) {
		handleNotify(widget, app, n, autocomplete)
	})
	widget.SetTheme(themeFromConfig(cfg))
	widget.SetScrollBarsVisible(
		cfg.GetBool("scrollbars", "vertical", true),
		cfg.GetBool("scrollbars", "horizontal", true))
	widget.Refresh()

	run(dev, widget, app)

	if store != nil {
		line, col, top := app.Caret()
		if err := store.Save(path, line, col, top); err != nil {
			log.Printf("Session: save failed: %v", err)
		}
	}
	log.Println("Application stopped cleanly.")
}

func openDevice(driver string) (texed.Device, error) {
	switch driver {
	case "termbox":
		return texed.NewTermboxDevice()
	case "", "tcell":
		return texed.NewTcellDevice()
	default:
		return nil, fmt.Errorf("unknown driver %q", driver)
	}
}

func openSession(appCfg config.Config) *demo.SessionStore {
	if !appCfg.GetBool("demo.session", "enabled", true) {
		return nil
	}
	dbPath := appCfg.GetString("demo.session", "db_path", "")
	if dbPath == "" {
		var err error
		dbPath, err = config.DataPath("apps", "demo", "sessions.db")
		if err != nil {
			log.Printf("Session: no data path: %v", err)
			return nil
		}
	}
	store, err := demo.OpenSessionStore(dbPath)
	if err != nil {
		log.Printf("Session: open failed: %v", err)
		return nil
	}
	return store
}

func themeFromConfig(cfg config.Config) texed.Theme {
	def := texed.DefaultTheme()
	color := func(key string, fallback texed.Color) texed.Color {
		return texed.Color(cfg.GetColor("theme", key, uint32(fallback)))
	}
	return texed.Theme{
		ListFore:         color("list_fore", def.ListFore),
		ListBack:         color("list_back", def.ListBack),
		ListSelectedFore: color("list_selected_fore", def.ListSelectedFore),
		ListSelectedBack: color("list_selected_back", def.ListSelectedBack),
		ScrollGutter:     color("scroll_gutter", def.ScrollGutter),
		ScrollThumb:      color("scroll_thumb", def.ScrollThumb),
		CallTipFore:      color("calltip_fore", def.CallTipFore),
		CallTipBack:      color("calltip_back", def.CallTipBack),
	}
}

func run(dev texed.Device, widget *texed.Widget, app *demo.App) {
	for {
		ev := dev.PollEvent()
		switch ev.Kind {
		case texed.EventNone:
			return
		case texed.EventKey:
			if ev.Mod.Has(texed.ModCtrl) && ev.Key == texed.KeyRune && ev.Rune == 'q' {
				return
			}
			if widget.AutoCompleteActive() && listKey(widget, app, ev) {
				continue
			}
			widget.SendKey(ev.Key, ev.Rune, ev.Mod)
		case texed.EventMouse:
			widget.SendMouse(ev)
		case texed.EventResize:
			widget.Resize(ev.Width, ev.Height)
			continue
		}
		widget.Refresh()
	}
}

// listKey handles keys while the completion list is open. Returns true when
// the key was consumed by the list.
func listKey(widget *texed.Widget, app *demo.App, ev texed.Event) bool {
	lb := widget.ListBox()
	switch ev.Key {
	case texed.KeyDown:
		if n := lb.Selection(); n < lb.Length()-1 {
			lb.Select(n + 1)
		}
		return true
	case texed.KeyUp:
		if n := lb.Selection(); n > 0 {
			lb.Select(n - 1)
		}
		return true
	case texed.KeyEnter, texed.KeyTab:
		acceptCompletion(widget, app)
		return true
	case texed.KeyEscape:
		widget.CancelAutoComplete()
		return true
	}
	return false
}

func acceptCompletion(widget *texed.Widget, app *demo.App) {
	word := widget.ListBox().Value(widget.ListBox().Selection())
	widget.CancelAutoComplete()
	if word != "" {
		app.InsertCompletion(word)
	}
	widget.Refresh()
}

func handleNotify(widget *texed.Widget, app *demo.App, n texed.Notification, autocomplete bool) {
	switch n.Code {
	case texed.NotifyKey:
		if n.Mod.Has(texed.ModCtrl) && n.Key == texed.KeyRune && n.Rune == 'n' {
			if autocomplete {
				widget.ShowUserList(app.CompletionList(app.WordPrefix()), ' ', ':')
			}
		} else if n.Key == texed.KeyF1 {
			lines := widget.SendMessage(demo.MsgLineCount, 0, 0)
			marks := widget.SendMessage(demo.MsgBookmarkCount, 0, 0)
			widget.ShowCallTip(fmt.Sprintf("%s\n%d lines, %d bookmarks", app.Path(), lines, marks))
		} else if n.Key == texed.KeyEscape {
			widget.CancelCallTip()
		}
	case texed.NotifyDoubleClick:
		acceptCompletion(widget, app)
	case texed.NotifyCallTipClick:
		widget.CancelCallTip()
	}
}
