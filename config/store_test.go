// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"os"
	"sync"
	"testing"
)

func resetStore() {
	once = sync.Once{}
	system = nil
	apps = nil
	loadErr = nil
}

func TestSystemDefaultsWritten(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	cfg := System()
	if cfg.GetString("", "driver", "") == "" {
		t.Fatalf("expected driver to be set")
	}

	path, err := systemConfigPath()
	if err != nil {
		t.Fatalf("systemConfigPath: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read system config: %v", err)
	}

	var disk Config
	if err := json.Unmarshal(data, &disk); err != nil {
		t.Fatalf("unmarshal system config: %v", err)
	}
	if disk.Section("theme") == nil {
		t.Fatalf("expected theme section to be present")
	}
}

func TestSaveSystemWritesUpdates(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	cfg := Config{
		"driver": "termbox",
	}
	SetSystem(cfg)
	if err := SaveSystem(); err != nil {
		t.Fatalf("SaveSystem: %v", err)
	}

	path, err := systemConfigPath()
	if err != nil {
		t.Fatalf("systemConfigPath: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read system config: %v", err)
	}

	var disk Config
	if err := json.Unmarshal(data, &disk); err != nil {
		t.Fatalf("unmarshal system config: %v", err)
	}
	if got := disk.GetString("", "driver", ""); got != "termbox" {
		t.Fatalf("expected driver to be termbox, got %q", got)
	}
}

func TestAppDefaultsWritten(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	cfg := App("demo")
	if cfg.Section("demo.highlight") == nil {
		t.Fatalf("expected demo.highlight section to be present")
	}

	path, err := appConfigPath("demo")
	if err != nil {
		t.Fatalf("appConfigPath: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected app config to be written: %v", err)
	}
}

func TestSaveAppWritesUpdates(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	cfg := Config{
		"demo": map[string]interface{}{
			"autocomplete": false,
		},
	}
	SetApp("demo", cfg)
	if err := SaveApp("demo"); err != nil {
		t.Fatalf("SaveApp: %v", err)
	}

	path, err := appConfigPath("demo")
	if err != nil {
		t.Fatalf("appConfigPath: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read app config: %v", err)
	}

	var disk Config
	if err := json.Unmarshal(data, &disk); err != nil {
		t.Fatalf("unmarshal app config: %v", err)
	}
	section := disk.Section("demo")
	if section == nil {
		t.Fatalf("expected demo section")
	}
	if got, _ := section["autocomplete"].(bool); got {
		t.Fatalf("expected autocomplete false")
	}
}

func TestGetColor(t *testing.T) {
	cfg := Config{
		"theme": map[string]interface{}{
			"list_back":    "#383838",
			"scroll_thumb": "D8D8D8",
			"numeric":      float64(0x7CAFC2),
		},
	}
	if got := cfg.GetColor("theme", "list_back", 0); got != 0x383838 {
		t.Fatalf("expected 0x383838, got %06X", got)
	}
	if got := cfg.GetColor("theme", "scroll_thumb", 0); got != 0xD8D8D8 {
		t.Fatalf("expected 0xD8D8D8, got %06X", got)
	}
	if got := cfg.GetColor("theme", "numeric", 0); got != 0x7CAFC2 {
		t.Fatalf("expected 0x7CAFC2, got %06X", got)
	}
	if got := cfg.GetColor("theme", "missing", 0x282828); got != 0x282828 {
		t.Fatalf("expected default, got %06X", got)
	}
}
