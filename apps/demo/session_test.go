// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/demo/session_test.go
// Summary: Exercises the SQLite-backed per-file session store.
// Usage: Executed during `go test` to guard against regressions.

package demo

import (
	"path/filepath"
	"testing"
)

func TestSessionStoreRoundTrip(t *testing.T) {
	store, err := OpenSessionStore(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	if _, _, _, ok, err := store.Lookup("/tmp/a.txt"); err != nil || ok {
		t.Fatalf("lookup of unknown path: ok=%v err=%v", ok, err)
	}

	if err := store.Save("/tmp/a.txt", 12, 4, 8); err != nil {
		t.Fatalf("save: %v", err)
	}
	line, col, top, ok, err := store.Lookup("/tmp/a.txt")
	if err != nil || !ok {
		t.Fatalf("lookup: ok=%v err=%v", ok, err)
	}
	if line != 12 || col != 4 || top != 8 {
		t.Fatalf("got (%d,%d,%d), want (12,4,8)", line, col, top)
	}
}

func TestSessionStoreUpdatesExisting(t *testing.T) {
	store, err := OpenSessionStore(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	if err := store.Save("/tmp/b.txt", 1, 1, 0); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save("/tmp/b.txt", 5, 2, 3); err != nil {
		t.Fatalf("resave: %v", err)
	}
	line, col, top, ok, err := store.Lookup("/tmp/b.txt")
	if err != nil || !ok {
		t.Fatalf("lookup: ok=%v err=%v", ok, err)
	}
	if line != 5 || col != 2 || top != 3 {
		t.Fatalf("got (%d,%d,%d), want (5,2,3)", line, col, top)
	}
}

func TestSessionStoreCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "sessions.db")
	store, err := OpenSessionStore(path)
	if err != nil {
		t.Fatalf("open with missing parent: %v", err)
	}
	store.Close()
}
