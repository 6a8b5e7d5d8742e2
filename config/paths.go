// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Path helpers for texedit configuration.

package config

import (
	"fmt"
	"os"
	"path/filepath"
)

func configRoot() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "texedit"), nil
}

func systemConfigPath() (string, error) {
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, systemConfigName), nil
}

func appConfigPath(app string) (string, error) {
	if app == "" {
		return "", fmt.Errorf("app name is required")
	}
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "apps", app, "config.json"), nil
}

// DataPath returns a path under the texedit config root for app data files,
// creating the parent directory if needed.
func DataPath(parts ...string) (string, error) {
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	path := filepath.Join(append([]string{root}, parts...)...)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	return path, nil
}
