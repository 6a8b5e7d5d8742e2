// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for system and app configuration files.

package config

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("", Section{
		"driver": "tcell",
	})
	cfg.RegisterDefaults("theme", Section{
		"list_fore":          "#D8D8D8",
		"list_back":          "#383838",
		"list_selected_fore": "#383838",
		"list_selected_back": "#7CAFC2",
		"scroll_gutter":      "#282828",
		"scroll_thumb":       "#D8D8D8",
		"calltip_fore":       "#000000",
		"calltip_back":       "#FFFFC6",
	})
	cfg.RegisterDefaults("scrollbars", Section{
		"vertical":   true,
		"horizontal": true,
	})
}

func applyAppDefaults(app string, cfg Config) {
	if cfg == nil {
		return
	}
	switch app {
	case "demo":
		cfg.RegisterDefaults("demo", Section{
			"tab_width":    4,
			"autocomplete": true,
		})
		cfg.RegisterDefaults("demo.highlight", Section{
			"enabled":        true,
			"style":          "native",
			"detect_by_name": true,
		})
		cfg.RegisterDefaults("demo.session", Section{
			"enabled": true,
			"db_path": "",
		})
	}
}

func defaultSystemConfig() Config {
	cfg := make(Config)
	applySystemDefaults(cfg)
	return cfg
}

func defaultAppConfig(name string) Config {
	cfg := make(Config)
	applyAppDefaults(name, cfg)
	if len(cfg) == 0 {
		return nil
	}
	return cfg
}
