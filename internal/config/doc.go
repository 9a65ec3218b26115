// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for swebuddy.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// .env files, environment variable overrides, validation and live reload.
//
// # Key Types
//
//   - Config: Main configuration structure
//   - BackendConfig: Where and how to reach the generation backend
//   - UIConfig: Console defaults (mode, markdown style, word wrap)
//   - LogConfig: Diagnostic log settings
//   - Watcher: fsnotify-based reload of the config file
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (SWEBUDDY_*), including those set by ./.env
//   - ~/.swebuddy/config.toml
//   - ~/.swebuddy/config.json
//   - Built-in defaults
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client := backend.NewClientFromConfig(cfg)
package config
