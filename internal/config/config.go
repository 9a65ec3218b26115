// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/jeranaias/swebuddy-tui/internal/model"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete swebuddy configuration.
type Config struct {
	Backend BackendConfig `toml:"backend" json:"backend"`
	UI      UIConfig      `toml:"ui" json:"ui"`
	Log     LogConfig     `toml:"log" json:"log"`
}

// BackendConfig describes the generation backend.
type BackendConfig struct {
	// URL is the backend base URL, e.g. http://localhost:8000
	URL string `toml:"url" json:"url"`
	// Endpoint is the solve path appended to URL
	Endpoint string `toml:"endpoint" json:"endpoint"`
	// Model is forwarded to the backend to pick an LLM provider
	// (gemini_flash, groq_llama_4, openai). Empty omits the field.
	Model string `toml:"model" json:"model"`
	// TimeoutSecs bounds a whole request. 0 leaves the transport default.
	TimeoutSecs int `toml:"timeout_secs" json:"timeout_secs"`
}

// UIConfig holds console defaults.
type UIConfig struct {
	// DefaultMode is the mode selected at startup: "plan" or "prompt"
	DefaultMode string `toml:"default_mode" json:"default_mode"`
	// GlamourStyle is "auto" or a glamour standard style ("dark", "light", "notty")
	GlamourStyle string `toml:"glamour_style" json:"glamour_style"`
	// WordWrap caps markdown width. 0 follows the terminal width.
	WordWrap int `toml:"word_wrap" json:"word_wrap"`
	// AltScreen runs the console in the alternate screen buffer
	AltScreen bool `toml:"alt_screen" json:"alt_screen"`
}

// LogConfig controls the diagnostic log.
type LogConfig struct {
	// File receives diagnostics. Empty disables logging in the console.
	File string `toml:"file" json:"file"`
	// Debug enables logging to the default file when File is empty
	Debug bool `toml:"debug" json:"debug"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Backend: BackendConfig{
			URL:         "http://localhost:8000",
			Endpoint:    "/api/solve",
			Model:       "",
			TimeoutSecs: 0,
		},
		UI: UIConfig{
			DefaultMode:  string(model.ModePlan),
			GlamourStyle: "auto",
			WordWrap:     0,
			AltScreen:    true,
		},
		Log: LogConfig{
			File:  "",
			Debug: false,
		},
	}
}

// Mode returns the configured default mode, falling back to plan.
func (c *Config) Mode() model.Mode {
	m, err := model.ParseMode(c.UI.DefaultMode)
	if err != nil {
		return model.DefaultMode
	}
	return m
}

// Timeout returns the backend timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Backend.TimeoutSecs) * time.Second
}

// LogPath returns where diagnostics should be written, or "" when disabled.
func (c *Config) LogPath() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	if !c.Log.Debug {
		return ""
	}
	dir, err := ConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "swebuddy-debug.log")
	}
	return filepath.Join(dir, "debug.log")
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the configuration directory. SWEBUDDY_HOME overrides
// the default of ~/.swebuddy.
func ConfigDir() (string, error) {
	if dir := os.Getenv("SWEBUDDY_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".swebuddy"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// ActivePath returns the config file Load would read, or "" if none exists.
func ActivePath() string {
	for _, fn := range []func() (string, error){ConfigPathTOML, ConfigPathJSON} {
		p, err := fn()
		if err != nil {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
func Load() (*Config, error) {
	if p := ActivePath(); p != "" {
		return LoadFromPath(p)
	}

	cfg := Default()
	if err := finish(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromPath loads configuration from a specific file path with full validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	if err := finish(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadTOML decodes a TOML file over cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON decodes a JSON file over cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// finish applies .env, environment overrides and validation.
func finish(cfg *Config) error {
	loadDotEnv()
	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// loadDotEnv reads ./.env without overriding variables already set.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("config: could not read .env: %v", err)
	}
}

// SetDefaults fills empty fields that must have a value.
func (c *Config) SetDefaults() {
	d := Default()
	if c.Backend.URL == "" {
		c.Backend.URL = d.Backend.URL
	}
	if c.Backend.Endpoint == "" {
		c.Backend.Endpoint = d.Backend.Endpoint
	}
	if c.UI.DefaultMode == "" {
		c.UI.DefaultMode = d.UI.DefaultMode
	}
	// glamour style names are case-sensitive
	c.UI.GlamourStyle = strings.ToLower(strings.TrimSpace(c.UI.GlamourStyle))
	if c.UI.GlamourStyle == "" {
		c.UI.GlamourStyle = d.UI.GlamourStyle
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

var validGlamourStyles = map[string]bool{
	"auto": true, "dark": true, "light": true, "notty": true,
	"ascii": true, "dracula": true, "pink": true, "tokyo-night": true,
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	u, err := url.Parse(c.Backend.URL)
	switch {
	case err != nil:
		errs = append(errs, ValidationError{
			Field:   "backend.url",
			Message: fmt.Sprintf("invalid URL: %v", err),
		})
	case u.Scheme != "http" && u.Scheme != "https":
		errs = append(errs, ValidationError{
			Field:   "backend.url",
			Message: fmt.Sprintf("scheme must be http or https, got %q", u.Scheme),
		})
	case u.Host == "":
		errs = append(errs, ValidationError{
			Field:   "backend.url",
			Message: "missing host",
		})
	}

	if c.Backend.TimeoutSecs < 0 {
		errs = append(errs, ValidationError{
			Field:   "backend.timeout_secs",
			Message: fmt.Sprintf("cannot be negative, got %d", c.Backend.TimeoutSecs),
		})
	}

	if _, err := model.ParseMode(c.UI.DefaultMode); err != nil {
		errs = append(errs, ValidationError{
			Field:   "ui.default_mode",
			Message: fmt.Sprintf("invalid mode '%s', must be one of: plan, prompt", c.UI.DefaultMode),
		})
	}

	if !validGlamourStyles[strings.ToLower(c.UI.GlamourStyle)] {
		errs = append(errs, ValidationError{
			Field:   "ui.glamour_style",
			Message: fmt.Sprintf("unknown style '%s'", c.UI.GlamourStyle),
		})
	}

	if c.UI.WordWrap < 0 {
		errs = append(errs, ValidationError{
			Field:   "ui.word_wrap",
			Message: fmt.Sprintf("cannot be negative, got %d", c.UI.WordWrap),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - SWEBUDDY_BACKEND_URL: overrides backend.url
//   - SWEBUDDY_MODEL: overrides backend.model
//   - SWEBUDDY_TIMEOUT: overrides backend.timeout_secs
//   - SWEBUDDY_MODE: overrides ui.default_mode
//   - SWEBUDDY_GLAMOUR_STYLE: overrides ui.glamour_style
//   - SWEBUDDY_LOG_FILE: overrides log.file
//   - SWEBUDDY_DEBUG: set to "1" or "true" to enable debug logging
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("SWEBUDDY_BACKEND_URL"); v != "" {
		c.Backend.URL = v
	}
	if v := os.Getenv("SWEBUDDY_MODEL"); v != "" {
		c.Backend.Model = v
	}
	if v := os.Getenv("SWEBUDDY_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			c.Backend.TimeoutSecs = secs
		}
	}
	if v := os.Getenv("SWEBUDDY_MODE"); v != "" {
		c.UI.DefaultMode = v
	}
	if v := os.Getenv("SWEBUDDY_GLAMOUR_STYLE"); v != "" {
		c.UI.GlamourStyle = v
	}
	if v := os.Getenv("SWEBUDDY_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv("SWEBUDDY_DEBUG"); v != "" {
		c.Log.Debug = v == "1" || strings.ToLower(v) == "true"
	}
}

// String renders the config as indented JSON for display.
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}
