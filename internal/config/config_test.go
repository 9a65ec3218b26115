// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/swebuddy-tui/internal/model"
)

// isolate points the config dir at a temp dir and clears every override.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("SWEBUDDY_HOME", dir)
	for _, k := range []string{
		"SWEBUDDY_BACKEND_URL", "SWEBUDDY_MODEL", "SWEBUDDY_TIMEOUT",
		"SWEBUDDY_MODE", "SWEBUDDY_GLAMOUR_STYLE", "SWEBUDDY_LOG_FILE", "SWEBUDDY_DEBUG",
	} {
		t.Setenv(k, "")
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "http://localhost:8000", cfg.Backend.URL)
	assert.Equal(t, "/api/solve", cfg.Backend.Endpoint)
	assert.Empty(t, cfg.Backend.Model)
	assert.Equal(t, model.ModePlan, cfg.Mode())
	assert.Equal(t, time.Duration(0), cfg.Timeout())
	assert.True(t, cfg.UI.AltScreen)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default().Backend, cfg.Backend)
	assert.Empty(t, ActivePath())
}

func TestLoad_TOML(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.toml"), `
[backend]
url = "https://buddy.example.com"
model = "groq_llama_4"
timeout_secs = 30

[ui]
default_mode = "prompt"
word_wrap = 100
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://buddy.example.com", cfg.Backend.URL)
	assert.Equal(t, "/api/solve", cfg.Backend.Endpoint, "unset keys keep defaults")
	assert.Equal(t, "groq_llama_4", cfg.Backend.Model)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.Equal(t, model.ModePrompt, cfg.Mode())
	assert.Equal(t, 100, cfg.UI.WordWrap)
}

func TestLoad_TOMLPreferredOverJSON(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.toml"), "[backend]\nurl = \"http://toml:1\"\n")
	writeFile(t, filepath.Join(dir, "config.json"), `{"backend":{"url":"http://json:2"}}`)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://toml:1", cfg.Backend.URL)
}

func TestLoad_JSONFallback(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.json"), `{"backend":{"url":"http://json:2","model":"openai"}}`)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://json:2", cfg.Backend.URL)
	assert.Equal(t, "openai", cfg.Backend.Model)
}

func TestLoadFromPath_Malformed(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.toml")
	writeFile(t, path, "[backend\nurl = ")

	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load TOML config")
}

func TestApplyEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("SWEBUDDY_BACKEND_URL", "http://env:9000")
	t.Setenv("SWEBUDDY_MODEL", "gemini_flash")
	t.Setenv("SWEBUDDY_TIMEOUT", "12")
	t.Setenv("SWEBUDDY_MODE", "prompt")
	t.Setenv("SWEBUDDY_GLAMOUR_STYLE", "dark")
	t.Setenv("SWEBUDDY_LOG_FILE", "/tmp/buddy.log")
	t.Setenv("SWEBUDDY_DEBUG", "true")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, "http://env:9000", cfg.Backend.URL)
	assert.Equal(t, "gemini_flash", cfg.Backend.Model)
	assert.Equal(t, 12, cfg.Backend.TimeoutSecs)
	assert.Equal(t, "prompt", cfg.UI.DefaultMode)
	assert.Equal(t, "dark", cfg.UI.GlamourStyle)
	assert.Equal(t, "/tmp/buddy.log", cfg.LogPath())
	assert.True(t, cfg.Log.Debug)
}

func TestApplyEnvOverrides_BadTimeoutIgnored(t *testing.T) {
	isolate(t)
	t.Setenv("SWEBUDDY_TIMEOUT", "soon")

	cfg := Default()
	cfg.ApplyEnvOverrides()
	assert.Equal(t, 0, cfg.Backend.TimeoutSecs)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.toml"), "[backend]\nurl = \"http://file:1\"\n")
	t.Setenv("SWEBUDDY_BACKEND_URL", "http://env:2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://env:2", cfg.Backend.URL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"bad scheme", func(c *Config) { c.Backend.URL = "ftp://host" }, "backend.url"},
		{"no host", func(c *Config) { c.Backend.URL = "http://" }, "backend.url"},
		{"unparseable", func(c *Config) { c.Backend.URL = "http://[::1" }, "backend.url"},
		{"negative timeout", func(c *Config) { c.Backend.TimeoutSecs = -1 }, "backend.timeout_secs"},
		{"unknown mode", func(c *Config) { c.UI.DefaultMode = "essay" }, "ui.default_mode"},
		{"unknown style", func(c *Config) { c.UI.GlamourStyle = "neon" }, "ui.glamour_style"},
		{"negative wrap", func(c *Config) { c.UI.WordWrap = -5 }, "ui.word_wrap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)

			var verrs ValidateErrors
			require.True(t, errors.As(err, &verrs))
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.field, verrs[0].Field)
		})
	}
}

func TestValidate_CollectsAll(t *testing.T) {
	cfg := Default()
	cfg.Backend.URL = "nope"
	cfg.UI.DefaultMode = "essay"
	cfg.UI.WordWrap = -1

	err := cfg.Validate()
	var verrs ValidateErrors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 3)
	assert.Equal(t, 2, strings.Count(err.Error(), "; "))
}

func TestLoad_InvalidFileRejected(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.toml"), "[ui]\ndefault_mode = \"essay\"\n")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ui.default_mode")
}

func TestLogPath(t *testing.T) {
	dir := isolate(t)

	cfg := Default()
	assert.Empty(t, cfg.LogPath(), "logging off by default")

	cfg.Log.Debug = true
	assert.Equal(t, filepath.Join(dir, "debug.log"), cfg.LogPath())

	cfg.Log.File = "/var/tmp/x.log"
	assert.Equal(t, "/var/tmp/x.log", cfg.LogPath())
}

func TestString(t *testing.T) {
	out := Default().String()
	assert.Contains(t, out, `"url": "http://localhost:8000"`)
	assert.Contains(t, out, `"default_mode": "plan"`)
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.toml")
	writeFile(t, path, "[backend]\nurl = \"http://before:1\"\n")

	got := make(chan *Config, 4)
	w, err := NewWatcher(path, 20*time.Millisecond, func(cfg *Config, err error) {
		if err == nil {
			got <- cfg
		}
	})
	require.NoError(t, err)
	require.NoError(t, w.Watch())
	defer w.Close()

	writeFile(t, path, "[backend]\nurl = \"http://after:2\"\n")

	select {
	case cfg := <-got:
		assert.Equal(t, "http://after:2", cfg.Backend.URL)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not report reload")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.toml")
	writeFile(t, path, "")

	calls := make(chan struct{}, 4)
	w, err := NewWatcher(path, 10*time.Millisecond, func(*Config, error) {
		calls <- struct{}{}
	})
	require.NoError(t, err)
	require.NoError(t, w.Watch())
	defer w.Close()

	writeFile(t, filepath.Join(dir, "unrelated.txt"), "hello")

	select {
	case <-calls:
		t.Fatal("reload fired for an unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_ReportsInvalidConfig(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.toml")
	writeFile(t, path, "")

	errs := make(chan error, 4)
	w, err := NewWatcher(path, 10*time.Millisecond, func(cfg *Config, err error) {
		if err != nil {
			errs <- err
		}
	})
	require.NoError(t, err)
	require.NoError(t, w.Watch())
	defer w.Close()

	writeFile(t, path, "[ui]\nword_wrap = -3\n")

	select {
	case err := <-errs:
		assert.Contains(t, err.Error(), "ui.word_wrap")
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not report invalid config")
	}
}

func TestWatcher_CloseAfterFailedWatch(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "missing", "config.toml")

	w, err := NewWatcher(path, 10*time.Millisecond, nil)
	require.NoError(t, err)
	assert.Equal(t, path, w.Path())
	require.Error(t, w.Watch())

	closed := make(chan struct{})
	go func() {
		_ = w.Close()
		close(closed)
	}()

	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		t.Fatal("Close blocked after Watch failed")
	}
}

func TestWatcher_CloseWithoutWatch(t *testing.T) {
	dir := isolate(t)

	w, err := NewWatcher(filepath.Join(dir, "config.toml"), 0, nil)
	require.NoError(t, err)

	closed := make(chan struct{})
	go func() {
		_ = w.Close()
		close(closed)
	}()

	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		t.Fatal("Close blocked without Watch")
	}
}

func TestLoad_GlamourStyleNormalized(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.toml")
	writeFile(t, path, "[ui]\nglamour_style = \" Dark \"\n")

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.UI.GlamourStyle)

	t.Setenv("SWEBUDDY_GLAMOUR_STYLE", "AUTO")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "auto", cfg.UI.GlamourStyle)
}

func TestLoadDotEnv_ErrorGoesToLog(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".env"), 0700))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })

	loadDotEnv()
	assert.Contains(t, buf.String(), "could not read .env")
}
