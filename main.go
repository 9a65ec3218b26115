// swebuddy - SWE AI Buddy in the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/swebuddy-tui/internal/backend"
	"github.com/jeranaias/swebuddy-tui/internal/catalog"
	"github.com/jeranaias/swebuddy-tui/internal/cli"
	"github.com/jeranaias/swebuddy-tui/internal/config"
	"github.com/jeranaias/swebuddy-tui/internal/ui/components"
	"github.com/jeranaias/swebuddy-tui/internal/ui/console"
	"github.com/jeranaias/swebuddy-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	os.Exit(run())
}

func run() int {
	cmd, args, err := cli.Parse(os.Args[1:])
	if err != nil {
		return cli.ReportError(os.Stderr, err)
	}

	// Commands that need no configuration
	switch cmd {
	case cli.CmdHelp:
		cli.PrintUsage(os.Stdout)
		return cli.ExitSuccess
	case cli.CmdVersion:
		return cli.ReportError(os.Stderr, cli.RunVersion(os.Stdout, args.JSON))
	case cli.CmdTopics:
		return cli.ReportError(os.Stderr, cli.RunTopics(os.Stdout, catalog.Default(), args.JSON))
	}

	cfg, err := cli.LoadConfig(args)
	if err != nil {
		return cli.ReportError(os.Stderr, err)
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: diagnostic log disabled: %v\n", err)
	}
	defer closeLog()

	switch cmd {
	case cli.CmdAsk:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return cli.ReportError(os.Stderr, cli.HandleAsk(ctx, args, cfg))
	default:
		return cli.ReportError(os.Stderr, runTUI(args, cfg))
	}
}

// setupLogging sends the standard logger to the configured file, or
// discards it so nothing is written over the console.
func setupLogging(cfg *config.Config) (func(), error) {
	path := cfg.LogPath()
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		log.SetOutput(io.Discard)
		return func() {}, err
	}
	f, err := tea.LogToFile(path, "swebuddy")
	if err != nil {
		log.SetOutput(io.Discard)
		return func() {}, err
	}
	log.Printf("swebuddy %s starting, backend %s", Version, cfg.Backend.URL)
	return func() { f.Close() }, nil
}

func runTUI(args cli.Args, cfg *config.Config) error {
	theme := styles.NewTheme()

	// Resolve "auto" once, before the program owns the terminal
	style := cfg.UI.GlamourStyle
	if style == "auto" {
		style = theme.GlamourStyle()
	}
	var renderer components.MarkdownRenderer = components.PlainRenderer{}
	if gr, err := components.NewGlamourRenderer(style, cfg.UI.WordWrap); err != nil {
		log.Printf("main: glamour unavailable, showing raw markdown: %v", err)
	} else {
		log.Printf("main: markdown style %s, wrap %d", gr.Style(), gr.Width())
		renderer = gr
	}

	m := console.New(console.Options{
		Catalog:   catalog.Default(),
		Solver:    newClient(cfg),
		Clipboard: console.SystemClipboard{},
		Renderer:  renderer,
		Theme:     theme,
		NewSolver: func(c *config.Config) console.Solver {
			return newClient(c)
		},
		Mode:     cfg.Mode(),
		LLM:      cfg.Backend.Model,
		WordWrap: cfg.UI.WordWrap,
	})

	opts := []tea.ProgramOption{}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(m, opts...)

	if w := watchConfig(p, args); w != nil {
		defer w.Close()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running console: %w", err)
	}
	return nil
}

func newClient(cfg *config.Config) *backend.Client {
	return backend.NewClientFromConfig(cfg).WithUserAgent("swebuddy/" + Version)
}

// watchConfig reloads the config file into the running console. Flags
// given on the command line keep precedence over the reloaded file.
func watchConfig(p *tea.Program, args cli.Args) *config.Watcher {
	path := args.ConfigPath
	if path == "" {
		path = config.ActivePath()
	}
	if path == "" {
		return nil
	}

	w, err := config.NewWatcher(path, config.DefaultDebounce, func(cfg *config.Config, err error) {
		if err == nil {
			err = cli.ApplyOverrides(cfg, args)
		}
		if err != nil {
			cfg = nil
		}
		p.Send(console.ConfigReloadedMsg{Config: cfg, Err: err})
	})
	if err != nil {
		log.Printf("main: config watcher unavailable: %v", err)
		return nil
	}
	if err := w.Watch(); err != nil {
		log.Printf("main: watching %s: %v", path, err)
		w.Close()
		return nil
	}
	log.Printf("main: watching %s for changes", w.Path())
	return w
}
