// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - One-shot submission for scripts and quick questions.
//
// Command: ask [flags] [context...]
//
// Examples:
//
//	swebuddy ask -c 3 "Two services share one database and deploys collide"
//	swebuddy ask --challenge "Negotiating scope" --context "..." --mode prompt
//	swebuddy ask -c 1 --context "..." --json | jq -r .data.analysis
//
// The same single POST the console makes. On any backend failure the
// generic failure message is printed and the exit code is 1.
package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jeranaias/swebuddy-tui/internal/backend"
	"github.com/jeranaias/swebuddy-tui/internal/catalog"
	"github.com/jeranaias/swebuddy-tui/internal/config"
	"github.com/jeranaias/swebuddy-tui/internal/model"
	"github.com/jeranaias/swebuddy-tui/internal/ui/components"
	"github.com/jeranaias/swebuddy-tui/internal/ui/styles"
)

const (
	challengePrompt = "Challenge (number or text): "
	contextPrompt   = "Context: "
)

// Solver performs one solve request.
type Solver interface {
	Solve(ctx context.Context, req model.SolveRequest) (*model.SolveResponse, error)
}

// AskOptions carries the collaborators of RunAsk.
type AskOptions struct {
	Solver  Solver
	Catalog *catalog.Catalog

	// Prompter asks for missing values. Nil means stdin is not a terminal.
	Prompter Prompter

	// Renderer renders the analysis. Nil prints the markdown as received.
	Renderer components.MarkdownRenderer

	Out    io.Writer
	ErrOut io.Writer

	// Model is the backend LLM provider; Mode is used unless --mode was given.
	Model string
	Mode  model.Mode
}

// HandleAsk wires the production collaborators from cfg and runs ask.
func HandleAsk(ctx context.Context, args Args, cfg *config.Config) error {
	cat := catalog.Default()
	opts := AskOptions{
		Solver:  backend.NewClientFromConfig(cfg).WithUserAgent("swebuddy/" + Version),
		Catalog: cat,
		Out:     os.Stdout,
		ErrOut:  os.Stderr,
		Model:   cfg.Backend.Model,
		Mode:    cfg.Mode(),
	}

	if (args.Challenge == "" || strings.TrimSpace(args.Context) == "") && IsTTY() {
		var topics []string
		for _, opt := range cat.Options() {
			topics = append(topics, opt.Topic)
		}
		opts.Prompter = NewLinePrompter(topics)
	}

	if !args.RawMarkdown && !args.JSON && IsStdoutTTY() {
		width := cfg.UI.WordWrap
		if width <= 0 {
			width = GetTerminalWidth() - 2
		}
		r, err := components.NewGlamourRenderer(cfg.UI.GlamourStyle, width)
		if err != nil {
			log.Printf("ask: glamour unavailable, printing raw markdown: %v", err)
		} else {
			opts.Renderer = r
		}
	}

	return RunAsk(ctx, args, opts)
}

// RunAsk resolves the selection, submits it once and prints the result.
// The prompter is closed as soon as both values are known, before the
// request is sent.
func RunAsk(ctx context.Context, args Args, opts AskOptions) error {
	prompter := opts.Prompter
	release := func() {
		if prompter == nil {
			return
		}
		if err := prompter.Close(); err != nil {
			log.Printf("ask: closing prompter: %v", err)
		}
		prompter = nil
	}
	defer release()

	mode := opts.Mode
	if args.Mode != "" {
		mode = args.Mode
	}
	sel := model.NewSelection().WithMode(mode)

	challenge := args.Challenge
	if challenge == "" {
		if opts.Prompter == nil {
			return fmt.Errorf("%w: pass --challenge", ErrNoTerminal)
		}
		writeTopics(opts.ErrOut, opts.Catalog)
		fmt.Fprintln(opts.ErrOut)
		input, err := opts.Prompter.Prompt(challengePrompt)
		if err != nil {
			return err
		}
		challenge = strings.TrimSpace(input)
	}
	topic, err := resolveChallenge(opts.Catalog, challenge)
	if err != nil {
		return err
	}
	if topic != "" && !opts.Catalog.Contains(topic) {
		log.Printf("ask: %q is not a catalog topic, sending it as given", topic)
	}
	sel = sel.WithChallenge(topic)

	text := strings.TrimSpace(args.Context)
	if text == "" {
		if opts.Prompter == nil {
			return fmt.Errorf("%w: pass --context", ErrNoTerminal)
		}
		input, err := opts.Prompter.Prompt(contextPrompt)
		if err != nil {
			return err
		}
		text = strings.TrimSpace(input)
	}
	sel = sel.WithContext(text)
	release()

	if !sel.Ready() {
		return usageErrorf("both a challenge and a context are required")
	}

	req := sel.Request(opts.Model)
	start := time.Now()
	resp, err := opts.Solver.Solve(ctx, req)
	elapsed := time.Since(start)
	if err != nil {
		log.Printf("ask: solve failed after %s: %v", elapsed.Round(time.Millisecond), err)
		failure := &SolveError{Message: model.FailureMessage, Err: err}
		if args.JSON {
			if werr := NewJSONErrorResponse("ask", failure).Write(opts.Out); werr != nil {
				log.Printf("ask: writing JSON error: %v", werr)
			}
		}
		return failure
	}

	if args.JSON {
		return NewJSONResponse("ask", AskData{
			Challenge: resp.Challenge,
			Mode:      req.Mode.String(),
			Analysis:  resp.Analysis,
			Model:     req.Model,
			Duration:  elapsed.Round(time.Millisecond).String(),
		}).Write(opts.Out)
	}

	writeResult(opts.Out, req, resp, opts.Renderer)
	return nil
}

// resolveChallenge treats a number as a 1-based catalog index and
// anything else as literal topic text.
func resolveChallenge(cat *catalog.Catalog, s string) (string, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return s, nil
	}
	opt, err := cat.Lookup(n)
	if err != nil {
		return "", &UsageError{Message: fmt.Sprintf("--challenge: %v", err), Err: err}
	}
	return opt.Topic, nil
}

// writeResult prints the analysis. Without a renderer the markdown is
// written exactly as received so it can be piped.
func writeResult(w io.Writer, req model.SolveRequest, resp *model.SolveResponse, r components.MarkdownRenderer) {
	if r == nil {
		fmt.Fprint(w, resp.Analysis)
		if !strings.HasSuffix(resp.Analysis, "\n") {
			fmt.Fprintln(w)
		}
		return
	}

	fmt.Fprintln(w, HeadingStyle.Render(req.Mode.Heading()))
	fmt.Fprintf(w, "%s %s\n\n", LabelStyle.Render("Challenge:"), resp.Challenge)
	fmt.Fprintln(w, components.RenderOrRaw(r, resp.Analysis))
}

// ReportError prints err to w and returns the exit code for it.
func ReportError(w io.Writer, err error) int {
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintln(w, styles.RenderError("Error: "+err.Error()))
	return GetExitCode(err)
}
