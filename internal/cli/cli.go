// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - Command-line parsing for swebuddy.
package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/jeranaias/swebuddy-tui/internal/config"
	"github.com/jeranaias/swebuddy-tui/internal/model"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdAsk
	CmdTopics
	CmdVersion
	CmdHelp
)

// String returns the command name as typed on the command line.
func (c Command) String() string {
	switch c {
	case CmdTUI:
		return "tui"
	case CmdAsk:
		return "ask"
	case CmdTopics:
		return "topics"
	case CmdVersion:
		return "version"
	case CmdHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Backend    string
	Model      string
	Mode       model.Mode // empty unless --mode was given
	ConfigPath string
	Debug      bool
	JSON       bool

	// ask
	Challenge   string
	Context     string
	RawMarkdown bool

	// Rest holds positionals that no command consumed.
	Rest []string
}

const usageText = `swebuddy - SWE AI Buddy in your terminal

Pick a professional challenge, describe your situation, and get back an
action plan or a reusable prompt.

Usage:
  swebuddy [flags]                   Start the interactive console (default)
  swebuddy tui [flags]               Same as above
  swebuddy ask [flags] [context...]  Submit one challenge and print the result
  swebuddy topics                    List challenge topics with their numbers
  swebuddy version                   Show version information
  swebuddy help                      Show this help

Global Flags:
  --backend URL        Backend base URL (default http://localhost:8000)
  --model NAME         Backend LLM provider (gemini_flash, groq_llama_4, openai)
  --mode plan|prompt   Output mode (default plan)
  --config PATH        Read configuration from PATH
  --debug              Write a diagnostic log to ~/.swebuddy/debug.log
  --json               JSON output (ask, topics, version)

Ask Flags:
  -c, --challenge N|TEXT   Topic number from "swebuddy topics" or literal text
  --context TEXT           Your situation; positionals are used if omitted
  --raw                    Print the markdown without rendering

Missing challenge or context are prompted for when stdin is a terminal.

Console Keys:
  tab / shift+tab   Move between fields
  ctrl+t            Toggle plan / prompt
  ctrl+s            Submit
  ctrl+r            Clear
  ctrl+y            Copy result
  f1                Help
  ctrl+c            Quit

Environment:
  SWEBUDDY_HOME, SWEBUDDY_BACKEND_URL, SWEBUDDY_MODEL, SWEBUDDY_TIMEOUT,
  SWEBUDDY_MODE, SWEBUDDY_GLAMOUR_STYLE, SWEBUDDY_LOG_FILE, SWEBUDDY_DEBUG

Version: %s
`

// PrintUsage writes the usage/help text.
func PrintUsage(w io.Writer) {
	fmt.Fprintf(w, usageText, Version)
}

// PrintVersion writes version information.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "swebuddy version %s\n", Version)
	fmt.Fprintf(w, "  Git commit: %s\n", GitCommit)
	fmt.Fprintf(w, "  Build date: %s\n", BuildDate)
	fmt.Fprintf(w, "  Go version: %s\n", runtime.Version())
}

// Parse parses argv (without the program name) into a command and its
// arguments.
func Parse(argv []string) (Command, Args, error) {
	remaining, parsedArgs, err := parseGlobalFlags(argv)
	if err != nil {
		return CmdHelp, parsedArgs, err
	}

	if len(remaining) == 0 {
		return CmdTUI, parsedArgs, nil
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]

	switch cmd {
	case "tui", "console":
		parsedArgs.Rest = remaining
		return CmdTUI, parsedArgs, nil

	case "ask", "solve":
		if err := parseAskArgs(&parsedArgs, remaining); err != nil {
			return CmdAsk, parsedArgs, err
		}
		return CmdAsk, parsedArgs, nil

	case "topics", "list":
		parsedArgs.Rest = remaining
		return CmdTopics, parsedArgs, nil

	case "version", "-v", "--version":
		return CmdVersion, parsedArgs, nil

	case "help", "-h", "--help":
		return CmdHelp, parsedArgs, nil

	default:
		return CmdHelp, parsedArgs, usageErrorf("unknown command %q (run 'swebuddy help')", cmd)
	}
}

// parseGlobalFlags extracts global flags from anywhere in args and
// returns the rest in order.
func parseGlobalFlags(args []string) ([]string, Args, error) {
	var remaining []string
	var parsedArgs Args

	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, value, hasValue := strings.Cut(arg, "=")

		// value takes the inline form or consumes the next argument.
		next := func() (string, error) {
			if hasValue {
				return value, nil
			}
			if i+1 >= len(args) {
				return "", usageErrorf("flag %s requires a value", name)
			}
			i++
			return args[i], nil
		}

		var err error
		switch name {
		case "--backend":
			parsedArgs.Backend, err = next()
		case "--model":
			parsedArgs.Model, err = next()
		case "--config":
			parsedArgs.ConfigPath, err = next()
		case "--mode":
			var raw string
			if raw, err = next(); err == nil {
				parsedArgs.Mode, err = model.ParseMode(raw)
				if err != nil {
					err = usageErrorf("--mode: %v", err)
				}
			}
		case "--debug":
			parsedArgs.Debug, err = boolValue(name, value, hasValue)
		case "--json":
			parsedArgs.JSON, err = boolValue(name, value, hasValue)
		default:
			remaining = append(remaining, arg)
		}
		if err != nil {
			return nil, parsedArgs, err
		}
	}

	return remaining, parsedArgs, nil
}

// boolValue reads a boolean flag. A bare flag is true; --flag=value must
// parse with ParseBoolString.
func boolValue(name, value string, hasValue bool) (bool, error) {
	if !hasValue {
		return true, nil
	}
	b, err := ParseBoolString(value)
	if err != nil {
		return false, usageErrorf("%s: %v", name, err)
	}
	return b, nil
}

// parseAskArgs parses ask command specific arguments.
func parseAskArgs(args *Args, remaining []string) error {
	p := NewArgParser(remaining, "raw")

	args.Challenge = strings.TrimSpace(p.FirstFlag("challenge", "c"))
	args.Context = p.Flag("context")
	args.RawMarkdown = p.BoolFlag("raw")

	if args.Context == "" && p.PositionalCount() > 0 {
		args.Context = JoinPositionalArgs(p, 0)
	} else {
		args.Rest = p.PositionalFrom(0)
	}

	if args.RawMarkdown && args.JSON {
		return usageErrorf("--raw and --json cannot be combined")
	}
	if p.HasFlag("challenge") && args.Challenge == "" {
		return usageErrorf("--challenge requires a value")
	}
	return nil
}

// ApplyOverrides layers command-line flags over a loaded config and
// re-validates it.
func ApplyOverrides(cfg *config.Config, args Args) error {
	if args.Backend != "" {
		cfg.Backend.URL = args.Backend
	}
	if args.Model != "" {
		cfg.Backend.Model = args.Model
	}
	if args.Mode != "" {
		cfg.UI.DefaultMode = string(args.Mode)
	}
	if args.Debug {
		cfg.Log.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return &ConfigError{Err: err}
	}
	return nil
}

// LoadConfig loads configuration from --config or the default location and
// applies flag overrides.
func LoadConfig(args Args) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if args.ConfigPath != "" {
		cfg, err = config.LoadFromPath(args.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, &ConfigError{Err: err}
	}
	if err := ApplyOverrides(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
