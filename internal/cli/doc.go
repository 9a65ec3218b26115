// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and the non-interactive
// commands of swebuddy.
//
// # Commands
//
//   - tui (default): the interactive console, run from main
//   - ask: one submission, printed to stdout
//   - topics: the catalog with the numbers ask accepts
//   - version, help
//
// # Usage
//
//	cmd, args, err := cli.Parse(os.Args[1:])
//	if err != nil {
//	    os.Exit(cli.ReportError(os.Stderr, err))
//	}
//	cfg, err := cli.LoadConfig(args)
//	...
//	switch cmd {
//	case cli.CmdAsk:
//	    err = cli.HandleAsk(ctx, args, cfg)
//	case cli.CmdTopics:
//	    err = cli.RunTopics(os.Stdout, catalog.Default(), args.JSON)
//	}
//
// Errors are returned, never printed by handlers. GetExitCode maps them
// to exit codes: 2 for usage, 3 for configuration, 1 otherwise.
package cli
