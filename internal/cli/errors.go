// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Error types and exit codes shared by the swebuddy commands.
//
// Command handlers always return errors and let Run decide how to
// display them and which exit code to use.

package cli

import (
	"errors"
	"fmt"
)

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError covers backend failures and anything unclassified
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments
	ExitUsageError = 2
	// ExitConfigError indicates a configuration file or settings error
	ExitConfigError = 3
)

// ErrNoTerminal is returned when a value must be prompted for but stdin
// is not a terminal.
var ErrNoTerminal = errors.New("stdin is not a terminal")

// UsageError reports invalid command-line usage.
type UsageError struct {
	Message string
	Err     error
}

func (e *UsageError) Error() string {
	return e.Message
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// usageErrorf builds a UsageError from a format string.
func usageErrorf(format string, args ...any) error {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// ConfigError wraps a failure to load or validate configuration.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// SolveError is returned by ask when the backend call fails. Its message
// is always the generic failure text; the cause is kept for logging.
type SolveError struct {
	Message string
	Err     error
}

func (e *SolveError) Error() string {
	return e.Message
}

func (e *SolveError) Unwrap() error {
	return e.Err
}

// GetExitCode maps an error to the process exit code.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var usage *UsageError
	if errors.As(err, &usage) || errors.Is(err, ErrNoTerminal) {
		return ExitUsageError
	}
	var cfg *ConfigError
	if errors.As(err, &cfg) {
		return ExitConfigError
	}
	return ExitGeneralError
}
