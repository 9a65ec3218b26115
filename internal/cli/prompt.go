// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// prompt.go - Line-edited prompts for values missing from the command line.
package cli

import (
	"errors"
	"io"
	"strings"

	"github.com/peterh/liner"
)

// ErrAborted is returned when the user cancels a prompt with Ctrl+C or
// Ctrl+D.
var ErrAborted = errors.New("aborted")

// Prompter reads one line of input after showing a label.
type Prompter interface {
	Prompt(label string) (string, error)
	Close() error
}

// LinePrompter provides line editing, history within the session and tab
// completion of catalog topics.
type LinePrompter struct {
	line *liner.State
}

// NewLinePrompter puts the terminal under liner's control. Callers must
// Close it before writing further output.
func NewLinePrompter(completions []string) *LinePrompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	if len(completions) > 0 {
		line.SetCompleter(completeFrom(completions))
	}
	return &LinePrompter{line: line}
}

// Prompt reads a line. Non-empty input is appended to history.
func (p *LinePrompter) Prompt(label string) (string, error) {
	input, err := p.line.Prompt(label)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", ErrAborted
		}
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		p.line.AppendHistory(input)
	}
	return input, nil
}

// Close restores the terminal.
func (p *LinePrompter) Close() error {
	return p.line.Close()
}

// completeFrom returns a completer matching candidates by case-insensitive
// prefix.
func completeFrom(candidates []string) func(string) []string {
	return func(line string) []string {
		prefix := strings.ToLower(line)
		var out []string
		for _, c := range candidates {
			if strings.HasPrefix(strings.ToLower(c), prefix) {
				out = append(out, c)
			}
		}
		return out
	}
}
