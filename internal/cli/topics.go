// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// topics.go - The "topics" and "version" commands.
package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/jeranaias/swebuddy-tui/internal/catalog"
)

// RunTopics lists the catalog grouped by category. Numbers are 1-based
// and are the values accepted by "ask --challenge".
func RunTopics(w io.Writer, cat *catalog.Catalog, jsonMode bool) error {
	if jsonMode {
		data := make([]TopicData, 0, cat.Len())
		index := 0
		for _, g := range cat.Groups() {
			for _, topic := range g.Topics {
				index++
				data = append(data, TopicData{
					Index:    index,
					Category: g.Category.Label(),
					Topic:    topic,
				})
			}
		}
		return NewJSONResponse("topics", data).Write(w)
	}

	writeTopics(w, cat)
	return nil
}

// writeTopics prints each non-empty group under its label with a running
// index across groups.
func writeTopics(w io.Writer, cat *catalog.Catalog) {
	index := 0
	for _, g := range cat.Groups() {
		if len(g.Topics) == 0 {
			continue
		}
		if index > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, CategoryStyle.Render(g.Category.Label()))
		for _, topic := range g.Topics {
			index++
			fmt.Fprintf(w, "%s %s\n", IndexStyle.Render(fmt.Sprintf("%d.", index)), topic)
		}
	}
}

// RunVersion prints version information.
func RunVersion(w io.Writer, jsonMode bool) error {
	if jsonMode {
		return NewJSONResponse("version", VersionData{
			Version:   Version,
			GitCommit: GitCommit,
			BuildDate: BuildDate,
			GoVersion: runtime.Version(),
		}).Write(w)
	}
	PrintVersion(w)
	return nil
}
