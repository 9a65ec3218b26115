// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides string helpers shared by the console and the CLI.
//
// All width calculations go through go-runewidth so East Asian wide
// characters and emoji occupy the columns the terminal actually gives them.
//
// # Usage
//
//	// Fit a catalog topic into a picker row
//	row := util.TruncateWidth(topic, width-4)
package util
