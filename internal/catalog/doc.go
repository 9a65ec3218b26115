// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package catalog holds the fixed taxonomy of professional challenge topics.
//
// The catalog is built once at startup and never mutated. Topics are grouped
// into two ordered categories, technical and non-technical, mirroring the
// grouped picker shown in the console.
//
// # Usage
//
//	cat := catalog.Default()
//	for _, opt := range cat.Options() {
//	    fmt.Println(opt.Category.Label(), opt.Topic)
//	}
package catalog
