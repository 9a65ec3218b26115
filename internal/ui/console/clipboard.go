// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

import "github.com/atotto/clipboard"

// Clipboard writes plain text to a clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard is the operating system clipboard.
type SystemClipboard struct{}

// WriteAll copies text to the system clipboard. It fails when no clipboard
// utility is available (e.g. headless Linux without xclip or wl-copy).
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
