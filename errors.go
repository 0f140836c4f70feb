// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yamlscan

import (
	"github.com/willabides/yamlscan/internal/node"
	"github.com/willabides/yamlscan/internal/scanner"
)

// UsageError reports a violation of this package's API contract (for
// example, re-invoking Documents on a Stream), as opposed to a malformed
// input. It is always a programming error, never a property of the YAML
// being scanned, translating the split between ScannerError and the
// API-misuse panics libyaml's own maintainers document in
// WillAbides-yaml/internal/parserc/scannerc.go's newScannerError and
// readerc.go's sanity-checking panics.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string { return e.Message }

// ScannerError reports a malformed byte stream: a stray control
// character, an unterminated quoted scalar, a mapping value where none is
// allowed, and so on. Position is where the scanner gave up. Fetch one from
// Stream.Err or TokenStream.Err once Failed reports true.
type ScannerError = scanner.Error

// NodeError reports a malformed node tree found only once tokens are
// being assembled into nodes -- for instance a mapping missing its
// KEY_TOKEN where one token is expected, a case the scanner alone cannot
// detect. Fetch one from Document.Err.
type NodeError = node.Error
