// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package diag defines the diagnostic sink collaborator interface the
// scanner and node layers report through, following the
// Report(position, severity, message) shape described in
// SPEC_FULL.md §3.2 and the Scanner::printError/setError split in
// original_source/include/llvm/Support/YAMLParser.h. Rendering of source
// context is explicitly out of scope (SPEC_FULL.md §1); this package only
// carries the message to whatever sink the caller supplies.
package diag

import (
	"fmt"
	"io"

	"github.com/willabides/yamlscan/internal/yamlh"
)

// Severity classifies a diagnostic.
type Severity int

const (
	Error Severity = iota
	Warning
	Note
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Note:
		return "note"
	}
	return "unknown"
}

// Sink receives diagnostics from the scanner and node layers. The scanner
// calls Report at most once per failure; once it has failed it stops
// reporting.
type Sink interface {
	Report(pos yamlh.Position, severity Severity, message string)
}

// Entry is one diagnostic recorded by a CollectingSink.
type Entry struct {
	Position yamlh.Position
	Severity Severity
	Message  string
}

func (e Entry) String() string {
	return fmt.Sprintf("%s: %s: %s", e.Position, e.Severity, e.Message)
}

// CollectingSink accumulates every diagnostic it receives, for tests and
// other callers that want to inspect diagnostics programmatically rather
// than have them rendered.
type CollectingSink struct {
	Entries []Entry
}

func (s *CollectingSink) Report(pos yamlh.Position, severity Severity, message string) {
	s.Entries = append(s.Entries, Entry{Position: pos, Severity: severity, Message: message})
}

// WriterSink formats each diagnostic as a single line and writes it to W,
// for simple command-line consumers such as cmd/yamltok.
type WriterSink struct {
	W        io.Writer
	Filename string
}

func (s *WriterSink) Report(pos yamlh.Position, severity Severity, message string) {
	name := s.Filename
	if name == "" {
		name = "<input>"
	}
	fmt.Fprintf(s.W, "%s:%s: %s: %s\n", name, pos, severity, message)
}
