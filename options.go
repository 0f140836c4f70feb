// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yamlscan

// config holds the values Option functions accumulate, grounded on the
// functional-options pattern in yaml-go-yaml's options.go.
type config struct {
	sink                 DiagnosticSink
	filename             string
	maxSimpleKeyDistance int
}

func defaultConfig() config {
	return config{}
}

// Option configures a Stream created by NewStream.
type Option func(*config)

// WithDiagnosticSink routes scan and parse diagnostics to sink instead of
// discarding them.
func WithDiagnosticSink(sink DiagnosticSink) Option {
	return func(c *config) { c.sink = sink }
}

// WithFilename records name as the input's file name on the underlying
// scanner. The diagnostics passed to a DiagnosticSink do not carry it; a
// WriterSink labels its lines with its own Filename field.
func WithFilename(name string) Option {
	return func(c *config) { c.filename = name }
}

// WithMaxSimpleKeyDistance overrides how many columns ahead of a pending
// simple-key candidate the scanner will look before giving up on
// promoting it to a mapping key. The default matches
// scanner.DefaultMaxSimpleKeyDistance.
func WithMaxSimpleKeyDistance(n int) Option {
	return func(c *config) { c.maxSimpleKeyDistance = n }
}
