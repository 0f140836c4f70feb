//
// Copyright (c) 2011-2019 Canonical Ltd
// Copyright (c) 2006-2010 Kirill Simonov
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do
// so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package yamlh holds the token and position types shared by the scanner
// and node packages. It plays the role the libyaml-derived yamlh.go plays
// in a full yaml.v3-style implementation, trimmed to the subset a
// streaming tokenizer needs: there is no Event type here, because this
// module never composes tokens into emitter events.
package yamlh

import "fmt"

// Encoding is the detected stream encoding.
type Encoding int

const (
	// ANY_ENCODING lets the scanner choose the encoding.
	ANY_ENCODING Encoding = iota

	UTF8_ENCODING    // The default UTF-8 encoding.
	UTF16LE_ENCODING // The UTF-16-LE encoding, BOM detected but not decoded.
	UTF16BE_ENCODING // The UTF-16-BE encoding, BOM detected but not decoded.
	UTF32LE_ENCODING // The UTF-32-LE encoding, BOM detected but not decoded.
	UTF32BE_ENCODING // The UTF-32-BE encoding, BOM detected but not decoded.
	UNKNOWN_ENCODING // No BOM found and the input does not look like UTF-8.
)

func (e Encoding) String() string {
	switch e {
	case ANY_ENCODING:
		return "any"
	case UTF8_ENCODING:
		return "utf-8"
	case UTF16LE_ENCODING:
		return "utf-16le"
	case UTF16BE_ENCODING:
		return "utf-16be"
	case UTF32LE_ENCODING:
		return "utf-32le"
	case UTF32BE_ENCODING:
		return "utf-32be"
	}
	return "unknown"
}

// Position is a point in the input: a byte offset plus the line/column
// location used for diagnostics. Column counts Unicode code points, not
// bytes, and resets to zero on every line break.
type Position struct {
	Index  int // Byte offset into the input.
	Line   int // Zero-based line number.
	Column int // Zero-based column, in code points.
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line+1, p.Column+1)
}

// VersionDirective is the payload of a VERSION_DIRECTIVE_TOKEN.
type VersionDirective struct {
	Value []byte // The raw version literal, e.g. "1.2".
}

// TagDirective is the payload of a TAG_DIRECTIVE_TOKEN.
type TagDirective struct {
	Handle []byte
	Prefix []byte
}

// TokenKind identifies the kind of a Token.
type TokenKind int

const (
	NO_TOKEN TokenKind = iota // An empty/uninitialized token.

	STREAM_START_TOKEN
	STREAM_END_TOKEN

	VERSION_DIRECTIVE_TOKEN
	TAG_DIRECTIVE_TOKEN
	DOCUMENT_START_TOKEN
	DOCUMENT_END_TOKEN

	BLOCK_SEQUENCE_START_TOKEN // Synthetic: no physical presence in the input.
	BLOCK_MAPPING_START_TOKEN  // Synthetic.
	BLOCK_END_TOKEN            // Synthetic.

	FLOW_SEQUENCE_START_TOKEN
	FLOW_SEQUENCE_END_TOKEN
	FLOW_MAPPING_START_TOKEN
	FLOW_MAPPING_END_TOKEN

	BLOCK_ENTRY_TOKEN
	FLOW_ENTRY_TOKEN
	KEY_TOKEN   // May be synthetic (inserted) or physical ('?').
	VALUE_TOKEN

	ALIAS_TOKEN
	ANCHOR_TOKEN
	TAG_TOKEN
	SCALAR_TOKEN

	ERROR_TOKEN // Sentinel yielded after Failed() becomes true.
)

var tokenKindNames = [...]string{
	NO_TOKEN:                   "NO_TOKEN",
	STREAM_START_TOKEN:         "STREAM_START_TOKEN",
	STREAM_END_TOKEN:           "STREAM_END_TOKEN",
	VERSION_DIRECTIVE_TOKEN:    "VERSION_DIRECTIVE_TOKEN",
	TAG_DIRECTIVE_TOKEN:        "TAG_DIRECTIVE_TOKEN",
	DOCUMENT_START_TOKEN:       "DOCUMENT_START_TOKEN",
	DOCUMENT_END_TOKEN:         "DOCUMENT_END_TOKEN",
	BLOCK_SEQUENCE_START_TOKEN: "BLOCK_SEQUENCE_START_TOKEN",
	BLOCK_MAPPING_START_TOKEN:  "BLOCK_MAPPING_START_TOKEN",
	BLOCK_END_TOKEN:            "BLOCK_END_TOKEN",
	FLOW_SEQUENCE_START_TOKEN:  "FLOW_SEQUENCE_START_TOKEN",
	FLOW_SEQUENCE_END_TOKEN:    "FLOW_SEQUENCE_END_TOKEN",
	FLOW_MAPPING_START_TOKEN:   "FLOW_MAPPING_START_TOKEN",
	FLOW_MAPPING_END_TOKEN:     "FLOW_MAPPING_END_TOKEN",
	BLOCK_ENTRY_TOKEN:          "BLOCK_ENTRY_TOKEN",
	FLOW_ENTRY_TOKEN:           "FLOW_ENTRY_TOKEN",
	KEY_TOKEN:                  "KEY_TOKEN",
	VALUE_TOKEN:                "VALUE_TOKEN",
	ALIAS_TOKEN:                "ALIAS_TOKEN",
	ANCHOR_TOKEN:               "ANCHOR_TOKEN",
	TAG_TOKEN:                  "TAG_TOKEN",
	SCALAR_TOKEN:               "SCALAR_TOKEN",
	ERROR_TOKEN:                "ERROR_TOKEN",
}

func (k TokenKind) String() string {
	if k >= 0 && int(k) < len(tokenKindNames) && tokenKindNames[k] != "" {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is a single tagged record produced by the scanner.
type Token struct {
	Kind TokenKind

	StartMark Position
	EndMark   Position

	// Range is the literal input substring the token was scanned from.
	// It is empty for synthetic tokens (BlockEnd, BlockSequenceStart,
	// BlockMappingStart, and a Key token inserted by simple-key
	// promotion).
	Range []byte

	// Encoding is set on STREAM_START_TOKEN.
	Encoding Encoding

	// Version is set on VERSION_DIRECTIVE_TOKEN.
	Version VersionDirective

	// TagDir is set on TAG_DIRECTIVE_TOKEN.
	TagDir TagDirective

	// Value holds the unescaped scalar value (SCALAR_TOKEN), the alias
	// name without '*' (ALIAS_TOKEN), the anchor name without '&'
	// (ANCHOR_TOKEN), or the tag text (TAG_TOKEN).
	Value []byte
}

// SimpleKey records a token that may later be retroactively promoted to a
// KEY_TOKEN. TokenNumber counts every token the scanner has queued before
// the candidate, so the candidate's current index in the token queue is
// TokenNumber minus the number of tokens already consumed.
type SimpleKey struct {
	TokenNumber int      // Absolute sequence number of the candidate token.
	Mark        Position // Position of the candidate token, for staleness checks and diagnostics.
	FlowLevel   int
	Required    bool
}
