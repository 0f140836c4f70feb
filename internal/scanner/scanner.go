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

// Package scanner turns a byte slice into a stream of yamlh.Tokens. It is a
// line-by-line re-expression of the Scanner class in
// original_source/lib/Support/YAMLParser.cpp, with the queue/simple-key
// bookkeeping kept close to the arithmetic in
// WillAbides-yaml/internal/parserc/scannerc.go.
package scanner

import (
	"fmt"

	"github.com/willabides/yamlscan/internal/diag"
	"github.com/willabides/yamlscan/internal/unicode"
	"github.com/willabides/yamlscan/internal/yamlh"
)

// DefaultMaxSimpleKeyDistance bounds how many columns ahead of a simple-key
// candidate the scanner will look before giving up on promoting it,
// mirroring libyaml's 1024-code-point limit.
const DefaultMaxSimpleKeyDistance = 1024

// Scanner produces a token at a time from a complete, in-memory input
// buffer. It never blocks and never reads past the end of data; the whole
// document is expected to already be resident, as in the original
// llvm::yaml::Scanner.
type Scanner struct {
	data []byte
	pos  int

	line   int
	column int

	encoding   yamlh.Encoding
	sink       diag.Sink
	filename   string
	maxKeyDist int

	isStartOfStream bool
	isEndOfStream   bool
	failed          bool

	simpleKeyAllowed bool
	simpleKeys       []yamlh.SimpleKey

	indent  int
	indents []int

	flowLevel int

	queue    []yamlh.Token
	consumed int

	lastErr *Error
}

// Error reports a malformed byte stream: a stray control character, an
// unterminated quoted scalar, a mapping value where none is allowed, and
// so on. Position is where the scanner gave up. It is reported to the
// DiagnosticSink as it happens and also retained, so a caller that wants
// a typed error value rather than a diagnostic string can fetch it with
// LastError.
type Error struct {
	Position yamlh.Position
	Message  string
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Position, e.Message) }

// New creates a Scanner over data. sink receives at most one diagnostic,
// raised the moment the input is found to be malformed. filename is
// stored on the Scanner; the diagnostic passed to sink does not include
// it.
func New(data []byte, sink diag.Sink, filename string) *Scanner {
	if sink == nil {
		sink = noopSink{}
	}
	s := &Scanner{
		data:             data,
		sink:             sink,
		filename:         filename,
		maxKeyDist:       DefaultMaxSimpleKeyDistance,
		isStartOfStream:  true,
		simpleKeyAllowed: true,
		indent:           -1,
	}
	s.encoding, s.pos = unicode.DetectBOM(data)
	return s
}

// SetMaxSimpleKeyDistance overrides DefaultMaxSimpleKeyDistance.
func (s *Scanner) SetMaxSimpleKeyDistance(n int) { s.maxKeyDist = n }

type noopSink struct{}

func (noopSink) Report(yamlh.Position, diag.Severity, string) {}

// Failed reports whether scanning has permanently stopped after an error.
func (s *Scanner) Failed() bool { return s.failed }

// mark returns the current position.
func (s *Scanner) mark() yamlh.Position {
	return yamlh.Position{Index: s.pos, Line: s.line, Column: s.column}
}

func (s *Scanner) setError(pos yamlh.Position, format string, args ...interface{}) {
	if s.failed {
		return
	}
	s.failed = true
	msg := fmt.Sprintf(format, args...)
	s.queue = []yamlh.Token{{Kind: yamlh.ERROR_TOKEN, StartMark: pos, EndMark: pos}}
	s.lastErr = &Error{Position: pos, Message: msg}
	s.sink.Report(pos, diag.Error, msg)
}

// LastError returns the error that made the scanner fail, or nil if it
// hasn't failed.
func (s *Scanner) LastError() *Error { return s.lastErr }

// Peek returns the next token without consuming it. Once the scanner has
// failed, it returns the same ERROR_TOKEN forever.
func (s *Scanner) Peek() yamlh.Token {
	for {
		for len(s.queue) == 0 {
			if !s.fetchMoreTokens() {
				return yamlh.Token{Kind: yamlh.ERROR_TOKEN, StartMark: s.mark(), EndMark: s.mark()}
			}
		}
		tok := s.queue[0]
		if tok.Kind == yamlh.ERROR_TOKEN {
			return tok
		}
		// A simple-key candidate still pending at this exact token means
		// there might yet be a promotion to splice in ahead of it; fetch
		// again before handing it out.
		needMore := false
		for _, sk := range s.simpleKeys {
			if sk.TokenNumber == s.consumed {
				needMore = true
				break
			}
		}
		if !needMore {
			return tok
		}
		if !s.fetchMoreTokens() {
			return yamlh.Token{Kind: yamlh.ERROR_TOKEN, StartMark: s.mark(), EndMark: s.mark()}
		}
	}
}

// Next consumes and returns the next token.
func (s *Scanner) Next() yamlh.Token {
	tok := s.Peek()
	if tok.Kind != yamlh.ERROR_TOKEN || len(s.queue) > 0 {
		s.queue = s.queue[1:]
		s.consumed++
	}
	return tok
}

func (s *Scanner) appendToken(tok yamlh.Token) int {
	s.insertToken(len(s.queue), tok)
	return s.consumed + len(s.queue) - 1
}

func (s *Scanner) insertToken(idx int, tok yamlh.Token) {
	if s.failed {
		// After an error the queue holds only the ERROR_TOKEN.
		return
	}
	tok.Range = s.data[tok.StartMark.Index:tok.EndMark.Index]
	s.queue = append(s.queue, yamlh.Token{})
	copy(s.queue[idx+1:], s.queue[idx:])
	s.queue[idx] = tok
}

func (s *Scanner) tokenNumberAt(idx int) int { return s.consumed + idx }

// fetchMoreTokens scans forward until at least one new token has been
// queued, translating Scanner::fetchMoreTokens / fetchNextToken.
func (s *Scanner) fetchMoreTokens() bool {
	if s.failed {
		return false
	}

	if s.isStartOfStream {
		return s.fetchStreamStart()
	}

	switch s.encoding {
	case yamlh.UTF16LE_ENCODING, yamlh.UTF16BE_ENCODING, yamlh.UTF32LE_ENCODING, yamlh.UTF32BE_ENCODING:
		s.setError(s.mark(), "input encoding %s is recognized but not decoded", s.encoding)
		return false
	}

	s.scanToNextToken()

	s.removeStaleSimpleKeys()

	s.unrollIndent(s.column)

	if s.pos >= len(s.data) {
		return s.fetchStreamEnd()
	}

	c := s.data[s.pos]

	switch {
	case c == '%' && s.column == 0:
		return s.fetchDirective()
	case c == '-' && s.column == 0 && s.isDocIndicator("---"):
		return s.fetchDocumentIndicator(yamlh.DOCUMENT_START_TOKEN)
	case c == '.' && s.column == 0 && s.isDocIndicator("..."):
		return s.fetchDocumentIndicator(yamlh.DOCUMENT_END_TOKEN)
	case c == '[':
		return s.fetchFlowCollectionStart(yamlh.FLOW_SEQUENCE_START_TOKEN)
	case c == '{':
		return s.fetchFlowCollectionStart(yamlh.FLOW_MAPPING_START_TOKEN)
	case c == ']':
		return s.fetchFlowCollectionEnd(yamlh.FLOW_SEQUENCE_END_TOKEN)
	case c == '}':
		return s.fetchFlowCollectionEnd(yamlh.FLOW_MAPPING_END_TOKEN)
	case c == ',':
		return s.fetchFlowEntry()
	case c == '-' && isBlankOrBreakAt(s.data, s.pos+1):
		return s.fetchBlockEntry()
	case c == '?' && (s.flowLevel > 0 || isBlankOrBreakAt(s.data, s.pos+1)):
		return s.fetchKey()
	case c == ':' && (s.flowLevel > 0 || isBlankOrBreakAt(s.data, s.pos+1)):
		return s.fetchValue()
	case c == '*':
		return s.fetchAnchorOrAlias(yamlh.ALIAS_TOKEN)
	case c == '&':
		return s.fetchAnchorOrAlias(yamlh.ANCHOR_TOKEN)
	case c == '!':
		return s.fetchTag()
	case c == '|' && s.flowLevel == 0:
		return s.fetchBlockScalar(true)
	case c == '>' && s.flowLevel == 0:
		return s.fetchBlockScalar(false)
	case c == '\'':
		return s.fetchFlowScalar(true)
	case c == '"':
		return s.fetchFlowScalar(false)
	case s.canStartPlainScalar(c):
		return s.fetchPlainScalar()
	}

	s.setError(s.mark(), "unrecognized character %q while scanning for the next token", c)
	return false
}

func (s *Scanner) isDocIndicator(indicator string) bool {
	if s.pos+3 > len(s.data) || string(s.data[s.pos:s.pos+3]) != indicator {
		return false
	}
	return isBlankOrBreakAt(s.data, s.pos+3)
}

// canStartPlainScalar translates the compound condition guarding plain
// scalars in Scanner::fetchMoreTokens: indicator characters are rejected
// unless they are unambiguous in context, and ASCII control characters
// are rejected outright.
func (s *Scanner) canStartPlainScalar(c byte) bool {
	if c < 0x20 || c == 0x7F {
		return false
	}
	switch c {
	case ',', '[', ']', '{', '}':
		return false
	case '-':
		return !isBlankOrBreakAt(s.data, s.pos+1)
	case '?', ':':
		return s.flowLevel == 0 && !isBlankOrBreakAt(s.data, s.pos+1)
	}
	return true
}

func (s *Scanner) fetchStreamStart() bool {
	s.isStartOfStream = false
	s.indent = -1
	mark := s.mark()
	s.appendToken(yamlh.Token{
		Kind:      yamlh.STREAM_START_TOKEN,
		StartMark: mark,
		EndMark:   mark,
		Encoding:  s.encoding,
	})
	return true
}

func (s *Scanner) fetchStreamEnd() bool {
	s.simpleKeyAllowed = false
	s.simpleKeys = nil
	s.unrollIndent(-1)
	mark := s.mark()
	s.appendToken(yamlh.Token{Kind: yamlh.STREAM_END_TOKEN, StartMark: mark, EndMark: mark})
	s.isEndOfStream = true
	return true
}
