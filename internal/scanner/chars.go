// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package scanner

import "github.com/willabides/yamlscan/internal/unicode"

func isBlank(c byte) bool { return c == ' ' || c == '\t' }

func isBreak(c byte) bool { return c == '\n' || c == '\r' }

func isBlankOrBreak(c byte) bool { return isBlank(c) || isBreak(c) }

func isBlankOrBreakAt(data []byte, i int) bool {
	if i >= len(data) {
		return true
	}
	return isBlankOrBreak(data[i])
}

// advance moves the scanner forward by one decoded rune starting at s.pos,
// updating line/column bookkeeping. A "\r\n" pair is treated as a single
// break, as in Scanner::skip_nb_char / Scanner::scanToNextToken.
func (s *Scanner) advance() {
	if s.pos >= len(s.data) {
		return
	}
	if s.data[s.pos] == '\r' {
		s.pos++
		if s.pos < len(s.data) && s.data[s.pos] == '\n' {
			s.pos++
		}
		s.line++
		s.column = 0
		return
	}
	if s.data[s.pos] == '\n' {
		s.pos++
		s.line++
		s.column = 0
		return
	}
	_, size := unicode.DecodeRune(s.data[s.pos:])
	if size == 0 {
		s.setError(s.mark(), "invalid UTF-8 code unit sequence")
		size = 1
	}
	s.pos += size
	s.column++
}

// skipBlanks advances over spaces and tabs.
func (s *Scanner) skipBlanks() {
	for s.pos < len(s.data) && isBlank(s.data[s.pos]) {
		s.advance()
	}
}

// scanToNextToken skips whitespace, line breaks, and comments, translating
// Scanner::scanToNextToken. It also re-arms simpleKeyAllowed after a line
// break, since a simple key can only start at the beginning of a line (or
// right after a flow indicator).
func (s *Scanner) scanToNextToken() {
	for {
		s.skipBlanks()
		if s.pos < len(s.data) && s.data[s.pos] == '#' {
			for s.pos < len(s.data) && !isBreak(s.data[s.pos]) {
				s.advance()
			}
		}
		if s.pos < len(s.data) && isBreak(s.data[s.pos]) {
			s.advance()
			if s.flowLevel == 0 {
				s.simpleKeyAllowed = true
			}
			continue
		}
		break
	}
}
