// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package scanner

import "github.com/willabides/yamlscan/internal/yamlh"

// fetchPlainScalar scans an unquoted scalar, translating
// Scanner::scanPlainScalar. A plain scalar in block context ends at the
// first ": " or " #"; in flow context it additionally ends at a flow
// indicator. Leading/trailing blanks are trimmed; interior line folding
// collapses to a single space, a blank run to as many as were seen.
func (s *Scanner) fetchPlainScalar() bool {
	s.saveSimpleKey(false)
	s.simpleKeyAllowed = false

	start := s.mark()
	end := start
	var value []byte
	// pendingBreaks counts consecutive line breaks seen since the last
	// content run; pendingBlanks holds a blank run seen on the same line.
	// At most one of the two is ever nonzero/nonempty at a time.
	pendingBreaks := 0
	var pendingBlanks []byte

	for {
		if s.pos >= len(s.data) {
			break
		}
		if s.data[s.pos] == '#' && s.pos > 0 && isBlankOrBreak(s.data[s.pos-1]) {
			break
		}
		if isBreak(s.data[s.pos]) {
			break
		}
		if s.column == 0 && s.isDocIndicator("---") {
			break
		}
		if s.column == 0 && s.isDocIndicator("...") {
			break
		}

		runStart := s.pos
		for s.pos < len(s.data) && !isBlankOrBreak(s.data[s.pos]) {
			c := s.data[s.pos]
			if c == ':' && isBlankOrBreakAt(s.data, s.pos+1) {
				break
			}
			if s.flowLevel > 0 && (c == ',' || c == '[' || c == ']' || c == '{' || c == '}' || c == ':') {
				break
			}
			s.advance()
		}
		if s.pos == runStart {
			break
		}
		if pendingBreaks > 0 {
			value = appendFolded(value, pendingBreaks)
			pendingBreaks = 0
		} else if len(pendingBlanks) > 0 {
			value = append(value, pendingBlanks...)
			pendingBlanks = nil
		}
		value = append(value, s.data[runStart:s.pos]...)
		end = s.mark()

		blanksBefore := s.pos
		for s.pos < len(s.data) && isBlank(s.data[s.pos]) {
			s.advance()
		}
		if s.pos < len(s.data) && isBreak(s.data[s.pos]) {
			breaks := 0
			for s.pos < len(s.data) && isBlankOrBreak(s.data[s.pos]) {
				if isBreak(s.data[s.pos]) {
					breaks++
				} else if s.data[s.pos] == '\t' && s.flowLevel == 0 && s.column <= s.indent {
					s.setError(s.mark(), "found a tab character in indentation")
					return false
				}
				s.advance()
			}
			s.simpleKeyAllowed = true
			if s.flowLevel == 0 && s.column <= s.indent {
				break
			}
			pendingBreaks = breaks
			continue
		}
		if s.pos > blanksBefore {
			pendingBlanks = s.data[blanksBefore:s.pos]
		}
	}

	s.appendToken(yamlh.Token{Kind: yamlh.SCALAR_TOKEN, StartMark: start, EndMark: end, Value: value})
	return true
}

// appendFolded implements YAML line folding: a single line break folds to
// a space, n>1 consecutive breaks fold to n-1 literal newlines.
func appendFolded(value []byte, breaks int) []byte {
	if breaks <= 0 {
		return append(value, ' ')
	}
	if breaks == 1 {
		return append(value, ' ')
	}
	for i := 0; i < breaks-1; i++ {
		value = append(value, '\n')
	}
	return value
}

// fetchFlowScalar scans a single- or double-quoted scalar, translating
// Scanner::scanFlowScalar. single selects the escaping rules: single-quote
// only recognizes '' as an escaped quote, double-quote supports the full
// backslash escape set.
func (s *Scanner) fetchFlowScalar(single bool) bool {
	s.saveSimpleKey(false)
	s.simpleKeyAllowed = false

	start := s.mark()
	quote := byte('\'')
	if !single {
		quote = '"'
	}
	s.advance() // opening quote

	var value []byte
	leadingBlanks := 0
	// trailingBlanks counts the unescaped blanks at the end of value; they
	// are dropped again if a line break follows them.
	trailingBlanks := 0
	for {
		if s.pos >= len(s.data) {
			s.setError(start, "while scanning a quoted scalar, found unexpected end of stream")
			return false
		}
		c := s.data[s.pos]
		if c == quote {
			if single && s.pos+1 < len(s.data) && s.data[s.pos+1] == '\'' {
				value = append(value, '\'')
				trailingBlanks = 0
				s.advance()
				s.advance()
				continue
			}
			s.advance()
			break
		}
		if !single && c == '\\' {
			value = appendEscape(value, s)
			trailingBlanks = 0
			continue
		}
		if isBreak(c) {
			value = value[:len(value)-trailingBlanks]
			trailingBlanks = 0
			breaks := 0
			for s.pos < len(s.data) && isBreak(s.data[s.pos]) {
				s.advance()
				breaks++
			}
			leadingBlanks = breaks
			continue
		}
		if isBlank(c) {
			if leadingBlanks == 0 {
				value = append(value, c)
				trailingBlanks++
			}
			s.advance()
			continue
		}
		if leadingBlanks > 0 {
			value = appendFolded(value, leadingBlanks)
			leadingBlanks = 0
		}
		runeStart := s.pos
		s.advance()
		value = append(value, s.data[runeStart:s.pos]...)
		trailingBlanks = 0
	}

	s.appendToken(yamlh.Token{Kind: yamlh.SCALAR_TOKEN, StartMark: start, EndMark: s.mark(), Value: value})
	return true
}

// appendEscape decodes one backslash escape at s.pos (which must point at
// the '\') and advances past it, translating the escape table in
// Scanner::scanFlowScalar.
func appendEscape(value []byte, s *Scanner) []byte {
	escStart := s.mark()
	s.advance() // consume backslash
	if s.pos >= len(s.data) {
		s.setError(escStart, "while scanning a quoted scalar, found unexpected end of stream")
		return value
	}
	c := s.data[s.pos]
	switch c {
	case '0':
		value = append(value, 0)
	case 'a':
		value = append(value, '\a')
	case 'b':
		value = append(value, '\b')
	case 't', '\t':
		value = append(value, '\t')
	case 'n':
		value = append(value, '\n')
	case 'v':
		value = append(value, '\v')
	case 'f':
		value = append(value, '\f')
	case 'r':
		value = append(value, '\r')
	case 'e':
		value = append(value, 0x1B)
	case ' ':
		value = append(value, ' ')
	case '"':
		value = append(value, '"')
	case '\\':
		value = append(value, '\\')
	case '/':
		value = append(value, '/')
	case 'N':
		value = append(value, 0xC2, 0x85)
	case '_':
		value = append(value, 0xC2, 0xA0)
	case 'L':
		value = append(value, 0xE2, 0x80, 0xA8)
	case 'P':
		value = append(value, 0xE2, 0x80, 0xA9)
	case 'x', 'u', 'U':
		n := map[byte]int{'x': 2, 'u': 4, 'U': 8}[c]
		s.advance()
		cp := rune(0)
		for i := 0; i < n && s.pos < len(s.data); i++ {
			cp = cp<<4 | rune(hexDigit(s.data[s.pos]))
			s.advance()
		}
		value = append(value, string(cp)...)
		return value
	default:
		s.setError(escStart, "found unknown escape character")
		return value
	}
	s.advance()
	return value
}

func hexDigit(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return 0
}

// fetchBlockScalar scans a literal ('|') or folded ('>') block scalar,
// translating Scanner::scanBlockScalar. It supports the indentation
// indicator and the strip/clip/keep chomping indicators. Without an
// indentation indicator, the block's indentation is the column of its
// first non-empty line, or one more than the enclosing block's indent if
// that line is not deeper.
func (s *Scanner) fetchBlockScalar(literal bool) bool {
	// A block scalar spans multiple lines, so unlike a plain or quoted
	// scalar it can never be an implicit mapping key.
	s.simpleKeyAllowed = false

	start := s.mark()
	s.advance() // consume '|' or '>'

	chomp := byte(0)
	indentIndicator := 0
	for s.pos < len(s.data) && !isBlankOrBreak(s.data[s.pos]) {
		c := s.data[s.pos]
		if c == '+' || c == '-' {
			chomp = c
		} else if c >= '1' && c <= '9' {
			indentIndicator = int(c - '0')
		}
		s.advance()
	}
	for s.pos < len(s.data) && isBlank(s.data[s.pos]) {
		s.advance()
	}
	if s.pos < len(s.data) && s.data[s.pos] == '#' {
		for s.pos < len(s.data) && !isBreak(s.data[s.pos]) {
			s.advance()
		}
	}
	if s.pos < len(s.data) && isBreak(s.data[s.pos]) {
		s.advance()
	}

	blockIndent := 0
	if indentIndicator > 0 {
		base := s.indent
		if base < 0 {
			base = 0
		}
		blockIndent = base + indentIndicator
	}

	var lines [][]byte
	trailingBlankLines := 0
	for {
		lineStart := s.pos
		col := 0
		for s.pos < len(s.data) && s.data[s.pos] == ' ' {
			s.advance()
			col++
		}
		if s.pos >= len(s.data) || isBreak(s.data[s.pos]) {
			atEOF := s.pos >= len(s.data)
			if !atEOF {
				s.advance()
			}
			trailingBlankLines++
			lines = append(lines, nil)
			if atEOF {
				break
			}
			continue
		}
		if blockIndent == 0 {
			blockIndent = col
			if blockIndent <= s.indent {
				blockIndent = s.indent + 1
			}
		}
		if col < blockIndent {
			s.pos = lineStart
			break
		}
		contentStart := s.pos
		for s.pos < len(s.data) && !isBreak(s.data[s.pos]) {
			s.advance()
		}
		lines = append(lines, append([]byte(nil), s.data[contentStart:s.pos]...))
		trailingBlankLines = 0
		if s.pos < len(s.data) {
			s.advance()
		} else {
			break
		}
	}

	value := joinBlockLines(lines, literal)
	value = chompBlock(value, chomp, trailingBlankLines)

	s.appendToken(yamlh.Token{Kind: yamlh.SCALAR_TOKEN, StartMark: start, EndMark: s.mark(), Value: value})
	return true
}

func joinBlockLines(lines [][]byte, literal bool) []byte {
	var out []byte
	for i, ln := range lines {
		if i > 0 {
			if literal {
				out = append(out, '\n')
			} else if ln == nil || lines[i-1] == nil {
				out = append(out, '\n')
			} else {
				out = append(out, ' ')
			}
		}
		out = append(out, ln...)
	}
	return out
}

// chompBlock applies the '-' (strip), '+' (keep), or default (clip)
// trailing-newline rule, translating the chomping method table in
// original_source's Scanner::scanBlockScalar.
func chompBlock(value []byte, chomp byte, trailingBlankLines int) []byte {
	switch chomp {
	case '-':
		for len(value) > 0 && value[len(value)-1] == '\n' {
			value = value[:len(value)-1]
		}
	case '+':
		value = append(value, '\n')
		for i := 0; i < trailingBlankLines; i++ {
			value = append(value, '\n')
		}
	default:
		for len(value) > 0 && value[len(value)-1] == '\n' {
			value = value[:len(value)-1]
		}
		if len(value) > 0 {
			value = append(value, '\n')
		}
	}
	return value
}
