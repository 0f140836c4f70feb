// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package scanner

import "github.com/willabides/yamlscan/internal/yamlh"

func (s *Scanner) fetchDirective() bool {
	s.removeStaleSimpleKeys()
	if s.failed {
		return false
	}
	s.simpleKeyAllowed = false

	start := s.mark()
	s.advance() // consume '%'
	nameStart := s.pos
	for s.pos < len(s.data) && !isBlankOrBreak(s.data[s.pos]) {
		s.advance()
	}
	name := string(s.data[nameStart:s.pos])
	s.skipBlanks()

	switch name {
	case "YAML":
		valStart := s.pos
		for s.pos < len(s.data) && !isBlankOrBreak(s.data[s.pos]) {
			s.advance()
		}
		tok := yamlh.Token{
			Kind:      yamlh.VERSION_DIRECTIVE_TOKEN,
			StartMark: start,
			EndMark:   s.mark(),
			Version:   yamlh.VersionDirective{Value: s.data[valStart:s.pos]},
		}
		s.appendToken(tok)
	case "TAG":
		handleStart := s.pos
		for s.pos < len(s.data) && !isBlankOrBreak(s.data[s.pos]) {
			s.advance()
		}
		handle := s.data[handleStart:s.pos]
		s.skipBlanks()
		prefixStart := s.pos
		for s.pos < len(s.data) && !isBlankOrBreak(s.data[s.pos]) {
			s.advance()
		}
		tok := yamlh.Token{
			Kind:      yamlh.TAG_DIRECTIVE_TOKEN,
			StartMark: start,
			EndMark:   s.mark(),
			TagDir:    yamlh.TagDirective{Handle: handle, Prefix: s.data[prefixStart:s.pos]},
		}
		s.appendToken(tok)
	default:
		for s.pos < len(s.data) && !isBreak(s.data[s.pos]) {
			s.advance()
		}
	}
	return true
}

func (s *Scanner) fetchDocumentIndicator(kind yamlh.TokenKind) bool {
	s.unrollIndent(-1)
	s.removeStaleSimpleKeys()
	if s.failed {
		return false
	}
	s.simpleKeyAllowed = false
	start := s.mark()
	s.advance()
	s.advance()
	s.advance()
	s.appendToken(yamlh.Token{Kind: kind, StartMark: start, EndMark: s.mark()})
	return true
}

func (s *Scanner) fetchFlowCollectionStart(kind yamlh.TokenKind) bool {
	s.saveSimpleKey(false)
	s.flowLevel++
	s.simpleKeyAllowed = true
	start := s.mark()
	s.advance()
	s.appendToken(yamlh.Token{Kind: kind, StartMark: start, EndMark: s.mark()})
	return true
}

func (s *Scanner) fetchFlowCollectionEnd(kind yamlh.TokenKind) bool {
	s.removeSimpleKeyOnFlowLevel(s.flowLevel)
	s.removeStaleSimpleKeys()
	if s.failed {
		return false
	}
	if s.flowLevel > 0 {
		s.flowLevel--
	}
	s.simpleKeyAllowed = false
	start := s.mark()
	s.advance()
	s.appendToken(yamlh.Token{Kind: kind, StartMark: start, EndMark: s.mark()})
	return true
}

func (s *Scanner) fetchFlowEntry() bool {
	s.removeSimpleKeyOnFlowLevel(s.flowLevel)
	s.removeStaleSimpleKeys()
	if s.failed {
		return false
	}
	s.simpleKeyAllowed = true
	start := s.mark()
	s.advance()
	s.appendToken(yamlh.Token{Kind: yamlh.FLOW_ENTRY_TOKEN, StartMark: start, EndMark: s.mark()})
	return true
}

func (s *Scanner) fetchBlockEntry() bool {
	if s.flowLevel == 0 {
		if !s.simpleKeyAllowed {
			s.setError(s.mark(), "block sequence entries are not allowed in this context")
			return false
		}
		s.rollIndent(s.column, yamlh.BLOCK_SEQUENCE_START_TOKEN, len(s.queue))
	} else {
		s.removeSimpleKeyOnFlowLevel(s.flowLevel)
	}
	s.removeStaleSimpleKeys()
	if s.failed {
		return false
	}
	s.simpleKeyAllowed = true
	start := s.mark()
	s.advance()
	s.appendToken(yamlh.Token{Kind: yamlh.BLOCK_ENTRY_TOKEN, StartMark: start, EndMark: s.mark()})
	return true
}

func (s *Scanner) fetchKey() bool {
	if s.flowLevel == 0 {
		if !s.simpleKeyAllowed {
			s.setError(s.mark(), "mapping keys are not allowed in this context")
			return false
		}
		s.rollIndent(s.column, yamlh.BLOCK_MAPPING_START_TOKEN, len(s.queue))
	}
	s.removeSimpleKeyOnFlowLevel(s.flowLevel)
	s.removeStaleSimpleKeys()
	if s.failed {
		return false
	}
	s.simpleKeyAllowed = s.flowLevel == 0
	start := s.mark()
	s.advance()
	s.appendToken(yamlh.Token{Kind: yamlh.KEY_TOKEN, StartMark: start, EndMark: s.mark()})
	return true
}

// fetchValue is the crux of the scanner: it decides whether the ':' in
// front of it promotes a pending simple-key candidate into an actual
// mapping key, translating Scanner::scanValue.
func (s *Scanner) fetchValue() bool {
	if sk, ok := s.peekSimpleKeyCandidate(); ok {
		idx := sk.TokenNumber - s.consumed
		keyMark := sk.Mark
		s.insertToken(idx, yamlh.Token{Kind: yamlh.KEY_TOKEN, StartMark: keyMark, EndMark: keyMark})
		s.rollIndent(sk.Mark.Column, yamlh.BLOCK_MAPPING_START_TOKEN, idx)
		// Faithful to the original: a promotion clears every pending
		// candidate, not just the one just promoted.
		s.simpleKeys = nil
		s.simpleKeyAllowed = false
	} else {
		if s.flowLevel == 0 {
			if !s.simpleKeyAllowed {
				s.setError(s.mark(), "mapping values are not allowed in this context")
				return false
			}
			s.rollIndent(s.column, yamlh.BLOCK_MAPPING_START_TOKEN, len(s.queue))
		}
		s.simpleKeyAllowed = s.flowLevel == 0
	}
	start := s.mark()
	s.advance()
	s.appendToken(yamlh.Token{Kind: yamlh.VALUE_TOKEN, StartMark: start, EndMark: s.mark()})
	return true
}

func (s *Scanner) fetchAnchorOrAlias(kind yamlh.TokenKind) bool {
	s.saveSimpleKey(false)
	s.simpleKeyAllowed = false
	start := s.mark()
	s.advance() // consume '*' or '&'
	nameStart := s.pos
	for s.pos < len(s.data) && isAnchorChar(s.data[s.pos]) {
		s.advance()
	}
	if s.pos == nameStart {
		s.setError(start, "while scanning an anchor or alias, did not find expected alphabetic or numeric character")
		return false
	}
	s.appendToken(yamlh.Token{Kind: kind, StartMark: start, EndMark: s.mark(), Value: s.data[nameStart:s.pos]})
	return true
}

func isAnchorChar(c byte) bool {
	switch c {
	case ',', '[', ']', '{', '}', ' ', '\t', '\n', '\r':
		return false
	}
	return true
}

func (s *Scanner) fetchTag() bool {
	s.saveSimpleKey(false)
	s.simpleKeyAllowed = false
	start := s.mark()
	s.advance() // consume '!'
	for s.pos < len(s.data) && !isBlankOrBreak(s.data[s.pos]) {
		if s.data[s.pos] == ',' && s.flowLevel > 0 {
			break
		}
		if s.data[s.pos] == ']' || s.data[s.pos] == '}' {
			break
		}
		s.advance()
	}
	value := s.data[start.Index:s.pos]
	s.appendToken(yamlh.Token{Kind: yamlh.TAG_TOKEN, StartMark: start, EndMark: s.mark(), Value: value})
	return true
}
