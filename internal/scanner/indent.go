// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package scanner

import "github.com/willabides/yamlscan/internal/yamlh"

// rollIndent pushes a new block level and splices a synthetic
// BLOCK_SEQUENCE_START_TOKEN or BLOCK_MAPPING_START_TOKEN at idx, mirroring
// Scanner::rollIndent. It is a no-op in flow context, where indentation is
// not significant.
func (s *Scanner) rollIndent(column int, kind yamlh.TokenKind, idx int) {
	if s.flowLevel > 0 {
		return
	}
	if s.indent >= column {
		return
	}
	s.indents = append(s.indents, s.indent)
	s.indent = column
	mark := s.mark()
	s.insertToken(idx, yamlh.Token{Kind: kind, StartMark: mark, EndMark: mark})
}

// unrollIndent pops block levels down to column, appending a
// BLOCK_END_TOKEN for each, mirroring Scanner::unrollIndent. column -1
// unrolls everything, for end of stream.
func (s *Scanner) unrollIndent(column int) {
	if s.flowLevel > 0 {
		return
	}
	for s.indent > column {
		mark := s.mark()
		s.appendToken(yamlh.Token{Kind: yamlh.BLOCK_END_TOKEN, StartMark: mark, EndMark: mark})
		s.indent = s.indents[len(s.indents)-1]
		s.indents = s.indents[:len(s.indents)-1]
	}
}

// saveSimpleKey records the token about to be queued as a candidate to be
// retroactively promoted to a mapping key, translating
// Scanner::saveSimpleKey. required marks a candidate whose going stale is
// an error rather than a silent drop; every caller in this package passes
// false.
func (s *Scanner) saveSimpleKey(required bool) {
	s.removeSimpleKeyOnFlowLevel(s.flowLevel)
	if !s.simpleKeyAllowed {
		return
	}
	s.simpleKeys = append(s.simpleKeys, yamlh.SimpleKey{
		TokenNumber: s.tokenNumberAt(len(s.queue)),
		Mark:        s.mark(),
		FlowLevel:   s.flowLevel,
		Required:    required,
	})
}

// removeSimpleKeyOnFlowLevel discards the pending candidate at level, if
// any, translating Scanner::removeSimpleKeyOnFlowLevel. It is called
// whenever a token is fetched that cannot follow a simple key at the
// current flow level (for example a second "-" block entry indicator).
func (s *Scanner) removeSimpleKeyOnFlowLevel(level int) {
	if n := len(s.simpleKeys); n > 0 && s.simpleKeys[n-1].FlowLevel == level {
		s.simpleKeys = s.simpleKeys[:n-1]
	}
}

// removeStaleSimpleKeys drops any candidate that can no longer be
// promoted: one that is no longer on the current line, or one that has
// fallen more than maxKeyDist columns behind. A stale *required* candidate
// is a hard error ("could not find expected ':'"), translating
// Scanner::removeStaleSimpleKeys.
func (s *Scanner) removeStaleSimpleKeys() {
	kept := s.simpleKeys[:0]
	for _, sk := range s.simpleKeys {
		stale := sk.Mark.Line != s.line || s.column-sk.Mark.Column > s.maxKeyDist
		if stale {
			if sk.Required {
				s.setError(sk.Mark, "could not find expected ':'")
				return
			}
			continue
		}
		kept = append(kept, sk)
	}
	s.simpleKeys = kept
}

// peekSimpleKeyCandidate returns the most recent candidate at the current
// flow level, if one is still pending. The caller is responsible for
// clearing s.simpleKeys once it acts on the result -- fetchValue clears
// the whole list on a promotion, matching the original scanner.
func (s *Scanner) peekSimpleKeyCandidate() (yamlh.SimpleKey, bool) {
	n := len(s.simpleKeys)
	if n == 0 {
		return yamlh.SimpleKey{}, false
	}
	sk := s.simpleKeys[n-1]
	if sk.FlowLevel != s.flowLevel {
		return yamlh.SimpleKey{}, false
	}
	return sk, true
}
