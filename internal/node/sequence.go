// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package node

import "github.com/willabides/yamlscan/internal/yamlh"

// SequenceStyle distinguishes the three token shapes a SequenceNode can be
// built from, translating SequenceNode::SequenceType
// (ST_Block/ST_Flow/ST_Indentless) in
// original_source/include/llvm/Support/YAMLParser.h.
type SequenceStyle int

const (
	// SequenceBlock is "- a\n- b", delimited by a synthetic BlockEnd.
	SequenceBlock SequenceStyle = iota
	// SequenceFlow is "[a, b]", delimited by FlowSequenceEnd.
	SequenceFlow
	// SequenceIndentless is an unindented block sequence nested directly
	// under a mapping value ("key:\n- a\n- b"): the scanner never emits a
	// BlockSequenceStart for it (rollIndent is a no-op at equal indent),
	// so it has no terminator of its own; it ends the moment a non-
	// BlockEntry token appears, leaving that token for its enclosing
	// container to consume.
	SequenceIndentless
)

func (s SequenceStyle) String() string {
	switch s {
	case SequenceFlow:
		return "flow"
	case SequenceIndentless:
		return "indentless"
	default:
		return "block"
	}
}

// SequenceNode is a block, flow, or indentless sequence. Elements are
// produced one at a time by Next, translating the iterator behavior of
// llvm::yaml::SequenceNode::iterator.
type SequenceNode struct {
	doc       *Document
	startMark yamlh.Position
	style     SequenceStyle

	done    bool
	current Node
}

func (sq *SequenceNode) Kind() Kind                { return KindSequence }
func (sq *SequenceNode) StartMark() yamlh.Position { return sq.startMark }

// IsFlow reports whether this sequence was written with "[ ]" rather than
// block indentation.
func (sq *SequenceNode) IsFlow() bool { return sq.style == SequenceFlow }

// Style reports which of the three token shapes produced this sequence.
func (sq *SequenceNode) Style() SequenceStyle { return sq.style }

// Next returns the next element, or ok=false once the sequence is
// exhausted.
func (sq *SequenceNode) Next() (elem Node, ok bool) {
	if sq.done {
		return nil, false
	}
	if sq.current != nil {
		sq.current.skip()
		sq.current = nil
	}

	tok := sq.doc.scanner.Peek()
	switch sq.style {
	case SequenceFlow:
		if tok.Kind == yamlh.FLOW_ENTRY_TOKEN {
			sq.doc.scanner.Next()
			tok = sq.doc.scanner.Peek()
		}
		if tok.Kind == yamlh.FLOW_SEQUENCE_END_TOKEN {
			sq.doc.scanner.Next()
			sq.done = true
			return nil, false
		}

	case SequenceIndentless:
		// No BlockEnd was ever emitted for this sequence: any token other
		// than another BlockEntry belongs to whatever follows it, and is
		// left unconsumed for that container to read.
		if tok.Kind != yamlh.BLOCK_ENTRY_TOKEN {
			sq.done = true
			return nil, false
		}
		sq.doc.scanner.Next()
		tok = sq.doc.scanner.Peek()
		if tok.Kind == yamlh.BLOCK_ENTRY_TOKEN {
			n := sq.doc.newNull(tok.StartMark)
			sq.current = n
			return n, true
		}

	default: // SequenceBlock
		if tok.Kind != yamlh.BLOCK_ENTRY_TOKEN {
			sq.doc.scanner.Next() // BLOCK_END
			sq.done = true
			return nil, false
		}
		sq.doc.scanner.Next()
		tok = sq.doc.scanner.Peek()
		if tok.Kind == yamlh.BLOCK_ENTRY_TOKEN || tok.Kind == yamlh.BLOCK_END_TOKEN {
			n := sq.doc.newNull(tok.StartMark)
			sq.current = n
			return n, true
		}
	}

	n := sq.doc.parseNode()
	sq.current = n
	return n, true
}

func (sq *SequenceNode) skip() {
	for {
		if _, ok := sq.Next(); !ok {
			return
		}
	}
}
