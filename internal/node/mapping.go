// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package node

import "github.com/willabides/yamlscan/internal/yamlh"

// MappingStyle distinguishes the three token shapes a MappingNode can be
// built from, translating MappingNode::MappingType
// (MT_Block/MT_Flow/MT_Inline) in
// original_source/include/llvm/Support/YAMLParser.h.
type MappingStyle int

const (
	// MappingBlock is "key: value", delimited by a synthetic BlockEnd.
	MappingBlock MappingStyle = iota
	// MappingFlow is "{key: value}", delimited by FlowMappingEnd.
	MappingFlow
	// MappingInline is a bare "key: value" pair appearing where a node is
	// expected but no "{" opened a flow mapping -- most commonly a
	// "b: c" entry inside a flow sequence ("[a, b: c, d]"). It has no
	// terminator token of its own: it yields exactly one KeyValueNode and
	// is then done, leaving whatever follows for its enclosing container
	// to read.
	MappingInline
)

func (s MappingStyle) String() string {
	switch s {
	case MappingFlow:
		return "flow"
	case MappingInline:
		return "inline"
	default:
		return "block"
	}
}

// MappingNode is a block, flow, or inline mapping. Entries are produced
// one at a time by Next, translating the iterator behavior of
// llvm::yaml::MappingNode::iterator.
type MappingNode struct {
	doc       *Document
	startMark yamlh.Position
	style     MappingStyle

	done    bool
	current *KeyValueNode
}

func (m *MappingNode) Kind() Kind                { return KindMapping }
func (m *MappingNode) StartMark() yamlh.Position { return m.startMark }

// IsFlow reports whether this mapping was written with "{ }" rather than
// block indentation.
func (m *MappingNode) IsFlow() bool { return m.style == MappingFlow }

// Style reports which of the three token shapes produced this mapping.
func (m *MappingNode) Style() MappingStyle { return m.style }

// Next returns the next key/value entry, or ok=false once the mapping is
// exhausted. Calling Next again after ok=false keeps returning ok=false.
func (m *MappingNode) Next() (entry *KeyValueNode, ok bool) {
	if m.done {
		return nil, false
	}
	if m.current != nil {
		m.current.skip()
		m.current = nil
		if m.style == MappingInline {
			// An inline mapping is exactly one entry; there is no
			// terminator token to consume.
			m.done = true
			return nil, false
		}
	}

	tok := m.doc.scanner.Peek()
	switch m.style {
	case MappingFlow:
		if tok.Kind == yamlh.FLOW_ENTRY_TOKEN {
			m.doc.scanner.Next()
			tok = m.doc.scanner.Peek()
		}
		if tok.Kind == yamlh.FLOW_MAPPING_END_TOKEN {
			m.doc.scanner.Next()
			m.done = true
			return nil, false
		}
	case MappingBlock:
		if tok.Kind == yamlh.BLOCK_END_TOKEN {
			m.doc.scanner.Next()
			m.done = true
			return nil, false
		}
	}

	if tok.Kind != yamlh.KEY_TOKEN {
		m.doc.fail(tok.StartMark, "expected a mapping key, found %s", tok.Kind)
		m.done = true
		return nil, false
	}
	m.doc.scanner.Next()

	var key Node
	keyLookahead := m.doc.scanner.Peek()
	if keyLookahead.Kind == yamlh.VALUE_TOKEN {
		key = m.doc.newNull(keyLookahead.StartMark)
	} else {
		key = m.doc.parseNode()
	}

	var value Node
	valTok := m.doc.scanner.Peek()
	if valTok.Kind == yamlh.VALUE_TOKEN {
		m.doc.scanner.Next()
		after := m.doc.scanner.Peek()
		if isImplicitNullHere(after) {
			value = m.doc.newNull(after.StartMark)
		} else {
			value = m.doc.parseNode()
		}
	} else {
		value = m.doc.newNull(valTok.StartMark)
	}

	kv := m.doc.arenaKV.New()
	*kv = KeyValueNode{Key: key, Value: value}
	m.current = kv
	return kv, true
}

func (m *MappingNode) skip() {
	for {
		if _, ok := m.Next(); !ok {
			return
		}
	}
}

func isImplicitNullHere(tok yamlh.Token) bool {
	switch tok.Kind {
	case yamlh.KEY_TOKEN, yamlh.BLOCK_END_TOKEN, yamlh.FLOW_ENTRY_TOKEN,
		yamlh.FLOW_MAPPING_END_TOKEN, yamlh.FLOW_SEQUENCE_END_TOKEN,
		yamlh.DOCUMENT_END_TOKEN, yamlh.STREAM_END_TOKEN:
		return true
	}
	return false
}
