// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package node

import "github.com/willabides/yamlscan/internal/yamlh"

// Kind identifies the concrete type behind a Node.
type Kind int

const (
	KindNull Kind = iota
	KindScalar
	KindMapping
	KindSequence
	KindAlias
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindScalar:
		return "scalar"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	case KindAlias:
		return "alias"
	}
	return "unknown"
}

// Node is the common interface implemented by every node in the tree.
// MappingNode and SequenceNode are pull-iterated: calling Root or an
// ancestor's iterator does no work on a node's children until the caller
// asks for them, mirroring llvm::yaml::Node in
// original_source/include/llvm/Support/YAMLParser.h.
type Node interface {
	Kind() Kind
	StartMark() yamlh.Position

	// skip consumes whatever tokens this node has not yet read, so the
	// Document can move on to the node's successor even if the caller
	// abandons iteration partway through. Exported iteration methods call
	// it on a sibling's behalf; callers never call it directly.
	skip()
}

// ScalarNode is a leaf holding a decoded scalar value, plus any tag and
// anchor that prefixed it. Tag resolution (mapping a tag string to a
// native Go type) is out of scope; Tag is the raw tag text.
type ScalarNode struct {
	startMark yamlh.Position
	Value     []byte
	Tag       []byte
	Anchor    []byte
}

func (n *ScalarNode) Kind() Kind               { return KindScalar }
func (n *ScalarNode) StartMark() yamlh.Position { return n.startMark }
func (n *ScalarNode) skip()                    {}

// NullNode represents an implicit null: an omitted mapping value ("key:"
// with nothing after it), an omitted key ("? " with no scalar), or an
// empty sequence/mapping entry.
type NullNode struct {
	startMark yamlh.Position
}

func (n *NullNode) Kind() Kind               { return KindNull }
func (n *NullNode) StartMark() yamlh.Position { return n.startMark }
func (n *NullNode) skip()                    {}

// AliasNode refers back to an anchor defined earlier in the same
// document. Resolving the alias to the node it names is left to the
// caller; Name is the alias text without its leading '*'.
type AliasNode struct {
	startMark yamlh.Position
	Name      []byte
}

func (n *AliasNode) Kind() Kind               { return KindAlias }
func (n *AliasNode) StartMark() yamlh.Position { return n.startMark }
func (n *AliasNode) skip()                    {}

// KeyValueNode is one entry of a MappingNode.
type KeyValueNode struct {
	Key   Node
	Value Node
}

func (kv *KeyValueNode) skip() {
	kv.Key.skip()
	kv.Value.skip()
}
