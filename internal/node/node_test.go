// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package node_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/willabides/yamlscan/internal/node"
	"github.com/willabides/yamlscan/internal/scanner"
)

func rootOf(t *testing.T, src string) (*node.Document, node.Node) {
	t.Helper()
	sc := scanner.New([]byte(src), nil, "")
	require.Equal(t, "STREAM_START_TOKEN", sc.Next().Kind.String())
	doc := node.NewDocument(sc, nil)
	return doc, doc.Root()
}

func TestScalarRoot(t *testing.T) {
	_, root := rootOf(t, "hello")
	require.Equal(t, node.KindScalar, root.Kind())
	require.Equal(t, "hello", string(root.(*node.ScalarNode).Value))
}

func TestMappingRootWalksEntries(t *testing.T) {
	_, root := rootOf(t, "a: 1\nb: 2\n")
	m := root.(*node.MappingNode)

	kv, ok := m.Next()
	require.True(t, ok)
	require.Equal(t, "a", string(kv.Key.(*node.ScalarNode).Value))
	require.Equal(t, "1", string(kv.Value.(*node.ScalarNode).Value))

	kv, ok = m.Next()
	require.True(t, ok)
	require.Equal(t, "b", string(kv.Key.(*node.ScalarNode).Value))
	require.Equal(t, "2", string(kv.Value.(*node.ScalarNode).Value))

	_, ok = m.Next()
	require.False(t, ok)
}

func TestMappingWithImplicitNullValue(t *testing.T) {
	_, root := rootOf(t, "a:\n")
	m := root.(*node.MappingNode)
	kv, ok := m.Next()
	require.True(t, ok)
	require.Equal(t, node.KindNull, kv.Value.Kind())
}

func TestSequenceRootWalksElements(t *testing.T) {
	_, root := rootOf(t, "- a\n- b\n")
	sq := root.(*node.SequenceNode)

	elem, ok := sq.Next()
	require.True(t, ok)
	require.Equal(t, "a", string(elem.(*node.ScalarNode).Value))

	elem, ok = sq.Next()
	require.True(t, ok)
	require.Equal(t, "b", string(elem.(*node.ScalarNode).Value))

	_, ok = sq.Next()
	require.False(t, ok)
}

func TestFlowSequenceOfMappings(t *testing.T) {
	_, root := rootOf(t, "[{a: 1}, {b: 2}]")
	sq := root.(*node.SequenceNode)
	require.True(t, sq.IsFlow())

	first, ok := sq.Next()
	require.True(t, ok)
	m1 := first.(*node.MappingNode)
	require.True(t, m1.IsFlow())
	kv, ok := m1.Next()
	require.True(t, ok)
	require.Equal(t, "a", string(kv.Key.(*node.ScalarNode).Value))

	second, ok := sq.Next()
	require.True(t, ok)
	require.Equal(t, node.KindMapping, second.Kind())

	_, ok = sq.Next()
	require.False(t, ok)
}

func TestIndentlessSequenceUnderMappingValue(t *testing.T) {
	_, root := rootOf(t, "key:\n- a\n- b\n")
	m := root.(*node.MappingNode)

	kv, ok := m.Next()
	require.True(t, ok)
	require.Equal(t, "key", string(kv.Key.(*node.ScalarNode).Value))

	sq := kv.Value.(*node.SequenceNode)
	require.Equal(t, node.SequenceIndentless, sq.Style())
	require.False(t, sq.IsFlow())

	elem, ok := sq.Next()
	require.True(t, ok)
	require.Equal(t, "a", string(elem.(*node.ScalarNode).Value))

	elem, ok = sq.Next()
	require.True(t, ok)
	require.Equal(t, "b", string(elem.(*node.ScalarNode).Value))

	_, ok = sq.Next()
	require.False(t, ok)

	_, ok = m.Next()
	require.False(t, ok)
}

func TestInlineMappingInsideFlowSequence(t *testing.T) {
	_, root := rootOf(t, "[a, b: c, d]")
	sq := root.(*node.SequenceNode)

	first, ok := sq.Next()
	require.True(t, ok)
	require.Equal(t, "a", string(first.(*node.ScalarNode).Value))

	second, ok := sq.Next()
	require.True(t, ok)
	m := second.(*node.MappingNode)
	require.Equal(t, node.MappingInline, m.Style())
	require.False(t, m.IsFlow())

	kv, ok := m.Next()
	require.True(t, ok)
	require.Equal(t, "b", string(kv.Key.(*node.ScalarNode).Value))
	require.Equal(t, "c", string(kv.Value.(*node.ScalarNode).Value))

	_, ok = m.Next()
	require.False(t, ok)

	third, ok := sq.Next()
	require.True(t, ok)
	require.Equal(t, "d", string(third.(*node.ScalarNode).Value))

	_, ok = sq.Next()
	require.False(t, ok)
}

func TestUnterminatedFlowMappingReportsNodeError(t *testing.T) {
	sc := scanner.New([]byte("{a: 1"), nil, "")
	require.Equal(t, "STREAM_START_TOKEN", sc.Next().Kind.String())
	doc := node.NewDocument(sc, nil)

	m := doc.Root().(*node.MappingNode)
	_, ok := m.Next()
	require.True(t, ok)

	_, ok = m.Next()
	require.False(t, ok)
	require.True(t, doc.Failed())
	require.False(t, sc.Failed()) // the scanner itself never errored

	err := doc.Err()
	require.Error(t, err)
	require.Contains(t, err.Error(), "expected a mapping key")
}

// SkippingAnEntryMidwayStillReachesTheNextSibling exercises the lazy
// skip() path: never iterating the first mapping's entries
// must not desynchronize the token stream for the sequence's second
// element.
func TestSkippingAnEntryMidwayStillReachesTheNextSibling(t *testing.T) {
	_, root := rootOf(t, "- {a: 1, b: 2}\n- c\n")
	sq := root.(*node.SequenceNode)

	first, ok := sq.Next()
	require.True(t, ok)
	_ = first // deliberately never iterate its entries

	second, ok := sq.Next()
	require.True(t, ok)
	require.Equal(t, "c", string(second.(*node.ScalarNode).Value))
}
