//
// Copyright (c) 2011-2019 Canonical Ltd
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package yamlscan_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/willabides/yamlscan"
)

func TestSingleDocumentStream(t *testing.T) {
	s := yamlscan.NewStream([]byte("a: 1\nb: 2\n"))
	docs := s.Documents()

	doc, ok := docs.Next()
	require.True(t, ok)
	m, ok := doc.Root().(*yamlscan.MappingNode)
	require.True(t, ok)

	kv, ok := m.Next()
	require.True(t, ok)
	require.Equal(t, "a", string(kv.Key.(*yamlscan.ScalarNode).Value))

	_, ok = docs.Next()
	require.False(t, ok)
	require.False(t, s.Failed())
}

func TestMultiDocumentStream(t *testing.T) {
	s := yamlscan.NewStream([]byte("---\na\n---\nb\n"))
	docs := s.Documents()

	var scalars []string
	for {
		doc, ok := docs.Next()
		if !ok {
			break
		}
		scalars = append(scalars, string(doc.Root().(*yamlscan.ScalarNode).Value))
	}
	require.Equal(t, []string{"a", "b"}, scalars)
}

func TestAbandonedDocumentStillLetsStreamAdvance(t *testing.T) {
	s := yamlscan.NewStream([]byte("---\na: 1\nb: 2\n---\nc\n"))
	docs := s.Documents()

	first, ok := docs.Next()
	require.True(t, ok)
	_ = first.Root() // never walk the mapping's entries

	second, ok := docs.Next()
	require.True(t, ok)
	require.Equal(t, "c", string(second.Root().(*yamlscan.ScalarNode).Value))
}

func TestDocumentsCalledTwicePanics(t *testing.T) {
	s := yamlscan.NewStream([]byte("a\n"))
	s.Documents()
	require.Panics(t, func() { s.Documents() })
}

func TestDiagnosticSinkReceivesScanErrors(t *testing.T) {
	sink := &yamlscan.CollectingSink{}
	s := yamlscan.NewStream([]byte("\x01"), yamlscan.WithDiagnosticSink(sink))
	docs := s.Documents()
	_, ok := docs.Next()
	require.False(t, ok)
	require.True(t, s.Failed())
	require.NotEmpty(t, sink.Entries)

	var scanErr *yamlscan.ScannerError
	require.ErrorAs(t, s.Err(), &scanErr)
	require.Contains(t, scanErr.Error(), "unrecognized character")
}

func TestDocumentErrReturnsTypedNodeError(t *testing.T) {
	s := yamlscan.NewStream([]byte("{a: 1"))
	docs := s.Documents()

	doc, ok := docs.Next()
	require.True(t, ok)
	m := doc.Root().(*yamlscan.MappingNode)
	for {
		if _, ok := m.Next(); !ok {
			break
		}
	}

	require.True(t, doc.Failed())
	require.False(t, s.Failed())
	require.Nil(t, s.Err())

	var nodeErr *yamlscan.NodeError
	require.ErrorAs(t, doc.Err(), &nodeErr)
	require.Contains(t, nodeErr.Error(), "expected a mapping key")
}
