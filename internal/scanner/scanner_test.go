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

package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/willabides/yamlscan/internal/diag"
	"github.com/willabides/yamlscan/internal/scanner"
	"github.com/willabides/yamlscan/internal/yamlh"
)

func allTokens(t *testing.T, s *scanner.Scanner) []yamlh.Token {
	t.Helper()
	var toks []yamlh.Token
	for {
		tok := s.Next()
		toks = append(toks, tok)
		if tok.Kind == yamlh.STREAM_END_TOKEN || tok.Kind == yamlh.ERROR_TOKEN {
			return toks
		}
	}
}

func kinds(toks []yamlh.Token) []yamlh.TokenKind {
	out := make([]yamlh.TokenKind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestEmptyInputYieldsStreamStartAndEnd(t *testing.T) {
	s := scanner.New(nil, nil, "")
	toks := allTokens(t, s)
	require.Equal(t, []yamlh.TokenKind{yamlh.STREAM_START_TOKEN, yamlh.STREAM_END_TOKEN}, kinds(toks))
	require.Equal(t, yamlh.UTF8_ENCODING, toks[0].Encoding)
	require.False(t, s.Failed())
}

func TestPlainScalarDocument(t *testing.T) {
	s := scanner.New([]byte("hello"), nil, "")
	toks := allTokens(t, s)
	require.Equal(t, []yamlh.TokenKind{
		yamlh.STREAM_START_TOKEN,
		yamlh.SCALAR_TOKEN,
		yamlh.STREAM_END_TOKEN,
	}, kinds(toks))
	require.Equal(t, "hello", string(toks[1].Value))
}

func TestBlockMappingPromotesSimpleKey(t *testing.T) {
	s := scanner.New([]byte("a: b\n"), nil, "")
	toks := allTokens(t, s)
	require.Equal(t, []yamlh.TokenKind{
		yamlh.STREAM_START_TOKEN,
		yamlh.BLOCK_MAPPING_START_TOKEN,
		yamlh.KEY_TOKEN,
		yamlh.SCALAR_TOKEN,
		yamlh.VALUE_TOKEN,
		yamlh.SCALAR_TOKEN,
		yamlh.BLOCK_END_TOKEN,
		yamlh.STREAM_END_TOKEN,
	}, kinds(toks))
	require.Equal(t, "a", string(toks[3].Value))
	require.Equal(t, "b", string(toks[5].Value))
}

func TestBlockSequence(t *testing.T) {
	s := scanner.New([]byte("- a\n- b\n"), nil, "")
	toks := allTokens(t, s)
	require.Equal(t, []yamlh.TokenKind{
		yamlh.STREAM_START_TOKEN,
		yamlh.BLOCK_SEQUENCE_START_TOKEN,
		yamlh.BLOCK_ENTRY_TOKEN,
		yamlh.SCALAR_TOKEN,
		yamlh.BLOCK_ENTRY_TOKEN,
		yamlh.SCALAR_TOKEN,
		yamlh.BLOCK_END_TOKEN,
		yamlh.STREAM_END_TOKEN,
	}, kinds(toks))
}

func TestFlowMapping(t *testing.T) {
	s := scanner.New([]byte("{a: 1, b: 2}"), nil, "")
	toks := allTokens(t, s)
	require.Equal(t, []yamlh.TokenKind{
		yamlh.STREAM_START_TOKEN,
		yamlh.FLOW_MAPPING_START_TOKEN,
		yamlh.KEY_TOKEN,
		yamlh.SCALAR_TOKEN,
		yamlh.VALUE_TOKEN,
		yamlh.SCALAR_TOKEN,
		yamlh.FLOW_ENTRY_TOKEN,
		yamlh.KEY_TOKEN,
		yamlh.SCALAR_TOKEN,
		yamlh.VALUE_TOKEN,
		yamlh.SCALAR_TOKEN,
		yamlh.FLOW_MAPPING_END_TOKEN,
		yamlh.STREAM_END_TOKEN,
	}, kinds(toks))
}

func TestSingleQuotedScalarUnescapesDoubledQuote(t *testing.T) {
	s := scanner.New([]byte("'it''s here'"), nil, "")
	toks := allTokens(t, s)
	require.Equal(t, yamlh.SCALAR_TOKEN, toks[1].Kind)
	require.Equal(t, "it's here", string(toks[1].Value))
}

func TestDoubleQuotedScalarDecodesEscapes(t *testing.T) {
	s := scanner.New([]byte(`"a\tb\n"`), nil, "")
	toks := allTokens(t, s)
	require.Equal(t, yamlh.SCALAR_TOKEN, toks[1].Kind)
	require.Equal(t, "a\tb\n", string(toks[1].Value))
}

func TestLiteralBlockScalarClips(t *testing.T) {
	s := scanner.New([]byte("a: |\n  line one\n  line two\n"), nil, "")
	toks := allTokens(t, s)
	var scalars []string
	for _, tok := range toks {
		if tok.Kind == yamlh.SCALAR_TOKEN {
			scalars = append(scalars, string(tok.Value))
		}
	}
	require.Equal(t, []string{"a", "line one\nline two\n"}, scalars)
}

func TestUnrecognizedCharacterReportsDiagnosticAndFails(t *testing.T) {
	sink := &diag.CollectingSink{}
	s := scanner.New([]byte("\x01"), sink, "doc.yaml")
	toks := allTokens(t, s)
	require.Equal(t, yamlh.ERROR_TOKEN, toks[len(toks)-1].Kind)
	require.True(t, s.Failed())
	require.Len(t, sink.Entries, 1)
	require.Equal(t, diag.Error, sink.Entries[0].Severity)
}

func TestFailedScannerReturnsErrorTokenOnSubsequentCalls(t *testing.T) {
	s := scanner.New([]byte("\x01"), nil, "")
	require.Equal(t, yamlh.STREAM_START_TOKEN, s.Next().Kind)
	first := s.Next()
	require.Equal(t, yamlh.ERROR_TOKEN, first.Kind)
	second := s.Next()
	require.Equal(t, yamlh.ERROR_TOKEN, second.Kind)
}
