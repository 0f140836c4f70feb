//
// Copyright (c) 2011-2019 Canonical Ltd
// Copyright (c) 2006-2010 Kirill Simonov
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do
// so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package yamlscan tokenizes a YAML 1.2 byte stream and exposes its
// documents as a lazily-walked node tree, without resolving tags or
// decoding into native Go values. It plays the role of llvm::yaml's
// Scanner/Stream/Document trio, re-expressed with the scanning
// internals of github.com/willabides/yaml.
package yamlscan

import (
	"github.com/willabides/yamlscan/internal/diag"
	"github.com/willabides/yamlscan/internal/node"
	"github.com/willabides/yamlscan/internal/scanner"
	"github.com/willabides/yamlscan/internal/yamlh"
)

// Re-exported so callers never need to import the internal packages
// directly.
type (
	// DiagnosticSink receives scan and parse diagnostics. See
	// CollectingSink and WriterSink for ready-made implementations.
	DiagnosticSink = diag.Sink
	// Severity classifies a diagnostic raised through a DiagnosticSink.
	Severity = diag.Severity
	// CollectingSink accumulates diagnostics for programmatic inspection.
	CollectingSink = diag.CollectingSink
	// WriterSink renders each diagnostic as a line of text.
	WriterSink = diag.WriterSink
	// Position locates a point in the input stream.
	Position = yamlh.Position

	// Node is the common interface of every tree element: ScalarNode,
	// NullNode, MappingNode, SequenceNode, and AliasNode.
	Node = node.Node
	// Kind identifies which concrete Node type a Node value holds.
	Kind = node.Kind
	// ScalarNode, NullNode, AliasNode, MappingNode, SequenceNode, and
	// KeyValueNode are the concrete node kinds produced while walking a
	// Document's tree.
	ScalarNode   = node.ScalarNode
	NullNode     = node.NullNode
	AliasNode    = node.AliasNode
	MappingNode  = node.MappingNode
	SequenceNode = node.SequenceNode
	KeyValueNode = node.KeyValueNode

	// MappingStyle and SequenceStyle report which token shape produced a
	// MappingNode or SequenceNode: block, flow, or (respectively) the
	// inline-key-value and indentless-block-sequence shapes that have no
	// delimiter of their own.
	MappingStyle  = node.MappingStyle
	SequenceStyle = node.SequenceStyle

	// Token is a single item of the raw token stream underlying a Stream,
	// for callers (such as cmd/yamltok) that want to inspect tokens
	// directly instead of walking a node tree.
	Token = yamlh.Token
	// TokenKind identifies the kind of a Token.
	TokenKind = yamlh.TokenKind
)

const (
	KindNull     = node.KindNull
	KindScalar   = node.KindScalar
	KindMapping  = node.KindMapping
	KindSequence = node.KindSequence
	KindAlias    = node.KindAlias
)

const (
	SeverityError   = diag.Error
	SeverityWarning = diag.Warning
	SeverityNote    = diag.Note
)

const (
	MappingBlockStyle  = node.MappingBlock
	MappingFlowStyle   = node.MappingFlow
	MappingInlineStyle = node.MappingInline

	SequenceBlockStyle      = node.SequenceBlock
	SequenceFlowStyle       = node.SequenceFlow
	SequenceIndentlessStyle = node.SequenceIndentless
)

// Token kinds a caller walking raw tokens (rather than the node tree)
// will see. BlockSequenceStart/BlockMappingStart/BlockEnd are synthetic:
// they stand in for the indentation that YAML's block style itself uses
// to delimit collections.
const (
	StreamStartToken = yamlh.STREAM_START_TOKEN
	StreamEndToken   = yamlh.STREAM_END_TOKEN

	VersionDirectiveToken = yamlh.VERSION_DIRECTIVE_TOKEN
	TagDirectiveToken     = yamlh.TAG_DIRECTIVE_TOKEN
	DocumentStartToken    = yamlh.DOCUMENT_START_TOKEN
	DocumentEndToken      = yamlh.DOCUMENT_END_TOKEN

	BlockSequenceStartToken = yamlh.BLOCK_SEQUENCE_START_TOKEN
	BlockMappingStartToken  = yamlh.BLOCK_MAPPING_START_TOKEN
	BlockEndToken           = yamlh.BLOCK_END_TOKEN

	FlowSequenceStartToken = yamlh.FLOW_SEQUENCE_START_TOKEN
	FlowSequenceEndToken   = yamlh.FLOW_SEQUENCE_END_TOKEN
	FlowMappingStartToken  = yamlh.FLOW_MAPPING_START_TOKEN
	FlowMappingEndToken    = yamlh.FLOW_MAPPING_END_TOKEN

	BlockEntryToken = yamlh.BLOCK_ENTRY_TOKEN
	FlowEntryToken  = yamlh.FLOW_ENTRY_TOKEN
	KeyToken        = yamlh.KEY_TOKEN
	ValueToken      = yamlh.VALUE_TOKEN

	AliasToken  = yamlh.ALIAS_TOKEN
	AnchorToken = yamlh.ANCHOR_TOKEN
	TagToken    = yamlh.TAG_TOKEN
	ScalarToken = yamlh.SCALAR_TOKEN

	ErrorToken = yamlh.ERROR_TOKEN
)

// TokenStream walks the raw token queue a Stream's Documents iterator is
// built on, for tools that want to inspect tokens directly (cmd/yamltok's
// -mode=tokens) rather than a parsed node tree.
type TokenStream struct {
	sc *scanner.Scanner
}

// Tokens opens data for token-level inspection. It is independent of
// Stream/Documents: the two must not be used on the same data
// concurrently, but nothing prevents creating one of each over the same
// bytes for separate, sequential passes.
func Tokens(data []byte, opts ...Option) *TokenStream {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	sc := scanner.New(data, cfg.sink, cfg.filename)
	if cfg.maxSimpleKeyDistance > 0 {
		sc.SetMaxSimpleKeyDistance(cfg.maxSimpleKeyDistance)
	}
	return &TokenStream{sc: sc}
}

// Next returns the next token, or an ERROR_TOKEN forever once scanning
// has failed.
func (t *TokenStream) Next() Token { return t.sc.Next() }

// Failed reports whether scanning has permanently stopped after an error.
func (t *TokenStream) Failed() bool { return t.sc.Failed() }

// Err returns the error that made scanning fail, or nil if Failed is
// false.
func (t *TokenStream) Err() error {
	if e := t.sc.LastError(); e != nil {
		return e
	}
	return nil
}

// Document is one "---"-delimited document's root node, resolved lazily
// from the underlying Stream.
type Document = node.Document

// Stream tokenizes data and walks it one document at a time. A Stream
// must not be shared across goroutines: like the Scanner underneath it,
// it carries no internal locking.
type Stream struct {
	sc   *scanner.Scanner
	sink DiagnosticSink
	docs *DocumentIter
}

// NewStream creates a Stream over data, ready to be walked with
// Documents. data is retained, not copied; the caller must not mutate it
// while the Stream is in use.
func NewStream(data []byte, opts ...Option) *Stream {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	sc := scanner.New(data, cfg.sink, cfg.filename)
	if cfg.maxSimpleKeyDistance > 0 {
		sc.SetMaxSimpleKeyDistance(cfg.maxSimpleKeyDistance)
	}
	return &Stream{sc: sc, sink: cfg.sink}
}

// Failed reports whether scanning has hit an unrecoverable error. Once
// true, further documents from Documents will stop arriving. A failure
// raised while assembling a document's node tree is reported by that
// Document's Failed, not here.
func (s *Stream) Failed() bool { return s.sc.Failed() }

// Err returns the scanner-level error that made this stream fail, or nil
// if Failed is false. A failure raised while assembling a particular
// document's node tree (rather than tokenizing) is reported by that
// Document's own Err instead.
func (s *Stream) Err() error {
	if e := s.sc.LastError(); e != nil {
		return e
	}
	return nil
}

// Documents returns a single-pass iterator over this stream's documents.
// Calling Documents a second time after the first iterator has been
// obtained panics with a *UsageError, the same restriction
// llvm::yaml::Stream places on re-walking a Stream.
func (s *Stream) Documents() *DocumentIter {
	if s.docs != nil {
		panic(&UsageError{Message: "yamlscan: Documents called more than once on the same Stream"})
	}
	tok := s.sc.Peek()
	if tok.Kind == yamlh.STREAM_START_TOKEN {
		s.sc.Next()
	}
	s.docs = &DocumentIter{stream: s}
	return s.docs
}

// DocumentIter is the single-pass cursor Documents hands back.
type DocumentIter struct {
	stream  *Stream
	current *Document
	done    bool
}

// Next advances to the next document and reports whether one was found.
// The *Document returned by the previous call is implicitly finished
// (any part of its tree the caller never walked is skipped) the moment
// Next is called again.
func (it *DocumentIter) Next() (*Document, bool) {
	if it.done {
		return nil, false
	}
	if it.current != nil {
		it.current.Close()
		it.current = nil
	}
	tok := it.stream.sc.Peek()
	if tok.Kind == yamlh.STREAM_END_TOKEN || tok.Kind == yamlh.ERROR_TOKEN {
		it.stream.sc.Next()
		it.done = true
		return nil, false
	}
	doc := node.NewDocument(it.stream.sc, it.stream.sink)
	it.current = doc
	return doc, true
}
