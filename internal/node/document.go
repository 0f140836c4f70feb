// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package node

import (
	"fmt"

	"github.com/willabides/yamlscan/internal/diag"
	"github.com/willabides/yamlscan/internal/yamlh"
)

// scannerLike is the slice of *scanner.Scanner the node package depends
// on, so tests can drive Document with a hand-built token queue.
type scannerLike interface {
	Peek() yamlh.Token
	Next() yamlh.Token
	Failed() bool
}

// Document parses one YAML document's worth of tokens into a lazily
// iterated node tree, translating llvm::yaml::Document.
type Document struct {
	scanner scannerLike
	sink    diag.Sink

	arenaScalar   *Arena[ScalarNode]
	arenaMapping  *Arena[MappingNode]
	arenaSequence *Arena[SequenceNode]
	arenaKV       *Arena[KeyValueNode]
	arenaAlias    *Arena[AliasNode]
	arenaNull     *Arena[NullNode]

	started bool
	root    Node
	failed  bool
	lastErr *Error
}

// Error reports a malformed node tree found only once tokens are being
// assembled into nodes -- for instance a mapping missing its KEY_TOKEN
// where one token is expected, a case the scanner alone cannot detect.
type Error struct {
	Position yamlh.Position
	Message  string
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Position, e.Message) }

// NewDocument constructs a Document reading from sc. sink receives parse
// errors the same way the Scanner's own sink receives scan errors.
func NewDocument(sc scannerLike, sink diag.Sink) *Document {
	if sink == nil {
		sink = noopSink{}
	}
	return &Document{
		scanner:       sc,
		sink:          sink,
		arenaScalar:   NewArena[ScalarNode](64),
		arenaMapping:  NewArena[MappingNode](16),
		arenaSequence: NewArena[SequenceNode](16),
		arenaKV:       NewArena[KeyValueNode](64),
		arenaAlias:    NewArena[AliasNode](16),
		arenaNull:     NewArena[NullNode](16),
	}
}

type noopSink struct{}

func (noopSink) Report(yamlh.Position, diag.Severity, string) {}

// Failed reports whether a parse error (or an underlying scan error) has
// occurred.
func (d *Document) Failed() bool { return d.failed || d.scanner.Failed() }

func (d *Document) fail(pos yamlh.Position, format string, args ...interface{}) {
	if d.failed {
		return
	}
	d.failed = true
	msg := fmt.Sprintf(format, args...)
	d.lastErr = &Error{Position: pos, Message: msg}
	d.sink.Report(pos, diag.Error, msg)
}

// LastError returns the node-level error that made this document fail, or
// nil if none occurred. It does not report scanner-level failures (bad
// UTF-8, an unresolved simple key, and so on) -- those are available from
// whatever produced this Document's Scanner.
func (d *Document) LastError() *Error { return d.lastErr }

// Err returns LastError as an error, or nil if this document has no
// node-level failure of its own.
func (d *Document) Err() error {
	if d.lastErr != nil {
		return d.lastErr
	}
	return nil
}

func (d *Document) newNull(pos yamlh.Position) *NullNode {
	n := d.arenaNull.New()
	*n = NullNode{startMark: pos}
	return n
}

// Root returns this document's root node, parsing just enough of the
// token stream to construct it. Root is idempotent: later calls return
// the same Node without re-reading the stream. A document with no
// content (an empty "---" block, or a stream that ends immediately)
// returns nil.
func (d *Document) Root() Node {
	if d.started {
		return d.root
	}
	d.started = true

	tok := d.scanner.Peek()
	for tok.Kind == yamlh.VERSION_DIRECTIVE_TOKEN || tok.Kind == yamlh.TAG_DIRECTIVE_TOKEN {
		d.scanner.Next()
		tok = d.scanner.Peek()
	}
	if tok.Kind == yamlh.DOCUMENT_START_TOKEN {
		d.scanner.Next()
		tok = d.scanner.Peek()
	}

	switch tok.Kind {
	case yamlh.STREAM_END_TOKEN, yamlh.DOCUMENT_END_TOKEN, yamlh.DOCUMENT_START_TOKEN, yamlh.ERROR_TOKEN:
		d.root = nil
		return nil
	}

	d.root = d.parseNode()
	return d.root
}

// Close advances past whatever of this document's content the caller
// never asked Root to produce, so a Stream walking multiple documents can
// locate the next one's start. Calling Root after Close re-parses
// nothing; it still returns the tree Root already built.
func (d *Document) Close() {
	if !d.started {
		d.Root()
	}
	if d.root != nil {
		d.root.skip()
	}
	if tok := d.scanner.Peek(); tok.Kind == yamlh.DOCUMENT_END_TOKEN {
		d.scanner.Next()
	}
}

// parseNode consumes one node's worth of tokens: an optional run of
// anchor/tag prefixes followed by a scalar, alias, or the start of a
// mapping or sequence, translating Document::parseBlockNode.
func (d *Document) parseNode() Node {
	var anchor, tag []byte
	tok := d.scanner.Peek()
	for tok.Kind == yamlh.ANCHOR_TOKEN || tok.Kind == yamlh.TAG_TOKEN {
		if tok.Kind == yamlh.ANCHOR_TOKEN {
			if anchor != nil {
				d.fail(tok.StartMark, "already encountered an anchor for this node")
			}
			anchor = tok.Value
		} else {
			tag = tok.Value
		}
		d.scanner.Next()
		tok = d.scanner.Peek()
	}

	switch tok.Kind {
	case yamlh.SCALAR_TOKEN:
		d.scanner.Next()
		n := d.arenaScalar.New()
		*n = ScalarNode{startMark: tok.StartMark, Value: tok.Value, Tag: tag, Anchor: anchor}
		return n

	case yamlh.ALIAS_TOKEN:
		d.scanner.Next()
		n := d.arenaAlias.New()
		*n = AliasNode{startMark: tok.StartMark, Name: tok.Value}
		return n

	case yamlh.BLOCK_MAPPING_START_TOKEN:
		d.scanner.Next()
		n := d.arenaMapping.New()
		*n = MappingNode{doc: d, startMark: tok.StartMark, style: MappingBlock}
		return n

	case yamlh.FLOW_MAPPING_START_TOKEN:
		d.scanner.Next()
		n := d.arenaMapping.New()
		*n = MappingNode{doc: d, startMark: tok.StartMark, style: MappingFlow}
		return n

	case yamlh.BLOCK_SEQUENCE_START_TOKEN:
		d.scanner.Next()
		n := d.arenaSequence.New()
		*n = SequenceNode{doc: d, startMark: tok.StartMark, style: SequenceBlock}
		return n

	case yamlh.FLOW_SEQUENCE_START_TOKEN:
		d.scanner.Next()
		n := d.arenaSequence.New()
		*n = SequenceNode{doc: d, startMark: tok.StartMark, style: SequenceFlow}
		return n

	case yamlh.BLOCK_ENTRY_TOKEN:
		// An unindented block sequence: rollIndent never fired a
		// BLOCK_SEQUENCE_START for it (base spec §4.3, indent.go's
		// rollIndent is a no-op at equal indent), so it has no start
		// token of its own and no BLOCK_END terminator either. Leave the
		// BLOCK_ENTRY unconsumed; SequenceNode.Next reads it.
		n := d.arenaSequence.New()
		*n = SequenceNode{doc: d, startMark: tok.StartMark, style: SequenceIndentless}
		return n

	case yamlh.KEY_TOKEN:
		// A bare "key: value" pair with no preceding BLOCK_MAPPING_START
		// or FLOW_MAPPING_START -- most commonly an entry of a flow
		// sequence ("[a, b: c, d]"). Don't eat the KEY_TOKEN;
		// MappingNode.Next expects it. Matches the original's MT_Inline
		// handling of a bare explicit key where a node is expected.
		n := d.arenaMapping.New()
		*n = MappingNode{doc: d, startMark: tok.StartMark, style: MappingInline}
		return n

	default:
		d.fail(tok.StartMark, "unexpected token %s while scanning a node", tok.Kind)
		return d.newNull(tok.StartMark)
	}
}
