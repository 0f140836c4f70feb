// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// This binary reads a YAML document and prints either its raw token
// stream or its parsed node tree, for inspecting how the scanner and
// node layers see a given input.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/willabides/yamlscan"
)

func main() {
	var (
		mode   = flag.String("mode", "tokens", `what to print: "tokens" or "nodes"`)
		maxKey = flag.Int("max-simple-key-distance", 0, "override the simple-key lookahead distance (0 keeps the default)")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] [file]\n\nReads YAML from file, or stdin if no file is given.\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	data, filename, err := readInput(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, "yamltok:", err)
		os.Exit(1)
	}

	sink := &yamlscan.WriterSink{W: os.Stderr, Filename: filename}
	opts := []yamlscan.Option{yamlscan.WithDiagnosticSink(sink), yamlscan.WithFilename(filename)}
	if *maxKey > 0 {
		opts = append(opts, yamlscan.WithMaxSimpleKeyDistance(*maxKey))
	}

	switch *mode {
	case "tokens":
		err = printTokens(data, opts)
	case "nodes":
		err = printNodes(data, opts)
	default:
		err = fmt.Errorf("unknown -mode %q, want \"tokens\" or \"nodes\"", *mode)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "yamltok:", err)
		os.Exit(1)
	}
}

func readInput(args []string) (data []byte, filename string, err error) {
	if len(args) == 0 {
		data, err = io.ReadAll(os.Stdin)
		return data, "<stdin>", err
	}
	if len(args) > 1 {
		return nil, "", fmt.Errorf("expected at most one file argument, got %d", len(args))
	}
	data, err = os.ReadFile(args[0])
	return data, args[0], err
}

func printTokens(data []byte, opts []yamlscan.Option) error {
	ts := yamlscan.Tokens(data, opts...)
	for {
		tok := ts.Next()
		fmt.Printf("%-28s %s  %q\n", tok.Kind, tok.StartMark, tok.Value)
		if tok.Kind == yamlscan.StreamEndToken || tok.Kind == yamlscan.ErrorToken {
			break
		}
	}
	if ts.Failed() {
		return fmt.Errorf("scanning failed")
	}
	return nil
}

func printNodes(data []byte, opts []yamlscan.Option) error {
	s := yamlscan.NewStream(data, opts...)
	docs := s.Documents()
	n := 0
	for {
		doc, ok := docs.Next()
		if !ok {
			break
		}
		fmt.Printf("document %d:\n", n)
		printNode(doc.Root(), 1)
		n++
	}
	if s.Failed() {
		return fmt.Errorf("scanning failed after %d document(s)", n)
	}
	return nil
}

func printNode(n yamlscan.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	if n == nil {
		fmt.Printf("%snull\n", indent)
		return
	}
	switch v := n.(type) {
	case *yamlscan.ScalarNode:
		fmt.Printf("%sscalar %q\n", indent, v.Value)
	case *yamlscan.NullNode:
		fmt.Printf("%snull\n", indent)
	case *yamlscan.AliasNode:
		fmt.Printf("%salias *%s\n", indent, v.Name)
	case *yamlscan.MappingNode:
		fmt.Printf("%smapping (%s)\n", indent, v.Style())
		for {
			kv, ok := v.Next()
			if !ok {
				break
			}
			fmt.Printf("%skey:\n", indent)
			printNode(kv.Key, depth+1)
			fmt.Printf("%svalue:\n", indent)
			printNode(kv.Value, depth+1)
		}
	case *yamlscan.SequenceNode:
		fmt.Printf("%ssequence (%s)\n", indent, v.Style())
		for {
			elem, ok := v.Next()
			if !ok {
				break
			}
			printNode(elem, depth+1)
		}
	}
}
