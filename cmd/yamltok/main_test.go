// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadInputFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1\n"), 0o644))

	data, name, err := readInput([]string{path})
	require.NoError(t, err)
	require.Equal(t, path, name)
	require.Equal(t, "a: 1\n", string(data))
}

func TestReadInputRejectsMultipleFiles(t *testing.T) {
	_, _, err := readInput([]string{"a.yaml", "b.yaml"})
	require.Error(t, err)
}
