package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The checked-in node.go must be exactly what the generator writes.
func TestGeneratedNodesAreUpToDate(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "calc")
	require.NoError(t, os.Mkdir(outputDir, 0755))

	require.NoError(t, defineAst(outputDir, "Node", nodeTypes))

	got, err := os.ReadFile(filepath.Join(outputDir, "node.go"))
	require.NoError(t, err)
	want, err := os.ReadFile(filepath.Join("..", "..", "calc", "node.go"))
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))
}
