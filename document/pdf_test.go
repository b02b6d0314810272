package document_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/opgen/document"
	"github.com/katalvlaran/opgen/linprog"
	"github.com/katalvlaran/opgen/transport"
	"github.com/katalvlaran/opgen/variants"
)

// TestBuildWritesOneFilePerVariant checks file naming and that each output
// is a PDF document.
func TestBuildWritesOneFilePerVariant(t *testing.T) {
	t.Parallel()

	set, err := variants.BuildSet(3, transport.DefaultParams(), linprog.DefaultParams(), variants.WithSeed(6))
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "pdfs")
	require.NoError(t, document.Build(set, dir))

	for _, name := range []string{"variant_1.pdf", "variant_2.pdf", "variant_3.pdf"} {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		require.True(t, len(raw) > 4, name)
		require.Equal(t, "%PDF", string(raw[:4]), name)
	}
}

// TestBuildEmptySet creates the directory and nothing else.
func TestBuildEmptySet(t *testing.T) {
	t.Parallel()

	set, err := variants.BuildSet(0, transport.DefaultParams(), linprog.DefaultParams(), variants.WithSeed(1))
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, document.Build(set, dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

// TestBuildNilSet is rejected.
func TestBuildNilSet(t *testing.T) {
	t.Parallel()

	require.Error(t, document.Build(nil, t.TempDir()))
}
