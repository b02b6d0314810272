package persist_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/opgen/linprog"
	"github.com/katalvlaran/opgen/persist"
	"github.com/katalvlaran/opgen/transport"
	"github.com/katalvlaran/opgen/variants"
)

// TestWriteReadRoundTrip writes a set into a nested directory and reads it
// back, revalidating the contract on both ends.
func TestWriteReadRoundTrip(t *testing.T) {
	t.Parallel()

	set, err := variants.BuildSet(3, transport.DefaultParams(), linprog.DefaultParams(), variants.WithSeed(5))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out", "variants.json")
	require.NoError(t, persist.WriteSet(path, set))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"variants"`)
	require.Contains(t, string(raw), `"count": 3`)
	require.Contains(t, string(raw), `"type": "transport_task"`)
	require.Contains(t, string(raw), `"type": "lp_problem"`)

	back, err := persist.ReadSet(path)
	require.NoError(t, err)
	require.Equal(t, set.Count, back.Count)
	require.Equal(t,
		set.Variants[2].Tasks[0].Transport.Suppliers.Labels(),
		back.Variants[2].Tasks[0].Transport.Suppliers.Labels())
}

// TestWriteRejectsMalformedSet: a corrupted set never reaches disk.
func TestWriteRejectsMalformedSet(t *testing.T) {
	t.Parallel()

	set, err := variants.BuildSet(1, transport.DefaultParams(), linprog.DefaultParams(), variants.WithSeed(2))
	require.NoError(t, err)
	set.Count = 7 // stale

	path := filepath.Join(t.TempDir(), "variants.json")
	require.ErrorIs(t, persist.WriteSet(path, set), variants.ErrMalformedSet)
	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr))
}

// TestReadRejectsCorruptDocument covers decode and validation failures.
func TestReadRejectsCorruptDocument(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	bad := filepath.Join(dir, "garbage.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err := persist.ReadSet(bad)
	require.Error(t, err)

	stale := filepath.Join(dir, "stale.json")
	require.NoError(t, os.WriteFile(stale, []byte(`{"variants":[],"count":2}`), 0o644))
	_, err = persist.ReadSet(stale)
	require.ErrorIs(t, err, variants.ErrMalformedSet)

	_, err = persist.ReadSet(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
}
