package toml

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/tstack/internal/application"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLoadScript(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "script.toml")
	require.NoError(t, os.WriteFile(path, []byte(`version = 1
seed = 42
commands = ["play", "2", "use", "swap-front", "swap-triple", "quit"]
`), 0o644))

	script, err := NewStore().Load(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, int64(42), script.Seed)
	assert.Equal(t, []application.Command{
		application.CommandPlay,
		application.CommandReserve,
		application.CommandUseReserved,
		application.CommandSwapFront,
		application.CommandSwapTriple,
		application.CommandQuit,
	}, script.Commands)
}

func TestStoreLoadDefaultsVersionAndSeed(t *testing.T) {
	t.Parallel()

	script, err := Decode([]byte(`commands = ["1"]`))

	require.NoError(t, err)
	assert.Zero(t, script.Seed)
	assert.Equal(t, []application.Command{application.CommandPlay}, script.Commands)
}

func TestStoreLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "future version", body: "version = 2\ncommands = []\n", wantErr: "unsupported script schema version 2"},
		{name: "unknown command", body: "commands = [\"play\", \"jump\"]\n", wantErr: "script command 2: unknown command"},
		{name: "malformed toml", body: "commands = [\n", wantErr: "decode script file"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "script.toml")
			require.NoError(t, os.WriteFile(path, []byte(tc.body), 0o644))

			_, err := NewStore().Load(context.Background(), path)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestStoreLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewStore().Load(context.Background(), filepath.Join(t.TempDir(), "missing.toml"))

	assert.ErrorIs(t, err, ErrScriptNotFound)
}

func TestStoreLoadHonorsCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStore().Load(ctx, "unused.toml")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStoreSaveThenLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "recorded.toml")
	store := NewStore()
	want := application.Script{
		Seed:     7,
		Commands: []application.Command{application.CommandReserve, application.CommandSwapFront, application.CommandPlay},
	}

	require.NoError(t, store.Save(context.Background(), path, want))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "reserve")

	got, err := store.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}
