package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/sweeper/internal/mines"
)

func TestDevelopment(t *testing.T) {
	t.Setenv("DEVELOPMENT", "1")
	assert.True(t, Development())
	t.Setenv("DEVELOPMENT", "0")
	assert.False(t, Development())
}

func TestNewGameDefaults(t *testing.T) {
	for _, key := range []string{"SWEEPER_ROWS", "SWEEPER_COLS", "SWEEPER_MINES", "SWEEPER_SEED"} {
		t.Setenv(key, "")
	}

	cfg, err := NewGame()
	require.NoError(t, err)
	assert.Equal(t, mines.Params{Rows: 9, Cols: 9, MineCount: 10}, cfg.Params)
	assert.False(t, cfg.Seeded)
}

func TestNewGameFromEnv(t *testing.T) {
	t.Setenv("SWEEPER_ROWS", "16")
	t.Setenv("SWEEPER_COLS", "30")
	t.Setenv("SWEEPER_MINES", "99")
	t.Setenv("SWEEPER_SEED", "42")

	cfg, err := NewGame()
	require.NoError(t, err)
	assert.Equal(t, mines.Params{Rows: 16, Cols: 30, MineCount: 99}, cfg.Params)
	assert.True(t, cfg.Seeded)
	assert.Equal(t, uint64(42), cfg.Seed)
}

func TestNewGameBadEnv(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"SWEEPER_ROWS", "nine"},
		{"SWEEPER_COLS", "9.5"},
		{"SWEEPER_MINES", "lots"},
		{"SWEEPER_SEED", "-1"},
	}

	for _, test := range tests {
		t.Run(test.key, func(t *testing.T) {
			t.Setenv(test.key, test.value)
			_, err := NewGame()
			assert.ErrorContains(t, err, test.key)
		})
	}
}

func TestSeededGamesRepeat(t *testing.T) {
	cfg := Game{Params: mines.Params{Rows: 9, Cols: 9, MineCount: 10}, Seed: 7, Seeded: true}

	play := func() string {
		b, err := mines.NewFromParams(cfg.Params, cfg.RandOption())
		require.NoError(t, err)
		_, err = b.Reveal(4, 4)
		require.NoError(t, err)
		return b.String()
	}
	assert.Equal(t, play(), play())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("SWEEPER_ROWS=12\nSWEEPER_MINES=20\n"), 0o600))

	t.Setenv("SWEEPER_ROWS", "")
	os.Unsetenv("SWEEPER_ROWS")
	t.Setenv("SWEEPER_MINES", "15")

	require.NoError(t, Load(path))
	assert.Equal(t, "12", os.Getenv("SWEEPER_ROWS"))
	assert.Equal(t, "15", os.Getenv("SWEEPER_MINES"))

	assert.NoError(t, Load(filepath.Join(dir, "missing.env")))
}
