package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/vancomm/sweeper/internal/mines"
)

const (
	DefaultRows  = 9
	DefaultCols  = 9
	DefaultMines = 10
)

// Load reads variables from a .env file in the working directory, if there
// is one. Variables already set in the environment win.
func Load(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

type Game struct {
	Params mines.Params
	Seed   uint64
	Seeded bool
}

func intEnv(key string, fallback int) (int, error) {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unable to parse %s: %w", key, err)
	}
	return v, nil
}

// NewGame reads the default board from SWEEPER_ROWS, SWEEPER_COLS and
// SWEEPER_MINES, and an optional SWEEPER_SEED.
func NewGame() (*Game, error) {
	rows, err := intEnv("SWEEPER_ROWS", DefaultRows)
	if err != nil {
		return nil, err
	}
	cols, err := intEnv("SWEEPER_COLS", DefaultCols)
	if err != nil {
		return nil, err
	}
	mineCount, err := intEnv("SWEEPER_MINES", DefaultMines)
	if err != nil {
		return nil, err
	}

	cfg := &Game{
		Params: mines.Params{Rows: rows, Cols: cols, MineCount: mineCount},
	}

	if s, ok := os.LookupEnv("SWEEPER_SEED"); ok && s != "" {
		if cfg.Seed, err = strconv.ParseUint(s, 10, 64); err != nil {
			return nil, fmt.Errorf("unable to parse SWEEPER_SEED: %w", err)
		}
		cfg.Seeded = true
	}

	return cfg, nil
}

// RandOption picks the mine placement source for the configured seed.
func (g Game) RandOption() mines.Option {
	if g.Seeded {
		return mines.WithRand(mines.NewSeededRand(g.Seed))
	}
	return mines.WithRand(mines.NewRand())
}
