package solver

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/sweeper/internal/mines"
)

func fixedBoard(t *testing.T, rows, cols int, mineList ...mines.Point) *mines.Board {
	t.Helper()
	b, err := mines.New(rows, cols, len(mineList), mines.WithPlacer(mines.FixedPlacer(mineList)))
	require.NoError(t, err)
	return b
}

// wallBoard has two mines at the top of the middle column; only the bottom
// of that column is open.
//
//	. 2 * - -
//	. 2 * - -
//	. 1 - - -
func wallBoard(t *testing.T) *mines.Board {
	b := fixedBoard(t, 3, 5, mines.Point{Row: 0, Col: 2}, mines.Point{Row: 1, Col: 2})
	_, err := b.Reveal(1, 0)
	require.NoError(t, err)
	require.Equal(t, 6, b.OpenedCount())
	return b
}

func TestHints(t *testing.T) {
	b := wallBoard(t)

	hints := Hints(b)
	assert.Equal(t, []Hint{
		{Point: mines.Point{Row: 0, Col: 2}, Move: Flag},
		{Point: mines.Point{Row: 1, Col: 2}, Move: Flag},
	}, hints)

	next, ok := Next(b)
	require.True(t, ok)
	assert.Equal(t, "flag 0 2", next.String())

	_, err := b.ToggleFlag(0, 2)
	require.NoError(t, err)
	_, err = b.ToggleFlag(1, 2)
	require.NoError(t, err)

	next, ok = Next(b)
	require.True(t, ok)
	assert.Equal(t, Hint{Point: mines.Point{Row: 2, Col: 2}, Move: Open}, next)
}

func TestHintsBeforeFirstMove(t *testing.T) {
	b, err := mines.New(9, 9, 10)
	require.NoError(t, err)

	hints := Hints(b)
	assert.Equal(t, []Hint{{Point: mines.Point{Row: 4, Col: 4}, Move: Open}}, hints)
}

func TestSolve(t *testing.T) {
	b := wallBoard(t)

	status, err := New(b, nil).Solve()
	require.NoError(t, err)
	assert.Equal(t, mines.Won, status)
	assert.Equal(t, 2, b.FlagCount())
	assert.Equal(t, 0, b.RemainingCells())
}

func TestSolveStalls(t *testing.T) {
	b := fixedBoard(t, 4, 4, mines.Point{Row: 0, Col: 3}, mines.Point{Row: 3, Col: 3})
	_, err := b.Reveal(0, 0)
	require.NoError(t, err)

	status, err := New(b, nil).Solve()
	require.NoError(t, err)
	assert.Equal(t, mines.InProgress, status)
	assert.Equal(t, 12, b.OpenedCount())
	assert.Equal(t, 0, b.FlagCount())

	_, ok := Next(b)
	assert.False(t, ok)
}

func TestSolveNeverLoses(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 100 {
		b, err := mines.New(16, 16, 40, mines.WithRand(r))
		require.NoError(t, err)
		_, err = b.Reveal(8, 8)
		require.NoError(t, err)

		status, err := New(b, nil).Solve()
		require.NoError(t, err)
		assert.NotEqual(t, mines.Lost, status)
		assert.LessOrEqual(t, b.FlagCount(), b.MineCount())
	}
}

func TestSolveUnstartedGame(t *testing.T) {
	b, err := mines.New(9, 9, 10)
	require.NoError(t, err)

	status, err := New(b, nil).Solve()
	require.NoError(t, err)
	assert.Equal(t, mines.InProgress, status)
	assert.False(t, b.MinesPlaced())
}
