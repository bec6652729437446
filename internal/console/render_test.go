package console

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/sweeper/internal/mines"
)

func render(t *testing.T, b *mines.Board) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, Render(&sb, b))
	return sb.String()
}

func TestRender(t *testing.T) {
	s, _ := newTestSession(t)

	assert.Equal(t, ""+
		"   0 1 2 3\n"+
		"0  - - - -\n"+
		"1  - - - -\n"+
		"2  - - - -\n"+
		"3  - - - -\n",
		render(t, s.Board))

	_, err := s.ExecuteLine("o 0 0; f 1 3")
	require.NoError(t, err)
	assert.Equal(t, ""+
		"   0 1 2 3\n"+
		"0  . . 1 -\n"+
		"1  . . 1 F\n"+
		"2  . . 1 -\n"+
		"3  . . 1 -\n",
		render(t, s.Board))

	_, err = s.Execute("o 0 3")
	require.NoError(t, err)
	assert.Equal(t, ""+
		"   0 1 2 3\n"+
		"0  . . 1 X\n"+
		"1  . . 1 F\n"+
		"2  . . 1 -\n"+
		"3  . . 1 *\n",
		render(t, s.Board))
}

func TestRenderPadsWideBoards(t *testing.T) {
	b, err := mines.New(2, 11, 1)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(render(t, b), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "     0  1  2  3  4  5  6  7  8  9 10", lines[0])
	assert.Equal(t, " 0   -  -  -  -  -  -  -  -  -  -  -", lines[1])
	assert.Equal(t, " 1   -  -  -  -  -  -  -  -  -  -  -", lines[2])
}

func TestSessionRender(t *testing.T) {
	s, clock := newTestSession(t)
	clock.Advance(61*time.Second + 400*time.Millisecond)

	var sb strings.Builder
	require.NoError(t, s.Render(&sb))
	assert.True(t, strings.HasSuffix(sb.String(), "flags 0/2, 14 cells left, in progress, 1m1s\n"))
}
