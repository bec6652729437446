package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/vancomm/sweeper/internal/mines"
)

const (
	mineSymbol     = "*"
	explodedSymbol = "X"
)

// Render writes the board with row and column indexes. Once a game is lost
// the mines are drawn too.
func Render(w io.Writer, b *mines.Board) error {
	width := len(strconv.Itoa(max(b.Rows(), b.Cols()) - 1))
	pad := func(s string) string {
		return strings.Repeat(" ", width-len(s)) + s
	}

	overlay := make(map[mines.Point]string)
	if list, ok := b.Mines(); ok {
		for _, pt := range list {
			overlay[pt] = mineSymbol
		}
	}
	if pt, ok := b.Exploded(); ok {
		overlay[pt] = explodedSymbol
	}

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", width+1))
	for c := range b.Cols() {
		sb.WriteString(" " + pad(strconv.Itoa(c)))
	}
	sb.WriteByte('\n')

	grid := b.Grid()
	for r := range b.Rows() {
		sb.WriteString(pad(strconv.Itoa(r)) + " ")
		for c := range b.Cols() {
			sym, ok := overlay[mines.Point{Row: r, Col: c}]
			if !ok || grid[r*b.Cols()+c].Revealed() {
				sym = grid[r*b.Cols()+c].String()
			}
			sb.WriteString(" " + pad(sym))
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func (s *Session) Render(w io.Writer) error {
	if err := Render(w, s.Board); err != nil {
		return err
	}
	_, err := fmt.Fprintf(
		w, "flags %d/%d, %d cells left, %s, %s\n",
		s.Board.FlagCount(), s.Board.MineCount(),
		s.Board.RemainingCells(), s.Board.Status(),
		s.Elapsed().Round(time.Second),
	)
	return err
}
