package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type CellState int8

const (
	Hidden  CellState = -2
	Flagged CellState = -1
	/*
	 * Every other value is a revealed cell:
	 *
	 * 	- 0 to 8 mean the cell is open and has that many mines
	 * 	  among its neighbours.
	 *
	 * A mine cell is never revealed; it stays Hidden or Flagged and
	 * is reported through [Board.Mines] once the game is lost.
	 */
)

func (s CellState) Revealed() bool {
	return 0 <= s && s <= 8
}

// Count returns the adjacent mine count of a revealed cell, or -1.
func (s CellState) Count() int {
	if !s.Revealed() {
		return -1
	}
	return int(s)
}

func (s CellState) String() string {
	switch {
	case s == Hidden:
		return "-"
	case s == Flagged:
		return "F"
	case s == 0:
		return "."
	case s.Revealed():
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

type Grid []CellState

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			i := y*width + x
			if i >= len(g) {
				break
			}
			fmt.Fprint(&b, g[i].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
