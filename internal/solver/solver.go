// Package solver finds moves that follow with certainty from what a player
// can see on a board, and can play a game with them until it stalls.
//
// Only single-cell deductions are made: a revealed cell whose flags already
// account for its count makes its other hidden neighbours safe, and a cell
// whose hidden neighbours are exactly its missing mines makes them all mines.
// Flags placed by the player are trusted.
package solver

import (
	"fmt"
	"log/slog"

	"github.com/gammazero/deque"

	"github.com/vancomm/sweeper/internal/mines"
)

type Move uint8

const (
	Open Move = iota + 1
	Flag
)

func (m Move) String() string {
	switch m {
	case Open:
		return "open"
	case Flag:
		return "flag"
	default:
		return fmt.Sprintf("Move(%d)", uint8(m))
	}
}

type Hint struct {
	mines.Point
	Move Move
}

func (h Hint) String() string {
	return fmt.Sprintf("%s %d %d", h.Move, h.Row, h.Col)
}

// View is the player-visible side of a board.
type View interface {
	Rows() int
	Cols() int
	Cell(row, col int) (mines.CellState, error)
	Neighbors(mines.Point) []mines.Point
}

type Game interface {
	View
	Status() mines.Status
	Reveal(row, col int) (mines.RevealOutcome, error)
	ToggleFlag(row, col int) (mines.FlagOutcome, error)
}

func cell(v View, pt mines.Point) mines.CellState {
	s, err := v.Cell(pt.Row, pt.Col)
	if err != nil {
		return mines.Hidden
	}
	return s
}

// inspect returns the moves implied by the cell at pt alone.
func inspect(v View, pt mines.Point) (hints []Hint) {
	s := cell(v, pt)
	if !s.Revealed() {
		return
	}

	var (
		hidden  []mines.Point
		flagged int
	)
	for _, nb := range v.Neighbors(pt) {
		switch cell(v, nb) {
		case mines.Hidden:
			hidden = append(hidden, nb)
		case mines.Flagged:
			flagged++
		}
	}
	if len(hidden) == 0 {
		return
	}

	var move Move
	switch remaining := s.Count() - flagged; remaining {
	case 0:
		move = Open
	case len(hidden):
		move = Flag
	default:
		return
	}
	for _, h := range hidden {
		hints = append(hints, Hint{Point: h, Move: move})
	}
	return
}

// Hints lists every certain move on the board, in row-major order of the
// cells they were deduced from. Before anything is revealed every cell is
// safe, and the centre is suggested.
func Hints(v View) []Hint {
	var (
		hints    []Hint
		seen     = make(map[mines.Point]bool)
		revealed bool
	)
	for r := range v.Rows() {
		for c := range v.Cols() {
			pt := mines.Point{Row: r, Col: c}
			if cell(v, pt).Revealed() {
				revealed = true
			}
			for _, h := range inspect(v, pt) {
				if !seen[h.Point] {
					seen[h.Point] = true
					hints = append(hints, h)
				}
			}
		}
	}
	if !revealed {
		return []Hint{{Point: mines.Point{Row: v.Rows() / 2, Col: v.Cols() / 2}, Move: Open}}
	}
	return hints
}

func Next(v View) (Hint, bool) {
	hints := Hints(v)
	if len(hints) == 0 {
		return Hint{}, false
	}
	return hints[0], true
}

type Solver struct {
	game         Game
	logger       *slog.Logger
	inspectQueue deque.Deque[mines.Point]
}

func New(game Game, logger *slog.Logger) *Solver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Solver{game: game, logger: logger}
}

// touch queues pt and its revealed neighbours for inspection.
func (s *Solver) touch(pt mines.Point) {
	s.inspectQueue.PushBack(pt)
	for _, nb := range s.game.Neighbors(pt) {
		if cell(s.game, nb).Revealed() {
			s.inspectQueue.PushBack(nb)
		}
	}
}

func (s *Solver) apply(h Hint) error {
	if cell(s.game, h.Point) != mines.Hidden {
		return nil
	}
	s.logger.Debug("solver move", slog.String("move", h.Move.String()), slog.Any("cell", h.Point))

	switch h.Move {
	case Open:
		out, err := s.game.Reveal(h.Row, h.Col)
		if err != nil {
			return err
		}
		for _, u := range out.Changed {
			if !u.Mine {
				s.touch(u.Point)
			}
		}
	case Flag:
		out, err := s.game.ToggleFlag(h.Row, h.Col)
		if err != nil {
			return err
		}
		if out.Changed {
			s.touch(h.Point)
		}
	}
	return nil
}

// Solve plays certain moves until the game is over or none are left. A game
// that has not been started is left untouched.
func (s *Solver) Solve() (mines.Status, error) {
	for r := range s.game.Rows() {
		for c := range s.game.Cols() {
			pt := mines.Point{Row: r, Col: c}
			if cell(s.game, pt).Revealed() {
				s.inspectQueue.PushBack(pt)
			}
		}
	}

	for s.inspectQueue.Len() != 0 && s.game.Status() == mines.InProgress {
		pt := s.inspectQueue.PopFront()
		for _, h := range inspect(s.game, pt) {
			if err := s.apply(h); err != nil {
				return s.game.Status(), fmt.Errorf("unable to apply %v: %w", h, err)
			}
			if s.game.Status() != mines.InProgress {
				break
			}
		}
	}

	status := s.game.Status()
	s.logger.Debug("solver finished", slog.String("status", status.String()))
	return status, nil
}
