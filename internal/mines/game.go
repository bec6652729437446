package mines

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/gammazero/deque"
)

var Log *slog.Logger = slog.Default()

type Status int8

const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("Status(%d)", int8(s))
	}
}

type CellUpdate struct {
	Point
	State CellState
	Mine  bool
}

type BoardUpdate []CellUpdate

type RevealOutcome struct {
	Changed BoardUpdate
	Status  Status
}

type FlagOutcome struct {
	Point
	State     CellState
	FlagCount int
	Changed   bool
}

// Board is a single game. It is not safe for concurrent use; callers that
// share a board must serialize commands themselves.
type Board struct {
	params      Params
	cells       []CellState
	mine        []bool
	minesPlaced bool
	opened      int
	flags       int
	status      Status
	exploded    *Point
	placer      MinePlacer
}

type Option func(*Board)

func WithPlacer(p MinePlacer) Option {
	return func(b *Board) {
		b.placer = p
	}
}

func WithRand(r *rand.Rand) Option {
	return WithPlacer(NewRandomPlacer(r))
}

func New(rows, cols, mineCount int, opts ...Option) (*Board, error) {
	return NewFromParams(Params{Rows: rows, Cols: cols, MineCount: mineCount}, opts...)
}

func NewFromParams(p Params, opts ...Option) (*Board, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	b := &Board{
		params: p,
		cells:  make([]CellState, p.Area()),
		mine:   make([]bool, p.Area()),
	}
	for i := range b.cells {
		b.cells[i] = Hidden
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.placer == nil {
		b.placer = NewRandomPlacer(nil)
	}
	return b, nil
}

func (b *Board) Params() Params   { return b.params }
func (b *Board) Rows() int        { return b.params.Rows }
func (b *Board) Cols() int        { return b.params.Cols }
func (b *Board) MineCount() int   { return b.params.MineCount }
func (b *Board) Status() Status   { return b.status }
func (b *Board) FlagCount() int   { return b.flags }
func (b *Board) OpenedCount() int { return b.opened }
func (b *Board) MinesPlaced() bool {
	return b.minesPlaced
}

func (b *Board) FlagsRemaining() int {
	return b.params.MineCount - b.flags
}

// RemainingCells is the number of safe cells still to be revealed.
func (b *Board) RemainingCells() int {
	return b.params.Area() - b.params.MineCount - b.opened
}

func (b *Board) InBounds(row, col int) bool {
	return b.params.InBounds(row, col)
}

func (b *Board) Neighbors(pt Point) []Point {
	return b.params.Neighbors(pt)
}

func (b *Board) checkBounds(row, col int) error {
	if !b.params.InBounds(row, col) {
		return fmt.Errorf(
			"%w: (%d, %d) on a %dx%d grid",
			ErrOutOfBounds, row, col, b.params.Rows, b.params.Cols,
		)
	}
	return nil
}

func (b *Board) Cell(row, col int) (CellState, error) {
	if err := b.checkBounds(row, col); err != nil {
		return Hidden, err
	}
	return b.cells[b.params.index(row, col)], nil
}

// Grid returns a copy of the player-visible cell states in row-major order.
func (b *Board) Grid() Grid {
	g := make(Grid, len(b.cells))
	copy(g, b.cells)
	return g
}

func (b *Board) String() string {
	return b.Grid().ToString(b.params.Cols)
}

// Mines returns every mine position once the game is lost.
func (b *Board) Mines() ([]Point, bool) {
	if b.status != Lost {
		return nil, false
	}
	var mines []Point
	for i, m := range b.mine {
		if m {
			mines = append(mines, b.params.point(i))
		}
	}
	return mines, true
}

// Exploded returns the mine that ended the game, if any.
func (b *Board) Exploded() (Point, bool) {
	if b.exploded == nil {
		return Point{}, false
	}
	return *b.exploded, true
}

// AdjacentMines counts mines among the clipped 8-neighbourhood of a cell.
// Before placement every count is zero.
func (b *Board) AdjacentMines(row, col int) (int, error) {
	if err := b.checkBounds(row, col); err != nil {
		return 0, err
	}
	return b.adjacentMines(Point{row, col}), nil
}

func (b *Board) adjacentMines(pt Point) (count int) {
	fromRow, toRow, fromCol, toCol := b.params.neighborRange(pt.Row, pt.Col, 1)
	for r := fromRow; r <= toRow; r++ {
		for c := fromCol; c <= toCol; c++ {
			if (r != pt.Row || c != pt.Col) && b.mine[b.params.index(r, c)] {
				count++
			}
		}
	}
	return
}

func (b *Board) outcome(update BoardUpdate) RevealOutcome {
	return RevealOutcome{Changed: update, Status: b.status}
}

func (b *Board) placeMines(first Point) error {
	safe := b.params.SafeZone(first)
	mines, err := b.placer.Place(b.params, safe)
	if err != nil {
		if !errors.Is(err, ErrPlacement) {
			err = fmt.Errorf("%w: %w", ErrPlacement, err)
		}
		return err
	}
	if err := checkMines(b.params, safe, mines); err != nil {
		return err
	}
	for _, pt := range mines {
		b.mine[b.params.index(pt.Row, pt.Col)] = true
	}
	b.minesPlaced = true
	Log.Debug(
		"placed mines",
		slog.String("params", b.params.String()),
		slog.Any("first", first),
	)
	return nil
}

// Reveal opens a hidden cell. The first reveal of a board places the mines
// so that the cell and its neighbours are mine-free.
func (b *Board) Reveal(row, col int) (RevealOutcome, error) {
	if err := b.checkBounds(row, col); err != nil {
		return b.outcome(nil), err
	}
	i := b.params.index(row, col)
	if b.status != InProgress || b.cells[i] != Hidden {
		return b.outcome(nil), nil
	}
	if !b.minesPlaced {
		if err := b.placeMines(Point{row, col}); err != nil {
			return b.outcome(nil), err
		}
	}
	return b.outcome(b.open(i)), nil
}

func (b *Board) open(i int) BoardUpdate {
	if b.mine[i] {
		return b.explode(i)
	}
	update := b.cascade(i)
	if b.opened == b.params.Area()-b.params.MineCount {
		b.status = Won
	}
	return update
}

// cascade reveals start and, while zero counts are found, every hidden cell
// connected to it through zero cells.
func (b *Board) cascade(start int) (update BoardUpdate) {
	var todo deque.Deque[int]
	queued := make([]bool, len(b.cells))
	todo.PushBack(start)
	queued[start] = true

	for todo.Len() != 0 {
		i := todo.PopFront()
		if b.cells[i] != Hidden || b.mine[i] {
			continue
		}
		pt := b.params.point(i)
		n := b.adjacentMines(pt)
		b.cells[i] = CellState(n)
		b.opened++
		update = append(update, CellUpdate{Point: pt, State: b.cells[i]})
		if n != 0 {
			continue
		}
		for _, nb := range b.params.Neighbors(pt) {
			j := b.params.index(nb.Row, nb.Col)
			if !queued[j] && b.cells[j] == Hidden {
				queued[j] = true
				todo.PushBack(j)
			}
		}
	}
	return
}

func (b *Board) explode(i int) BoardUpdate {
	pt := b.params.point(i)
	b.exploded = &pt
	b.status = Lost
	update := BoardUpdate{{Point: pt, State: b.cells[i], Mine: true}}
	return append(update, b.minesExcept(i)...)
}

func (b *Board) minesExcept(skip int) (update BoardUpdate) {
	for j, m := range b.mine {
		if m && j != skip {
			update = append(update, CellUpdate{
				Point: b.params.point(j), State: b.cells[j], Mine: true,
			})
		}
	}
	return
}

// ToggleFlag flags a hidden cell or clears a flagged one. No more flags
// than mines can be placed.
func (b *Board) ToggleFlag(row, col int) (FlagOutcome, error) {
	if err := b.checkBounds(row, col); err != nil {
		return FlagOutcome{Point: Point{row, col}, State: Hidden, FlagCount: b.flags}, err
	}
	i := b.params.index(row, col)
	out := FlagOutcome{Point: Point{row, col}, State: b.cells[i], FlagCount: b.flags}
	if b.status != InProgress {
		return out, nil
	}

	switch b.cells[i] {
	case Flagged:
		b.cells[i] = Hidden
		b.flags--
	case Hidden:
		if b.flags >= b.params.MineCount {
			return out, nil
		}
		b.cells[i] = Flagged
		b.flags++
	default:
		return out, nil
	}

	out.State = b.cells[i]
	out.FlagCount = b.flags
	out.Changed = true
	return out, nil
}

// Chord reveals every hidden neighbour of a revealed cell whose number of
// flagged neighbours equals its mine count.
func (b *Board) Chord(row, col int) (RevealOutcome, error) {
	if err := b.checkBounds(row, col); err != nil {
		return b.outcome(nil), err
	}
	i := b.params.index(row, col)
	if b.status != InProgress || !b.cells[i].Revealed() {
		return b.outcome(nil), nil
	}

	var (
		flagged int
		hidden  []int
	)
	for _, nb := range b.params.Neighbors(Point{row, col}) {
		j := b.params.index(nb.Row, nb.Col)
		switch b.cells[j] {
		case Flagged:
			flagged++
		case Hidden:
			hidden = append(hidden, j)
		}
	}
	if flagged != b.cells[i].Count() {
		return b.outcome(nil), nil
	}

	var update BoardUpdate
	for _, j := range hidden {
		if b.cells[j] != Hidden {
			continue // opened by an earlier cascade
		}
		update = append(update, b.open(j)...)
		if b.status != InProgress {
			break
		}
	}
	return b.outcome(update), nil
}

// Forfeit ends a game in progress as lost and exposes the mines.
func (b *Board) Forfeit() RevealOutcome {
	if b.status != InProgress {
		return b.outcome(nil)
	}
	b.status = Lost
	return b.outcome(b.minesExcept(-1))
}
