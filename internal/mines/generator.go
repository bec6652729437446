package mines

import "fmt"

type Params struct {
	Rows      int `schema:"rows,required"`
	Cols      int `schema:"cols,required"`
	MineCount int `schema:"mines,required"`
}

func (p Params) Unpack() (rows int, cols int, mc int) {
	return p.Rows, p.Cols, p.MineCount
}

func (p Params) Area() int {
	return p.Rows * p.Cols
}

// String renders the params as rows:cols:mines.
func (p Params) String() string {
	return fmt.Sprintf("%d:%d:%d", p.Rows, p.Cols, p.MineCount)
}

func (p Params) Validate() error {
	if p.Rows <= 0 || p.Cols <= 0 {
		return fmt.Errorf(
			"%w: grid must be at least 1x1 (have %dx%d)",
			ErrInvalidConfiguration, p.Rows, p.Cols,
		)
	}
	if p.MineCount <= 0 || p.MineCount >= p.Area() {
		return fmt.Errorf(
			"%w: mine count must be in (0, %d) (have %d)",
			ErrInvalidConfiguration, p.Area(), p.MineCount,
		)
	}
	return nil
}

// ValidateSafeZone also rejects mine counts that would not fit outside the
// largest possible safe zone, so that placement can never fail mid-game.
func (p Params) ValidateSafeZone() error {
	if err := p.Validate(); err != nil {
		return err
	}
	limit := p.Area() - min(p.Rows, 3)*min(p.Cols, 3)
	if p.MineCount > limit {
		return fmt.Errorf(
			"%w: at most %d mines fit on a %dx%d grid (have %d)",
			ErrInvalidConfiguration, limit, p.Rows, p.Cols, p.MineCount,
		)
	}
	return nil
}

func (p Params) InBounds(row, col int) bool {
	return 0 <= row && row < p.Rows && 0 <= col && col < p.Cols
}
