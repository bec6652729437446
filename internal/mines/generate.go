package mines

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"
)

// A MinePlacer chooses the mine cells of a board. safe lists the cells that
// must stay mine-free. Implementations must return exactly p.MineCount
// distinct in-bounds points.
type MinePlacer interface {
	Place(p Params, safe []Point) ([]Point, error)
}

func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomPlacer picks mines uniformly at random, without replacement, from
// every cell outside the safe zone.
type RandomPlacer struct {
	r *rand.Rand
}

func NewRandomPlacer(r *rand.Rand) *RandomPlacer {
	if r == nil {
		r = NewRand()
	}
	return &RandomPlacer{r: r}
}

func (rp *RandomPlacer) Place(p Params, safe []Point) ([]Point, error) {
	excluded := make([]bool, p.Area())
	for _, pt := range safe {
		if p.InBounds(pt.Row, pt.Col) {
			excluded[p.index(pt.Row, pt.Col)] = true
		}
	}

	/*
	 * Write down the list of possible mine locations.
	 */
	candidates := make([]int, 0, p.Area())
	for i := range p.Area() {
		if !excluded[i] {
			candidates = append(candidates, i)
		}
	}

	if p.MineCount > len(candidates) {
		return nil, fmt.Errorf(
			"%w: %d mines do not fit in %d cells outside the safe zone",
			ErrPlacement, p.MineCount, len(candidates),
		)
	}

	/*
	 * Now pick n off the list at random.
	 */
	mines := make([]Point, 0, p.MineCount)
	k := len(candidates)
	for range p.MineCount {
		i := rp.r.IntN(k)
		mines = append(mines, p.point(candidates[i]))
		k--
		candidates[i] = candidates[k]
	}

	return mines, nil
}

// FixedPlacer places mines on a predetermined set of cells.
type FixedPlacer []Point

func (f FixedPlacer) Place(p Params, safe []Point) ([]Point, error) {
	if err := checkMines(p, safe, f); err != nil {
		return nil, err
	}
	mines := make([]Point, len(f))
	copy(mines, f)
	return mines, nil
}

// checkMines verifies that mines is a valid placement for p around safe.
func checkMines(p Params, safe []Point, mines []Point) error {
	if len(mines) != p.MineCount {
		return fmt.Errorf(
			"%w: have %d mines, want %d", ErrPlacement, len(mines), p.MineCount,
		)
	}

	seen := make(map[Point]bool, len(mines))
	for _, pt := range mines {
		if !p.InBounds(pt.Row, pt.Col) {
			return fmt.Errorf("%w: mine %v is off the grid", ErrPlacement, pt)
		}
		if seen[pt] {
			return fmt.Errorf("%w: mine %v listed twice", ErrPlacement, pt)
		}
		seen[pt] = true
	}
	for _, pt := range safe {
		if seen[pt] {
			return fmt.Errorf("%w: mine %v is inside the safe zone", ErrPlacement, pt)
		}
	}
	return nil
}
