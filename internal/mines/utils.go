package mines

import "fmt"

type Point struct {
	Row, Col int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// neighborRange returns the clipped square of cells within dist of (row, col).
func (p Params) neighborRange(row, col, dist int) (fromRow, toRow, fromCol, toCol int) {
	fromRow, toRow = max(0, row-dist), min(row+dist, p.Rows-1)
	fromCol, toCol = max(0, col-dist), min(col+dist, p.Cols-1)
	return
}

// Neighbors returns the up to 8 cells sharing an edge or corner with pt.
func (p Params) Neighbors(pt Point) []Point {
	fromRow, toRow, fromCol, toCol := p.neighborRange(pt.Row, pt.Col, 1)
	neighbors := make([]Point, 0, 8)
	for r := fromRow; r <= toRow; r++ {
		for c := fromCol; c <= toCol; c++ {
			if r != pt.Row || c != pt.Col {
				neighbors = append(neighbors, Point{r, c})
			}
		}
	}
	return neighbors
}

// SafeZone returns pt together with its neighbours.
func (p Params) SafeZone(pt Point) []Point {
	return append([]Point{pt}, p.Neighbors(pt)...)
}

func (p Params) index(row, col int) int {
	return row*p.Cols + col
}

func (p Params) point(i int) Point {
	return Point{i / p.Cols, i % p.Cols}
}
