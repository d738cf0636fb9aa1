package domain

// Grid is an ordered sequence of rows. Rows are expected to share a length,
// but nothing enforces it.
type Grid[T any] [][]T

// Rows returns the number of rows.
func (g Grid[T]) Rows() int {
	return len(g)
}

// Width returns the length of the widest row.
func (g Grid[T]) Width() int {
	w := 0
	for _, row := range g {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// Cells returns the total number of cells.
func (g Grid[T]) Cells() int {
	n := 0
	for _, row := range g {
		n += len(row)
	}
	return n
}

// IsRectangular reports whether every row has the same length.
func (g Grid[T]) IsRectangular() bool {
	for _, row := range g {
		if len(row) != len(g[0]) {
			return false
		}
	}
	return true
}

// MapGrid builds a new grid by applying fn to every cell in row-major order.
// The first error stops the walk.
func MapGrid[T, U any](g Grid[T], fn func(T) (U, error)) (Grid[U], error) {
	out := make(Grid[U], len(g))
	for y, row := range g {
		out[y] = make([]U, len(row))
		for x, cell := range row {
			v, err := fn(cell)
			if err != nil {
				return nil, err
			}
			out[y][x] = v
		}
	}
	return out, nil
}
