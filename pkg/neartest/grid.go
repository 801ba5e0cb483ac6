package neartest

import "fmt"

// Grid is a fixed-size rectangular matrix stored in row-major order.
// Its dimensions cannot change after construction.
type Grid[T Number] struct {
	rows, cols int
	data       []T
}

// NewGrid creates a zero-filled rows×cols grid.
// Panics if either dimension is negative.
func NewGrid[T Number](rows, cols int) Grid[T] {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("neartest.NewGrid: negative dimensions %dx%d", rows, cols))
	}
	return Grid[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
}

// GridFromRows copies rows into a new grid. All rows must have the same
// length; an error is returned otherwise.
func GridFromRows[T Number](rows [][]T) (Grid[T], error) {
	if len(rows) == 0 {
		return Grid[T]{}, nil
	}
	cols := len(rows[0])
	g := NewGrid[T](len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return Grid[T]{}, fmt.Errorf("row %d has %d columns, want %d", i, len(row), cols)
		}
		copy(g.data[i*cols:], row)
	}
	return g, nil
}

// Rows returns the number of rows.
func (g Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g Grid[T]) Cols() int { return g.cols }

// At returns the element at row i, column j.
func (g Grid[T]) At(i, j int) T {
	g.checkBounds(i, j)
	return g.data[i*g.cols+j]
}

// Set stores v at row i, column j.
func (g Grid[T]) Set(i, j int, v T) {
	g.checkBounds(i, j)
	g.data[i*g.cols+j] = v
}

// Row returns a copy of row i.
func (g Grid[T]) Row(i int) []T {
	if i < 0 || i >= g.rows {
		panic(fmt.Sprintf("neartest.Grid: row %d out of range for %dx%d grid", i, g.rows, g.cols))
	}
	row := make([]T, g.cols)
	copy(row, g.data[i*g.cols:(i+1)*g.cols])
	return row
}

func (g Grid[T]) checkBounds(i, j int) {
	if i < 0 || i >= g.rows || j < 0 || j >= g.cols {
		panic(fmt.Sprintf("neartest.Grid: index (%d, %d) out of range for %dx%d grid", i, j, g.rows, g.cols))
	}
}
