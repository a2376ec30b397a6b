package model

// board stores one generation of cells as a flat row-major array.
// Callers are trusted to keep coordinates in [0, size); bounds are
// validated once, at the Grid boundary.
type board struct {
	size  int
	cells []bool
}

func newBoard(size int) board {
	return board{size: size, cells: make([]bool, size*size)}
}

// index returns the linear slice index for coordinates (x, y).
func (b board) index(x, y int) int { return y*b.size + x }

func (b board) at(x, y int) bool { return b.cells[b.index(x, y)] }

func (b board) set(x, y int, alive bool) { b.cells[b.index(x, y)] = alive }
