package model

import (
	"math/rand"
	"testing"
)

func newTestGrid(t *testing.T, size int) *Grid {
	t.Helper()
	return NewGrid(size, rand.New(rand.NewSource(1)))
}

func TestAllDeadStaysDead(t *testing.T) {
	grid := newTestGrid(t, 6)

	grid.Advance()

	if grid.CountLivingCells() != 0 {
		t.Fatalf("expected all-dead grid to stay dead, got %d living cells", grid.CountLivingCells())
	}
}

func TestLoneCellDies(t *testing.T) {
	grid := newTestGrid(t, 5)
	grid.Set(2, 2, true)

	grid.Advance()

	if grid.IsAlive(2, 2) {
		t.Fatal("expected lone cell to die of underpopulation")
	}
	if grid.CountLivingCells() != 0 {
		t.Fatalf("expected empty grid after lone cell dies, got %d living cells", grid.CountLivingCells())
	}
}

func TestBlockStillLife(t *testing.T) {
	grid := newTestGrid(t, 6)
	block := [][2]int{{2, 2}, {3, 2}, {2, 3}, {3, 3}}
	for _, c := range block {
		grid.Set(c[0], c[1], true)
	}

	for step := 0; step < 4; step++ {
		grid.Advance()

		if grid.CountLivingCells() != 4 {
			t.Fatalf("step %d: expected 4 living cells, got %d", step, grid.CountLivingCells())
		}
		for _, c := range block {
			if !grid.IsAlive(c[0], c[1]) {
				t.Fatalf("step %d: expected block cell (%d,%d) to stay alive", step, c[0], c[1])
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	grid := newTestGrid(t, 5)
	grid.Set(1, 2, true)
	grid.Set(2, 2, true)
	grid.Set(3, 2, true)

	vertical := map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}
	horizontal := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}

	assertPattern := func(step int, expects map[[2]int]bool) {
		for y := 0; y < 5; y++ {
			for x := 0; x < 5; x++ {
				alive := grid.IsAlive(x, y)
				if expects[[2]int{x, y}] != alive {
					t.Fatalf("step %d: cell (%d,%d) alive=%v, expected %v",
						step, x, y, alive, expects[[2]int{x, y}])
				}
			}
		}
	}

	grid.Advance()
	assertPattern(1, vertical)

	grid.Advance()
	assertPattern(2, horizontal)

	grid.Advance()
	assertPattern(3, vertical)
}

func TestCornerWraparound(t *testing.T) {
	grid := newTestGrid(t, 5)
	grid.Set(0, 0, true)

	if got := grid.CountNeighbors(4, 4); got != 1 {
		t.Fatalf("expected (4,4) to count (0,0) as a diagonal neighbor, got %d", got)
	}
	if got := grid.CountNeighbors(0, 0); got != 0 {
		t.Fatalf("expected (0,0) to have no living neighbors, got %d", got)
	}

	// (0,0), (0,4) and (4,0) are the three wrapped neighbors of (4,4),
	// so the dead corner cell is born on the next generation.
	grid.Set(0, 4, true)
	grid.Set(4, 0, true)
	grid.Advance()

	if !grid.IsAlive(4, 4) {
		t.Fatal("expected (4,4) to be born from three wrapped neighbors")
	}
}

func TestSeedExtremes(t *testing.T) {
	for _, size := range []int{1, 3, 8, 20} {
		grid := newTestGrid(t, size)

		grid.Seed(0)
		if got := grid.CountLivingCells(); got != 0 {
			t.Fatalf("size %d: Seed(0) left %d living cells", size, got)
		}

		grid.Seed(100)
		if got := grid.CountLivingCells(); got != size*size {
			t.Fatalf("size %d: Seed(100) produced %d living cells, want %d", size, got, size*size)
		}
	}
}

func TestSeedReproducibleWithFixedSeed(t *testing.T) {
	a := NewGrid(10, rand.New(rand.NewSource(42)))
	b := NewGrid(10, rand.New(rand.NewSource(42)))

	a.Seed(30)
	b.Seed(30)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if a.IsAlive(x, y) != b.IsAlive(x, y) {
				t.Fatalf("grids seeded from the same source diverge at (%d,%d)", x, y)
			}
		}
	}
}

func TestIsAliveIdempotentBetweenAdvances(t *testing.T) {
	grid := newTestGrid(t, 8)
	grid.Seed(50)

	first := make([]bool, 8*8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			first[y*8+x] = grid.IsAlive(x, y)
		}
	}

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if grid.IsAlive(x, y) != first[y*8+x] {
				t.Fatalf("repeated IsAlive(%d,%d) changed between advances", x, y)
			}
		}
	}
}

func TestIsAliveOutOfRangePanics(t *testing.T) {
	grid := newTestGrid(t, 4)

	for _, c := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected IsAlive(%d,%d) to panic", c[0], c[1])
				}
			}()
			grid.IsAlive(c[0], c[1])
		}()
	}
}

func TestSize(t *testing.T) {
	if got := newTestGrid(t, 7).Size(); got != 7 {
		t.Fatalf("expected size 7, got %d", got)
	}
}
