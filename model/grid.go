package model

import (
	"fmt"
	"math/rand"

	"github.com/AndyAkame/go-life/rules"
)

// Grid is a fixed-size square Game of Life board with toroidal wraparound.
// It owns two same-shape buffers: the visible current generation and a
// scratch buffer the next generation is computed into before being
// committed, so every cell's transition is decided against the same
// snapshot.
type Grid struct {
	size int
	cur  board
	next board
	rng  *rand.Rand
}

// NewGrid creates a size x size grid with all cells dead. The random source
// drives Seed and is injected so callers can fix the seed for reproducible
// runs.
func NewGrid(size int, rng *rand.Rand) *Grid {
	return &Grid{
		size: size,
		cur:  newBoard(size),
		next: newBoard(size),
		rng:  rng,
	}
}

// Size returns the edge length of the grid.
func (g *Grid) Size() int { return g.size }

// Seed randomizes all cells. Each cell is set alive independently with the
// given probability, expressed as a percentage in [0, 100].
func (g *Grid) Seed(probability float64) {
	p := probability / 100.0
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			g.cur.set(x, y, g.rng.Float64() < p)
		}
	}
}

// Set sets the cell at (x, y) to alive (true) or dead (false) in the current
// generation. Coordinates must be in [0, size).
func (g *Grid) Set(x, y int, alive bool) {
	g.checkBounds(x, y)
	g.cur.set(x, y, alive)
}

// IsAlive reports whether the cell at (x, y) is alive in the current
// generation. Coordinates must be in [0, size); external queries never wrap,
// only internal neighbor lookups do.
func (g *Grid) IsAlive(x, y int) bool {
	g.checkBounds(x, y)
	return g.cur.at(x, y)
}

func (g *Grid) checkBounds(x, y int) {
	if x < 0 || x >= g.size || y < 0 || y >= g.size {
		panic(fmt.Sprintf("model: cell (%d,%d) out of range for grid of size %d", x, y, g.size))
	}
}

// CountNeighbors counts live cells among the 8 cells surrounding (x, y) in
// the current generation, wrapping at the grid edges.
func (g *Grid) CountNeighbors(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + g.size) % g.size
			ny := (y + dy + g.size) % g.size
			if g.cur.at(nx, ny) {
				count++
			}
		}
	}
	return count
}

// Advance computes and commits the next generation. The whole next state is
// derived from the untouched current buffer into the scratch buffer, then
// made visible in a single swap; a partially updated generation is never
// observable.
func (g *Grid) Advance() {
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			g.next.set(x, y, rules.ApplyConwayRules(g.CountNeighbors(x, y), g.cur.at(x, y)))
		}
	}
	g.cur, g.next = g.next, g.cur
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, alive := range g.cur.cells {
		if alive {
			count++
		}
	}
	return
}
