package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/AndyAkame/go-life/model"
	"github.com/AndyAkame/go-life/utils"
)

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (
	*model.Grid,
	*model.TerminalRenderer,
	*utils.Stats,
) {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	grid := model.NewGrid(config.Size, rand.New(rand.NewSource(seed)))
	grid.Seed(config.Probability)

	return grid, model.NewTerminalRenderer(), utils.NewStats()
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid *model.Grid) {
	fmt.Printf("Grid: %dx%d | Seed probability: %.0f%% | Initial living cells: %d\n",
		grid.Size(), grid.Size(), config.Probability, grid.CountLivingCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// displayGameStatus shows the current game status above the board
func displayGameStatus(generation int, grid *model.Grid, stats *utils.Stats) {
	livingCells := grid.CountLivingCells()
	density := float64(livingCells) / float64(grid.Size()*grid.Size()) * 100

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%%\n",
		generation, livingCells, density)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())
	fmt.Println()
}

// runGame renders, advances and waits one frame interval, forever, until the
// context is cancelled.
func runGame(
	ctx context.Context,
	config utils.Config,
	grid *model.Grid,
	renderer *model.TerminalRenderer,
	stats *utils.Stats,
) error {
	var (
		generation    = 0
		lastFrameTime = time.Now()
	)

	for {
		frameStart := time.Now()
		renderer.Clear()

		stats.Update(generation, grid.CountLivingCells(), time.Since(lastFrameTime))
		lastFrameTime = frameStart

		displayGameStatus(generation, grid, stats)
		renderer.Display(grid)

		grid.Advance()
		generation++

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(config.FrameRate):
		}
	}
}
