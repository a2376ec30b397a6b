package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/AndyAkame/go-life/utils"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		fmt.Println("Using default configuration (config.json not found or invalid)")
		config = utils.DefaultConfig()
	}

	// Initialize game
	grid, renderer, stats := initializeGame(config)
	displayGameInfo(config, grid)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return runGame(ctx, config, grid, renderer, stats)
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Println("Game loop error:", err)
		return
	}

	fmt.Println("\nShutting down gracefully...")
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, time.Since(stats.StartTime).Seconds())
}
