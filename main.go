package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cellgrid/golife/utils"
)

const configFile = "config.json"

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// Load configuration - fall back to defaults if the file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		slog.Info("using default configuration", "reason", err)
		config = utils.DefaultConfig()
	}

	// Initialize game
	grid, renderer, stats, err := initializeGame(config)
	if err != nil {
		slog.Error("failed to initialize grid", "error", err)
		os.Exit(1)
	}
	displayGameInfo(grid)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Main game loop
	var (
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)

	for {
		select {
		case <-sigChan:
			slog.Info("shutting down gracefully",
				"generations", generation,
				"runtime_seconds", fmt.Sprintf("%.1f", time.Since(stats.StartTime).Seconds()),
				"avg_population", fmt.Sprintf("%.1f", stats.AveragePopulation),
			)
			return
		default:
			// Continue with game loop
		}

		frameStart := time.Now()
		renderer.Clear()

		// Update game state
		livingCells, density, status, isStagnant := updateGameState(grid, generation, lastFrameTime, stats)
		lastFrameTime = frameStart

		// Update stagnation counter
		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		// Display current status
		displayGameStatus(generation, livingCells, density, status, stats, lastRestartGen)
		renderer.Display(grid)

		// Check for max generations limit
		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			slog.Info("reached maximum generations limit", "limit", config.MaxGenerations)
			break
		}

		// Check restart conditions
		shouldRestart, restartReason := checkRestartConditions(livingCells, stagnantCount, generation, config)

		if shouldRestart && config.AutoRestart {
			slog.Info("restarting", "reason", restartReason)
			restartGame(grid, config)
			lastRestartGen = generation
			stagnantCount = 0
		} else if stagnantCount >= 2 && stagnantCount < config.StagnationThreshold {
			// Inject some life to try to break the stagnation
			grid.InjectRandomLife(config.InjectionCount)
		}

		// Commit the next generation
		grid.Advance()

		generation++

		// Wait before next frame
		time.Sleep(config.FrameRate)
	}
}
