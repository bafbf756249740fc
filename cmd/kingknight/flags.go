// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/kingknight-go/internal/config"
	"github.com/lgbarn/kingknight-go/internal/kingknight"
)

var (
	// Position options
	kingSquare   = flag.String("king", "2,1", "King square as row,col")
	knightSquare = flag.String("knight", "2,2", "Knight square as row,col")
	goalSquare   = flag.String("goal", "0,6", "Goal square as row,col")

	// Mode options
	playLine = flag.String("play", "", "Replay a move line instead of solving (e.g. 'Knight 4 3;King 3 1')")
	survey   = flag.Bool("survey", false, "Solve every start position and summarize")
	workers  = flag.Int("workers", 0, "Number of survey workers (0 = auto-detect based on CPU cores)")
	buffer   = flag.Int("buffer", 0, "Survey work queue size (0 = default)")

	// Search options
	maxStates = flag.Int("maxstates", 0, "Abort a search after discovering N states (0 = no limit)")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbosity = flag.Int("v", 1, "Verbosity: 0=errors only, 1=summary, 2=search progress")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (errors only)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies all command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyPositionFlags(cfg); err != nil {
		return err
	}
	if err := applyModeFlags(cfg); err != nil {
		return err
	}
	cfg.Search.MaxStates = *maxStates
	cfg.JSONFormat = *jsonOutput

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	return nil
}

// applyPositionFlags parses the start and goal squares.
func applyPositionFlags(cfg *config.Config) error {
	king, err := kingknight.ParseSquare(*kingSquare)
	if err != nil {
		return fmt.Errorf("-king: %w", err)
	}
	knight, err := kingknight.ParseSquare(*knightSquare)
	if err != nil {
		return fmt.Errorf("-knight: %w", err)
	}
	goal, err := kingknight.ParseSquare(*goalSquare)
	if err != nil {
		return fmt.Errorf("-goal: %w", err)
	}
	cfg.Start = kingknight.Position{King: king, Knight: knight, Goal: goal}
	return nil
}

// applyModeFlags configures play and survey mode.
func applyModeFlags(cfg *config.Config) error {
	if *playLine != "" {
		moves, err := kingknight.ParseMoves(*playLine)
		if err != nil {
			return fmt.Errorf("-play: %w", err)
		}
		cfg.Play = moves
	}
	cfg.Survey.Enabled = *survey
	cfg.Survey.Workers = *workers
	if *buffer > 0 {
		cfg.Survey.BufferSize = *buffer
	}
	return nil
}
