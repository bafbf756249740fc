// kingknight finds the shortest way to bring a king or a knight onto a goal
// square, where a piece may move only while the other piece attacks it.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/lgbarn/kingknight-go/internal/analysis"
	"github.com/lgbarn/kingknight-go/internal/config"
	"github.com/lgbarn/kingknight-go/internal/kingknight"
	"github.com/lgbarn/kingknight-go/internal/output"
	"github.com/lgbarn/kingknight-go/internal/solver"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("kingknight-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logOut := setupLogFile(cfg)
	out := setupOutputFile(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, cfg)
	stop()

	if err := closeFiles(out, logOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if code == 0 {
			code = 1
		}
	}
	os.Exit(code)
}

// run executes the configured mode and returns the process exit status.
func run(ctx context.Context, cfg *config.Config) int {
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}

	var err error
	switch {
	case len(cfg.Play) > 0:
		err = runPlay(cfg)
	case cfg.Survey.Enabled:
		err = runSurvey(ctx, cfg)
	default:
		err = runSolve(ctx, cfg)
	}
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}
	return 0
}

// runSolve solves the start position and reports the shortest solution.
func runSolve(ctx context.Context, cfg *config.Config) error {
	s := kingknight.NewSolver(
		solver.WithMaxStates(cfg.Search.MaxStates),
		solver.WithLog(cfg.LogFile, cfg.Verbosity),
	)

	var res kingknight.Result
	var err error
	if cfg.JSONFormat {
		res, err = s.Solve(ctx, cfg.Start)
		if err == nil {
			err = output.WriteSolution(cfg.OutputFile, res, true)
		}
	} else {
		res, err = s.SolveAndPrint(ctx, cfg.OutputFile, cfg.Start)
	}
	if err != nil {
		return err
	}

	cfg.Log(1, "%d state(s) explored, %d discovered, depth %d\n", res.Explored, res.Discovered, res.Depth)
	return nil
}

// runSurvey solves every start position for the configured goal.
func runSurvey(ctx context.Context, cfg *config.Config) error {
	summary, err := analysis.Survey(ctx, cfg.Start.Goal, analysis.Options{
		Workers:    cfg.Survey.Workers,
		BufferSize: cfg.Survey.BufferSize,
		MaxStates:  cfg.Search.MaxStates,
		Log:        cfg.LogFile,
		Verbosity:  cfg.Verbosity,
	})
	if err != nil {
		return err
	}
	return output.WriteSurvey(cfg.OutputFile, summary, cfg.JSONFormat)
}

// runPlay replays the configured move line. A rejected move stops the
// replay; the moves accepted so far are still reported.
func runPlay(cfg *config.Config) error {
	game := kingknight.NewGame(cfg.Start)
	var rejected error
	for _, m := range cfg.Play {
		if err := game.MakeMove(m); err != nil {
			rejected = err
			break
		}
	}
	if err := output.WriteReplay(cfg.OutputFile, game, cfg.JSONFormat); err != nil {
		return err
	}
	if rejected != nil {
		return rejected
	}
	cfg.Log(1, "%d move(s) played\n", game.MoveCount())
	return nil
}

// setupLogFile configures the log file based on command-line flags and
// returns the opened file, or nil when logging goes to stderr. -L wins
// over -l.
func setupLogFile(cfg *config.Config) *os.File {
	var file *os.File
	var err error

	switch {
	case *appendLog != "":
		file, err = os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
	case *logFile != "":
		file, err = os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
	default:
		return nil
	}
	cfg.LogFile = file
	return file
}

// setupOutputFile configures the output file based on command-line flags
// and returns the opened file, or nil when output goes to stdout.
func setupOutputFile(cfg *config.Config) *os.File {
	if *outputFile == "" {
		return nil
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
	return file
}

// closeFiles closes every non-nil file and returns the first close error.
func closeFiles(files ...*os.File) error {
	var first error
	for _, f := range files {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil && first == nil {
			first = fmt.Errorf("closing %s: %w", f.Name(), err)
		}
	}
	return first
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: kingknight [options]\n\n")
	fmt.Fprintf(os.Stderr, "Finds the shortest way to bring the king or the knight onto the goal square.\n")
	fmt.Fprintf(os.Stderr, "A piece may move only while the other piece attacks it.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nSquares are row,col with 0,0 at the top left of the 8x8 board.\n")
	fmt.Fprintf(os.Stderr, "Moves are 'Piece row col' separated by ';', e.g. 'Knight 4 3;King 3 1'.\n")
}
