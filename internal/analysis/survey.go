// Package analysis solves every start position of the king-and-knight
// puzzle and summarizes how hard the puzzle is for a given goal square.
package analysis

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/kingknight-go/internal/errors"
	"github.com/lgbarn/kingknight-go/internal/kingknight"
	"github.com/lgbarn/kingknight-go/internal/solver"
	"github.com/lgbarn/kingknight-go/internal/worker"
)

// Outcome classifies a start position.
type Outcome int

const (
	Solvable   Outcome = iota // A goal is reachable
	DeadEnd                   // Neither piece may move from the start
	Unsolvable                // Moves exist but no goal is reachable
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Solvable:
		return "solvable"
	case DeadEnd:
		return "dead end"
	case Unsolvable:
		return "unsolvable"
	}
	return "unknown"
}

// Entry is the survey result for one start position.
type Entry struct {
	Start    kingknight.Position
	Outcome  Outcome
	Length   int // Shortest solution length when Solvable
	Explored int
}

// Summary aggregates a survey.
type Summary struct {
	Goal       kingknight.Square
	Total      int
	Solvable   int
	DeadEnds   int
	Unsolvable int

	// MaxLength is the longest shortest solution; Hardest is the first
	// start position, in enumeration order, that needs it.
	MaxLength int
	Hardest   kingknight.Position

	// Lengths maps a shortest solution length to the number of starts.
	Lengths map[int]int

	Entries []Entry
}

// Options configures a survey.
type Options struct {
	Workers    int // Parallel searches (0 = one per CPU)
	BufferSize int // Pool channel capacity (0 = 64)
	MaxStates  int // Per-search state bound (0 = unlimited)
	Log        io.Writer
	Verbosity  int
}

// StartPositions returns every position with the pieces on distinct
// squares and neither on goal, king-major in row/column order.
func StartPositions(goal kingknight.Square) []kingknight.Position {
	var out []kingknight.Position
	for kr := 0; kr < kingknight.BoardSize; kr++ {
		for kc := 0; kc < kingknight.BoardSize; kc++ {
			for nr := 0; nr < kingknight.BoardSize; nr++ {
				for nc := 0; nc < kingknight.BoardSize; nc++ {
					p := kingknight.Position{King: kingknight.Sq(kr, kc), Knight: kingknight.Sq(nr, nc), Goal: goal}
					if p.Validate() == nil && !p.IsGoal() {
						out = append(out, p)
					}
				}
			}
		}
	}
	return out
}

// Survey solves every start position for goal. Searches run in parallel on
// a worker pool; the summary does not depend on scheduling.
func Survey(ctx context.Context, goal kingknight.Square, opts Options) (*Summary, error) {
	if !goal.OnBoard() {
		return nil, fmt.Errorf("survey goal %v: %w", goal, errors.ErrInvalidSquare)
	}
	starts := StartPositions(goal)

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	bufferSize := opts.BufferSize
	if bufferSize <= 0 {
		bufferSize = 64
	}
	log := opts.Log
	if log == nil {
		log = io.Discard
	}
	if opts.Verbosity > 1 {
		fmt.Fprintf(log, "Surveying %d start positions with %d worker(s)\n", len(starts), workers)
	}

	s := kingknight.NewSolver(solver.WithMaxStates(opts.MaxStates))
	pool := worker.NewPoolWithOptions(solveEntry(ctx, s),
		worker.WithWorkers(workers),
		worker.WithBufferSize(bufferSize))
	pool.Start()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer pool.Close()
		for i, start := range starts {
			if gctx.Err() != nil {
				pool.Stop()
				return nil
			}
			pool.Submit(worker.WorkItem[kingknight.Position]{Value: start, Index: i})
		}
		return nil
	})

	entries := make([]Entry, len(starts))
	received := 0
	g.Go(func() error {
		var firstErr error
		for result := range pool.Results() {
			if result.Err != nil {
				if firstErr == nil {
					firstErr = result.Err
					pool.Stop()
				}
				continue
			}
			entries[result.Index] = result.Value
			received++
		}
		return firstErr
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if received != len(starts) {
		return nil, fmt.Errorf("survey finished with %d of %d positions solved", received, len(starts))
	}

	summary := summarize(goal, entries)
	if opts.Verbosity > 1 {
		fmt.Fprintf(log, "Survey done: %d solvable, %d dead end(s), %d unsolvable\n",
			summary.Solvable, summary.DeadEnds, summary.Unsolvable)
	}
	return summary, nil
}

// solveEntry returns the pool function solving one start position.
func solveEntry(ctx context.Context, s *solver.Solver[kingknight.Position, kingknight.Move]) worker.ProcessFunc[kingknight.Position, Entry] {
	return func(item worker.WorkItem[kingknight.Position]) worker.ProcessResult[Entry] {
		start := item.Value
		entry := Entry{Start: start}

		if len(start.LegalMoves()) == 0 {
			entry.Outcome = DeadEnd
			entry.Explored = 1
			return worker.ProcessResult[Entry]{Value: entry, Index: item.Index}
		}

		res, err := s.Solve(ctx, start)
		if err != nil {
			return worker.ProcessResult[Entry]{Index: item.Index, Err: fmt.Errorf("%v: %w", start, err)}
		}
		entry.Explored = res.Explored
		if res.Solved {
			entry.Outcome = Solvable
			entry.Length = len(res.Moves)
		} else {
			entry.Outcome = Unsolvable
		}
		return worker.ProcessResult[Entry]{Value: entry, Index: item.Index}
	}
}

func summarize(goal kingknight.Square, entries []Entry) *Summary {
	summary := &Summary{
		Goal:    goal,
		Total:   len(entries),
		Lengths: make(map[int]int),
		Entries: entries,
	}
	for _, e := range entries {
		switch e.Outcome {
		case Solvable:
			summary.Solvable++
			summary.Lengths[e.Length]++
			if e.Length > summary.MaxLength {
				summary.MaxLength = e.Length
				summary.Hardest = e.Start
			}
		case DeadEnd:
			summary.DeadEnds++
		case Unsolvable:
			summary.Unsolvable++
		}
	}
	return summary
}
