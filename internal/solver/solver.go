// Package solver finds shortest move sequences for puzzle states using an
// exhaustive breadth-first search.
package solver

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/lgbarn/kingknight-go/internal/errors"
	"github.com/lgbarn/kingknight-go/internal/puzzle"
)

// Result is the outcome of a search. Solved == false with a nil error means
// the reachable state space was exhausted without finding a goal.
type Result[S any, M comparable] struct {
	Solved bool
	Moves  []M // Moves from the root to the goal, shortest first found
	Path   []S // States visited along Moves, root first; root only when unsolved

	Explored   int // States whose successors were enumerated
	Discovered int // Distinct states seen, root included
	Depth      int // Distance of the deepest level reached; len(Moves) when solved
}

// Final returns the last state on the path.
func (r Result[S, M]) Final() S {
	return r.Path[len(r.Path)-1]
}

// Root returns the state the search started from.
func (r Result[S, M]) Root() S {
	return r.Path[0]
}

type options struct {
	maxStates int
	log       io.Writer
	verbosity int
}

// Option configures a Solver.
type Option func(*options)

// WithMaxStates bounds the number of distinct states the search may
// discover. Zero or negative means no limit.
func WithMaxStates(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxStates = n
		}
	}
}

// WithLog sets where search commentary goes. Verbosity 2 or higher logs
// one line per completed level.
func WithLog(w io.Writer, verbosity int) Option {
	return func(o *options) {
		o.log = w
		o.verbosity = verbosity
	}
}

// Solver runs breadth-first searches over states of type S.
type Solver[S puzzle.State[S, M], M comparable] struct {
	opts options
}

// New creates a Solver with the given options.
func New[S puzzle.State[S, M], M comparable](opts ...Option) *Solver[S, M] {
	s := &Solver[S, M]{opts: options{log: io.Discard}}
	for _, opt := range opts {
		opt(&s.opts)
	}
	if s.opts.log == nil {
		s.opts.log = io.Discard
	}
	return s
}

// link records how a state was first discovered.
type link[S any, M comparable] struct {
	parent S
	move   M
}

// Solve searches from root for a shortest move sequence to a goal state.
//
// States are expanded level by level; within a level in discovery order, and
// successors in the order LegalMoves returns them. The first goal discovered
// ends the search, so the returned path is deterministic for a given
// move ordering.
func (s *Solver[S, M]) Solve(ctx context.Context, root S) (Result[S, M], error) {
	if root.IsGoal() {
		return Result[S, M]{Solved: true, Path: []S{root}, Discovered: 1}, nil
	}

	visited := map[S]bool{root: true}
	parents := make(map[S]link[S, M])
	frontier := []S{root}
	res := Result[S, M]{Path: []S{root}}

	for len(frontier) > 0 {
		var next []S
		for _, state := range frontier {
			if err := ctx.Err(); err != nil {
				return res.withCounts(len(visited)), err
			}
			res.Explored++

			for _, m := range state.LegalMoves() {
				succ, err := state.Clone().Apply(m)
				if err != nil {
					return res.withCounts(len(visited)), errors.Wrapf(err, "applying listed move %v to %v", m, state)
				}
				if visited[succ] {
					continue
				}
				visited[succ] = true
				parents[succ] = link[S, M]{parent: state, move: m}

				if succ.IsGoal() {
					res.Depth++
					res.Solved = true
					res.Moves, res.Path = reconstruct(root, succ, parents)
					return res.withCounts(len(visited)), nil
				}
				if s.opts.maxStates > 0 && len(visited) > s.opts.maxStates {
					return res.withCounts(len(visited)), errors.Wrapf(errors.ErrSearchLimit, "%d states at depth %d", s.opts.maxStates, res.Depth+1)
				}
				next = append(next, succ)
			}
		}
		if len(next) > 0 {
			res.Depth++
			if s.opts.verbosity > 1 {
				fmt.Fprintf(s.opts.log, "depth %d: %d new state(s), %d discovered\n", res.Depth, len(next), len(visited))
			}
		}
		frontier = next
	}

	return res.withCounts(len(visited)), nil
}

func (r Result[S, M]) withCounts(discovered int) Result[S, M] {
	r.Discovered = discovered
	return r
}

// reconstruct walks predecessor links from goal back to root.
func reconstruct[S comparable, M comparable](root, goal S, parents map[S]link[S, M]) ([]M, []S) {
	var moves []M
	path := []S{goal}
	for state := goal; state != root; {
		l := parents[state]
		moves = append(moves, l.move)
		path = append(path, l.parent)
		state = l.parent
	}
	slices.Reverse(moves)
	slices.Reverse(path)
	return moves, path
}
