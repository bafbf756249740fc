package solver

import (
	"context"
	"fmt"
	"io"
)

// PrintSolution writes res in a human-readable form: the start state, one
// numbered line per move with the state it leads to, and a closing summary.
func PrintSolution[S any, M comparable](w io.Writer, res Result[S, M]) {
	if len(res.Path) > 0 {
		fmt.Fprintf(w, "Start: %v\n", res.Root())
	}
	if !res.Solved {
		fmt.Fprintf(w, "No solution found (%d state(s) explored).\n", res.Explored)
		return
	}
	if len(res.Moves) == 0 {
		fmt.Fprintln(w, "Already solved.")
		return
	}
	for i, m := range res.Moves {
		fmt.Fprintf(w, "%3d. %v -> %v\n", i+1, m, res.Path[i+1])
	}
	fmt.Fprintf(w, "Solved in %d move(s) (%d state(s) explored).\n", len(res.Moves), res.Explored)
}

// SolveAndPrint solves root and prints the outcome to w. The result is
// returned as well so callers do not depend on the printed text.
func (s *Solver[S, M]) SolveAndPrint(ctx context.Context, w io.Writer, root S) (Result[S, M], error) {
	res, err := s.Solve(ctx, root)
	if err != nil {
		return res, err
	}
	PrintSolution(w, res)
	return res, nil
}
