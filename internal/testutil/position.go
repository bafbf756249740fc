package testutil

import (
	"context"
	"testing"

	"github.com/lgbarn/kingknight-go/internal/kingknight"
	"github.com/lgbarn/kingknight-go/internal/puzzle"
)

// MustPosition builds a position with the default goal from row/col pairs.
// It calls t.Fatal if the position is invalid.
func MustPosition(t *testing.T, kingRow, kingCol, knightRow, knightCol int) kingknight.Position {
	t.Helper()
	p, err := kingknight.NewPosition(kingknight.Sq(kingRow, kingCol), kingknight.Sq(knightRow, knightCol))
	if err != nil {
		t.Fatalf("invalid test position: %v", err)
	}
	return p
}

// MustSolve solves p and calls t.Fatal on a search error.
func MustSolve(t *testing.T, p kingknight.Position) kingknight.Result {
	t.Helper()
	res, err := kingknight.Solve(context.Background(), p)
	if err != nil {
		t.Fatalf("Solve(%v) error: %v", p, err)
	}
	return res
}

// MustReachGoal replays moves from p and fails unless they end on a goal.
func MustReachGoal(t *testing.T, p kingknight.Position, moves []kingknight.Move) {
	t.Helper()
	final, err := puzzle.Replay(p, moves)
	if err != nil {
		t.Fatalf("Replay from %v: %v", p, err)
	}
	if !final.IsGoal() {
		t.Fatalf("moves %v from %v end on %v, not a goal", moves, p, final)
	}
}
