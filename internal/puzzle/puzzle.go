// Package puzzle defines the contract a two-phase-move puzzle state must
// satisfy to be explored by a generic solver.
package puzzle

import (
	"fmt"

	"github.com/lgbarn/kingknight-go/internal/errors"
)

// Move is a two-phase move: From selects the entity that acts and To is
// its destination. Moves compare structurally and can be used as map keys.
type Move[F, T comparable] struct {
	From F
	To   T
}

// String returns the move as "<from> <to>".
func (m Move[F, T]) String() string {
	return fmt.Sprintf("%v %v", m.From, m.To)
}

// State is the constraint satisfied by puzzle states the solver can search.
//
// A state is a comparable value whose == covers its positional identity
// only; bookkeeping such as a move counter must live outside it. Apply
// never modifies the receiver.
type State[S any, M comparable] interface {
	comparable

	// IsGoal reports whether the state satisfies the terminal condition.
	IsGoal() bool

	// LegalMoves returns every move applicable from this state, without
	// duplicates and in a stable order. An empty result is a dead end.
	LegalMoves() []M

	// IsLegalMove reports whether m is one of LegalMoves.
	IsLegalMove(m M) bool

	// Apply returns the successor reached by m. A move that is not legal
	// returns an error wrapping errors.ErrInvalidMove.
	Apply(m M) (S, error)

	// Clone returns an independent copy of the state.
	Clone() S
}

// TwoPhaseState is a State whose moves are Move values and which can
// report whether a given selector may move at all.
type TwoPhaseState[S any, F, T comparable] interface {
	State[S, Move[F, T]]

	// IsLegalToMoveFrom reports whether the entity chosen by from may move.
	IsLegalToMoveFrom(from F) bool
}

// Movable returns the selectors, in the given order, that s allows to move.
func Movable[S TwoPhaseState[S, F, T], F, T comparable](s S, selectors []F) []F {
	var out []F
	for _, from := range selectors {
		if s.IsLegalToMoveFrom(from) {
			out = append(out, from)
		}
	}
	return out
}

// Replay applies moves to root in order and returns the final state.
// The first rejected move is reported as a *errors.MoveError with its
// 1-based ply.
func Replay[S State[S, M], M comparable](root S, moves []M) (S, error) {
	state := root
	for i, m := range moves {
		next, err := state.Clone().Apply(m)
		if err != nil {
			return state, &errors.MoveError{
				Err:      err,
				Ply:      i + 1,
				Move:     fmt.Sprint(m),
				Position: fmt.Sprint(state),
			}
		}
		state = next
	}
	return state, nil
}
