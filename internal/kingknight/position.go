package kingknight

import (
	"context"
	"fmt"
	"slices"

	"github.com/lgbarn/kingknight-go/internal/errors"
	"github.com/lgbarn/kingknight-go/internal/puzzle"
	"github.com/lgbarn/kingknight-go/internal/solver"
)

// DefaultGoal is the goal square of the reference puzzle.
var DefaultGoal = Square{Row: 0, Col: 6}

// DefaultStart is the start position of the reference puzzle.
var DefaultStart = Position{
	King:   Square{Row: 2, Col: 1},
	Knight: Square{Row: 2, Col: 2},
	Goal:   DefaultGoal,
}

// Position is a puzzle state: where each piece stands and the goal square.
// Positions are values; == compares piece placement and goal only.
type Position struct {
	King   Square
	Knight Square
	Goal   Square
}

// NewPosition returns a position with the default goal square.
func NewPosition(king, knight Square) (Position, error) {
	return NewPositionWithGoal(king, knight, DefaultGoal)
}

// NewPositionWithGoal returns a position after checking that all squares
// are on the board and the pieces stand on distinct squares.
func NewPositionWithGoal(king, knight, goal Square) (Position, error) {
	p := Position{King: king, Knight: knight, Goal: goal}
	if err := p.Validate(); err != nil {
		return Position{}, err
	}
	return p, nil
}

// Validate reports whether p is a well-formed position.
func (p Position) Validate() error {
	for _, named := range []struct {
		name string
		sq   Square
	}{{"king", p.King}, {"knight", p.Knight}, {"goal", p.Goal}} {
		if !named.sq.OnBoard() {
			return fmt.Errorf("%s square %v off the board: %w", named.name, named.sq, errors.ErrInvalidSquare)
		}
	}
	if p.King == p.Knight {
		return fmt.Errorf("king and knight both on %v: %w", p.King, errors.ErrInvalidSquare)
	}
	return nil
}

// Square returns the square of piece.
func (p Position) Square(piece Piece) Square {
	if piece == King {
		return p.King
	}
	return p.Knight
}

// IsLegalToMoveFrom reports whether piece may move, which is the case
// exactly when the other piece attacks it.
func (p Position) IsLegalToMoveFrom(piece Piece) bool {
	switch piece {
	case King:
		return Knight.attacks(p.Knight, p.King)
	case Knight:
		return King.attacks(p.King, p.Knight)
	}
	return false
}

// Mover returns the piece allowed to move, or false when neither is attacked.
func (p Position) Mover() (Piece, bool) {
	movable := puzzle.Movable[Position, Piece, Square](p, Pieces[:])
	if len(movable) == 0 {
		return 0, false
	}
	return movable[0], true
}

// IsGoal reports whether either piece stands on the goal square.
func (p Position) IsGoal() bool {
	return p.King == p.Goal || p.Knight == p.Goal
}

// IsSolved is an alias of IsGoal.
func (p Position) IsSolved() bool {
	return p.IsGoal()
}

// LegalMoves returns the on-board steps of the attacked piece in offset
// order. It is empty when neither piece is attacked.
func (p Position) LegalMoves() []Move {
	piece, ok := p.Mover()
	if !ok {
		return nil
	}
	from := p.Square(piece)
	moves := make([]Move, 0, 8)
	for _, d := range piece.Deltas() {
		if to := from.Offset(d); to.OnBoard() {
			moves = append(moves, NewMove(piece, to))
		}
	}
	return moves
}

// IsLegalMove reports whether m is among LegalMoves.
func (p Position) IsLegalMove(m Move) bool {
	return slices.Contains(p.LegalMoves(), m)
}

// Apply returns the position after m. An illegal move returns p unchanged
// and an error wrapping errors.ErrInvalidMove.
func (p Position) Apply(m Move) (Position, error) {
	if !p.IsLegalMove(m) {
		return p, fmt.Errorf("%v from %v: %w", m, p, errors.ErrInvalidMove)
	}
	if m.From == King {
		p.King = m.To
	} else {
		p.Knight = m.To
	}
	return p, nil
}

// Clone returns a copy of p. Position holds no references, so the copy
// shares nothing with p.
func (p Position) Clone() Position {
	return p
}

// String returns the position as "King: (r, c), Knight: (r, c)".
func (p Position) String() string {
	return fmt.Sprintf("King: %v, Knight: %v", p.King, p.Knight)
}

// Result is a solver result for the king-and-knight puzzle.
type Result = solver.Result[Position, Move]

// NewSolver returns a breadth-first solver for positions.
func NewSolver(opts ...solver.Option) *solver.Solver[Position, Move] {
	return solver.New[Position, Move](opts...)
}

// Solve finds a shortest solution from p.
func Solve(ctx context.Context, p Position, opts ...solver.Option) (Result, error) {
	return NewSolver(opts...).Solve(ctx, p)
}
