package kingknight

import (
	"fmt"

	"github.com/lgbarn/kingknight-go/internal/errors"
)

// Game tracks a puzzle being played move by move. It carries the move
// counter and history that front ends display; neither takes part in
// position identity.
type Game struct {
	start   Position
	current Position
	history []Move
}

// NewGame starts a game from p.
func NewGame(p Position) *Game {
	return &Game{start: p, current: p}
}

// Position returns the current position.
func (g *Game) Position() Position {
	return g.current
}

// Start returns the position the game began from.
func (g *Game) Start() Position {
	return g.start
}

// MoveCount returns the number of moves made so far.
func (g *Game) MoveCount() int {
	return len(g.history)
}

// History returns a copy of the moves made so far.
func (g *Game) History() []Move {
	return append([]Move(nil), g.history...)
}

// IsSolved reports whether the current position is a goal.
func (g *Game) IsSolved() bool {
	return g.current.IsGoal()
}

// IsLegalToMoveFrom reports whether piece may move in the current position.
func (g *Game) IsLegalToMoveFrom(piece Piece) bool {
	return g.current.IsLegalToMoveFrom(piece)
}

// LegalMoves returns the legal moves of the current position.
func (g *Game) LegalMoves() []Move {
	return g.current.LegalMoves()
}

// MakeMove plays m. An illegal move leaves the game unchanged and returns a
// *errors.MoveError wrapping the Apply error, which wraps errors.ErrInvalidMove.
func (g *Game) MakeMove(m Move) error {
	next, err := g.current.Apply(m)
	if err != nil {
		return &errors.MoveError{
			Err:      err,
			Ply:      len(g.history) + 1,
			Move:     m.String(),
			Position: g.current.String(),
		}
	}
	g.current = next
	g.history = append(g.history, m)
	return nil
}

// Undo takes back the last move.
func (g *Game) Undo() error {
	if len(g.history) == 0 {
		return fmt.Errorf("no move to undo: %w", errors.ErrInvalidMove)
	}
	g.history = g.history[:len(g.history)-1]

	// Every recorded move was legal, so the earlier position is the start
	// with the remaining moves' destinations applied.
	prev := g.start
	for _, m := range g.history {
		if m.From == King {
			prev.King = m.To
		} else {
			prev.Knight = m.To
		}
	}
	g.current = prev
	return nil
}

// String returns the current position and move count.
func (g *Game) String() string {
	return fmt.Sprintf("%v (moves: %d)", g.current, len(g.history))
}
