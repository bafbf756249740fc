// Package kingknight implements the king-and-knight puzzle: a king and a
// knight share an 8x8 board, only the piece attacked by the other may move,
// and the puzzle is solved when either piece reaches the goal square.
package kingknight

import (
	"fmt"

	"github.com/lgbarn/kingknight-go/internal/puzzle"
)

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8

// Piece identifies one of the two pieces on the board.
type Piece int

const (
	King Piece = iota
	Knight
)

// Pieces lists every piece in move-generation order.
var Pieces = [...]Piece{King, Knight}

// String returns the piece name.
func (p Piece) String() string {
	switch p {
	case King:
		return "King"
	case Knight:
		return "Knight"
	}
	return "Unknown"
}

// Other returns the opposing piece.
func (p Piece) Other() Piece {
	if p == King {
		return Knight
	}
	return King
}

// Square is a board cell addressed by row and column, both in [0, BoardSize).
type Square struct {
	Row int
	Col int
}

// Sq returns the square at row, col.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// OnBoard reports whether the square lies on the board.
func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square displaced by d.
func (s Square) Offset(d Delta) Square {
	return Square{Row: s.Row + d.Row, Col: s.Col + d.Col}
}

// String returns the square as "(row, col)".
func (s Square) String() string {
	return fmt.Sprintf("(%d, %d)", s.Row, s.Col)
}

// Delta is a displacement between two squares.
type Delta struct {
	Row int
	Col int
}

// Move offsets in generation order. The order fixes which of several
// shortest solutions the solver returns.
var (
	kingDeltas = [8]Delta{
		{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1},
	}
	knightDeltas = [8]Delta{
		{-2, -1}, {-1, -2}, {1, -2}, {2, -1}, {2, 1}, {1, 2}, {-1, 2}, {-2, 1},
	}
)

// Deltas returns the canonical move shape of p.
func (p Piece) Deltas() [8]Delta {
	if p == King {
		return kingDeltas
	}
	return knightDeltas
}

// attacks reports whether a piece of kind p standing on from attacks target.
func (p Piece) attacks(from, target Square) bool {
	d := Delta{Row: target.Row - from.Row, Col: target.Col - from.Col}
	for _, candidate := range p.Deltas() {
		if candidate == d {
			return true
		}
	}
	return false
}

// Move is a puzzle move: the piece that moves and the square it lands on.
type Move = puzzle.Move[Piece, Square]

// NewMove returns the move of piece to square to.
func NewMove(piece Piece, to Square) Move {
	return Move{From: piece, To: to}
}
