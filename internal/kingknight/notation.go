package kingknight

import (
	"strconv"
	"strings"

	"github.com/lgbarn/kingknight-go/internal/errors"
)

// ParsePiece parses "King", "Knight", "K" or "N", ignoring case.
func ParsePiece(s string) (Piece, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "king", "k":
		return King, nil
	case "knight", "n":
		return Knight, nil
	}
	return 0, &errors.ParseError{Err: errors.ErrInvalidPiece, Input: s, Expected: "King or Knight"}
}

// ParseSquare parses "row,col" (spaces allowed) and checks that the square
// is on the board.
func ParseSquare(s string) (Square, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Square{}, &errors.ParseError{Err: errors.ErrParseFailure, Input: s, Expected: "row,col"}
	}
	var coords [2]int
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Square{}, &errors.ParseError{Err: errors.ErrParseFailure, Input: s, Expected: "integer coordinate", Got: strconv.Quote(part)}
		}
		coords[i] = n
	}
	sq := Square{Row: coords[0], Col: coords[1]}
	if !sq.OnBoard() {
		return Square{}, &errors.ParseError{Err: errors.ErrInvalidSquare, Input: s, Expected: "coordinates in [0,7]"}
	}
	return sq, nil
}

// ParseMove parses a move written as "<piece> <row> <col>", for example
// "Knight 4 3", or as "<piece> <row>,<col>".
func ParseMove(s string) (Move, error) {
	fields := strings.Fields(s)
	var squareText string
	switch len(fields) {
	case 2:
		squareText = fields[1]
	case 3:
		squareText = fields[1] + "," + fields[2]
	default:
		return Move{}, &errors.ParseError{Err: errors.ErrParseFailure, Input: s, Expected: "piece row col"}
	}

	piece, err := ParsePiece(fields[0])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(squareText)
	if err != nil {
		return Move{}, errors.Wrapf(err, "move %q", s)
	}
	return NewMove(piece, to), nil
}

// ParseMoves parses a list of moves separated by semicolons or newlines.
// Empty entries are skipped.
func ParseMoves(s string) ([]Move, error) {
	var moves []Move
	for _, entry := range strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == '\n' }) {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		m, err := ParseMove(entry)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}
