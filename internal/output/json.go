package output

import (
	"sort"

	"github.com/lgbarn/kingknight-go/internal/analysis"
	"github.com/lgbarn/kingknight-go/internal/kingknight"
)

// JSONSquare is a board square in JSON form.
type JSONSquare struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// JSONPosition is a piece placement in JSON form.
type JSONPosition struct {
	King   JSONSquare `json:"king"`
	Knight JSONSquare `json:"knight"`
}

// JSONMove is one move of a solution or replay.
type JSONMove struct {
	Ply      int          `json:"ply"`
	Piece    string       `json:"piece"`
	To       JSONSquare   `json:"to"`
	Position JSONPosition `json:"position"` // Placement after the move
}

// JSONSolution is a solver result.
type JSONSolution struct {
	Start      JSONPosition `json:"start"`
	Goal       JSONSquare   `json:"goal"`
	Solved     bool         `json:"solved"`
	Moves      []JSONMove   `json:"moves"`
	Explored   int          `json:"explored"`
	Discovered int          `json:"discovered"`
}

// JSONReplay is a game replayed from user moves.
type JSONReplay struct {
	Start     JSONPosition `json:"start"`
	Goal      JSONSquare   `json:"goal"`
	Moves     []JSONMove   `json:"moves"`
	Final     JSONPosition `json:"final"`
	MoveCount int          `json:"moveCount"`
	Solved    bool         `json:"solved"`
}

// JSONLength is one bucket of the solution length histogram.
type JSONLength struct {
	Length int `json:"length"`
	Count  int `json:"count"`
}

// JSONSurvey is a survey summary. Per-start entries are omitted.
type JSONSurvey struct {
	Goal       JSONSquare    `json:"goal"`
	Total      int           `json:"total"`
	Solvable   int           `json:"solvable"`
	DeadEnds   int           `json:"deadEnds"`
	Unsolvable int           `json:"unsolvable"`
	MaxLength  int           `json:"maxLength"`
	Hardest    *JSONPosition `json:"hardest,omitempty"`
	Lengths    []JSONLength  `json:"lengths"`
}

func squareToJSON(s kingknight.Square) JSONSquare {
	return JSONSquare{Row: s.Row, Col: s.Col}
}

func positionToJSON(p kingknight.Position) JSONPosition {
	return JSONPosition{King: squareToJSON(p.King), Knight: squareToJSON(p.Knight)}
}

// movesToJSON pairs each move with the position it produces. path holds the
// positions after each move.
func movesToJSON(moves []kingknight.Move, path []kingknight.Position) []JSONMove {
	result := make([]JSONMove, 0, len(moves))
	for i, m := range moves {
		result = append(result, JSONMove{
			Ply:      i + 1,
			Piece:    m.From.String(),
			To:       squareToJSON(m.To),
			Position: positionToJSON(path[i]),
		})
	}
	return result
}

// SolutionToJSON converts a solver result to JSON form.
func SolutionToJSON(res kingknight.Result) *JSONSolution {
	var root kingknight.Position
	var after []kingknight.Position
	if len(res.Path) > 0 {
		root, after = res.Root(), res.Path[1:]
	}
	return &JSONSolution{
		Start:      positionToJSON(root),
		Goal:       squareToJSON(root.Goal),
		Solved:     res.Solved,
		Moves:      movesToJSON(res.Moves, after),
		Explored:   res.Explored,
		Discovered: res.Discovered,
	}
}

// ReplayToJSON converts a played game to JSON form.
func ReplayToJSON(g *kingknight.Game) *JSONReplay {
	moves := g.History()
	return &JSONReplay{
		Start:     positionToJSON(g.Start()),
		Goal:      squareToJSON(g.Start().Goal),
		Moves:     movesToJSON(moves, replayPath(g.Start(), moves)),
		Final:     positionToJSON(g.Position()),
		MoveCount: g.MoveCount(),
		Solved:    g.IsSolved(),
	}
}

// SurveyToJSON converts a survey summary to JSON form.
func SurveyToJSON(s *analysis.Summary) *JSONSurvey {
	js := &JSONSurvey{
		Goal:       squareToJSON(s.Goal),
		Total:      s.Total,
		Solvable:   s.Solvable,
		DeadEnds:   s.DeadEnds,
		Unsolvable: s.Unsolvable,
		MaxLength:  s.MaxLength,
		Lengths:    make([]JSONLength, 0, len(s.Lengths)),
	}
	if s.Solvable > 0 {
		hardest := positionToJSON(s.Hardest)
		js.Hardest = &hardest
	}
	for _, length := range sortedLengths(s.Lengths) {
		js.Lengths = append(js.Lengths, JSONLength{Length: length, Count: s.Lengths[length]})
	}
	return js
}

func sortedLengths(lengths map[int]int) []int {
	keys := make([]int, 0, len(lengths))
	for k := range lengths {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// replayPath returns the positions after each of moves, which a Game has
// already validated.
func replayPath(start kingknight.Position, moves []kingknight.Move) []kingknight.Position {
	path := make([]kingknight.Position, 0, len(moves))
	p := start
	for _, m := range moves {
		next, err := p.Apply(m)
		if err != nil {
			break
		}
		path = append(path, next)
		p = next
	}
	return path
}
