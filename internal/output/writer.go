// Package output renders solver results, surveys and replays as text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/kingknight-go/internal/analysis"
	"github.com/lgbarn/kingknight-go/internal/kingknight"
	"github.com/lgbarn/kingknight-go/internal/solver"
)

// ResultWriter is the interface for writing command results.
// Implementations handle the text and JSON formats.
type ResultWriter interface {
	WriteSolution(res kingknight.Result) error
	WriteSurvey(s *analysis.Summary) error
	WriteReplay(g *kingknight.Game) error
}

// NewWriter returns the JSON writer when jsonFormat is set and the text
// writer otherwise.
func NewWriter(w io.Writer, jsonFormat bool) ResultWriter {
	if jsonFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w)
}

// WriteSolution writes res to w in the selected format.
func WriteSolution(w io.Writer, res kingknight.Result, jsonFormat bool) error {
	return NewWriter(w, jsonFormat).WriteSolution(res)
}

// WriteSurvey writes s to w in the selected format.
func WriteSurvey(w io.Writer, s *analysis.Summary, jsonFormat bool) error {
	return NewWriter(w, jsonFormat).WriteSurvey(s)
}

// WriteReplay writes the moves played in g and where they lead.
func WriteReplay(w io.Writer, g *kingknight.Game, jsonFormat bool) error {
	return NewWriter(w, jsonFormat).WriteReplay(g)
}

// TextWriter writes human-readable output.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteSolution prints the numbered solution line.
func (tw *TextWriter) WriteSolution(res kingknight.Result) error {
	ew := &errWriter{w: tw.w}
	solver.PrintSolution(ew, res)
	return ew.err
}

// WriteSurvey prints the survey summary and length histogram.
func (tw *TextWriter) WriteSurvey(s *analysis.Summary) error {
	ew := &errWriter{w: tw.w}
	fmt.Fprintf(ew, "Goal: %v\n", s.Goal)
	fmt.Fprintf(ew, "Start positions: %d\n", s.Total)
	fmt.Fprintf(ew, "  %-12s %5d\n", "solvable", s.Solvable)
	fmt.Fprintf(ew, "  %-12s %5d\n", "dead end", s.DeadEnds)
	fmt.Fprintf(ew, "  %-12s %5d\n", "unsolvable", s.Unsolvable)
	if s.Solvable > 0 {
		fmt.Fprintf(ew, "Longest solution: %d move(s) from %v\n", s.MaxLength, s.Hardest)
		fmt.Fprintln(ew, "Solution lengths:")
		for _, length := range sortedLengths(s.Lengths) {
			fmt.Fprintf(ew, "  %3d: %d\n", length, s.Lengths[length])
		}
	}
	return ew.err
}

// WriteReplay prints each played move with the placement it produces.
func (tw *TextWriter) WriteReplay(g *kingknight.Game) error {
	ew := &errWriter{w: tw.w}
	moves := g.History()
	path := replayPath(g.Start(), moves)

	fmt.Fprintf(ew, "Start: %v\n", g.Start())
	for i, m := range moves {
		fmt.Fprintf(ew, "%3d. %v -> %v\n", i+1, m, path[i])
	}
	fmt.Fprintf(ew, "Position: %v\n", g)
	if g.IsSolved() {
		fmt.Fprintln(ew, "Goal reached.")
	} else {
		fmt.Fprintln(ew, "Goal not reached.")
	}
	return ew.err
}

// JSONWriter writes one indented JSON document per call.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteSolution encodes res as a JSONSolution.
func (jw *JSONWriter) WriteSolution(res kingknight.Result) error {
	return jw.encode(SolutionToJSON(res))
}

// WriteSurvey encodes s as a JSONSurvey.
func (jw *JSONWriter) WriteSurvey(s *analysis.Summary) error {
	return jw.encode(SurveyToJSON(s))
}

// WriteReplay encodes g as a JSONReplay.
func (jw *JSONWriter) WriteReplay(g *kingknight.Game) error {
	return jw.encode(ReplayToJSON(g))
}

func (jw *JSONWriter) encode(v interface{}) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// errWriter remembers the first write error so fmt calls can be chained.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}
