package output

import (
	"fmt"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

// Report summarises a finished (or abandoned) game from its move log.
type Report struct {
	Outcome chess.Outcome
	Plies   int

	// Checks given by each side.
	WhiteChecks int
	BlackChecks int

	// Number of plies each side went without losing a piece: the log
	// index of the first capture against it, or Plies+1 when it lost
	// nothing.
	WhiteSurvived int
	BlackSurvived int
}

// NewReport builds the report for the log of b. Each move counts for the
// side of the piece that made it.
func NewReport(b *chess.Board, outcome chess.Outcome) *Report {
	log := b.Log()
	r := &Report{
		Outcome:       outcome,
		Plies:         len(log),
		WhiteSurvived: len(log) + 1,
		BlackSurvived: len(log) + 1,
	}

	for i, m := range log {
		white := m.Piece.Side == chess.White
		if m.InCheck {
			if white {
				r.WhiteChecks++
			} else {
				r.BlackChecks++
			}
		}
		if !m.IsCapture() {
			continue
		}
		if white && r.BlackSurvived == len(log)+1 {
			r.BlackSurvived = i
		}
		if !white && r.WhiteSurvived == len(log)+1 {
			r.WhiteSurvived = i
		}
	}
	return r
}

// Lines returns the report as log lines.
func (r *Report) Lines() []string {
	lines := make([]string, 0, 5)
	if r.Outcome.Finished() {
		lines = append(lines, r.Outcome.String())
	}
	return append(lines,
		fmt.Sprintf("Checks given by White: %d", r.WhiteChecks),
		fmt.Sprintf("Checks given by Black: %d", r.BlackChecks),
		fmt.Sprintf("All of White's pieces survived %d turns", r.WhiteSurvived),
		fmt.Sprintf("All of Black's pieces survived %d turns", r.BlackSurvived),
	)
}
