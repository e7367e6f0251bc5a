package config

// MoveNotation selects how moves are written in the move list.
type MoveNotation int

const (
	SAN        MoveNotation = iota // Standard Algebraic Notation (Nf3)
	Coordinate                     // Origin and destination squares (g1f3)
)

// OutputConfig holds settings related to drawing the board.
type OutputConfig struct {
	// Notation is the notation of the move list and of AI move reports.
	Notation MoveNotation

	// Unicode draws pieces with chess glyphs instead of letters.
	Unicode bool

	// Coordinates prints file letters and rank numbers around the board.
	Coordinates bool

	// ShowMoveList prints the moves played so far under the board.
	ShowMoveList bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Notation:     SAN,
		Coordinates:  true,
		ShowMoveList: true,
	}
}
