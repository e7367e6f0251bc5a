package chess

// Move is one entry of the move log. It carries everything needed to
// reverse the move exactly.
type Move struct {
	// Source and destination squares.
	From Square
	To   Square

	// The piece being moved, as it stood on From (a pawn for promotions).
	Piece Piece

	// The piece captured (NoPiece if no capture) and the square it stood on.
	// For en passant the square differs from To.
	Captured      Piece
	CaptureSquare Square

	// Special move flags.
	IsCastle    bool
	IsEnPassant bool
	IsPromotion bool
	PromotedTo  Kind

	// Whether the move left the opponent's king in check.
	InCheck bool

	// State replaced by the move, restored on undo.
	PrevCastling  CastleRights
	PrevEnPassant Square
}

// IsCapture returns true if this move removed an opposing piece.
func (m Move) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

// RemovedPiece returns the captured piece, NoPiece if none.
func (m Move) RemovedPiece() Piece {
	return m.Captured
}

// String returns the move in coordinate form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion {
		s += string(m.PromotedTo.Code())
	}
	return s
}

// MovePair represents a source-destination square pair, the shape in
// which the search hands its choice to the caller.
type MovePair struct {
	From Square
	To   Square
}
