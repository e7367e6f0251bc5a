package engine

import (
	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// MovePiece plays from -> to for the side to move and returns the log
// record. Human moves must be one of ValidMoves(board, from). Moves from
// the search (isAI) skip that scan but must still start from a piece of
// the side to move. The board is unchanged when an error is returned.
func MovePiece(board *chess.Board, from, to chess.Square, isAI bool) (chess.Move, error) {
	moveErr := func(err error) error {
		return &errors.MoveError{
			Err:  err,
			From: from.String(),
			To:   to.String(),
			Ply:  board.Ply() + 1,
			AI:   isAI,
		}
	}

	if !from.Valid() || !to.Valid() {
		return chess.Move{}, moveErr(errors.ErrOutOfBounds)
	}
	if err := Validate(board); err != nil {
		return chess.Move{}, moveErr(err)
	}
	if !board.Get(from).Is(board.ToMove) {
		return chess.Move{}, moveErr(errors.ErrIllegalMove)
	}
	if !isAI && !containsSquare(ValidMoves(board, from), to) {
		return chess.Move{}, moveErr(errors.ErrIllegalMove)
	}

	return Apply(board, from, to), nil
}

// Apply plays from -> to without any legality check, pushes the record on
// the board's log and returns it. The mover is whoever stands on from.
func Apply(board *chess.Board, from, to chess.Square) chess.Move {
	return makeMove(board, from, to, true)
}

// makeMove does the work of Apply. When markCheck is false the InCheck
// flag of the record is left unset.
func makeMove(board *chess.Board, from, to chess.Square, markCheck bool) chess.Move {
	piece := board.Get(from)
	side := piece.Side

	m := chess.Move{
		From:          from,
		To:            to,
		Piece:         piece,
		Captured:      board.Get(to),
		CaptureSquare: to,
		PrevCastling:  board.Castling,
		PrevEnPassant: board.EnPassant,
	}

	switch {
	case isEnPassantMove(board, piece, from, to):
		m.IsEnPassant = true
		m.CaptureSquare = victimSquare(from, to)
		m.Captured = board.Get(m.CaptureSquare)
		board.Set(m.CaptureSquare, chess.NoPiece)
	case isCastleMove(piece, from, to):
		m.IsCastle = true
	}
	if m.Captured.IsEmpty() {
		m.CaptureSquare = chess.NoSquare
	}

	board.Set(from, chess.NoPiece)
	if isPromotion(piece, to) {
		m.IsPromotion = true
		m.PromotedTo = chess.Queen
		board.Set(to, chess.NewPiece(side, chess.Queen))
	} else {
		board.Set(to, piece)
	}

	if m.IsCastle {
		rookFrom, rookTo := castleRookSquares(from, to)
		board.Set(rookTo, board.Get(rookFrom))
		board.Set(rookFrom, chess.NoPiece)
	}

	board.Castling = updateCastlingRights(board.Castling, m)
	board.EnPassant = doubleStepTarget(piece, from, to)
	board.ToMove = side.Opponent()

	if markCheck {
		m.InCheck = IsInCheck(board, side.Opponent())
	}
	board.Push(m)
	return m
}

// UndoMove reverses the most recent move. It returns false, leaving the
// board untouched, when there is nothing to undo.
func UndoMove(board *chess.Board) bool {
	m, ok := board.Pop()
	if !ok {
		return false
	}
	unmakeMove(board, m)
	return true
}

// unmakeMove restores the board to its state before m was played.
func unmakeMove(board *chess.Board, m chess.Move) {
	if m.IsCastle {
		rookFrom, rookTo := castleRookSquares(m.From, m.To)
		board.Set(rookFrom, board.Get(rookTo))
		board.Set(rookTo, chess.NoPiece)
	}

	board.Set(m.To, chess.NoPiece)
	board.Set(m.From, m.Piece)
	if m.IsCapture() {
		board.Set(m.CaptureSquare, m.Captured)
	}

	board.Castling = m.PrevCastling
	board.EnPassant = m.PrevEnPassant
	board.ToMove = m.Piece.Side
}

// containsSquare reports whether sq is in squares.
func containsSquare(squares []chess.Square, sq chess.Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}
