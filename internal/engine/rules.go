package engine

import (
	"fmt"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}

// Status classifies the position for the side to move: a win for the
// other side if it has no legal move and is in check, Stalemate if it has
// no legal move otherwise, Ongoing while it can move.
func Status(board *chess.Board) chess.Outcome {
	side := board.ToMove
	if HasLegalMoves(board, side) {
		return chess.Ongoing
	}
	if !IsInCheck(board, side) {
		return chess.Stalemate
	}
	if side == chess.White {
		return chess.BlackWins
	}
	return chess.WhiteWins
}

// IsCheckmate returns true if the side to move is checkmated.
func IsCheckmate(board *chess.Board) bool {
	return IsInCheck(board, board.ToMove) && !HasLegalMoves(board, board.ToMove)
}

// IsStalemate returns true if the side to move is stalemated.
func IsStalemate(board *chess.Board) bool {
	return !IsInCheck(board, board.ToMove) && !HasLegalMoves(board, board.ToMove)
}

// Validate checks that each side has exactly one king and that the
// board's king cache points at it.
func Validate(board *chess.Board) error {
	for _, side := range []chess.Side{chess.White, chess.Black} {
		if n := countKings(board, side); n != 1 {
			return fmt.Errorf("%s has %d kings: %w", side, n, errors.ErrInconsistentKingState)
		}
		if board.Get(board.King(side)) != chess.NewPiece(side, chess.King) {
			return fmt.Errorf("%s king cache at %s is stale: %w", side, board.King(side), errors.ErrInconsistentKingState)
		}
	}
	return nil
}
