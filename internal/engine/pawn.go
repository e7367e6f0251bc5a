package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// enPassantTarget returns the en passant capture available to the pawn on
// from, or NoSquare.
func enPassantTarget(board *chess.Board, from chess.Square) chess.Square {
	pawn := board.Get(from)
	ep := board.EnPassant
	if pawn.Kind != chess.Pawn || !ep.Valid() {
		return chess.NoSquare
	}
	if ep.Row != from.Row+pawn.Side.Forward() || abs(ep.Col-from.Col) != 1 {
		return chess.NoSquare
	}
	if board.Get(victimSquare(from, ep)) != chess.NewPiece(pawn.Side.Opponent(), chess.Pawn) {
		return chess.NoSquare
	}
	return ep
}

// victimSquare is where the pawn taken en passant stands: beside the
// capturing pawn, on the target's file.
func victimSquare(from, to chess.Square) chess.Square {
	return chess.Sq(from.Row, to.Col)
}

// isEnPassantMove recognises a diagonal pawn step onto the en passant
// target square.
func isEnPassantMove(board *chess.Board, piece chess.Piece, from, to chess.Square) bool {
	return piece.Kind == chess.Pawn && to == board.EnPassant && from.Col != to.Col &&
		board.Get(to).IsEmpty()
}

// isPromotion recognises a pawn reaching the far row.
func isPromotion(piece chess.Piece, to chess.Square) bool {
	return piece.Kind == chess.Pawn && to.Row == piece.Side.LastRow()
}

// doubleStepTarget returns the square skipped by a two-row pawn advance,
// or NoSquare for any other move.
func doubleStepTarget(piece chess.Piece, from, to chess.Square) chess.Square {
	if piece.Kind != chess.Pawn || abs(to.Row-from.Row) != 2 {
		return chess.NoSquare
	}
	return chess.Sq((from.Row+to.Row)/2, from.Col)
}
