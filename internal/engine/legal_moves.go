package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// ValidMoves returns the legal destinations of the piece on from: its
// piece moves plus castling and en passant, minus those that leave its own
// king in check. Empty or off-board squares have no moves.
func ValidMoves(board *chess.Board, from chess.Square) []chess.Square {
	moves := legalMovesFrom(board, from, false)
	if len(moves) == 0 {
		return nil
	}
	out := make([]chess.Square, len(moves))
	for i, m := range moves {
		out[i] = m.To
	}
	return out
}

// LegalMoves returns every legal move of side, origins scanned row by row
// from row 0 and col 0, destinations in ValidMoves order. The records
// describe what each move would do; InCheck is only set on moves that
// have been played.
func LegalMoves(board *chess.Board, side chess.Side) []chess.Move {
	var out []chess.Move
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if !board.Piece(row, col).Is(side) {
				continue
			}
			out = append(out, legalMovesFrom(board, chess.Sq(row, col), false)...)
		}
	}
	return out
}

// HasLegalMoves returns true if the given side has at least one legal move.
func HasLegalMoves(board *chess.Board, side chess.Side) bool {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if !board.Piece(row, col).Is(side) {
				continue
			}
			if len(legalMovesFrom(board, chess.Sq(row, col), true)) > 0 {
				return true
			}
		}
	}
	return false
}

// pseudoTargets returns the destinations of the piece on from before the
// king safety filter.
func pseudoTargets(board *chess.Board, from chess.Square) []chess.Square {
	piece := board.Get(from)
	if piece.IsEmpty() {
		return nil
	}
	targets := Place(piece, from).AllMoves(board)
	switch piece.Kind {
	case chess.Pawn:
		if ep := enPassantTarget(board, from); ep.Valid() {
			targets = append(targets, ep)
		}
	case chess.King:
		targets = append(targets, castleTargets(board, from)...)
	}
	return targets
}

// legalMovesFrom plays each pseudo move of the piece on from, keeps those
// after which its own king is not attacked, and takes each one back.
func legalMovesFrom(board *chess.Board, from chess.Square, firstOnly bool) []chess.Move {
	piece := board.Get(from)
	targets := pseudoTargets(board, from)
	if len(targets) == 0 {
		return nil
	}

	toMove := board.ToMove
	var out []chess.Move
	for _, to := range targets {
		m := makeMove(board, from, to, false)
		safe := !IsInCheck(board, piece.Side)
		UndoMove(board)
		if safe {
			out = append(out, m)
			if firstOnly {
				break
			}
		}
	}
	board.ToMove = toMove
	return out
}
