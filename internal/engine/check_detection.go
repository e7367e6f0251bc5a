package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// IsInCheck returns true if the given side's king is in check.
func IsInCheck(board *chess.Board, side chess.Side) bool {
	king := board.King(side)

	// If the cache is stale, search for the king.
	if board.Get(king) != chess.NewPiece(side, chess.King) {
		king = findKing(board, side)
		if !king.Valid() {
			return false // No king found
		}
	}

	return isSquareAttacked(board, king, side.Opponent())
}

// findKing finds the king of the given side on the board.
func findKing(board *chess.Board, side chess.Side) chess.Square {
	king := chess.NewPiece(side, chess.King)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if board.Piece(row, col) == king {
				return chess.Sq(row, col)
			}
		}
	}
	return chess.NoSquare
}

// countKings returns how many kings of side stand on the board.
func countKings(board *chess.Board, side chess.Side) int {
	king := chess.NewPiece(side, chess.King)
	n := 0
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if board.Piece(row, col) == king {
				n++
			}
		}
	}
	return n
}

// IsSquareAttacked returns true if any piece of side by attacks sq. The
// scan walks outward from sq, which gives the same answer as asking every
// piece of by for its captures.
func IsSquareAttacked(board *chess.Board, sq chess.Square, by chess.Side) bool {
	return isSquareAttacked(board, sq, by)
}

func isSquareAttacked(board *chess.Board, sq chess.Square, by chess.Side) bool {
	// Pawns attack from one row behind their direction of travel.
	pawn := chess.NewPiece(by, chess.Pawn)
	for _, dc := range []int{-1, 1} {
		if board.Get(sq.Add(-by.Forward(), dc)) == pawn {
			return true
		}
	}

	knight := chess.NewPiece(by, chess.Knight)
	for _, o := range knightOffsets {
		if board.Get(sq.Add(o[0], o[1])) == knight {
			return true
		}
	}

	king := chess.NewPiece(by, chess.King)
	for _, o := range kingOffsets {
		if board.Get(sq.Add(o[0], o[1])) == king {
			return true
		}
	}

	queen := chess.NewPiece(by, chess.Queen)
	if rayAttacked(board, sq, diagonalDirs, chess.NewPiece(by, chess.Bishop), queen) {
		return true
	}
	return rayAttacked(board, sq, straightDirs, chess.NewPiece(by, chess.Rook), queen)
}

// rayAttacked walks each direction from sq until the first occupied square
// and reports whether it holds one of the two given sliders.
func rayAttacked(board *chess.Board, sq chess.Square, dirs []offset, slider, queen chess.Piece) bool {
	for _, d := range dirs {
		for s := sq.Add(d[0], d[1]); s.Valid(); s = s.Add(d[0], d[1]) {
			piece := board.Get(s)
			if piece.IsEmpty() {
				continue
			}
			if piece == slider || piece == queen {
				return true
			}
			break // Blocked
		}
	}
	return false
}
