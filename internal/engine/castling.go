package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// kingHomeCol is the column both kings start on.
const kingHomeCol = 3

// castle describes one of the two castling options of a side, as column
// numbers on the side's home row.
type castle struct {
	rookCol  int
	kingTo   int
	rookTo   int
	between  []int // must be empty
	passedBy int   // the square the king crosses, must not be attacked
}

var (
	shortCastle = castle{rookCol: 0, kingTo: 1, rookTo: 2, between: []int{1, 2}, passedBy: 2}
	longCastle  = castle{rookCol: 7, kingTo: 5, rookTo: 4, between: []int{4, 5, 6}, passedBy: 4}
)

// castleTargets returns the king destinations of the castling moves
// available to the king on from. The destination square itself is checked
// later by the legality filter.
func castleTargets(board *chess.Board, from chess.Square) []chess.Square {
	king := board.Get(from)
	side := king.Side
	if king.Kind != chess.King || from != chess.Sq(side.HomeRow(), kingHomeCol) {
		return nil
	}
	if !board.Castling.Has(chess.ShortCastle(side)) && !board.Castling.Has(chess.LongCastle(side)) {
		return nil
	}
	if IsInCheck(board, side) {
		return nil
	}

	var out []chess.Square
	if board.Castling.Has(chess.ShortCastle(side)) && canCastle(board, side, shortCastle) {
		out = append(out, chess.Sq(from.Row, shortCastle.kingTo))
	}
	if board.Castling.Has(chess.LongCastle(side)) && canCastle(board, side, longCastle) {
		out = append(out, chess.Sq(from.Row, longCastle.kingTo))
	}
	return out
}

// canCastle checks the rook, the empty squares and the crossed square.
func canCastle(board *chess.Board, side chess.Side, c castle) bool {
	row := side.HomeRow()
	if board.Get(chess.Sq(row, c.rookCol)) != chess.NewPiece(side, chess.Rook) {
		return false
	}
	for _, col := range c.between {
		if !board.Get(chess.Sq(row, col)).IsEmpty() {
			return false
		}
	}
	return !isSquareAttacked(board, chess.Sq(row, c.passedBy), side.Opponent())
}

// isCastleMove recognises a king move of two columns along its row.
func isCastleMove(piece chess.Piece, from, to chess.Square) bool {
	return piece.Kind == chess.King && from.Row == to.Row && abs(to.Col-from.Col) == 2
}

// castleRookSquares returns where the rook starts and ends for the castling
// king move from -> to.
func castleRookSquares(from, to chess.Square) (chess.Square, chess.Square) {
	dir := sign(to.Col - from.Col)
	rookCol := shortCastle.rookCol
	if dir > 0 {
		rookCol = longCastle.rookCol
	}
	return chess.Sq(from.Row, rookCol), chess.Sq(from.Row, from.Col+dir)
}

// cornerRights maps each rook corner to the right it carries.
var cornerRights = map[chess.Square]chess.CastleRights{
	chess.Sq(0, shortCastle.rookCol): chess.Player1Short,
	chess.Sq(0, longCastle.rookCol):  chess.Player1Long,
	chess.Sq(7, shortCastle.rookCol): chess.Player2Short,
	chess.Sq(7, longCastle.rookCol):  chess.Player2Long,
}

// updateCastlingRights removes the rights a move forfeits: both of the
// mover's when the king moves, and the corner's right when a piece leaves
// or lands on a rook corner.
func updateCastlingRights(rights chess.CastleRights, m chess.Move) chess.CastleRights {
	if m.Piece.Kind == chess.King {
		rights &^= chess.ShortCastle(m.Piece.Side) | chess.LongCastle(m.Piece.Side)
	}
	rights &^= cornerRights[m.From]
	rights &^= cornerRights[m.To]
	return rights
}
