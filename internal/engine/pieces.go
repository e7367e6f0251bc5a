package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// offset is a (row, col) step.
type offset [2]int

var (
	knightOffsets = []offset{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = []offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = []offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = []offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	queenDirs     = append(append([]offset{}, diagonalDirs...), straightDirs...)
)

// PlacedPiece is a piece together with the square it stands on. Its move
// methods look only at piece geometry and occupancy; they know nothing of
// check, castling or en passant.
type PlacedPiece struct {
	chess.Piece
	At chess.Square
}

// Place binds piece p to square sq.
func Place(p chess.Piece, sq chess.Square) PlacedPiece {
	return PlacedPiece{Piece: p, At: sq}
}

// PeacefulMoves returns the empty destinations the piece can reach without
// capturing.
func (p PlacedPiece) PeacefulMoves(pos chess.Position) []chess.Square {
	switch p.Kind {
	case chess.Pawn:
		return p.pawnPushes(pos)
	case chess.Knight:
		return p.steps(pos, knightOffsets, false)
	case chess.Bishop:
		return p.slides(pos, diagonalDirs, false)
	case chess.Rook:
		return p.slides(pos, straightDirs, false)
	case chess.Queen:
		return p.slides(pos, queenDirs, false)
	case chess.King:
		return p.steps(pos, kingOffsets, false)
	case chess.Empty, chess.NumKinds:
	}
	return nil
}

// CaptureMoves returns the destinations holding an opposing piece that the
// piece attacks.
func (p PlacedPiece) CaptureMoves(pos chess.Position) []chess.Square {
	switch p.Kind {
	case chess.Pawn:
		return p.pawnCaptures(pos)
	case chess.Knight:
		return p.steps(pos, knightOffsets, true)
	case chess.Bishop:
		return p.slides(pos, diagonalDirs, true)
	case chess.Rook:
		return p.slides(pos, straightDirs, true)
	case chess.Queen:
		return p.slides(pos, queenDirs, true)
	case chess.King:
		return p.steps(pos, kingOffsets, true)
	case chess.Empty, chess.NumKinds:
	}
	return nil
}

// AllMoves returns the peaceful moves followed by the captures.
func (p PlacedPiece) AllMoves(pos chess.Position) []chess.Square {
	return append(p.PeacefulMoves(pos), p.CaptureMoves(pos)...)
}

// isEnemy returns true if target holds a piece of the other side.
func (p PlacedPiece) isEnemy(target chess.Piece) bool {
	return !target.IsEmpty() && target.Side != p.Side
}

// steps handles the single-step pieces: knight and king.
func (p PlacedPiece) steps(pos chess.Position, offsets []offset, captures bool) []chess.Square {
	var out []chess.Square
	for _, o := range offsets {
		sq := p.At.Add(o[0], o[1])
		if !sq.Valid() {
			continue
		}
		target := pos.Get(sq)
		if captures {
			if p.isEnemy(target) {
				out = append(out, sq)
			}
		} else if target.IsEmpty() {
			out = append(out, sq)
		}
	}
	return out
}

// slides handles bishops, rooks and queens. A ray stops at the first
// occupied square, which is a capture if it holds an opposing piece.
func (p PlacedPiece) slides(pos chess.Position, dirs []offset, captures bool) []chess.Square {
	var out []chess.Square
	for _, d := range dirs {
		for sq := p.At.Add(d[0], d[1]); sq.Valid(); sq = sq.Add(d[0], d[1]) {
			target := pos.Get(sq)
			if target.IsEmpty() {
				if !captures {
					out = append(out, sq)
				}
				continue
			}
			if captures && p.isEnemy(target) {
				out = append(out, sq)
			}
			break
		}
	}
	return out
}

// pawnPushes returns the single step forward and, from the starting row,
// the double step when both squares are empty.
func (p PlacedPiece) pawnPushes(pos chess.Position) []chess.Square {
	fwd := p.Side.Forward()
	one := p.At.Add(fwd, 0)
	if !one.Valid() || !pos.Get(one).IsEmpty() {
		return nil
	}
	out := []chess.Square{one}
	if p.At.Row == p.Side.PawnRow() {
		two := one.Add(fwd, 0)
		if two.Valid() && pos.Get(two).IsEmpty() {
			out = append(out, two)
		}
	}
	return out
}

// pawnCaptures returns the forward diagonals holding an opposing piece.
func (p PlacedPiece) pawnCaptures(pos chess.Position) []chess.Square {
	var out []chess.Square
	for _, dc := range []int{-1, 1} {
		sq := p.At.Add(p.Side.Forward(), dc)
		if sq.Valid() && p.isEnemy(pos.Get(sq)) {
			out = append(out, sq)
		}
	}
	return out
}
