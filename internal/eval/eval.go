// Package eval scores positions by material.
package eval

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// Values holds the material value of each piece kind.
type Values [chess.NumKinds]int

// DefaultValues are the classic weights, king included so that positions
// missing a king score far from any real material balance.
var DefaultValues = Values{
	chess.Pawn:   10,
	chess.Knight: 30,
	chess.Bishop: 30,
	chess.Rook:   50,
	chess.Queen:  90,
	chess.King:   900,
}

// Evaluate returns the material balance of pos with the pieces of against
// counted negative and everybody else's positive.
func Evaluate(pos chess.Position, against chess.Side) int {
	return DefaultValues.Evaluate(pos, against)
}

// Evaluate scores pos with these values.
func (v *Values) Evaluate(pos chess.Position, against chess.Side) int {
	return v.Material(pos, against.Opponent()) - v.Material(pos, against)
}

// Material returns the total value of side's pieces.
func (v *Values) Material(pos chess.Position, side chess.Side) int {
	total := 0
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if p := pos.Get(chess.Sq(row, col)); p.Is(side) {
				total += v[p.Kind]
			}
		}
	}
	return total
}
