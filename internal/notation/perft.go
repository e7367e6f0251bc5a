package notation

import (
	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
)

// ReferencePerft counts leaf nodes with the dragontoothmg move generator
// from the position on b. dragontoothmg counts every promotion piece, so
// the counts only match engine.Perft on trees without promotions.
func ReferencePerft(b *chess.Board, depth int) uint64 {
	board := dragontoothmg.ParseFen(engine.BoardToFEN(b))
	return referencePerft(&board, depth)
}

func referencePerft(board *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := board.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := board.Apply(m)
		nodes += referencePerft(board, depth-1)
		unapply()
	}
	return nodes
}

// ReferenceDivide returns the dragontoothmg perft count below each root
// move, keyed by coordinate move text such as "e2e4".
func ReferenceDivide(b *chess.Board, depth int) map[string]uint64 {
	out := make(map[string]uint64)
	if depth <= 0 {
		return out
	}
	board := dragontoothmg.ParseFen(engine.BoardToFEN(b))
	moves := board.GenerateLegalMoves()
	for i := range moves {
		unapply := board.Apply(moves[i])
		out[moves[i].String()] = referencePerft(&board, depth-1)
		unapply()
	}
	return out
}

// DivideDiff compares engine.Divide with ReferenceDivide and returns the
// moves whose counts differ, with both counts; a count of zero means the
// move is missing on that side.
func DivideDiff(b *chess.Board, depth int) map[string][2]uint64 {
	ours := make(map[string]uint64)
	for _, e := range engine.Divide(b, depth) {
		ours[e.Move.String()] = e.Nodes
	}
	ref := ReferenceDivide(b, depth)

	diff := make(map[string][2]uint64)
	for move, n := range ours {
		if ref[move] != n {
			diff[move] = [2]uint64{n, ref[move]}
		}
	}
	for move, n := range ref {
		if _, ok := ours[move]; !ok {
			diff[move] = [2]uint64{0, n}
		}
	}
	return diff
}
