package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree of the given depth
// from the current position.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(board, board.ToMove)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		makeMove(board, m.From, m.To, false)
		nodes += Perft(board, depth-1)
		UndoMove(board)
	}
	return nodes
}

// DivideEntry is the perft count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// Divide runs Perft to depth-1 below each root move, in LegalMoves order.
func Divide(board *chess.Board, depth int) []DivideEntry {
	if depth <= 0 {
		return nil
	}
	moves := LegalMoves(board, board.ToMove)
	out := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		makeMove(board, m.From, m.To, false)
		out = append(out, DivideEntry{Move: m, Nodes: Perft(board, depth-1)})
		UndoMove(board)
	}
	return out
}
