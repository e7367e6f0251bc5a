package hashing

import (
	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
)

// Perft counts leaf nodes like engine.Perft, looking up and storing the
// count of every interior position in cache. Transpositions are counted
// once. A nil cache counts without one.
func Perft(b *chess.Board, depth int, cache *PerftCache) uint64 {
	if cache == nil {
		return engine.Perft(b, depth)
	}
	if depth <= 1 {
		return engine.Perft(b, depth)
	}

	hash := GenerateZobristHash(b)
	if nodes, ok := cache.Get(hash, depth); ok {
		return nodes
	}

	var nodes uint64
	for _, m := range engine.LegalMoves(b, b.ToMove) {
		engine.Apply(b, m.From, m.To)
		nodes += Perft(b, depth-1, cache)
		engine.UndoMove(b)
	}
	cache.Put(hash, depth, nodes)
	return nodes
}
