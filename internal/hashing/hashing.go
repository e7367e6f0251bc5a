// Package hashing provides Zobrist position keys and a transposition
// cache for perft counts.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

const numSquares = chess.BoardSize * chess.BoardSize

// Zobrist keys for pieces, castling, en passant and side to move.
var (
	zobristPiece     [2][chess.NumKinds][numSquares]uint64
	zobristCastle    [16]uint64
	zobristEnPassant [chess.BoardSize]uint64
	zobristSide      uint64
)

func init() {
	// Fixed seed: keys, and so hashes, are the same on every run.
	rnd := rand.New(rand.NewSource(0xC0DE))

	for side := range zobristPiece {
		for kind := chess.Pawn; kind < chess.NumKinds; kind++ {
			for sq := 0; sq < numSquares; sq++ {
				zobristPiece[side][kind][sq] = rnd.Uint64()
			}
		}
	}
	for cr := range zobristCastle {
		zobristCastle[cr] = rnd.Uint64()
	}
	for col := range zobristEnPassant {
		zobristEnPassant[col] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// GenerateZobristHash computes the Zobrist hash of the position on b:
// pieces, side to move, castling rights and en passant column. The move
// log does not take part.
func GenerateZobristHash(b *chess.Board) uint64 {
	var key uint64

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := b.Piece(row, col)
			if p.IsEmpty() {
				continue
			}
			key ^= zobristPiece[sideIndex(p.Side)][p.Kind][row*chess.BoardSize+col]
		}
	}

	if b.ToMove == chess.Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[b.Castling&chess.AllCastling]
	if b.EnPassant.Valid() {
		key ^= zobristEnPassant[b.EnPassant.Col]
	}
	return key
}

func sideIndex(s chess.Side) int {
	if s == chess.Black {
		return 1
	}
	return 0
}
