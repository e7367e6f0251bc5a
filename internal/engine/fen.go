// Package engine provides chess move generation, legality checking and
// board manipulation.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewBoardFromFEN creates a board from a FEN string. Only the placement
// field is required; missing fields default to White to move with no
// castling and no en passant. The clocks are accepted but not kept.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, &errors.FENError{Err: errors.ErrInvalidFEN, FEN: fen, Field: "placement"}
	}

	board := chess.NewBoard()
	fenErr := func(field, got string) error {
		return &errors.FENError{Err: errors.ErrInvalidFEN, FEN: fen, Field: field, Got: got}
	}

	if err := parsePlacement(board, parts[0]); err != "" {
		return nil, fenErr("placement", err)
	}

	if len(parts) >= 2 {
		switch parts[1] {
		case "w":
			board.ToMove = chess.White
		case "b":
			board.ToMove = chess.Black
		default:
			return nil, fenErr("side to move", parts[1])
		}
	}

	if len(parts) >= 3 {
		rights, ok := parseCastlingRights(parts[2])
		if !ok {
			return nil, fenErr("castling", parts[2])
		}
		board.Castling = rights
	}

	if len(parts) >= 4 && parts[3] != "-" {
		sq, ok := chess.ParseSquare(parts[3])
		if !ok {
			return nil, fenErr("en passant", parts[3])
		}
		board.EnPassant = sq
	}

	for i, field := range []string{"halfmove clock", "fullmove number"} {
		if len(parts) > 4+i {
			if _, err := strconv.Atoi(parts[4+i]); err != nil {
				return nil, fenErr(field, parts[4+i])
			}
		}
	}

	if err := Validate(board); err != nil {
		return nil, &errors.FENError{
			Err:   fmt.Errorf("%w: %w", errors.ErrInvalidFEN, err),
			FEN:   fen,
			Field: "kings",
		}
	}
	return board, nil
}

// parsePlacement fills the board from the placement field. It returns the
// offending text, or "" on success.
func parsePlacement(board *chess.Board, placement string) string {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return placement
	}
	for i, rank := range ranks {
		row := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(rank); j++ {
			c := rank[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			kind := chess.KindFromCode(c)
			if kind == chess.Empty || file >= chess.BoardSize {
				return rank
			}
			side := chess.White
			if c >= 'a' && c <= 'z' {
				side = chess.Black
			}
			board.Set(chess.Sq(row, chess.BoardSize-1-file), chess.NewPiece(side, kind))
			file++
		}
		if file != chess.BoardSize {
			return rank
		}
	}
	return ""
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(field string) (chess.CastleRights, bool) {
	if field == "-" {
		return chess.NoCastling, true
	}
	var rights chess.CastleRights
	for _, c := range field {
		switch c {
		case 'K':
			rights |= chess.Player1Short
		case 'Q':
			rights |= chess.Player1Long
		case 'k':
			rights |= chess.Player2Short
		case 'q':
			rights |= chess.Player2Long
		default:
			return chess.NoCastling, false
		}
	}
	return rights, true
}

// BoardToFEN converts a board to a FEN string. The halfmove clock counts
// the logged moves since the last pawn move or capture, and the fullmove
// number is derived from the log length.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePlacement(&sb, board)
	sb.WriteByte(' ')
	if board.ToMove == chess.Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	sb.WriteByte(' ')
	sb.WriteString(board.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(board.EnPassant.String())
	fmt.Fprintf(&sb, " %d %d", halfmoveClock(board), 1+board.Ply()/2)

	return sb.String()
}

// writePlacement writes the piece placement to the builder, rank 8 first
// and the a-file first within each rank.
func writePlacement(sb *strings.Builder, board *chess.Board) {
	for row := chess.BoardSize - 1; row >= 0; row-- {
		emptyCount := 0
		for col := chess.BoardSize - 1; col >= 0; col-- {
			piece := board.Piece(row, col)
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
}

// halfmoveClock counts logged moves since the last pawn move or capture.
func halfmoveClock(board *chess.Board) int {
	log := board.Log()
	n := 0
	for i := len(log) - 1; i >= 0; i-- {
		if log[i].Piece.Kind == chess.Pawn || log[i].IsCapture() {
			break
		}
		n++
	}
	return n
}
