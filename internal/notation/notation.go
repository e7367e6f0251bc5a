// Package notation converts between the engine's boards and moves and the
// text forms people type and read: coordinate moves, SAN and FEN. Move
// text is decoded and encoded with github.com/notnil/chess.
package notation

import (
	"fmt"
	"strings"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// ParseFEN creates a board from a FEN string.
func ParseFEN(fen string) (*chess.Board, error) {
	return engine.NewBoardFromFEN(fen)
}

// FEN returns the FEN string of the board.
func FEN(b *chess.Board) string {
	return engine.BoardToFEN(b)
}

// position builds the notnil view of the board.
func position(b *chess.Board) (*nchess.Position, error) {
	opt, err := nchess.FEN(engine.BoardToFEN(b))
	if err != nil {
		return nil, errors.Wrap(fmt.Errorf("%w: %v", errors.ErrInvalidFEN, err), "converting board")
	}
	return nchess.NewGame(opt).Position(), nil
}

// fromSquare converts a notnil square. notnil counts files from a, the
// board counts columns from h.
func fromSquare(sq nchess.Square) chess.Square {
	return chess.Sq(int(sq.Rank()), chess.BoardSize-1-int(sq.File()))
}

// toSquare converts a board square to notnil's.
func toSquare(sq chess.Square) nchess.Square {
	return nchess.NewSquare(nchess.File(chess.BoardSize-1-sq.Col), nchess.Rank(sq.Row))
}

// ParseMove reads a move for the side to move, either in coordinate form
// ("e2e4", "e7e8q") or in SAN ("Nf3", "exd5", "O-O"). Promotions are
// always to a queen whatever piece the text names.
func ParseMove(b *chess.Board, text string) (chess.MovePair, error) {
	text = strings.TrimSpace(text)
	illegal := func() error {
		return &errors.MoveError{Err: fmt.Errorf("%w: %q", errors.ErrIllegalMove, text), Ply: b.Ply() + 1}
	}
	if text == "" {
		return chess.MovePair{}, illegal()
	}

	pos, err := position(b)
	if err != nil {
		return chess.MovePair{}, err
	}

	m, err := nchess.UCINotation{}.Decode(pos, text)
	if err != nil || !isValid(pos, m) {
		m, err = nchess.AlgebraicNotation{}.Decode(pos, text)
	}
	if err != nil || !isValid(pos, m) {
		return chess.MovePair{}, illegal()
	}
	return chess.MovePair{From: fromSquare(m.S1()), To: fromSquare(m.S2())}, nil
}

// isValid reports whether m is one of the position's legal moves.
func isValid(pos *nchess.Position, m *nchess.Move) bool {
	if m == nil {
		return false
	}
	for _, v := range pos.ValidMoves() {
		if v.S1() == m.S1() && v.S2() == m.S2() && v.Promo() == m.Promo() {
			return true
		}
	}
	return false
}

// SAN renders m, a legal move of the position on b, in Standard Algebraic
// Notation. Moves notnil does not recognise fall back to coordinate form.
func SAN(b *chess.Board, m chess.Move) string {
	pos, err := position(b)
	if err != nil {
		return m.String()
	}
	if v := findMove(pos, m.From, m.To); v != nil {
		return nchess.AlgebraicNotation{}.Encode(pos, v)
	}
	return m.String()
}

// findMove returns notnil's legal move from -> to, preferring the queen
// among promotions.
func findMove(pos *nchess.Position, from, to chess.Square) *nchess.Move {
	s1, s2 := toSquare(from), toSquare(to)
	var found *nchess.Move
	for _, v := range pos.ValidMoves() {
		if v.S1() != s1 || v.S2() != s2 {
			continue
		}
		if v.Promo() == nchess.NoPieceType || v.Promo() == nchess.Queen {
			return v
		}
		found = v
	}
	return found
}

// History renders the board's move log, oldest first, in SAN or in
// coordinate form.
func History(b *chess.Board, san bool) []string {
	log := b.Log()
	out := make([]string, 0, len(log))
	if !san {
		for _, m := range log {
			out = append(out, m.String())
		}
		return out
	}

	replay := b.Copy()
	for engine.UndoMove(replay) {
	}
	for _, m := range log {
		out = append(out, SAN(replay, m))
		engine.Apply(replay, m.From, m.To)
	}
	return out
}

// LegalMoves returns notnil's legal moves for the side to move as from/to
// pairs, one per destination: promotion choices collapse into one entry.
func LegalMoves(b *chess.Board) ([]chess.MovePair, error) {
	pos, err := position(b)
	if err != nil {
		return nil, err
	}
	var out []chess.MovePair
	for _, v := range pos.ValidMoves() {
		if v.Promo() != nchess.NoPieceType && v.Promo() != nchess.Queen {
			continue
		}
		out = append(out, chess.MovePair{From: fromSquare(v.S1()), To: fromSquare(v.S2())})
	}
	return out, nil
}
