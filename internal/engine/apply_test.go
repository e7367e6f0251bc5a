package engine

import (
	"testing"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
	"github.com/lgbarn/minimax-chess-go/internal/testutil"
)

func TestMovePiece_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		from    chess.Square
		to      chess.Square
		isAI    bool
		wantErr error
	}{
		{"illegal pawn jump", chess.Sq(1, 3), chess.Sq(4, 3), false, errors.ErrIllegalMove},
		{"empty origin", chess.Sq(3, 3), chess.Sq(4, 3), false, errors.ErrIllegalMove},
		{"opponent piece", chess.Sq(6, 3), chess.Sq(5, 3), false, errors.ErrIllegalMove},
		{"opponent piece from ai", chess.Sq(6, 3), chess.Sq(5, 3), true, errors.ErrIllegalMove},
		{"off the board", chess.Sq(1, 3), chess.Sq(8, 3), false, errors.ErrOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewInitialBoard()
			before := b.SaveState()

			_, err := MovePiece(b, tt.from, tt.to, tt.isAI)
			testutil.AssertErrorIs(t, err, tt.wantErr)

			var moveErr *errors.MoveError
			if !errors.As(err, &moveErr) {
				t.Fatalf("error %v is not a *MoveError", err)
			}
			testutil.AssertEqual(t, moveErr.AI, tt.isAI)
			testutil.AssertEqual(t, moveErr.Ply, 1)

			if b.SaveState() != before || b.Ply() != 0 {
				t.Error("rejected move changed the board")
			}
		})
	}
}

func TestMovePiece_InconsistentKings(t *testing.T) {
	b := NewInitialBoard()
	b.Set(chess.Sq(7, 3), chess.NoPiece)

	_, err := MovePiece(b, chess.Sq(1, 3), chess.Sq(3, 3), false)
	testutil.AssertErrorIs(t, err, errors.ErrInconsistentKingState)
}

func TestMovePiece_Record(t *testing.T) {
	b := NewInitialBoard()

	m, err := MovePiece(b, sq(t, "e2"), sq(t, "e4"), false)
	testutil.AssertNoError(t, err)

	want := chess.Move{
		From:          sq(t, "e2"),
		To:            sq(t, "e4"),
		Piece:         chess.NewPiece(chess.White, chess.Pawn),
		CaptureSquare: chess.NoSquare,
		PrevCastling:  chess.AllCastling,
		PrevEnPassant: chess.NoSquare,
	}
	testutil.AssertEqual(t, m, want)
	testutil.AssertEqual(t, b.EnPassant, sq(t, "e3"))
	testutil.AssertEqual(t, b.ToMove, chess.Black)
	testutil.AssertEqual(t, b.Ply(), 1)
}

func TestMovePiece_AISkipsScan(t *testing.T) {
	b := NewInitialBoard()
	if _, err := MovePiece(b, sq(t, "g1"), sq(t, "f3"), true); err != nil {
		t.Fatalf("MovePiece(ai) error: %v", err)
	}
	testutil.AssertEqual(t, b.Get(sq(t, "f3")), chess.NewPiece(chess.White, chess.Knight))
}

func TestMovePiece_InCheckFlag(t *testing.T) {
	b := mustFEN(t, "4k3/8/8/8/8/8/8/R3K3 w Q - 0 1")

	m, err := MovePiece(b, sq(t, "a1"), sq(t, "a8"), false)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, m.InCheck, "Ra8 gives check")
	testutil.AssertEqual(t, b.Castling, chess.NoCastling, "rook left its corner")

	m, err = MovePiece(b, sq(t, "e8"), sq(t, "e7"), false)
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, m.InCheck)
}

func TestApplyUndo_SpecialMoves(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		from  string
		to    string
		check func(t *testing.T, b *chess.Board, m chess.Move)
	}{
		{
			name: "short castle",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			from: "e1",
			to:   "g1",
			check: func(t *testing.T, b *chess.Board, m chess.Move) {
				testutil.AssertTrue(t, m.IsCastle)
				testutil.AssertEqual(t, b.Get(sq(t, "f1")), chess.NewPiece(chess.White, chess.Rook))
				testutil.AssertEqual(t, b.Get(sq(t, "h1")), chess.NoPiece)
				testutil.AssertEqual(t, b.King(chess.White), sq(t, "g1"))
				testutil.AssertEqual(t, b.Castling, chess.Player2Short|chess.Player2Long)
			},
		},
		{
			name: "long castle",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			from: "e8",
			to:   "c8",
			check: func(t *testing.T, b *chess.Board, m chess.Move) {
				testutil.AssertTrue(t, m.IsCastle)
				testutil.AssertEqual(t, b.Get(sq(t, "d8")), chess.NewPiece(chess.Black, chess.Rook))
				testutil.AssertEqual(t, b.Get(sq(t, "a8")), chess.NoPiece)
				testutil.AssertEqual(t, b.Castling, chess.Player1Short|chess.Player1Long)
			},
		},
		{
			name: "en passant",
			fen:  "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
			from: "e5",
			to:   "f6",
			check: func(t *testing.T, b *chess.Board, m chess.Move) {
				testutil.AssertTrue(t, m.IsEnPassant)
				testutil.AssertEqual(t, m.CaptureSquare, sq(t, "f5"))
				testutil.AssertEqual(t, m.Captured, chess.NewPiece(chess.Black, chess.Pawn))
				testutil.AssertEqual(t, b.Get(sq(t, "f5")), chess.NoPiece)
			},
		},
		{
			name: "promotion",
			fen:  "8/P6k/8/8/8/8/8/K7 w - - 0 1",
			from: "a7",
			to:   "a8",
			check: func(t *testing.T, b *chess.Board, m chess.Move) {
				testutil.AssertTrue(t, m.IsPromotion)
				testutil.AssertEqual(t, m.PromotedTo, chess.Queen)
				testutil.AssertEqual(t, b.Get(sq(t, "a8")), chess.NewPiece(chess.White, chess.Queen))
				testutil.AssertEqual(t, m.String(), "a7a8q")
			},
		},
		{
			name: "capture on rook corner",
			fen:  "r3k2r/8/8/8/8/8/6B1/R3K2R w KQkq - 0 1",
			from: "g2",
			to:   "a8",
			check: func(t *testing.T, b *chess.Board, m chess.Move) {
				testutil.AssertTrue(t, m.IsCapture())
				testutil.AssertEqual(t, b.Castling, chess.Player1Short|chess.Player1Long|chess.Player2Short)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustFEN(t, tt.fen)
			before, beforeFEN := b.SaveState(), BoardToFEN(b)

			m, err := MovePiece(b, sq(t, tt.from), sq(t, tt.to), false)
			testutil.AssertNoError(t, err)
			tt.check(t, b, m)

			testutil.AssertTrue(t, UndoMove(b), "UndoMove")
			if b.SaveState() != before {
				t.Errorf("undo did not restore the board:\nbefore %s\nafter  %s", beforeFEN, BoardToFEN(b))
			}
		})
	}
}

func TestApplyUndo_EveryLegalMove(t *testing.T) {
	fens := []string{
		InitialFEN,
		kiwipeteFEN,
		"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
		"n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1",
	}

	for _, fen := range fens {
		b := mustFEN(t, fen)
		before := b.SaveState()
		for _, m := range LegalMoves(b, b.ToMove) {
			Apply(b, m.From, m.To)
			if !UndoMove(b) {
				t.Fatalf("%s: UndoMove after %s returned false", fen, m.String())
			}
			if b.SaveState() != before {
				t.Fatalf("%s: undo of %s left %s", fen, m.String(), BoardToFEN(b))
			}
		}
	}
}

func TestUndoMove_EmptyLog(t *testing.T) {
	b := NewInitialBoard()
	before := b.SaveState()
	testutil.AssertFalse(t, UndoMove(b))
	if b.SaveState() != before {
		t.Error("UndoMove on empty log changed the board")
	}
}

func TestFourPlyMate(t *testing.T) {
	b := NewInitialBoard()
	plies := [][2]chess.Square{
		{chess.Sq(1, 2), chess.Sq(2, 2)},
		{chess.Sq(6, 3), chess.Sq(5, 3)},
		{chess.Sq(1, 1), chess.Sq(3, 1)},
		{chess.Sq(7, 4), chess.Sq(3, 0)},
	}
	for _, p := range plies {
		if _, err := MovePiece(b, p[0], p[1], false); err != nil {
			t.Fatalf("MovePiece(%v, %v) error: %v", p[0], p[1], err)
		}
	}

	testutil.AssertTrue(t, b.WhoseTurn(), "White to move")
	testutil.AssertTrue(t, IsInCheck(b, chess.White))
	if moves := LegalMoves(b, chess.White); len(moves) != 0 {
		t.Errorf("LegalMoves(White) = %d moves; want none", len(moves))
	}
	testutil.AssertEqual(t, Status(b), chess.BlackWins)

	last, _ := b.LastMove()
	testutil.AssertTrue(t, last.InCheck, "mating move is flagged as check")

	for i := 0; i < len(plies); i++ {
		UndoMove(b)
	}
	testutil.AssertEqual(t, b.SaveState(), NewInitialBoard().SaveState())
}
