package main

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
	"github.com/lgbarn/minimax-chess-go/internal/testutil"
)

// runSession plays a scripted session and returns the output and the log.
func runSession(t *testing.T, b *config.ConfigBuilder, input string) (string, string, error) {
	t.Helper()
	var out, logBuf bytes.Buffer
	cfg := b.WithOutput(&out).WithLog(&logBuf).Build()

	s := NewSession(cfg, strings.NewReader(input))
	if err := s.Setup(); err != nil {
		t.Fatalf("Setup() error: %v", err)
	}
	err := s.Run()
	return out.String(), logBuf.String(), err
}

func twoPlayers() *config.ConfigBuilder {
	return config.NewConfigBuilder().WithPlayers(2)
}

func TestSession_TwoPlayerMate(t *testing.T) {
	out, log, err := runSession(t, twoPlayers(), "f3\ne6\ng4\nQh4\n")
	testutil.AssertNoError(t, err)

	testutil.AssertContains(t, out, "Black wins.")
	testutil.AssertContains(t, out, "1. f3 e6 2. g4 Qh4#")
	testutil.AssertContains(t, out, "Check.")
	testutil.AssertContains(t, log, "White player start")
	testutil.AssertContains(t, log, "INFO     ")
	testutil.AssertEqual(t, strings.Count(log, "Black wins."), 1, "result logged once")
	testutil.AssertContains(t, log, "Checks given by Black: 1")
	testutil.AssertContains(t, log, "All of White's pieces survived 5 turns")
}

func TestSession_Commands(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantOut []string
		wantLog []string
	}{
		{
			name:    "illegal move",
			input:   "e2e5\nq\n",
			wantOut: []string{"Illegal move: e2e5"},
			wantLog: []string{"WARNING  [", "Illegal move e2e5 by White"},
		},
		{
			name:    "undo",
			input:   "e2e4\nu\nfen\nq\n",
			wantOut: []string{engine.InitialFEN},
			wantLog: []string{"Undo, 0 moves in the log"},
		},
		{
			name:    "undo on empty log",
			input:   "u\nq\n",
			wantOut: []string{"Nothing to undo."},
		},
		{
			name:    "restart",
			input:   "e2e4\nd7d5\nr\nfen\nq\n",
			wantOut: []string{engine.InitialFEN},
			wantLog: []string{"Game restarted"},
		},
		{
			name:    "valid moves",
			input:   "moves g1\nmoves e4\nmoves z9\nq\n",
			wantOut: []string{"g1: ", "f3", "h3", "No legal moves from e4.", "Not a square: z9"},
		},
		{
			name:    "help",
			input:   "help\nq\n",
			wantOut: []string{"moves <square>"},
		},
		{
			name:    "end of input",
			input:   "e2e4\n",
			wantOut: []string{"Black to move: "},
			wantLog: []string{"Checks given by White: 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, log, err := runSession(t, twoPlayers(), tt.input)
			testutil.AssertNoError(t, err)
			for _, s := range tt.wantOut {
				testutil.AssertContains(t, out, s)
			}
			for _, s := range tt.wantLog {
				testutil.AssertContains(t, log, s)
			}
		})
	}
}

func TestSession_AIReplies(t *testing.T) {
	b := config.NewConfigBuilder().
		WithPlayers(1).
		WithHumanSide(chess.White).
		WithDepth(2).
		WithStartFEN("r5k1/8/8/8/8/8/5PPP/6K1 b - - 0 1")

	out, log, err := runSession(t, b, "")
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, out, "AI plays Ra1#")
	testutil.AssertContains(t, out, "Black wins.")
	testutil.AssertContains(t, log, "Human player start")
	testutil.AssertContains(t, log, "AI (Black) played Ra1#")
}

func TestSession_AIMovesFirst(t *testing.T) {
	b := config.NewConfigBuilder().
		WithPlayers(1).
		WithHumanSide(chess.Black).
		WithDepth(2).
		WithNotation(config.Coordinate).
		WithStartFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")

	out, log, err := runSession(t, b, "")
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, out, "AI plays a1a8")
	testutil.AssertContains(t, out, "White wins.")
	testutil.AssertContains(t, log, "AI player start")
}

func TestSession_UndoAgainstAI(t *testing.T) {
	b := config.NewConfigBuilder().WithPlayers(1).WithHumanSide(chess.White).WithDepth(1)

	out, _, err := runSession(t, b, "e2e4\nu\nfen\nq\n")
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, out, "AI plays ")
	testutil.AssertContains(t, out, engine.InitialFEN)
}

func TestSession_BadStartFEN(t *testing.T) {
	_, _, err := runSession(t, twoPlayers().WithStartFEN("not a fen"), "")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
}

func TestSession_SetupPrompts(t *testing.T) {
	var out bytes.Buffer
	cfg := config.NewConfigBuilder().WithOutput(&out).WithLog(&bytes.Buffer{}).Build()
	cfg.Game.Players = 0
	cfg.Game.HumanSide = chess.NoSide

	s := NewSession(cfg, strings.NewReader("3\nx\n1\nz\nb\n"))
	testutil.AssertNoError(t, s.Setup())

	testutil.AssertEqual(t, cfg.Game.Players, 1)
	testutil.AssertEqual(t, cfg.Game.HumanSide, chess.Black)
	testutil.AssertEqual(t, strings.Count(out.String(), "Enter 1 or 2."), 2)
	testutil.AssertContains(t, out.String(), "Enter w or b.")
}

func TestSession_SetupEOF(t *testing.T) {
	cfg := config.NewConfigBuilder().WithOutput(&bytes.Buffer{}).WithLog(&bytes.Buffer{}).Build()
	cfg.Game.Players = 0

	if err := NewSession(cfg, strings.NewReader("")).Setup(); err == nil {
		t.Error("Setup() with no input should fail")
	}
}

func TestSession_SetupRejectsDepth(t *testing.T) {
	cfg := twoPlayers().WithDepth(0).WithOutput(&bytes.Buffer{}).Build()
	err := NewSession(cfg, strings.NewReader("")).Setup()
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
}

func TestGameLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	l := newGameLogger(&buf)
	l.now = func() time.Time { return time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC) }
	l.session = "s1"

	l.Info("White wins.")
	l.Warning("w")
	l.Error("e %d", 3)

	testutil.AssertEqual(t, buf.String(),
		"2024-03-09 14:05:07 INFO     [s1] White wins.\n"+
			"2024-03-09 14:05:07 WARNING  [s1] w\n"+
			"2024-03-09 14:05:07 ERROR    [s1] e 3\n")
}

func TestGameLogger_Sessions(t *testing.T) {
	l := newGameLogger(&bytes.Buffer{})
	uuidPattern := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	first := l.session
	testutil.AssertTrue(t, uuidPattern.MatchString(first), "session %q is not a UUID", first)

	l.newSession()
	testutil.AssertTrue(t, l.session != first, "newSession kept the old ID")
}

func TestSession_AIErrorStops(t *testing.T) {
	var logBuf bytes.Buffer
	cfg := config.NewConfigBuilder().
		WithPlayers(1).
		WithHumanSide(chess.Black).
		WithDepth(1).
		WithOutput(&bytes.Buffer{}).
		WithLog(&logBuf).
		Build()

	s := NewSession(cfg, strings.NewReader(""))
	b, err := engine.NewBoardFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	testutil.AssertNoError(t, err)
	b.Set(chess.Sq(3, 3), chess.NewPiece(chess.White, chess.King))
	s.board = b

	err = s.playAI()
	testutil.AssertErrorIs(t, err, errors.ErrInconsistentKingState)
	testutil.AssertContains(t, logBuf.String(), "ERROR    ")
	testutil.AssertContains(t, logBuf.String(), "AI made an illegal move")
}
