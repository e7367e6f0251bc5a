package main

import (
	"testing"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
	"github.com/lgbarn/minimax-chess-go/internal/testutil"
)

func TestParseSide(t *testing.T) {
	tests := []struct {
		in   string
		want chess.Side
		ok   bool
	}{
		{"w", chess.White, true},
		{"White", chess.White, true},
		{" b ", chess.Black, true},
		{"black", chess.Black, true},
		{"", chess.NoSide, false},
		{"red", chess.NoSide, false},
	}
	for _, tt := range tests {
		got, ok := parseSide(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("parseSide(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestApplyFlags_Defaults(t *testing.T) {
	cfg := config.NewConfig()
	testutil.AssertNoError(t, applyFlags(cfg))

	testutil.AssertEqual(t, cfg.Game.Players, 0)
	testutil.AssertEqual(t, cfg.Game.HumanSide, chess.NoSide)
	testutil.AssertEqual(t, cfg.Search.Depth, 3)
	testutil.AssertEqual(t, cfg.Search.Workers, 1)
	testutil.AssertEqual(t, cfg.Output.Notation, config.SAN)
	testutil.AssertTrue(t, cfg.Output.Coordinates)
	testutil.AssertTrue(t, cfg.Output.ShowMoveList)
}

func TestApplyFlags_Values(t *testing.T) {
	defer func(side, n string, d int) { *humanSide, *moveNotation, *depth = side, n, d }(*humanSide, *moveNotation, *depth)

	*humanSide = "b"
	*moveNotation = "coord"
	*depth = 4
	cfg := config.NewConfig()
	testutil.AssertNoError(t, applyFlags(cfg))
	testutil.AssertEqual(t, cfg.Game.HumanSide, chess.Black)
	testutil.AssertEqual(t, cfg.Output.Notation, config.Coordinate)
	testutil.AssertEqual(t, cfg.Search.Depth, 4)

	*humanSide = "green"
	testutil.AssertErrorIs(t, applyFlags(config.NewConfig()), errors.ErrInvalidConfig)
}
