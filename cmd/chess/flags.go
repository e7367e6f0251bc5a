// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

var (
	// Players
	players   = flag.Int("players", 0, "Number of human players, 1 or 2 (0 = ask)")
	humanSide = flag.String("side", "", "Colour the human plays against the AI, w or b (empty = ask)")
	startFEN  = flag.String("fen", "", "Start from this FEN position instead of the standard one")

	// Search
	depth        = flag.Int("depth", 3, "Search depth in plies")
	workers      = flag.Int("workers", 1, "Goroutines used to search root moves")
	captureFirst = flag.Bool("capture-first", false, "Search captures before quiet moves")

	// Display
	unicode      = flag.Bool("unicode", false, "Draw pieces with chess glyphs")
	noCoords     = flag.Bool("nocoords", false, "Don't print file letters and rank numbers")
	noMoveList   = flag.Bool("nomovelist", false, "Don't print the move list under the board")
	moveNotation = flag.String("notation", "san", "Move list notation: san, coord")

	// Logging
	logFile = flag.String("log", "chess_game.log", "Append log lines to this file (empty = stderr)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	applySearchFlags(cfg)
	applyDisplayFlags(cfg)
	return applyGameFlags(cfg)
}

// applyGameFlags configures who plays. Unset values are left for the
// startup prompts.
func applyGameFlags(cfg *config.Config) error {
	cfg.Game.Players = *players
	cfg.Game.StartFEN = *startFEN
	if *humanSide == "" {
		cfg.Game.HumanSide = chess.NoSide
		return nil
	}
	side, ok := parseSide(*humanSide)
	if !ok {
		return fmt.Errorf("-side must be w or b, got %q: %w", *humanSide, errors.ErrInvalidConfig)
	}
	cfg.Game.HumanSide = side
	return nil
}

// applySearchFlags configures the AI.
func applySearchFlags(cfg *config.Config) {
	cfg.Search.Depth = *depth
	cfg.Search.Workers = *workers
	cfg.Search.CaptureFirst = *captureFirst
}

// applyDisplayFlags configures board drawing.
func applyDisplayFlags(cfg *config.Config) {
	cfg.Output.Unicode = *unicode
	cfg.Output.Coordinates = !*noCoords
	cfg.Output.ShowMoveList = !*noMoveList

	notationMap := map[string]config.MoveNotation{
		"coord": config.Coordinate,
		"uci":   config.Coordinate,
	}
	if n, ok := notationMap[strings.ToLower(*moveNotation)]; ok {
		cfg.Output.Notation = n
	} else {
		cfg.Output.Notation = config.SAN
	}
}

// parseSide reads "w"/"white" or "b"/"black".
func parseSide(s string) (chess.Side, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "w", "white":
		return chess.White, true
	case "b", "black":
		return chess.Black, true
	}
	return chess.NoSide, false
}
