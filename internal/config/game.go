package config

import (
	"fmt"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// GameConfig holds settings for who plays and from where.
type GameConfig struct {
	// Players is the number of human players: 1 plays the AI, 2 play each
	// other.
	Players int

	// HumanSide is the side the human plays in a one-player game.
	HumanSide chess.Side

	// StartFEN replaces the standard starting position when set.
	StartFEN string
}

// NewGameConfig creates a GameConfig for one human playing White.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		Players:   1,
		HumanSide: chess.White,
	}
}

// IsHuman reports whether side is played from the keyboard.
func (g *GameConfig) IsHuman(side chess.Side) bool {
	return g.Players == 2 || side == g.HumanSide
}

// Validate checks the player count and the human side.
func (g *GameConfig) Validate() error {
	if g.Players != 1 && g.Players != 2 {
		return fmt.Errorf("players must be 1 or 2, got %d: %w", g.Players, errors.ErrInvalidConfig)
	}
	if g.HumanSide != chess.White && g.HumanSide != chess.Black {
		return fmt.Errorf("human side must be White or Black, got %v: %w", g.HumanSide, errors.ErrInvalidConfig)
	}
	return nil
}
