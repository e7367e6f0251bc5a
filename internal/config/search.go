package config

import (
	"fmt"

	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// MaxDepth bounds the search depth. Plain minimax grows by roughly the
// branching factor per ply, so deeper searches do not finish in play.
const MaxDepth = 8

// SearchConfig holds settings for the minimax search.
type SearchConfig struct {
	// Depth is the number of plies searched.
	Depth int

	// Workers is the number of goroutines used to search root moves;
	// 1 searches sequentially.
	Workers int

	// CaptureFirst searches captures before quiet moves.
	CaptureFirst bool
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:   3,
		Workers: 1,
	}
}

// Validate checks the depth and worker count.
func (s *SearchConfig) Validate() error {
	if s.Depth < 1 || s.Depth > MaxDepth {
		return fmt.Errorf("search depth must be in 1..%d, got %d: %w", MaxDepth, s.Depth, errors.ErrInvalidConfig)
	}
	if s.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", s.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
