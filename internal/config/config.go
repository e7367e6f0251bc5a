// Package config provides configuration for the chess shell and search.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// Config holds all program configuration, grouped by concern.
type Config struct {
	Game   *GameConfig
	Search *SearchConfig
	Output *OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Game:       NewGameConfig(),
		Search:     NewSearchConfig(),
		Output:     NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream the board and prompts are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the stream log lines are written to.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks every sub-configuration.
func (c *Config) Validate() error {
	if c.Game == nil || c.Search == nil || c.Output == nil {
		return fmt.Errorf("missing sub-configuration: %w", errors.ErrInvalidConfig)
	}
	if err := c.Game.Validate(); err != nil {
		return err
	}
	return c.Search.Validate()
}
