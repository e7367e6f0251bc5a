package config

import (
	"io"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithPlayers sets the number of human players.
func (b *ConfigBuilder) WithPlayers(n int) *ConfigBuilder {
	b.cfg.Game.Players = n
	return b
}

// WithHumanSide sets the side the human plays against the AI.
func (b *ConfigBuilder) WithHumanSide(side chess.Side) *ConfigBuilder {
	b.cfg.Game.HumanSide = side
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Game.StartFEN = fen
	return b
}

// WithDepth sets the search depth in plies.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Search.Depth = depth
	return b
}

// WithWorkers sets the number of root search workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Search.Workers = n
	return b
}

// WithCaptureFirst enables capture-first move ordering.
func (b *ConfigBuilder) WithCaptureFirst(enabled bool) *ConfigBuilder {
	b.cfg.Search.CaptureFirst = enabled
	return b
}

// WithNotation sets the move list notation.
func (b *ConfigBuilder) WithNotation(n MoveNotation) *ConfigBuilder {
	b.cfg.Output.Notation = n
	return b
}

// WithUnicode enables chess glyphs.
func (b *ConfigBuilder) WithUnicode(enabled bool) *ConfigBuilder {
	b.cfg.Output.Unicode = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
