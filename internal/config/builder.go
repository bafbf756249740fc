package config

import (
	"io"

	"github.com/lgbarn/kingknight-go/internal/kingknight"
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

// WithStart sets the start position.
func (b *ConfigBuilder) WithStart(p kingknight.Position) *ConfigBuilder {
	b.cfg.Start = p
	return b
}

// WithPlay sets a move line to replay.
func (b *ConfigBuilder) WithPlay(moves []kingknight.Move) *ConfigBuilder {
	b.cfg.Play = moves
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.JSONFormat = enabled
	return b
}

// WithMaxStates bounds each search.
func (b *ConfigBuilder) WithMaxStates(n int) *ConfigBuilder {
	b.cfg.Search.MaxStates = n
	return b
}

// WithSurvey enables the all-positions survey with the given worker count.
func (b *ConfigBuilder) WithSurvey(enabled bool, workers int) *ConfigBuilder {
	b.cfg.Survey.Enabled = enabled
	b.cfg.Survey.Workers = workers
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

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
