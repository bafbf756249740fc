// Package config provides configuration for the kingknight tool.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/kingknight-go/internal/errors"
	"github.com/lgbarn/kingknight-go/internal/kingknight"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// JSONFormat writes reports as JSON instead of text
	JSONFormat bool

	// Start is the position to solve or play from
	Start kingknight.Position

	// Play is a move line to replay instead of solving (empty = solve)
	Play []kingknight.Move

	Search *SearchConfig
	Survey *SurveyConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Start:      kingknight.DefaultStart,
		Search:     NewSearchConfig(),
		Survey:     NewSurveyConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks the configuration and its sub-configurations.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Start.Validate(); err != nil {
		return fmt.Errorf("start position: %w: %w", err, errors.ErrInvalidConfig)
	}
	if c.Survey.Enabled && len(c.Play) > 0 {
		return fmt.Errorf("survey and play are exclusive: %w", errors.ErrInvalidConfig)
	}
	if err := c.Search.Validate(); err != nil {
		return err
	}
	return c.Survey.Validate()
}

// Log writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Log(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
