package config

import (
	"fmt"

	"github.com/lgbarn/kingknight-go/internal/errors"
)

// SurveyConfig holds settings for solving every start position at once.
type SurveyConfig struct {
	// Enabled runs the survey instead of solving Config.Start
	Enabled bool

	// Workers is the number of parallel searches (0 = one per CPU)
	Workers int

	// BufferSize is the worker pool channel capacity
	BufferSize int
}

// NewSurveyConfig creates a SurveyConfig with default values.
func NewSurveyConfig() *SurveyConfig {
	return &SurveyConfig{BufferSize: 64}
}

// Validate checks that the survey configuration is valid.
func (s *SurveyConfig) Validate() error {
	if s.Workers < 0 {
		return fmt.Errorf("workers %d is negative: %w", s.Workers, errors.ErrInvalidConfig)
	}
	if s.BufferSize < 1 {
		return fmt.Errorf("buffer size %d must be positive: %w", s.BufferSize, errors.ErrInvalidConfig)
	}
	return nil
}
