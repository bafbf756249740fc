package config

import (
	"fmt"

	"github.com/lgbarn/kingknight-go/internal/errors"
)

// SearchConfig holds settings for a single breadth-first search.
type SearchConfig struct {
	// MaxStates bounds the distinct states a search may discover (0 = unlimited)
	MaxStates int
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{}
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	if s.MaxStates < 0 {
		return fmt.Errorf("max states %d is negative: %w", s.MaxStates, errors.ErrInvalidConfig)
	}
	return nil
}
