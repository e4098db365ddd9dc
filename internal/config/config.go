// Package config holds the tunable rules of a match and the limits of the
// match registry.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates invalid configuration values.
var ErrInvalidConfig = errors.New("invalid configuration")

// Match configures the rule variants a single match plays by.
type Match struct {
	// StrictCastling forbids castling out of check or across an attacked
	// square. When false, only the destination square is checked.
	StrictCastling bool

	// AutoPromotion is the piece type ("queen", "rook", "bishop" or
	// "knight") a pawn on the last rank becomes immediately. Empty leaves
	// the pawn pending until the caller promotes it.
	AutoPromotion string
}

// Registry limits the in-process match registry.
type Registry struct {
	MaxMatches int // 0 = unlimited
}

// Config holds all configuration.
type Config struct {
	Match    Match
	Registry Registry
}

// NewMatchConfig returns the default rules: strict castling, auto-queen.
func NewMatchConfig() Match {
	return Match{
		StrictCastling: true,
		AutoPromotion:  "queen",
	}
}

func NewRegistryConfig() Registry {
	return Registry{}
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Match:    NewMatchConfig(),
		Registry: NewRegistryConfig(),
	}
}

// Validate reports the first invalid value, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	if err := c.Match.Validate(); err != nil {
		return err
	}
	return c.Registry.Validate()
}

func (m Match) Validate() error {
	switch m.AutoPromotion {
	case "", "queen", "rook", "bishop", "knight":
		return nil
	}
	return fmt.Errorf("%w: auto promotion to %q", ErrInvalidConfig, m.AutoPromotion)
}

func (r Registry) Validate() error {
	if r.MaxMatches < 0 {
		return fmt.Errorf("%w: max matches %d", ErrInvalidConfig, r.MaxMatches)
	}
	return nil
}
