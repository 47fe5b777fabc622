package group

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by all configuration validation errors.
var ErrInvalidConfig = errors.New("invalid grouping configuration")

// Config holds configuration options for grouping and attribution.
type Config struct {
	// MaxTitleLen is the maximum character count for a block to qualify
	// as a figure title. Intervening text longer than this also closes
	// an open column group. Must be positive.
	// Default: 45
	MaxTitleLen int

	// MaxGapParas is the maximum number of blocks allowed between two
	// images' owning blocks for them to merge into one group. Must be
	// non-negative.
	// Default: 1
	MaxGapParas int

	// PageWidthRatio is the fraction of the page's usable width that a
	// column group's summed image widths must fit within to be relabeled
	// as a row. Must be in (0, 1].
	// Default: 0.95
	PageWidthRatio float64
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTitleLen:    45,
		MaxGapParas:    1,
		PageWidthRatio: 0.95,
	}
}

// Validate checks the configuration, returning an error wrapping
// ErrInvalidConfig on the first violation. Grouping never starts with an
// invalid configuration.
func (c Config) Validate() error {
	if c.MaxTitleLen <= 0 {
		return fmt.Errorf("%w: max title length must be positive, got %d", ErrInvalidConfig, c.MaxTitleLen)
	}
	if c.MaxGapParas < 0 {
		return fmt.Errorf("%w: max paragraph gap must be non-negative, got %d", ErrInvalidConfig, c.MaxGapParas)
	}
	if c.PageWidthRatio <= 0 || c.PageWidthRatio > 1 {
		return fmt.Errorf("%w: page width ratio must be in (0, 1], got %g", ErrInvalidConfig, c.PageWidthRatio)
	}
	return nil
}
