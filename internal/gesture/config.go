package gesture

import "fmt"

// Config holds the distances that turn a drag into a command. Units are
// whatever the input source reports: pixels for browsers, cells for a
// terminal.
type Config struct {
	// HorizontalThreshold is the displacement that commits a swipe
	HorizontalThreshold float64
	// VerticalTolerance is the vertical drift beyond which a move counts as scrolling
	VerticalTolerance float64
	// JitterThreshold separates a tap from a drag
	JitterThreshold float64
	// MaxVisualOffset clamps the feedback offset
	MaxVisualOffset float64
}

// DefaultConfig returns pixel values for pointer and touch input
func DefaultConfig() Config {
	return Config{
		HorizontalThreshold: 40,
		VerticalTolerance:   60,
		JitterThreshold:     6,
		MaxVisualOffset:     120,
	}
}

// TerminalConfig returns values sized for terminal cells
func TerminalConfig() Config {
	return Config{
		HorizontalThreshold: 6,
		VerticalTolerance:   2,
		JitterThreshold:     1,
		MaxVisualOffset:     12,
	}
}

// Validate rejects non-positive distances
func (c Config) Validate() error {
	switch {
	case c.HorizontalThreshold <= 0:
		return fmt.Errorf("horizontal threshold must be positive, got %v", c.HorizontalThreshold)
	case c.VerticalTolerance <= 0:
		return fmt.Errorf("vertical tolerance must be positive, got %v", c.VerticalTolerance)
	case c.JitterThreshold < 0:
		return fmt.Errorf("jitter threshold must not be negative, got %v", c.JitterThreshold)
	case c.MaxVisualOffset <= 0:
		return fmt.Errorf("max visual offset must be positive, got %v", c.MaxVisualOffset)
	}
	return nil
}
