package session

import "vocabcards/internal/domain"

// Controller owns one session for a single front end. It is not safe for
// concurrent use; adapters serving several goroutines lock around it.
type Controller struct {
	rng   Rand
	state State
}

// NewController creates a controller with no active set. A nil rng uses the
// global generator.
func NewController(rng Rand) *Controller {
	return &Controller{rng: rng}
}

// Select replaces the session with a fresh shuffle of setID
func (c *Controller) Select(catalog *domain.Catalog, setID string) State {
	c.state = Select(catalog, setID, c.rng)
	return c.state
}

// Advance moves forward one card
func (c *Controller) Advance() State {
	c.state = c.state.Advance()
	return c.state
}

// Retreat moves back one card
func (c *Controller) Retreat() State {
	c.state = c.state.Retreat()
	return c.state
}

// ToggleReveal flips the translation visibility
func (c *Controller) ToggleReveal() State {
	c.state = c.state.ToggleReveal()
	return c.state
}

// State returns the current session
func (c *Controller) State() State {
	return c.state
}

// Current returns the displayed item
func (c *Controller) Current() (domain.VocabItem, bool) {
	return c.state.Current()
}
