// Package session holds the study session state machine: which set is
// active, the shuffled traversal order, the position in it and whether the
// current translation is revealed.
package session

import "vocabcards/internal/domain"

// State is an immutable session value. Every transition returns a new State;
// the order slice is never mutated after Select creates it, so copies can
// share it safely.
type State struct {
	set      *domain.VocabSet
	items    []domain.VocabItem
	order    []int
	position int
	revealed bool
}

// Select starts a session over setID. An unknown id falls back to the first
// set so a stale stored preference still opens something; an empty catalog
// yields an empty session.
func Select(catalog *domain.Catalog, setID string, rng Rand) State {
	if catalog == nil || len(catalog.Sets) == 0 {
		return State{}
	}

	set, ok := catalog.Find(setID)
	if !ok {
		set = &catalog.Sets[0]
	}

	items := make([]domain.VocabItem, len(set.Items))
	copy(items, set.Items)

	return State{
		set:   set,
		items: items,
		order: Shuffle(len(items), rng),
	}
}

// Current returns items[order[position]]
func (s State) Current() (domain.VocabItem, bool) {
	if len(s.items) == 0 {
		return domain.VocabItem{}, false
	}
	return s.items[s.order[s.position]], true
}

// Advance moves to the next card, saturating at the last one
func (s State) Advance() State {
	if s.position < len(s.items)-1 {
		s.position++
		s.revealed = false
	}
	return s
}

// Retreat moves to the previous card, saturating at the first one
func (s State) Retreat() State {
	if s.position > 0 {
		s.position--
		s.revealed = false
	}
	return s
}

// ToggleReveal flips the translation visibility
func (s State) ToggleReveal() State {
	s.revealed = !s.revealed
	return s
}

// Set returns the active set, nil before the first selection or when the
// catalog was empty
func (s State) Set() *domain.VocabSet {
	return s.set
}

// SetID returns the id of the active set, the value to persist as preferred
func (s State) SetID() string {
	if s.set == nil {
		return ""
	}
	return s.set.ID
}

// Position is the zero-based index into the order
func (s State) Position() int {
	return s.position
}

// Total is the number of cards in the session
func (s State) Total() int {
	return len(s.items)
}

// Revealed reports whether the translation is shown
func (s State) Revealed() bool {
	return s.revealed
}

// Empty reports whether there is no current item
func (s State) Empty() bool {
	return len(s.items) == 0
}

// AtStart reports whether Retreat would be a no-op
func (s State) AtStart() bool {
	return s.position == 0
}

// AtEnd reports whether Advance would be a no-op
func (s State) AtEnd() bool {
	return s.position >= len(s.items)-1
}

// Order returns a copy of the traversal permutation
func (s State) Order() []int {
	order := make([]int, len(s.order))
	copy(order, s.order)
	return order
}
