package domain

// DefaultEmoji is shown for sets that do not carry their own glyph
const DefaultEmoji = "📚"

// VocabItem is one flashcard
type VocabItem struct {
	Image       string `json:"image" yaml:"image"`
	Word        string `json:"word" yaml:"word"`
	Sentence    string `json:"sentence" yaml:"sentence"`
	Translation string `json:"translation" yaml:"translation"`
}

// VocabSet is a named deck of items
type VocabSet struct {
	ID    string      `json:"id" yaml:"id"`
	Name  string      `json:"name" yaml:"name"`
	Emoji string      `json:"emoji,omitempty" yaml:"emoji,omitempty"`
	Items []VocabItem `json:"items" yaml:"items"`
}

// DisplayEmoji returns the set's emoji or the default glyph
func (s VocabSet) DisplayEmoji() string {
	if s.Emoji == "" {
		return DefaultEmoji
	}
	return s.Emoji
}

// Catalog is the root of the loaded data file
type Catalog struct {
	Sets []VocabSet `json:"sets" yaml:"sets"`
}

// SetSummary is a set without its items, for menus and listings
type SetSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

// Find returns the first set with the given id
func (c *Catalog) Find(id string) (*VocabSet, bool) {
	if c == nil {
		return nil, false
	}
	for i := range c.Sets {
		if c.Sets[i].ID == id {
			return &c.Sets[i], true
		}
	}
	return nil, false
}

// Summaries lists the sets in catalog order
func (c *Catalog) Summaries() []SetSummary {
	if c == nil {
		return []SetSummary{}
	}
	summaries := make([]SetSummary, 0, len(c.Sets))
	for _, s := range c.Sets {
		summaries = append(summaries, SetSummary{
			ID:    s.ID,
			Name:  s.Name,
			Emoji: s.DisplayEmoji(),
			Count: len(s.Items),
		})
	}
	return summaries
}
