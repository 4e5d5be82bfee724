package testutil

import (
	"fmt"

	"vocabcards/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestItem creates a card whose fields derive from word
func NewTestItem(word string) domain.VocabItem {
	return domain.VocabItem{
		Image:       "/images/" + word + ".jpg",
		Word:        word,
		Sentence:    fmt.Sprintf("This is a %s.", word),
		Translation: word + "-translation",
	}
}

// NewTestSet creates a set with one item per word
func NewTestSet(id, name string, words ...string) domain.VocabSet {
	items := make([]domain.VocabItem, 0, len(words))
	for _, w := range words {
		items = append(items, NewTestItem(w))
	}
	return domain.VocabSet{
		ID:    id,
		Name:  name,
		Items: items,
	}
}

// NewTestCatalog creates a catalog from sets
func NewTestCatalog(sets ...domain.VocabSet) *domain.Catalog {
	if sets == nil {
		sets = []domain.VocabSet{}
	}
	return &domain.Catalog{Sets: sets}
}
