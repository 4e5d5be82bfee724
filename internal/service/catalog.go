package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"vocabcards/internal/catalog"
	"vocabcards/internal/domain"

	"go.uber.org/zap"
)

// CatalogService holds the loaded vocabulary catalog
type CatalogService struct {
	source  catalog.Source
	timeout time.Duration
	logger  *zap.Logger

	mu       sync.RWMutex
	current  *domain.Catalog
	loadedAt time.Time
}

// NewCatalogService creates a service with an empty catalog. timeout bounds
// each fetch; zero leaves it to the caller's context.
func NewCatalogService(source catalog.Source, timeout time.Duration, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		source:  source,
		timeout: timeout,
		logger:  logger,
		current: &domain.Catalog{Sets: []domain.VocabSet{}},
	}
}

// Load fetches the catalog. On failure the previous catalog stays in place
// and the returned error wraps a catalog.DataError.
func (s *CatalogService) Load(ctx context.Context) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	fetched, err := s.source.Fetch(ctx)
	if err != nil {
		s.logger.Error("Failed to load catalog",
			zap.String("source", describeSource(s.source)),
			zap.Error(err),
		)
		return fmt.Errorf("load catalog: %w", err)
	}

	s.mu.Lock()
	s.current = fetched
	s.loadedAt = time.Now()
	s.mu.Unlock()

	s.logger.Info("Catalog loaded",
		zap.String("source", describeSource(s.source)),
		zap.Int("sets", len(fetched.Sets)),
	)
	return nil
}

// Catalog returns the current catalog, never nil
func (s *CatalogService) Catalog() *domain.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Sets lists set summaries in catalog order
func (s *CatalogService) Sets() []domain.SetSummary {
	return s.Catalog().Summaries()
}

// Set returns one set by id
func (s *CatalogService) Set(id string) (*domain.VocabSet, bool) {
	return s.Catalog().Find(id)
}

// LoadedAt returns when the catalog was last loaded, zero if never
func (s *CatalogService) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Watch reloads the catalog every interval until ctx is done. A failed
// reload keeps serving the previous catalog. A non-positive interval
// disables reloading.
func (s *CatalogService) Watch(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		s.logger.Info("Catalog reload disabled")
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Catalog reload job stopped")
			return
		case <-ticker.C:
			s.logger.Debug("Reloading catalog")
			// errors are logged by Load
			_ = s.Load(ctx)
		}
	}
}

func describeSource(source catalog.Source) string {
	if str, ok := source.(fmt.Stringer); ok {
		return str.String()
	}
	return fmt.Sprintf("%T", source)
}
