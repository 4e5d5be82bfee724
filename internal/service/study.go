package service

import (
	"sync"

	"vocabcards/internal/domain"
	"vocabcards/internal/repository"
	"vocabcards/internal/session"

	"go.uber.org/zap"
)

// CatalogProvider returns the catalog to study from
type CatalogProvider interface {
	Catalog() *domain.Catalog
}

// StudyService owns one study session per user and persists their
// preferences. Sessions live in memory for the lifetime of the process.
type StudyService struct {
	catalogs CatalogProvider
	prefRepo repository.PreferenceRepository
	logger   *zap.Logger

	mu       sync.Mutex
	rng      session.Rand
	sessions map[int64]session.State
}

// NewStudyService creates a study service. A nil rng uses the global
// generator.
func NewStudyService(
	catalogs CatalogProvider,
	prefRepo repository.PreferenceRepository,
	rng session.Rand,
	logger *zap.Logger,
) *StudyService {
	return &StudyService{
		catalogs: catalogs,
		prefRepo: prefRepo,
		logger:   logger,
		rng:      rng,
		sessions: make(map[int64]session.State),
	}
}

// SelectSet starts a freshly shuffled session. Unknown ids fall back to the
// first set; the set actually chosen becomes the user's preferred set.
func (s *StudyService) SelectSet(userID int64, setID string) session.State {
	s.mu.Lock()
	state := session.Select(s.catalogs.Catalog(), setID, s.rng)
	s.sessions[userID] = state
	s.mu.Unlock()

	if state.SetID() == "" {
		s.logger.Warn("No sets to select", zap.Int64("user_id", userID))
		return state
	}

	if state.SetID() != setID {
		s.logger.Info("Requested set not found, using first set",
			zap.Int64("user_id", userID),
			zap.String("requested", setID),
			zap.String("set_id", state.SetID()),
		)
	}

	if err := s.prefRepo.SavePreferredSet(userID, state.SetID()); err != nil {
		s.logger.Warn("Failed to save preferred set",
			zap.Int64("user_id", userID),
			zap.String("set_id", state.SetID()),
			zap.Error(err),
		)
	}
	return state
}

// StartPreferred selects the user's stored set, or the first set when none
// is stored or it no longer exists
func (s *StudyService) StartPreferred(userID int64) session.State {
	prefs, err := s.prefRepo.GetPreferences(userID)
	if err != nil {
		s.logger.Warn("Failed to load preferences, using defaults",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		prefs = domain.DefaultPreferences()
	}
	return s.SelectSet(userID, prefs.PreferredSetID)
}

// Resume returns the user's running session, starting the preferred set when
// there is none
func (s *StudyService) Resume(userID int64) session.State {
	if state, ok := s.Current(userID); ok {
		return state
	}
	return s.StartPreferred(userID)
}

// Current returns the user's session, false if none was started
func (s *StudyService) Current(userID int64) (session.State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.sessions[userID]
	return state, ok
}

// Next advances the user's session
func (s *StudyService) Next(userID int64) (session.State, bool) {
	return s.update(userID, session.State.Advance)
}

// Prev moves the user's session back
func (s *StudyService) Prev(userID int64) (session.State, bool) {
	return s.update(userID, session.State.Retreat)
}

// Flip toggles the translation of the current card
func (s *StudyService) Flip(userID int64) (session.State, bool) {
	return s.update(userID, session.State.ToggleReveal)
}

// Close forgets the user's session
func (s *StudyService) Close(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// Preferences returns stored preferences
func (s *StudyService) Preferences(userID int64) (domain.Preferences, error) {
	return s.prefRepo.GetPreferences(userID)
}

// ToggleTheme flips and stores the user's theme
func (s *StudyService) ToggleTheme(userID int64) (domain.Theme, error) {
	prefs, err := s.prefRepo.GetPreferences(userID)
	if err != nil {
		return "", err
	}

	theme := prefs.Theme.Toggle()
	if err := s.prefRepo.SaveTheme(userID, theme); err != nil {
		return prefs.Theme, err
	}

	s.logger.Info("Theme changed", zap.Int64("user_id", userID), zap.String("theme", string(theme)))
	return theme, nil
}

func (s *StudyService) update(userID int64, step func(session.State) session.State) (session.State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[userID]
	if !ok {
		return session.State{}, false
	}
	state = step(state)
	s.sessions[userID] = state
	return state, true
}
