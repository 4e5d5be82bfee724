package testutil

import (
	"context"

	"vocabcards/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) IsAuthorized(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) AuthorizeUser(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) EnsureUserExists(userID int64, username string) error {
	args := m.Called(userID, username)
	return args.Error(0)
}

// MockPreferenceRepository is a mock for PreferenceRepository
type MockPreferenceRepository struct {
	mock.Mock
}

func (m *MockPreferenceRepository) GetPreferences(userID int64) (domain.Preferences, error) {
	args := m.Called(userID)
	return args.Get(0).(domain.Preferences), args.Error(1)
}

func (m *MockPreferenceRepository) SavePreferredSet(userID int64, setID string) error {
	args := m.Called(userID, setID)
	return args.Error(0)
}

func (m *MockPreferenceRepository) SaveTheme(userID int64, theme domain.Theme) error {
	args := m.Called(userID, theme)
	return args.Error(0)
}

// MockSource is a mock for catalog.Source
type MockSource struct {
	mock.Mock
}

func (m *MockSource) Fetch(ctx context.Context) (*domain.Catalog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Catalog), args.Error(1)
}
