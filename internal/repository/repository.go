package repository

import (
	"vocabcards/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	IsAuthorized(userID int64) (bool, error)
	AuthorizeUser(userID int64) error
	EnsureUserExists(userID int64, username string) error
}

// PreferenceRepository stores the preferred set and theme per user
type PreferenceRepository interface {
	GetPreferences(userID int64) (domain.Preferences, error)
	SavePreferredSet(userID int64, setID string) error
	SaveTheme(userID int64, theme domain.Theme) error
}
