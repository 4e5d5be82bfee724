package sqlite

import (
	"database/sql"

	"vocabcards/internal/domain"
)

// PreferenceRepo implements repository.PreferenceRepository on SQLite
type PreferenceRepo struct {
	db *sql.DB
}

// NewPreferenceRepo creates a new preference repository
func NewPreferenceRepo(db *sql.DB) *PreferenceRepo {
	return &PreferenceRepo{db: db}
}

// GetPreferences returns stored preferences or defaults
func (r *PreferenceRepo) GetPreferences(userID int64) (domain.Preferences, error) {
	var setID sql.NullString
	var theme string
	err := r.db.QueryRow(
		`SELECT preferred_set_id, theme FROM preferences WHERE user_id = ?`,
		userID,
	).Scan(&setID, &theme)

	if err == sql.ErrNoRows {
		return domain.DefaultPreferences(), nil
	}
	if err != nil {
		return domain.Preferences{}, err
	}

	return domain.Preferences{
		PreferredSetID: setID.String,
		Theme:          domain.ParseTheme(theme),
	}, nil
}

// SavePreferredSet remembers the last selected set
func (r *PreferenceRepo) SavePreferredSet(userID int64, setID string) error {
	_, err := r.db.Exec(`
		INSERT INTO preferences (user_id, preferred_set_id)
		VALUES (?, ?)
		ON CONFLICT (user_id)
		DO UPDATE SET preferred_set_id = excluded.preferred_set_id, updated_at = unixepoch()
	`, userID, setID)
	return err
}

// SaveTheme remembers the color scheme
func (r *PreferenceRepo) SaveTheme(userID int64, theme domain.Theme) error {
	_, err := r.db.Exec(`
		INSERT INTO preferences (user_id, theme)
		VALUES (?, ?)
		ON CONFLICT (user_id)
		DO UPDATE SET theme = excluded.theme, updated_at = unixepoch()
	`, userID, string(theme))
	return err
}
