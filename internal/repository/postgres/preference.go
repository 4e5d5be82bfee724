package postgres

import (
	"database/sql"

	"vocabcards/internal/domain"
)

// PreferenceRepo implements repository.PreferenceRepository
type PreferenceRepo struct {
	db *sql.DB
}

// NewPreferenceRepo creates a new preference repository
func NewPreferenceRepo(db *sql.DB) *PreferenceRepo {
	return &PreferenceRepo{db: db}
}

// GetPreferences returns stored preferences, or defaults for a user that has none
func (r *PreferenceRepo) GetPreferences(userID int64) (domain.Preferences, error) {
	var setID sql.NullString
	var theme string
	query := `SELECT preferred_set_id, theme FROM preferences WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&setID, &theme)

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
	query := `
		INSERT INTO preferences (user_id, preferred_set_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id)
		DO UPDATE SET preferred_set_id = EXCLUDED.preferred_set_id, updated_at = NOW()
	`
	_, err := r.db.Exec(query, userID, setID)
	return err
}

// SaveTheme remembers the color scheme
func (r *PreferenceRepo) SaveTheme(userID int64, theme domain.Theme) error {
	query := `
		INSERT INTO preferences (user_id, theme)
		VALUES ($1, $2)
		ON CONFLICT (user_id)
		DO UPDATE SET theme = EXCLUDED.theme, updated_at = NOW()
	`
	_, err := r.db.Exec(query, userID, string(theme))
	return err
}
