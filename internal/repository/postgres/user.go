package postgres

import (
	"database/sql"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// IsAuthorized checks if user passed the bot password
func (r *UserRepo) IsAuthorized(userID int64) (bool, error) {
	var authorized bool
	query := `SELECT authorized FROM users WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&authorized)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return authorized, nil
}

// AuthorizeUser marks user as authorized and stamps the time
func (r *UserRepo) AuthorizeUser(userID int64) error {
	query := `
		INSERT INTO users (user_id, authorized, authorized_at)
		VALUES ($1, TRUE, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET authorized = TRUE, authorized_at = NOW()
	`
	_, err := r.db.Exec(query, userID)
	return err
}

// EnsureUserExists creates the user row, keeping the username current
func (r *UserRepo) EnsureUserExists(userID int64, username string) error {
	query := `
		INSERT INTO users (user_id, username, authorized)
		VALUES ($1, $2, FALSE)
		ON CONFLICT (user_id)
		DO UPDATE SET username = EXCLUDED.username
	`
	_, err := r.db.Exec(query, userID, username)
	return err
}
