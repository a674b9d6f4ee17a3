package repositories

import (
	"database/sql"
	"fmt"

	"github.com/14-harish/showtracker/internal/models"
	"github.com/14-harish/showtracker/internal/shared"
)

// SessionRepository persists the logged-in user across process restarts.
//
// At most one session row exists at a time; Save replaces any previous row.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new [SessionRepository] with the given database connection
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Save stores the user as the current session, replacing any existing one.
func (r *SessionRepository) Save(user models.User) error {
	if user.Username == "" {
		return fmt.Errorf("%w: username required", shared.ErrInvalidInput)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM session"); err != nil {
		return fmt.Errorf("failed to clear previous session: %w", err)
	}

	query := `INSERT INTO session (id, username, email) VALUES (?, ?, ?)`
	if _, err := tx.Exec(query, shared.GenerateID(), user.Username, user.Email); err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit session: %w", err)
	}

	return nil
}

// Load restores the persisted session.
//
// Returns nil with no error when no session exists. The stored identity is
// trusted as-is; credentials are not re-validated against the backend. A row
// that cannot be read is cleared and treated as logged out.
func (r *SessionRepository) Load() (*models.User, error) {
	query := `SELECT username, email FROM session ORDER BY created_at DESC LIMIT 1`

	var user models.User
	err := r.db.QueryRow(query).Scan(&user.Username, &user.Email)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		// Corrupt row: drop it rather than wedging startup.
		if clearErr := r.Clear(); clearErr != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrSessionCorrupt, clearErr)
		}
		return nil, nil
	}

	if user.Username == "" {
		if err := r.Clear(); err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrSessionCorrupt, err)
		}
		return nil, nil
	}

	return &user, nil
}

// Clear removes the persisted session.
func (r *SessionRepository) Clear() error {
	if _, err := r.db.Exec("DELETE FROM session"); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
