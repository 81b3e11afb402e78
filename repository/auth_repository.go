package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"estudio-luma-me/db"
	"estudio-luma-me/models"
)

// AuthRepository handles database operations for admin users and sessions
// Implements AuthRepositoryInterface
type AuthRepository struct{}

// NewAuthRepository creates a new AuthRepository
func NewAuthRepository() *AuthRepository {
	return &AuthRepository{}
}

// Ensure AuthRepository implements AuthRepositoryInterface
var _ AuthRepositoryInterface = (*AuthRepository)(nil)

// GetUserByEmail retrieves an admin user by email. A miss is reported as
// sql.ErrNoRows; callers must not tell the operator which part of the
// credentials was wrong.
func (r *AuthRepository) GetUserByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	var user models.AdminUser
	query := `SELECT id, email, password_hash FROM admin_users WHERE email = $1`

	err := db.DB.QueryRowContext(ctx, query, email).Scan(&user.ID, &user.Email, &user.PasswordHash)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("admin user %s: %w", email, sql.ErrNoRows)
		}
		log.Printf("❌ Error fetching admin user: %v", err)
		return nil, fmt.Errorf("failed to get admin user: %w", err)
	}

	return &user, nil
}

// InsertSession stores a new admin session
func (r *AuthRepository) InsertSession(ctx context.Context, session *models.Session) error {
	query := `INSERT INTO sessions (token, email, expires_at) VALUES ($1, $2, $3)`

	if _, err := db.DB.ExecContext(ctx, query, session.Token, session.Email, session.ExpiresAt); err != nil {
		log.Printf("❌ Error inserting session: %v", err)
		return fmt.Errorf("failed to insert session: %w", err)
	}

	log.Printf("✅ Session created for %s", session.Email)
	return nil
}

// GetSession retrieves a live session by token. Expired sessions are
// filtered out in the query so they behave exactly like missing ones.
func (r *AuthRepository) GetSession(ctx context.Context, token string) (*models.Session, error) {
	var session models.Session
	query := `SELECT token, email, expires_at FROM sessions WHERE token = $1 AND expires_at > now()`

	err := db.DB.QueryRowContext(ctx, query, token).Scan(&session.Token, &session.Email, &session.ExpiresAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("session: %w", sql.ErrNoRows)
		}
		log.Printf("❌ Error fetching session: %v", err)
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return &session, nil
}

// DeleteSession removes a session by token. Deleting an already-gone
// session is not an error; sign-out is idempotent.
func (r *AuthRepository) DeleteSession(ctx context.Context, token string) error {
	if _, err := db.DB.ExecContext(ctx, `DELETE FROM sessions WHERE token = $1`, token); err != nil {
		log.Printf("❌ Error deleting session: %v", err)
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
