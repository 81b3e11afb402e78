package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"estudio-luma-me/models"
	"estudio-luma-me/repository"
)

// ErrInvalidCredentials reports a failed sign-in without revealing which
// part of the credentials was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// sessionTTL is how long an admin session lives before the operator has to
// sign in again.
const sessionTTL = 24 * time.Hour

// AuthService handles the single-admin-role sign-in flow and session
// checks. Implements AuthServiceInterface
type AuthService struct {
	repo repository.AuthRepositoryInterface
	now  func() time.Time
}

// NewAuthService creates a new AuthService. A nil clock defaults to
// time.Now.
func NewAuthService(repo repository.AuthRepositoryInterface, now func() time.Time) *AuthService {
	if now == nil {
		now = time.Now
	}
	return &AuthService{repo: repo, now: now}
}

// Ensure AuthService implements AuthServiceInterface
var _ AuthServiceInterface = (*AuthService)(nil)

// SignIn verifies the operator's credentials and opens a new session.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Printf("⚠️  Sign-in attempt for unknown email: %s", email)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to sign in: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Printf("⚠️  Sign-in attempt with wrong password for: %s", email)
		return nil, ErrInvalidCredentials
	}

	session := &models.Session{
		Token:     uuid.NewString(),
		Email:     user.Email,
		ExpiresAt: s.now().Add(sessionTTL),
	}

	if err := s.repo.InsertSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	log.Printf("✅ Admin signed in: %s", email)
	return session, nil
}

// SignOut closes the session. Idempotent: an unknown token is not an
// error.
func (s *AuthService) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.repo.DeleteSession(ctx, token)
}

// GetSession returns the live session for a token, or nil when there is
// none (missing and expired behave identically).
func (s *AuthService) GetSession(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, nil
	}

	session, err := s.repo.GetSession(ctx, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to check session: %w", err)
	}
	return session, nil
}
