package service

import (
	"context"

	"estudio-luma-me/models"
)

// AuthServiceInterface defines the contract for admin authentication
type AuthServiceInterface interface {
	SignIn(ctx context.Context, email, password string) (*models.Session, error)
	SignOut(ctx context.Context, token string) error
	GetSession(ctx context.Context, token string) (*models.Session, error)
}
