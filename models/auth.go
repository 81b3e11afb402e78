package models

import "time"

// AdminUser is an operator account for the admin dashboard. PasswordHash is
// a bcrypt hash and never leaves the backend.
type AdminUser struct {
	ID           int    `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// Session is an authenticated admin session. The token travels as a bearer
// credential; an expired session is equivalent to no session.
type Session struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
