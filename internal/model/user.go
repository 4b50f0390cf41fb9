package model

import "time"

// User is a registered account. Guest sessions have no user record.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	DisplayName  *string    `json:"display_name,omitempty"`
	CreatedOn    time.Time  `json:"created_on"`
	LastLoginOn  *time.Time `json:"last_login_on,omitempty"`
}

// Session is an opaque-token session. The raw token is returned to the client
// once; only its SHA-256 hash is stored.
type Session struct {
	ID        string    `json:"id"`
	TokenHash string    `json:"-"`
	// UserID is nil for anonymous guest sessions.
	UserID    *string   `json:"user_id,omitempty"`
	ExpiresOn time.Time `json:"expires_on"`
	CreatedOn time.Time `json:"created_on"`
}

// Expired reports whether the session is past its expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresOn)
}

// ProfileKey returns the identity key used for profile persistence:
// the user ID when logged in, otherwise the session ID.
func (s *Session) ProfileKey() string {
	if s.UserID != nil && *s.UserID != "" {
		return *s.UserID
	}
	return s.ID
}

// Password constraints.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 128
)

// RegisterRequest is the body of POST /v1/auth/register.
type RegisterRequest struct {
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	DisplayName *string `json:"display_name,omitempty"`
}

// LoginRequest is the body of POST /v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse carries the raw session token back to the client.
type SessionResponse struct {
	Token     string    `json:"token"`
	ExpiresOn time.Time `json:"expires_on"`
	UserID    *string   `json:"user_id,omitempty"`
}
