package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/UtkarshSachan777/Glow-AI/internal/model"
	"github.com/UtkarshSachan777/Glow-AI/internal/repository"
)

// UserStore is the user persistence interface consumed by the auth service
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	TouchLastLogin(ctx context.Context, id string) error
}

// SessionStore is the session persistence interface consumed by the auth service
type SessionStore interface {
	Create(ctx context.Context, session *model.Session) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*model.Session, error)
	Delete(ctx context.Context, id string) error
}

// AuthService handles registration, login, and session validation. Sessions
// use opaque tokens: the raw token goes to the client once, only its SHA-256
// hash is stored.
type AuthService struct {
	users      UserStore
	sessions   SessionStore
	sessionTTL time.Duration
}

// AuthServiceConfig holds configuration for the auth service
type AuthServiceConfig struct {
	Users      UserStore
	Sessions   SessionStore
	SessionTTL time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	return &AuthService{
		users:      cfg.Users,
		sessions:   cfg.Sessions,
		sessionTTL: cfg.SessionTTL,
	}
}

// Register creates a new user account and opens a session for it.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.SessionResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  req.DisplayName,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return s.openSession(ctx, &user.ID)
}

// Login verifies credentials and opens a session.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*model.SessionResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	_ = s.users.TouchLastLogin(ctx, user.ID)

	return s.openSession(ctx, &user.ID)
}

// GuestSession opens an anonymous session so a visitor's analysis can be
// persisted and recalled without an account.
func (s *AuthService) GuestSession(ctx context.Context) (*model.SessionResponse, error) {
	return s.openSession(ctx, nil)
}

// ValidateToken resolves a raw bearer token to its session.
func (s *AuthService) ValidateToken(ctx context.Context, token string) (*model.Session, error) {
	if token == "" {
		return nil, ErrInvalidSession
	}

	session, err := s.sessions.GetByTokenHash(ctx, hashToken(token))
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrInvalidSession
	}
	if session.Expired(time.Now()) {
		_ = s.sessions.Delete(ctx, session.ID)
		return nil, ErrInvalidSession
	}

	return session, nil
}

func (s *AuthService) openSession(ctx context.Context, userID *string) (*model.SessionResponse, error) {
	token, err := newSessionToken()
	if err != nil {
		return nil, err
	}

	session := &model.Session{
		TokenHash: hashToken(token),
		UserID:    userID,
		ExpiresOn: time.Now().Add(s.sessionTTL).UTC(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	return &model.SessionResponse{
		Token:     token,
		ExpiresOn: session.ExpiresOn,
		UserID:    userID,
	}, nil
}

// newSessionToken generates a 256-bit random token, hex encoded.
func newSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func validateEmail(email string) error {
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 || !strings.Contains(email[at:], ".") {
		return ErrInvalidEmail
	}
	return nil
}

func validatePassword(password string) error {
	switch {
	case password == "":
		return ErrPasswordRequired
	case len(password) < model.MinPasswordLength:
		return ErrPasswordTooShort
	case len(password) > model.MaxPasswordLength:
		return ErrPasswordTooLong
	}
	return nil
}
