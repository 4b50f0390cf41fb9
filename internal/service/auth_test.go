package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/UtkarshSachan777/Glow-AI/internal/model"
	"github.com/UtkarshSachan777/Glow-AI/internal/repository"
)

// ============================================================================
// Mock Stores
// ============================================================================

type mockUserStore struct {
	byEmail   map[string]*model.User
	createErr error
	touched   []string
	nextID    int
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{byEmail: make(map[string]*model.User)}
}

func (m *mockUserStore) Create(ctx context.Context, user *model.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, exists := m.byEmail[user.Email]; exists {
		return repository.ErrDuplicateEmail
	}
	m.nextID++
	user.ID = fmt.Sprintf("user:%d", m.nextID)
	m.byEmail[user.Email] = user
	return nil
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return m.byEmail[email], nil
}

func (m *mockUserStore) TouchLastLogin(ctx context.Context, id string) error {
	m.touched = append(m.touched, id)
	return nil
}

type mockSessionStore struct {
	byHash  map[string]*model.Session
	deleted []string
	nextID  int
}

func newMockSessionStore() *mockSessionStore {
	return &mockSessionStore{byHash: make(map[string]*model.Session)}
}

func (m *mockSessionStore) Create(ctx context.Context, session *model.Session) error {
	m.nextID++
	session.ID = fmt.Sprintf("session:%d", m.nextID)
	m.byHash[session.TokenHash] = session
	return nil
}

func (m *mockSessionStore) GetByTokenHash(ctx context.Context, tokenHash string) (*model.Session, error) {
	return m.byHash[tokenHash], nil
}

func (m *mockSessionStore) Delete(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func newTestAuth() (*AuthService, *mockUserStore, *mockSessionStore) {
	users := newMockUserStore()
	sessions := newMockSessionStore()
	svc := NewAuthService(AuthServiceConfig{
		Users:      users,
		Sessions:   sessions,
		SessionTTL: time.Hour,
	})
	return svc, users, sessions
}

// ============================================================================
// Register
// ============================================================================

func TestRegister_Success(t *testing.T) {
	svc, users, sessions := newTestAuth()

	resp, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "jane@example.com",
		Password: "correct horse battery",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if resp.Token == "" {
		t.Error("expected a session token")
	}
	if resp.UserID == nil {
		t.Error("expected a user ID on the session")
	}

	user := users.byEmail["jane@example.com"]
	if user == nil {
		t.Fatal("expected user persisted")
	}
	if user.PasswordHash == "correct horse battery" {
		t.Error("password stored in plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct horse battery")) != nil {
		t.Error("stored hash does not verify against the password")
	}
	if sessions.byHash[hashToken(resp.Token)] == nil {
		t.Error("expected session stored under the token hash")
	}
}

func TestRegister_NormalizesEmail(t *testing.T) {
	svc, users, _ := newTestAuth()

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "  Jane@Example.COM ",
		Password: "long enough",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if users.byEmail["jane@example.com"] == nil {
		t.Error("expected email lowercased and trimmed before storage")
	}
}

func TestRegister_InvalidEmail(t *testing.T) {
	svc, _, _ := newTestAuth()

	for _, email := range []string{"", "plain", "@example.com", "jane@", "jane@nodot"} {
		_, err := svc.Register(context.Background(), model.RegisterRequest{
			Email:    email,
			Password: "long enough",
		})
		if !errors.Is(err, ErrInvalidEmail) {
			t.Errorf("email %q: expected ErrInvalidEmail, got %v", email, err)
		}
	}
}

func TestRegister_PasswordValidation(t *testing.T) {
	svc, _, _ := newTestAuth()

	tests := []struct {
		name     string
		password string
		expected error
	}{
		{"empty", "", ErrPasswordRequired},
		{"too short", "seven77", ErrPasswordTooShort},
		{"too long", strings.Repeat("x", model.MaxPasswordLength+1), ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), model.RegisterRequest{
				Email:    "jane@example.com",
				Password: tt.password,
			})
			if !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAuth()
	req := model.RegisterRequest{Email: "jane@example.com", Password: "long enough"}

	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	_, err := svc.Register(context.Background(), req)
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

// ============================================================================
// Login
// ============================================================================

func TestLogin_Success(t *testing.T) {
	svc, users, _ := newTestAuth()
	register := model.RegisterRequest{Email: "jane@example.com", Password: "long enough"}
	if _, err := svc.Register(context.Background(), register); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	resp, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "Jane@Example.com",
		Password: "long enough",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if resp.Token == "" {
		t.Error("expected a session token")
	}
	if len(users.touched) != 1 {
		t.Errorf("expected last-login touched once, got %d", len(users.touched))
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, _ := newTestAuth()
	if _, err := svc.Register(context.Background(), model.RegisterRequest{
		Email: "jane@example.com", Password: "long enough",
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong password",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _, _ := newTestAuth()

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "nobody@example.com",
		Password: "long enough",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

// ============================================================================
// Sessions
// ============================================================================

func TestGuestSession_AnonymousIdentity(t *testing.T) {
	svc, _, _ := newTestAuth()

	resp, err := svc.GuestSession(context.Background())
	if err != nil {
		t.Fatalf("GuestSession failed: %v", err)
	}
	if resp.UserID != nil {
		t.Error("expected no user ID on a guest session")
	}

	session, err := svc.ValidateToken(context.Background(), resp.Token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if session.UserID != nil {
		t.Error("expected anonymous session")
	}
	if session.ProfileKey() != session.ID {
		t.Errorf("expected session ID as profile key, got %s", session.ProfileKey())
	}
}

func TestValidateToken_RegisteredUserProfileKey(t *testing.T) {
	svc, _, _ := newTestAuth()
	resp, err := svc.Register(context.Background(), model.RegisterRequest{
		Email: "jane@example.com", Password: "long enough",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	session, err := svc.ValidateToken(context.Background(), resp.Token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if session.ProfileKey() != *resp.UserID {
		t.Errorf("expected user ID as profile key, got %s", session.ProfileKey())
	}
}

func TestValidateToken_Invalid(t *testing.T) {
	svc, _, _ := newTestAuth()

	for _, token := range []string{"", "not-a-real-token"} {
		_, err := svc.ValidateToken(context.Background(), token)
		if !errors.Is(err, ErrInvalidSession) {
			t.Errorf("token %q: expected ErrInvalidSession, got %v", token, err)
		}
	}
}

func TestValidateToken_ExpiredSessionDeleted(t *testing.T) {
	users := newMockUserStore()
	sessions := newMockSessionStore()
	svc := NewAuthService(AuthServiceConfig{
		Users:      users,
		Sessions:   sessions,
		SessionTTL: -time.Minute,
	})

	resp, err := svc.GuestSession(context.Background())
	if err != nil {
		t.Fatalf("GuestSession failed: %v", err)
	}

	_, err = svc.ValidateToken(context.Background(), resp.Token)
	if !errors.Is(err, ErrInvalidSession) {
		t.Errorf("expected ErrInvalidSession for expired session, got %v", err)
	}
	if len(sessions.deleted) != 1 {
		t.Errorf("expected expired session deleted, got %d deletions", len(sessions.deleted))
	}
}
