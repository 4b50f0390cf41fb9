package handler

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UtkarshSachan777/Glow-AI/internal/middleware"
	"github.com/UtkarshSachan777/Glow-AI/internal/model"
	"github.com/UtkarshSachan777/Glow-AI/internal/repository"
	"github.com/UtkarshSachan777/Glow-AI/internal/service"
)

// ============================================================================
// Mock Stores
// ============================================================================

type mockUserStore struct {
	byEmail map[string]*model.User
	nextID  int
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{byEmail: make(map[string]*model.User)}
}

func (m *mockUserStore) Create(ctx context.Context, user *model.User) error {
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
	return nil
}

type mockSessionStore struct {
	byHash map[string]*model.Session
	nextID int
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
	for hash, session := range m.byHash {
		if session.ID == id {
			delete(m.byHash, hash)
		}
	}
	return nil
}

// ============================================================================
// Test Helpers
// ============================================================================

func newTestAuthService() *service.AuthService {
	return service.NewAuthService(service.AuthServiceConfig{
		Users:      newMockUserStore(),
		Sessions:   newMockSessionStore(),
		SessionTTL: time.Hour,
	})
}

func makeJSONRequest(method, path string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withSession(req *http.Request, session *model.Session) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.SessionKey, session)
	return req.WithContext(ctx)
}

func userSession(sessionID, userID string) *model.Session {
	return &model.Session{ID: sessionID, UserID: &userID}
}

func parseErrorResponse(t *testing.T, body []byte) *model.ProblemDetails {
	t.Helper()
	var problem model.ProblemDetails
	require.NoError(t, json.Unmarshal(body, &problem), "failed to parse error response")
	return &problem
}

// decodeData unmarshals the "data" field of a response envelope into v.
func decodeData(t *testing.T, body []byte, v interface{}) {
	t.Helper()
	var envelope struct {
		Data  json.RawMessage   `json:"data"`
		Links map[string]string `json:"_links"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, v))
}

// ============================================================================
// Register Tests
// ============================================================================

func TestRegister_Success_ReturnsCreatedSession(t *testing.T) {
	t.Parallel()
	h := NewAuthHandler(newTestAuthService())

	req := makeJSONRequest(http.MethodPost, "/v1/auth/register", model.RegisterRequest{
		Email:    "jane@example.com",
		Password: "long enough",
	})
	rr := httptest.NewRecorder()

	h.Register(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var session model.SessionResponse
	decodeData(t, rr.Body.Bytes(), &session)
	assert.NotEmpty(t, session.Token)
	assert.NotNil(t, session.UserID)
}

func TestRegister_InvalidBody_ReturnsBadRequest(t *testing.T) {
	t.Parallel()
	h := NewAuthHandler(newTestAuthService())

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", bytes.NewBufferString("{not json"))
	rr := httptest.NewRecorder()

	h.Register(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRegister_ShortPassword_ReturnsValidationError(t *testing.T) {
	t.Parallel()
	h := NewAuthHandler(newTestAuthService())

	req := makeJSONRequest(http.MethodPost, "/v1/auth/register", model.RegisterRequest{
		Email:    "jane@example.com",
		Password: "short",
	})
	rr := httptest.NewRecorder()

	h.Register(rr, req)

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	problem := parseErrorResponse(t, rr.Body.Bytes())
	assert.Equal(t, http.StatusUnprocessableEntity, problem.Status)
}

func TestRegister_DuplicateEmail_ReturnsConflict(t *testing.T) {
	t.Parallel()
	h := NewAuthHandler(newTestAuthService())
	body := model.RegisterRequest{Email: "jane@example.com", Password: "long enough"}

	rr := httptest.NewRecorder()
	h.Register(rr, makeJSONRequest(http.MethodPost, "/v1/auth/register", body))
	require.Equal(t, http.StatusCreated, rr.Code)

	rr2 := httptest.NewRecorder()
	h.Register(rr2, makeJSONRequest(http.MethodPost, "/v1/auth/register", body))

	assert.Equal(t, http.StatusConflict, rr2.Code)
}

// ============================================================================
// Login Tests
// ============================================================================

func TestLogin_Success_ReturnsSession(t *testing.T) {
	t.Parallel()
	svc := newTestAuthService()
	h := NewAuthHandler(svc)

	rr := httptest.NewRecorder()
	h.Register(rr, makeJSONRequest(http.MethodPost, "/v1/auth/register", model.RegisterRequest{
		Email: "jane@example.com", Password: "long enough",
	}))
	require.Equal(t, http.StatusCreated, rr.Code)

	rr2 := httptest.NewRecorder()
	h.Login(rr2, makeJSONRequest(http.MethodPost, "/v1/auth/login", model.LoginRequest{
		Email: "jane@example.com", Password: "long enough",
	}))

	require.Equal(t, http.StatusOK, rr2.Code)

	var session model.SessionResponse
	decodeData(t, rr2.Body.Bytes(), &session)
	assert.NotEmpty(t, session.Token)
}

func TestLogin_WrongPassword_ReturnsUnauthorized(t *testing.T) {
	t.Parallel()
	svc := newTestAuthService()
	h := NewAuthHandler(svc)

	rr := httptest.NewRecorder()
	h.Register(rr, makeJSONRequest(http.MethodPost, "/v1/auth/register", model.RegisterRequest{
		Email: "jane@example.com", Password: "long enough",
	}))
	require.Equal(t, http.StatusCreated, rr.Code)

	rr2 := httptest.NewRecorder()
	h.Login(rr2, makeJSONRequest(http.MethodPost, "/v1/auth/login", model.LoginRequest{
		Email: "jane@example.com", Password: "wrong password",
	}))

	assert.Equal(t, http.StatusUnauthorized, rr2.Code)
}

// ============================================================================
// Guest Session Tests
// ============================================================================

func TestGuest_ReturnsAnonymousSession(t *testing.T) {
	t.Parallel()
	h := NewAuthHandler(newTestAuthService())

	rr := httptest.NewRecorder()
	h.Guest(rr, httptest.NewRequest(http.MethodPost, "/v1/sessions/guest", nil))

	require.Equal(t, http.StatusCreated, rr.Code)

	var session model.SessionResponse
	decodeData(t, rr.Body.Bytes(), &session)
	assert.NotEmpty(t, session.Token)
	assert.Nil(t, session.UserID)
}
