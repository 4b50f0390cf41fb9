package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UtkarshSachan777/Glow-AI/internal/model"
	"github.com/UtkarshSachan777/Glow-AI/internal/service"
)

// ============================================================================
// Mock ProfileStore
// ============================================================================

type mockProfileStore struct {
	saved map[string]*model.PersonalizedProfile
}

func newMockProfileStore() *mockProfileStore {
	return &mockProfileStore{saved: make(map[string]*model.PersonalizedProfile)}
}

func (m *mockProfileStore) Save(ctx context.Context, key string, profile *model.PersonalizedProfile) error {
	m.saved[key] = profile
	return nil
}

func (m *mockProfileStore) Load(ctx context.Context, key string) (*model.PersonalizedProfile, error) {
	return m.saved[key], nil
}

// ============================================================================
// Profile Tests
// ============================================================================

func TestProfileGet_NoSession_ReturnsUnauthorized(t *testing.T) {
	t.Parallel()
	h := NewProfileHandler(service.NewPersonalizationService(service.PersonalizationServiceConfig{}))

	rr := httptest.NewRecorder()
	h.Get(rr, httptest.NewRequest(http.MethodGet, "/v1/profile", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestProfileGet_NoAnalysisYet_ReturnsNotFound(t *testing.T) {
	t.Parallel()
	svc := service.NewPersonalizationService(service.PersonalizationServiceConfig{
		Profiles: newMockProfileStore(),
	})
	h := NewProfileHandler(svc)

	req := withSession(httptest.NewRequest(http.MethodGet, "/v1/profile", nil),
		userSession("session:1", "user:123"))
	rr := httptest.NewRecorder()

	h.Get(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestProfileGet_AfterAnalysis_ReturnsProfile(t *testing.T) {
	t.Parallel()
	svc := service.NewPersonalizationService(service.PersonalizationServiceConfig{
		Profiles: newMockProfileStore(),
	})
	h := NewProfileHandler(svc)

	body := oilyQuestionnaireBody()
	svc.Analyze(context.Background(), "user:123", &body)

	req := withSession(httptest.NewRequest(http.MethodGet, "/v1/profile", nil),
		userSession("session:1", "user:123"))
	rr := httptest.NewRecorder()

	h.Get(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var profile model.PersonalizedProfile
	decodeData(t, rr.Body.Bytes(), &profile)
	assert.Equal(t, model.SkinTypeOily, profile.Classification.Type)
}
