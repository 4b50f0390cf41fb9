package handler

import (
	"net/http"

	"github.com/UtkarshSachan777/Glow-AI/internal/middleware"
	"github.com/UtkarshSachan777/Glow-AI/internal/model"
	"github.com/UtkarshSachan777/Glow-AI/internal/service"
)

// ProfileHandler serves the last computed skin profile
type ProfileHandler struct {
	personalization *service.PersonalizationService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(personalization *service.PersonalizationService) *ProfileHandler {
	return &ProfileHandler{
		personalization: personalization,
	}
}

// Get handles GET /v1/profile
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := middleware.GetProfileKey(r.Context())
	if key == "" {
		WriteError(w, model.NewUnauthorizedError("session required"))
		return
	}

	profile, err := h.personalization.LastProfile(r.Context(), key)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "load profile"))
		return
	}
	if profile == nil {
		WriteError(w, model.NewNotFoundError("skin profile"))
		return
	}

	WriteData(w, http.StatusOK, profile, map[string]string{
		"products": "/v1/products",
		"analysis": "/v1/analysis",
	})
}
