package handler

import (
	"net/http"

	"github.com/UtkarshSachan777/Glow-AI/internal/middleware"
	"github.com/UtkarshSachan777/Glow-AI/internal/model"
	"github.com/UtkarshSachan777/Glow-AI/internal/service"
)

// WizardHandler handles the skin analysis wizard endpoints
type WizardHandler struct {
	wizardService *service.WizardService
}

// NewWizardHandler creates a new wizard handler
func NewWizardHandler(wizardService *service.WizardService) *WizardHandler {
	return &WizardHandler{
		wizardService: wizardService,
	}
}

// Steps handles GET /v1/wizard/steps
func (h *WizardHandler) Steps(w http.ResponseWriter, r *http.Request) {
	steps := h.wizardService.Steps()
	WriteCollection(w, http.StatusOK, steps, len(steps), nil)
}

// Start handles POST /v1/wizard
func (h *WizardHandler) Start(w http.ResponseWriter, r *http.Request) {
	profileKey := middleware.GetProfileKey(r.Context())

	session := h.wizardService.Start(profileKey)
	WriteData(w, http.StatusCreated, session, map[string]string{
		"self":   "/v1/wizard/" + session.ID,
		"answer": "/v1/wizard/" + session.ID + "/answer",
	})
}

// Get handles GET /v1/wizard/{wizardId}
func (h *WizardHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.wizardService.Get(r.PathValue("wizardId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, session, nil)
}

// Answer handles POST /v1/wizard/{wizardId}/answer
func (h *WizardHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var answer model.WizardAnswer
	if err := DecodeJSON(r, &answer); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	session, err := h.wizardService.Answer(r.PathValue("wizardId"), answer)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, session, nil)
}

// Next handles POST /v1/wizard/{wizardId}/next
func (h *WizardHandler) Next(w http.ResponseWriter, r *http.Request) {
	session, err := h.wizardService.Next(r.Context(), r.PathValue("wizardId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	links := map[string]string{"self": "/v1/wizard/" + session.ID}
	if session.State != model.WizardStateStep {
		links["result"] = "/v1/wizard/" + session.ID + "/result"
	}
	WriteData(w, http.StatusOK, session, links)
}

// Previous handles POST /v1/wizard/{wizardId}/previous
func (h *WizardHandler) Previous(w http.ResponseWriter, r *http.Request) {
	session, err := h.wizardService.Previous(r.PathValue("wizardId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, session, nil)
}

// Result handles GET /v1/wizard/{wizardId}/result
func (h *WizardHandler) Result(w http.ResponseWriter, r *http.Request) {
	profile, err := h.wizardService.Result(r.PathValue("wizardId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}
	WriteData(w, http.StatusOK, profile, map[string]string{
		"products": "/v1/products",
		"profile":  "/v1/profile",
	})
}
