package handler

import (
	"net/http"

	"github.com/UtkarshSachan777/Glow-AI/internal/middleware"
	"github.com/UtkarshSachan777/Glow-AI/internal/model"
	"github.com/UtkarshSachan777/Glow-AI/internal/service"
)

// AnalysisHandler handles one-shot skin analysis requests. Clients that
// collect the questionnaire themselves can skip the wizard and post the
// complete response here.
type AnalysisHandler struct {
	personalization *service.PersonalizationService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(personalization *service.PersonalizationService) *AnalysisHandler {
	return &AnalysisHandler{
		personalization: personalization,
	}
}

// Analyze handles POST /v1/analysis
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req model.QuestionnaireResponse
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	for _, v := range req.ScaleAnswers {
		if v < model.ScaleMin || v > model.ScaleMax {
			WriteError(w, model.NewValidationError([]model.FieldError{
				{Field: "scale_answers", Message: service.ErrScaleOutOfRange.Error()},
			}))
			return
		}
	}

	profileKey := middleware.GetProfileKey(r.Context())
	profile := h.personalization.Analyze(r.Context(), profileKey, &req)

	WriteData(w, http.StatusOK, profile, map[string]string{
		"products": "/v1/products",
		"profile":  "/v1/profile",
	})
}
