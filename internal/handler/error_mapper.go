package handler

import (
	"errors"

	"github.com/UtkarshSachan777/Glow-AI/internal/model"
	"github.com/UtkarshSachan777/Glow-AI/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Authentication Errors → 401 =====
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidSession):
		return model.NewUnauthorizedError(err.Error())

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrProductNotFound):
		return model.NewNotFoundError("product")
	case errors.Is(err, service.ErrWizardNotFound):
		return model.NewNotFoundError("wizard session")

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, service.ErrEmailAlreadyExists):
		return model.NewConflictError(err.Error())
	case errors.Is(err, service.ErrWizardComplete):
		return model.NewConflictError(err.Error())
	case errors.Is(err, service.ErrAnalysisPending),
		errors.Is(err, service.ErrWizardAnalyzing):
		return model.NewConflictError(err.Error())

	// ===== Validation Errors → 422 =====
	case errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrPasswordRequired),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrPasswordTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "credentials", Message: err.Error()}})

	case errors.Is(err, service.ErrInvalidAnswer),
		errors.Is(err, service.ErrScaleOutOfRange),
		errors.Is(err, service.ErrStepNotAnswered):
		return model.NewValidationError([]model.FieldError{{Field: "answer", Message: err.Error()}})

	// ===== Precondition Errors → 400 =====
	case errors.Is(err, service.ErrProfileRequired):
		return model.NewBadRequestError(err.Error())

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}

// MapServiceErrorWithContext converts a service error to a ProblemDetails response
// with additional context about the operation that failed.
func MapServiceErrorWithContext(err error, operation string) *model.ProblemDetails {
	pd := MapServiceError(err)
	if pd != nil && pd.Status == 500 {
		pd.Detail = operation + ": an unexpected error occurred"
	}
	return pd
}
