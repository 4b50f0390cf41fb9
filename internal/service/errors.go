package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Authentication Errors =====
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong    = errors.New("password must be at most 128 characters")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrInvalidSession     = errors.New("invalid or expired session")
)

// ===== Wizard Errors =====
var (
	ErrWizardNotFound  = errors.New("wizard session not found")
	ErrWizardComplete  = errors.New("analysis already complete")
	ErrWizardAnalyzing = errors.New("analysis in progress")
	ErrStepNotAnswered = errors.New("current step has no valid answer")
	ErrInvalidAnswer   = errors.New("answer does not match the current step")
	ErrScaleOutOfRange = errors.New("scale values must be between 0 and 10")
	ErrAnalysisPending = errors.New("analysis result not ready")
)

// ===== Catalog Errors =====
var (
	ErrProductNotFound = errors.New("product not found")
	ErrProfileRequired = errors.New("no skin profile available; complete the analysis first")
)
