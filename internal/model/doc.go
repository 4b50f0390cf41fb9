// Package model defines domain entities and data structures for the Glow-AI API.
//
// The model package contains all struct definitions for domain objects,
// request/response types, and error definitions. Models are used across all
// layers of the application.
//
// # Domain Entities
//
// Core domain entities include:
//
//   - QuestionnaireResponse: the skin analysis input (scale traits, concerns,
//     lifestyle selections)
//   - PersonalizedProfile: the engine's aggregate output (classification,
//     concern priorities, ingredient recommendations, routine, outcome
//     timeline, risk assessment)
//   - Product: a catalog record with benefit/skin-type tags and clinical
//     evidence scoring
//   - WizardSession: the questionnaire wizard's step progression state
//   - User / Session: identity used to key persisted profiles
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go:
//
//	type ProblemDetails struct {
//	    Type   string `json:"type"`
//	    Title  string `json:"title"`
//	    Status int    `json:"status"`
//	    Detail string `json:"detail"`
//	}
package model
