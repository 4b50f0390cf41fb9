// Package service implements the business logic layer for the Glow AI API.
//
// The heart of the package is the personalization engine: a deterministic
// scoring pipeline that turns a skin questionnaire into a complete profile.
// The pipeline stages run in a fixed order:
//
//   - ClassifySkinType scores the five skin types from the 0-10 trait scales
//   - PrioritizeConcerns ranks the selected concerns by computed severity
//   - RecommendIngredients matches the ingredient reference table against
//     the skin type and ranked concerns
//   - GenerateRoutine assembles ordered morning and evening routines
//   - PredictOutcomes builds the expected-results timeline
//   - AssessRisk flags over-treatment, sensitivity conflicts, and
//     preference conflicts
//
// Every stage is a pure function of its inputs and the static reference
// tables: the same questionnaire always produces the same profile.
//
// # Service Pattern
//
// All services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts a config struct with dependencies
//   - Methods implement business operations with proper validation
//   - Errors are returned as sentinel errors or wrapped errors for context
//   - Context is passed through for cancellation and request-scoped values
//
// Services define their own store interfaces so that persistence can be
// mocked in unit tests and swapped without touching domain logic.
//
// # Example Usage
//
//	engine := NewPersonalizationService(PersonalizationServiceConfig{
//	    Catalog:  productRepository,
//	    Profiles: profileRepository,
//	})
//	profile := engine.Analyze(ctx, sessionKey, questionnaire)
package service
