// Package handler provides HTTP request handlers for the Glow AI API.
//
// The handler package contains all HTTP endpoint implementations organized by
// feature area: authentication, the analysis wizard, one-shot analysis, skin
// profiles, and the product catalog.
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts its service dependencies
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output format
//   - Errors are mapped to RFC 9457 Problem Details responses
//
// # Response Format
//
// Handlers use standardized response functions:
//
//   - WriteData: Single resource with optional HATEOAS links
//   - WriteCollection: List of resources with item count
//   - WriteJSON: Raw JSON response
//   - WriteError: RFC 9457 Problem Details error response
//
// # Authentication
//
// Authenticated endpoints use bearer session tokens. The auth middleware
// resolves the token to a session and makes the profile identity key
// available via middleware.GetProfileKey(ctx). Catalog browsing works
// without a session; match scoring needs a completed analysis.
package handler
