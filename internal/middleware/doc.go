// Package middleware provides HTTP middleware for the Glow AI API.
//
// The middleware package contains reusable middleware components for
// authentication, rate limiting, and request processing.
//
// # Available Middleware
//
// Core middleware components:
//
//   - Auth: bearer session token validation and session extraction
//   - OptionalAuth: like Auth, but anonymous requests pass through
//   - RateLimit: token bucket rate limiting per session/IP
//   - RequestID, Logger, Recovery, CORS, Compress: request plumbing
//
// # Authentication
//
// The auth middleware validates opaque session tokens and stores the
// resolved session in the request context:
//
//	handler = middleware.Chain(handler, middleware.Auth(authService))
//
// After authentication, handlers can access the session:
//
//	session := middleware.GetSession(r.Context())
//	key := middleware.GetProfileKey(r.Context())
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetSession(ctx): Returns the authenticated session
//   - GetProfileKey(ctx): Returns the profile identity key
//   - GetRequestID(ctx): Returns unique request identifier
package middleware
