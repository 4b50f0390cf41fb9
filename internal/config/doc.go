// Package config manages application configuration for the Glow AI API.
//
// The config package loads and validates configuration from environment variables.
// All configuration is centralized here to provide a single source of truth.
//
// # Configuration Loading
//
// Configuration is loaded from environment variables:
//
//	cfg, err := config.Load()
//
// # Configuration Groups
//
// Configuration is organized into logical groups:
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS)
//   - DatabaseConfig: SurrealDB connection settings
//   - AuthConfig: session token settings
//   - EngineConfig: personalization engine settings
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT             - HTTP server port (default: 8080)
//	DB_HOST, DB_PORT        - SurrealDB endpoint
//	DB_NAMESPACE, DB_DATABASE - SurrealDB namespace and database
//	AUTH_SESSION_TTL        - session lifetime (default: 720h)
//	ENGINE_ANALYSIS_DELAY   - wizard analyzing phase duration (default: 3s)
//	ENGINE_SEED_CATALOG     - seed launch products on startup (default: true)
//	ENGINE_RATE_LIMIT       - requests per minute per session (default: 100)
//
// Sensible defaults are provided for development.
package config
