// Package repository implements data access for the Glow-AI API.
//
// Each repository wraps the database.Database interface with typed methods
// for one table: products (catalog), profiles (computed personalization
// results), users, and sessions. Repositories translate between SurrealDB's
// raw map results and the model types, and map database sentinel errors to
// (nil, nil) for "not found" lookups where absence is not an error.
//
// The profile repository additionally fronts the database with an LRU cache:
// the last computed profile per identity key is reused across the UI without
// durability guarantees.
package repository
