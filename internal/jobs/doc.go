// Package jobs implements background job processing for the Glow AI API.
//
// The jobs package contains scheduled tasks that run independently of HTTP
// request handling.
//
// # Job Types
//
// Available background jobs:
//
//   - SessionCleanup: periodic removal of expired sessions
//
// # Lifecycle
//
// Jobs run on their own goroutine with a ticker and stop cleanly:
//
//	cleanup := jobs.NewSessionCleanup(sessionRepo, time.Hour)
//	cleanup.Start()
//	defer cleanup.Stop()
package jobs
