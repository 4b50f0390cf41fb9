package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// ExpiredSessionStore deletes sessions past their expiry.
type ExpiredSessionStore interface {
	DeleteExpired(ctx context.Context) error
}

// SessionCleanup periodically removes expired sessions so guest sessions
// that never converted to accounts don't accumulate.
type SessionCleanup struct {
	sessions ExpiredSessionStore
	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
	running  bool
	mu       sync.Mutex
}

// NewSessionCleanup creates a new session cleanup job
func NewSessionCleanup(sessions ExpiredSessionStore, interval time.Duration) *SessionCleanup {
	if interval == 0 {
		interval = 1 * time.Hour
	}
	return &SessionCleanup{
		sessions: sessions,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the session cleanup job
func (j *SessionCleanup) Start() {
	j.mu.Lock()
	if j.running {
		j.mu.Unlock()
		return
	}
	j.running = true
	j.mu.Unlock()

	j.wg.Add(1)
	go j.run()
	slog.Info("session cleanup started", slog.Duration("interval", j.interval))
}

// Stop gracefully stops the session cleanup job
func (j *SessionCleanup) Stop() {
	j.mu.Lock()
	if !j.running {
		j.mu.Unlock()
		return
	}
	j.running = false
	j.mu.Unlock()

	close(j.stopCh)
	j.wg.Wait()
	slog.Info("session cleanup stopped")
}

// run is the main loop
func (j *SessionCleanup) run() {
	defer j.wg.Done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.sweep()
		case <-j.stopCh:
			return
		}
	}
}

// sweep deletes all sessions past their expiry
func (j *SessionCleanup) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := j.sessions.DeleteExpired(ctx); err != nil {
		slog.Error("session cleanup sweep failed", slog.String("error", err.Error()))
	}
}
