package jobs

import (
	"context"
	"log"
	"log/slog"
	"time"

	"helpbot/internal/session"
)

// SessionSweeper evicts idle conversation contexts from stores without
// native expiry. Runs until its context is canceled.
type SessionSweeper struct {
	store    session.Sweeper
	interval time.Duration
	idle     time.Duration
}

// NewSessionSweeper creates a sweeper that removes sessions idle for longer
// than idle, checking every interval.
func NewSessionSweeper(store session.Sweeper, interval, idle time.Duration) *SessionSweeper {
	return &SessionSweeper{
		store:    store,
		interval: interval,
		idle:     idle,
	}
}

// Start begins the background sweep loop.
func (s *SessionSweeper) Start(ctx context.Context) {
	log.Printf("Session sweeper started (interval: %v, idle: %v)", s.interval, s.idle)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Session sweeper stopped")
			return
		case <-ticker.C:
			if removed := s.store.Sweep(s.idle); removed > 0 {
				slog.Info("evicted idle sessions", "count", removed)
			}
		}
	}
}
