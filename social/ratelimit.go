package social

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"
)

// Per-action sliding-window limits per identity token per minute.
const (
	MaxCommentsPerMinute     = 10
	MaxCitationsPerMinute    = 30
	MaxEndorsementsPerMinute = 30
)

// rateWindow is the width of the sliding window.
const rateWindow = 60 * time.Second

// RateLimiter enforces per-(token, action) sliding-window limits over the
// shared rate_limits table. Records are purged lazily before each check;
// the table is a rolling window, not a log.
type RateLimiter struct {
	db *sql.DB

	// Serializes purge -> count -> insert. Global serialization is
	// acceptable at this scale; without it parallel callers undercount.
	mu sync.Mutex

	now func() time.Time
}

// NewRateLimiter returns a limiter backed by db.
func NewRateLimiter(db *sql.DB) *RateLimiter {
	return &RateLimiter{db: db, now: time.Now}
}

// Allow reports whether the caller identified by token may perform action
// under limit attempts per minute, recording the attempt when it may.
// An empty token skips the gate entirely.
func (l *RateLimiter) Allow(ctx context.Context, token, action string, limit int) (bool, error) {
	if token == "" {
		return true, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now().UTC()
	cutoff := float64(now.Add(-rateWindow).UnixNano()) / float64(time.Second)

	if _, err := l.db.ExecContext(ctx,
		`DELETE FROM rate_limits WHERE timestamp < ?`, cutoff); err != nil {
		return false, fmt.Errorf("failed to purge rate limits: %w", err)
	}

	var count int
	err := l.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM rate_limits WHERE ip_hash=? AND action=? AND timestamp>?`,
		token, action, cutoff,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to count rate limits: %w", err)
	}

	if count >= limit {
		return false, nil
	}

	ts := float64(now.UnixNano()) / float64(time.Second)
	if _, err := l.db.ExecContext(ctx,
		`INSERT INTO rate_limits (ip_hash, action, timestamp) VALUES (?, ?, ?)`,
		token, action, ts); err != nil {
		return false, fmt.Errorf("failed to record rate limit: %w", err)
	}
	return true, nil
}
