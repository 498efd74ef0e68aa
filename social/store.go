// Package social implements the append-only community ledger: comments,
// citations and endorsements, with per-write integrity gates (identity
// hashing, sliding-window rate limiting, sanitization) and the derived
// views built on top (threads, stats, profiles, leaderboard).
package social

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/theagenttimes/tat-mcp-server/models"
)

// Store owns the ledger tables and the rate-limit window. Every insert is
// atomic: either the row and any dependent counter update both land, or
// neither does.
type Store struct {
	db      *sql.DB
	limiter *RateLimiter
	log     *slog.Logger

	now func() time.Time
}

// NewStore returns a Store bound to db.
func NewStore(db *sql.DB) *Store {
	return &Store{
		db:      db,
		limiter: NewRateLimiter(db),
		log:     slog.Default().With("component", "social"),
		now:     time.Now,
	}
}

// Limiter exposes the store's rate limiter for callers sharing the window.
func (s *Store) Limiter() *RateLimiter { return s.limiter }

func (s *Store) timestamp() string {
	return s.now().UTC().Format(models.TimeLayout)
}
