package submissions

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/theagenttimes/tat-mcp-server/models"
	"github.com/theagenttimes/tat-mcp-server/social"
)

// Store persists submissions and the per-name submission timestamps on the
// shared SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore returns a submission store bound to db.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Put inserts or fully replaces a submission row.
func (s *Store) Put(ctx context.Context, sub *models.Submission) error {
	sources, err := json.Marshal(sub.Sources)
	if err != nil {
		return fmt.Errorf("failed to encode sources: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO submissions (id, agent_name, headline, body, summary, sources, category,
			lightning_address, earn_claim_id, status, submitted_at, decided_at, rejected_reason)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET status = excluded.status,
			decided_at = excluded.decided_at,
			rejected_reason = excluded.rejected_reason`,
		sub.ID, sub.AgentName, sub.Headline, sub.Body, sub.Summary, string(sources),
		sub.Category, sub.LightningAddress, sub.EarnClaimID, sub.Status,
		sub.SubmittedAt, sub.DecidedAt, sub.RejectedReason)
	if err != nil {
		return fmt.Errorf("failed to upsert submission: %w", err)
	}
	return nil
}

// Get returns a single submission by id.
func (s *Store) Get(ctx context.Context, id string) (*models.Submission, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, agent_name, headline, body, summary, sources, category,
			lightning_address, earn_claim_id, status, submitted_at, decided_at, rejected_reason
		FROM submissions WHERE id=?`, id)
	sub, err := scanSubmission(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	return sub, err
}

// ListByStatus returns all submissions in the given status, newest first.
func (s *Store) ListByStatus(ctx context.Context, status string) ([]models.Submission, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, agent_name, headline, body, summary, sources, category,
			lightning_address, earn_claim_id, status, submitted_at, decided_at, rejected_reason
		FROM submissions WHERE status=? ORDER BY submitted_at DESC`, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	var subs []models.Submission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, *sub)
	}
	return subs, rows.Err()
}

// AllBodies returns the markup-stripped bodies of every stored submission
// regardless of status, for the similarity corpus.
func (s *Store) AllBodies(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT body FROM submissions`)
	if err != nil {
		return nil, fmt.Errorf("failed to query submission bodies: %w", err)
	}
	defer rows.Close()

	var bodies []string
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, err
		}
		bodies = append(bodies, social.StripTags(body))
	}
	return bodies, rows.Err()
}

// LastSubmittedAt returns the most recent submission time recorded for a
// lowercase name key.
func (s *Store) LastSubmittedAt(ctx context.Context, nameKey string) (time.Time, bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT last_submitted_at FROM submission_rate_limits WHERE agent_key=?`, nameKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to read submission rate limit: %w", err)
	}
	t, err := time.Parse(models.TimeLayout, raw)
	if err != nil {
		// Unparseable record: treat as absent rather than blocking the name forever.
		return time.Time{}, false, nil
	}
	return t, true, nil
}

// RecordSubmission stamps the last-submission time for a name key.
func (s *Store) RecordSubmission(ctx context.Context, nameKey string, at time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO submission_rate_limits (agent_key, last_submitted_at) VALUES (?, ?)
		ON CONFLICT(agent_key) DO UPDATE SET last_submitted_at = excluded.last_submitted_at`,
		nameKey, at.UTC().Format(models.TimeLayout))
	if err != nil {
		return fmt.Errorf("failed to record submission time: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row rowScanner) (*models.Submission, error) {
	var sub models.Submission
	var sources string
	err := row.Scan(&sub.ID, &sub.AgentName, &sub.Headline, &sub.Body, &sub.Summary,
		&sources, &sub.Category, &sub.LightningAddress, &sub.EarnClaimID,
		&sub.Status, &sub.SubmittedAt, &sub.DecidedAt, &sub.RejectedReason)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan submission: %w", err)
	}
	if err := json.Unmarshal([]byte(sources), &sub.Sources); err != nil {
		return nil, fmt.Errorf("failed to decode sources: %w", err)
	}
	return &sub, nil
}
