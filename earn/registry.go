// Package earn tracks sats reward claims and the ban list. Claims are
// created by the moderation engine on approval; admins can ban an agent,
// which also voids that agent's unpaid claims.
package earn

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/theagenttimes/tat-mcp-server/models"
	"github.com/theagenttimes/tat-mcp-server/submissions"
)

// Reward rates in sats per claim type.
const (
	ArticlePublishedSats = 5000
)

// Registry persists earn claims and banned agents.
type Registry struct {
	db  *sql.DB
	log *slog.Logger
	now func() time.Time
}

// NewRegistry returns a Registry backed by db.
func NewRegistry(db *sql.DB) *Registry {
	return &Registry{
		db:  db,
		log: slog.Default().With("component", "earn"),
		now: time.Now,
	}
}

// ArticleSats returns the reward for an approved article submission.
func (r *Registry) ArticleSats() int {
	return ArticlePublishedSats
}

// Rates returns the published reward schedule.
func (r *Registry) Rates() map[string]int {
	return map[string]int{
		"article_published": ArticlePublishedSats,
	}
}

// InsertClaim records a reward claim.
func (r *Registry) InsertClaim(ctx context.Context, claim submissions.Claim) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO earn_claims (claim_id, agent_name, lightning_address, claim_type, sats, status, notes, submission_id, submitted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		claim.ClaimID, claim.AgentName, claim.LightningAddress, claim.ClaimType,
		claim.Sats, claim.Status, claim.Notes, claim.SubmissionID, claim.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert claim: %w", err)
	}
	r.log.Info("claim recorded", "claim_id", claim.ClaimID, "agent_name", claim.AgentName, "sats", claim.Sats)
	return nil
}

// IsBanned reports whether the display name is on the ban list. Names
// are matched case-insensitively.
func (r *Registry) IsBanned(ctx context.Context, agentName string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM banned_agents WHERE agent_key = ?)",
		strings.ToLower(strings.TrimSpace(agentName)),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check ban list: %w", err)
	}
	return exists, nil
}

// BanAgent adds the display name to the ban list and voids the agent's
// claims that have not been paid out yet. It returns the number of
// voided claims.
func (r *Registry) BanAgent(ctx context.Context, agentName, reason string) (int, error) {
	key := strings.ToLower(strings.TrimSpace(agentName))
	if key == "" {
		return 0, &models.ValidationError{Errors: []string{"agent_name is required"}}
	}
	if reason == "" {
		reason = "Banned by admin"
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO banned_agents (agent_key, reason, banned_at) VALUES (?, ?, ?)
		ON CONFLICT(agent_key) DO UPDATE SET reason = excluded.reason, banned_at = excluded.banned_at`,
		key, reason, r.now().UTC().Format(models.TimeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to record ban: %w", err)
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE earn_claims SET status = 'voided', notes = notes || ' [voided: agent banned]'
		WHERE LOWER(agent_name) = ? AND status != 'paid'`,
		key,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to void claims: %w", err)
	}
	voided, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit ban: %w", err)
	}
	r.log.Info("agent banned", "agent_name", agentName, "reason", reason, "voided_claims", voided)
	return int(voided), nil
}

// AgentClaims returns all claims for a display name, newest first.
func (r *Registry) AgentClaims(ctx context.Context, agentName string) ([]submissions.Claim, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT claim_id, agent_name, lightning_address, claim_type, sats, status, notes, submission_id, submitted_at
		FROM earn_claims WHERE LOWER(agent_name) = ? ORDER BY submitted_at DESC`,
		strings.ToLower(strings.TrimSpace(agentName)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query claims: %w", err)
	}
	defer rows.Close()

	claims := []submissions.Claim{}
	for rows.Next() {
		var c submissions.Claim
		if err := rows.Scan(&c.ClaimID, &c.AgentName, &c.LightningAddress, &c.ClaimType,
			&c.Sats, &c.Status, &c.Notes, &c.SubmissionID, &c.SubmittedAt); err != nil {
			return nil, fmt.Errorf("failed to scan claim: %w", err)
		}
		claims = append(claims, c)
	}
	return claims, rows.Err()
}

// Earner is one row of the earnings leaderboard.
type Earner struct {
	AgentName string `json:"agent_name"`
	TotalSats int    `json:"total_sats"`
	Claims    int    `json:"claims"`
}

// TopEarners returns agents ranked by verified and paid sats.
func (r *Registry) TopEarners(ctx context.Context, limit int) ([]Earner, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT agent_name, SUM(sats), COUNT(*)
		FROM earn_claims WHERE status IN ('verified', 'paid')
		GROUP BY LOWER(agent_name)
		ORDER BY SUM(sats) DESC, LOWER(agent_name) ASC
		LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query earners: %w", err)
	}
	defer rows.Close()

	earners := []Earner{}
	for rows.Next() {
		var e Earner
		if err := rows.Scan(&e.AgentName, &e.TotalSats, &e.Claims); err != nil {
			return nil, fmt.Errorf("failed to scan earner: %w", err)
		}
		earners = append(earners, e)
	}
	return earners, rows.Err()
}

// TotalVerifiedSats returns the sum of sats across verified and paid
// claims, for the stats surface.
func (r *Registry) TotalVerifiedSats(ctx context.Context) (int, error) {
	var total sql.NullInt64
	err := r.db.QueryRowContext(ctx,
		"SELECT SUM(sats) FROM earn_claims WHERE status IN ('verified', 'paid')",
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum claims: %w", err)
	}
	return int(total.Int64), nil
}
