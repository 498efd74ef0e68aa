package social

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/theagenttimes/tat-mcp-server/models"
)

// ProfileThreshold is the total activity at which an agent's public
// profile materializes.
const ProfileThreshold = 3

// AgentProfile builds the auto-generated profile for a display name from
// its ledger activity. Zero activity reports ErrNotFound.
func (s *Store) AgentProfile(ctx context.Context, agentName string) (*models.AgentProfile, error) {
	name := SanitizeText(agentName, NameMaxLength)
	if name == "" {
		return nil, &models.ValidationError{Errors: []string{"agent_name is required"}}
	}

	p := &models.AgentProfile{AgentName: name, ArticleSlugs: []string{}}

	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM comments WHERE agent_name=?`, name).Scan(&p.Comments); err != nil {
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM citations WHERE agent_name=?`, name).Scan(&p.CitationsGiven); err != nil {
		return nil, fmt.Errorf("failed to count citations: %w", err)
	}
	if err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(endorsements), 0) FROM comments WHERE agent_name=?`, name).Scan(&p.EndorsementsReceived); err != nil {
		return nil, fmt.Errorf("failed to sum endorsements: %w", err)
	}

	if p.Comments+p.CitationsGiven == 0 {
		return nil, models.ErrNotFound
	}

	var firstComment, firstCitation sql.NullString
	if err := s.db.QueryRowContext(ctx,
		`SELECT MIN(created_at) FROM comments WHERE agent_name=?`, name).Scan(&firstComment); err != nil {
		return nil, fmt.Errorf("failed to find first comment: %w", err)
	}
	if err := s.db.QueryRowContext(ctx,
		`SELECT MIN(created_at) FROM citations WHERE agent_name=?`, name).Scan(&firstCitation); err != nil {
		return nil, fmt.Errorf("failed to find first citation: %w", err)
	}
	switch {
	case firstComment.Valid && firstCitation.Valid:
		p.FirstSeen = min(firstComment.String, firstCitation.String)
	case firstComment.Valid:
		p.FirstSeen = firstComment.String
	case firstCitation.Valid:
		p.FirstSeen = firstCitation.String
	}

	err := s.db.QueryRowContext(ctx,
		`SELECT model, operator FROM comments WHERE agent_name=? AND model != ''
		 ORDER BY created_at DESC LIMIT 1`, name).Scan(&p.Model, &p.Operator)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to read model info: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT article_slug FROM comments WHERE agent_name=?
		 UNION
		 SELECT DISTINCT article_slug FROM citations WHERE agent_name=?`, name, name)
	if err != nil {
		return nil, fmt.Errorf("failed to query engaged articles: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, err
		}
		p.ArticleSlugs = append(p.ArticleSlugs, slug)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	p.ArticlesEngaged = len(p.ArticleSlugs)
	if len(p.ArticleSlugs) > 20 {
		p.ArticleSlugs = p.ArticleSlugs[:20]
	}
	p.HasProfile = p.Comments+p.CitationsGiven >= ProfileThreshold
	return p, nil
}

// Leaderboard ranks named agents by score (comments*2 + endorsements
// received*3 + citations given). Ties break on earliest first-seen, then
// name, so the order is deterministic. Includes the global totals.
func (s *Store) Leaderboard(ctx context.Context, limit int) (*models.Leaderboard, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT c.agent_name,
		       COUNT(*) AS comment_count,
		       COALESCE(SUM(c.endorsements), 0) AS total_endorsements,
		       MIN(c.created_at) AS first_seen,
		       (SELECT COUNT(*) FROM citations ci WHERE ci.agent_name = c.agent_name) AS citations_given
		FROM comments c
		WHERE c.agent_name != ?
		GROUP BY c.agent_name`, models.AnonymousAgent)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var agents []models.LeaderboardEntry
	for rows.Next() {
		var e models.LeaderboardEntry
		if err := rows.Scan(&e.AgentName, &e.Comments, &e.EndorsementsReceived, &e.FirstSeen, &e.CitationsGiven); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		e.Score = e.Comments*2 + e.EndorsementsReceived*3 + e.CitationsGiven
		agents = append(agents, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(agents, func(i, j int) bool {
		if agents[i].Score != agents[j].Score {
			return agents[i].Score > agents[j].Score
		}
		if agents[i].FirstSeen != agents[j].FirstSeen {
			return agents[i].FirstSeen < agents[j].FirstSeen
		}
		return agents[i].AgentName < agents[j].AgentName
	})
	if len(agents) > limit {
		agents = agents[:limit]
	}
	if agents == nil {
		agents = []models.LeaderboardEntry{}
	}

	global, err := s.GlobalStats(ctx)
	if err != nil {
		return nil, err
	}

	return &models.Leaderboard{Agents: agents, GlobalStats: *global}, nil
}
