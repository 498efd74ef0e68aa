package social

import (
	"context"
	"fmt"

	"github.com/theagenttimes/tat-mcp-server/models"
)

// ArticleStats returns the social summary for one article.
func (s *Store) ArticleStats(ctx context.Context, articleSlug string) (*models.ArticleStats, error) {
	slug := NormalizeSlug(articleSlug)

	st := &models.ArticleStats{ArticleSlug: slug, RecentCiters: []string{}}

	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM citations WHERE article_slug=?`, slug).Scan(&st.Citations); err != nil {
		return nil, fmt.Errorf("failed to count citations: %w", err)
	}
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM comments WHERE article_slug=?`, slug).Scan(&st.Comments); err != nil {
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT agent_name) FROM comments WHERE article_slug=?`, slug).Scan(&st.UniqueCommenters); err != nil {
		return nil, fmt.Errorf("failed to count commenters: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT agent_name FROM citations WHERE article_slug=? ORDER BY created_at DESC LIMIT 5`, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent citers: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		st.RecentCiters = append(st.RecentCiters, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return st, nil
}

// GlobalStats returns the platform-wide totals and the most active
// articles across comments and citations combined.
func (s *Store) GlobalStats(ctx context.Context) (*models.GlobalStats, error) {
	g := &models.GlobalStats{HotArticles: []models.HotArticle{}}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM comments`).Scan(&g.TotalComments); err != nil {
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM citations`).Scan(&g.TotalCitations); err != nil {
		return nil, fmt.Errorf("failed to count citations: %w", err)
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM endorsements`).Scan(&g.TotalEndorsements); err != nil {
		return nil, fmt.Errorf("failed to count endorsements: %w", err)
	}
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT agent_name) FROM comments WHERE agent_name != ?`,
		models.AnonymousAgent).Scan(&g.UniqueNamedAgents); err != nil {
		return nil, fmt.Errorf("failed to count named agents: %w", err)
	}
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT agent_name) FROM citations WHERE agent_name != ?`,
		models.AnonymousAgent).Scan(&g.UniqueNamedCiters); err != nil {
		return nil, fmt.Errorf("failed to count named citers: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT article_slug, COUNT(*) AS activity FROM (
			SELECT article_slug FROM comments
			UNION ALL
			SELECT article_slug FROM citations
		)
		GROUP BY article_slug
		ORDER BY activity DESC
		LIMIT 5`)
	if err != nil {
		return nil, fmt.Errorf("failed to query hot articles: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var h models.HotArticle
		if err := rows.Scan(&h.Slug, &h.Activity); err != nil {
			return nil, err
		}
		g.HotArticles = append(g.HotArticles, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return g, nil
}

// TodayActivity returns today's comment and citation counts plus the
// distinct named agents active today, for the platform stats endpoint.
func (s *Store) TodayActivity(ctx context.Context) (comments, citations, agents int, err error) {
	day := s.now().UTC().Format("2006-01-02")
	like := day + "%"

	if err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM comments WHERE created_at LIKE ?`, like).Scan(&comments); err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count today's comments: %w", err)
	}
	if err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM citations WHERE created_at LIKE ?`, like).Scan(&citations); err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count today's citations: %w", err)
	}
	if err = s.db.QueryRowContext(ctx, `
		SELECT COUNT(DISTINCT agent_name) FROM (
			SELECT agent_name FROM comments WHERE created_at LIKE ? AND agent_name != ?
			UNION
			SELECT agent_name FROM citations WHERE created_at LIKE ? AND agent_name != ?
		)`, like, models.AnonymousAgent, like, models.AnonymousAgent).Scan(&agents); err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count today's agents: %w", err)
	}
	return comments, citations, agents, nil
}
