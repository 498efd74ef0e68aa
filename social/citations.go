package social

import (
	"context"
	"fmt"

	"github.com/theagenttimes/tat-mcp-server/models"
)

// CiteArticleInput carries the citation write path inputs.
type CiteArticleInput struct {
	ArticleSlug string
	AgentName   string
	Model       string
	Context     string
	ClientAddr  string
}

// CiteArticle records a citation and returns it with the article's new
// citation total.
func (s *Store) CiteArticle(ctx context.Context, in CiteArticleInput) (*models.Citation, int, error) {
	slug := NormalizeSlug(in.ArticleSlug)
	name := SanitizeName(in.AgentName, models.AnonymousAgent)
	model := SanitizeText(in.Model, ModelMaxLength)
	citeCtx := SanitizeText(in.Context, ContextMaxLength)

	if slug == "" {
		return nil, 0, &models.ValidationError{Errors: []string{"article_slug is required"}}
	}

	token := HashIdentity(in.ClientAddr)
	ok, err := s.limiter.Allow(ctx, token, "citation", MaxCitationsPerMinute)
	if err != nil {
		return nil, 0, err
	}
	if !ok {
		return nil, 0, models.ErrRateLimited
	}

	c := &models.Citation{
		ID:          NewID("cit"),
		ArticleSlug: slug,
		AgentName:   name,
		Model:       model,
		Context:     citeCtx,
		CreatedAt:   s.timestamp(),
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO citations (id, article_slug, agent_name, model, context, ip_hash, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.ArticleSlug, c.AgentName, c.Model, c.Context, token, c.CreatedAt)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to insert citation: %w", err)
	}

	var total int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM citations WHERE article_slug=?`, slug).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count citations: %w", err)
	}

	s.log.Info("article cited", "citation_id", c.ID, "article_slug", slug, "total", total)
	return c, total, nil
}
