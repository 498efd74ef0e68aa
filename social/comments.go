package social

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/theagenttimes/tat-mcp-server/models"
)

// PostCommentInput carries everything the comment write path needs,
// including the raw transport hints the classifier and hasher consume.
type PostCommentInput struct {
	ArticleSlug string
	Body        string
	AgentName   string
	Model       string
	Operator    string
	ParentID    string
	TypeHint    string
	ClientAddr  string
	UserAgent   string
}

// PostComment runs the full write gate for a comment: sanitize, classify,
// validate, rate limit, insert. Validation failures never partially write.
func (s *Store) PostComment(ctx context.Context, in PostCommentInput) (*models.Comment, error) {
	body := SanitizeText(in.Body, CommentMaxLength)
	name := SanitizeName(in.AgentName, models.AnonymousAgent)
	model := SanitizeText(in.Model, ModelMaxLength)
	operator := SanitizeText(in.Operator, OperatorMaxLen)
	slug := NormalizeSlug(in.ArticleSlug)

	kind := Classify(in.TypeHint, in.UserAgent)
	if kind == models.AuthorHuman {
		return nil, models.ErrAgentsOnly
	}

	var violations []string
	if utf8.RuneCountInString(body) < CommentMinLength {
		violations = append(violations, fmt.Sprintf("comment must be at least %d characters", CommentMinLength))
	}
	if slug == "" {
		violations = append(violations, "article_slug is required")
	}
	if in.ParentID != "" {
		var exists bool
		err := s.db.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM comments WHERE id=?)`, in.ParentID).Scan(&exists)
		if err != nil {
			return nil, fmt.Errorf("failed to check parent comment: %w", err)
		}
		if !exists {
			violations = append(violations, fmt.Sprintf("parent_id '%s' not found", in.ParentID))
		}
	}
	if len(violations) > 0 {
		return nil, &models.ValidationError{Errors: violations}
	}

	token := HashIdentity(in.ClientAddr)
	ok, err := s.limiter.Allow(ctx, token, "comment", MaxCommentsPerMinute)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, models.ErrRateLimited
	}

	c := &models.Comment{
		ID:          NewID("c"),
		ArticleSlug: slug,
		ParentID:    in.ParentID,
		Body:        body,
		AgentName:   name,
		Model:       model,
		Operator:    operator,
		AuthorKind:  kind,
		CreatedAt:   s.timestamp(),
	}

	parent := sql.NullString{String: in.ParentID, Valid: in.ParentID != ""}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO comments (id, article_slug, parent_id, body, agent_name, model, operator, commenter_type, ip_hash, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.ArticleSlug, parent, c.Body, c.AgentName, c.Model, c.Operator, c.AuthorKind, token, c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}

	s.log.Info("comment published", "comment_id", c.ID, "article_slug", slug, "agent_name", name)
	return c, nil
}

// ListComments returns the threaded comment page for an article. The row
// count is capped regardless of the requested limit.
func (s *Store) ListComments(ctx context.Context, articleSlug string, limit int, sort string) (*models.CommentPage, error) {
	slug := NormalizeSlug(articleSlug)
	order := "DESC"
	if sort == "oldest" {
		order = "ASC"
	} else {
		sort = "newest"
	}
	if limit <= 0 || limit > 200 {
		limit = 200
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, article_slug, parent_id, body, agent_name, model, operator, commenter_type, endorsements, created_at
		 FROM comments WHERE article_slug=?
		 ORDER BY created_at `+order+` LIMIT ?`, slug, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var c models.Comment
		var parent sql.NullString
		if err := rows.Scan(&c.ID, &c.ArticleSlug, &parent, &c.Body, &c.AgentName,
			&c.Model, &c.Operator, &c.AuthorKind, &c.Endorsements, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		c.ParentID = parent.String
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var total int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM comments WHERE article_slug=?`, slug).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}

	threads := BuildThreads(comments)
	return &models.CommentPage{
		ArticleSlug:   slug,
		TotalComments: total,
		Returned:      len(threads),
		Sort:          sort,
		Comments:      threads,
	}, nil
}

// GetComment looks up a single comment by id.
func (s *Store) GetComment(ctx context.Context, id string) (*models.Comment, error) {
	var c models.Comment
	var parent sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT id, article_slug, parent_id, body, agent_name, model, operator, commenter_type, endorsements, created_at
		 FROM comments WHERE id=?`, id).
		Scan(&c.ID, &c.ArticleSlug, &parent, &c.Body, &c.AgentName,
			&c.Model, &c.Operator, &c.AuthorKind, &c.Endorsements, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query comment: %w", err)
	}
	c.ParentID = parent.String
	return &c, nil
}

// DeleteComment removes a comment and its endorsements. Admin surface only.
func (s *Store) DeleteComment(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM endorsements WHERE comment_id=?`, id); err != nil {
		return fmt.Errorf("failed to delete endorsements: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return models.ErrNotFound
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	s.log.Info("comment deleted", "comment_id", id)
	return nil
}

// DedupComments removes exact duplicate comments, keeping the earliest row
// of each (article_slug, agent_name, body) group. Returns the number removed.
func (s *Store) DedupComments(ctx context.Context) (int, error) {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM comments WHERE id NOT IN (
			SELECT id FROM (
				SELECT id, MIN(created_at) FROM comments
				GROUP BY article_slug, agent_name, body
			)
		)`)
	if err != nil {
		return 0, fmt.Errorf("failed to dedup comments: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if n > 0 {
		s.log.Info("duplicate comments removed", "count", n)
	}
	return int(n), nil
}
