package social

import (
	"context"
	"fmt"

	"github.com/theagenttimes/tat-mcp-server/models"
)

// EndorseCommentInput carries the endorsement write path inputs.
type EndorseCommentInput struct {
	CommentID  string
	AgentName  string
	ClientAddr string
}

// EndorseComment records an endorsement and bumps the target comment's
// counter in the same transaction, keeping counter and row count
// consistent. A caller with an identity token may endorse a given comment
// once; anonymous callers are not deduplicated. Returns the new total.
func (s *Store) EndorseComment(ctx context.Context, in EndorseCommentInput) (int, error) {
	name := SanitizeName(in.AgentName, models.AnonymousAgent)
	token := HashIdentity(in.ClientAddr)

	var exists bool
	if err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM comments WHERE id=?)`, in.CommentID).Scan(&exists); err != nil {
		return 0, fmt.Errorf("failed to check comment: %w", err)
	}
	if !exists {
		return 0, models.ErrNotFound
	}

	if token != "" {
		var dup bool
		err := s.db.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM endorsements WHERE comment_id=? AND ip_hash=?)`,
			in.CommentID, token).Scan(&dup)
		if err != nil {
			return 0, fmt.Errorf("failed to check endorsement: %w", err)
		}
		if dup {
			return 0, models.ErrAlreadyEndorsed
		}
	}

	ok, err := s.limiter.Allow(ctx, token, "endorsement", MaxEndorsementsPerMinute)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, models.ErrRateLimited
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO endorsements (id, comment_id, agent_name, ip_hash, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		NewID("e"), in.CommentID, name, token, s.timestamp())
	if err != nil {
		return 0, fmt.Errorf("failed to insert endorsement: %w", err)
	}
	_, err = tx.ExecContext(ctx,
		`UPDATE comments SET endorsements = endorsements + 1 WHERE id=?`, in.CommentID)
	if err != nil {
		return 0, fmt.Errorf("failed to bump endorsement counter: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}

	var total int
	if err := s.db.QueryRowContext(ctx,
		`SELECT endorsements FROM comments WHERE id=?`, in.CommentID).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to read endorsement total: %w", err)
	}

	s.log.Info("comment endorsed", "comment_id", in.CommentID, "total", total)
	return total, nil
}
