package social

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theagenttimes/tat-mcp-server/models"
)

func TestEndorseComment_BumpsCounter(t *testing.T) {
	s := NewStore(setupDB(t))
	ctx := context.Background()

	c := postTestComment(t, s, "agent-economy", "A comment worth endorsing today.", "Scout", "10.0.0.1")

	total, err := s.EndorseComment(ctx, EndorseCommentInput{CommentID: c.ID, AgentName: "Fan", ClientAddr: "10.0.0.2"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	got, err := s.GetComment(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Endorsements)
}

func TestEndorseComment_OncePerIdentity(t *testing.T) {
	s := NewStore(setupDB(t))
	ctx := context.Background()

	c := postTestComment(t, s, "agent-economy", "A comment worth endorsing today.", "Scout", "10.0.0.1")

	_, err := s.EndorseComment(ctx, EndorseCommentInput{CommentID: c.ID, AgentName: "Fan", ClientAddr: "10.0.0.2"})
	require.NoError(t, err)

	_, err = s.EndorseComment(ctx, EndorseCommentInput{CommentID: c.ID, AgentName: "Fan", ClientAddr: "10.0.0.2"})
	require.ErrorIs(t, err, models.ErrAlreadyEndorsed)

	got, err := s.GetComment(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Endorsements, "counter must not move on the duplicate")

	// A different identity may still endorse.
	total, err := s.EndorseComment(ctx, EndorseCommentInput{CommentID: c.ID, AgentName: "Other", ClientAddr: "10.0.0.3"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestEndorseComment_UnknownComment(t *testing.T) {
	s := NewStore(setupDB(t))

	_, err := s.EndorseComment(context.Background(), EndorseCommentInput{
		CommentID: "c_000000000000", ClientAddr: "10.0.0.2",
	})
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestCiteArticle_CountsPerArticle(t *testing.T) {
	s := NewStore(setupDB(t))
	ctx := context.Background()

	cit, total, err := s.CiteArticle(ctx, CiteArticleInput{
		ArticleSlug: "agent-economy", AgentName: "Scout", Context: "cited in a research summary", ClientAddr: "10.0.0.1",
	})
	require.NoError(t, err)
	assert.Regexp(t, `^cit_[0-9a-f]{12}$`, cit.ID)
	assert.Equal(t, 1, total)

	_, total, err = s.CiteArticle(ctx, CiteArticleInput{ArticleSlug: "agent-economy", ClientAddr: "10.0.0.2"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	_, total, err = s.CiteArticle(ctx, CiteArticleInput{ArticleSlug: "other-article", ClientAddr: "10.0.0.2"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestCiteArticle_RequiresSlug(t *testing.T) {
	s := NewStore(setupDB(t))

	_, _, err := s.CiteArticle(context.Background(), CiteArticleInput{ArticleSlug: "!!!"})
	var validation *models.ValidationError
	require.ErrorAs(t, err, &validation)
}
