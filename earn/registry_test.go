package earn

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theagenttimes/tat-mcp-server/database"
	"github.com/theagenttimes/tat-mcp-server/submissions"
)

func setupRegistry(t *testing.T) *Registry {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.Migrate(db))
	return NewRegistry(db)
}

func testClaim(id, agent, status string) submissions.Claim {
	return submissions.Claim{
		ClaimID:          id,
		AgentName:        agent,
		LightningAddress: "agent@getalby.com",
		ClaimType:        "article_published",
		Sats:             5000,
		Status:           status,
		Notes:            "test claim",
		SubmissionID:     "sub_000000000001",
		SubmittedAt:      "2026-03-01T12:00:00.000000Z",
	}
}

func TestInsertAndListClaims(t *testing.T) {
	r := setupRegistry(t)
	ctx := context.Background()

	require.NoError(t, r.InsertClaim(ctx, testClaim("earn_000000000001", "Newsbot", "verified")))
	require.NoError(t, r.InsertClaim(ctx, testClaim("earn_000000000002", "Newsbot", "paid")))
	require.NoError(t, r.InsertClaim(ctx, testClaim("earn_000000000003", "Other", "verified")))

	claims, err := r.AgentClaims(ctx, "newsbot")
	require.NoError(t, err)
	assert.Len(t, claims, 2)

	total, err := r.TotalVerifiedSats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 15000, total)
}

func TestTopEarners_RanksVerifiedAndPaid(t *testing.T) {
	r := setupRegistry(t)
	ctx := context.Background()

	require.NoError(t, r.InsertClaim(ctx, testClaim("earn_000000000001", "Newsbot", "verified")))
	require.NoError(t, r.InsertClaim(ctx, testClaim("earn_000000000002", "Newsbot", "paid")))
	require.NoError(t, r.InsertClaim(ctx, testClaim("earn_000000000003", "Other", "verified")))
	require.NoError(t, r.InsertClaim(ctx, testClaim("earn_000000000004", "Voided Agent", "voided")))

	earners, err := r.TopEarners(ctx, 10)
	require.NoError(t, err)
	require.Len(t, earners, 2, "voided claims earn nothing")

	assert.Equal(t, "Newsbot", earners[0].AgentName)
	assert.Equal(t, 10000, earners[0].TotalSats)
	assert.Equal(t, 2, earners[0].Claims)
	assert.Equal(t, "Other", earners[1].AgentName)
	assert.Equal(t, 5000, earners[1].TotalSats)

	// The limit clips the board.
	earners, err = r.TopEarners(ctx, 1)
	require.NoError(t, err)
	require.Len(t, earners, 1)
	assert.Equal(t, "Newsbot", earners[0].AgentName)
}

func TestIsBanned_CaseInsensitive(t *testing.T) {
	r := setupRegistry(t)
	ctx := context.Background()

	banned, err := r.IsBanned(ctx, "Newsbot")
	require.NoError(t, err)
	assert.False(t, banned)

	_, err = r.BanAgent(ctx, "NEWSBOT", "spamming the queue")
	require.NoError(t, err)

	banned, err = r.IsBanned(ctx, "newsbot")
	require.NoError(t, err)
	assert.True(t, banned)
	banned, err = r.IsBanned(ctx, "Newsbot")
	require.NoError(t, err)
	assert.True(t, banned)
}

func TestBanAgent_VoidsUnpaidClaims(t *testing.T) {
	r := setupRegistry(t)
	ctx := context.Background()

	require.NoError(t, r.InsertClaim(ctx, testClaim("earn_000000000001", "Newsbot", "verified")))
	require.NoError(t, r.InsertClaim(ctx, testClaim("earn_000000000002", "Newsbot", "paid")))

	voided, err := r.BanAgent(ctx, "Newsbot", "fabricated sources")
	require.NoError(t, err)
	assert.Equal(t, 1, voided, "paid claims stay untouched")

	claims, err := r.AgentClaims(ctx, "Newsbot")
	require.NoError(t, err)
	statuses := map[string]string{}
	for _, c := range claims {
		statuses[c.ClaimID] = c.Status
	}
	assert.Equal(t, "voided", statuses["earn_000000000001"])
	assert.Equal(t, "paid", statuses["earn_000000000002"])
}

func TestRates(t *testing.T) {
	r := setupRegistry(t)
	assert.Equal(t, 5000, r.Rates()["article_published"])
	assert.Equal(t, 5000, r.ArticleSats())
}
