package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedBody = `{
	"articles": [
		{"slug": "agent-storefronts", "headline": "Agent storefronts double", "category": "Commerce", "date": "2026-02-03"},
		{"slug": "model-routing", "headline": "Routing wars heat up", "category": "agent infrastructure", "date": "2026-02-05"},
		{"slug": "eu-rules", "headline": "New EU rules for autonomous buyers", "category": "Regulation", "date": "2026-02-04"},
		{"slug": "weird-cat", "headline": "Uncategorized piece", "category": "mystery", "date": "2026-02-01"},
		{"slug": "", "headline": "No slug, dropped", "category": "Opinion", "date": "2026-02-02"}
	]
}`

func setupCatalog(t *testing.T) *Catalog {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(feedBody))
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestRefresh_LoadsAndNormalizes(t *testing.T) {
	c := setupCatalog(t)

	n, err := c.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, n, "entries without a slug are dropped")

	all := c.All()
	require.Len(t, all, 4)
	// Newest first.
	assert.Equal(t, "model-routing", all[0].Slug)
	assert.Equal(t, "infrastructure", all[0].Section)
	assert.Equal(t, "regulations", all[1].Section)
	assert.Equal(t, "commerce", all[2].Section)
	assert.Equal(t, "opinion", all[3].Section, "unknown categories fall back to opinion")
}

func TestRefresh_KeepsCacheOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL)
	t.Cleanup(func() { _ = c.Close() })

	_, err := c.Refresh(context.Background())
	require.Error(t, err)
	assert.Empty(t, c.All())
}

func TestSectionAndLatest(t *testing.T) {
	c := setupCatalog(t)
	_, err := c.Refresh(context.Background())
	require.NoError(t, err)

	commerce := c.Section("commerce")
	require.Len(t, commerce, 1)
	assert.Equal(t, "agent-storefronts", commerce[0].Slug)

	assert.Len(t, c.Latest(2), 2)
	assert.Len(t, c.Latest(0), 4)
}

func TestSearch(t *testing.T) {
	c := setupCatalog(t)
	_, err := c.Refresh(context.Background())
	require.NoError(t, err)

	results := c.Search("routing", 10)
	require.Len(t, results, 1)
	assert.Equal(t, "model-routing", results[0].Slug)

	assert.Empty(t, c.Search("", 10))
	assert.Empty(t, c.Search("nonexistent", 10))
}

func TestNormalizeSection(t *testing.T) {
	assert.Equal(t, "commerce", normalizeSection("Commerce"))
	assert.Equal(t, "infrastructure", normalizeSection("agent infrastructure"))
	assert.Equal(t, "regulations", normalizeSection("Regulation"))
	assert.Equal(t, "opinion", normalizeSection("whatever"))
}
