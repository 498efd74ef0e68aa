// Package catalog mirrors the published article index. The source feed
// is fetched over HTTP and cached in memory; readers never block on the
// network.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"resty.dev/v3"

	"github.com/theagenttimes/tat-mcp-server/social"
)

// Sections maps section keys to display titles. Every published article
// belongs to exactly one section.
var Sections = map[string]string{
	"platforms":      "Platforms",
	"commerce":       "Commerce",
	"infrastructure": "Infrastructure",
	"regulations":    "Regulations",
	"labor":          "Labor",
	"opinion":        "Opinion",
}

// Article is one entry in the published catalog.
type Article struct {
	Slug     string `json:"slug"`
	Headline string `json:"headline"`
	Section  string `json:"section"`
	Date     string `json:"date"`
}

// feedEntry mirrors the upstream feed's article shape.
type feedEntry struct {
	Slug     string `json:"slug"`
	Headline string `json:"headline"`
	Category string `json:"category"`
	Date     string `json:"date"`
}

// Catalog fetches and caches the published article index.
type Catalog struct {
	client  *resty.Client
	feedURL string
	log     *slog.Logger

	mu       sync.RWMutex
	articles []Article
}

// New returns a Catalog that pulls the index from feedURL on Refresh.
func New(feedURL string) *Catalog {
	client := resty.NewWithTransportSettings(&resty.TransportSettings{
		DialerTimeout:         5 * time.Second,
		IdleConnTimeout:       30 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ResponseHeaderTimeout: 10 * time.Second,
	})

	return &Catalog{
		client:  client,
		feedURL: feedURL,
		log:     slog.Default().With("component", "catalog"),
	}
}

// Close releases the underlying HTTP client.
func (c *Catalog) Close() error {
	return c.client.Close()
}

// normalizeSection folds feed category names into section keys. The feed
// sometimes prefixes categories with "agent " and uses the singular
// "regulation".
func normalizeSection(category string) string {
	key := strings.ToLower(strings.TrimSpace(category))
	key = strings.TrimPrefix(key, "agent ")
	if key == "regulation" {
		key = "regulations"
	}
	if _, ok := Sections[key]; ok {
		return key
	}
	return "opinion"
}

// Refresh replaces the cached index with the current feed contents and
// returns the number of articles loaded. The cache is left untouched on
// error.
func (c *Catalog) Refresh(ctx context.Context) (int, error) {
	type feed struct {
		Articles []feedEntry `json:"articles"`
	}

	res, err := c.client.R().
		WithContext(ctx).
		SetResult(&feed{}).
		Get(c.feedURL)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch article feed: %w", err)
	}
	if res.IsError() {
		return 0, fmt.Errorf("article feed returned status %d", res.StatusCode())
	}

	entries := res.Result().(*feed).Articles
	articles := make([]Article, 0, len(entries))
	for _, e := range entries {
		slug := social.NormalizeSlug(e.Slug)
		if slug == "" {
			continue
		}
		articles = append(articles, Article{
			Slug:     slug,
			Headline: strings.TrimSpace(e.Headline),
			Section:  normalizeSection(e.Category),
			Date:     e.Date,
		})
	}
	sort.Slice(articles, func(i, j int) bool { return articles[i].Date > articles[j].Date })

	c.mu.Lock()
	c.articles = articles
	c.mu.Unlock()

	c.log.Info("catalog refreshed", "articles", len(articles))
	return len(articles), nil
}

// All returns the cached index, newest first.
func (c *Catalog) All() []Article {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Article, len(c.articles))
	copy(out, c.articles)
	return out
}

// Latest returns up to n of the most recent articles.
func (c *Catalog) Latest(n int) []Article {
	all := c.All()
	if n > 0 && len(all) > n {
		all = all[:n]
	}
	return all
}

// Section returns the cached articles in one section, newest first.
func (c *Catalog) Section(key string) []Article {
	key = strings.ToLower(strings.TrimSpace(key))
	var out []Article
	for _, a := range c.All() {
		if a.Section == key {
			out = append(out, a)
		}
	}
	return out
}

// Search returns up to n articles whose headline or slug contains the
// query, case-insensitively.
func (c *Catalog) Search(query string, n int) []Article {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []Article
	for _, a := range c.All() {
		if strings.Contains(strings.ToLower(a.Headline), q) || strings.Contains(a.Slug, q) {
			out = append(out, a)
			if n > 0 && len(out) == n {
				break
			}
		}
	}
	return out
}
