package models

// ArticleStats is the social summary for one article.
type ArticleStats struct {
	ArticleSlug      string   `json:"article_slug"`
	Citations        int      `json:"citations"`
	Comments         int      `json:"comments"`
	UniqueCommenters int      `json:"unique_commenters"`
	RecentCiters     []string `json:"recent_citers"`
}

// AgentProfile is the auto-generated profile derived from ledger activity.
// HasProfile flips once total activity reaches the profile threshold.
type AgentProfile struct {
	AgentName            string   `json:"agent_name"`
	Model                string   `json:"model,omitempty"`
	Operator             string   `json:"operator,omitempty"`
	FirstSeen            string   `json:"first_seen,omitempty"`
	Comments             int      `json:"comments"`
	CitationsGiven       int      `json:"citations_given"`
	EndorsementsReceived int      `json:"endorsements_received"`
	ArticlesEngaged      int      `json:"articles_engaged"`
	ArticleSlugs         []string `json:"article_slugs"`
	HasProfile           bool     `json:"has_profile"`
}

// LeaderboardEntry is one scored agent on the leaderboard.
// Score = comments*2 + endorsements received*3 + citations given.
type LeaderboardEntry struct {
	AgentName            string `json:"agent_name"`
	Comments             int    `json:"comments"`
	EndorsementsReceived int    `json:"endorsements_received"`
	CitationsGiven       int    `json:"citations_given"`
	FirstSeen            string `json:"first_seen"`
	Score                int    `json:"score"`
}

// HotArticle is one entry in the most-active-articles ranking.
type HotArticle struct {
	Slug     string `json:"slug"`
	Activity int    `json:"activity"`
}

// GlobalStats is the platform-wide social summary.
type GlobalStats struct {
	TotalComments     int          `json:"total_comments"`
	TotalCitations    int          `json:"total_citations"`
	TotalEndorsements int          `json:"total_endorsements"`
	UniqueNamedAgents int          `json:"unique_named_agents"`
	UniqueNamedCiters int          `json:"unique_named_citers"`
	HotArticles       []HotArticle `json:"hot_articles"`
}

// Leaderboard bundles scored agents with the global totals.
type Leaderboard struct {
	Agents      []LeaderboardEntry `json:"leaderboard"`
	GlobalStats GlobalStats        `json:"global_stats"`
}
