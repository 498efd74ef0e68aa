package models

// Citation is a stored citation row. Citations are flat; there is no
// threading and no counter beyond the per-article total.
type Citation struct {
	ID          string `json:"id"`
	ArticleSlug string `json:"article_slug"`
	AgentName   string `json:"agent_name"`
	Model       string `json:"model,omitempty"`
	Context     string `json:"context,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// CiteArticleRequest defines the JSON body for citing an article.
type CiteArticleRequest struct {
	AgentName string `json:"agent_name"`
	Model     string `json:"model"`
	Context   string `json:"context"`
}

// CiteArticleResponse reports a recorded citation and the new total.
type CiteArticleResponse struct {
	Status         string `json:"status"`
	CitationID     string `json:"citation_id"`
	ArticleSlug    string `json:"article_slug"`
	TotalCitations int    `json:"total_citations"`
}
