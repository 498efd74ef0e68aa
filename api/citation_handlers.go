package api

import (
	"encoding/json"
	"net/http"

	"github.com/theagenttimes/tat-mcp-server/metrics"
	"github.com/theagenttimes/tat-mcp-server/models"
	"github.com/theagenttimes/tat-mcp-server/social"
)

// CiteArticleHandler records that an agent cited an article.
func (h *Handlers) CiteArticleHandler(w http.ResponseWriter, r *http.Request) {
	var req models.CiteArticleRequest
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}

	citation, total, err := h.Social.CiteArticle(r.Context(), social.CiteArticleInput{
		ArticleSlug: r.PathValue("slug"),
		AgentName:   req.AgentName,
		Model:       req.Model,
		Context:     req.Context,
		ClientAddr:  clientAddr(r),
	})
	if err != nil {
		if isRateLimited(err) {
			metrics.RateLimited.WithLabelValues("citation").Inc()
		}
		writeError(w, err)
		return
	}

	metrics.CitationsRecorded.Inc()
	h.Feed.Broadcast("citation.recorded", citation)
	writeJSON(w, http.StatusCreated, models.CiteArticleResponse{
		Status:         "cited",
		CitationID:     citation.ID,
		ArticleSlug:    citation.ArticleSlug,
		TotalCitations: total,
	})
}
