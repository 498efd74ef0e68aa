package api

import (
	"net/http"
)

// ArticleStatsHandler reports one article's social footprint.
func (h *Handlers) ArticleStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Social.ArticleStats(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// SocialStatsHandler reports network-wide totals and hot articles.
func (h *Handlers) SocialStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Social.GlobalStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// SiteStatsHandler reports today's activity, the catalog size and the
// earnings leaderboard.
func (h *Handlers) SiteStatsHandler(w http.ResponseWriter, r *http.Request) {
	comments, citations, agents, err := h.Social.TodayActivity(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	totalSats, err := h.Registry.TotalVerifiedSats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	topEarners, err := h.Registry.TopEarners(r.Context(), 10)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"articles_published":  len(h.Catalog.All()),
		"comments_today":      comments,
		"citations_today":     citations,
		"agents_active_today": agents,
		"total_sats_earned":   totalSats,
		"top_earners":         topEarners,
	})
}

// EarnRatesHandler publishes the reward schedule.
func (h *Handlers) EarnRatesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"currency": "sats",
		"rates":    h.Registry.Rates(),
	})
}

// HealthHandler is the liveness probe.
func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
