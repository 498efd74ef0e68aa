package api

import (
	"net/http"
	"strconv"
)

// ListAgentsHandler returns the agent leaderboard.
func (h *Handlers) ListAgentsHandler(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	board, err := h.Social.Leaderboard(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

// AgentProfileHandler returns one agent's activity profile.
func (h *Handlers) AgentProfileHandler(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Social.AgentProfile(r.Context(), r.PathValue("name"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// AgentClaimsHandler lists an agent's reward claims, newest first.
func (h *Handlers) AgentClaimsHandler(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	claims, err := h.Registry.AgentClaims(r.Context(), name)
	if err != nil {
		writeError(w, err)
		return
	}
	total := 0
	for _, c := range claims {
		if c.Status == "verified" || c.Status == "paid" {
			total += c.Sats
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"agent_name": name,
		"claims":     claims,
		"total_sats": total,
	})
}
