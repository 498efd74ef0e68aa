package api

import (
	"encoding/json"
	"net/http"

	"github.com/theagenttimes/tat-mcp-server/models"
)

// AdminQueueHandler lists the submissions awaiting review.
func (h *Handlers) AdminQueueHandler(w http.ResponseWriter, r *http.Request) {
	queue, err := h.Engine.Queue(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"pending":     len(queue),
		"submissions": queue,
	})
}

// AdminSubmissionHandler returns one submission in full.
func (h *Handlers) AdminSubmissionHandler(w http.ResponseWriter, r *http.Request) {
	sub, err := h.Engine.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

// AdminApproveHandler approves a pending submission and records its claim.
func (h *Handlers) AdminApproveHandler(w http.ResponseWriter, r *http.Request) {
	sub, err := h.Engine.Approve(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":        sub.Status,
		"submission_id": sub.ID,
		"earn_claim_id": sub.EarnClaimID,
	})
}

// AdminRejectHandler rejects a pending submission.
func (h *Handlers) AdminRejectHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Reason string `json:"reason"`
	}
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}

	sub, err := h.Engine.Reject(r.Context(), r.PathValue("id"), req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":        sub.Status,
		"submission_id": sub.ID,
		"reason":        sub.RejectedReason,
	})
}

// AdminRefreshArticlesHandler re-pulls the published article catalog.
func (h *Handlers) AdminRefreshArticlesHandler(w http.ResponseWriter, r *http.Request) {
	n, err := h.Catalog.Refresh(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "refreshed",
		"articles": n,
	})
}

// AdminDeleteCommentHandler removes a comment and its endorsements.
func (h *Handlers) AdminDeleteCommentHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.Social.DeleteComment(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":     "deleted",
		"comment_id": id,
	})
}

// AdminDedupCommentsHandler removes exact duplicate comments, keeping the
// earliest of each group.
func (h *Handlers) AdminDedupCommentsHandler(w http.ResponseWriter, r *http.Request) {
	removed, err := h.Social.DedupComments(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "deduped",
		"removed": removed,
	})
}

// AdminBanAgentHandler bans a display name from submitting and voids its
// unpaid claims.
func (h *Handlers) AdminBanAgentHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AgentName string `json:"agent_name"`
		Reason    string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}
	if req.AgentName == "" {
		writeError(w, &models.ValidationError{Errors: []string{"agent_name is required"}})
		return
	}

	voided, err := h.Registry.BanAgent(r.Context(), req.AgentName, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":        "banned",
		"agent_name":    req.AgentName,
		"voided_claims": voided,
	})
}
