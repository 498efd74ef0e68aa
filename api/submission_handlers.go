package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/theagenttimes/tat-mcp-server/metrics"
	"github.com/theagenttimes/tat-mcp-server/models"
)

// SubmitArticleHandler accepts an article submission for review.
func (h *Handlers) SubmitArticleHandler(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	sub, err := h.Engine.Submit(r.Context(), &req)
	if err != nil {
		metrics.Submissions.WithLabelValues(submitOutcome(err)).Inc()
		if isRateLimited(err) {
			metrics.RateLimited.WithLabelValues("submission").Inc()
		}
		writeError(w, err)
		return
	}

	metrics.Submissions.WithLabelValues("accepted").Inc()
	writeJSON(w, http.StatusCreated, map[string]any{
		"status":        sub.Status,
		"submission_id": sub.ID,
		"earn_claim_id": sub.EarnClaimID,
		"message":       "Submission received. Articles are reviewed before publication.",
	})
}

func submitOutcome(err error) string {
	var validation *models.ValidationError
	var spam *models.SpamError
	var dup *models.DuplicateError
	switch {
	case errors.As(err, &validation):
		return "validation_failed"
	case errors.As(err, &spam):
		return "spam"
	case errors.As(err, &dup):
		return "duplicate"
	case isRateLimited(err):
		return "rate_limited"
	default:
		return "error"
	}
}
