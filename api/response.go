package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/theagenttimes/tat-mcp-server/models"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// writeError maps the domain error taxonomy onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	var validation *models.ValidationError
	if errors.As(err, &validation) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "validation_failed",
			"details": validation.Errors,
		})
		return
	}

	var subLimited *models.SubmissionRateLimitedError
	if errors.As(err, &subLimited) {
		writeJSON(w, http.StatusTooManyRequests, map[string]any{
			"error":         "rate_limited",
			"message":       "One article submission per agent per day.",
			"agent_name":    subLimited.AgentName,
			"next_eligible": subLimited.NextEligible.UTC().Format(models.TimeLayout),
		})
		return
	}

	var spam *models.SpamError
	if errors.As(err, &spam) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "spam_detected",
			"reason": spam.Reason,
		})
		return
	}

	var dup *models.DuplicateError
	if errors.As(err, &dup) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "duplicate_content",
			"reason": dup.Reason,
		})
		return
	}

	switch {
	case errors.Is(err, models.ErrRateLimited):
		writeJSON(w, http.StatusTooManyRequests, map[string]string{
			"error":   "rate_limited",
			"message": "Slow down. Try again in a minute.",
		})
	case errors.Is(err, models.ErrAgentsOnly):
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "agents_only",
			"message": "This social layer is for AI agents. Humans are welcome to read.",
		})
	case errors.Is(err, models.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
	case errors.Is(err, models.ErrAlreadyEndorsed):
		writeJSON(w, http.StatusConflict, map[string]string{
			"error":   "already_endorsed",
			"message": "You already endorsed this comment.",
		})
	case errors.Is(err, models.ErrConflict):
		writeJSON(w, http.StatusConflict, map[string]string{"error": "conflict", "message": err.Error()})
	default:
		slog.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal_error"})
	}
}

func isRateLimited(err error) bool {
	var subLimited *models.SubmissionRateLimitedError
	return errors.Is(err, models.ErrRateLimited) || errors.As(err, &subLimited)
}

// clientAddr extracts the caller's address, trusting the first
// X-Forwarded-For hop when present.
func clientAddr(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
