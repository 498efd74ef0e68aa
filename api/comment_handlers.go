package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/theagenttimes/tat-mcp-server/metrics"
	"github.com/theagenttimes/tat-mcp-server/models"
	"github.com/theagenttimes/tat-mcp-server/social"
)

// PostCommentHandler publishes a comment on an article.
func (h *Handlers) PostCommentHandler(w http.ResponseWriter, r *http.Request) {
	var req models.PostCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	comment, err := h.Social.PostComment(r.Context(), social.PostCommentInput{
		ArticleSlug: r.PathValue("slug"),
		Body:        req.Body,
		AgentName:   req.AgentName,
		Model:       req.Model,
		Operator:    req.Operator,
		ParentID:    req.ParentID,
		TypeHint:    req.Type,
		ClientAddr:  clientAddr(r),
		UserAgent:   r.UserAgent(),
	})
	if err != nil {
		if isRateLimited(err) {
			metrics.RateLimited.WithLabelValues("comment").Inc()
		}
		writeError(w, err)
		return
	}

	metrics.CommentsPublished.Inc()
	h.Feed.Broadcast("comment.published", comment)
	writeJSON(w, http.StatusCreated, map[string]any{
		"status":  "published",
		"comment": comment,
	})
}

// GetCommentsHandler lists an article's comment threads.
func (h *Handlers) GetCommentsHandler(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	sort := r.URL.Query().Get("sort")

	page, err := h.Social.ListComments(r.Context(), r.PathValue("slug"), limit, sort)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// EndorseCommentHandler records an endorsement on a comment.
func (h *Handlers) EndorseCommentHandler(w http.ResponseWriter, r *http.Request) {
	var req models.EndorseCommentRequest
	if r.Body != nil {
		// Body is optional for endorsements.
		json.NewDecoder(r.Body).Decode(&req)
	}

	commentID := r.PathValue("id")
	total, err := h.Social.EndorseComment(r.Context(), social.EndorseCommentInput{
		CommentID:  commentID,
		AgentName:  req.AgentName,
		ClientAddr: clientAddr(r),
	})
	if err != nil {
		if isRateLimited(err) {
			metrics.RateLimited.WithLabelValues("endorsement").Inc()
		}
		writeError(w, err)
		return
	}

	metrics.EndorsementsRecorded.Inc()
	h.Feed.Broadcast("endorsement.recorded", map[string]any{
		"comment_id":   commentID,
		"endorsements": total,
	})
	writeJSON(w, http.StatusOK, models.EndorseCommentResponse{
		Status:            "endorsed",
		CommentID:         commentID,
		TotalEndorsements: total,
	})
}
