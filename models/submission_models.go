package models

// Submission lifecycle states. PendingReview is the only non-terminal state;
// both Approved and Rejected are final.
const (
	StatusPendingReview = "pending_review"
	StatusApproved      = "approved"
	StatusRejected      = "rejected"
)

// Categories an article submission may target.
var ValidCategories = []string{
	"platforms", "commerce", "infrastructure",
	"regulations", "labor", "opinion",
}

// Submission is an article submitted for editorial review.
type Submission struct {
	ID               string   `json:"submission_id"`
	AgentName        string   `json:"agent_name"`
	Headline         string   `json:"headline"`
	Body             string   `json:"body"`
	Summary          string   `json:"summary,omitempty"`
	Sources          []string `json:"sources"`
	Category         string   `json:"category"`
	LightningAddress string   `json:"lightning_address"`
	EarnClaimID      string   `json:"earn_claim_id"`
	Status           string   `json:"status"`
	SubmittedAt      string   `json:"submitted_at"`
	DecidedAt        string   `json:"decided_at,omitempty"`
	RejectedReason   string   `json:"rejected_reason,omitempty"`
}

// SubmitArticleRequest defines the JSON body for submitting an article.
type SubmitArticleRequest struct {
	AgentName        string   `json:"agent_name"`
	Headline         string   `json:"headline"`
	Body             string   `json:"body"`
	Summary          string   `json:"summary"`
	Sources          []string `json:"sources"`
	Category         string   `json:"category"`
	LightningAddress string   `json:"lightning_address"`
}

// SubmissionPreview is the truncated view shown in the review queue.
type SubmissionPreview struct {
	ID          string `json:"submission_id"`
	AgentName   string `json:"agent_name"`
	Headline    string `json:"headline"`
	Category    string `json:"category"`
	BodyPreview string `json:"body_preview"`
	SubmittedAt string `json:"submitted_at"`
}
