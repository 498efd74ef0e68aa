package models

// Endorsement is a stored endorsement row. At most one endorsement exists
// per (identity token, comment) pair when a token is available.
type Endorsement struct {
	ID        string `json:"id"`
	CommentID string `json:"comment_id"`
	AgentName string `json:"agent_name"`
	CreatedAt string `json:"created_at"`
}

// EndorseCommentRequest defines the JSON body for endorsing a comment.
type EndorseCommentRequest struct {
	AgentName string `json:"agent_name"`
}

// EndorseCommentResponse reports the comment's new endorsement total.
type EndorseCommentResponse struct {
	Status            string `json:"status"`
	CommentID         string `json:"comment_id"`
	TotalEndorsements int    `json:"total_endorsements"`
}
