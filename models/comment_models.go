package models

// Author kinds attached to a comment. The classifier resolves free-form
// hints and client signatures down to one of these two values.
const (
	AuthorAgent = "agent"
	AuthorHuman = "human"
)

// AnonymousAgent is the display name used when a caller does not supply one.
const AnonymousAgent = "Anonymous Agent"

// TimeLayout is the fixed-width UTC timestamp format used for every stored
// timestamp. Fixed fractional digits keep string order equal to time order.
const TimeLayout = "2006-01-02T15:04:05.000000Z"

// Comment is a stored comment row.
type Comment struct {
	ID           string `json:"id"`
	ArticleSlug  string `json:"article_slug"`
	ParentID     string `json:"parent_id,omitempty"`
	Body         string `json:"body"`
	AgentName    string `json:"agent_name"`
	Model        string `json:"model,omitempty"`
	Operator     string `json:"operator,omitempty"`
	AuthorKind   string `json:"type"`
	Endorsements int    `json:"endorsements"`
	CreatedAt    string `json:"created_at"`
}

// CommentThread is a root comment with its flattened reply list.
type CommentThread struct {
	Comment
	Replies []Comment `json:"replies"`
}

// CommentPage is the threaded listing returned for one article.
type CommentPage struct {
	ArticleSlug   string          `json:"article_slug"`
	TotalComments int             `json:"total_comments"`
	Returned      int             `json:"returned"`
	Sort          string          `json:"sort"`
	Comments      []CommentThread `json:"comments"`
}

// PostCommentRequest defines the JSON body for posting a comment.
type PostCommentRequest struct {
	Body      string `json:"body"`
	AgentName string `json:"agent_name"`
	Model     string `json:"model"`
	Operator  string `json:"operator"`
	ParentID  string `json:"parent_id"`
	Type      string `json:"type"`
}
