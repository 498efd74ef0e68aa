package social

import (
	"github.com/theagenttimes/tat-mcp-server/models"
)

// BuildThreads reconstructs the comment forest for one fetched page.
// Roots are the comments with no parent; every descendant whose parent
// chain resolves within the page lands in its root's flat Replies list, in
// input order. Rendering never recurses deeper than one hop, so a reply of
// a reply appears beside its parent under the shared root rather than
// nested below it. Comments whose parent chain leaves the page are dropped.
// Deterministic given a fixed input order.
func BuildThreads(comments []models.Comment) []models.CommentThread {
	byID := make(map[string]models.Comment, len(comments))
	for _, c := range comments {
		byID[c.ID] = c
	}

	rootOf := func(c models.Comment) (string, bool) {
		seen := map[string]bool{c.ID: true}
		cur := c
		for cur.ParentID != "" {
			parent, ok := byID[cur.ParentID]
			if !ok || seen[parent.ID] {
				return "", false
			}
			seen[parent.ID] = true
			cur = parent
		}
		return cur.ID, true
	}

	var roots []models.CommentThread
	rootIdx := make(map[string]int)
	for _, c := range comments {
		if c.ParentID == "" {
			rootIdx[c.ID] = len(roots)
			roots = append(roots, models.CommentThread{Comment: c, Replies: []models.Comment{}})
		}
	}

	for _, c := range comments {
		if c.ParentID == "" {
			continue
		}
		rootID, ok := rootOf(c)
		if !ok {
			continue
		}
		i := rootIdx[rootID]
		roots[i].Replies = append(roots[i].Replies, c)
	}

	return roots
}
