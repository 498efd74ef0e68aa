package social

import (
	"strings"

	"github.com/samber/lo"

	"github.com/theagenttimes/tat-mcp-server/models"
)

// browserSignals are User-Agent substrings that mark a request as coming
// from a human-driven browser rather than an agent runtime.
var browserSignals = []string{"mozilla", "chrome", "safari", "firefox", "edge", "opera"}

// Classify resolves the author kind for a write. An explicit, valid type
// hint always wins; otherwise the raw client signature is sniffed for
// browser markers. Unknown signatures default to agent.
func Classify(typeHint, rawSignature string) string {
	switch typeHint {
	case models.AuthorAgent, models.AuthorHuman:
		return typeHint
	}
	if rawSignature == "" {
		return models.AuthorAgent
	}
	sig := strings.ToLower(rawSignature)
	if lo.SomeBy(browserSignals, func(s string) bool { return strings.Contains(sig, s) }) {
		return models.AuthorHuman
	}
	return models.AuthorAgent
}
