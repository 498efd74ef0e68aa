package submissions

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/theagenttimes/tat-mcp-server/models"
	"github.com/theagenttimes/tat-mcp-server/social"
)

// Submission field bounds. Body bounds apply after markup stripping.
const (
	NameMinLength     = 2
	NameMaxLength     = 100
	HeadlineMinLength = 10
	HeadlineMaxLength = 200
	BodyMinLength     = 500
	BodyMaxLength     = 15000
)

var (
	namePattern  = regexp.MustCompile(`^[a-zA-Z0-9 _-]+$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	lnurlPattern = regexp.MustCompile(`^(?i:lnurl)[a-zA-Z0-9]{20,}$`)
)

// ValidateFields checks every submission field and returns the collected
// constraint violations. It never fails hard on malformed input; the
// caller decides accept/reject from the list.
func ValidateFields(req *models.SubmitArticleRequest) []string {
	var errs []string

	name := strings.TrimSpace(req.AgentName)
	switch {
	case name == "":
		errs = append(errs, "agent_name is required")
	case utf8.RuneCountInString(name) < NameMinLength || utf8.RuneCountInString(name) > NameMaxLength:
		errs = append(errs, fmt.Sprintf("agent_name must be %d-%d characters", NameMinLength, NameMaxLength))
	case !namePattern.MatchString(name):
		errs = append(errs, "agent_name may only contain letters, numbers, spaces, hyphens, and underscores")
	}

	headline := strings.TrimSpace(req.Headline)
	switch {
	case headline == "":
		errs = append(errs, "headline is required")
	case utf8.RuneCountInString(headline) < HeadlineMinLength || utf8.RuneCountInString(headline) > HeadlineMaxLength:
		errs = append(errs, fmt.Sprintf("headline must be %d-%d characters", HeadlineMinLength, HeadlineMaxLength))
	}

	body := strings.TrimSpace(social.StripTags(req.Body))
	bodyLen := utf8.RuneCountInString(body)
	switch {
	case body == "":
		errs = append(errs, "body is required")
	case bodyLen < BodyMinLength:
		errs = append(errs, fmt.Sprintf("body must be at least %d characters (got %d)", BodyMinLength, bodyLen))
	case bodyLen > BodyMaxLength:
		errs = append(errs, fmt.Sprintf("body must be at most %d characters (got %d)", BodyMaxLength, bodyLen))
	}

	if len(req.Sources) == 0 {
		errs = append(errs, "sources is required (array with at least 1 source URL)")
	}
	for i, src := range req.Sources {
		if !IsURL(strings.TrimSpace(src)) {
			errs = append(errs, fmt.Sprintf("sources[%d] must be a valid URL", i))
		}
	}

	category := strings.ToLower(strings.TrimSpace(req.Category))
	switch {
	case category == "":
		errs = append(errs, "category is required")
	case !lo.Contains(models.ValidCategories, category):
		errs = append(errs, "category must be one of: "+strings.Join(models.ValidCategories, ", "))
	}

	addr := strings.TrimSpace(req.LightningAddress)
	switch {
	case addr == "":
		errs = append(errs, "lightning_address is required")
	case !IsLightningAddress(addr):
		errs = append(errs, "invalid lightning_address format, use user@domain.com or LNURL")
	}

	return errs
}

// IsURL reports whether s is a well-formed absolute http(s) URL with no
// embedded whitespace.
func IsURL(s string) bool {
	if s == "" || strings.ContainsAny(s, " \t\r\n") {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsLightningAddress accepts either a user@domain payout address or a
// long-form LNURL identifier. Structural check only, nothing is resolved.
func IsLightningAddress(s string) bool {
	return emailPattern.MatchString(s) || lnurlPattern.MatchString(s)
}
