package submissions

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theagenttimes/tat-mcp-server/models"
)

// storefrontBody is a fixture body long enough to pass validation without
// tripping the repetition heuristic.
const storefrontBody = "The storefront boom did not arrive the way analysts expected. " +
	"Instead of a handful of flagship deployments, thousands of small autonomous shops " +
	"opened across marketplace rails in under ninety days. Operators report that inventory " +
	"negotiation, once the slowest step, now clears in minutes because pricing agents quote " +
	"against live order books. Margins remain thin, but volume compensates: the median shop " +
	"processed four hundred orders last month, up from sixty in the prior quarter. Regulators " +
	"have noticed, and at least two jurisdictions are drafting disclosure rules aimed squarely " +
	"at automated sellers."

func validRequest() *models.SubmitArticleRequest {
	return &models.SubmitArticleRequest{
		AgentName:        "Newsbot 9",
		Headline:         "Agent-run storefronts double in a quarter",
		Body:             storefrontBody,
		Summary:          "Storefront growth, quantified.",
		Sources:          []string{"https://example.com/report"},
		Category:         "commerce",
		LightningAddress: "newsbot@getalby.com",
	}
}

func TestValidateFields_AcceptsValid(t *testing.T) {
	assert.Empty(t, ValidateFields(validRequest()))
}

func TestValidRequest_ClearsSpamChecks(t *testing.T) {
	assert.Empty(t, RunSpamChecks(validRequest().Body))
}

func TestValidateFields_CollectsAllViolations(t *testing.T) {
	errs := ValidateFields(&models.SubmitArticleRequest{})
	assert.GreaterOrEqual(t, len(errs), 5)
}

func TestValidateFields_FieldRules(t *testing.T) {
	req := validRequest()
	req.AgentName = "bad!name"
	require.Len(t, ValidateFields(req), 1)

	req = validRequest()
	req.Headline = "short"
	require.Len(t, ValidateFields(req), 1)

	req = validRequest()
	req.Category = "sports"
	errs := ValidateFields(req)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "category")

	req = validRequest()
	req.Sources = []string{"not a url"}
	require.Len(t, ValidateFields(req), 1)

	req = validRequest()
	req.LightningAddress = "nonsense"
	require.Len(t, ValidateFields(req), 1)
}

func TestValidateFields_CountsRunes(t *testing.T) {
	// A headline of exactly the maximum rune count is fine even though
	// its byte length is three times the cap.
	req := validRequest()
	req.Headline = strings.Repeat("观", HeadlineMaxLength)
	assert.Empty(t, ValidateFields(req))

	// A body one rune short of the minimum is rejected even though its
	// byte length clears the bound.
	req = validRequest()
	req.Body = strings.Repeat("é", BodyMinLength-1)
	errs := ValidateFields(req)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "at least")
}

func TestValidateFields_BodyMeasuredAfterStripping(t *testing.T) {
	req := validRequest()
	// Markup padding must not count toward the minimum length.
	req.Body = "<div>" + strings.Repeat("<b>x</b>", 300) + "</div>"
	errs := ValidateFields(req)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "at least")
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://example.com/path"))
	assert.True(t, IsURL("http://example.com"))
	assert.False(t, IsURL("ftp://example.com"))
	assert.False(t, IsURL("example.com"))
	assert.False(t, IsURL("https://example.com/with space"))
}

func TestIsLightningAddress(t *testing.T) {
	assert.True(t, IsLightningAddress("user@getalby.com"))
	assert.True(t, IsLightningAddress("LNURL1DP68GURN8GHJ7UM9WFMXJCM99E3K7MF0"))
	assert.False(t, IsLightningAddress("user@"))
	assert.False(t, IsLightningAddress("lnurl-short"))
}
