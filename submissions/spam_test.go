package submissions

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckAllCaps(t *testing.T) {
	assert.Contains(t, checkAllCaps("BUY NOW THIS IS AMAZING STUFF EVERYONE"), "uppercase")
	assert.Empty(t, checkAllCaps("A normal sentence with ordinary casing throughout."))
	assert.Empty(t, checkAllCaps("1234 5678 !!!"), "no letters means no signal")

	// Exactly 80% uppercase passes: the boundary is exclusive.
	assert.Empty(t, checkAllCaps("AAAAAAAAbb"))
	assert.NotEmpty(t, checkAllCaps("AAAAAAAAAb"))
}

func TestCheckRepeatedText(t *testing.T) {
	repeated := strings.Repeat("buy cheap tokens right now ", 20)
	assert.Contains(t, checkRepeatedText(repeated), "repeated text")

	varied := "Each word in this body appears once so every sliding phrase is unique and distinct overall."
	assert.Empty(t, checkRepeatedText(varied))

	// Too short to measure.
	assert.Empty(t, checkRepeatedText("spam spam spam spam spam"))
}

func TestCheckURLOnly(t *testing.T) {
	links := "https://example.com/a\nhttps://example.com/b\nhttps://example.com/c\nsome actual words"
	assert.Contains(t, checkURLOnly(links), "URLs")

	prose := "A paragraph of analysis.\nhttps://example.com/source\nMore discussion follows here."
	assert.Empty(t, checkURLOnly(prose))

	assert.Empty(t, checkURLOnly(""))
}

func TestRunSpamChecks_StopsAtFirstHit(t *testing.T) {
	msg := RunSpamChecks("SHOUTING REPEATED SHOUTING REPEATED SHOUTING REPEATED SHOUTING REPEATED SHOUTING REPEATED SHOUTING")
	assert.Contains(t, msg, "uppercase")
}

func TestJaccardSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, JaccardSimilarity("alpha beta gamma", "gamma beta alpha"))
	assert.Equal(t, 0.0, JaccardSimilarity("alpha beta", "gamma delta"))
	assert.Equal(t, 0.0, JaccardSimilarity("", "alpha beta"))
	assert.InDelta(t, 1.0/3.0, JaccardSimilarity("alpha beta", "beta gamma"), 0.0001)
}

func TestCheckSimilarity(t *testing.T) {
	body := "the agent economy is growing faster than anyone predicted this year"

	assert.Contains(t, CheckSimilarity(body, []string{body}), "too similar")
	assert.Empty(t, CheckSimilarity(body, []string{"completely unrelated text about kitchen appliances and recipes"}))
	assert.Empty(t, CheckSimilarity(body, nil))
}
