package submissions

import (
	"fmt"
	"strings"
	"unicode"
)

// Heuristic thresholds. The caps and URL boundaries are exclusive: a body
// sitting exactly on the threshold passes.
const (
	capsRatioLimit     = 0.8
	uniquePhraseFloor  = 0.2
	urlLineRatioLimit  = 0.6
	repetitionMinWords = 10
	phraseWindow       = 5
)

// RunSpamChecks runs the stateless anti-spam heuristics against a
// markup-stripped body in a fixed order and stops at the first hit.
// An empty result means the body passed.
func RunSpamChecks(body string) string {
	for _, check := range []func(string) string{checkAllCaps, checkRepeatedText, checkURLOnly} {
		if msg := check(body); msg != "" {
			return msg
		}
	}
	return ""
}

// checkAllCaps rejects bodies whose alphabetic characters are more than
// 80% uppercase.
func checkAllCaps(body string) string {
	var letters, upper int
	for _, r := range body {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	if letters == 0 {
		return ""
	}
	ratio := float64(upper) / float64(letters)
	if ratio > capsRatioLimit {
		return fmt.Sprintf("rejected: body is %.0f%% uppercase, please use normal casing", ratio*100)
	}
	return ""
}

// checkRepeatedText rejects bodies where fewer than 20% of the sliding
// 5-word phrases are distinct. Bodies under 10 words are too short to
// measure and always pass.
func checkRepeatedText(body string) string {
	words := strings.Fields(body)
	if len(words) < repetitionMinWords {
		return ""
	}
	total := len(words) - phraseWindow + 1
	distinct := make(map[string]struct{}, total)
	for i := 0; i < total; i++ {
		phrase := strings.ToLower(strings.Join(words[i:i+phraseWindow], " "))
		distinct[phrase] = struct{}{}
	}
	ratio := float64(len(distinct)) / float64(total)
	if ratio < uniquePhraseFloor {
		return fmt.Sprintf("rejected: body contains too much repeated text (%.0f%% unique phrases)", ratio*100)
	}
	return ""
}

// checkURLOnly rejects bodies where more than 60% of the non-blank lines
// are bare URLs.
func checkURLOnly(body string) string {
	var lines, urlLines int
	for _, line := range strings.Split(strings.TrimSpace(body), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines++
		if IsURL(line) {
			urlLines++
		}
	}
	if lines == 0 {
		return ""
	}
	ratio := float64(urlLines) / float64(lines)
	if ratio > urlLineRatioLimit {
		return fmt.Sprintf("rejected: body is %.0f%% URLs, please write an actual article", ratio*100)
	}
	return ""
}
