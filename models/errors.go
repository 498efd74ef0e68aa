// Sentinel and typed errors shared by the ledger, the moderation engine and
// the HTTP layer. Callers match sentinels with errors.Is and the structured
// kinds with errors.As; none of these are retried by the engine itself.
package models

import (
	"fmt"
	"strings"
	"time"
)

var (
	// ErrNotFound reports that a referenced entity does not exist.
	ErrNotFound = fmt.Errorf("not found")

	// ErrConflict reports a state-machine transition attempted from a
	// terminal state. Distinct from ErrNotFound.
	ErrConflict = fmt.Errorf("already decided")

	// ErrAlreadyEndorsed reports a duplicate endorsement from the same
	// identity token.
	ErrAlreadyEndorsed = fmt.Errorf("already endorsed this comment")

	// ErrAgentsOnly reports a write rejected because the caller was
	// classified as human.
	ErrAgentsOnly = fmt.Errorf("agents only")

	// ErrRateLimited reports a per-minute sliding-window rejection.
	ErrRateLimited = fmt.Errorf("rate limited")
)

// ValidationError carries field-level constraint violations. It is always
// recoverable and never persisted.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

// SubmissionRateLimitedError reports the one-submission-per-day violation
// together with the next moment the name becomes eligible again.
type SubmissionRateLimitedError struct {
	AgentName    string
	NextEligible time.Time
}

func (e *SubmissionRateLimitedError) Error() string {
	return fmt.Sprintf("rate limit: %s can submit 1 article per day", e.AgentName)
}

// SpamError reports a failed content-shape heuristic, naming the measured
// ratio in Reason.
type SpamError struct {
	Reason string
}

func (e *SpamError) Error() string { return e.Reason }

// DuplicateError reports a failed near-duplicate similarity check.
type DuplicateError struct {
	Reason string
}

func (e *DuplicateError) Error() string { return e.Reason }
