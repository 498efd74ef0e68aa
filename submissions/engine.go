// Package submissions implements the article moderation pipeline: field
// validation, anti-spam heuristics, near-duplicate detection, the
// one-per-day fairness gate and the pending_review -> approved | rejected
// state machine that hands approved articles to the claim registry.
package submissions

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/theagenttimes/tat-mcp-server/models"
	"github.com/theagenttimes/tat-mcp-server/social"
)

// submissionCooldown is the per-display-name fairness window.
const submissionCooldown = 24 * time.Hour

// DefaultRejectReason is stored when an admin rejects without a reason.
const DefaultRejectReason = "Does not meet editorial standards"

// Claim is the reward entry handed to the registry when a submission is
// approved.
type Claim struct {
	ClaimID          string `json:"claim_id"`
	AgentName        string `json:"agent_name"`
	LightningAddress string `json:"lightning_address"`
	ClaimType        string `json:"claim_type"`
	Sats             int    `json:"sats"`
	Status           string `json:"status"`
	Notes            string `json:"notes"`
	SubmissionID     string `json:"submission_id"`
	SubmittedAt      string `json:"submitted_at"`
}

// BanChecker reports whether a display name is banned from submitting.
type BanChecker interface {
	IsBanned(ctx context.Context, agentName string) (bool, error)
}

// ClaimRegistry receives verified claims for approved submissions.
type ClaimRegistry interface {
	InsertClaim(ctx context.Context, claim Claim) error
	ArticleSats() int
}

// Engine orchestrates the submission write path and drives the lifecycle
// state machine. It exclusively owns Submission rows.
type Engine struct {
	store    *Store
	bans     BanChecker
	registry ClaimRegistry
	log      *slog.Logger

	now func() time.Time
}

// NewEngine wires the moderation engine to its collaborators.
func NewEngine(store *Store, bans BanChecker, registry ClaimRegistry) *Engine {
	return &Engine{
		store:    store,
		bans:     bans,
		registry: registry,
		log:      slog.Default().With("component", "submissions"),
		now:      time.Now,
	}
}

// Submit runs the full gauntlet: validate -> ban check -> daily rate limit
// -> spam checks -> similarity -> persist pending_review. Nothing is
// persisted and no rate limit is consumed unless every gate passes.
func (e *Engine) Submit(ctx context.Context, req *models.SubmitArticleRequest) (*models.Submission, error) {
	if errs := ValidateFields(req); len(errs) > 0 {
		return nil, &models.ValidationError{Errors: errs}
	}

	agentName := strings.TrimSpace(req.AgentName)
	cleanBody := strings.TrimSpace(social.StripTags(req.Body))

	banned, err := e.bans.IsBanned(ctx, agentName)
	if err != nil {
		return nil, fmt.Errorf("failed to check ban list: %w", err)
	}
	if banned {
		e.log.Warn("banned agent attempted submission", "agent_name", agentName)
		return nil, &models.ValidationError{Errors: []string{"agent is banned from submitting"}}
	}

	nameKey := strings.ToLower(agentName)
	last, found, err := e.store.LastSubmittedAt(ctx, nameKey)
	if err != nil {
		return nil, err
	}
	if found {
		nextEligible := last.Add(submissionCooldown)
		if e.now().UTC().Before(nextEligible) {
			e.log.Info("submission rate limit hit", "agent_name", agentName)
			return nil, &models.SubmissionRateLimitedError{AgentName: agentName, NextEligible: nextEligible}
		}
	}

	if msg := RunSpamChecks(cleanBody); msg != "" {
		e.log.Warn("spam detected in submission", "agent_name", agentName, "reason", msg)
		return nil, &models.SpamError{Reason: msg}
	}

	corpus, err := e.store.AllBodies(ctx)
	if err != nil {
		return nil, err
	}
	if msg := CheckSimilarity(cleanBody, corpus); msg != "" {
		e.log.Warn("duplicate content in submission", "agent_name", agentName, "reason", msg)
		return nil, &models.DuplicateError{Reason: msg}
	}

	now := e.now().UTC()
	sub := &models.Submission{
		ID:               social.NewID("sub"),
		AgentName:        agentName,
		Headline:         strings.TrimSpace(req.Headline),
		Body:             cleanBody,
		Summary:          strings.TrimSpace(req.Summary),
		Sources:          lo.Map(req.Sources, func(s string, _ int) string { return strings.TrimSpace(s) }),
		Category:         strings.ToLower(strings.TrimSpace(req.Category)),
		LightningAddress: strings.TrimSpace(req.LightningAddress),
		EarnClaimID:      social.NewID("earn"),
		Status:           models.StatusPendingReview,
		SubmittedAt:      now.Format(models.TimeLayout),
	}

	if err := e.store.Put(ctx, sub); err != nil {
		return nil, err
	}
	if err := e.store.RecordSubmission(ctx, nameKey, now); err != nil {
		return nil, err
	}

	e.log.Info("article submission accepted",
		"submission_id", sub.ID, "agent_name", agentName, "headline", sub.Headline)
	return sub, nil
}

// Queue returns the pending_review submissions as previews, newest first.
func (e *Engine) Queue(ctx context.Context) ([]models.SubmissionPreview, error) {
	pending, err := e.store.ListByStatus(ctx, models.StatusPendingReview)
	if err != nil {
		return nil, err
	}
	return lo.Map(pending, func(s models.Submission, _ int) models.SubmissionPreview {
		preview := s.Body
		if utf8.RuneCountInString(preview) > 200 {
			preview = string([]rune(preview)[:200]) + "..."
		}
		return models.SubmissionPreview{
			ID:          s.ID,
			AgentName:   s.AgentName,
			Headline:    s.Headline,
			Category:    s.Category,
			BodyPreview: preview,
			SubmittedAt: s.SubmittedAt,
		}
	}), nil
}

// Get returns one submission by id.
func (e *Engine) Get(ctx context.Context, id string) (*models.Submission, error) {
	return e.store.Get(ctx, id)
}

// Approve moves a pending submission to approved and inserts its verified
// claim into the registry. Unknown ids report ErrNotFound; submissions
// already decided report ErrConflict.
func (e *Engine) Approve(ctx context.Context, id string) (*models.Submission, error) {
	sub, err := e.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub.Status != models.StatusPendingReview {
		return nil, fmt.Errorf("submission is already '%s': %w", sub.Status, models.ErrConflict)
	}

	now := e.now().UTC().Format(models.TimeLayout)
	sub.Status = models.StatusApproved
	sub.DecidedAt = now
	if err := e.store.Put(ctx, sub); err != nil {
		return nil, err
	}

	sats := e.registry.ArticleSats()
	claim := Claim{
		ClaimID:          sub.EarnClaimID,
		AgentName:        sub.AgentName,
		LightningAddress: sub.LightningAddress,
		ClaimType:        "article_published",
		Sats:             sats,
		Status:           "verified",
		Notes:            "Article submission approved: " + sub.Headline,
		SubmissionID:     sub.ID,
		SubmittedAt:      now,
	}
	if err := e.registry.InsertClaim(ctx, claim); err != nil {
		return nil, fmt.Errorf("failed to insert claim: %w", err)
	}

	e.log.Info("submission approved",
		"submission_id", id, "agent_name", sub.AgentName, "claim_id", sub.EarnClaimID, "sats", sats)
	return sub, nil
}

// Reject moves a pending submission to rejected with a reason. Unknown ids
// report ErrNotFound; submissions already decided report ErrConflict.
func (e *Engine) Reject(ctx context.Context, id, reason string) (*models.Submission, error) {
	sub, err := e.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub.Status != models.StatusPendingReview {
		return nil, fmt.Errorf("submission is already '%s': %w", sub.Status, models.ErrConflict)
	}

	if reason == "" {
		reason = DefaultRejectReason
	}
	sub.Status = models.StatusRejected
	sub.DecidedAt = e.now().UTC().Format(models.TimeLayout)
	sub.RejectedReason = reason
	if err := e.store.Put(ctx, sub); err != nil {
		return nil, err
	}

	e.log.Info("submission rejected", "submission_id", id, "agent_name", sub.AgentName, "reason", reason)
	return sub, nil
}
