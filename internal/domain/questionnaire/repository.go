package questionnaire

import (
	"context"
	"time"

	"github.com/google/uuid"
	sharedErrors "github.com/posturescan/posture-cli/internal/shared/errors"
)

// Submission is the durable questionnaire state for one (user, domain)
// pair: the raw answers, the latest scored result, and its derived
// recommendations. Answers are created on first answer, updated on every
// change, and explicitly cleared when the user switches tracked domain or
// account.
type Submission struct {
	ID              string         `json:"id"`
	User            string         `json:"user"`
	Domain          string         `json:"domain"`
	Answers         Answers        `json:"answers"`
	Result          *Result        `json:"result,omitempty"`
	Recommendations []SolutionCode `json:"recommendations,omitempty"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// NewSubmission creates an empty submission for a user and domain.
func NewSubmission(user, domain string) (*Submission, error) {
	if user == "" {
		return nil, sharedErrors.ErrEmptyUser
	}
	if domain == "" {
		return nil, sharedErrors.ErrEmptyDomain
	}
	return &Submission{
		ID:        uuid.NewString(),
		User:      user,
		Domain:    domain,
		Answers:   make(Answers),
		UpdatedAt: time.Now().UTC(),
	}, nil
}

// Repository persists questionnaire submissions keyed by (user, domain).
type Repository interface {
	// Save stores a submission, replacing any previous state for the pair.
	Save(ctx context.Context, submission *Submission) error

	// Find retrieves the submission for a user and domain.
	// Returns sharedErrors.ErrSubmissionNotFound when none exists.
	Find(ctx context.Context, user, domain string) (*Submission, error)

	// Delete clears the stored submission for a user and domain.
	Delete(ctx context.Context, user, domain string) error
}
