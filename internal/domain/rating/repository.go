package rating

import "context"

// Repository persists scorecards per tracked domain.
type Repository interface {
	// Save stores a scorecard, replacing any previous one for the domain.
	Save(ctx context.Context, scorecard *Scorecard) error

	// FindByDomain retrieves the latest scorecard for a domain.
	// Returns sharedErrors.ErrScorecardNotFound when none exists.
	FindByDomain(ctx context.Context, domain string) (*Scorecard, error)

	// FindAll retrieves the stored scorecard for every tracked domain.
	FindAll(ctx context.Context) ([]*Scorecard, error)

	// Delete removes the scorecard for a domain.
	Delete(ctx context.Context, domain string) error
}
