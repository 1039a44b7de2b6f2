// Package rating orchestrates signal fetching and score aggregation for
// the posture dashboard.
package rating

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	domain "github.com/posturescan/posture-cli/internal/domain/rating"
	"github.com/posturescan/posture-cli/internal/scoring"
	sharedErrors "github.com/posturescan/posture-cli/internal/shared/errors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// SignalProvider fetches the already-parsed JSON payload one signal source
// reports for a domain. Implementations own transport concerns (timeouts,
// retries); the aggregator treats any returned error, including context
// cancellation, as that source being unavailable for this render pass.
type SignalProvider interface {
	Fetch(ctx context.Context, source, domain string) (json.RawMessage, error)
}

// Config configures an Aggregator.
type Config struct {
	Provider    SignalProvider
	Logger      *zap.SugaredLogger
	Concurrency int // maximum in-flight fetches (default 6)
	RateLimit   int // fetches per second across the fan-out (0 = unlimited)
}

// Aggregator fans out over a category's signal sources, scores whatever
// payloads arrive, and averages them. A full domain scorecard touches 9
// categories backed by 12 distinct sources; each source is fetched once
// per run and shared between the categories it backs.
type Aggregator struct {
	provider    SignalProvider
	logger      *zap.SugaredLogger
	limiter     *rate.Limiter
	concurrency int
}

// NewAggregator creates an aggregator.
func NewAggregator(cfg Config) *Aggregator {
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 6
	}
	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateLimit)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Aggregator{
		provider:    cfg.Provider,
		logger:      logger,
		limiter:     limiter,
		concurrency: concurrency,
	}
}

// fetchSources retrieves the named sources concurrently. A failed fetch is
// logged and omitted from the result; it never aborts the other sources.
func (a *Aggregator) fetchSources(ctx context.Context, target string, sources []string) map[string]json.RawMessage {
	sem := make(chan struct{}, a.concurrency)
	var wg sync.WaitGroup
	var mu sync.Mutex
	payloads := make(map[string]json.RawMessage, len(sources))

	for _, source := range sources {
		wg.Add(1)
		go func(src string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			if err := a.limiter.Wait(ctx); err != nil {
				a.logger.Debugw("signal fetch cancelled", "source", src, "domain", target, "error", err)
				return
			}

			raw, err := a.provider.Fetch(ctx, src, target)
			if err != nil {
				// Source unavailable: excluded from the average, never
				// surfaced as a user-facing error on its own.
				a.logger.Warnw("signal source unavailable", "source", src, "domain", target, "error", err)
				return
			}

			mu.Lock()
			payloads[src] = raw
			mu.Unlock()
		}(source)
	}

	wg.Wait()
	return payloads
}

// scoreFetched runs the matching scorer for every fetched payload. Any
// successful fetch counts, regardless of the computed score; a payload of
// unusable shape simply scores 0.
func (a *Aggregator) scoreFetched(target string, payloads map[string]json.RawMessage) map[string]float64 {
	scores := make(map[string]float64, len(payloads))
	for source, raw := range payloads {
		score, known := scoring.ScoreSource(source, raw)
		if !known {
			a.logger.Warnw("no scorer for source", "source", source)
			continue
		}
		if score < 0 || score > 10 {
			// A scorer emitting out-of-range output is a computation
			// defect, not a valid score. DPanic fails loudly in
			// development builds and logs in production.
			a.logger.DPanicw("scorer returned out-of-range score",
				"source", source, "domain", target, "score", score)
			continue
		}
		scores[source] = score
	}
	return scores
}

// AggregateCategory rates a single category for a domain. It returns
// (nil, nil) when every backing source failed: the category is N/A for
// this render pass, which is distinct from scoring zero.
func (a *Aggregator) AggregateCategory(ctx context.Context, category domain.Category, target string) (*domain.CategoryScore, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %s", sharedErrors.ErrUnknownCategory, category)
	}
	if target == "" {
		return nil, sharedErrors.ErrEmptyDomain
	}

	payloads := a.fetchSources(ctx, target, category.Sources())
	scores := a.scoreFetched(target, payloads)

	cs, ok := averageCategory(category, scores)
	if !ok {
		return nil, nil
	}
	return &cs, nil
}

// ScoreDomain rates every category plus the generic overall score for a
// domain. Each of the 12 sources is fetched exactly once. The returned
// scorecard is empty (never nil) when all sources failed.
func (a *Aggregator) ScoreDomain(ctx context.Context, target string) (*domain.Scorecard, error) {
	scorecard, err := domain.NewScorecard(target)
	if err != nil {
		return nil, err
	}

	payloads := a.fetchSources(ctx, target, scoring.AllSources)
	scores := a.scoreFetched(target, payloads)

	for _, category := range domain.AllCategories {
		if cs, ok := averageCategory(category, scores); ok {
			scorecard.AddCategoryScore(cs)
		}
	}

	scorecard.SetOverall(scoring.OverallScore(bundleOf(payloads)))
	return scorecard, nil
}

// averageCategory averages the per-source scores available for a category.
// ok is false when no backing source succeeded.
func averageCategory(category domain.Category, scores map[string]float64) (domain.CategoryScore, bool) {
	sum := 0.0
	successes := 0
	for _, source := range category.Sources() {
		if score, ok := scores[source]; ok {
			sum += score
			successes++
		}
	}
	if successes == 0 {
		return domain.CategoryScore{}, false
	}
	return domain.NewCategoryScore(category, sum/float64(successes)), true
}

// bundleOf decodes the fetched raw payloads into the generic signal bundle
// the overall scorer walks.
func bundleOf(payloads map[string]json.RawMessage) map[string]any {
	bundle := make(map[string]any, len(payloads))
	for source, raw := range payloads {
		var section any
		if err := json.Unmarshal(raw, &section); err != nil {
			continue
		}
		bundle[source] = section
	}
	return bundle
}
