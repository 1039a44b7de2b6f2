package rating

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	domain "github.com/posturescan/posture-cli/internal/domain/rating"
	"go.uber.org/zap/zaptest"
)

// fakeProvider serves canned payloads and errors for named sources.
type fakeProvider struct {
	mu       sync.Mutex
	payloads map[string]json.RawMessage
	failures map[string]error
	calls    map[string]int
}

func (f *fakeProvider) Fetch(ctx context.Context, source, target string) (json.RawMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = make(map[string]int)
	}
	f.calls[source]++
	if err, ok := f.failures[source]; ok {
		return nil, err
	}
	if raw, ok := f.payloads[source]; ok {
		return raw, nil
	}
	return nil, fmt.Errorf("no payload for %s", source)
}

func newTestAggregator(t *testing.T, provider SignalProvider) *Aggregator {
	t.Helper()
	return NewAggregator(Config{
		Provider: provider,
		Logger:   zaptest.NewLogger(t).Sugar(),
	})
}

func TestAggregateCategorySingleSurvivingSource(t *testing.T) {
	// Web Encryption averages SSL and TLS. With TLS down, the category
	// score is the SSL score unchanged, not halved.
	provider := &fakeProvider{
		payloads: map[string]json.RawMessage{
			"ssl": json.RawMessage(`{"valid": true}`),
		},
		failures: map[string]error{
			"tls": errors.New("connection refused"),
		},
	}
	agg := newTestAggregator(t, provider)

	cs, err := agg.AggregateCategory(context.Background(), domain.CategoryWebEncryption, "example.com")
	if err != nil {
		t.Fatalf("AggregateCategory: %v", err)
	}
	if cs == nil {
		t.Fatal("expected a category score with one surviving source")
	}
	if cs.Score != 3 {
		t.Errorf("score = %v, want 3 (ssl score unchanged)", cs.Score)
	}
}

func TestAggregateCategoryAllSourcesFail(t *testing.T) {
	provider := &fakeProvider{
		failures: map[string]error{
			"ssl": errors.New("timeout"),
			"tls": errors.New("timeout"),
		},
	}
	agg := newTestAggregator(t, provider)

	cs, err := agg.AggregateCategory(context.Background(), domain.CategoryWebEncryption, "example.com")
	if err != nil {
		t.Fatalf("AggregateCategory: %v", err)
	}
	if cs != nil {
		t.Errorf("expected nil (N/A) when every source fails, got %+v", cs)
	}
}

func TestAggregateCategoryZeroScoreStillCounts(t *testing.T) {
	// A successful fetch that scores 0 counts toward the average; the
	// gate is fetch success, not score > 0.
	provider := &fakeProvider{
		payloads: map[string]json.RawMessage{
			"ssl": json.RawMessage(`{}`),
			"tls": json.RawMessage(`{"tlsVersion":"TLS 1.3","strongCipherSuites":["x"],"forwardSecrecy":true,"certificateValid":true,"secureRenegotiation":true}`),
		},
	}
	agg := newTestAggregator(t, provider)

	cs, err := agg.AggregateCategory(context.Background(), domain.CategoryWebEncryption, "example.com")
	if err != nil {
		t.Fatalf("AggregateCategory: %v", err)
	}
	if cs == nil {
		t.Fatal("expected a category score")
	}
	if cs.Score != 5 {
		t.Errorf("score = %v, want 5 ((0+10)/2)", cs.Score)
	}
}

func TestAggregateCategoryValidation(t *testing.T) {
	agg := newTestAggregator(t, &fakeProvider{})

	if _, err := agg.AggregateCategory(context.Background(), domain.Category("Nonsense"), "example.com"); err == nil {
		t.Error("expected error for unknown category")
	}
	if _, err := agg.AggregateCategory(context.Background(), domain.CategoryWebEncryption, ""); err == nil {
		t.Error("expected error for empty domain")
	}
}

func TestScoreDomainFetchesEachSourceOnce(t *testing.T) {
	provider := &fakeProvider{
		payloads: map[string]json.RawMessage{
			"ssl":  json.RawMessage(`{"valid": true}`),
			"tls":  json.RawMessage(`{"tlsVersion": "TLS 1.3"}`),
			"http": json.RawMessage(`{"httpsEnabled": true}`),
		},
	}
	agg := newTestAggregator(t, provider)

	scorecard, err := agg.ScoreDomain(context.Background(), "example.com")
	if err != nil {
		t.Fatalf("ScoreDomain: %v", err)
	}

	// TLS backs both Web Encryption and Software Patching but is fetched once.
	for source, n := range provider.calls {
		if n != 1 {
			t.Errorf("source %s fetched %d times, want 1", source, n)
		}
	}
	if len(provider.calls) != 12 {
		t.Errorf("fetched %d sources, want 12", len(provider.calls))
	}

	if _, ok := scorecard.CategoryScore(domain.CategoryWebEncryption); !ok {
		t.Error("Web Encryption should be scored")
	}
	if _, ok := scorecard.CategoryScore(domain.CategoryNetworkFiltering); ok {
		t.Error("Network Filtering should be N/A with both sources down")
	}
	if scorecard.OverallScore() < 0 || scorecard.OverallScore() > 10 {
		t.Errorf("overall score %v out of range", scorecard.OverallScore())
	}
}

func TestScoreDomainAllSourcesFail(t *testing.T) {
	failures := make(map[string]error)
	for _, source := range []string{
		"ssl", "tls", "http", "hsts", "ports", "firewall",
		"threat", "blocklist", "dnssec", "dns", "hosting", "whois",
	} {
		failures[source] = errors.New("unreachable")
	}
	agg := newTestAggregator(t, &fakeProvider{failures: failures})

	scorecard, err := agg.ScoreDomain(context.Background(), "example.com")
	if err != nil {
		t.Fatalf("ScoreDomain: %v", err)
	}
	if !scorecard.Empty() {
		t.Error("expected an empty scorecard when every source fails")
	}
	if scorecard.OverallScore() != 0 {
		t.Errorf("overall = %v, want 0 with no data", scorecard.OverallScore())
	}
}
