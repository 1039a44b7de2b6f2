package signals

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed demo_signals.json
var demoSignalsJSON []byte

// StaticProvider serves a canned signal bundle for every domain. It backs
// the --offline mode so the scoring pipeline can be exercised without a
// signals API.
type StaticProvider struct {
	sections map[string]json.RawMessage
}

// NewStaticProvider loads the embedded demo bundle.
func NewStaticProvider() (*StaticProvider, error) {
	var sections map[string]json.RawMessage
	if err := json.Unmarshal(demoSignalsJSON, &sections); err != nil {
		return nil, fmt.Errorf("parse embedded demo signals: %w", err)
	}
	return &StaticProvider{sections: sections}, nil
}

// Fetch returns the canned payload for a source, regardless of domain.
func (p *StaticProvider) Fetch(ctx context.Context, source, domain string) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, ok := p.sections[source]
	if !ok {
		return nil, fmt.Errorf("no demo payload for source %s", source)
	}
	return raw, nil
}
