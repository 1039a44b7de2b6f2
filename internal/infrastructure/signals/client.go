// Package signals implements the signal providers the aggregator fetches
// raw payloads from: an HTTP client against a signals API and a static
// fixture provider for offline use.
package signals

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/posturescan/posture-cli/internal/shared/constants"
	"go.uber.org/zap"
)

// Client fetches already-parsed JSON signal payloads from a provider API.
// Each source is served under GET {base}/{source}/{domain}.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.SugaredLogger
}

// NewClient creates a signals API client. The timeout applies per request;
// callers may additionally cancel through the context, which the
// aggregator treats the same as any other fetch failure.
func NewClient(baseURL string, timeout time.Duration, logger *zap.SugaredLogger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Fetch retrieves the raw payload for one source and domain.
func (c *Client) Fetch(ctx context.Context, source, domain string) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/%s/%s", c.baseURL, url.PathEscape(source), url.PathEscape(domain))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", source, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", source, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Debugw("failed to close response body", "source", source, "error", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", source, resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, constants.MaxPayloadBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s payload: %w", source, err)
	}
	return json.RawMessage(raw), nil
}
