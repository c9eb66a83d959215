// Package insight talks to an optional remote analyzer service that
// refines conversation titles before topic classification. The wrap
// pipeline works fully without it; any failure here downgrades to the
// local-only result.
package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	requestTimeout = 10 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
	maxTitles      = 500
)

// ErrUnavailable indicates the analyzer could not produce a usable
// response. Callers should continue without remote insight.
var ErrUnavailable = errors.New("insight: analyzer unavailable")

// Analysis is the analyzer's refinement of an export.
type Analysis struct {
	Headline string   `json:"headline"`
	Titles   []string `json:"titles"`
}

// Analyzer produces an analysis from conversation titles.
type Analyzer interface {
	Analyze(ctx context.Context, titles []string) (Analysis, error)
}

// Client is an HTTP analyzer.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

// NewClient creates a client for the given endpoint.
// Returns nil if the endpoint is empty.
func NewClient(endpoint, apiKey string) *Client {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil
	}
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		http:     &http.Client{},
	}
}

type analyzeRequest struct {
	Titles []string `json:"titles"`
}

// Analyze sends the titles for refinement. The title list is capped so
// huge exports don't produce oversized requests.
func (c *Client) Analyze(ctx context.Context, titles []string) (Analysis, error) {
	if len(titles) > maxTitles {
		titles = titles[:maxTitles]
	}

	payload, err := json.Marshal(analyzeRequest{Titles: titles})
	if err != nil {
		return Analysis{}, fmt.Errorf("insight: encoding request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return Analysis{}, fmt.Errorf("insight: creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Analysis{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Analysis{}, fmt.Errorf("%w: HTTP %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return Analysis{}, fmt.Errorf("%w: reading response: %v", ErrUnavailable, err)
	}

	var analysis Analysis
	if err := json.Unmarshal(body, &analysis); err != nil {
		return Analysis{}, fmt.Errorf("%w: parsing response: %v", ErrUnavailable, err)
	}
	return analysis, nil
}
