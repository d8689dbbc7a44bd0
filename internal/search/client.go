// Package search implements the Mathlib lemma search client backed by the
// loogle.lean-lang.org JSON API, with disk caching and bounded retries for
// transient timeouts.
package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cenkalti/backoff/v4"

	"github.com/lean-forge/proofcheck/internal/cache"
)

// Default client settings.
const (
	DefaultEndpoint   = "https://loogle.lean-lang.org/json"
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 3

	// MaxQueryLength caps the accepted query size in characters.
	MaxQueryLength = 500

	// defaultRetryInterval is the first backoff interval; subsequent waits
	// double (2^attempt seconds between attempts).
	defaultRetryInterval = 2 * time.Second
)

// Classified search failures.
var (
	ErrInvalidQuery       = errors.New("invalid query")
	ErrServiceUnavailable = errors.New("search service unavailable")
)

// Hit is one search result record.
type Hit struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Module string `json:"module"`
	Doc    string `json:"doc,omitempty"`
}

// response is the wire shape of the search API body.
type response struct {
	Hits  []Hit  `json:"hits"`
	Error string `json:"error,omitempty"`
}

// Client queries the remote lemma search service.
type Client struct {
	endpoint      string
	httpClient    *http.Client
	cache         *cache.Cache
	maxRetries    int
	retryInterval time.Duration
}

// Options configures a Client. Zero values select the defaults; Cache may
// be nil to disable caching entirely.
type Options struct {
	Endpoint      string
	Timeout       time.Duration
	MaxRetries    int
	RetryInterval time.Duration
	Cache         *cache.Cache
}

// NewClient creates a search client.
func NewClient(opts Options) *Client {
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}

	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	if opts.MaxRetries <= 0 {
		opts.MaxRetries = DefaultMaxRetries
	}

	if opts.RetryInterval <= 0 {
		opts.RetryInterval = defaultRetryInterval
	}

	return &Client{
		endpoint:      opts.Endpoint,
		httpClient:    &http.Client{Timeout: opts.Timeout},
		cache:         opts.Cache,
		maxRetries:    opts.MaxRetries,
		retryInterval: opts.RetryInterval,
	}
}

// Search validates the query, consults the cache, then fetches from the
// remote service. Only request timeouts are retried; every other failure is
// final on the first occurrence. On success the raw response payload is
// written back to the cache.
func (c *Client) Search(query string, useCache bool) ([]Hit, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query must not be empty", ErrInvalidQuery)
	}

	if utf8.RuneCountInString(query) > MaxQueryLength {
		return nil, fmt.Errorf("%w: query exceeds %d characters", ErrInvalidQuery, MaxQueryLength)
	}

	if useCache && c.cache != nil {
		if raw, ok := c.cache.Get(query); ok {
			var resp response
			if err := json.Unmarshal(raw, &resp); err == nil {
				return resp.Hits, nil
			}
			// Unusable cached payload, fall through to the network
		}
	}

	var (
		hits []Hit
		raw  json.RawMessage
	)

	operation := func() error {
		resp, body, err := c.fetch(query)
		if err != nil {
			if isTimeout(err) {
				return err // retryable
			}

			return backoff.Permanent(err)
		}

		hits = resp.Hits
		raw = body
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.retryInterval
	policy.Multiplier = 2
	policy.RandomizationFactor = 0

	// maxRetries counts total attempts, so the backoff allows one fewer retry
	err := backoff.Retry(operation, backoff.WithMaxRetries(policy, uint64(c.maxRetries-1)))
	if err != nil {
		return nil, err
	}

	if useCache && c.cache != nil {
		c.cache.Set(query, raw)
	}

	return hits, nil
}

// fetch performs a single GET against the search endpoint.
func (c *Client) fetch(query string) (*response, json.RawMessage, error) {
	requestURL := c.endpoint + "?q=" + url.QueryEscape(query)

	res, err := c.httpClient.Get(requestURL)
	if err != nil {
		if isTimeout(err) {
			return nil, nil, fmt.Errorf("search request timed out: %w", err)
		}

		return nil, nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, nil, fmt.Errorf("%w: endpoint returned 404", ErrServiceUnavailable)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, nil, fmt.Errorf("search request failed: HTTP %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read search response: %w", err)
	}

	var resp response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, nil, fmt.Errorf("failed to parse search response: %w", err)
	}

	if resp.Error != "" {
		return nil, nil, fmt.Errorf("search API error: %s", resp.Error)
	}

	return &resp, body, nil
}

// isTimeout reports whether err represents a request timeout, the only
// failure class that is retried.
func isTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return errors.Is(err, context.DeadlineExceeded)
}
