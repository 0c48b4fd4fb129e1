// Package registry is a client for the Companies House public data API.
// It maps the registry's JSON into typed records, enforces a minimum
// spacing between outbound requests, and bounds every request with a
// timeout and a small retry budget.
package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/corpgraph/backend/internal/util"
	"github.com/corpgraph/backend/pkg/logger"
)

const (
	defaultBaseURL = "https://api.company-information.service.gov.uk"
	sandboxBaseURL = "https://api-sandbox.company-information.service.gov.uk"

	userAgent = "corpgraph/1.0"

	defaultTimeout     = 10 * time.Second
	defaultMinInterval = 100 * time.Millisecond
	defaultMaxRetries  = 2
)

// ErrNotFound is returned when the registry has no record for the
// requested company number.
var ErrNotFound = errors.New("registry: not found")

// Client talks to the Companies House API. The rate limiter is shared
// across all calls on the client, so concurrent callers still observe the
// minimum spacing between requests in aggregate.
//
// A Client should be created with NewClient.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	maxRetries int
}

// NewClientParams configures a Client.
//
// APIKey is required; it is sent as the basic-auth username with an empty
// password, as the registry expects. Sandbox switches to the registry's
// sandbox host. BaseURL overrides the host entirely and is mostly useful
// in tests.
type NewClientParams struct {
	APIKey             string
	Sandbox            bool
	BaseURL            string
	RequestTimeout     time.Duration
	MinRequestInterval time.Duration
	MaxRetries         int
}

// NewClient creates a Companies House client. It fails fast when no API
// key is supplied, before any network call can be attempted.
func NewClient(params NewClientParams) (*Client, error) {
	if params.APIKey == "" {
		return nil, errors.New("registry: API key is required")
	}

	baseURL := defaultBaseURL
	if params.Sandbox {
		baseURL = sandboxBaseURL
	}
	if params.BaseURL != "" {
		baseURL = params.BaseURL
	}

	timeout := params.RequestTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	interval := params.MinRequestInterval
	if interval <= 0 {
		interval = defaultMinInterval
	}
	maxRetries := params.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	return &Client{
		apiKey:     params.APIKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Every(interval), 1),
		maxRetries: maxRetries,
	}, nil
}

// getJSON performs a rate-limited GET against the registry and decodes the
// response body into out. Transport failures are retried up to the
// client's budget; a 404 is terminal and surfaces as ErrNotFound.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	_, err := util.RetryWithContext(ctx, c.maxRetries, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, c.doGet(ctx, path, query, out)
	})
	return err
}

func (c *Client) doGet(ctx context.Context, path string, query url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return util.Permanent(fmt.Errorf("registry: failed to create request: %w", err))
	}
	req.SetBasicAuth(c.apiKey, "")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Debug("Registry request failed", "path", path, "err", err)
		return fmt.Errorf("registry: request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return util.Permanent(ErrNotFound)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		logger.Debug("Registry returned unexpected status", "path", path, "status", resp.StatusCode)
		return fmt.Errorf("registry: unexpected status %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("registry: failed to decode response: %w", err)
	}
	return nil
}

// lastPathSegment returns the final segment of a URL path, or "" when the
// input is empty.
func lastPathSegment(link string) string {
	if link == "" {
		return ""
	}
	segments := splitPath(link)
	if len(segments) == 0 {
		return ""
	}
	return segments[len(segments)-1]
}

// secondToLastPathSegment returns the segment before the final one, or ""
// when the path is too short. Officer appointment links have the shape
// /officers/<id>/appointments, so this extracts the officer ID.
func secondToLastPathSegment(link string) string {
	segments := splitPath(link)
	if len(segments) < 2 {
		return ""
	}
	return segments[len(segments)-2]
}

func splitPath(link string) []string {
	return strings.FieldsFunc(link, func(r rune) bool { return r == '/' })
}
