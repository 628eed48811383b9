// Package tmdb is a rate-limited, caching client for The Movie Database v3 API.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/cinescope/cinescope-server/internal/ratelimit"
)

const (
	defaultBaseURL  = "https://api.themoviedb.org/3"
	defaultLanguage = "en-US"
	defaultRegion   = "US"
	defaultTimeout  = 10 * time.Second

	// TMDB allows roughly 40 requests per 10 seconds.
	defaultWindowLimit = 40
	defaultWindow      = 10 * time.Second

	userAgent = "CineScope/1.0"
)

// Options configures a Client.
type Options struct {
	APIKey    string // v3 API key or v4 read access token
	BaseURL   string
	Language  string
	Region    string
	Timeout   time.Duration
	CacheSize int // 0 disables the response cache
	CacheTTL  time.Duration
}

// Client is a rate-limited TMDB API client.
type Client struct {
	http     *http.Client
	baseURL  string
	apiKey   string
	bearer   bool
	language string
	region   string

	window *ratelimit.SlidingWindow
	cache  *responseCache
	flight singleflight.Group
	logger *slog.Logger
}

// New creates a TMDB client. Every outbound call passes through window,
// which may be shared with other clients. A nil window gets the default
// 40 calls per 10 seconds.
func New(opts Options, window *ratelimit.SlidingWindow, logger *slog.Logger) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.Language == "" {
		opts.Language = defaultLanguage
	}
	if opts.Region == "" {
		opts.Region = defaultRegion
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if window == nil {
		window = ratelimit.NewSlidingWindow(defaultWindowLimit, defaultWindow)
	}

	return &Client{
		http: &http.Client{
			Timeout: opts.Timeout,
		},
		baseURL:  strings.TrimRight(opts.BaseURL, "/"),
		apiKey:   opts.APIKey,
		bearer:   isReadAccessToken(opts.APIKey),
		language: opts.Language,
		region:   opts.Region,
		window:   window,
		cache:    newResponseCache(opts.CacheSize, opts.CacheTTL),
		logger:   logger,
	}
}

// isReadAccessToken reports whether key is a v4 token (a JWT) rather than a v3 key.
func isReadAccessToken(key string) bool {
	return strings.HasPrefix(key, "eyJ") && strings.Count(key, ".") == 2
}

// Region returns the reference region used for watch providers and releases.
func (c *Client) Region() string {
	return c.region
}

// Close drops cached responses.
func (c *Client) Close() {
	c.cache.purge()
}

// getJSON fetches path and decodes the body into a new T.
func getJSON[T any](ctx context.Context, c *Client, op, path string, query url.Values) (*T, error) {
	body, err := c.fetch(ctx, path, query)
	if err != nil {
		return nil, wrapError(op, path, err)
	}

	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, wrapError(op, path, fmt.Errorf("parse response: %w", err))
	}
	return &out, nil
}

// fetch serves from the cache when possible and collapses identical
// concurrent requests into one upstream call.
func (c *Client) fetch(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if query == nil {
		query = url.Values{}
	}
	if query.Get("language") == "" {
		query.Set("language", c.language)
	}

	key := path + "?" + query.Encode()
	if body, ok := c.cache.get(key); ok {
		c.logger.Debug("tmdb cache hit", "path", path)
		return body, nil
	}

	// The shared call outlives any single caller; the HTTP client timeout
	// still bounds it. Each caller stops waiting when its own ctx ends.
	shared := context.WithoutCancel(ctx)
	ch := c.flight.DoChan(key, func() (any, error) {
		body, err := c.doRequest(shared, path, query)
		if err != nil {
			return nil, err
		}
		c.cache.put(key, body)
		return body, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	}
}

// doRequest executes a GET request after admission by the sliding window.
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if err := c.window.Acquire(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	q := maps.Clone(query)
	if !c.bearer && c.apiKey != "" {
		q.Set("api_key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if c.bearer {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	c.logger.Debug("tmdb request",
		"path", path,
		"page", query.Get("page"),
	)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return body, nil
	case http.StatusNotFound:
		return nil, ErrNotFound
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return nil, ErrBadRequest
	default:
		if resp.StatusCode >= 500 {
			return nil, ErrServer
		}
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}
}
