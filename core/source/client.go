package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// httpClient is the delivery-API implementation of ContentSource.
// It contains no logic beyond encode/call/decode; pagination and
// flattening live in the Fetcher. No retries are performed here.
type httpClient struct {
	base  string
	token string
	http  *http.Client
}

// NewClient creates a content source client from the configuration.
func NewClient(cfg Config) (ContentSource, error) {
	if cfg.Space == "" {
		return nil, fmt.Errorf("source space is required")
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("source token is required")
	}

	// Ensure timeout defaults if not set
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Create custom transport with strict timeouts
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	environment := cfg.Environment
	if environment == "" {
		environment = "master"
	}

	base := fmt.Sprintf("%s/spaces/%s/environments/%s",
		strings.TrimRight(cfg.Host, "/"), cfg.Space, environment)

	return &httpClient{
		base:  base,
		token: cfg.Token,
		http:  &http.Client{Transport: transport},
	}, nil
}

// Search performs one entries query against the delivery API.
func (c *httpClient) Search(ctx context.Context, q Query) (*SearchResult, error) {
	params := url.Values{}
	if q.ContentType != "" {
		params.Set("content_type", q.ContentType)
	}
	if q.EntryID != "" {
		params.Set("sys.id", q.EntryID)
	}
	if q.Locale != "" {
		params.Set("locale", q.Locale)
	}
	if q.Include > 0 {
		params.Set("include", strconv.Itoa(q.Include))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Skip > 0 {
		params.Set("skip", strconv.Itoa(q.Skip))
	}

	endpoint := c.base + "/entries?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build entries request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("entries request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("entries request returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode entries response: %w", err)
	}

	return &result, nil
}
