// Package linkup wraps the Linkup sourced-answer search API.
package linkup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the hosted Linkup API endpoint.
	DefaultBaseURL = "https://api.linkup.so/v1"

	defaultTimeout = 30 * time.Second
	maxBodySize    = 4 << 20 // 4 MB
)

// Source is one search-result item backing a sourced answer.
type Source struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// Response is a sourced answer: free-text prose plus the web sources it was
// derived from. Either field may be empty.
type Response struct {
	Answer  string   `json:"answer"`
	Sources []Source `json:"sources"`
}

// Searcher is the boundary request handlers depend on.
type Searcher interface {
	Search(ctx context.Context, query string) (*Response, error)
}

// Client calls the search API over HTTP.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

var _ Searcher = (*Client)(nil)

// NewClient creates a Client with its own HTTP client. Zero timeout and empty
// baseURL fall back to defaults.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return NewClientWithHTTP(baseURL, apiKey, &http.Client{Timeout: timeout})
}

// NewClientWithHTTP creates a Client with a custom HTTP client, mainly for
// tests.
func NewClientWithHTTP(baseURL, apiKey string, client *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
	}
}

type searchRequest struct {
	Query      string `json:"q"`
	Depth      string `json:"depth"`
	OutputType string `json:"outputType"`
}

// Search performs a deep sourced-answer search for the query. Transport
// errors, non-2xx statuses and undecodable bodies are all returned as errors;
// callers decide how to degrade.
func (c *Client) Search(ctx context.Context, query string) (*Response, error) {
	payload, err := json.Marshal(searchRequest{
		Query:      query,
		Depth:      "deep",
		OutputType: "sourcedAnswer",
	})
	if err != nil {
		return nil, fmt.Errorf("encoding search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling search API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("search API returned HTTP %d", resp.StatusCode)
	}

	var out Response
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}
	return &out, nil
}
