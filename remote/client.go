// Package remote talks to the quote server. The server is a stand-in API
// that speaks a posts-shaped resource; this package hides that wire format
// behind the Gateway interface.
package remote

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"gosyncquotes/internal/utils"
	"gosyncquotes/quote"
)

const (
	// DefaultBaseURL points at the public stand-in API. A locally run
	// 'gosyncquotes mock-server' can take its place.
	DefaultBaseURL = "https://jsonplaceholder.typicode.com"

	// PageSize caps how many records one fetch returns
	PageSize = 10

	// RetryAttempts is the total fetch attempts before giving up
	RetryAttempts = 3

	// RetryDelay is the fixed pause between fetch attempts
	RetryDelay = 2 * time.Second

	requestTimeout = 15 * time.Second
)

// Gateway is what the sync engine needs from the remote side.
type Gateway interface {
	// FetchRemoteBatch returns at most PageSize records. It retries
	// internally and fails with *NetworkError once the budget is spent.
	FetchRemoteBatch() ([]quote.RemoteRecord, error)
	// PostQuote pushes one local quote outward, best-effort.
	PostQuote(q quote.Quote) PostResult
	// Ping checks whether the server is reachable at all.
	Ping() error
}

// PostResult reports the outcome of pushing one quote outward. Pushes are
// best-effort: the failure travels in the struct instead of an error return
// so callers are not tempted to abort on it.
type PostResult struct {
	OK       bool
	RemoteID string
	Err      error
}

// NetworkError is returned when the server stayed unreachable for the whole
// retry budget.
type NetworkError struct {
	Op       string
	Attempts int
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("remote %s failed after %d attempts: %v", e.Op, e.Attempts, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Client handles HTTP communication with the quote server
type Client struct {
	baseURL       string
	httpClient    *http.Client
	pageSize      int
	retryAttempts int
	retryDelay    time.Duration
	now           func() time.Time
}

// NewClient creates a gateway client for the given base URL.
// An empty URL falls back to DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		pageSize:      PageSize,
		retryAttempts: RetryAttempts,
		retryDelay:    RetryDelay,
		now:           time.Now,
	}
}

// FetchRemoteBatch retrieves the current page of remote records. Any failure
// (transport, HTTP status, decode) consumes one attempt; the fixed delay
// between attempts keeps load on the server predictable.
func (c *Client) FetchRemoteBatch() ([]quote.RemoteRecord, error) {
	var lastErr error
	for attempt := 1; attempt <= c.retryAttempts; attempt++ {
		records, err := c.fetchOnce()
		if err == nil {
			return records, nil
		}
		lastErr = err
		utils.Warnf("Fetch attempt %d/%d failed: %v", attempt, c.retryAttempts, err)
		if attempt < c.retryAttempts {
			time.Sleep(c.retryDelay)
		}
	}
	return nil, &NetworkError{Op: "fetch", Attempts: c.retryAttempts, Err: lastErr}
}

func (c *Client) fetchOnce() ([]quote.RemoteRecord, error) {
	resp, err := c.doRequest("GET", "/posts", nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var posts []remotePost
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	// Page first, then map: the server sends its whole set and the client
	// only ever looks at the first page of it.
	if len(posts) > c.pageSize {
		posts = posts[:c.pageSize]
	}

	observedAt := c.now().UTC()
	records := make([]quote.RemoteRecord, 0, len(posts))
	for _, p := range posts {
		if r, ok := mapPost(p, observedAt); ok {
			records = append(records, r)
		}
	}
	return records, nil
}

// PostQuote pushes one quote to the server. The stand-in API echoes the
// created resource with a fresh ID but never persists it; the result is
// informational only.
func (c *Client) PostQuote(q quote.Quote) PostResult {
	resp, err := c.doRequest("POST", "/posts", toCreatePostRequest(q))
	if err != nil {
		return PostResult{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return PostResult{Err: fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))}
	}

	var created remotePost
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return PostResult{Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return PostResult{OK: true, RemoteID: strconv.Itoa(created.ID)}
}

// Ping reports whether the server is reachable. Any HTTP response counts as
// reachable; only transport failures mean offline.
func (c *Client) Ping() error {
	resp, err := c.doRequest("GET", "/posts?_limit=1", nil)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// doRequest performs an HTTP request against the server
func (c *Client) doRequest(method, endpoint string, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	url := c.baseURL + endpoint
	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	return resp, nil
}
