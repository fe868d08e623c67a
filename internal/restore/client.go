// client.go
//
// Minimal API client used by the restore strategies and quotectl. Errors are
// classified so the strategy runner can tell a dead backend (try the next
// fallback) from a rejected payload (stop immediately).

package restore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goldtek/quotetrack/internal/project"
	"github.com/goldtek/quotetrack/internal/services"
)

// APIError is a non-2xx response from the backend.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Body)
}

// Permanent reports whether retrying another strategy against the same
// backend is pointless: the request itself was rejected.
func (e *APIError) Permanent() bool {
	return e.Status >= 400 && e.Status < 500 && e.Status != http.StatusRequestTimeout && e.Status != http.StatusTooManyRequests
}

// Client talks to a quotetrack server.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// NewClient builds a client with a sane timeout.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Backup fetches the full snapshot.
func (c *Client) Backup(ctx context.Context) ([]project.Project, error) {
	var snapshot []project.Project
	if err := c.do(ctx, http.MethodGet, "/api/backup/projects", nil, &snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// BulkRestore posts the whole snapshot to the transactional restore endpoint.
func (c *Client) BulkRestore(ctx context.Context, items []project.Project) (services.RestoreResult, error) {
	var result services.RestoreResult
	if err := c.do(ctx, http.MethodPost, "/api/backup/projects", items, &result); err != nil {
		return services.RestoreResult{}, err
	}
	return result, nil
}

// CreateProject posts one item through the ordinary create endpoint.
func (c *Client) CreateProject(ctx context.Context, item project.Project) error {
	return c.do(ctx, http.MethodPost, "/api/projects", item, nil)
}

// Download fetches a binary artifact (spreadsheet exports) as raw bytes.
func (c *Client) Download(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if c.APIKey != "" {
		req.Header.Set("x-api-key", c.APIKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	return raw, nil
}

// VerifyKey confirms the configured API key is accepted.
func (c *Client) VerifyKey(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/verify-key", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.APIKey != "" {
		req.Header.Set("x-api-key", c.APIKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if out != nil && len(raw) > 0 {
		return json.Unmarshal(raw, out)
	}
	return nil
}
