// Package google holds the REST plumbing shared by the calendar and task
// clients: bearer authentication, JSON bodies and status checks.
package google

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/atomicstack/termdeck/internal/credential"
	"github.com/atomicstack/termdeck/internal/logging/events"
)

// ErrStatus matches every non-2xx response.
var ErrStatus = errors.New("unexpected status")

// StatusError carries a non-2xx response.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("google: %s %s: %d %s", e.Method, e.URL, e.StatusCode, strings.TrimSpace(e.Body))
}

// Unwrap lets errors.Is match ErrStatus.
func (e *StatusError) Unwrap() error { return ErrStatus }

// Client issues JSON requests against one collection endpoint, e.g.
// .../calendars/primary/events. Item URLs are {base}/{id}.
type Client struct {
	base       string
	creds      credential.Provider
	httpClient *http.Client
}

// NewClient returns a client for base. A nil httpClient uses http.DefaultClient.
func NewClient(base string, creds credential.Provider, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		base:       strings.TrimRight(base, "/"),
		creds:      creds,
		httpClient: httpClient,
	}
}

// Base returns the collection endpoint.

// ItemURL returns the endpoint of the item with the given id.
func (c *Client) ItemURL(id string) string {
	return c.base + "/" + url.PathEscape(id)
}

// List GETs the collection with query and decodes the response into out.
func (c *Client) List(ctx context.Context, query url.Values, out any) error {
	target := c.base
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return c.Do(ctx, http.MethodGet, target, nil, out)
}

// Create POSTs body to the collection.
func (c *Client) Create(ctx context.Context, body any) error {
	return c.Do(ctx, http.MethodPost, c.base, body, nil)
}

// Update PUTs body to the item with the given id.
func (c *Client) Update(ctx context.Context, id string, body any) error {
	return c.Do(ctx, http.MethodPut, c.ItemURL(id), body, nil)
}

// Delete removes the item with the given id.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.Do(ctx, http.MethodDelete, c.ItemURL(id), nil, nil)
}

// Do performs one request. body is JSON-encoded when non-nil; out, when
// non-nil, receives the decoded 2xx response.
func (c *Client) Do(ctx context.Context, method, target string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("google: encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("google: create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.creds != nil {
		token, err := c.creds.Token()
		if err != nil {
			return fmt.Errorf("google: credential: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	events.Remote.Request(method, target)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("google: %s %s: %w", method, target, err)
	}
	defer resp.Body.Close()
	events.Remote.Response(method, target, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("google: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Method: method, URL: target, StatusCode: resp.StatusCode, Body: string(data)}
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("google: decode response: %w", err)
	}
	return nil
}
