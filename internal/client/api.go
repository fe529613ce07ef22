package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/leondli/diary/internal/domain/entity"
)

// Client is a typed HTTP client for the diary server
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New creates a new API client for the given server base URL
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// EntryInput is the request body for create and update calls
type EntryInput struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Mood    string   `json:"mood"`
	Tags    []string `json:"tags"`
}

// updateResult mirrors the PUT response shape
type updateResult struct {
	Message string               `json:"message"`
	Entry   entity.EntryResponse `json:"entry"`
}

// messageResult mirrors the DELETE response and error shapes
type messageResult struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// ListEntries fetches all entries, optionally filtered by tag names.
// The filter travels as a comma-joined query parameter.
func (c *Client) ListEntries(ctx context.Context, tags []string) ([]entity.EntryResponse, error) {
	path := "/entries"
	if len(tags) > 0 {
		path += "?tags=" + url.QueryEscape(strings.Join(tags, ","))
	}

	var entries []entity.EntryResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetEntry fetches a single entry by id
func (c *Client) GetEntry(ctx context.Context, id int64) (*entity.EntryResponse, error) {
	var e entity.EntryResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/entries/%d", id), nil, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// CreateEntry creates a new entry and returns the server's copy
func (c *Client) CreateEntry(ctx context.Context, input EntryInput) (*entity.EntryResponse, error) {
	var e entity.EntryResponse
	if err := c.do(ctx, http.MethodPost, "/entries", &input, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// UpdateEntry replaces an entry's fields and tag set, returning the
// server's authoritative copy
func (c *Client) UpdateEntry(ctx context.Context, id int64, input EntryInput) (*entity.EntryResponse, error) {
	var res updateResult
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/entries/%d", id), &input, &res); err != nil {
		return nil, err
	}
	return &res.Entry, nil
}

// DeleteEntry deletes an entry by id
func (c *Client) DeleteEntry(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/entries/%d", id), nil, nil)
}

// ListTags fetches the server's tag vocabulary
func (c *Client) ListTags(ctx context.Context) ([]entity.Tag, error) {
	var tags []entity.Tag
	if err := c.do(ctx, http.MethodGet, "/tags", nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// do performs a request and decodes the response into out. Non-2xx
// responses are turned into errors carrying the server's message.
func (c *Client) do(ctx context.Context, method, path string, body *EntryInput, out interface{}) error {
	var reader io.Reader
	if body != nil {
		// The server requires tags to be present as an array,
		// a nil slice would marshal to null
		if body.Tags == nil {
			body.Tags = []string{}
		}
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return serverError(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// serverError extracts the message or error field from a failure body
func serverError(status int, raw []byte) error {
	var res messageResult
	if err := json.Unmarshal(raw, &res); err == nil {
		if res.Error != "" {
			return fmt.Errorf("server error (%d): %s", status, res.Error)
		}
		if res.Message != "" {
			return fmt.Errorf("server error (%d): %s", status, res.Message)
		}
	}
	return fmt.Errorf("server error (%d)", status)
}
