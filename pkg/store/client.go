package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goliatone/go-cardgen/pkg/card"
)

// Client talks to a remote card persistence endpoint. It satisfies the
// builder's share-client contract.
type Client struct {
	baseURL string
	http    *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// NewClient targets the service at baseURL (scheme and host, no path).
func NewClient(baseURL string, options ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Save uploads one config and returns the id the service assigned.
func (c *Client) Save(ctx context.Context, cfg card.Config) (string, error) {
	data, err := card.Export(cfg)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+CardPath, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("store: build save request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("store: save card: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusRequestEntityTooLarge:
		return "", ErrTooLarge
	default:
		return "", fmt.Errorf("store: save card: %s", readError(resp))
	}

	var payload struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("store: decode save response: %w", err)
	}
	if payload.ID == "" {
		return "", fmt.Errorf("store: save response carries no id")
	}
	return payload.ID, nil
}

// Load fetches one config by id. Unknown and expired ids map to ErrNotFound.
func (c *Client) Load(ctx context.Context, id string) (card.Config, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+CardPath+"?id="+id, nil)
	if err != nil {
		return card.Config{}, fmt.Errorf("store: build load request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return card.Config{}, fmt.Errorf("store: load card: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return card.Config{}, ErrNotFound
	default:
		return card.Config{}, fmt.Errorf("store: load card: %s", readError(resp))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxCardBytes+1))
	if err != nil {
		return card.Config{}, fmt.Errorf("store: read load response: %w", err)
	}
	return card.Import(body)
}

// readError digs a service error message out of a failed response.
func readError(resp *http.Response) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4<<10)).Decode(&payload); err == nil && payload.Error != "" {
		return fmt.Sprintf("%s (HTTP %d)", payload.Error, resp.StatusCode)
	}
	return fmt.Sprintf("HTTP %d", resp.StatusCode)
}
