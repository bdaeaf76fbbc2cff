package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrUnhealthy indica que /health respondeu mas não com success=true.
var ErrUnhealthy = errors.New("api unhealthy")

// Client consome GET / e GET /health.
type Client struct {
	BaseURL *url.URL
	HTTP    *http.Client
}

func NewClient(base *url.URL) *Client {
	return &Client{BaseURL: base, HTTP: &http.Client{Timeout: 5 * time.Second}}
}

func (c *Client) Status(ctx context.Context) (StatusResponse, error) {
	var out StatusResponse
	if err := c.get(ctx, "/", &out); err != nil {
		return StatusResponse{}, err
	}
	return out, nil
}

// Health devolve ErrUnhealthy (embrulhado) quando success não é true.
func (c *Client) Health(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	if err := c.get(ctx, "/health", &out); err != nil {
		return HealthResponse{}, err
	}
	if !out.Success {
		return out, fmt.Errorf("%w: %s", ErrUnhealthy, out.Message)
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	u := c.BaseURL.JoinPath(strings.TrimPrefix(path, "/"))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error != "" {
			return fmt.Errorf("%w: GET %s: %d %s", ErrUnhealthy, u, resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("%w: GET %s: %d", ErrUnhealthy, u, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", u, err)
	}
	return nil
}
