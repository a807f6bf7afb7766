package amadeus

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
)

// API is the set of provider calls the resource services make.
type API interface {
	Get(ctx context.Context, token, path string, query url.Values) (*Response, error)
	Post(ctx context.Context, token, path string, body any) (*Response, error)
	Delete(ctx context.Context, token, path string) (*Response, error)
}

// Client performs authenticated JSON calls against the provider.
// The caller supplies the bearer token for every call.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type Response struct {
	StatusCode int
	Body       []byte
}

func (c *Client) Get(ctx context.Context, token, path string, query url.Values) (*Response, error) {
	if len(query) > 0 {
		path = path + "?" + query.Encode()
	}
	return c.do(ctx, token, http.MethodGet, path, nil)
}

func (c *Client) Post(ctx context.Context, token, path string, body any) (*Response, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	return c.do(ctx, token, http.MethodPost, path, jsonData)
}

func (c *Client) Delete(ctx context.Context, token, path string) (*Response, error) {
	return c.do(ctx, token, http.MethodDelete, path, nil)
}

func (c *Client) do(ctx context.Context, token, method, path string, payload []byte) (*Response, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       respBody,
		}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       respBody,
	}, nil
}
