package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const tokenPath = "/v1/security/oauth2/token"

type TokenSource interface {
	AcquireToken(ctx context.Context) (string, error)
}

type Credentials struct {
	ClientID     string
	ClientSecret string
}

// TokenProvider exchanges static client credentials for a bearer token.
// Tokens are never cached; every call performs a fresh exchange.
type TokenProvider struct {
	baseURL    string
	creds      Credentials
	httpClient *http.Client
}

func NewTokenProvider(baseURL string, creds Credentials, httpClient *http.Client) *TokenProvider {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &TokenProvider{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		creds:      creds,
		httpClient: httpClient,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

func (p *TokenProvider) AcquireToken(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", p.creds.ClientID)
	form.Set("client_secret", p.creds.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrUpstreamAuth, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamAuth, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response body: %v", ErrUpstreamAuth, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %w", ErrUpstreamAuth, &UpstreamError{
			Method:     http.MethodPost,
			Path:       tokenPath,
			StatusCode: resp.StatusCode,
			Body:       body,
		})
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", fmt.Errorf("%w: failed to parse token response: %v", ErrUpstreamAuth, err)
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("%w: %w", ErrUpstreamAuth, ErrEmptyToken)
	}

	return tr.AccessToken, nil
}
