package authsdk

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

// Client talks to the auth service's unauthenticated surface and mints
// Sessions for the authenticated one.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient builds a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Login exchanges a credential pair for a Session.
func (c *Client) Login(ctx context.Context, identifier, secret string) (*Session, error) {
	pair, err := c.LoginTokens(ctx, identifier, secret)
	if err != nil {
		return nil, err
	}
	return newSession(c, pair), nil
}

// LoginTokens performs a login and returns the raw token pair. The access
// token arrives in the Authorization response header, the refresh token in
// Refresh-Token.
func (c *Client) LoginTokens(ctx context.Context, identifier, secret string) (*TokenPair, error) {
	body, err := json.Marshal(LoginRequest{Identifier: identifier, Secret: secret})
	if err != nil {
		return nil, fmt.Errorf("encode login request: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, "/v1/auth/login", bytes.NewReader(body), map[string]string{
		"Content-Type": "application/json",
	})
	if err != nil {
		return nil, err
	}
	return tokenPairFromResponse(resp)
}

// Refresh exchanges a refresh token for a fresh token pair. The refresh token
// travels in the Refresh-Token request header.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	resp, err := c.do(ctx, http.MethodPost, "/v1/auth/refresh", nil, map[string]string{
		"Refresh-Token": refreshToken,
	})
	if err != nil {
		return nil, err
	}
	return tokenPairFromResponse(resp)
}

// SessionFromTokens resumes a session from previously stored tokens.
func (c *Client) SessionFromTokens(accessToken, refreshToken string, expiresIn int) *Session {
	return newSession(c, &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    expiresIn,
	})
}

// Livez reports whether the service process is up.
func (c *Client) Livez(ctx context.Context) error {
	return c.checkHealth(ctx, "/livez")
}

// Readyz reports whether the service can reach its dependencies.
func (c *Client) Readyz(ctx context.Context) error {
	return c.checkHealth(ctx, "/readyz")
}

func (c *Client) checkHealth(ctx context.Context, path string) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return parseErrorResponse(resp, body)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	return resp, nil
}

// tokenPairFromResponse extracts tokens from the response headers and lifetime
// metadata from the body.
func tokenPairFromResponse(resp *http.Response) (*TokenPair, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, parseErrorResponse(resp, body)
	}

	authz := resp.Header.Get("Authorization")
	if !strings.HasPrefix(authz, "Bearer ") {
		return nil, fmt.Errorf("response missing bearer access token")
	}

	pair := &TokenPair{
		AccessToken:  strings.TrimSpace(strings.TrimPrefix(authz, "Bearer")),
		RefreshToken: resp.Header.Get("Refresh-Token"),
		TokenType:    "Bearer",
	}

	var env envelope[TokenMetadata]
	if err := json.Unmarshal(body, &env); err == nil {
		pair.ExpiresIn = env.Data.ExpiresIn
	}
	return pair, nil
}

// decodeJSON reads resp and unmarshals a success envelope's data into target.
func decodeJSON[T any](resp *http.Response, target *T) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return parseErrorResponse(resp, body)
	}

	var env envelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	*target = env.Data
	return nil
}
