package authsdk

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// Session is an authenticated handle on the auth service. It refreshes the
// access token shortly before expiry, so callers never see a stale token.
type Session struct {
	client *Client

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	expiresAt    time.Time
}

// refreshSkew refreshes this much before the token actually expires.
const refreshSkew = 30 * time.Second

func newSession(client *Client, pair *TokenPair) *Session {
	return &Session{
		client:       client,
		accessToken:  pair.AccessToken,
		refreshToken: pair.RefreshToken,
		expiresAt:    time.Now().Add(time.Duration(pair.ExpiresIn)*time.Second - refreshSkew),
	}
}

// AccessToken returns the current access token without refreshing.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// RefreshToken returns the current refresh token.
func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

// UserInfo fetches the caller's identity and authorities.
func (s *Session) UserInfo(ctx context.Context) (*UserInfo, error) {
	resp, err := s.doAuth(ctx, http.MethodGet, "/v1/userinfo")
	if err != nil {
		return nil, err
	}

	var info UserInfo
	if err := decodeJSON(resp, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Principals lists all accounts. Requires the admin authority.
func (s *Session) Principals(ctx context.Context) ([]Principal, error) {
	resp, err := s.doAuth(ctx, http.MethodGet, "/v1/principals")
	if err != nil {
		return nil, err
	}

	var principals []Principal
	if err := decodeJSON(resp, &principals); err != nil {
		return nil, err
	}
	return principals, nil
}

func (s *Session) doAuth(ctx context.Context, method, path string) (*http.Response, error) {
	token, err := s.validToken(ctx)
	if err != nil {
		return nil, err
	}
	return s.client.do(ctx, method, path, nil, map[string]string{
		"Authorization": "Bearer " + token,
	})
}

// validToken returns a usable access token, refreshing when close to expiry.
func (s *Session) validToken(ctx context.Context) (string, error) {
	s.mu.RLock()
	if time.Now().Before(s.expiresAt) {
		token := s.accessToken
		s.mu.RUnlock()
		return token, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another goroutine may have refreshed while we waited for the lock.
	if time.Now().Before(s.expiresAt) {
		return s.accessToken, nil
	}
	if s.refreshToken == "" {
		return "", fmt.Errorf("access token expired and no refresh token available")
	}

	pair, err := s.client.Refresh(ctx, s.refreshToken)
	if err != nil {
		return "", fmt.Errorf("refresh token: %w", err)
	}

	s.accessToken = pair.AccessToken
	s.refreshToken = pair.RefreshToken
	s.expiresAt = time.Now().Add(time.Duration(pair.ExpiresIn)*time.Second - refreshSkew)
	return s.accessToken, nil
}
