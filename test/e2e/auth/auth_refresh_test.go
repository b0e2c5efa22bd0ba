package auth_test

import (
	"testing"

	"github.com/medibook/medibook/pkg/authsdk"
	"github.com/stretchr/testify/require"
)

func TestRefreshIssuesWorkingTokens(t *testing.T) {
	baseURL, cleanup := setupAuthContainer(t)
	defer cleanup()

	client := authsdk.NewClient(baseURL)

	pair, err := client.LoginTokens(t.Context(), seedUsername, seedPassword)
	require.NoError(t, err)
	assertTokenPair(t, pair)

	next, err := client.Refresh(t.Context(), pair.RefreshToken)
	require.NoError(t, err, "Refresh should succeed")
	assertTokenPair(t, next)

	// The refreshed access token must be accepted by a protected endpoint.
	session := client.SessionFromTokens(next.AccessToken, next.RefreshToken, next.ExpiresIn)
	info, err := session.UserInfo(t.Context())
	require.NoError(t, err)
	require.Equal(t, seedUsername, info.Identifier)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	baseURL, cleanup := setupAuthContainer(t)
	defer cleanup()

	client := authsdk.NewClient(baseURL)

	pair, err := client.LoginTokens(t.Context(), seedUsername, seedPassword)
	require.NoError(t, err)

	_, err = client.Refresh(t.Context(), pair.AccessToken)
	assertUnauthorized(t, err, "access token used at refresh endpoint")
}

func TestRefreshRejectsGarbage(t *testing.T) {
	baseURL, cleanup := setupAuthContainer(t)
	defer cleanup()

	client := authsdk.NewClient(baseURL)

	_, err := client.Refresh(t.Context(), "not-a-token")
	assertUnauthorized(t, err, "garbage refresh token")
}
