package jwtx_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/medibook/medibook/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestNewAccessClaims(t *testing.T) {
	now := time.Now().UTC()
	c := jwtx.NewAccessClaims("dr.davis", []string{"doctor", "staff"}, 15*time.Minute, "medibook-auth", now)

	require.Equal(t, "medibook-auth", c.Issuer)
	require.Equal(t, jwtx.AccessSubject, c.Subject)
	require.Equal(t, "dr.davis", c.Identifier)
	require.Equal(t, "doctor,staff", c.Authorities)
	require.Equal(t, jwtx.TokenTypeAccess, c.TokenType)
	require.Equal(t, now.Add(15*time.Minute).Unix(), c.ExpiresAt.Unix())
	require.True(t, c.ExpiresAt.After(c.IssuedAt.Time))
}

func TestNewRefreshClaims(t *testing.T) {
	now := time.Now().UTC()
	c := jwtx.NewRefreshClaims("dr.davis", 30*time.Minute, "medibook-auth", now)

	require.Equal(t, "dr.davis", c.Subject)
	require.Equal(t, jwtx.TokenTypeRefresh, c.TokenType)
	require.Empty(t, c.Authorities)
}

func TestAuthorityList(t *testing.T) {
	t.Run("preserves order", func(t *testing.T) {
		c := jwtx.Claims{Authorities: "doctor,staff,admin"}
		require.Equal(t, []string{"doctor", "staff", "admin"}, c.AuthorityList())
	})

	t.Run("empty claim yields empty set", func(t *testing.T) {
		c := jwtx.Claims{}
		require.Empty(t, c.AuthorityList())
	})

	t.Run("drops empty segments", func(t *testing.T) {
		c := jwtx.Claims{Authorities: "doctor,, staff ,"}
		require.Equal(t, []string{"doctor", "staff"}, c.AuthorityList())
	})
}

func TestValidateIssuer(t *testing.T) {
	c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{Issuer: "medibook-auth"}}

	t.Run("matching issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer("medibook-auth"))
	})

	t.Run("empty expected issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer(""))
	})

	t.Run("mismatched issuer", func(t *testing.T) {
		require.ErrorIs(t, c.ValidateIssuer("booking-service"), jwtx.ErrIssuer)
	})
}

func TestValidateExpiry(t *testing.T) {
	now := time.Now().UTC()
	c := &jwtx.Claims{RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
	}}

	t.Run("before expiry", func(t *testing.T) {
		require.NoError(t, c.ValidateExpiry(now.Add(59*time.Second)))
	})

	t.Run("dead at the expiry instant", func(t *testing.T) {
		require.ErrorIs(t, c.ValidateExpiry(now.Add(time.Minute)), jwtx.ErrExpired)
	})

	t.Run("after expiry", func(t *testing.T) {
		require.ErrorIs(t, c.ValidateExpiry(now.Add(61*time.Second)), jwtx.ErrExpired)
	})

	t.Run("no exp claim", func(t *testing.T) {
		require.NoError(t, (&jwtx.Claims{}).ValidateExpiry(now))
	})
}
