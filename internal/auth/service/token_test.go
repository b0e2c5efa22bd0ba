package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/medibook/medibook/internal/auth/domain"
	"github.com/medibook/medibook/internal/auth/service"
	"github.com/medibook/medibook/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newTokenService(t *testing.T, st *memStore, accessTTL time.Duration) *service.TokenService {
	t.Helper()

	key := []byte("0123456789abcdef0123456789abcdef")
	signer, err := jwtx.NewSignerHS256(key)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256(key, "medibook-auth")
	require.NoError(t, err)

	return &service.TokenService{
		Signer:    signer,
		Verifier:  verifier,
		Store:     st,
		Issuer:    "medibook-auth",
		AccessTTL: accessTTL,
	}
}

func TestIssuePair(t *testing.T) {
	svc := newTokenService(t, newMemStore(), 15*time.Minute)

	pair, err := svc.IssuePair(domain.Principal{Identifier: "dr.davis", Authorities: []string{"doctor", "staff"}})
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	require.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	require.Equal(t, int((15 * time.Minute).Seconds()), pair.ExpiresIn)

	access, err := svc.Verifier.Verify(pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, jwtx.AccessSubject, access.Subject)
	require.Equal(t, "dr.davis", access.Identifier)
	require.Equal(t, "doctor,staff", access.Authorities)
	require.Equal(t, jwtx.TokenTypeAccess, access.TokenType)

	refresh, err := svc.Verifier.Verify(pair.RefreshToken)
	require.NoError(t, err)
	require.Equal(t, "dr.davis", refresh.Subject)
	require.Equal(t, jwtx.TokenTypeRefresh, refresh.TokenType)

	// The refresh token lives exactly twice as long as the access token.
	accessLife := access.ExpiresAt.Sub(access.IssuedAt.Time)
	refreshLife := refresh.ExpiresAt.Sub(refresh.IssuedAt.Time)
	require.Equal(t, 2*accessLife, refreshLife)
}

func TestVerifyAccess(t *testing.T) {
	svc := newTokenService(t, newMemStore(), time.Minute)

	pair, err := svc.IssuePair(domain.Principal{Identifier: "dr.davis", Authorities: []string{"doctor"}})
	require.NoError(t, err)

	t.Run("valid access token", func(t *testing.T) {
		p, err := svc.VerifyAccess(pair.AccessToken)
		require.NoError(t, err)
		require.Equal(t, "dr.davis", p.Identifier)
		require.Equal(t, []string{"doctor"}, p.Authorities)
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		_, err := svc.VerifyAccess(pair.RefreshToken)
		require.ErrorIs(t, err, service.ErrMalformedToken)
	})

	t.Run("garbage is malformed", func(t *testing.T) {
		_, err := svc.VerifyAccess("not.a.token")
		require.ErrorIs(t, err, service.ErrMalformedToken)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := newTokenService(t, newMemStore(), -time.Minute)
		pair, err := expired.IssuePair(domain.Principal{Identifier: "dr.davis"})
		require.NoError(t, err)

		_, err = svc.VerifyAccess(pair.AccessToken)
		require.ErrorIs(t, err, service.ErrExpiredToken)
	})

	t.Run("wrong key is a bad signature", func(t *testing.T) {
		otherSigner, err := jwtx.NewSignerHS256([]byte("ffffffffffffffffffffffffffffffff"))
		require.NoError(t, err)
		forged, err := otherSigner.Sign(jwtx.NewAccessClaims("dr.davis", nil, time.Minute, "medibook-auth", time.Now().UTC()))
		require.NoError(t, err)

		_, err = svc.VerifyAccess(forged)
		require.ErrorIs(t, err, service.ErrBadSignature)
	})
}

func TestRefresh(t *testing.T) {
	useTempPepper(t)

	st := newMemStore()
	seedAccount(t, st, "dr.davis", "stethoscope-42", "doctor")
	svc := newTokenService(t, st, time.Minute)

	pair, err := svc.IssuePair(domain.Principal{Identifier: "dr.davis", Authorities: []string{"doctor"}})
	require.NoError(t, err)

	t.Run("valid refresh token", func(t *testing.T) {
		next, err := svc.Refresh(context.Background(), pair.RefreshToken)
		require.NoError(t, err)

		p, err := svc.VerifyAccess(next.AccessToken)
		require.NoError(t, err)
		require.Equal(t, "dr.davis", p.Identifier)
	})

	t.Run("authority changes take effect on refresh", func(t *testing.T) {
		cred := st.creds["dr.davis"]
		cred.Authorities = []string{"doctor", "admin"}
		st.creds["dr.davis"] = cred

		next, err := svc.Refresh(context.Background(), pair.RefreshToken)
		require.NoError(t, err)

		p, err := svc.VerifyAccess(next.AccessToken)
		require.NoError(t, err)
		require.Equal(t, []string{"doctor", "admin"}, p.Authorities)
	})

	t.Run("access token cannot refresh", func(t *testing.T) {
		_, err := svc.Refresh(context.Background(), pair.AccessToken)
		require.ErrorIs(t, err, service.ErrMalformedToken)
	})

	t.Run("deleted principal cannot refresh", func(t *testing.T) {
		delete(st.creds, "dr.davis")
		_, err := svc.Refresh(context.Background(), pair.RefreshToken)
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}
