package service

import (
	"context"
	"errors"
	"time"

	"github.com/medibook/medibook/internal/auth/domain"
	"github.com/medibook/medibook/internal/auth/store"
	"github.com/medibook/medibook/pkg/jwtx"
	"github.com/medibook/medibook/pkg/slogx"
)

type TokenService struct {
	Signer    jwtx.Signer
	Verifier  jwtx.Verifier
	Store     store.Store
	Issuer    string
	AccessTTL time.Duration
}

// RefreshTTL is always double the access token lifetime, so a client that
// refreshes promptly never holds only dead tokens.
func (s *TokenService) RefreshTTL() time.Duration {
	return 2 * s.AccessTTL
}

// IssuePair mints an access and refresh token for the principal.
func (s *TokenService) IssuePair(p domain.Principal) (*domain.TokenPair, error) {
	now := time.Now().UTC()

	access, err := s.Signer.Sign(jwtx.NewAccessClaims(p.Identifier, p.Authorities, s.AccessTTL, s.Issuer, now))
	if err != nil {
		return nil, err
	}

	refresh, err := s.Signer.Sign(jwtx.NewRefreshClaims(p.Identifier, s.RefreshTTL(), s.Issuer, now))
	if err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int(s.AccessTTL.Seconds()),
	}, nil
}

// VerifyAccess validates an access token and returns the principal it was
// minted for. Failures map onto the service error taxonomy.
func (s *TokenService) VerifyAccess(token string) (domain.Principal, error) {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return domain.Principal{}, mapVerifyError(err)
	}
	if claims.TokenType != jwtx.TokenTypeAccess || claims.Identifier == "" {
		return domain.Principal{}, ErrMalformedToken
	}
	return domain.Principal{
		Identifier:  claims.Identifier,
		Authorities: claims.AuthorityList(),
	}, nil
}

// Refresh exchanges a valid refresh token for a fresh pair. The principal is
// re-read from the store so authority changes since login take effect, and a
// deleted account stops refreshing immediately.
func (s *TokenService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	l := slogx.FromContext(ctx)

	claims, err := s.Verifier.Verify(refreshToken)
	if err != nil {
		return nil, mapVerifyError(err)
	}
	if claims.TokenType != jwtx.TokenTypeRefresh || claims.Subject == "" {
		return nil, ErrMalformedToken
	}

	cred, err := s.Store.Principals().GetByIdentifier(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Info("refresh rejected: principal no longer exists")
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	return s.IssuePair(cred.Principal())
}

func mapVerifyError(err error) error {
	switch {
	case errors.Is(err, jwtx.ErrExpired):
		return ErrExpiredToken
	case errors.Is(err, jwtx.ErrInvalidSig):
		return ErrBadSignature
	default:
		return ErrMalformedToken
	}
}
