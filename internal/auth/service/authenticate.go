// Package service holds the auth service's business logic, between the HTTP
// layer and the store.
package service

import (
	"context"
	"errors"

	"github.com/medibook/medibook/internal/auth/domain"
	"github.com/medibook/medibook/internal/auth/store"
	"github.com/medibook/medibook/pkg/cryptox"
	"github.com/medibook/medibook/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrExpiredToken       = errors.New("expired_token")
	ErrMalformedToken     = errors.New("malformed_token")
	ErrBadSignature       = errors.New("bad_signature")
)

type AuthService struct {
	Store store.Store
}

// Authenticate checks an identifier/secret pair against the stored hash.
// Unknown identifiers and wrong secrets both come back as
// ErrInvalidCredentials, so callers cannot probe which accounts exist.
func (s *AuthService) Authenticate(ctx context.Context, identifier, secret string) (domain.Principal, error) {
	l := slogx.FromContext(ctx)

	cred, err := s.Store.Principals().GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Info("login failed: unknown identifier")
			return domain.Principal{}, ErrInvalidCredentials
		}
		return domain.Principal{}, err
	}

	if err := cryptox.VerifySecret(secret, cred.SecretHash); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			l.Info("login failed: secret mismatch", "identifier", identifier)
			return domain.Principal{}, ErrInvalidCredentials
		}
		return domain.Principal{}, err
	}

	return cred.Principal(), nil
}

// Lookup loads the current account state for an identifier, for refresh and
// userinfo flows.
func (s *AuthService) Lookup(ctx context.Context, identifier string) (domain.Principal, error) {
	cred, err := s.Store.Principals().GetByIdentifier(ctx, identifier)
	if err != nil {
		return domain.Principal{}, err
	}
	return cred.Principal(), nil
}

// List returns all accounts, newest first.
func (s *AuthService) List(ctx context.Context) ([]domain.Credential, error) {
	return s.Store.Principals().List(ctx)
}
