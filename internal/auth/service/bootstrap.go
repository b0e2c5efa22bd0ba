package service

import (
	"context"
	"errors"
	"time"

	"github.com/medibook/medibook/internal/auth/domain"
	"github.com/medibook/medibook/internal/auth/store"
	"github.com/medibook/medibook/pkg/cryptox"
	"github.com/medibook/medibook/pkg/idx"
	"github.com/medibook/medibook/pkg/slogx"
)

// Seed describes the account created on first boot.
type Seed struct {
	Identifier  string
	Secret      string
	Authorities []string
}

// Bootstrap creates the seed account when the store is empty. A non-empty
// store is left untouched, so restarts are safe.
func Bootstrap(ctx context.Context, st store.Store, seed Seed) error {
	l := slogx.FromContext(ctx)

	empty, err := st.Principals().IsEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	if seed.Identifier == "" || seed.Secret == "" {
		return errors.New("service: store is empty and no seed account configured")
	}

	hash, err := cryptox.HashSecret(seed.Secret)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	cred := domain.Credential{
		ID:          idx.New().String(),
		Identifier:  seed.Identifier,
		SecretHash:  hash,
		Authorities: seed.Authorities,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := st.Principals().Create(ctx, cred); err != nil {
		// Another replica may have seeded concurrently.
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil
		}
		return err
	}

	l.Info("seeded initial account", "identifier", seed.Identifier, "authorities", seed.Authorities)
	return nil
}
