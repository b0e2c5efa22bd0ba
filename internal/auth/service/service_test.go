package service_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/medibook/medibook/internal/auth/domain"
	"github.com/medibook/medibook/internal/auth/store"
	"github.com/medibook/medibook/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory store.Store for service tests.
type memStore struct {
	creds map[string]domain.Credential
}

func newMemStore() *memStore {
	return &memStore{creds: make(map[string]domain.Credential)}
}

func (m *memStore) Principals() store.Principals { return (*memPrincipals)(m) }
func (m *memStore) ApplyMigrations() error       { return nil }
func (m *memStore) Ping(context.Context) error   { return nil }
func (m *memStore) Close() error                 { return nil }

type memPrincipals memStore

func (m *memPrincipals) GetByIdentifier(_ context.Context, identifier string) (domain.Credential, error) {
	c, ok := m.creds[identifier]
	if !ok {
		return domain.Credential{}, store.ErrNotFound
	}
	return c, nil
}

func (m *memPrincipals) Create(_ context.Context, c domain.Credential) error {
	if _, ok := m.creds[c.Identifier]; ok {
		return store.ErrAlreadyExists
	}
	m.creds[c.Identifier] = c
	return nil
}

func (m *memPrincipals) List(context.Context) ([]domain.Credential, error) {
	out := make([]domain.Credential, 0, len(m.creds))
	for _, c := range m.creds {
		out = append(out, c)
	}
	return out, nil
}

func (m *memPrincipals) IsEmpty(context.Context) (bool, error) {
	return len(m.creds) == 0, nil
}

func useTempPepper(t *testing.T) {
	t.Helper()
	cryptox.SetPepperPath(filepath.Join(t.TempDir(), "pepper"))
}

func seedAccount(t *testing.T, st *memStore, identifier, secret string, authorities ...string) {
	t.Helper()

	hash, err := cryptox.HashSecret(secret)
	require.NoError(t, err)

	now := time.Now().UTC()
	st.creds[identifier] = domain.Credential{
		ID:          "01TEST" + identifier,
		Identifier:  identifier,
		SecretHash:  hash,
		Authorities: authorities,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
