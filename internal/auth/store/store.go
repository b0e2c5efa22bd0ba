// Package store defines the data access interfaces implemented by concrete
// drivers under drivers/.
package store

import (
	"context"
	"errors"

	"github.com/medibook/medibook/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today,
// postgres later) implement this.
type Store interface {
	Principals() Principals

	// ApplyMigrations brings the schema up to date from the embedded
	// migration files.
	ApplyMigrations() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error

	// Close releases the underlying connection pool.
	Close() error
}

type Principals interface {
	// GetByIdentifier is the lookup used during login and refresh.
	GetByIdentifier(ctx context.Context, identifier string) (domain.Credential, error)

	// Create inserts a new account (id is provided by the app via ULID).
	Create(ctx context.Context, c domain.Credential) error

	// List returns all accounts ordered by creation, newest first.
	List(ctx context.Context) ([]domain.Credential, error)

	// IsEmpty reports whether no accounts exist yet, for seed bootstrap.
	IsEmpty(ctx context.Context) (bool, error)
}
