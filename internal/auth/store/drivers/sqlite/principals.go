package sqlite

import (
	"context"
	"database/sql"

	"github.com/medibook/medibook/internal/auth/domain"
	"github.com/medibook/medibook/internal/auth/store"
)

type principalsRepo struct {
	db *sql.DB
}

const principalColumns = `id, identifier, secret_hash, authorities, created_at, updated_at`

func (r *principalsRepo) GetByIdentifier(ctx context.Context, identifier string) (domain.Credential, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+principalColumns+` FROM principals WHERE identifier = ?`, identifier)
	return scanCredential(row)
}

func (r *principalsRepo) Create(ctx context.Context, c domain.Credential) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO principals (`+principalColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.Identifier, c.SecretHash, joinAuthorities(c.Authorities), c.CreatedAt, c.UpdatedAt)
	if isUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *principalsRepo) List(ctx context.Context) ([]domain.Credential, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+principalColumns+` FROM principals ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Credential
	for rows.Next() {
		c, err := scanCredential(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *principalsRepo) IsEmpty(ctx context.Context) (bool, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM principals`).Scan(&n); err != nil {
		return false, err
	}
	return n == 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCredential(row rowScanner) (domain.Credential, error) {
	var c domain.Credential
	var authorities string
	err := row.Scan(&c.ID, &c.Identifier, &c.SecretHash, &authorities, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Credential{}, mapNotFound(err)
	}
	c.Authorities = splitAuthorities(authorities)
	return c, nil
}
