// Package admins implements the administrators map.
package admins

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/propertypasalo/backend/internal/adapter/postgres"
)

// Repo provides the site administrators map backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new admins repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Any reports whether at least one administrator exists.
func (r *Repo) Any(ctx context.Context) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM site_admins)`).Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, "site_admins", "any")
	}

	return exists, nil
}

// IsAdmin reports whether the given caller is an administrator.
func (r *Repo) IsAdmin(ctx context.Context, uid uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM site_admins WHERE uid = $1)`, uid).Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, "site_admins", uid)
	}

	return exists, nil
}

// Grant records the caller as an administrator. Granting an existing
// administrator again is a no-op.
func (r *Repo) Grant(ctx context.Context, uid uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`INSERT INTO site_admins (uid) VALUES ($1) ON CONFLICT (uid) DO NOTHING`, uid)
	if err != nil {
		return postgres.MapError(err, "site_admins", uid)
	}

	return nil
}
