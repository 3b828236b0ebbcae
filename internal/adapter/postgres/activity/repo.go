// Package activity implements the Activity repository using PostgreSQL.
// Activities are append-only audit records; there is no update or delete.
package activity

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/propertypasalo/backend/internal/adapter/postgres"
	"github.com/propertypasalo/backend/internal/domain"
)

const table = "activities"

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "type", "client_id", "client_name", "description",
	"previous_status", "new_status", "updated_by", "created_at",
}

// Repo provides activity persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new activity repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create appends an audit record and returns it with the server timestamp.
func (r *Repo) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var prev, next *string
	if a.PreviousStatus != nil {
		s := a.PreviousStatus.String()
		prev = &s
	}
	if a.NewStatus != nil {
		s := a.NewStatus.String()
		next = &s
	}

	sql, args, err := qb.Insert(table).
		Columns("id", "type", "client_id", "client_name", "description",
			"previous_status", "new_status", "updated_by").
		Values(a.ID, a.Type.String(), a.ClientID, a.ClientName, a.Description,
			prev, next, a.UpdatedBy).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return domain.Activity{}, fmt.Errorf("build insert activity: %w", err)
	}

	if err := q.QueryRow(ctx, sql, args...).Scan(&a.Timestamp); err != nil {
		return domain.Activity{}, postgres.MapError(err, "activity", a.ID)
	}

	return a, nil
}

// ListByClient returns the audit trail for one client, newest first.
func (r *Repo) ListByClient(ctx context.Context, clientID uuid.UUID, limit int) ([]domain.Activity, error) {
	return r.list(ctx, sq.Eq{"client_id": clientID}, limit)
}

// ListRecent returns the most recent audit records across all clients.
func (r *Repo) ListRecent(ctx context.Context, limit int) ([]domain.Activity, error) {
	return r.list(ctx, nil, limit)
}

func (r *Repo) list(ctx context.Context, where any, limit int) ([]domain.Activity, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := qb.Select(columns...).From(table).OrderBy("created_at DESC").Limit(uint64(limit))
	if where != nil {
		b = b.Where(where)
	}
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list activities: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	var out []domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	return out, nil
}

func scanActivity(row pgx.Row) (*domain.Activity, error) {
	var (
		a          domain.Activity
		atype      string
		prev, next *string
	)
	err := row.Scan(
		&a.ID, &atype, &a.ClientID, &a.ClientName, &a.Description,
		&prev, &next, &a.UpdatedBy, &a.Timestamp,
	)
	if err != nil {
		return nil, err
	}
	a.Type = domain.ActivityType(atype)
	if prev != nil {
		s := domain.ClientStatus(*prev)
		a.PreviousStatus = &s
	}
	if next != nil {
		s := domain.ClientStatus(*next)
		a.NewStatus = &s
	}
	return &a, nil
}
