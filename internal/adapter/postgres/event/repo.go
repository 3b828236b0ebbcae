// Package event implements the public feed repository using PostgreSQL.
// Events are append-only; readers take the most recent N by timestamp.
package event

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/propertypasalo/backend/internal/adapter/postgres"
	"github.com/propertypasalo/backend/internal/domain"
)

const table = "events"

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{"id", "message", "type", "client_id", "created_at"}

// Repo provides event persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new event repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create appends a feed entry and returns it with the server timestamp.
func (r *Repo) Create(ctx context.Context, e domain.Event) (domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var etype *string
	if e.Type != "" {
		s := e.Type.String()
		etype = &s
	}

	sql, args, err := qb.Insert(table).
		Columns("id", "message", "type", "client_id").
		Values(e.ID, e.Message, etype, e.ClientID).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return domain.Event{}, fmt.Errorf("build insert event: %w", err)
	}

	if err := q.QueryRow(ctx, sql, args...).Scan(&e.Timestamp); err != nil {
		return domain.Event{}, postgres.MapError(err, "event", e.ID)
	}

	return e, nil
}

// ListRecent returns the most recent feed entries, newest first.
func (r *Repo) ListRecent(ctx context.Context, limit int) ([]domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).From(table).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list events: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var out []domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	return out, nil
}

func scanEvent(row pgx.Row) (*domain.Event, error) {
	var (
		e     domain.Event
		etype *string
	)
	if err := row.Scan(&e.ID, &e.Message, &etype, &e.ClientID, &e.Timestamp); err != nil {
		return nil, err
	}
	if etype != nil {
		e.Type = domain.EventType(*etype)
	}
	return &e, nil
}
