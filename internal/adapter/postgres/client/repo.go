// Package client implements the Client repository using PostgreSQL.
package client

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/propertypasalo/backend/internal/adapter/postgres"
	"github.com/propertypasalo/backend/internal/domain"
)

const table = "clients"

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "first_name", "last_name", "email", "phone", "business_page",
	"interested_property", "location", "original_inquiry_type", "status",
	"notes", "profile_picture_url", "promoted_at", "last_modified", "updated_by",
}

// Repo provides client persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new client repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new client. Clients are only ever created by the
// promotion orchestrator inside a transaction; promoted_at and
// last_modified are assigned by the database.
func (r *Repo) Create(ctx context.Context, c domain.Client) (domain.Client, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert(table).
		Columns("id", "first_name", "last_name", "email", "phone", "business_page",
			"interested_property", "location", "original_inquiry_type", "status",
			"notes", "profile_picture_url", "updated_by").
		Values(c.ID, c.FirstName, c.LastName, c.Email, c.Phone, c.BusinessPage,
			c.InterestedProperty, c.Location, c.OriginalInquiryType.String(), c.Status.String(),
			c.Notes, c.ProfilePictureURL, c.UpdatedBy).
		Suffix("RETURNING promoted_at, last_modified").
		ToSql()
	if err != nil {
		return domain.Client{}, fmt.Errorf("build insert client: %w", err)
	}

	if err := q.QueryRow(ctx, sql, args...).Scan(&c.PromotedAt, &c.LastModified); err != nil {
		return domain.Client{}, postgres.MapError(err, "client", c.ID)
	}

	return c, nil
}

// GetByID returns the client with the given id, or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	return r.get(ctx, id, "")
}

// GetByIDForUpdate locks the client row for the rest of the surrounding
// transaction. Used by the edit flow so the previous status read and the
// update apply against the same snapshot.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	return r.get(ctx, id, "FOR UPDATE")
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, suffix string) (*domain.Client, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := qb.Select(columns...).From(table).Where(sq.Eq{"id": id})
	if suffix != "" {
		b = b.Suffix(suffix)
	}
	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select client: %w", err)
	}

	c, err := scanClient(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "client", id)
	}

	return c, nil
}

// List returns all clients, most recently promoted first.
func (r *Repo) List(ctx context.Context) ([]domain.Client, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).From(table).OrderBy("promoted_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list clients: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var out []domain.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	return out, nil
}

// Update overwrites the client's editable fields, stamps last_modified
// and updated_by, and returns the updated record.
func (r *Repo) Update(ctx context.Context, c domain.Client) (*domain.Client, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update(table).
		Set("first_name", c.FirstName).
		Set("last_name", c.LastName).
		Set("email", c.Email).
		Set("phone", c.Phone).
		Set("business_page", c.BusinessPage).
		Set("interested_property", c.InterestedProperty).
		Set("location", c.Location).
		Set("status", c.Status.String()).
		Set("notes", c.Notes).
		Set("profile_picture_url", c.ProfilePictureURL).
		Set("updated_by", c.UpdatedBy).
		Set("last_modified", sq.Expr("now()")).
		Where(sq.Eq{"id": c.ID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update client: %w", err)
	}

	updated, err := scanClient(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "client", c.ID)
	}

	return updated, nil
}

func scanClient(row pgx.Row) (*domain.Client, error) {
	var (
		c        domain.Client
		origType string
		status   string
	)
	err := row.Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.BusinessPage,
		&c.InterestedProperty, &c.Location, &origType, &status,
		&c.Notes, &c.ProfilePictureURL, &c.PromotedAt, &c.LastModified, &c.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	c.OriginalInquiryType = domain.InquiryStatus(origType)
	c.Status = domain.ClientStatus(status)
	return &c, nil
}
