// Package inquiry implements the Inquiry repository using PostgreSQL.
package inquiry

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

const table = "inquiries"

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "first_name", "last_name", "email", "phone", "business_page",
	"interested_property", "listing_id", "status", "notes", "created_at",
}

// Repo provides inquiry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new inquiry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new inquiry. created_at is assigned by the database;
// the persisted record is returned.
func (r *Repo) Create(ctx context.Context, inq domain.Inquiry) (domain.Inquiry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert(table).
		Columns("id", "first_name", "last_name", "email", "phone", "business_page",
			"interested_property", "listing_id", "status", "notes").
		Values(inq.ID, inq.FirstName, inq.LastName, inq.Email, inq.Phone, inq.BusinessPage,
			inq.InterestedProperty, inq.ListingID, inq.Status.String(), inq.Notes).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return domain.Inquiry{}, fmt.Errorf("build insert inquiry: %w", err)
	}

	if err := q.QueryRow(ctx, sql, args...).Scan(&inq.CreatedAt); err != nil {
		return domain.Inquiry{}, postgres.MapError(err, "inquiry", inq.ID)
	}

	return inq, nil
}

// GetByID returns the inquiry with the given id, or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Inquiry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).From(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select inquiry: %w", err)
	}

	inq, err := scanInquiry(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "inquiry", id)
	}

	return inq, nil
}

// List returns all inquiries, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.Inquiry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(columns...).From(table).OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list inquiries: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	defer rows.Close()

	var out []domain.Inquiry
	for rows.Next() {
		inq, err := scanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inquiry: %w", err)
		}
		out = append(out, *inq)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}

	return out, nil
}

// UpdateStatus sets the inquiry's status and returns the updated record.
// Returns domain.ErrNotFound if no inquiry exists at that id.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.InquiryStatus) (*domain.Inquiry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update(table).
		Set("status", status.String()).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + joined()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update inquiry status: %w", err)
	}

	inq, err := scanInquiry(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "inquiry", id)
	}

	return inq, nil
}

// Delete removes the inquiry. Returns domain.ErrNotFound if absent.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete inquiry: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "inquiry", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("inquiry %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func joined() string {
	return strings.Join(columns, ", ")
}

func scanInquiry(row pgx.Row) (*domain.Inquiry, error) {
	var (
		inq    domain.Inquiry
		status string
	)
	err := row.Scan(
		&inq.ID, &inq.FirstName, &inq.LastName, &inq.Email, &inq.Phone,
		&inq.BusinessPage, &inq.InterestedProperty, &inq.ListingID,
		&status, &inq.Notes, &inq.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	inq.Status = domain.InquiryStatus(status)
	return &inq, nil
}
