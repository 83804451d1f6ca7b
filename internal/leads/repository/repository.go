package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound       = errors.New("lead not found")
	ErrDuplicateEmail = errors.New("a lead with this email already exists")
)

const uniqueViolation = "23505"

// SortField is a whitelisted ordering column for List.
type SortField string

const (
	SortByScore     SortField = "score"
	SortByCreatedAt SortField = "createdAt"
)

var sortColumns = map[SortField]string{
	SortByScore:     "score",
	SortByCreatedAt: "created_at",
}

// Lead is a stored, scored lead.
type Lead struct {
	ID          uuid.UUID
	Name        string
	Email       string
	Website     *string
	CompanyName *string
	CompanySize *string
	Industry    *string
	Country     *string
	Score       int
	Qualified   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateLeadParams holds the values of a new lead.
type CreateLeadParams struct {
	Name        string
	Email       string
	Website     *string
	CompanyName *string
	CompanySize *string
	Industry    *string
	Country     *string
	Score       int
	Qualified   bool
}

// ListParams filters and orders List.
type ListParams struct {
	QualifiedOnly bool
	SortBy        SortField
	Ascending     bool
}

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const leadColumns = `id, name, email, website, company_name, company_size, industry, country, score, qualified, created_at, updated_at`

func (r *Repository) Create(ctx context.Context, params CreateLeadParams) (Lead, error) {
	var lead Lead
	err := r.pool.QueryRow(ctx, `
		INSERT INTO leads (id, name, email, website, company_name, company_size, industry, country, score, qualified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())
		RETURNING `+leadColumns,
		uuid.New(), params.Name, params.Email, params.Website,
		params.CompanyName, params.CompanySize, params.Industry, params.Country,
		params.Score, params.Qualified,
	).Scan(leadScanTargets(&lead)...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return Lead{}, ErrDuplicateEmail
		}
		return Lead{}, err
	}
	return lead, nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (Lead, error) {
	var lead Lead
	err := r.pool.QueryRow(ctx, `SELECT `+leadColumns+` FROM leads WHERE email = $1`, email).
		Scan(leadScanTargets(&lead)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return Lead{}, ErrNotFound
	}
	if err != nil {
		return Lead{}, err
	}
	return lead, nil
}

func (r *Repository) List(ctx context.Context, params ListParams) ([]Lead, error) {
	column, ok := sortColumns[params.SortBy]
	if !ok {
		column = sortColumns[SortByScore]
	}
	direction := "DESC"
	if params.Ascending {
		direction = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM leads
		WHERE ($1::boolean = false OR qualified = true)
		ORDER BY %s %s, created_at DESC, id
	`, leadColumns, column, direction)

	rows, err := r.pool.Query(ctx, query, params.QualifiedOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Lead, 0)
	for rows.Next() {
		var lead Lead
		if err := rows.Scan(leadScanTargets(&lead)...); err != nil {
			return nil, err
		}
		items = append(items, lead)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return items, nil
}

func leadScanTargets(lead *Lead) []any {
	return []any{
		&lead.ID, &lead.Name, &lead.Email, &lead.Website,
		&lead.CompanyName, &lead.CompanySize, &lead.Industry, &lead.Country,
		&lead.Score, &lead.Qualified, &lead.CreatedAt, &lead.UpdatedAt,
	}
}
