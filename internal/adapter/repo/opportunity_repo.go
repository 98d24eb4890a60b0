package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"server/internal/domain"
)

// OpportunityRepositoryPG implements the job board on PostgreSQL.
type OpportunityRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewOpportunityRepository creates a new opportunity repo.
func NewOpportunityRepository(pool *pgxpool.Pool) *OpportunityRepositoryPG {
	return &OpportunityRepositoryPG{pool: pool}
}

const opportunityColumns = `id, title, company, location, type, description, is_active, application_count, created_at`

// List returns postings newest first.
func (r *OpportunityRepositoryPG) List(ctx context.Context, activeOnly bool) ([]domain.Opportunity, error) {
	query := `
SELECT ` + opportunityColumns + `
FROM opportunities
ORDER BY created_at DESC;
`
	if activeOnly {
		query = `
SELECT ` + opportunityColumns + `
FROM opportunities
WHERE is_active
ORDER BY created_at DESC;
`
	}
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Opportunity
	for rows.Next() {
		var o domain.Opportunity
		if err := rows.Scan(&o.ID, &o.Title, &o.Company, &o.Location, &o.Type,
			&o.Description, &o.IsActive, &o.ApplicationCount, &o.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID returns one posting or domain.ErrNotFound.
func (r *OpportunityRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Opportunity, error) {
	var o domain.Opportunity
	err := r.pool.QueryRow(ctx, `
SELECT `+opportunityColumns+`
FROM opportunities
WHERE id = $1;
`, id).Scan(&o.ID, &o.Title, &o.Company, &o.Location, &o.Type,
		&o.Description, &o.IsActive, &o.ApplicationCount, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// CreateApplication inserts the application and bumps the posting's counter
// in one transaction.
func (r *OpportunityRepositoryPG) CreateApplication(ctx context.Context, app *domain.Application) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin application: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `
INSERT INTO applications (opportunity_id, user_id, cover_letter, status)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at;
`, app.OpportunityID, app.UserID, app.CoverLetter, app.Status)
	if err := row.Scan(&app.ID, &app.CreatedAt); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `
UPDATE opportunities
SET application_count = application_count + 1
WHERE id = $1;
`, app.OpportunityID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// CountActive returns the number of active postings.
func (r *OpportunityRepositoryPG) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
SELECT COUNT(*)
FROM opportunities
WHERE is_active;
`).Scan(&count)
	return count, err
}

// CountApplications returns the lifetime application count.
func (r *OpportunityRepositoryPG) CountApplications(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
SELECT COUNT(*)
FROM applications;
`).Scan(&count)
	return count, err
}
