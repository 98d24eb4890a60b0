package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"server/internal/domain"
)

// AllocationRepositoryPG implements the allocation store on PostgreSQL.
type AllocationRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewAllocationRepository creates a new allocation repo.
func NewAllocationRepository(pool *pgxpool.Pool) *AllocationRepositoryPG {
	return &AllocationRepositoryPG{pool: pool}
}

// Categories returns the current category keys. Reconciliation never adds or
// removes categories, so this set is the authority for a save.
func (r *AllocationRepositoryPG) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
SELECT category
FROM donation_allocation
ORDER BY category;
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []string
	for rows.Next() {
		var cat string
		if err := rows.Scan(&cat); err != nil {
			return nil, err
		}
		cats = append(cats, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cats, nil
}

// List returns allocation rows ordered by descending percent, optionally
// restricted to active rows for the public dashboard.
func (r *AllocationRepositoryPG) List(ctx context.Context, activeOnly bool) ([]domain.AllocationRow, error) {
	query := `
SELECT category, percent, active, updated_at
FROM donation_allocation
ORDER BY percent DESC;
`
	if activeOnly {
		query = `
SELECT category, percent, active, updated_at
FROM donation_allocation
WHERE active
ORDER BY percent DESC;
`
	}
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.AllocationRow
	for rows.Next() {
		var a domain.AllocationRow
		if err := rows.Scan(&a.Category, &a.Percent, &a.Active, &a.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// SaveAll upserts every row in a single transaction keyed on category. This
// is the only multi-row atomic write in the system: if any upsert fails the
// transaction rolls back and the store is untouched.
func (r *AllocationRepositoryPG) SaveAll(ctx context.Context, allocRows []domain.AllocationRow) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin allocation save: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, row := range allocRows {
		if _, err := tx.Exec(ctx, `
INSERT INTO donation_allocation (category, percent, active, updated_at)
VALUES ($1, $2, true, $3)
ON CONFLICT (category) DO UPDATE SET
    percent = EXCLUDED.percent,
    updated_at = EXCLUDED.updated_at;
`, row.Category, row.Percent, row.UpdatedAt); err != nil {
			return fmt.Errorf("upsert allocation %q: %w", row.Category, err)
		}
	}
	return tx.Commit(ctx)
}
