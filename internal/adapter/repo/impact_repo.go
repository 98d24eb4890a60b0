package repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"server/internal/domain"
)

// ImpactUpdateRepositoryPG implements the impact update log on PostgreSQL.
type ImpactUpdateRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewImpactUpdateRepository creates a new impact update repo.
func NewImpactUpdateRepository(pool *pgxpool.Pool) *ImpactUpdateRepositoryPG {
	return &ImpactUpdateRepositoryPG{pool: pool}
}

// Create inserts one update.
func (r *ImpactUpdateRepositoryPG) Create(ctx context.Context, update *domain.ImpactUpdate) error {
	row := r.pool.QueryRow(ctx, `
INSERT INTO donation_updates (title, description, category, amount_spent, created_by)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, created_at;
`, update.Title, update.Description, update.Category, update.AmountSpent, update.CreatedBy)
	return row.Scan(&update.ID, &update.CreatedAt)
}

// ListRecent returns the newest updates first, limited by the input value.
func (r *ImpactUpdateRepositoryPG) ListRecent(ctx context.Context, limit int) ([]domain.ImpactUpdate, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, title, description, category, amount_spent, created_by, created_at
FROM donation_updates
ORDER BY created_at DESC
LIMIT $1;
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.ImpactUpdate
	for rows.Next() {
		var u domain.ImpactUpdate
		if err := rows.Scan(&u.ID, &u.Title, &u.Description, &u.Category, &u.AmountSpent, &u.CreatedBy, &u.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete hard-deletes by identifier. Missing rows map to domain.ErrNotFound.
func (r *ImpactUpdateRepositoryPG) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `
DELETE FROM donation_updates
WHERE id = $1;
`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
