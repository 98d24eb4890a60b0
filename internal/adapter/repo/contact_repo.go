package repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"server/internal/domain"
)

// ContactRepositoryPG implements contact-message persistence on PostgreSQL.
type ContactRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewContactRepository creates a new contact repo.
func NewContactRepository(pool *pgxpool.Pool) *ContactRepositoryPG {
	return &ContactRepositoryPG{pool: pool}
}

// Create inserts one contact message.
func (r *ContactRepositoryPG) Create(ctx context.Context, msg *domain.ContactMessage) error {
	row := r.pool.QueryRow(ctx, `
INSERT INTO contact_messages (name, email, subject, message, status)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, created_at;
`, msg.Name, msg.Email, msg.Subject, msg.Message, msg.Status)
	return row.Scan(&msg.ID, &msg.CreatedAt)
}
