package repo

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"server/internal/domain"
)

// UserRepositoryPG implements user persistence on PostgreSQL.
type UserRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new user repo.
func NewUserRepository(pool *pgxpool.Pool) *UserRepositoryPG {
	return &UserRepositoryPG{pool: pool}
}

// Create inserts a new member. A unique violation on email maps to
// domain.ErrEmailTaken.
func (r *UserRepositoryPG) Create(ctx context.Context, user *domain.User) error {
	row := r.pool.QueryRow(ctx, `
INSERT INTO users (email, full_name, password_hash, role)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at;
`, strings.ToLower(user.Email), user.FullName, user.PasswordHash, user.Role)
	if err := row.Scan(&user.ID, &user.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEmailTaken
		}
		return err
	}
	return nil
}

// GetByEmail looks a member up by lowercased email.
func (r *UserRepositoryPG) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.get(ctx, `
SELECT id, email, full_name, password_hash, role, created_at
FROM users
WHERE email = $1;
`, strings.ToLower(email))
}

// GetByID looks a member up by identifier.
func (r *UserRepositoryPG) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.get(ctx, `
SELECT id, email, full_name, password_hash, role, created_at
FROM users
WHERE id = $1;
`, id)
}

func (r *UserRepositoryPG) get(ctx context.Context, query string, arg any) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, query, arg).Scan(&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
