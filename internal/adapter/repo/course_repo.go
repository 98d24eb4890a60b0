package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"server/internal/domain"
)

// CourseRepositoryPG implements the course catalog on PostgreSQL.
type CourseRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewCourseRepository creates a new course repo.
func NewCourseRepository(pool *pgxpool.Pool) *CourseRepositoryPG {
	return &CourseRepositoryPG{pool: pool}
}

const courseColumns = `id, title, description, category, thumbnail_url, is_external, is_certified, is_active, enrollment_count, resource_url, created_at`

// List returns courses newest first, optionally filtered by category.
func (r *CourseRepositoryPG) List(ctx context.Context, category string) ([]domain.Course, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if category == "" || category == "all" {
		rows, err = r.pool.Query(ctx, `
SELECT `+courseColumns+`
FROM courses
ORDER BY created_at DESC;
`)
	} else {
		rows, err = r.pool.Query(ctx, `
SELECT `+courseColumns+`
FROM courses
WHERE category = $1
ORDER BY created_at DESC;
`, category)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID returns one course or domain.ErrNotFound.
func (r *CourseRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	row := r.pool.QueryRow(ctx, `
SELECT `+courseColumns+`
FROM courses
WHERE id = $1;
`, id)
	c, err := scanCourse(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// IncrementEnrollment bumps the public enrollment counter.
func (r *CourseRepositoryPG) IncrementEnrollment(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `
UPDATE courses
SET enrollment_count = enrollment_count + 1
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

// CountActive returns the number of active courses for the reports page.
func (r *CourseRepositoryPG) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
SELECT COUNT(*)
FROM courses
WHERE is_active;
`).Scan(&count)
	return count, err
}

func scanCourse(row pgx.Row) (domain.Course, error) {
	var c domain.Course
	err := row.Scan(&c.ID, &c.Title, &c.Description, &c.Category, &c.ThumbnailURL,
		&c.IsExternal, &c.IsCertified, &c.IsActive, &c.EnrollmentCount, &c.ResourceURL, &c.CreatedAt)
	return c, err
}
