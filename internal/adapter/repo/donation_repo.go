package repo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"server/internal/domain"
)

// DonationRepositoryPG implements the donation ledger on PostgreSQL.
type DonationRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewDonationRepository creates a new donation repo.
func NewDonationRepository(pool *pgxpool.Pool) *DonationRepositoryPG {
	return &DonationRepositoryPG{pool: pool}
}

// Create appends one donation intent. The ledger is append-only: there is no
// update or delete method on this repository.
func (r *DonationRepositoryPG) Create(ctx context.Context, donation *domain.Donation) error {
	row := r.pool.QueryRow(ctx, `
INSERT INTO donations (donor_name, email, amount, currency, payment_method, momo_number, status, country)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, created_at;
`, donation.DonorName, donation.Email, donation.Amount, donation.Currency,
		donation.PaymentMethod, donation.MoMoNumber, donation.Status, donation.Country)
	return row.Scan(&donation.ID, &donation.CreatedAt)
}

// ListRecent returns the newest donations first, limited by the input value.
func (r *DonationRepositoryPG) ListRecent(ctx context.Context, limit int) ([]domain.Donation, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, donor_name, email, amount, currency, payment_method, momo_number, status, country, created_at
FROM donations
ORDER BY created_at DESC
LIMIT $1;
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDonations(rows)
}

// ListSince returns every donation created at or after the given instant,
// oldest first, for the reporting window.
func (r *DonationRepositoryPG) ListSince(ctx context.Context, since time.Time) ([]domain.Donation, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, donor_name, email, amount, currency, payment_method, momo_number, status, country, created_at
FROM donations
WHERE created_at >= $1
ORDER BY created_at ASC;
`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDonations(rows)
}

// Totals returns the lifetime sum and count across the ledger.
func (r *DonationRepositoryPG) Totals(ctx context.Context) (float64, int, error) {
	var total float64
	var count int
	err := r.pool.QueryRow(ctx, `
SELECT COALESCE(SUM(amount), 0), COUNT(*)
FROM donations;
`).Scan(&total, &count)
	if err != nil {
		return 0, 0, err
	}
	return total, count, nil
}

type donationRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanDonations(rows donationRows) ([]domain.Donation, error) {
	var items []domain.Donation
	for rows.Next() {
		var d domain.Donation
		if err := rows.Scan(&d.ID, &d.DonorName, &d.Email, &d.Amount, &d.Currency,
			&d.PaymentMethod, &d.MoMoNumber, &d.Status, &d.Country, &d.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
