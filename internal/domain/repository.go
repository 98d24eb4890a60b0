package domain

import (
	"context"
	"time"
)

// DonationRepository is the append-only donation ledger.
type DonationRepository interface {
	Create(ctx context.Context, donation *Donation) error
	ListRecent(ctx context.Context, limit int) ([]Donation, error)
	ListSince(ctx context.Context, since time.Time) ([]Donation, error)
	Totals(ctx context.Context) (total float64, count int, err error)
}

// AllocationRepository is the admin-editable allocation store. SaveAll is the
// only multi-row atomic write in the system: either every row lands or none.
type AllocationRepository interface {
	Categories(ctx context.Context) ([]string, error)
	List(ctx context.Context, activeOnly bool) ([]AllocationRow, error)
	SaveAll(ctx context.Context, rows []AllocationRow) error
}

// ImpactUpdateRepository persists admin-authored impact updates.
type ImpactUpdateRepository interface {
	Create(ctx context.Context, update *ImpactUpdate) error
	ListRecent(ctx context.Context, limit int) ([]ImpactUpdate, error)
	Delete(ctx context.Context, id string) error
}

// CourseRepository reads the course catalog.
type CourseRepository interface {
	List(ctx context.Context, category string) ([]Course, error)
	GetByID(ctx context.Context, id string) (*Course, error)
	IncrementEnrollment(ctx context.Context, id string) error
	CountActive(ctx context.Context) (int, error)
}

// OpportunityRepository serves the job board and its applications.
type OpportunityRepository interface {
	List(ctx context.Context, activeOnly bool) ([]Opportunity, error)
	GetByID(ctx context.Context, id string) (*Opportunity, error)
	CreateApplication(ctx context.Context, app *Application) error
	CountActive(ctx context.Context) (int, error)
	CountApplications(ctx context.Context) (int, error)
}

// ContactRepository persists contact-form submissions.
type ContactRepository interface {
	Create(ctx context.Context, msg *ContactMessage) error
}

// UserRepository manages registered members.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}
