package handlers

import (
	"context"
	"fmt"
	"time"

	"server/internal/domain"
)

// In-memory repository fakes. Each embeds a forced error so tests can make
// any call fail.

type fakeDonationRepo struct {
	donations []domain.Donation
	err       error
}

func (f *fakeDonationRepo) Create(_ context.Context, d *domain.Donation) error {
	if f.err != nil {
		return f.err
	}
	d.ID = fmt.Sprintf("don-%d", len(f.donations)+1)
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now()
	}
	f.donations = append(f.donations, *d)
	return nil
}

func (f *fakeDonationRepo) ListRecent(_ context.Context, limit int) ([]domain.Donation, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Donation, 0, limit)
	for i := len(f.donations) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.donations[i])
	}
	return out, nil
}

func (f *fakeDonationRepo) ListSince(_ context.Context, since time.Time) ([]domain.Donation, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Donation
	for _, d := range f.donations {
		if !d.CreatedAt.Before(since) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDonationRepo) Totals(_ context.Context) (float64, int, error) {
	if f.err != nil {
		return 0, 0, f.err
	}
	var total float64
	for _, d := range f.donations {
		total += d.Amount
	}
	return total, len(f.donations), nil
}

type fakeAllocationRepo struct {
	rows     []domain.AllocationRow
	saved    [][]domain.AllocationRow
	listErr  error
	saveErr  error
	catsErr  error
	activeOK bool
}

func (f *fakeAllocationRepo) Categories(_ context.Context) ([]string, error) {
	if f.catsErr != nil {
		return nil, f.catsErr
	}
	cats := make([]string, 0, len(f.rows))
	for _, r := range f.rows {
		cats = append(cats, r.Category)
	}
	return cats, nil
}

func (f *fakeAllocationRepo) List(_ context.Context, activeOnly bool) ([]domain.AllocationRow, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.activeOK = activeOnly
	if !activeOnly {
		return f.rows, nil
	}
	var out []domain.AllocationRow
	for _, r := range f.rows {
		if r.Active {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAllocationRepo) SaveAll(_ context.Context, rows []domain.AllocationRow) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, rows)
	f.rows = rows
	return nil
}

type fakeImpactRepo struct {
	updates []domain.ImpactUpdate
	err     error
}

func (f *fakeImpactRepo) Create(_ context.Context, u *domain.ImpactUpdate) error {
	if f.err != nil {
		return f.err
	}
	u.ID = fmt.Sprintf("upd-%d", len(f.updates)+1)
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	f.updates = append(f.updates, *u)
	return nil
}

func (f *fakeImpactRepo) ListRecent(_ context.Context, limit int) ([]domain.ImpactUpdate, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.ImpactUpdate, 0, limit)
	for i := len(f.updates) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.updates[i])
	}
	return out, nil
}

func (f *fakeImpactRepo) Delete(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	for i, u := range f.updates {
		if u.ID == id {
			f.updates = append(f.updates[:i], f.updates[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeCourseRepo struct {
	courses []domain.Course
	err     error
}

func (f *fakeCourseRepo) List(_ context.Context, category string) ([]domain.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	if category == "" {
		return f.courses, nil
	}
	var out []domain.Course
	for _, c := range f.courses {
		if c.Category == category {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCourseRepo) GetByID(_ context.Context, id string) (*domain.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.courses {
		if f.courses[i].ID == id {
			return &f.courses[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCourseRepo) IncrementEnrollment(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.courses {
		if f.courses[i].ID == id {
			f.courses[i].EnrollmentCount++
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeCourseRepo) CountActive(_ context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n := 0
	for _, c := range f.courses {
		if c.IsActive {
			n++
		}
	}
	return n, nil
}

type fakeOpportunityRepo struct {
	opportunities []domain.Opportunity
	applications  []domain.Application
	err           error
}

func (f *fakeOpportunityRepo) List(_ context.Context, activeOnly bool) ([]domain.Opportunity, error) {
	if f.err != nil {
		return nil, f.err
	}
	if !activeOnly {
		return f.opportunities, nil
	}
	var out []domain.Opportunity
	for _, o := range f.opportunities {
		if o.IsActive {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOpportunityRepo) GetByID(_ context.Context, id string) (*domain.Opportunity, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.opportunities {
		if f.opportunities[i].ID == id {
			return &f.opportunities[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeOpportunityRepo) CreateApplication(_ context.Context, app *domain.Application) error {
	if f.err != nil {
		return f.err
	}
	app.ID = fmt.Sprintf("app-%d", len(f.applications)+1)
	f.applications = append(f.applications, *app)
	for i := range f.opportunities {
		if f.opportunities[i].ID == app.OpportunityID {
			f.opportunities[i].ApplicationCount++
		}
	}
	return nil
}

func (f *fakeOpportunityRepo) CountActive(_ context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n := 0
	for _, o := range f.opportunities {
		if o.IsActive {
			n++
		}
	}
	return n, nil
}

func (f *fakeOpportunityRepo) CountApplications(_ context.Context) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	return len(f.applications), nil
}

type fakeContactRepo struct {
	messages []domain.ContactMessage
	err      error
}

func (f *fakeContactRepo) Create(_ context.Context, m *domain.ContactMessage) error {
	if f.err != nil {
		return f.err
	}
	m.ID = fmt.Sprintf("msg-%d", len(f.messages)+1)
	f.messages = append(f.messages, *m)
	return nil
}

type fakeUserRepo struct {
	users []domain.User
	err   error
}

func (f *fakeUserRepo) Create(_ context.Context, u *domain.User) error {
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return domain.ErrEmailTaken
		}
	}
	u.ID = fmt.Sprintf("usr-%d", len(f.users)+1)
	f.users = append(f.users, *u)
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].Email == email {
			return &f.users[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, domain.ErrNotFound
}
