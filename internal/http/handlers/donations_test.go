package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"server/internal/domain"
)

func newTestApp() (*App, *fakeDonationRepo, *fakeAllocationRepo, *fakeImpactRepo) {
	donations := &fakeDonationRepo{}
	allocation := &fakeAllocationRepo{}
	impact := &fakeImpactRepo{}
	app := &App{
		Logger:        zerolog.Nop(),
		Donations:     donations,
		Allocation:    allocation,
		Impact:        impact,
		Courses:       &fakeCourseRepo{},
		Opportunities: &fakeOpportunityRepo{},
		Contact:       &fakeContactRepo{},
		Users:         &fakeUserRepo{},
		JWTSecret:     "test-secret",
		TokenTTL:      time.Hour,
		RecentDonors:  5,
		ImpactUpdates: 4,
		ReportWindow:  14,
	}
	return app, donations, allocation, impact
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestDonationsCreateMoMo(t *testing.T) {
	app, donations, _, _ := newTestApp()

	rec := postJSON(t, app.DonationsCreate, `{
		"donor_name": "Sipho",
		"email": "sipho@example.sz",
		"amount": 250,
		"payment_method": "momo",
		"momo_number": "+268 7612 3456"
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "pending", body["status"])
	assert.Equal(t, momoSuccessMessage, body["message"])

	require.Len(t, donations.donations, 1)
	d := donations.donations[0]
	assert.Equal(t, 250.0, d.Amount)
	assert.Equal(t, domain.DonationPending, d.Status)
	require.NotNil(t, d.MoMoNumber)
	assert.Equal(t, "+26876123456", *d.MoMoNumber)
}

func TestDonationsCreateCustomAmount(t *testing.T) {
	app, donations, _, _ := newTestApp()

	rec := postJSON(t, app.DonationsCreate, `{
		"email": "anon@example.sz",
		"amount": 150,
		"payment_method": "card"
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, otherSuccessMessage, decodeBody(t, rec)["message"])
	require.Len(t, donations.donations, 1)
	assert.Equal(t, "Anonymous", donations.donations[0].DisplayName())
}

func TestDonationsCreateRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero amount", `{"email":"a@b.c","amount":0,"payment_method":"momo","momo_number":"76123456"}`},
		{"negative amount", `{"email":"a@b.c","amount":-50,"payment_method":"momo","momo_number":"76123456"}`},
		{"below minimum", `{"email":"a@b.c","amount":9.99,"payment_method":"momo","momo_number":"76123456"}`},
		{"missing email", `{"amount":100,"payment_method":"momo","momo_number":"76123456"}`},
		{"short momo number", `{"email":"a@b.c","amount":100,"payment_method":"momo","momo_number":"7612"}`},
		{"unknown method", `{"email":"a@b.c","amount":100,"payment_method":"cheque"}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app, donations, _, _ := newTestApp()
			rec := postJSON(t, app.DonationsCreate, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, donations.donations, "no ledger entry on rejection")
		})
	}
}

func TestDonationsImpactFallbackAllocation(t *testing.T) {
	app, _, allocation, _ := newTestApp()
	allocation.rows = nil

	req := httptest.NewRequest(http.MethodGet, "/v1/donations/impact", nil)
	rec := httptest.NewRecorder()
	app.DonationsImpact(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	rows := body["allocation"].([]any)
	require.Len(t, rows, 4)
	first := rows[0].(map[string]any)
	assert.Equal(t, "Youth Training", first["category"])
	assert.Equal(t, 60.0, first["percent"])
	assert.Equal(t, "yellow", first["color"])
	assert.True(t, allocation.activeOK, "dashboard must only read active rows")
	assert.Empty(t, allocation.saved, "fallback plan must never be persisted")
}

func TestDonationsImpactRecentDonors(t *testing.T) {
	app, donations, allocation, impact := newTestApp()
	allocation.rows = []domain.AllocationRow{{Category: "Youth Training", Percent: 100, Active: true}}
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	app.Now = func() time.Time { return now }

	name := "Thandi"
	donations.donations = []domain.Donation{{
		ID:        "don-1",
		DonorName: &name,
		Amount:    500,
		Status:    domain.DonationPending,
		CreatedAt: now.Add(-3 * time.Hour),
	}}
	desc := "Bought sewing machines"
	impact.updates = []domain.ImpactUpdate{{
		ID:          "upd-1",
		Title:       "Training cohort 4",
		Description: &desc,
		Category:    "Youth Training",
		AmountSpent: 1200,
		CreatedAt:   now.Add(-26 * time.Hour),
	}}

	req := httptest.NewRequest(http.MethodGet, "/v1/donations/impact", nil)
	rec := httptest.NewRecorder()
	app.DonationsImpact(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	donors := body["recent_donors"].([]any)
	require.Len(t, donors, 1)
	assert.Equal(t, "3h ago", donors[0].(map[string]any)["time_ago"])
	updates := body["impact_updates"].([]any)
	require.Len(t, updates, 1)
	assert.Equal(t, "1d ago", updates[0].(map[string]any)["time_ago"])
}
