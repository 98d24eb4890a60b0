package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"server/internal/domain"
	"server/internal/middleware"
	"server/internal/report"
)

type donationRequest struct {
	DonorName  string  `json:"donor_name"`
	Email      string  `json:"email"`
	Amount     float64 `json:"amount"`
	Method     string  `json:"payment_method"`
	MoMoNumber string  `json:"momo_number"`
}

const (
	momoSuccessMessage  = "Donation recorded. Please complete the MoMo payment on your phone using the instructions below."
	otherSuccessMessage = "Donation recorded. This payment method will be enabled soon."
)

// DonationsCreate records one contribution intent. The ledger entry is
// written exactly once with status pending; nothing here moves money.
func (a *App) DonationsCreate(w http.ResponseWriter, r *http.Request) {
	var req donationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	input := domain.DonationInput{
		DonorName:  req.DonorName,
		Email:      req.Email,
		Amount:     req.Amount,
		Method:     domain.PaymentMethod(req.Method),
		MoMoNumber: req.MoMoNumber,
	}
	if err := input.Validate(); err != nil {
		a.fail(w, err)
		return
	}

	donation := input.NewDonation()
	donation.Country = middleware.CountryFromContext(r.Context())
	if err := a.Donations.Create(r.Context(), &donation); err != nil {
		a.fail(w, err)
		return
	}

	message := otherSuccessMessage
	if donation.PaymentMethod == domain.PaymentMoMo {
		message = momoSuccessMessage
	}
	a.json(w, http.StatusCreated, map[string]any{
		"id":      donation.ID,
		"status":  donation.Status,
		"message": message,
	})
}

type recentDonorDTO struct {
	DonorName string  `json:"donor_name"`
	Amount    float64 `json:"amount"`
	TimeAgo   string  `json:"time_ago"`
	CreatedAt string  `json:"created_at"`
}

type allocationDTO struct {
	Category string  `json:"category"`
	Percent  float64 `json:"percent"`
	Color    string  `json:"color"`
}

type impactUpdateDTO struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Category    string  `json:"category"`
	AmountSpent float64 `json:"amount_spent"`
	TimeAgo     string  `json:"time_ago"`
	CreatedAt   string  `json:"created_at"`
}

// DonationsImpact assembles the public donate-page dashboard from three
// independent reads issued concurrently. When no allocation rows are active
// the fixed fallback plan is returned without ever being persisted.
func (a *App) DonationsImpact(w http.ResponseWriter, r *http.Request) {
	var (
		donors  []domain.Donation
		rows    []domain.AllocationRow
		updates []domain.ImpactUpdate
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		donors, err = a.Donations.ListRecent(ctx, a.RecentDonors)
		return err
	})
	g.Go(func() (err error) {
		rows, err = a.Allocation.List(ctx, true)
		return err
	})
	g.Go(func() (err error) {
		updates, err = a.Impact.ListRecent(ctx, a.ImpactUpdates)
		return err
	})
	if err := g.Wait(); err != nil {
		a.fail(w, err)
		return
	}

	if len(rows) == 0 {
		rows = domain.FallbackAllocation()
	}

	now := a.now()
	donorDTOs := make([]recentDonorDTO, 0, len(donors))
	for _, d := range donors {
		donorDTOs = append(donorDTOs, recentDonorDTO{
			DonorName: d.DisplayName(),
			Amount:    d.Amount,
			TimeAgo:   report.TimeAgo(d.CreatedAt, now),
			CreatedAt: d.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	allocationDTOs := make([]allocationDTO, 0, len(rows))
	for _, row := range rows {
		allocationDTOs = append(allocationDTOs, allocationDTO{
			Category: row.Category,
			Percent:  row.Percent,
			Color:    domain.AllocationColor(row.Category),
		})
	}
	updateDTOs := make([]impactUpdateDTO, 0, len(updates))
	for _, u := range updates {
		updateDTOs = append(updateDTOs, impactUpdateDTO{
			ID:          u.ID,
			Title:       u.Title,
			Description: u.Description,
			Category:    u.Category,
			AmountSpent: u.AmountSpent,
			TimeAgo:     report.TimeAgo(u.CreatedAt, now),
			CreatedAt:   u.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	a.json(w, http.StatusOK, map[string]any{
		"recent_donors":  donorDTOs,
		"allocation":     allocationDTOs,
		"impact_updates": updateDTOs,
	})
}
