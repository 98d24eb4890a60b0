package handlers

import (
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"server/internal/domain"
	"server/internal/report"
)

type reportBarDTO struct {
	Day    string  `json:"day"`
	Value  float64 `json:"value"`
	Height int     `json:"height"`
}

// AdminReports returns the back-office numbers: headline totals plus the
// trailing daily donation histogram used by the bar chart.
func (a *App) AdminReports(w http.ResponseWriter, r *http.Request) {
	now := a.now()
	windowStart := now.UTC().AddDate(0, 0, -(a.ReportWindow - 1)).Truncate(24 * time.Hour)

	var (
		donations     []domain.Donation
		totalRaised   float64
		donationCount int
		activeCourses int
		activeJobs    int
		applications  int
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		donations, err = a.Donations.ListSince(ctx, windowStart)
		return err
	})
	g.Go(func() (err error) {
		totalRaised, donationCount, err = a.Donations.Totals(ctx)
		return err
	})
	g.Go(func() (err error) {
		activeCourses, err = a.Courses.CountActive(ctx)
		return err
	})
	g.Go(func() (err error) {
		activeJobs, err = a.Opportunities.CountActive(ctx)
		return err
	})
	g.Go(func() (err error) {
		applications, err = a.Opportunities.CountApplications(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		a.fail(w, err)
		return
	}

	samples := make([]report.Sample, 0, len(donations))
	for _, d := range donations {
		samples = append(samples, report.Sample{CreatedAt: d.CreatedAt, Amount: d.Amount})
	}
	buckets := report.DailyHistogram(samples, a.ReportWindow, now)
	max := report.MaxValue(buckets)

	bars := make([]reportBarDTO, 0, len(buckets))
	for _, b := range buckets {
		bars = append(bars, reportBarDTO{Day: b.Day, Value: b.Value, Height: report.BarHeight(b.Value, max)})
	}

	a.json(w, http.StatusOK, map[string]any{
		"total_raised":         totalRaised,
		"donation_count":       donationCount,
		"active_courses":       activeCourses,
		"active_opportunities": activeJobs,
		"applications":         applications,
		"donation_bars":        bars,
		"bar_scale_max":        max,
	})
}

// AdminDonations lists the newest ledger entries with headline totals for
// the admin donations page.
func (a *App) AdminDonations(w http.ResponseWriter, r *http.Request) {
	var (
		recent      []domain.Donation
		totalRaised float64
		count       int
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		recent, err = a.Donations.ListRecent(ctx, 10)
		return err
	})
	g.Go(func() (err error) {
		totalRaised, count, err = a.Donations.Totals(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		a.fail(w, err)
		return
	}

	items := make([]map[string]any, 0, len(recent))
	for _, d := range recent {
		items = append(items, map[string]any{
			"id":             d.ID,
			"donor_name":     d.DisplayName(),
			"email":          d.Email,
			"amount":         d.Amount,
			"payment_method": d.PaymentMethod,
			"status":         d.Status,
			"country":        d.Country,
			"created_at":     d.CreatedAt,
		})
	}
	a.json(w, http.StatusOK, map[string]any{
		"total_raised":   totalRaised,
		"donation_count": count,
		"items":          items,
	})
}
