package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"server/internal/domain"
	"server/internal/middleware"
)

type allocationRowDTO struct {
	Category  string  `json:"category"`
	Percent   float64 `json:"percent"`
	Active    bool    `json:"active"`
	UpdatedAt string  `json:"updated_at"`
}

// AllocationList returns every allocation row for the admin editor.
func (a *App) AllocationList(w http.ResponseWriter, r *http.Request) {
	rows, err := a.Allocation.List(r.Context(), false)
	if err != nil {
		a.fail(w, err)
		return
	}
	items := make([]allocationRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, allocationRowDTO{
			Category:  row.Category,
			Percent:   row.Percent,
			Active:    row.Active,
			UpdatedAt: row.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

type allocationSaveRequest struct {
	Percents map[string]float64 `json:"percents"`
}

// AllocationSave rewrites every allocation percentage in one atomic action.
// The percentages must sum to exactly 100; anything else aborts the entire
// call before a single row is written.
func (a *App) AllocationSave(w http.ResponseWriter, r *http.Request) {
	var req allocationSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	categories, err := a.Allocation.Categories(r.Context())
	if err != nil {
		a.fail(w, err)
		return
	}
	if len(categories) == 0 {
		a.error(w, http.StatusConflict, "conflict", "no allocation categories seeded")
		return
	}

	rows, err := domain.ReconcileAllocation(categories, req.Percents, a.now())
	if err != nil {
		a.fail(w, err)
		return
	}
	if err := a.Allocation.SaveAll(r.Context(), rows); err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"updated": len(rows)})
}

type impactUpdateRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	AmountSpent float64 `json:"amount_spent"`
}

// ImpactUpdateCreate records how funds were spent, authored by the acting admin.
func (a *App) ImpactUpdateCreate(w http.ResponseWriter, r *http.Request) {
	var req impactUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	update, err := domain.NewImpactUpdate(domain.ImpactUpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		AmountSpent: req.AmountSpent,
	}, middleware.UserIDFromContext(r.Context()))
	if err != nil {
		a.fail(w, err)
		return
	}
	if err := a.Impact.Create(r.Context(), &update); err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusCreated, map[string]any{"id": update.ID})
}

// ImpactUpdateDelete hard-deletes an update by identifier. Irreversible.
func (a *App) ImpactUpdateDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "id required")
		return
	}
	if err := a.Impact.Delete(r.Context(), id); err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"deleted": id})
}
