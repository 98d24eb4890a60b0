package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"server/internal/domain"
	"server/internal/middleware"
)

// OpportunitiesList returns active job-board postings.
func (a *App) OpportunitiesList(w http.ResponseWriter, r *http.Request) {
	opportunities, err := a.Opportunities.List(r.Context(), true)
	if err != nil {
		a.fail(w, err)
		return
	}
	items := make([]map[string]any, 0, len(opportunities))
	for _, o := range opportunities {
		items = append(items, opportunityDTO(o))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

// OpportunitiesGet returns one posting or a standard not-found envelope.
func (a *App) OpportunitiesGet(w http.ResponseWriter, r *http.Request) {
	opportunity, err := a.Opportunities.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusOK, opportunityDTO(*opportunity))
}

type applyRequest struct {
	CoverLetter string `json:"cover_letter"`
}

// OpportunitiesApply files a pending application for the logged-in member
// and bumps the posting's counter.
func (a *App) OpportunitiesApply(w http.ResponseWriter, r *http.Request) {
	var req applyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	application, err := domain.NewApplication(
		chi.URLParam(r, "id"),
		middleware.UserIDFromContext(r.Context()),
		req.CoverLetter,
	)
	if err != nil {
		a.fail(w, err)
		return
	}
	if err := a.Opportunities.CreateApplication(r.Context(), &application); err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusCreated, map[string]any{
		"id":     application.ID,
		"status": application.Status,
	})
}

func opportunityDTO(o domain.Opportunity) map[string]any {
	return map[string]any{
		"id":                o.ID,
		"title":             o.Title,
		"company":           o.Company,
		"location":          o.Location,
		"type":              o.Type,
		"description":       o.Description,
		"is_active":         o.IsActive,
		"application_count": o.ApplicationCount,
		"created_at":        o.CreatedAt,
	}
}
