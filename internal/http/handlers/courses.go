package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"server/internal/domain"
	"server/internal/middleware"
)

// CoursesList returns the catalog, optionally filtered by ?category=.
func (a *App) CoursesList(w http.ResponseWriter, r *http.Request) {
	courses, err := a.Courses.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		a.fail(w, err)
		return
	}
	items := make([]map[string]any, 0, len(courses))
	for _, c := range courses {
		items = append(items, courseDTO(c))
	}
	a.json(w, http.StatusOK, map[string]any{
		"items":      items,
		"categories": domain.CourseCategories,
	})
}

// CoursesGet returns one course or a standard not-found envelope.
func (a *App) CoursesGet(w http.ResponseWriter, r *http.Request) {
	course, err := a.Courses.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusOK, courseDTO(*course))
}

// CoursesEnroll bumps the course's enrollment counter for the logged-in
// member.
func (a *App) CoursesEnroll(w http.ResponseWriter, r *http.Request) {
	if middleware.UserIDFromContext(r.Context()) == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "you must be logged in to enroll")
		return
	}
	id := chi.URLParam(r, "id")
	if err := a.Courses.IncrementEnrollment(r.Context(), id); err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"enrolled": id})
}

func courseDTO(c domain.Course) map[string]any {
	return map[string]any{
		"id":               c.ID,
		"title":            c.Title,
		"description":      c.Description,
		"category":         c.Category,
		"thumbnail_url":    c.ThumbnailURL,
		"is_external":      c.IsExternal,
		"is_certified":     c.IsCertified,
		"is_active":        c.IsActive,
		"enrollment_count": c.EnrollmentCount,
		"resource_url":     c.ResourceURL,
		"created_at":       c.CreatedAt,
	}
}
