package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"server/internal/domain"
	"server/internal/infra"
	"server/internal/providers/chat"
	"server/internal/providers/momo"
)

// App bundles the dependencies shared by all handlers.
type App struct {
	Logger infra.Logger

	Donations     domain.DonationRepository
	Allocation    domain.AllocationRepository
	Impact        domain.ImpactUpdateRepository
	Courses       domain.CourseRepository
	Opportunities domain.OpportunityRepository
	Contact       domain.ContactRepository
	Users         domain.UserRepository

	MoMo *momo.Client
	Chat *chat.Client

	JWTSecret string
	TokenTTL  time.Duration

	RecentDonors  int
	ImpactUpdates int
	ReportWindow  int

	// Now is injectable for the window-sensitive report tests.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, codeStr, message string) {
	a.json(w, code, map[string]any{"error": map[string]string{"code": codeStr, "message": message}})
}

// fail maps domain errors onto the JSON error envelope. Anything unmapped is
// a backend failure whose message is surfaced verbatim, per the no-retry
// error policy: the caller resubmits manually.
func (a *App) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		a.error(w, http.StatusBadRequest, "bad_request", userMessage(err, domain.ErrInvalidInput))
	case errors.Is(err, domain.ErrUnauthorized):
		a.error(w, http.StatusUnauthorized, "unauthorized", userMessage(err, domain.ErrUnauthorized))
	case errors.Is(err, domain.ErrForbidden):
		a.error(w, http.StatusForbidden, "forbidden", userMessage(err, domain.ErrForbidden))
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", "not found")
	case errors.Is(err, domain.ErrEmailTaken):
		a.error(w, http.StatusConflict, "conflict", domain.ErrEmailTaken.Error())
	default:
		a.Logger.Error().Err(err).Msg("backend error")
		a.error(w, http.StatusInternalServerError, "internal", err.Error())
	}
}

// userMessage strips the sentinel prefix so the widget shows the same copy
// the form used to render inline.
func userMessage(err, sentinel error) string {
	msg := strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
	if msg == "" {
		return sentinel.Error()
	}
	return msg
}
