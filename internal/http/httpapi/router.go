package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"server/internal/http/handlers"
	"server/internal/infra"
	appmw "server/internal/middleware"
)

// NewRouter mounts the full API surface. Donation intake, the contact form
// and the assistant share one per-IP rate limit since they are the only
// unauthenticated writes.
func NewRouter(app *handlers.App, cfg *infra.Config, lookup appmw.CountryLookup) http.Handler {
	r := chi.NewRouter()

	r.Use(
		appmw.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		appmw.Logger(app.Logger),
		appmw.I18N("en", lookup),
	)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Locale"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	limit := appmw.RateLimit(cfg.RateLimitPerMin, time.Minute)
	auth := appmw.AuthJWT(cfg.JWTSecret)

	// Health
	r.Get("/v1/healthz", app.Health)

	// Public
	r.Route("/v1/donations", func(r chi.Router) {
		r.With(limit).Post("/", app.DonationsCreate)
		r.Get("/impact", app.DonationsImpact)
	})
	r.Route("/v1/courses", func(r chi.Router) {
		r.Get("/", app.CoursesList)
		r.Get("/{id}", app.CoursesGet)
		r.With(auth).Post("/{id}/enroll", app.CoursesEnroll)
	})
	r.Route("/v1/opportunities", func(r chi.Router) {
		r.Get("/", app.OpportunitiesList)
		r.Get("/{id}", app.OpportunitiesGet)
		r.With(auth).Post("/{id}/apply", app.OpportunitiesApply)
	})
	r.With(limit).Post("/v1/contact", app.ContactCreate)
	r.With(limit).Post("/v1/chat", app.ChatReply)
	r.With(limit).Post("/v1/momo/request-to-pay", app.MoMoRequestToPay)

	// Auth
	r.Post("/v1/auth/signup", app.AuthSignup)
	r.Post("/v1/auth/login", app.AuthLogin)
	r.With(auth).Get("/v1/me", app.Me)

	// Admin back office
	r.Route("/v1/admin", func(r chi.Router) {
		r.Use(auth, appmw.RequireAdmin)
		r.Get("/reports", app.AdminReports)
		r.Get("/donations", app.AdminDonations)
		r.Get("/allocation", app.AllocationList)
		r.Put("/allocation", app.AllocationSave)
		r.Post("/impact-updates", app.ImpactUpdateCreate)
		r.Delete("/impact-updates/{id}", app.ImpactUpdateDelete)
	})

	return r
}
