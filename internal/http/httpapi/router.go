package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jayparimi/beyond-january/internal/http/handlers"
	"github.com/jayparimi/beyond-january/internal/middleware"
)

// NewRouter assembles the API surface. countries may be nil when no GeoIP
// database is configured; locale detection then relies on headers alone.
func NewRouter(app *handlers.App, countries middleware.CountryLookup) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		middleware.CORS(app.Config.CORSAllowedOrigins),
		middleware.I18N("en", countries),
		middleware.Metrics,
		middleware.Logger(app.Logger),
		chimw.Recoverer,
	)

	rateLimit := middleware.RateLimit(app.Config.RateLimitPerMin, time.Minute)

	r.Get("/v1/healthz", app.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Get("/v1/openapi.json", app.OpenAPIJSON)
	r.Get("/v1/docs", app.OpenAPIDocs)

	r.Group(func(r chi.Router) {
		r.Use(rateLimit)
		r.Post("/v1/auth/google", app.AuthGoogleVerify)
		r.Get("/v1/pulse/today", app.PulseToday)
	})

	r.Get("/v1/catalog/templates", app.CatalogTemplates)
	r.Get("/v1/catalog/featured", app.CatalogFeatured)
	r.Get("/v1/stats/summary", app.StatsSummary)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(app.JWTSecret))

		r.Get("/v1/me", app.Me)
		r.Put("/v1/me", app.MeUpdate)

		r.Route("/v1/goals", func(r chi.Router) {
			r.Post("/", app.GoalsCreate)
			r.Get("/", app.GoalsList)
			r.Get("/today", app.GoalsToday)
			r.Patch("/{goal_id}", app.GoalsUpdate)
			r.Delete("/{goal_id}", app.GoalsArchive)
			r.Get("/{goal_id}/streak", app.GoalStreak)
			r.Put("/{goal_id}/checkins/{day}", app.CheckinPut)
			r.Delete("/{goal_id}/checkins/{day}", app.CheckinDelete)
		})

		r.Get("/v1/checkins", app.CheckinsRange)
		r.Get("/v1/calendar/{year}/{month}", app.CalendarMonth)

		r.Route("/v1/exports", func(r chi.Router) {
			r.Post("/", app.ExportsCreate)
			r.Get("/{job_id}", app.ExportStatus)
			r.Get("/{job_id}/download", app.ExportDownload)
		})
	})

	return r
}
