package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/fitgate/fitgate/internal/access"
	"github.com/fitgate/fitgate/internal/api/handlers"
	"github.com/fitgate/fitgate/internal/api/middleware"
	"github.com/fitgate/fitgate/internal/config"
	"github.com/fitgate/fitgate/internal/pkg/logger"
	"github.com/fitgate/fitgate/internal/pkg/metrics"
)

type Handlers struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Profile   *handlers.ProfileHandler
	Screening *handlers.ScreeningHandler
	Plan      *handlers.PlanHandler
	Coach     *handlers.CoachHandler
	Progress  *handlers.ProgressHandler
	Library   *handlers.LibraryHandler
	Billing   *handlers.BillingHandler
	Policy    *handlers.PolicyHandler
	Admin     *handlers.AdminHandler
}

func New(cfg *config.Config, log *logger.Logger, authCfg middleware.AuthConfig, h *Handlers) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.DefaultCORS(cfg.Server.FrontendURL))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.RateLimit(100, 200)) // 100 req/sec, burst of 200
	r.Use(metrics.Middleware)

	// Public routes
	r.Group(func(r chi.Router) {
		// Swagger documentation
		r.Get("/swagger/*", httpSwagger.WrapHandler)

		// Health checks and metrics
		r.Get("/healthz", h.Health.Healthz)
		r.Get("/readyz", h.Health.Readyz)
		r.Method(http.MethodGet, "/metrics", metrics.Handler())

		// Auth bootstrap
		r.Post("/api/v1/auth/register", h.Auth.Register)
		r.Post("/api/v1/auth/login", h.Auth.Login)
		r.Post("/api/v1/auth/guest", h.Auth.Guest)

		// Feature policy for clients
		r.Get("/api/v1/policy/features", h.Policy.Features)

		// Subscription plans are visible without an account
		r.Get("/api/v1/billing/plans", h.Billing.ListPlans)

		// Payment processor callback, authenticated by shared secret
		r.Post("/api/v1/billing/webhook", h.Billing.Webhook)
	})

	// Guest-tolerant routes: a valid token enriches the request, an absent
	// or invalid one degrades to anonymous
	r.Group(func(r chi.Router) {
		r.Use(middleware.OptionalAuth(authCfg))

		r.With(middleware.RequireFeature(access.FeatureBrowseLibrary)).
			Get("/api/v1/library/workouts", h.Library.ListWorkouts)
	})

	// Protected routes (require authentication)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(authCfg))

		r.Get("/api/v1/auth/me", h.Auth.Me)
		r.Put("/api/v1/profile", h.Profile.Update)

		r.Route("/api/v1/screening", func(r chi.Router) {
			r.Get("/", h.Screening.Status)
			r.Post("/", h.Screening.Submit)
		})

		r.Route("/api/v1/billing", func(r chi.Router) {
			r.Get("/info", h.Billing.GetBillingInfo)
			r.Post("/checkout", h.Billing.CreateCheckoutSession)
		})

		r.Route("/api/v1/plans", func(r chi.Router) {
			r.Get("/", h.Plan.List)
			r.With(middleware.RequireFeature(access.FeatureWorkoutGen)).
				Post("/workout/generate", h.Plan.GenerateWorkout)
			r.With(middleware.RequireFeature(access.FeatureMealPlan)).
				Post("/meal/generate", h.Plan.GenerateMeal)
			r.With(middleware.RequireFeature(access.FeatureExportData)).
				Get("/export", h.Plan.Export)
		})

		r.With(middleware.RequireFeature(access.FeatureAICoach)).
			Post("/api/v1/coach/chat", h.Coach.Chat)

		r.With(middleware.RequireFeature(access.FeatureProgressTracking)).
			Get("/api/v1/progress", h.Progress.Summary)
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(authCfg))
		r.Use(middleware.RequireAdmin)

		r.Get("/api/v1/admin/users", h.Admin.ListUsers)
		r.Get("/api/v1/admin/audit", h.Admin.AuditTrail)
	})

	return r
}
