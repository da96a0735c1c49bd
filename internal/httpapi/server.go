// Package httpapi exposes the reconciliation engine and its projections
// over HTTP.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/offcon/crono/internal/service"
)

// Services bundles everything the HTTP surface needs.
type Services struct {
	Plans       service.PlanService
	Activities  service.ActivityService
	FollowUps   service.FollowUpService
	Links       service.LinkService
	Reconciler  service.ReconcileService
	Projections service.ProjectionService
	Templates   service.TemplateService
}

// Server is the HTTP front end. It owns routing and wire translation;
// all semantics live in the services.
type Server struct {
	router *chi.Mux
	svc    Services
	logger *slog.Logger
}

// NewServer builds the router with its middleware and routes.
func NewServer(svc Services, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		router: chi.NewRouter(),
		svc:    svc,
		logger: logger,
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(accessLogger(logger))
	s.router.Use(middleware.Recoverer)

	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Route("/api", func(r chi.Router) {
		r.Route("/plans", func(r chi.Router) {
			r.Get("/", s.handleListPlans)
			r.Post("/", s.handleCreatePlan)

			r.Route("/{planID}", func(r chi.Router) {
				r.Get("/", s.handleGetPlan)
				r.Put("/", s.handleUpdatePlan)
				r.Delete("/", s.handleDeletePlan)

				r.Post("/wbs/reconcile", s.handleReconcile)
				r.Get("/wbs", s.handleTree)
				r.Get("/gantt", s.handleGantt)
				r.Get("/stats", s.handleStats)
				r.Post("/template", s.handleApplyTemplate)

				r.Get("/activities", s.handleListActivities)
				r.Post("/activities", s.handleCreateActivity)
			})
		})

		r.Route("/activities/{activityID}", func(r chi.Router) {
			r.Get("/", s.handleGetActivity)
			r.Put("/", s.handleUpdateActivity)
			r.Delete("/", s.handleDeleteActivity)
			r.Patch("/schedule", s.handleUpdateSchedule)

			r.Get("/followups", s.handleListFollowUps)
			r.Post("/followups", s.handleCreateFollowUp)
			r.Get("/links", s.handleListLinks)
			r.Post("/links", s.handleCreateLink)
		})

		r.Put("/followups/{followUpID}", s.handleUpdateFollowUp)
		r.Delete("/followups/{followUpID}", s.handleDeleteFollowUp)
		r.Delete("/links/{linkID}", s.handleDeleteLink)
	})
}
