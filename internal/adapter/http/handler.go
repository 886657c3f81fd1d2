package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"spotplan/internal/core/port"
)

// Handler contains dependencies and routes. It is the inbound HTTP adapter
// of the distribution calendar: it decodes requests, calls the planner use
// case and renders JSON views of the results.
type Handler struct {
	svc    port.PlannerUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. Requests from
// origins are allowed through CORS; an empty list allows any origin.
func NewHandler(svc port.PlannerUseCase, logger *slog.Logger, origins []string) *Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/campaigns/{id}", func(r chi.Router) {
			r.Get("/", h.handleLoad)
			r.Put("/distribution", h.handleSave)
			r.Put("/period", h.handleChangePeriod)
			r.Get("/export", h.handleExport)
			r.Get("/history", h.handleHistory)
		})
		r.Get("/plans/preview", h.handlePreview)
		r.Post("/distribution/edits", h.handleEdits)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
