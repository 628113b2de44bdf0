package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/fx"
	g "maragu.dev/gomponents"

	"github.com/gogetwell/website/internal/catalog"
	"github.com/gogetwell/website/internal/config"
	"github.com/gogetwell/website/internal/contact"
	"github.com/gogetwell/website/internal/metrics"
	"github.com/gogetwell/website/pkg/logger"
)

var Module = fx.Module("handlers",
	fx.Provide(NewHandler),
	fx.Invoke(RegisterRoutes),
)

// Handler serves the landing page, its partials and the JSON API.
type Handler struct {
	content *catalog.Content
	contact *contact.Service
	metrics *metrics.Metrics
	log     *slog.Logger
	now     func() time.Time
	startAt time.Time
}

func NewHandler(content *catalog.Content, svc *contact.Service, m *metrics.Metrics, log *slog.Logger) *Handler {
	return &Handler{
		content: content,
		contact: svc,
		metrics: m,
		log:     log.With(logger.Scope("handlers")),
		now:     time.Now,
		startAt: time.Now(),
	}
}

// RegisterRoutes mounts every page, partial and API route on r.
func RegisterRoutes(r chi.Router, h *Handler, cfg *config.Config) {
	r.Get("/", h.LandingPage)
	r.Post("/contact", h.SubmitContactForm)

	r.Get("/partials/faq", h.FAQPartial)
	r.Get("/partials/solutions", h.SolutionsPartial)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
			ExposedHeaders: []string{"X-Request-Id"},
			MaxAge:         300,
		}))
		r.Get("/faq", h.FAQAPI)
		r.Get("/solutions", h.SolutionsAPI)
		r.Post("/contact", h.SubmitContactAPI)
		r.Get("/health", h.Health)
	})

	r.Get("/health", h.Health)
	r.Get("/healthz", h.Healthz)
	r.Get("/ready", h.Ready)
}

func (h *Handler) render(w http.ResponseWriter, status int, node g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := node.Render(w); err != nil {
		h.log.Error("render failed", logger.Error(err))
	}
}

func (h *Handler) observe(list string, n int) {
	if h.metrics != nil {
		h.metrics.ObserveSearch(list, n)
	}
}
