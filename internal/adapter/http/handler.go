package httpadapter

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"adserve/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds a DeliveryUseCase to execute business logic, a logger for
// structured logging and an optional per-source rate limiter for the
// delivery endpoints. Routes are registered on a chi.Router.
type Handler struct {
	svc    port.DeliveryUseCase
	logger *slog.Logger
	router chi.Router

	limitRPS   float64
	limitBurst int
	limitersMu sync.Mutex
	limiters   map[string]*rate.Limiter
}

// NewHandler creates a handler with all routes configured. limitRPS caps
// deliveries per second per request source; zero disables limiting.
func NewHandler(svc port.DeliveryUseCase, logger *slog.Logger, limitRPS float64, limitBurst int) *Handler {
	h := &Handler{
		svc:        svc,
		logger:     logger,
		limitRPS:   limitRPS,
		limitBurst: limitBurst,
		limiters:   make(map[string]*rate.Limiter),
	}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/content/request", h.handleContentRequest)
		r.Post("/content/request/untargeted", h.handleUntargetedRequest)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/campaigns", h.handleCreateCampaign)
			r.Post("/campaigns/{id}/cancel", h.handleCancelCampaign)
			r.Post("/contents", h.handleCreateContent)
		})

		r.Get("/stats/deliveries", h.handleDeliveryStats)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// allowSource consults the per-source limiter. Limiters are created lazily
// per source id; with limiting disabled every request passes.
func (h *Handler) allowSource(source string) bool {
	if h.limitRPS <= 0 {
		return true
	}
	h.limitersMu.Lock()
	lim, ok := h.limiters[source]
	if !ok {
		lim = rate.NewLimiter(rate.Limit(h.limitRPS), h.limitBurst)
		h.limiters[source] = lim
	}
	h.limitersMu.Unlock()
	return lim.Allow()
}
