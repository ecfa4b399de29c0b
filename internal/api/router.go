package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Cheertaboi/coffee-shop-billing/internal/api/handlers"
	"github.com/Cheertaboi/coffee-shop-billing/internal/api/middleware"
	"github.com/Cheertaboi/coffee-shop-billing/pkg/metrics"
)

// Deps are the collaborators the HTTP layer is built from.
type Deps struct {
	Checkout handlers.Checkouter
	Menu     handlers.MenuLister
	Metrics  *metrics.ServerMetrics
	Gatherer prometheus.Gatherer
	Log      *slog.Logger
}

// NewRouter builds the HTTP router for the coffee-shop service
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(d.Log))
	r.Use(chimw.Recoverer)
	if d.Metrics != nil {
		r.Use(middleware.Metrics(d.Metrics))
	}

	checkoutHandler := handlers.NewCheckoutHandler(d.Checkout, d.Log)
	menuHandler := handlers.NewMenuHandler(d.Menu, d.Log)

	r.Get("/", menuHandler.Index)
	r.Get("/api/menu", menuHandler.ListMenu)
	r.Post("/checkout", checkoutHandler.Checkout)

	// health
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	if d.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(d.Gatherer))
	}

	return r
}
