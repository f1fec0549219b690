package api

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/luxerent/pricing-service/internal/api/handlers"
	"github.com/luxerent/pricing-service/internal/cache"
	"github.com/luxerent/pricing-service/internal/pricing"
)

// NewRouter builds the HTTP router for the pricing-service.
func NewRouter(db *sql.DB, c *cache.OfferingCache, policy pricing.Policy, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	h := handlers.NewPricingHandler(db, c, policy, log)

	r.Post("/quotes", h.Quote)

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", h.GetCart)
		r.Post("/items", h.AddToCart)
		r.Delete("/items/{category}", h.RemoveFromCart)
	})

	r.Get("/offerings/{id}/durations", h.SupportedDurations)

	// health
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}
