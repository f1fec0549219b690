package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/luxerent/pricing-service/internal/cache"
	"github.com/luxerent/pricing-service/internal/cart"
	"github.com/luxerent/pricing-service/internal/models"
	"github.com/luxerent/pricing-service/internal/pricing"
	"github.com/luxerent/pricing-service/internal/repository"
	"github.com/luxerent/pricing-service/internal/service"
)

// --- Request / Response DTOs ---

type QuoteRequestBody struct {
	UserID     string           `json:"user_id,omitempty"`
	OfferingID string           `json:"offering_id"`
	Duration   string           `json:"duration"`
	Window     models.WindowDTO `json:"window"`
	FuelOption string           `json:"fuel_option,omitempty"`
}

type QuoteResponse struct {
	Line models.LineItem `json:"line"`
	// Estimate flags that the authoritative total is computed at checkout.
	Estimate bool `json:"estimate"`
}

type CartResponse struct {
	UserID     string             `json:"user_id"`
	Entries    []models.CartEntry `json:"entries"`
	TotalCents models.Money       `json:"total_cents"`
	Estimate   bool               `json:"estimate"`
}

type DurationsResponse struct {
	OfferingID string                     `json:"offering_id"`
	Durations  []models.DurationSelection `json:"durations"`
}

// --- Handler struct & constructor ---

type PricingHandler struct {
	service *service.PricingService
	log     *zap.Logger
}

func NewPricingHandler(db *sql.DB, c *cache.OfferingCache, policy pricing.Policy, log *zap.Logger) *PricingHandler {
	oRepo := repository.NewOfferingRepo(db)
	cRepo := repository.NewCartRepo(db)
	bRepo := repository.NewBookingRepo(db)

	svc := service.NewPricingService(db, oRepo, cRepo, bRepo, c, policy)

	return &PricingHandler{service: svc, log: log}
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *PricingHandler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrOfferingNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "offering_not_found"})
	case errors.Is(err, pricing.ErrInvalidWindow):
		// The UI must block the action, not substitute a default price.
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "invalid_window", "detail": err.Error()})
	case errors.Is(err, pricing.ErrMissingRate):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "unsupported_duration", "detail": err.Error()})
	default:
		h.log.Error("pricing request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal_error"})
	}
}

func (h *PricingHandler) decodeQuoteRequest(r *http.Request) (service.QuoteRequest, string, bool) {
	var body QuoteRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return service.QuoteRequest{}, "invalid_body", false
	}
	if body.OfferingID == "" {
		return service.QuoteRequest{}, "offering_id required", false
	}

	duration, ok := models.ParseDurationSelection(body.Duration)
	if !ok {
		return service.QuoteRequest{}, "unknown duration", false
	}
	fuel, ok := models.ParseFuelOption(body.FuelOption)
	if !ok {
		return service.QuoteRequest{}, "unknown fuel_option", false
	}
	window, err := body.Window.Window()
	if err != nil {
		return service.QuoteRequest{}, "invalid window: " + err.Error(), false
	}

	return service.QuoteRequest{
		UserID:     body.UserID,
		OfferingID: body.OfferingID,
		Duration:   duration,
		Window:     window,
		FuelOption: fuel,
	}, "", true
}

// --- Handlers ---

// Quote handles POST /quotes: price one prospective line without touching
// the cart.
func (h *PricingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	req, msg, ok := h.decodeQuoteRequest(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}

	line, err := h.service.Quote(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, QuoteResponse{Line: line, Estimate: true})
}

// GetCart handles GET /cart?user=
func (h *PricingHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user")
	if userID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "user required"})
		return
	}

	entries, err := h.service.ListCart(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeCart(w, userID, entries)
}

// AddToCart handles POST /cart/items: price the line, replace any existing
// entry of its category, reprice siblings.
func (h *PricingHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	req, msg, ok := h.decodeQuoteRequest(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
		return
	}
	if req.UserID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "user_id required"})
		return
	}

	entries, err := h.service.AddToCart(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeCart(w, req.UserID, entries)
}

// RemoveFromCart handles DELETE /cart/items/{category}?user=
func (h *PricingHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user")
	if userID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "user required"})
		return
	}
	category, ok := models.ParseCategory(chi.URLParam(r, "category"))
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown category"})
		return
	}

	entries, err := h.service.RemoveFromCart(r.Context(), userID, category)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeCart(w, userID, entries)
}

// SupportedDurations handles GET /offerings/{id}/durations: the tiers the
// catalog can price, for filtering the duration picker.
func (h *PricingHandler) SupportedDurations(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	durations, err := h.service.SupportedDurations(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, DurationsResponse{OfferingID: id, Durations: durations})
}

func writeCart(w http.ResponseWriter, userID string, entries []models.CartEntry) {
	if entries == nil {
		entries = []models.CartEntry{}
	}
	writeJSON(w, http.StatusOK, CartResponse{
		UserID:     userID,
		Entries:    entries,
		TotalCents: cart.Total(entries),
		Estimate:   true,
	})
}
