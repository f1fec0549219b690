package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/luxerent/pricing-service/internal/cache"
	"github.com/luxerent/pricing-service/internal/cart"
	"github.com/luxerent/pricing-service/internal/concurrency"
	"github.com/luxerent/pricing-service/internal/models"
	"github.com/luxerent/pricing-service/internal/pricing"
)

// ErrOfferingNotFound means the catalog has no entry for the requested ID.
var ErrOfferingNotFound = errors.New("offering not found")

// Repos required by the service (interfaces to allow mocking).
type OfferingRepo interface {
	GetOffering(ctx context.Context, id string) (*models.ServiceOffering, error)
}

type CartRepo interface {
	ListEntries(ctx context.Context, userID string) ([]models.CartEntry, error)
	UpsertEntry(ctx context.Context, tx *sql.Tx, entry models.CartEntry) error
	DeleteCategory(ctx context.Context, tx *sql.Tx, userID string, category models.Category) error
}

type BookingRepo interface {
	ListCategories(ctx context.Context, userID string, statuses []models.BookingStatus) ([]models.Category, error)
}

// PricingService orchestrates the pure engine against the catalog, cart and
// booking stores. All prices it returns are estimates; checkout recomputes
// the authoritative total server-side.
type PricingService struct {
	db       *sql.DB // used for transactions
	offering OfferingRepo
	carts    CartRepo
	bookings BookingRepo
	cache    *cache.OfferingCache
	policy   pricing.Policy
}

func NewPricingService(db *sql.DB, oRepo OfferingRepo, cRepo CartRepo, bRepo BookingRepo, c *cache.OfferingCache, policy pricing.Policy) *PricingService {
	return &PricingService{
		db:       db,
		offering: oRepo,
		carts:    cRepo,
		bookings: bRepo,
		cache:    c,
		policy:   policy,
	}
}

// QuoteRequest is the service-level input for pricing one prospective line.
type QuoteRequest struct {
	UserID     string
	OfferingID string
	Duration   models.DurationSelection
	Window     models.BookingWindow
	FuelOption models.FuelOption
}

// Quote prices one line against the user's current selection set without
// persisting anything.
func (s *PricingService) Quote(ctx context.Context, req QuoteRequest) (models.LineItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	offering, err := s.getOffering(ctx, req.OfferingID)
	if err != nil {
		return models.LineItem{}, err
	}

	set, err := s.selectionSet(ctx, req.UserID)
	if err != nil {
		return models.LineItem{}, err
	}

	return pricing.PriceLine(pricing.QuoteInput{
		Offering:     offering,
		Duration:     req.Duration,
		Window:       req.Window,
		FuelOption:   req.FuelOption,
		SelectionSet: set,
	}, s.policy)
}

// AddToCart prices the line and persists it, replacing any existing entry of
// the same category, then reprices the remaining cart entries so sibling
// discounts reflect the new composition (adding a vehicle unlocks the driver
// and bodyguard bundle rates in the same pass).
func (s *PricingService) AddToCart(ctx context.Context, req QuoteRequest) ([]models.CartEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 8*time.Second)
	defer cancel()

	offering, err := s.getOffering(ctx, req.OfferingID)
	if err != nil {
		return nil, err
	}

	entries, err := s.carts.ListEntries(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	bookingCats, err := s.bookings.ListCategories(ctx, req.UserID, models.DiscountEligibleStatuses)
	if err != nil {
		return nil, err
	}

	// The new entry is priced against the cart as it will be after the
	// merge, so a vehicle being added counts toward its siblings and vice
	// versa.
	merged := cart.Merge(entries, models.CartEntry{UserID: req.UserID, Line: models.LineItem{Category: offering.Category}})
	set := models.NewSelectionSet(cart.Categories(merged), bookingCats)

	line, err := pricing.PriceLine(pricing.QuoteInput{
		Offering:     offering,
		Duration:     req.Duration,
		Window:       req.Window,
		FuelOption:   req.FuelOption,
		SelectionSet: set,
	}, s.policy)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := s.carts.UpsertEntry(ctx, tx, models.CartEntry{UserID: req.UserID, Line: line}); err != nil {
		return nil, fmt.Errorf("upsert entry: %w", err)
	}

	if err := s.repriceSiblings(ctx, tx, entries, offering.Category, set); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("tx commit: %w", err)
	}
	committed = true

	return s.carts.ListEntries(ctx, req.UserID)
}

// ListCart returns the user's persisted entries as last priced.
func (s *PricingService) ListCart(ctx context.Context, userID string) ([]models.CartEntry, error) {
	return s.carts.ListEntries(ctx, userID)
}

// RemoveFromCart drops the category and reprices the survivors, since
// removing a vehicle withdraws the bundle discount from drivers and
// bodyguards still in the cart.
func (s *PricingService) RemoveFromCart(ctx context.Context, userID string, category models.Category) ([]models.CartEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 8*time.Second)
	defer cancel()

	entries, err := s.carts.ListEntries(ctx, userID)
	if err != nil {
		return nil, err
	}
	bookingCats, err := s.bookings.ListCategories(ctx, userID, models.DiscountEligibleStatuses)
	if err != nil {
		return nil, err
	}

	remaining := cart.RemoveCategory(entries, category)
	set := models.NewSelectionSet(cart.Categories(remaining), bookingCats)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := s.carts.DeleteCategory(ctx, tx, userID, category); err != nil {
		return nil, fmt.Errorf("delete category: %w", err)
	}

	if err := s.repriceSiblings(ctx, tx, remaining, category, set); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("tx commit: %w", err)
	}
	committed = true

	return s.carts.ListEntries(ctx, userID)
}

// SupportedDurations lists the duration tiers the catalog can price for an
// offering; screens filter the duration picker with it so MissingRateError
// never reaches a user.
func (s *PricingService) SupportedDurations(ctx context.Context, offeringID string) ([]models.DurationSelection, error) {
	offering, err := s.getOffering(ctx, offeringID)
	if err != nil {
		return nil, err
	}
	return pricing.SupportedSelections(offering), nil
}

// repriceSiblings recomputes every cart entry except the one of the changed
// category against the new selection set. Offerings are fetched with a small
// fan-out; the upserts stay on the caller's transaction.
func (s *PricingService) repriceSiblings(ctx context.Context, tx *sql.Tx, entries []models.CartEntry, changed models.Category, set models.SelectionSet) error {
	var siblings []models.CartEntry
	for _, e := range entries {
		if e.EntryCategory() != changed {
			siblings = append(siblings, e)
		}
	}
	if len(siblings) == 0 {
		return nil
	}

	// Workers write disjoint indexes, no locking needed.
	lines := make([]models.LineItem, len(siblings))
	errs := make([]error, len(siblings))

	concurrency.ForEach(ctx, 4, len(siblings), func(ctx context.Context, i int) {
		e := siblings[i]
		offering, err := s.getOffering(ctx, e.Line.OfferingID)
		if err != nil {
			errs[i] = err
			return
		}
		window, err := e.Line.Window.Window()
		if err != nil {
			errs[i] = err
			return
		}
		lines[i], errs[i] = pricing.PriceLine(pricing.QuoteInput{
			Offering:     offering,
			Duration:     e.Line.Duration,
			Window:       window,
			FuelOption:   e.Line.FuelOption,
			SelectionSet: set,
		}, s.policy)
	})

	for i, err := range errs {
		if err != nil {
			return fmt.Errorf("reprice %s: %w", siblings[i].EntryCategory(), err)
		}
	}

	for i, line := range lines {
		if err := s.carts.UpsertEntry(ctx, tx, models.CartEntry{UserID: siblings[i].UserID, Line: line}); err != nil {
			return fmt.Errorf("reprice upsert: %w", err)
		}
	}
	return nil
}

// selectionSet snapshots what the user already holds: active cart categories
// plus confirmed/completed prior bookings.
func (s *PricingService) selectionSet(ctx context.Context, userID string) (models.SelectionSet, error) {
	if userID == "" {
		// Anonymous quote: nothing held, no discount eligibility.
		return models.NewSelectionSet(nil, nil), nil
	}

	entries, err := s.carts.ListEntries(ctx, userID)
	if err != nil {
		return models.SelectionSet{}, err
	}
	bookingCats, err := s.bookings.ListCategories(ctx, userID, models.DiscountEligibleStatuses)
	if err != nil {
		return models.SelectionSet{}, err
	}
	return models.NewSelectionSet(cart.Categories(entries), bookingCats), nil
}

// getOffering is cache-first; the TTL bounds catalog staleness.
func (s *PricingService) getOffering(ctx context.Context, id string) (*models.ServiceOffering, error) {
	if o, ok := s.cache.Get(id); ok {
		return o, nil
	}
	o, err := s.offering.GetOffering(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOfferingNotFound
	}
	s.cache.Set(id, o)
	return o, nil
}
