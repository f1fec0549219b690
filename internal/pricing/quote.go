package pricing

import (
	"github.com/google/uuid"

	"github.com/luxerent/pricing-service/internal/models"
)

// QuoteInput bundles everything a single line-item computation needs. The
// engine reads it and the selection set; it mutates neither.
type QuoteInput struct {
	Offering     *models.ServiceOffering
	Duration     models.DurationSelection
	Window       models.BookingWindow
	FuelOption   models.FuelOption
	SelectionSet models.SelectionSet
}

// PriceLine runs the full computation for one line: unit rate resolution,
// duration quantity, gross amount (with the vehicle fuel adjustment), and
// the bundle discount. Each call produces a fresh LineItem; callers discard
// stale ones and re-invoke whenever any input changes.
func PriceLine(in QuoteInput, policy Policy) (models.LineItem, error) {
	unit, err := ResolveUnitRate(in.Offering, anchorRateUnit(in.Offering, in.Duration))
	if err != nil {
		return models.LineItem{}, err
	}

	gross, err := GrossAmount(in.Offering, in.Duration, in.Window, in.FuelOption, policy)
	if err != nil {
		return models.LineItem{}, err
	}

	d := ApplyBundleDiscount(in.Offering.Category, gross, in.SelectionSet)

	return models.LineItem{
		ID:             uuid.NewString(),
		Category:       in.Offering.Category,
		OfferingID:     in.Offering.ID,
		Duration:       in.Duration,
		Window:         in.Window.DTO(),
		FuelOption:     in.FuelOption,
		UnitAmount:     unit,
		GrossAmount:    gross,
		DiscountRate:   d.Rate(),
		DiscountAmount: d.Amount,
		NetAmount:      d.Net,
		Currency:       in.Offering.Currency,
	}, nil
}
