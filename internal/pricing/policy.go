package pricing

import "github.com/luxerent/pricing-service/internal/models"

// Policy carries the product-defined hourly minimums applied when an hourly
// booking arrives without usable clock times. The source screens showed
// these inconsistently (label-only for drivers, default-only for
// bodyguards); here the fallback lives in exactly one place,
// DurationQuantity, and nowhere else.
type Policy struct {
	HourlyMinimums map[models.Category]int64
}

// DefaultPolicy returns the shipped minimums: 3h for drivers, 4h for
// bodyguards, 1h for vehicles.
func DefaultPolicy() Policy {
	return Policy{
		HourlyMinimums: map[models.Category]int64{
			models.CategoryDriver:    3,
			models.CategoryBodyguard: 4,
			models.CategoryVehicle:   1,
		},
	}
}

// MinimumHours returns the fallback hours for a category, defaulting to 1
// when the policy has no entry.
func (p Policy) MinimumHours(c models.Category) int64 {
	if h, ok := p.HourlyMinimums[c]; ok && h > 0 {
		return h
	}
	return 1
}
