package pricing

import "github.com/luxerent/pricing-service/internal/models"

// Bundle discount rates in basis points. These are product constants, not
// configuration: every screen must show the same figure.
const (
	DriverDiscountBPS    = 1000 // 10%
	BodyguardDiscountBPS = 1500 // 15%
)

// Discount is the outcome of a bundle-discount evaluation.
type Discount struct {
	RateBPS int64
	Amount  models.Money
	Net     models.Money
}

// Rate returns the discount as a fraction, e.g. 0.10.
func (d Discount) Rate() float64 {
	return float64(d.RateBPS) / 10000
}

// ApplyBundleDiscount prices the bundle incentive: a driver or bodyguard
// line is discounted only when the selection set holds a vehicle, either in
// the active cart or as a confirmed/completed prior booking. Vehicle lines
// are never discounted. Pure and idempotent; the figure is advisory until
// checkout confirms the server-side total.
func ApplyBundleDiscount(category models.Category, gross models.Money, set models.SelectionSet) Discount {
	bps := int64(0)
	if set.HasVehicle() {
		switch category {
		case models.CategoryDriver:
			bps = DriverDiscountBPS
		case models.CategoryBodyguard:
			bps = BodyguardDiscountBPS
		}
	}

	amount := models.Money(int64(gross) * bps / 10000)
	return Discount{
		RateBPS: bps,
		Amount:  amount,
		Net:     gross - amount,
	}
}
