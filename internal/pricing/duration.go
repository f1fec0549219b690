package pricing

import (
	"time"

	"github.com/luxerent/pricing-service/internal/models"
)

// QuantityUnit says what a Quantity counts.
type QuantityUnit int

const (
	QuantityHours QuantityUnit = iota
	QuantityDays
)

// Quantity is the billable amount of time a duration selection resolves to:
// hours for the hour-priced tiers, calendar days for date-range bookings.
type Quantity struct {
	Unit  QuantityUnit
	Count int64
}

func hoursQty(n int64) Quantity { return Quantity{Unit: QuantityHours, Count: n} }
func daysQty(n int64) Quantity  { return Quantity{Unit: QuantityDays, Count: n} }

// Fixed hour equivalents for the single-unit tiers.
const (
	HalfDayHours = 12
	FullDayHours = 24
	WeekDays     = 7
	WeekHours    = 168
	MonthDays    = 30
	MonthHours   = 720
)

// DurationQuantity maps a duration selection (plus the booking window, when
// one is supplied) to a billable quantity.
//
// Hourly spans are billed by the started hour: elapsed time is rounded up to
// the next whole hour. A missing window falls back to the policy minimum for
// the category. A full-day selection with a date range counts days
// inclusively, so a same-day booking is one day.
func DurationQuantity(sel models.DurationSelection, window models.BookingWindow, category models.Category, policy Policy) (Quantity, error) {
	switch sel {
	case models.DurationHourly:
		if !window.HasClockTimes() {
			return hoursQty(policy.MinimumHours(category)), nil
		}
		start, err := window.StartInstant()
		if err != nil {
			return Quantity{}, &InvalidWindowError{Reason: err.Error()}
		}
		end, err := window.EndInstant()
		if err != nil {
			return Quantity{}, &InvalidWindowError{Reason: err.Error()}
		}
		if !end.After(start) {
			return Quantity{}, &InvalidWindowError{Reason: "end time must be after start time"}
		}
		return hoursQty(ceilHours(end.Sub(start))), nil

	case models.DurationHalfDay:
		return hoursQty(HalfDayHours), nil

	case models.DurationFullDay:
		if window.HasDateRange() {
			if window.EndDate.Before(window.StartDate) {
				return Quantity{}, &InvalidWindowError{Reason: "end date must not precede start date"}
			}
			return daysQty(window.InclusiveDays()), nil
		}
		return hoursQty(FullDayHours), nil

	case models.DurationWeekly:
		return daysQty(WeekDays), nil

	case models.DurationMonthly:
		return daysQty(MonthDays), nil
	}
	return Quantity{}, &InvalidWindowError{Reason: "unknown duration selection"}
}

// Hours converts the quantity to hours regardless of unit.
func (q Quantity) Hours() int64 {
	if q.Unit == QuantityDays {
		return q.Count * 24
	}
	return q.Count
}

func ceilHours(d time.Duration) int64 {
	h := int64(d / time.Hour)
	if d%time.Hour != 0 {
		h++
	}
	return h
}
