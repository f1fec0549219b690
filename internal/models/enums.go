package models

import "strings"

// Category identifies which kind of service an offering provides.
type Category string

const (
	CategoryVehicle   Category = "vehicle"
	CategoryDriver    Category = "driver"
	CategoryBodyguard Category = "bodyguard"
)

func ParseCategory(s string) (Category, bool) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryVehicle:
		return CategoryVehicle, true
	case CategoryDriver:
		return CategoryDriver, true
	case CategoryBodyguard:
		return CategoryBodyguard, true
	default:
		return "", false
	}
}

// RateUnit keys an offering's rate table.
type RateUnit string

const (
	RateHourly  RateUnit = "hourly"
	RateDaily   RateUnit = "daily"
	RateWeekly  RateUnit = "weekly"
	RateMonthly RateUnit = "monthly"
)

func ParseRateUnit(s string) (RateUnit, bool) {
	switch RateUnit(strings.ToLower(strings.TrimSpace(s))) {
	case RateHourly:
		return RateHourly, true
	case RateDaily:
		return RateDaily, true
	case RateWeekly:
		return RateWeekly, true
	case RateMonthly:
		return RateMonthly, true
	default:
		return "", false
	}
}

// DurationSelection is the closed set of rental duration tiers a customer
// can pick. Adding a tier means touching the exhaustive switches in the
// pricing package, which is the point.
type DurationSelection string

const (
	DurationHourly  DurationSelection = "hourly"
	DurationHalfDay DurationSelection = "half_day"
	DurationFullDay DurationSelection = "full_day"
	DurationWeekly  DurationSelection = "weekly"
	DurationMonthly DurationSelection = "monthly"
)

func ParseDurationSelection(s string) (DurationSelection, bool) {
	switch DurationSelection(strings.ToLower(strings.TrimSpace(s))) {
	case DurationHourly:
		return DurationHourly, true
	case DurationHalfDay:
		return DurationHalfDay, true
	case DurationFullDay:
		return DurationFullDay, true
	case DurationWeekly:
		return DurationWeekly, true
	case DurationMonthly:
		return DurationMonthly, true
	default:
		return "", false
	}
}

// FuelOption applies to vehicle offerings only.
type FuelOption string

const (
	FuelIncluded      FuelOption = "included"
	FuelPaySeparately FuelOption = "pay_separately"
)

func ParseFuelOption(s string) (FuelOption, bool) {
	switch FuelOption(strings.ToLower(strings.TrimSpace(s))) {
	case FuelIncluded, "":
		return FuelIncluded, true
	case FuelPaySeparately:
		return FuelPaySeparately, true
	default:
		return "", false
	}
}

// BookingStatus mirrors the lifecycle states the booking collaborator stores.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(strings.ToLower(strings.TrimSpace(s))) {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return BookingStatus(strings.ToLower(strings.TrimSpace(s))), true
	default:
		return "", false
	}
}

// DiscountEligibleStatuses are the prior-booking states that count toward
// bundle discount eligibility.
var DiscountEligibleStatuses = []BookingStatus{BookingConfirmed, BookingCompleted}
