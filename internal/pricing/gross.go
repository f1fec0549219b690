package pricing

import "github.com/luxerent/pricing-service/internal/models"

// GrossAmount computes the pre-discount price of one line.
//
// Hour-priced categories (driver, bodyguard) multiply the hourly rate by the
// billable hours of the selection. Vehicles anchor on the daily rate: hourly
// rentals bill ceil(hours x daily/24), date ranges bill daily x inclusive
// days, and weekly/monthly tiers take the catalog's own rate when present,
// falling back to daily x 7 / daily x 30.
//
// When the fuel option is "pay separately" the duration-keyed fixed
// surcharge is subtracted; the option never applies to hourly rentals.
func GrossAmount(offering *models.ServiceOffering, sel models.DurationSelection, window models.BookingWindow, fuel models.FuelOption, policy Policy) (models.Money, error) {
	qty, err := DurationQuantity(sel, window, offering.Category, policy)
	if err != nil {
		return 0, err
	}

	if offering.Category != models.CategoryVehicle {
		hourly, err := ResolveUnitRate(offering, models.RateHourly)
		if err != nil {
			return 0, err
		}
		return hourly * models.Money(qty.Hours()), nil
	}

	gross, err := vehicleGross(offering, sel, qty)
	if err != nil {
		return 0, err
	}
	if fuel == models.FuelPaySeparately {
		gross -= offering.FuelSurcharge(fuelSurchargeUnit(sel))
	}
	return gross, nil
}

func vehicleGross(offering *models.ServiceOffering, sel models.DurationSelection, qty Quantity) (models.Money, error) {
	switch sel {
	case models.DurationHourly, models.DurationHalfDay:
		daily, err := ResolveUnitRate(offering, models.RateDaily)
		if err != nil {
			return 0, err
		}
		// Hour slice of the daily rate, rounded up so partial hours never
		// undercharge.
		return daily.MulCeil(qty.Hours(), 24), nil

	case models.DurationFullDay:
		daily, err := ResolveUnitRate(offering, models.RateDaily)
		if err != nil {
			return 0, err
		}
		days := qty.Count
		if qty.Unit == QuantityHours {
			// Single-day default when no date range was supplied.
			days = 1
		}
		return daily * models.Money(days), nil

	case models.DurationWeekly:
		if weekly, ok := offering.Rate(models.RateWeekly); ok {
			return weekly, nil
		}
		daily, err := ResolveUnitRate(offering, models.RateDaily)
		if err != nil {
			return 0, err
		}
		return daily * WeekDays, nil

	case models.DurationMonthly:
		if monthly, ok := offering.Rate(models.RateMonthly); ok {
			return monthly, nil
		}
		daily, err := ResolveUnitRate(offering, models.RateDaily)
		if err != nil {
			return 0, err
		}
		return daily * MonthDays, nil
	}
	return 0, &InvalidWindowError{Reason: "unknown duration selection"}
}

// fuelSurchargeUnit keys the surcharge schedule; hourly and half-day rentals
// have no surcharge entry and resolve to a zero lookup.
func fuelSurchargeUnit(sel models.DurationSelection) models.RateUnit {
	switch sel {
	case models.DurationFullDay:
		return models.RateDaily
	case models.DurationWeekly:
		return models.RateWeekly
	case models.DurationMonthly:
		return models.RateMonthly
	default:
		return models.RateHourly
	}
}
