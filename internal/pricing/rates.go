package pricing

import "github.com/luxerent/pricing-service/internal/models"

// ResolveUnitRate returns the catalog amount for a rate unit, failing loudly
// when the offering's table lacks it.
func ResolveUnitRate(offering *models.ServiceOffering, unit models.RateUnit) (models.Money, error) {
	if m, ok := offering.Rate(unit); ok {
		return m, nil
	}
	return 0, &MissingRateError{OfferingID: offering.ID, Unit: unit}
}

// baseRateUnit is the rate unit a category's pricing is anchored on:
// drivers and bodyguards are hour-priced, vehicles day-priced. Weekly and
// monthly vehicle tiers may override the anchor with their own catalog rate.
func baseRateUnit(category models.Category) models.RateUnit {
	if category == models.CategoryVehicle {
		return models.RateDaily
	}
	return models.RateHourly
}

// anchorRateUnit is the unit whose catalog rate actually drives the price
// of a given selection: the weekly/monthly vehicle tiers anchor on their own
// rate when the catalog carries one, everything else on the category base.
func anchorRateUnit(offering *models.ServiceOffering, sel models.DurationSelection) models.RateUnit {
	if offering.Category != models.CategoryVehicle {
		return models.RateHourly
	}
	switch sel {
	case models.DurationWeekly:
		if _, ok := offering.Rate(models.RateWeekly); ok {
			return models.RateWeekly
		}
	case models.DurationMonthly:
		if _, ok := offering.Rate(models.RateMonthly); ok {
			return models.RateMonthly
		}
	}
	return models.RateDaily
}

// SupportedSelections lists the duration tiers the catalog entry can price.
// Screens use this to filter the duration picker so that MissingRateError
// stays unreachable through the UI.
func SupportedSelections(offering *models.ServiceOffering) []models.DurationSelection {
	if _, ok := offering.Rate(baseRateUnit(offering.Category)); !ok {
		// Without the anchor rate only tiers with their own catalog rate
		// remain priceable.
		var out []models.DurationSelection
		if _, ok := offering.Rate(models.RateWeekly); ok && offering.Category == models.CategoryVehicle {
			out = append(out, models.DurationWeekly)
		}
		if _, ok := offering.Rate(models.RateMonthly); ok && offering.Category == models.CategoryVehicle {
			out = append(out, models.DurationMonthly)
		}
		return out
	}
	return []models.DurationSelection{
		models.DurationHourly,
		models.DurationHalfDay,
		models.DurationFullDay,
		models.DurationWeekly,
		models.DurationMonthly,
	}
}
