package models

// ServiceOffering is an immutable catalog entry supplied by the catalog
// collaborator. Absence of a rate unit in Rates means that duration tier is
// not bookable for this offering.
type ServiceOffering struct {
	ID       string
	Name     string
	City     string
	Category Category
	Currency string
	Rates    map[RateUnit]Money

	// FuelSurcharges is populated for vehicles that support the
	// "pay fuel separately" option, keyed by daily/weekly/monthly.
	FuelSurcharges map[RateUnit]Money
}

// Rate returns the catalog amount for the unit and whether it is present.
func (o *ServiceOffering) Rate(unit RateUnit) (Money, bool) {
	m, ok := o.Rates[unit]
	return m, ok
}

// FuelSurcharge returns the fixed surcharge for the unit, zero when the
// offering carries no schedule for it.
func (o *ServiceOffering) FuelSurcharge(unit RateUnit) Money {
	return o.FuelSurcharges[unit]
}
