package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/luxerent/pricing-service/internal/models"
)

type OfferingRepo struct {
	db *sql.DB
}

func NewOfferingRepo(db *sql.DB) *OfferingRepo {
	return &OfferingRepo{db: db}
}

// GetOffering loads a catalog entry with its rate table and, for vehicles,
// the fuel surcharge schedule. Returns (nil, nil) when the offering does not
// exist.
func (r *OfferingRepo) GetOffering(ctx context.Context, id string) (*models.ServiceOffering, error) {
	query := `
		SELECT id, name, city, category, currency
		FROM offerings
		WHERE id = $1;
	`

	var o models.ServiceOffering
	var category string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&o.ID,
		&o.Name,
		&o.City,
		&category,
		&o.Currency,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	cat, ok := models.ParseCategory(category)
	if !ok {
		return nil, fmt.Errorf("offering %s: unknown category %q", id, category)
	}
	o.Category = cat

	o.Rates, err = r.rateTable(ctx, id, "offering_rates")
	if err != nil {
		return nil, err
	}

	if o.Category == models.CategoryVehicle {
		o.FuelSurcharges, err = r.rateTable(ctx, id, "offering_fuel_surcharges")
		if err != nil {
			return nil, err
		}
	}

	return &o, nil
}

func (r *OfferingRepo) rateTable(ctx context.Context, offeringID, table string) (map[models.RateUnit]models.Money, error) {
	query := fmt.Sprintf(`SELECT rate_unit, amount_cents FROM %s WHERE offering_id = $1`, table)
	rows, err := r.db.QueryContext(ctx, query, offeringID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rates := make(map[models.RateUnit]models.Money)
	for rows.Next() {
		var unit string
		var cents int64
		if err := rows.Scan(&unit, &cents); err != nil {
			return nil, err
		}
		u, ok := models.ParseRateUnit(unit)
		if !ok {
			return nil, fmt.Errorf("offering %s: unknown rate unit %q", offeringID, unit)
		}
		rates[u] = models.Money(cents)
	}
	return rates, rows.Err()
}
