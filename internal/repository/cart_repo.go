package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/luxerent/pricing-service/internal/models"
)

type CartRepo struct {
	db *sql.DB
}

func NewCartRepo(db *sql.DB) *CartRepo {
	return &CartRepo{db: db}
}

// ListEntries returns the user's cart in insertion order. Replaced entries
// keep their original created_at, so a swap of the vehicle keeps its slot.
func (r *CartRepo) ListEntries(ctx context.Context, userID string) ([]models.CartEntry, error) {
	query := `
		SELECT user_id, line_id, category, offering_id, duration,
		       start_date, end_date, start_time, end_time, fuel_option,
		       unit_amount_cents, gross_amount_cents, discount_rate,
		       discount_amount_cents, net_amount_cents, currency,
		       created_at, updated_at
		FROM cart_entries
		WHERE user_id = $1
		ORDER BY created_at;
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.CartEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// UpsertEntry persists one line per (user, category): inserting a second
// offering of a category the user already holds replaces the row in place.
func (r *CartRepo) UpsertEntry(ctx context.Context, tx *sql.Tx, entry models.CartEntry) error {
	query := `
		INSERT INTO cart_entries
		(user_id, line_id, category, offering_id, duration,
		 start_date, end_date, start_time, end_time, fuel_option,
		 unit_amount_cents, gross_amount_cents, discount_rate,
		 discount_amount_cents, net_amount_cents, currency, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,NOW(),NOW())
		ON CONFLICT (user_id, category) DO UPDATE SET
			line_id = EXCLUDED.line_id,
			offering_id = EXCLUDED.offering_id,
			duration = EXCLUDED.duration,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			fuel_option = EXCLUDED.fuel_option,
			unit_amount_cents = EXCLUDED.unit_amount_cents,
			gross_amount_cents = EXCLUDED.gross_amount_cents,
			discount_rate = EXCLUDED.discount_rate,
			discount_amount_cents = EXCLUDED.discount_amount_cents,
			net_amount_cents = EXCLUDED.net_amount_cents,
			currency = EXCLUDED.currency,
			updated_at = NOW();
	`

	line := entry.Line
	_, err := tx.ExecContext(ctx, query,
		entry.UserID,
		line.ID,
		string(line.Category),
		line.OfferingID,
		string(line.Duration),
		nullString(line.Window.StartDate),
		nullString(line.Window.EndDate),
		nullString(line.Window.StartTime),
		nullString(line.Window.EndTime),
		string(line.FuelOption),
		int64(line.UnitAmount),
		int64(line.GrossAmount),
		line.DiscountRate,
		int64(line.DiscountAmount),
		int64(line.NetAmount),
		line.Currency,
	)
	return err
}

// DeleteCategory drops the (at most one) entry of the category; deleting an
// absent category is a no-op.
func (r *CartRepo) DeleteCategory(ctx context.Context, tx *sql.Tx, userID string, category models.Category) error {
	query := `DELETE FROM cart_entries WHERE user_id = $1 AND category = $2`
	_, err := tx.ExecContext(ctx, query, userID, string(category))
	return err
}

func scanEntry(rows *sql.Rows) (models.CartEntry, error) {
	var e models.CartEntry
	var category, duration, fuel string
	var startDate, endDate, startTime, endTime sql.NullString
	var unit, gross, discount, net int64

	err := rows.Scan(
		&e.UserID,
		&e.Line.ID,
		&category,
		&e.Line.OfferingID,
		&duration,
		&startDate,
		&endDate,
		&startTime,
		&endTime,
		&fuel,
		&unit,
		&gross,
		&e.Line.DiscountRate,
		&discount,
		&net,
		&e.Line.Currency,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return models.CartEntry{}, err
	}

	cat, ok := models.ParseCategory(category)
	if !ok {
		return models.CartEntry{}, fmt.Errorf("cart entry %s: unknown category %q", e.Line.ID, category)
	}
	e.Line.Category = cat

	dur, ok := models.ParseDurationSelection(duration)
	if !ok {
		return models.CartEntry{}, fmt.Errorf("cart entry %s: unknown duration %q", e.Line.ID, duration)
	}
	e.Line.Duration = dur

	if f, ok := models.ParseFuelOption(fuel); ok {
		e.Line.FuelOption = f
	}

	e.Line.Window = models.WindowDTO{
		StartDate: startDate.String,
		EndDate:   endDate.String,
		StartTime: startTime.String,
		EndTime:   endTime.String,
	}
	e.Line.UnitAmount = models.Money(unit)
	e.Line.GrossAmount = models.Money(gross)
	e.Line.DiscountAmount = models.Money(discount)
	e.Line.NetAmount = models.Money(net)
	return e, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
