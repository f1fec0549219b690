package repository

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/luxerent/pricing-service/internal/models"
)

type BookingRepo struct {
	db *sql.DB
}

func NewBookingRepo(db *sql.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

// ListCategories returns the distinct service categories of the user's prior
// bookings in any of the given statuses. Feeds the selection-set snapshot
// used for bundle-discount gating.
func (r *BookingRepo) ListCategories(ctx context.Context, userID string, statuses []models.BookingStatus) ([]models.Category, error) {
	ss := make([]string, 0, len(statuses))
	for _, s := range statuses {
		ss = append(ss, string(s))
	}

	query := `
		SELECT DISTINCT category
		FROM bookings
		WHERE user_id = $1 AND status = ANY($2);
	`

	rows, err := r.db.QueryContext(ctx, query, userID, pq.Array(ss))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		// Unknown categories in old rows are skipped rather than failing
		// the whole pricing pass.
		if cat, ok := models.ParseCategory(raw); ok {
			categories = append(categories, cat)
		}
	}
	return categories, rows.Err()
}
