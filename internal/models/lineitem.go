package models

import "time"

// LineItem is the engine's output for one priced service. It is immutable
// once produced; a recompute supersedes it with a fresh one. The net amount
// is an estimate until checkout confirms the server-side total.
type LineItem struct {
	ID             string            `json:"id"`
	Category       Category          `json:"category"`
	OfferingID     string            `json:"offering_id"`
	Duration       DurationSelection `json:"duration"`
	Window         WindowDTO         `json:"window"`
	FuelOption     FuelOption        `json:"fuel_option,omitempty"`
	UnitAmount     Money             `json:"unit_amount"`
	GrossAmount    Money             `json:"gross_amount"`
	DiscountRate   float64           `json:"discount_rate"`
	DiscountAmount Money             `json:"discount_amount"`
	NetAmount      Money             `json:"net_amount"`
	Currency       string            `json:"currency"`
}

// WindowDTO is the wire shape of a BookingWindow.
type WindowDTO struct {
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
}

func (w BookingWindow) DTO() WindowDTO {
	dto := WindowDTO{StartTime: w.StartTime, EndTime: w.EndTime}
	if !w.StartDate.IsZero() {
		dto.StartDate = w.StartDate.Format(dateLayout)
	}
	if !w.EndDate.IsZero() {
		dto.EndDate = w.EndDate.Format(dateLayout)
	}
	return dto
}

func (w WindowDTO) Window() (BookingWindow, error) {
	return ParseBookingWindow(w.StartDate, w.EndDate, w.StartTime, w.EndTime)
}

// CartEntry is the persisted form of a line item: one per (user, category),
// adding a second offering of the same category replaces the first.
type CartEntry struct {
	UserID    string    `json:"user_id"`
	Line      LineItem  `json:"line"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Category is a convenience accessor used by the merge semantics.
func (e CartEntry) EntryCategory() Category {
	return e.Line.Category
}
