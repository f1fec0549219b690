package models

import (
	"fmt"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// BookingWindow is the customer-chosen span of a rental. EndDate is only
// meaningful for date-range full-day bookings; StartTime/EndTime only for
// hourly ones. Zero values mean "not supplied".
type BookingWindow struct {
	StartDate time.Time
	EndDate   time.Time
	StartTime string
	EndTime   string
}

// ParseBookingWindow builds a window from the wire representation
// ("2006-01-02" dates, "15:04" wall-clock times). Empty strings are allowed
// everywhere; validation of what a given duration tier requires happens in
// the pricing package.
func ParseBookingWindow(startDate, endDate, startTime, endTime string) (BookingWindow, error) {
	var w BookingWindow
	var err error

	if startDate != "" {
		w.StartDate, err = time.Parse(dateLayout, startDate)
		if err != nil {
			return BookingWindow{}, fmt.Errorf("start_date: %w", err)
		}
	}
	if endDate != "" {
		w.EndDate, err = time.Parse(dateLayout, endDate)
		if err != nil {
			return BookingWindow{}, fmt.Errorf("end_date: %w", err)
		}
	}
	if startTime != "" {
		if _, err = time.Parse(timeLayout, startTime); err != nil {
			return BookingWindow{}, fmt.Errorf("start_time: %w", err)
		}
		w.StartTime = startTime
	}
	if endTime != "" {
		if _, err = time.Parse(timeLayout, endTime); err != nil {
			return BookingWindow{}, fmt.Errorf("end_time: %w", err)
		}
		w.EndTime = endTime
	}
	return w, nil
}

// HasDateRange reports whether both calendar dates are set.
func (w BookingWindow) HasDateRange() bool {
	return !w.StartDate.IsZero() && !w.EndDate.IsZero()
}

// HasClockTimes reports whether the window carries enough information to
// compute an exact hourly span.
func (w BookingWindow) HasClockTimes() bool {
	return !w.StartDate.IsZero() && w.StartTime != "" && w.EndTime != ""
}

// StartInstant combines StartDate and StartTime.
func (w BookingWindow) StartInstant() (time.Time, error) {
	return combine(w.StartDate, w.StartTime)
}

// EndInstant combines the end date (falling back to the start date for
// same-day hourly bookings) and EndTime.
func (w BookingWindow) EndInstant() (time.Time, error) {
	d := w.EndDate
	if d.IsZero() {
		d = w.StartDate
	}
	return combine(d, w.EndTime)
}

// InclusiveDays counts calendar days start..end inclusive; a same-day window
// counts as one day.
func (w BookingWindow) InclusiveDays() int64 {
	days := int64(w.EndDate.Sub(w.StartDate).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return days
}

func combine(date time.Time, clock string) (time.Time, error) {
	t, err := time.Parse(timeLayout, clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}
