package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	cases := []struct {
		in   string
		want Money
	}{
		{"", 0},
		{"0", 0},
		{"250", 25000},
		{"250.5", 25050},
		{"250.55", 25055},
		{"250.559", 25055}, // extra digits truncated
		{"-12.30", -1230},
	}
	for _, tc := range cases {
		got, err := ParseMoney(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		require.Equal(t, tc.want, got, "input %q", tc.in)
	}

	_, err := ParseMoney("12.3.4")
	require.Error(t, err)
	_, err = ParseMoney("abc")
	require.Error(t, err)
}

func TestMoneyString(t *testing.T) {
	require.Equal(t, "1750.00", Money(175000).String())
	require.Equal(t, "0.05", Money(5).String())
	require.Equal(t, "-12.30", Money(-1230).String())
}

func TestMoneyMulCeil(t *testing.T) {
	require.Equal(t, Money(3125), Money(25000).MulCeil(3, 24))
	require.Equal(t, Money(5209), Money(25000).MulCeil(5, 24)) // 5208.33.. rounds up
	require.Equal(t, Money(0), Money(0).MulCeil(7, 24))
}

func TestParseDurationSelection(t *testing.T) {
	got, ok := ParseDurationSelection(" Half_Day ")
	require.True(t, ok)
	require.Equal(t, DurationHalfDay, got)

	_, ok = ParseDurationSelection("fortnight")
	require.False(t, ok)
}

func TestParseFuelOptionDefaultsToIncluded(t *testing.T) {
	got, ok := ParseFuelOption("")
	require.True(t, ok)
	require.Equal(t, FuelIncluded, got)

	got, ok = ParseFuelOption("pay_separately")
	require.True(t, ok)
	require.Equal(t, FuelPaySeparately, got)

	_, ok = ParseFuelOption("siphon")
	require.False(t, ok)
}

func TestBookingWindowRoundTrip(t *testing.T) {
	w, err := ParseBookingWindow("2025-03-01", "2025-03-07", "", "")
	require.NoError(t, err)
	require.True(t, w.HasDateRange())
	require.False(t, w.HasClockTimes())
	require.Equal(t, int64(7), w.InclusiveDays())

	dto := w.DTO()
	require.Equal(t, "2025-03-01", dto.StartDate)
	require.Equal(t, "2025-03-07", dto.EndDate)

	back, err := dto.Window()
	require.NoError(t, err)
	require.Equal(t, w, back)
}

func TestBookingWindowInstants(t *testing.T) {
	w, err := ParseBookingWindow("2025-03-01", "", "09:30", "12:00")
	require.NoError(t, err)
	require.True(t, w.HasClockTimes())

	start, err := w.StartInstant()
	require.NoError(t, err)
	end, err := w.EndInstant()
	require.NoError(t, err)
	require.Equal(t, 2*time.Hour+30*time.Minute, end.Sub(start))
}

func TestBookingWindowRejectsGarbage(t *testing.T) {
	_, err := ParseBookingWindow("03/01/2025", "", "", "")
	require.Error(t, err)
	_, err = ParseBookingWindow("2025-03-01", "", "9am", "")
	require.Error(t, err)
}

func TestSelectionSetSnapshot(t *testing.T) {
	set := NewSelectionSet([]Category{CategoryDriver}, []Category{CategoryVehicle})
	require.True(t, set.InCart(CategoryDriver))
	require.False(t, set.InCart(CategoryVehicle))
	require.True(t, set.Contains(CategoryVehicle))
	require.True(t, set.HasVehicle())

	empty := NewSelectionSet(nil, nil)
	require.False(t, empty.HasVehicle())
}
