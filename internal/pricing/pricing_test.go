package pricing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxerent/pricing-service/internal/models"
)

func vehicleOffering(rates map[models.RateUnit]models.Money, surcharges map[models.RateUnit]models.Money) *models.ServiceOffering {
	return &models.ServiceOffering{
		ID:             "veh-1",
		Name:           "Armored S-Class",
		Category:       models.CategoryVehicle,
		Currency:       "USD",
		Rates:          rates,
		FuelSurcharges: surcharges,
	}
}

func driverOffering(hourly models.Money) *models.ServiceOffering {
	return &models.ServiceOffering{
		ID:       "drv-1",
		Name:     "Chauffeur",
		Category: models.CategoryDriver,
		Currency: "USD",
		Rates:    map[models.RateUnit]models.Money{models.RateHourly: hourly},
	}
}

func bodyguardOffering(hourly models.Money) *models.ServiceOffering {
	return &models.ServiceOffering{
		ID:       "bg-1",
		Name:     "Close Protection",
		Category: models.CategoryBodyguard,
		Currency: "USD",
		Rates:    map[models.RateUnit]models.Money{models.RateHourly: hourly},
	}
}

func window(t *testing.T, startDate, endDate, startTime, endTime string) models.BookingWindow {
	t.Helper()
	w, err := models.ParseBookingWindow(startDate, endDate, startTime, endTime)
	require.NoError(t, err)
	return w
}

func TestDurationQuantityHourlyCeiling(t *testing.T) {
	cases := []struct {
		name      string
		startTime string
		endTime   string
		want      int64
	}{
		{"exact hours", "09:00", "12:00", 3},
		{"partial hour bills full", "09:00", "12:10", 4},
		{"one minute is one hour", "09:00", "09:01", 1},
		{"cross half hour", "10:30", "13:30", 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := window(t, "2025-03-01", "", tc.startTime, tc.endTime)
			q, err := DurationQuantity(models.DurationHourly, w, models.CategoryDriver, DefaultPolicy())
			require.NoError(t, err)
			require.Equal(t, QuantityHours, q.Unit)
			require.Equal(t, tc.want, q.Count)
		})
	}
}

func TestDurationQuantityHourlyOvernight(t *testing.T) {
	// 22:00 -> 02:00 next day = 4 hours.
	w := window(t, "2025-03-01", "2025-03-02", "22:00", "02:00")
	q, err := DurationQuantity(models.DurationHourly, w, models.CategoryDriver, DefaultPolicy())
	require.NoError(t, err)
	require.Equal(t, int64(4), q.Count)
}

func TestDurationQuantityHourlyInvalidWindow(t *testing.T) {
	cases := []struct {
		name      string
		startTime string
		endTime   string
	}{
		{"zero elapsed", "09:00", "09:00"},
		{"negative elapsed", "12:00", "09:00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := window(t, "2025-03-01", "", tc.startTime, tc.endTime)
			_, err := DurationQuantity(models.DurationHourly, w, models.CategoryDriver, DefaultPolicy())
			require.ErrorIs(t, err, ErrInvalidWindow)
		})
	}
}

func TestDurationQuantityHourlyMinimumFallback(t *testing.T) {
	policy := DefaultPolicy()
	cases := []struct {
		category models.Category
		want     int64
	}{
		{models.CategoryDriver, 3},
		{models.CategoryBodyguard, 4},
		{models.CategoryVehicle, 1},
	}
	for _, tc := range cases {
		q, err := DurationQuantity(models.DurationHourly, models.BookingWindow{}, tc.category, policy)
		require.NoError(t, err)
		require.Equal(t, tc.want, q.Count, "category %s", tc.category)
	}
}

func TestDurationQuantityFixedTiers(t *testing.T) {
	cases := []struct {
		sel      models.DurationSelection
		wantUnit QuantityUnit
		want     int64
	}{
		{models.DurationHalfDay, QuantityHours, 12},
		{models.DurationFullDay, QuantityHours, 24},
		{models.DurationWeekly, QuantityDays, 7},
		{models.DurationMonthly, QuantityDays, 30},
	}
	for _, tc := range cases {
		q, err := DurationQuantity(tc.sel, models.BookingWindow{}, models.CategoryDriver, DefaultPolicy())
		require.NoError(t, err)
		require.Equal(t, tc.wantUnit, q.Unit)
		require.Equal(t, tc.want, q.Count)
	}
}

func TestDurationQuantityDateRangeInclusive(t *testing.T) {
	cases := []struct {
		name     string
		start    string
		end      string
		wantDays int64
	}{
		{"same day is one day", "2025-03-01", "2025-03-01", 1},
		{"two days", "2025-03-01", "2025-03-02", 2},
		{"full week", "2025-03-01", "2025-03-07", 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := window(t, tc.start, tc.end, "", "")
			q, err := DurationQuantity(models.DurationFullDay, w, models.CategoryVehicle, DefaultPolicy())
			require.NoError(t, err)
			require.Equal(t, QuantityDays, q.Unit)
			require.Equal(t, tc.wantDays, q.Count)
		})
	}
}

func TestDurationQuantityDateRangeReversed(t *testing.T) {
	w := window(t, "2025-03-05", "2025-03-01", "", "")
	_, err := DurationQuantity(models.DurationFullDay, w, models.CategoryVehicle, DefaultPolicy())
	require.ErrorIs(t, err, ErrInvalidWindow)
}

func TestResolveUnitRateMissing(t *testing.T) {
	off := driverOffering(2500)
	_, err := ResolveUnitRate(off, models.RateWeekly)
	require.ErrorIs(t, err, ErrMissingRate)

	var mre *MissingRateError
	require.True(t, errors.As(err, &mre))
	require.Equal(t, "drv-1", mre.OfferingID)
	require.Equal(t, models.RateWeekly, mre.Unit)
}

func TestGrossAmountDriverTiers(t *testing.T) {
	off := driverOffering(2500) // 25.00/h
	cases := []struct {
		sel  models.DurationSelection
		want models.Money
	}{
		{models.DurationHalfDay, 30000},   // 25 x 12
		{models.DurationFullDay, 60000},   // 25 x 24
		{models.DurationWeekly, 420000},   // 25 x 168
		{models.DurationMonthly, 1800000}, // 25 x 720
	}
	for _, tc := range cases {
		got, err := GrossAmount(off, tc.sel, models.BookingWindow{}, models.FuelIncluded, DefaultPolicy())
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "selection %s", tc.sel)
	}
}

func TestGrossAmountVehicleSameDayIsDailyRate(t *testing.T) {
	off := vehicleOffering(map[models.RateUnit]models.Money{models.RateDaily: 25000}, nil)
	w := window(t, "2025-03-01", "2025-03-01", "", "")
	got, err := GrossAmount(off, models.DurationFullDay, w, models.FuelIncluded, DefaultPolicy())
	require.NoError(t, err)
	require.Equal(t, models.Money(25000), got)
}

func TestGrossAmountVehicleWeeklyFallback(t *testing.T) {
	// No weekly rate on the offering: 250/day x 7 = 1750.
	off := vehicleOffering(map[models.RateUnit]models.Money{models.RateDaily: 25000}, nil)
	got, err := GrossAmount(off, models.DurationWeekly, models.BookingWindow{}, models.FuelIncluded, DefaultPolicy())
	require.NoError(t, err)
	require.Equal(t, models.Money(175000), got)
}

func TestGrossAmountVehicleWeeklyPrefersCatalog(t *testing.T) {
	off := vehicleOffering(map[models.RateUnit]models.Money{
		models.RateDaily:  25000,
		models.RateWeekly: 160000, // catalog disagrees with daily x 7 on purpose
	}, nil)
	got, err := GrossAmount(off, models.DurationWeekly, models.BookingWindow{}, models.FuelIncluded, DefaultPolicy())
	require.NoError(t, err)
	require.Equal(t, models.Money(160000), got)
}

func TestGrossAmountVehicleMonthlyFallback(t *testing.T) {
	off := vehicleOffering(map[models.RateUnit]models.Money{models.RateDaily: 25000}, nil)
	got, err := GrossAmount(off, models.DurationMonthly, models.BookingWindow{}, models.FuelIncluded, DefaultPolicy())
	require.NoError(t, err)
	require.Equal(t, models.Money(750000), got)
}

func TestGrossAmountVehicleHourlySlice(t *testing.T) {
	// 240/day => 10/h exactly; 3 hours = 30.00.
	off := vehicleOffering(map[models.RateUnit]models.Money{models.RateDaily: 24000}, nil)
	w := window(t, "2025-03-01", "", "09:00", "12:00")
	got, err := GrossAmount(off, models.DurationHourly, w, models.FuelIncluded, DefaultPolicy())
	require.NoError(t, err)
	require.Equal(t, models.Money(3000), got)
}

func TestGrossAmountVehicleHourlyRoundsUp(t *testing.T) {
	// 250/day => 10.4166../h; 3 hours = 3125.0 cents exactly? 25000*3/24 = 3125.
	// Use 5 hours: 25000*5/24 = 5208.33.. -> 5209 cents.
	off := vehicleOffering(map[models.RateUnit]models.Money{models.RateDaily: 25000}, nil)
	w := window(t, "2025-03-01", "", "09:00", "14:00")
	got, err := GrossAmount(off, models.DurationHourly, w, models.FuelIncluded, DefaultPolicy())
	require.NoError(t, err)
	require.Equal(t, models.Money(5209), got)
}

func TestGrossAmountVehicleFuelPaidSeparately(t *testing.T) {
	off := vehicleOffering(
		map[models.RateUnit]models.Money{models.RateDaily: 26000},
		map[models.RateUnit]models.Money{models.RateDaily: 5000},
	)
	w := window(t, "2025-03-01", "2025-03-01", "", "")
	got, err := GrossAmount(off, models.DurationFullDay, w, models.FuelPaySeparately, DefaultPolicy())
	require.NoError(t, err)
	require.Equal(t, models.Money(21000), got) // 260 - 50
}

func TestGrossAmountVehicleFuelNeverOnHourly(t *testing.T) {
	off := vehicleOffering(
		map[models.RateUnit]models.Money{models.RateDaily: 24000},
		map[models.RateUnit]models.Money{models.RateDaily: 5000},
	)
	w := window(t, "2025-03-01", "", "09:00", "12:00")
	got, err := GrossAmount(off, models.DurationHourly, w, models.FuelPaySeparately, DefaultPolicy())
	require.NoError(t, err)
	require.Equal(t, models.Money(3000), got) // surcharge untouched
}

func TestGrossAmountMissingRate(t *testing.T) {
	off := vehicleOffering(map[models.RateUnit]models.Money{models.RateWeekly: 160000}, nil)
	_, err := GrossAmount(off, models.DurationFullDay, models.BookingWindow{}, models.FuelIncluded, DefaultPolicy())
	require.ErrorIs(t, err, ErrMissingRate)
}

func TestApplyBundleDiscountGating(t *testing.T) {
	noVehicle := models.NewSelectionSet([]models.Category{models.CategoryDriver}, nil)
	withVehicleInCart := models.NewSelectionSet([]models.Category{models.CategoryVehicle}, nil)
	withVehicleBooked := models.NewSelectionSet(nil, []models.Category{models.CategoryVehicle})

	// No vehicle anywhere: no discount regardless of gross.
	d := ApplyBundleDiscount(models.CategoryDriver, 999999, noVehicle)
	require.Equal(t, models.Money(0), d.Amount)
	require.Equal(t, models.Money(999999), d.Net)

	// Bodyguard at 100.00 with a vehicle: 15 off, 85 net.
	d = ApplyBundleDiscount(models.CategoryBodyguard, 10000, withVehicleInCart)
	require.Equal(t, 0.15, d.Rate())
	require.Equal(t, models.Money(1500), d.Amount)
	require.Equal(t, models.Money(8500), d.Net)

	// Prior confirmed/completed booking counts the same as a cart entry.
	d = ApplyBundleDiscount(models.CategoryDriver, 10000, withVehicleBooked)
	require.Equal(t, models.Money(1000), d.Amount)

	// A vehicle line never discounts itself.
	d = ApplyBundleDiscount(models.CategoryVehicle, 10000, withVehicleInCart)
	require.Equal(t, models.Money(0), d.Amount)
	require.Equal(t, models.Money(10000), d.Net)
}

func TestApplyBundleDiscountIdempotent(t *testing.T) {
	set := models.NewSelectionSet([]models.Category{models.CategoryVehicle}, nil)
	first := ApplyBundleDiscount(models.CategoryBodyguard, 12345, set)
	second := ApplyBundleDiscount(models.CategoryBodyguard, 12345, set)
	require.Equal(t, first, second)
}

func TestPriceLineDriverHalfDayBundle(t *testing.T) {
	off := driverOffering(2500)
	set := models.NewSelectionSet([]models.Category{models.CategoryVehicle}, nil)

	line, err := PriceLine(QuoteInput{
		Offering:     off,
		Duration:     models.DurationHalfDay,
		SelectionSet: set,
	}, DefaultPolicy())
	require.NoError(t, err)

	require.Equal(t, models.Money(30000), line.GrossAmount) // 25 x 12
	require.Equal(t, 0.10, line.DiscountRate)
	require.Equal(t, models.Money(3000), line.DiscountAmount)
	require.Equal(t, models.Money(27000), line.NetAmount) // 270
	require.Equal(t, "USD", line.Currency)
	require.NotEmpty(t, line.ID)
}

func TestPriceLineFreshIDPerComputation(t *testing.T) {
	off := driverOffering(2500)
	in := QuoteInput{Offering: off, Duration: models.DurationHalfDay}

	a, err := PriceLine(in, DefaultPolicy())
	require.NoError(t, err)
	b, err := PriceLine(in, DefaultPolicy())
	require.NoError(t, err)
	require.NotEqual(t, a.ID, b.ID)

	// Everything except the identifier is deterministic.
	a.ID, b.ID = "", ""
	require.Equal(t, a, b)
}

func TestPriceLineUnitAmountAnchors(t *testing.T) {
	off := vehicleOffering(map[models.RateUnit]models.Money{
		models.RateDaily:  25000,
		models.RateWeekly: 160000,
	}, nil)

	line, err := PriceLine(QuoteInput{Offering: off, Duration: models.DurationWeekly}, DefaultPolicy())
	require.NoError(t, err)
	require.Equal(t, models.Money(160000), line.UnitAmount)
	require.Equal(t, models.Money(160000), line.GrossAmount)

	line, err = PriceLine(QuoteInput{Offering: off, Duration: models.DurationFullDay}, DefaultPolicy())
	require.NoError(t, err)
	require.Equal(t, models.Money(25000), line.UnitAmount)
}

func TestSupportedSelections(t *testing.T) {
	full := vehicleOffering(map[models.RateUnit]models.Money{models.RateDaily: 25000}, nil)
	require.Len(t, SupportedSelections(full), 5)

	weeklyOnly := vehicleOffering(map[models.RateUnit]models.Money{models.RateWeekly: 160000}, nil)
	require.Equal(t, []models.DurationSelection{models.DurationWeekly}, SupportedSelections(weeklyOnly))

	bare := bodyguardOffering(3000)
	bare.Rates = map[models.RateUnit]models.Money{}
	require.Empty(t, SupportedSelections(bare))
}

func TestBodyguardScenarioVehicleGate(t *testing.T) {
	// 30.00/h x 4h minimum = 120 gross; 15% with a vehicle = 102 net.
	off := bodyguardOffering(3000)
	set := models.NewSelectionSet(nil, []models.Category{models.CategoryVehicle})

	line, err := PriceLine(QuoteInput{Offering: off, Duration: models.DurationHourly, SelectionSet: set}, DefaultPolicy())
	require.NoError(t, err)
	require.Equal(t, models.Money(12000), line.GrossAmount)
	require.Equal(t, models.Money(10200), line.NetAmount)
}
