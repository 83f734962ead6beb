package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDateRange(t *testing.T) {
	a := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	b := a.AddDate(0, 1, 0)

	assert.True(t, ValidateDateRange(DateRange{}))
	assert.True(t, ValidateDateRange(DateRange{Start: &a}))
	assert.True(t, ValidateDateRange(DateRange{End: &a}))
	assert.True(t, ValidateDateRange(DateRange{Start: &a, End: &b}))
	assert.True(t, ValidateDateRange(DateRange{Start: &a, End: &a}), "equal bounds are valid")
	assert.False(t, ValidateDateRange(DateRange{Start: &b, End: &a}))
}

func TestDefaultDateRange(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	r := DefaultDateRange(now)

	require.NotNil(t, r.Start)
	require.NotNil(t, r.End)
	assert.Equal(t, now, *r.End)
	assert.Equal(t, time.Date(2026, 9, 16, 12, 0, 0, 0, time.UTC), *r.Start)
}

func TestParseDateRange(t *testing.T) {
	r, err := ParseDateRange("2026-03-01", "2026-03-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), *r.Start)
	assert.Equal(t, time.Date(2026, 3, 31, 23, 59, 59, 999999999, time.UTC), *r.End)

	r, err = ParseDateRange("", "2026-03-31T10:00:00Z")
	require.NoError(t, err)
	assert.Nil(t, r.Start)
	assert.Equal(t, time.Date(2026, 3, 31, 10, 0, 0, 0, time.UTC), *r.End)

	_, err = ParseDateRange("yesterday", "")
	assert.ErrorContains(t, err, "startDate")
}

func TestDaysUntilHarvest(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, DaysUntilHarvest(now.Add(time.Hour), now), "partial day rounds up")
	assert.Equal(t, 7, DaysUntilHarvest(now.AddDate(0, 0, 7), now))
	assert.Equal(t, 0, DaysUntilHarvest(now, now))
	assert.Equal(t, -3, DaysUntilHarvest(now.AddDate(0, 0, -3), now), "overdue is negative")
}

func TestProfitMargin(t *testing.T) {
	assert.Equal(t, 75.0, ProfitMargin(800, 200))
	assert.Equal(t, 0.0, ProfitMargin(0, 500), "no income, no margin")
	assert.Equal(t, -50.0, ProfitMargin(100, 150))
	assert.Equal(t, 33.33, ProfitMargin(300, 200))
}

func TestPercentageChange(t *testing.T) {
	assert.Equal(t, 100.0, PercentageChange(5, 0))
	assert.Equal(t, 0.0, PercentageChange(0, 0))
	assert.Equal(t, 0.0, PercentageChange(-4, 0))
	assert.Equal(t, 50.0, PercentageChange(150, 100))
	assert.Equal(t, -25.0, PercentageChange(75, 100))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$1,234.50", FormatCurrency(1234.5))
	assert.Equal(t, "$0.00", FormatCurrency(0))
	assert.Equal(t, "-$1,000,000.00", FormatCurrency(-1_000_000))
}

func TestFormatLargeNumber(t *testing.T) {
	assert.Equal(t, "999", FormatLargeNumber(999))
	assert.Equal(t, "1.5K", FormatLargeNumber(1500))
	assert.Equal(t, "2.3M", FormatLargeNumber(2_300_000))
	assert.Equal(t, "-4.0K", FormatLargeNumber(-4000))
	assert.Equal(t, "12.5", FormatLargeNumber(12.5))
}

func TestISO(t *testing.T) {
	ts := time.Date(2026, 10, 16, 8, 30, 0, 0, time.FixedZone("EAT", 3*3600))
	assert.Equal(t, "2026-10-16T05:30:00.000Z", ISO(ts))
}
