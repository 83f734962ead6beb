package dashboard

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

const day = 24 * time.Hour

// ValidateDateRange is false only when both ends are set and start > end.
func ValidateDateRange(r DateRange) bool {
	if r.Start == nil || r.End == nil {
		return true
	}
	return !r.Start.After(*r.End)
}

// DefaultDateRange covers the 30 days ending at now.
func DefaultDateRange(now time.Time) DateRange {
	start := now.AddDate(0, 0, -30)
	return DateRange{Start: &start, End: &now}
}

// ParseDateRange reads optional "2006-01-02" or RFC3339 bounds. A date-only
// end is widened to the last instant of that day so the bound stays inclusive.
func ParseDateRange(start, end string) (DateRange, error) {
	var r DateRange
	if start != "" {
		t, _, err := parseDate(start)
		if err != nil {
			return r, fmt.Errorf("startDate: %w", err)
		}
		r.Start = &t
	}
	if end != "" {
		t, dateOnly, err := parseDate(end)
		if err != nil {
			return r, fmt.Errorf("endDate: %w", err)
		}
		if dateOnly {
			t = t.Add(day - time.Nanosecond)
		}
		r.End = &t
	}
	return r, nil
}

func parseDate(s string) (time.Time, bool, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, true, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	return t, false, err
}

// DaysUntilHarvest is ceil((date - now) / 1 day); negative once overdue.
func DaysUntilHarvest(date, now time.Time) int {
	return int(math.Ceil(float64(date.Sub(now)) / float64(day)))
}

// ProfitMargin is (income - expenses) / income * 100 rounded to 2 places, 0 without income.
func ProfitMargin(income, expenses float64) float64 {
	if income == 0 {
		return 0
	}
	return Round2((income - expenses) / income * 100)
}

// PercentageChange from previous to current. With no previous value any
// positive current counts as a full 100% rise.
func PercentageChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return Round2((current - previous) / previous * 100)
}

func Round2(v float64) float64 { return math.Round(v*100) / 100 }

// FormatCurrency renders a USD amount with grouping, e.g. "$1,234.50".
func FormatCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + "$" + humanize.FormatFloat("#,###.##", amount)
}

// FormatLargeNumber abbreviates with K/M suffixes: 1500 -> "1.5K", 2300000 -> "2.3M".
func FormatLargeNumber(n float64) string {
	abs := math.Abs(n)
	switch {
	case abs >= 1_000_000:
		return strconv.FormatFloat(n/1_000_000, 'f', 1, 64) + "M"
	case abs >= 1_000:
		return strconv.FormatFloat(n/1_000, 'f', 1, 64) + "K"
	default:
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
}

// ISO renders t as an RFC3339 UTC timestamp with milliseconds.
func ISO(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
