package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fixed reference instant for month bucketing: mid-August 2026.
var now = time.Date(2026, time.August, 15, 10, 0, 0, 0, time.UTC)

func thisMonth(day int) time.Time {
	return time.Date(2026, time.August, day, 12, 0, 0, 0, time.UTC)
}

func lastMonth(day int) time.Time {
	return time.Date(2026, time.July, day, 12, 0, 0, 0, time.UTC)
}

func TestStockEmptyInputIsNeutralZero(t *testing.T) {
	m := Stock(nil, WithNow(now), AsCurrency())

	assert.Equal(t, 0.0, m.Value)
	assert.Equal(t, "R$ 0", m.Formatted)
	assert.Equal(t, "0%", m.Change)
	assert.Equal(t, TrendNeutral, m.Trend)
	assert.Equal(t, 0.0, m.NumericTrend)
}

func TestStockEmergenceFromZero(t *testing.T) {
	samples := []Sample{{At: thisMonth(3), Value: 1000}}
	m := Stock(samples, WithNow(now), AsCurrency())

	assert.Equal(t, 1000.0, m.Value)
	assert.Equal(t, "R$ 1.000", m.Formatted)
	assert.Equal(t, 100.0, m.NumericTrend)
	assert.Equal(t, TrendUp, m.Trend)
	assert.Equal(t, "100%", m.Change)
}

func TestStockNoGrowthThisMonth(t *testing.T) {
	samples := []Sample{{At: lastMonth(20), Value: 1000}}
	m := Stock(samples, WithNow(now), AsCurrency())

	assert.Equal(t, 1000.0, m.Value)
	assert.Equal(t, 0.0, m.NumericTrend)
	assert.Equal(t, TrendNeutral, m.Trend)
	assert.Equal(t, "0%", m.Change)
}

func TestStockPartialGrowth(t *testing.T) {
	// Stock of 3000, of which 1000 arrived this month: +50% on a
	// baseline of 2000.
	samples := []Sample{
		{At: lastMonth(1), Value: 1200},
		{At: lastMonth(9), Value: 800},
		{At: thisMonth(2), Value: 1000},
	}
	m := Stock(samples, WithNow(now), AsCurrency())

	assert.Equal(t, 3000.0, m.Value)
	assert.Equal(t, "R$ 3.000", m.Formatted)
	assert.InDelta(t, 50.0, m.NumericTrend, 1e-9)
	assert.Equal(t, TrendUp, m.Trend)
	assert.Equal(t, "50%", m.Change)
}

func TestStockCountMode(t *testing.T) {
	samples := Count([]time.Time{lastMonth(5), lastMonth(12), thisMonth(1)})
	m := Stock(samples, WithNow(now))

	assert.Equal(t, 3.0, m.Value)
	assert.Equal(t, "3", m.Formatted)
	assert.InDelta(t, 50.0, m.NumericTrend, 1e-9)
	assert.Equal(t, TrendUp, m.Trend)
}

func TestFlowMonthOverMonth(t *testing.T) {
	samples := Count([]time.Time{
		thisMonth(1), thisMonth(8), thisMonth(14),
		lastMonth(22),
	})
	m := Flow(samples, WithNow(now))

	assert.Equal(t, 3.0, m.Value)
	assert.Equal(t, "3", m.Formatted)
	assert.InDelta(t, 200.0, m.NumericTrend, 1e-9)
	assert.Equal(t, TrendUp, m.Trend)
	assert.Equal(t, "200%", m.Change)
}

func TestFlowDecline(t *testing.T) {
	samples := Count([]time.Time{
		thisMonth(4),
		lastMonth(2), lastMonth(10), lastMonth(18), lastMonth(25),
	})
	m := Flow(samples, WithNow(now))

	assert.Equal(t, 1.0, m.Value)
	assert.InDelta(t, -75.0, m.NumericTrend, 1e-9)
	assert.Equal(t, TrendDown, m.Trend)
	assert.Equal(t, "75%", m.Change)
}

func TestFlowYearRollover(t *testing.T) {
	january := time.Date(2027, time.January, 10, 9, 0, 0, 0, time.UTC)
	samples := Count([]time.Time{
		time.Date(2027, time.January, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2027, time.January, 8, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.December, 28, 0, 0, 0, 0, time.UTC),
	})
	m := Flow(samples, WithNow(january))

	assert.Equal(t, 2.0, m.Value)
	assert.InDelta(t, 100.0, m.NumericTrend, 1e-9)
	assert.Equal(t, TrendUp, m.Trend)
}

func TestFlowIgnoresOlderMonths(t *testing.T) {
	samples := Count([]time.Time{
		thisMonth(3),
		time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC),
	})
	m := Flow(samples, WithNow(now))

	// Only the current month counts; the previous month is empty, so
	// this is emergence from zero.
	assert.Equal(t, 1.0, m.Value)
	assert.Equal(t, 100.0, m.NumericTrend)
	assert.Equal(t, "100%", m.Change)
}

func TestChangeRoundsToNearestInteger(t *testing.T) {
	// 2 this month over 3 last month: -33.33...% renders as 33%.
	samples := Count([]time.Time{
		thisMonth(1), thisMonth(2),
		lastMonth(1), lastMonth(2), lastMonth(3),
	})
	m := Flow(samples, WithNow(now))

	assert.Equal(t, "33%", m.Change)
	assert.Equal(t, TrendDown, m.Trend)
}

func TestCurrencyFormatting(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "R$ 0"},
		{950, "R$ 950"},
		{1000, "R$ 1.000"},
		{1234567, "R$ 1.234.567"},
	}
	for _, tt := range tests {
		samples := []Sample{{At: lastMonth(1), Value: tt.value}}
		m := Stock(samples, WithNow(now), AsCurrency())
		assert.Equal(t, tt.want, m.Formatted)
	}
}
