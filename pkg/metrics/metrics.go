package metrics

import (
	"fmt"
	"math"
	"time"
)

// Trend is the direction of a period-over-period change.
type Trend string

// Trend directions.
const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

// Sample is one record projected for aggregation: a timestamp and the
// value it contributes. Count-based metrics use unit samples (see Count).
type Sample struct {
	At    time.Time
	Value float64
}

// Metric is a computed trend metric ready for rendering.
type Metric struct {
	// Value is the current-period aggregate.
	Value float64 `json:"value"`
	// Formatted is Value rendered for display: a pt-BR currency string
	// without cents for currency metrics, an integer string otherwise.
	Formatted string `json:"formatted"`
	// Change is the absolute percentage change rounded to the nearest
	// integer, rendered as "<n>%". The sign is carried by Trend.
	Change string `json:"change"`
	// Trend is the direction of the change.
	Trend Trend `json:"trend"`
	// NumericTrend is the signed percentage change.
	NumericTrend float64 `json:"numeric_trend"`
}

// Option adjusts how a metric is computed.
type Option func(*settings)

type settings struct {
	now      time.Time
	currency bool
}

// WithNow fixes the reference time used to bucket samples into calendar
// months. Defaults to time.Now.
func WithNow(now time.Time) Option {
	return func(s *settings) { s.now = now }
}

// AsCurrency renders Formatted as a BRL currency string.
func AsCurrency() Option {
	return func(s *settings) { s.currency = true }
}

func applyOptions(opts []Option) settings {
	s := settings{now: time.Now()}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Count converts timestamps to unit samples for count-based metrics.
func Count(times []time.Time) []Sample {
	samples := make([]Sample, len(times))
	for i, at := range times {
		samples[i] = Sample{At: at, Value: 1}
	}
	return samples
}

// sameMonth reports whether a and b fall in the same calendar month and
// year, in local time.
func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// trendOf computes the signed percentage change of current against
// previous. Emergence from a zero baseline counts as +100%, not
// infinity; zero against zero is a flat 0%.
func trendOf(current, previous float64) (numeric float64, trend Trend, change string) {
	switch {
	case previous > 0:
		numeric = (current - previous) / previous * 100
	case current > 0:
		numeric = 100
	}

	trend = TrendNeutral
	if numeric > 0 {
		trend = TrendUp
	} else if numeric < 0 {
		trend = TrendDown
	}

	change = fmt.Sprintf("%d%%", int(math.Round(math.Abs(numeric))))
	return numeric, trend, change
}
