package metrics

import "time"

// Flow computes a rate metric: the amount that arrived in the current
// calendar month compared against the amount from the previous calendar
// month. The two partitions are disjoint; there is no stock carry-over.
// The December to January rollover is handled by month arithmetic on the
// first of the current month.
func Flow(samples []Sample, opts ...Option) Metric {
	s := applyOptions(opts)

	prevMonth := firstOfMonth(s.now).AddDate(0, -1, 0)

	var current, previous float64
	for _, sample := range samples {
		switch {
		case sameMonth(sample.At, s.now):
			current += sample.Value
		case sameMonth(sample.At, prevMonth):
			previous += sample.Value
		}
	}

	numeric, trend, change := trendOf(current, previous)
	return Metric{
		Value:        current,
		Formatted:    formatValue(current, s.currency),
		Change:       change,
		Trend:        trend,
		NumericTrend: numeric,
	}
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
