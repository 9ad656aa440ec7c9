package metrics

// Stock computes a point-in-time cumulative metric compared against an
// estimate of its value at the start of the current month.
//
// The current value is the sum over all samples. The baseline is the
// current value minus the contribution of samples dated in the current
// calendar month, which models "the stock before this month's adds".
// The baseline does not account for removals within the month, so a
// month with churn overstates growth. That approximation is intentional
// and kept; callers wanting exact baselines must record them per period
// and use Flow against measured data instead.
//
// Callers select which records count (for example, only active clients)
// by filtering before projecting to samples.
func Stock(samples []Sample, opts ...Option) Metric {
	s := applyOptions(opts)

	var current, growth float64
	for _, sample := range samples {
		current += sample.Value
		if sameMonth(sample.At, s.now) {
			growth += sample.Value
		}
	}
	previous := current - growth

	numeric, trend, change := trendOf(current, previous)
	return Metric{
		Value:        current,
		Formatted:    formatValue(current, s.currency),
		Change:       change,
		Trend:        trend,
		NumericTrend: numeric,
	}
}
