// Package metrics computes period-over-period trend metrics for the
// dashboard and performance reports.
//
// Two comparison strategies are deliberately kept as separate functions.
// Stock compares a cumulative total ("how much do we hold right now",
// such as active MRR) against an estimate of its value at the start of
// the month. Flow compares an amount that arrived within this calendar
// month ("how much came in", such as new leads) against the equivalent
// amount from the previous month. Their baselines differ fundamentally:
// a stock baseline is derived from the current total, a flow baseline is
// measured independently. Conflating the two silently produces
// misleading trends.
package metrics
