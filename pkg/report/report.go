// Package report composes the metrics engine over store data into the
// KPI set the dashboard renders. Stock metrics answer "how much do we
// hold right now"; flow metrics answer "how much arrived this month".
package report

import (
	"sort"
	"time"

	"github.com/agencykit/opsdeck/pkg/metrics"
	"github.com/agencykit/opsdeck/pkg/types"
)

// Snapshot is the raw store data a report is computed from. Archived
// records must already be excluded; the store's Active views produce
// exactly that.
type Snapshot struct {
	Clients     []*types.Client
	Leads       []*types.Lead
	Tasks       []*types.Task
	Content     []*types.ContentItem
	Campaigns   []*types.Campaign
	Performance []*types.PerformanceEntry
}

// Dashboard is the KPI set of the main dashboard view.
type Dashboard struct {
	// Stock metrics.
	MRR           metrics.Metric `json:"mrr"`
	ActiveClients metrics.Metric `json:"active_clients"`
	PipelineValue metrics.Metric `json:"pipeline_value"`

	// Flow metrics.
	NewClients       metrics.Metric `json:"new_clients"`
	NewLeads         metrics.Metric `json:"new_leads"`
	SalesClosed      metrics.Metric `json:"sales_closed"`
	ContentPublished metrics.Metric `json:"content_published"`
}

// Build computes the dashboard KPIs from a snapshot. Pass
// metrics.WithNow to fix the reference month in tests.
func Build(snap Snapshot, opts ...metrics.Option) Dashboard {
	var (
		mrr      []metrics.Sample
		active   []time.Time
		pipeline []metrics.Sample
		clients  []time.Time
		leads    []time.Time
		closed   []metrics.Sample
		posted   []time.Time
	)

	for _, c := range snap.Clients {
		clients = append(clients, c.CreatedAt)
		if c.Active() {
			active = append(active, c.CreatedAt)
			mrr = append(mrr, metrics.Sample{At: c.CreatedAt, Value: c.MRR})
		}
	}

	for _, l := range snap.Leads {
		leads = append(leads, l.CreatedAt)
		if l.Open() {
			pipeline = append(pipeline, metrics.Sample{At: l.CreatedAt, Value: l.EstimatedValue})
		}
		if l.Stage == types.StageClosedWon {
			// UpdatedAt approximates the close date: winning a lead is
			// its final mutation on the pipeline board.
			closed = append(closed, metrics.Sample{At: l.UpdatedAt, Value: l.EstimatedValue})
		}
	}

	for _, item := range snap.Content {
		if item.Status == types.ContentPublished {
			posted = append(posted, item.PublishedAt())
		}
	}

	return Dashboard{
		MRR:           metrics.Stock(mrr, currency(opts)...),
		ActiveClients: metrics.Stock(metrics.Count(active), opts...),
		PipelineValue: metrics.Stock(pipeline, currency(opts)...),

		NewClients:       metrics.Flow(metrics.Count(clients), opts...),
		NewLeads:         metrics.Flow(metrics.Count(leads), opts...),
		SalesClosed:      metrics.Flow(closed, currency(opts)...),
		ContentPublished: metrics.Flow(metrics.Count(posted), opts...),
	}
}

func currency(opts []metrics.Option) []metrics.Option {
	out := make([]metrics.Option, 0, len(opts)+1)
	out = append(out, opts...)
	return append(out, metrics.AsCurrency())
}

// MonthRow is one month of the performance review table.
type MonthRow struct {
	Month          string  `json:"month"`
	Revenue        float64 `json:"revenue"`
	Expenses       float64 `json:"expenses"`
	NetResult      float64 `json:"net_result"`
	NewClients     int     `json:"new_clients"`
	ChurnedClients int     `json:"churned_clients"`
	LeadsGenerated int     `json:"leads_generated"`
}

// MonthlyReview orders the recorded performance entries chronologically
// and derives the net result per month.
func MonthlyReview(entries []*types.PerformanceEntry) []MonthRow {
	rows := make([]MonthRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, MonthRow{
			Month:          e.Month,
			Revenue:        e.Revenue,
			Expenses:       e.Expenses,
			NetResult:      e.Revenue - e.Expenses,
			NewClients:     e.NewClients,
			ChurnedClients: e.ChurnedClients,
			LeadsGenerated: e.LeadsGenerated,
		})
	}
	// Month keys ("2026-08") sort chronologically as strings.
	sort.Slice(rows, func(i, j int) bool { return rows[i].Month < rows[j].Month })
	return rows
}
