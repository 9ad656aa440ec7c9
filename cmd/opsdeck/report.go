// Report commands for the opsdeck CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agencykit/opsdeck/pkg/metrics"
	"github.com/agencykit/opsdeck/pkg/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the dashboard KPI report",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := attachStore()
		if err != nil {
			failSys("report: %s", err)
		}
		defer st.Detach()

		snap, err := st.Snapshot()
		if err != nil {
			failSys("report: %s", err)
		}
		dash := report.Build(snap)

		if flagJSON {
			return printJSON(dash)
		}

		fmt.Println("Dashboard")
		printKPI("MRR", dash.MRR)
		printKPI("Active clients", dash.ActiveClients)
		printKPI("Pipeline value", dash.PipelineValue)
		printKPI("New clients", dash.NewClients)
		printKPI("New leads", dash.NewLeads)
		printKPI("Sales closed", dash.SalesClosed)
		printKPI("Content published", dash.ContentPublished)
		return nil
	},
}

var reportMonthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Print the monthly performance review",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := attachStore()
		if err != nil {
			failSys("report: %s", err)
		}
		defer st.Detach()

		entries, err := st.Performance().Active()
		if err != nil {
			failSys("report: %s", err)
		}
		rows := report.MonthlyReview(entries)

		if flagJSON {
			return printJSON(rows)
		}

		fmt.Printf("%-8s %12s %12s %12s %8s %8s %8s\n",
			"month", "revenue", "expenses", "net", "new", "churned", "leads")
		for _, row := range rows {
			fmt.Printf("%-8s %12.0f %12.0f %12.0f %8d %8d %8d\n",
				row.Month, row.Revenue, row.Expenses, row.NetResult,
				row.NewClients, row.ChurnedClients, row.LeadsGenerated)
		}
		return nil
	},
}

func printKPI(label string, m metrics.Metric) {
	fmt.Printf("  %-20s %-16s %s\n", label, m.Formatted, renderTrend(m))
}

func init() {
	reportCmd.AddCommand(reportMonthlyCmd)
}
