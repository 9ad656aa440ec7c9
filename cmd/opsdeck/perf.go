// Performance entry commands for the opsdeck CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agencykit/opsdeck/internal/store"
	"github.com/agencykit/opsdeck/pkg/types"
)

var perfCmd = &cobra.Command{
	Use:   "perf",
	Short: "Record monthly performance entries",
}

var (
	perfMonth    string
	perfRevenue  float64
	perfExpenses float64
	perfNew      int
	perfChurned  int
	perfLeads    int
)

var perfAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record one month of performance",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := attachStore()
		if err != nil {
			failSys("add: %s", err)
		}
		defer st.Detach()

		draft := &types.PerformanceEntry{
			Month:          perfMonth,
			Revenue:        perfRevenue,
			Expenses:       perfExpenses,
			NewClients:     perfNew,
			ChurnedClients: perfChurned,
			LeadsGenerated: perfLeads,
		}
		saved, err := st.Performance().Add(draft)
		exitOnStoreErr("add", "", err)

		if flagJSON {
			return printJSON(saved)
		}
		fmt.Printf("Recorded %s: %s\n", saved.Month, saved.ID)
		return nil
	},
}

func perfLine(p *types.PerformanceEntry) string {
	return fmt.Sprintf("%s  %s  revenue R$ %.0f  expenses R$ %.0f  net R$ %.0f",
		p.ID, p.Month, p.Revenue, p.Expenses, p.Revenue-p.Expenses)
}

func init() {
	perfAddCmd.Flags().StringVar(&perfMonth, "month", "", "month key, YYYY-MM (required)")
	perfAddCmd.Flags().Float64Var(&perfRevenue, "revenue", 0, "total revenue")
	perfAddCmd.Flags().Float64Var(&perfExpenses, "expenses", 0, "total expenses")
	perfAddCmd.Flags().IntVar(&perfNew, "new-clients", 0, "clients gained")
	perfAddCmd.Flags().IntVar(&perfChurned, "churned-clients", 0, "clients lost")
	perfAddCmd.Flags().IntVar(&perfLeads, "leads", 0, "leads generated")
	perfAddCmd.MarkFlagRequired("month")

	perfCmd.AddCommand(perfAddCmd)
	perfCmd.AddCommand(flatCommands("perf", (*store.Store).Performance, perfLine)...)
}
