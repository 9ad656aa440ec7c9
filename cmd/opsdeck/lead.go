// Lead commands for the opsdeck CLI.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agencykit/opsdeck/internal/store"
	"github.com/agencykit/opsdeck/pkg/types"
)

var leadCmd = &cobra.Command{
	Use:   "lead",
	Short: "Manage the CRM pipeline",
	Long: fmt.Sprintf(`Manage leads on the CRM pipeline board.

Pipeline stages, in board order: %s.`, strings.Join(types.Stages, ", ")),
}

var (
	leadName    string
	leadCompany string
	leadEmail   string
	leadPhone   string
	leadStage   string
	leadValue   float64
	leadSource  string
)

var leadAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a lead",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := attachStore()
		if err != nil {
			failSys("add: %s", err)
		}
		defer st.Detach()

		draft := &types.Lead{
			Name:           leadName,
			Company:        leadCompany,
			Email:          leadEmail,
			Phone:          leadPhone,
			Stage:          leadStage,
			EstimatedValue: leadValue,
			Source:         leadSource,
		}
		saved, err := st.Leads().Add(draft)
		exitOnStoreErr("add", "", err)

		if flagJSON {
			return printJSON(saved)
		}
		fmt.Printf("Created lead: %s\n", saved.ID)
		return nil
	},
}

func leadLine(l *types.Lead) string {
	return fmt.Sprintf("%s  %-24s %-14s R$ %.0f", l.ID, l.Name, l.Stage, l.EstimatedValue)
}

func init() {
	leadAddCmd.Flags().StringVar(&leadName, "name", "", "lead name (required)")
	leadAddCmd.Flags().StringVar(&leadCompany, "company", "", "company name")
	leadAddCmd.Flags().StringVar(&leadEmail, "email", "", "contact email")
	leadAddCmd.Flags().StringVar(&leadPhone, "phone", "", "contact phone")
	leadAddCmd.Flags().StringVar(&leadStage, "stage", types.StageProspect, "pipeline stage")
	leadAddCmd.Flags().Float64Var(&leadValue, "value", 0, "estimated deal value")
	leadAddCmd.Flags().StringVar(&leadSource, "source", "", "lead source")
	leadAddCmd.MarkFlagRequired("name")

	leadCmd.AddCommand(leadAddCmd)
	leadCmd.AddCommand(boardCommands("lead", (*store.Store).Leads, leadLine)...)
}
