// Campaign commands for the opsdeck CLI.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/agencykit/opsdeck/internal/store"
	"github.com/agencykit/opsdeck/pkg/types"
)

var campaignCmd = &cobra.Command{
	Use:   "campaign",
	Short: "Manage campaigns",
	Long: fmt.Sprintf(`Manage marketing campaigns on the campaign board.

Board columns, in order: %s.`, strings.Join(types.CampaignStatuses, ", ")),
}

var (
	campaignName     string
	campaignClientID string
	campaignStatus   string
	campaignBudget   float64
	campaignStart    string
	campaignEnd      string
)

var campaignAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a campaign",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		startAt, err := parseDateFlag("start", campaignStart)
		if err != nil {
			failUser("add: %s", err)
		}
		endAt, err := parseDateFlag("end", campaignEnd)
		if err != nil {
			failUser("add: %s", err)
		}

		st, err := attachStore()
		if err != nil {
			failSys("add: %s", err)
		}
		defer st.Detach()

		draft := &types.Campaign{
			Name:     campaignName,
			ClientID: campaignClientID,
			Status:   campaignStatus,
			Budget:   campaignBudget,
			StartAt:  startAt,
			EndAt:    endAt,
		}
		saved, err := st.Campaigns().Add(draft)
		exitOnStoreErr("add", "", err)

		if flagJSON {
			return printJSON(saved)
		}
		fmt.Printf("Created campaign: %s\n", saved.ID)
		return nil
	},
}

// parseDateFlag parses an optional YYYY-MM-DD flag value.
func parseDateFlag(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q (expected YYYY-MM-DD)", name, value)
	}
	return &parsed, nil
}

func campaignLine(c *types.Campaign) string {
	return fmt.Sprintf("%s  %-28s %-10s R$ %.0f", c.ID, c.Name, c.Status, c.Budget)
}

func init() {
	campaignAddCmd.Flags().StringVar(&campaignName, "name", "", "campaign name (required)")
	campaignAddCmd.Flags().StringVar(&campaignClientID, "client", "", "client record ID")
	campaignAddCmd.Flags().StringVar(&campaignStatus, "status", types.CampaignPlanning, "board column")
	campaignAddCmd.Flags().Float64Var(&campaignBudget, "budget", 0, "campaign budget")
	campaignAddCmd.Flags().StringVar(&campaignStart, "start", "", "start date (YYYY-MM-DD)")
	campaignAddCmd.Flags().StringVar(&campaignEnd, "end", "", "end date (YYYY-MM-DD)")
	campaignAddCmd.MarkFlagRequired("name")

	campaignCmd.AddCommand(campaignAddCmd)
	campaignCmd.AddCommand(boardCommands("campaign", (*store.Store).Campaigns, campaignLine)...)
}
