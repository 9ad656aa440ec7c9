// Client commands for the opsdeck CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agencykit/opsdeck/internal/store"
	"github.com/agencykit/opsdeck/pkg/types"
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Manage agency clients",
}

var (
	clientName    string
	clientCompany string
	clientEmail   string
	clientPhone   string
	clientMRR     float64
	clientStatus  string
)

var clientAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a client",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := attachStore()
		if err != nil {
			failSys("add: %s", err)
		}
		defer st.Detach()

		draft := &types.Client{
			Name:    clientName,
			Company: clientCompany,
			Email:   clientEmail,
			Phone:   clientPhone,
			MRR:     clientMRR,
			Status:  clientStatus,
		}
		saved, err := st.Clients().Add(draft)
		exitOnStoreErr("add", "", err)

		if flagJSON {
			return printJSON(saved)
		}
		fmt.Printf("Created client: %s\n", saved.ID)
		return nil
	},
}

func clientLine(c *types.Client) string {
	return fmt.Sprintf("%s  %-24s %-10s R$ %.0f/mo", c.ID, c.Name, c.Status, c.MRR)
}

func init() {
	clientAddCmd.Flags().StringVar(&clientName, "name", "", "client name (required)")
	clientAddCmd.Flags().StringVar(&clientCompany, "company", "", "company name")
	clientAddCmd.Flags().StringVar(&clientEmail, "email", "", "contact email")
	clientAddCmd.Flags().StringVar(&clientPhone, "phone", "", "contact phone")
	clientAddCmd.Flags().Float64Var(&clientMRR, "mrr", 0, "monthly recurring revenue")
	clientAddCmd.Flags().StringVar(&clientStatus, "status", types.ClientStatusActive, "client status (active, paused, churned)")
	clientAddCmd.MarkFlagRequired("name")

	clientCmd.AddCommand(clientAddCmd)
	clientCmd.AddCommand(flatCommands("client", (*store.Store).Clients, clientLine)...)
}
