// SOP library commands for the opsdeck CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agencykit/opsdeck/internal/store"
	"github.com/agencykit/opsdeck/pkg/types"
)

var sopCmd = &cobra.Command{
	Use:   "sop",
	Short: "Manage the SOP library",
	Long: `Manage standard operating procedure documents.

Documents are grouped by free-form category; a category exists as soon
as its first document does.`,
}

var (
	sopTitle    string
	sopCategory string
	sopBody     string
)

var sopAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a SOP document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := attachStore()
		if err != nil {
			failSys("add: %s", err)
		}
		defer st.Detach()

		draft := &types.SOPItem{
			Title:    sopTitle,
			Category: sopCategory,
			Body:     sopBody,
		}
		saved, err := st.SOPs().Add(draft)
		exitOnStoreErr("add", "", err)

		if flagJSON {
			return printJSON(saved)
		}
		fmt.Printf("Created SOP: %s\n", saved.ID)
		return nil
	},
}

func sopLine(s *types.SOPItem) string {
	return fmt.Sprintf("%s  %-32s %s", s.ID, s.Title, s.Category)
}

func init() {
	sopAddCmd.Flags().StringVar(&sopTitle, "title", "", "document title (required)")
	sopAddCmd.Flags().StringVar(&sopCategory, "category", "", "library category (required)")
	sopAddCmd.Flags().StringVar(&sopBody, "body", "", "document body")
	sopAddCmd.MarkFlagRequired("title")
	sopAddCmd.MarkFlagRequired("category")

	sopCmd.AddCommand(sopAddCmd)
	sopCmd.AddCommand(boardCommands("sop", (*store.Store).SOPs, sopLine)...)
}
