// Content calendar commands for the opsdeck CLI.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/agencykit/opsdeck/internal/store"
	"github.com/agencykit/opsdeck/pkg/types"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Manage the content calendar",
	Long: fmt.Sprintf(`Manage content items on the calendar board.

Calendar columns, in order: %s.`, strings.Join(types.ContentStatuses, ", ")),
}

var (
	contentTitle    string
	contentChannel  string
	contentStatus   string
	contentClientID string
	contentPublish  string
)

var contentAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a content item",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var publishAt *time.Time
		if contentPublish != "" {
			parsed, err := time.Parse("2006-01-02", contentPublish)
			if err != nil {
				failUser("add: invalid --publish-at %q (expected YYYY-MM-DD)", contentPublish)
			}
			publishAt = &parsed
		}

		st, err := attachStore()
		if err != nil {
			failSys("add: %s", err)
		}
		defer st.Detach()

		draft := &types.ContentItem{
			Title:     contentTitle,
			Channel:   contentChannel,
			Status:    contentStatus,
			ClientID:  contentClientID,
			PublishAt: publishAt,
		}
		saved, err := st.Content().Add(draft)
		exitOnStoreErr("add", "", err)

		if flagJSON {
			return printJSON(saved)
		}
		fmt.Printf("Created content item: %s\n", saved.ID)
		return nil
	},
}

func contentLine(c *types.ContentItem) string {
	return fmt.Sprintf("%s  %-32s %-10s %s", c.ID, c.Title, c.Status, c.Channel)
}

func init() {
	contentAddCmd.Flags().StringVar(&contentTitle, "title", "", "content title (required)")
	contentAddCmd.Flags().StringVar(&contentChannel, "channel", "", "publishing channel")
	contentAddCmd.Flags().StringVar(&contentStatus, "status", types.ContentIdea, "calendar column")
	contentAddCmd.Flags().StringVar(&contentClientID, "client", "", "client record ID")
	contentAddCmd.Flags().StringVar(&contentPublish, "publish-at", "", "planned publish date (YYYY-MM-DD)")
	contentAddCmd.MarkFlagRequired("title")

	contentCmd.AddCommand(contentAddCmd)
	contentCmd.AddCommand(boardCommands("content", (*store.Store).Content, contentLine)...)
}
