// Meeting commands for the opsdeck CLI.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/agencykit/opsdeck/internal/store"
	"github.com/agencykit/opsdeck/pkg/types"
)

var meetingCmd = &cobra.Command{
	Use:   "meeting",
	Short: "Manage meetings",
}

var (
	meetingTitle     string
	meetingAt        string
	meetingAttendees string
	meetingAgenda    string
	meetingNotes     string
)

var meetingAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a meeting",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		scheduledAt, err := time.Parse("2006-01-02 15:04", meetingAt)
		if err != nil {
			failUser("add: invalid --at %q (expected \"YYYY-MM-DD HH:MM\")", meetingAt)
		}

		st, err := attachStore()
		if err != nil {
			failSys("add: %s", err)
		}
		defer st.Detach()

		draft := &types.Meeting{
			Title:       meetingTitle,
			ScheduledAt: scheduledAt,
			Attendees:   splitList(meetingAttendees),
			Agenda:      splitList(meetingAgenda),
			Notes:       meetingNotes,
		}
		saved, err := st.Meetings().Add(draft)
		exitOnStoreErr("add", "", err)

		if flagJSON {
			return printJSON(saved)
		}
		fmt.Printf("Created meeting: %s\n", saved.ID)
		return nil
	},
}

// splitList parses a comma-separated flag value into trimmed entries.
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func meetingLine(m *types.Meeting) string {
	return fmt.Sprintf("%s  %-32s %s", m.ID, m.Title, m.ScheduledAt.Format("2006-01-02 15:04"))
}

func init() {
	meetingAddCmd.Flags().StringVar(&meetingTitle, "title", "", "meeting title (required)")
	meetingAddCmd.Flags().StringVar(&meetingAt, "at", "", "scheduled time, \"YYYY-MM-DD HH:MM\" (required)")
	meetingAddCmd.Flags().StringVar(&meetingAttendees, "attendees", "", "comma-separated attendees")
	meetingAddCmd.Flags().StringVar(&meetingAgenda, "agenda", "", "comma-separated agenda items")
	meetingAddCmd.Flags().StringVar(&meetingNotes, "notes", "", "meeting notes")
	meetingAddCmd.MarkFlagRequired("title")
	meetingAddCmd.MarkFlagRequired("at")

	meetingCmd.AddCommand(meetingAddCmd)
	meetingCmd.AddCommand(flatCommands("meeting", (*store.Store).Meetings, meetingLine)...)
}
