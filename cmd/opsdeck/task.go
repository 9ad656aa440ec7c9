// Task commands for the opsdeck CLI.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/agencykit/opsdeck/internal/store"
	"github.com/agencykit/opsdeck/pkg/types"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage the task board",
	Long: fmt.Sprintf(`Manage tasks on the kanban board.

Board columns, in order: %s.`, strings.Join(types.TaskStatuses, ", ")),
}

var (
	taskTitle       string
	taskDescription string
	taskStatus      string
	taskAssignee    string
	taskProject     string
	taskPriority    string
	taskDue         string
)

var taskAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a task",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var due *time.Time
		if taskDue != "" {
			parsed, err := time.Parse("2006-01-02", taskDue)
			if err != nil {
				failUser("add: invalid --due %q (expected YYYY-MM-DD)", taskDue)
			}
			due = &parsed
		}

		st, err := attachStore()
		if err != nil {
			failSys("add: %s", err)
		}
		defer st.Detach()

		draft := &types.Task{
			Title:       taskTitle,
			Description: taskDescription,
			Status:      taskStatus,
			Assignee:    taskAssignee,
			Project:     taskProject,
			Priority:    taskPriority,
			DueAt:       due,
		}
		saved, err := st.Tasks().Add(draft)
		exitOnStoreErr("add", "", err)

		if flagJSON {
			return printJSON(saved)
		}
		fmt.Printf("Created task: %s\n", saved.ID)
		return nil
	},
}

func taskLine(t *types.Task) string {
	return fmt.Sprintf("%s  %-32s %-8s %s", t.ID, t.Title, t.Status, t.Priority)
}

func init() {
	taskAddCmd.Flags().StringVar(&taskTitle, "title", "", "task title (required)")
	taskAddCmd.Flags().StringVar(&taskDescription, "description", "", "task description")
	taskAddCmd.Flags().StringVar(&taskStatus, "status", types.TaskBacklog, "board column")
	taskAddCmd.Flags().StringVar(&taskAssignee, "assignee", "", "person responsible")
	taskAddCmd.Flags().StringVar(&taskProject, "project", "", "project name")
	taskAddCmd.Flags().StringVar(&taskPriority, "priority", types.PriorityMedium, "priority (low, medium, high, urgent)")
	taskAddCmd.Flags().StringVar(&taskDue, "due", "", "due date (YYYY-MM-DD)")
	taskAddCmd.MarkFlagRequired("title")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(boardCommands("task", (*store.Store).Tasks, taskLine)...)
}
