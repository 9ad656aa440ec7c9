// Generic subcommands shared by every record kind. Each kind assembles
// its command group from these builders plus a kind-specific add command.
package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agencykit/opsdeck/internal/store"
	"github.com/agencykit/opsdeck/pkg/types"
)

// collectionOf selects a collection accessor on an attached store.
type collectionOf[T types.Entity] func(*store.Store) *store.Collection[T]

// exitOnStoreErr maps store errors to CLI exit behavior. User mistakes
// (missing records, invalid scopes) exit with the user-error code;
// everything else is a system error.
func exitOnStoreErr(op, id string, err error) {
	switch {
	case err == nil:
	case errors.Is(err, types.ErrNotFound):
		failUser("%s: record %q not found", op, id)
	case errors.Is(err, types.ErrRecordArchived),
		errors.Is(err, types.ErrNotArchived),
		errors.Is(err, types.ErrInvalidScope),
		errors.Is(err, types.ErrInvalidID),
		errors.Is(err, types.ErrInvalidData):
		failUser("%s: %s", op, err)
	default:
		failSys("%s: %s", op, err)
	}
}

func newListCmd[T types.Entity](kind string, coll collectionOf[T], line func(T) string) *cobra.Command {
	var (
		scope    string
		archived bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %s records", kind),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := attachStore()
			if err != nil {
				failSys("list: %s", err)
			}
			defer st.Detach()

			c := coll(st)
			var items []T
			switch {
			case archived:
				items, err = c.Archived()
			case cmd.Flags().Changed("scope"):
				items, err = c.InScope(scope)
			default:
				items, err = c.Active()
			}
			if err != nil {
				failSys("list: %s", err)
			}

			if flagJSON {
				return printJSON(items)
			}
			for _, item := range items {
				fmt.Println(line(item))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&scope, "scope", "", "only records in this scope")
	cmd.Flags().BoolVar(&archived, "archived", false, "list archived records instead of active ones")
	return cmd
}

func newShowCmd[T types.Entity](kind string, coll collectionOf[T]) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: fmt.Sprintf("Display a %s record as JSON", kind),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := attachStore()
			if err != nil {
				failSys("show: %s", err)
			}
			defer st.Detach()

			rec, err := coll(st).Get(args[0])
			exitOnStoreErr("show", args[0], err)
			return printJSON(rec)
		},
	}
}

func newReorderCmd[T types.Entity](kind string, coll collectionOf[T]) *cobra.Command {
	return &cobra.Command{
		Use:   "reorder <id> <index>",
		Short: fmt.Sprintf("Move a %s record to an index within its scope", kind),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := strconv.Atoi(args[1])
			if err != nil {
				failUser("reorder: index %q is not a number", args[1])
			}

			st, err := attachStore()
			if err != nil {
				failSys("reorder: %s", err)
			}
			defer st.Detach()

			err = coll(st).Reorder(args[0], target)
			exitOnStoreErr("reorder", args[0], err)

			fmt.Printf("Reordered %s\n", args[0])
			return nil
		},
	}
}

func newMoveCmd[T types.Entity](kind string, coll collectionOf[T]) *cobra.Command {
	return &cobra.Command{
		Use:   "move <id> <scope> [index]",
		Short: fmt.Sprintf("Move a %s record to another scope", kind),
		Long:  "Move places the record in the destination scope at the given index, or at the tail when the index is omitted.",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			index := -1
			if len(args) == 3 {
				var err error
				index, err = strconv.Atoi(args[2])
				if err != nil {
					failUser("move: index %q is not a number", args[2])
				}
			}

			st, err := attachStore()
			if err != nil {
				failSys("move: %s", err)
			}
			defer st.Detach()

			err = coll(st).Move(args[0], args[1], index)
			exitOnStoreErr("move", args[0], err)

			fmt.Printf("Moved %s to %s\n", args[0], args[1])
			return nil
		},
	}
}

func newArchiveCmd[T types.Entity](kind string, coll collectionOf[T]) *cobra.Command {
	return &cobra.Command{
		Use:   "archive <id>",
		Short: fmt.Sprintf("Archive a %s record", kind),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := attachStore()
			if err != nil {
				failSys("archive: %s", err)
			}
			defer st.Detach()

			err = coll(st).Archive(args[0])
			exitOnStoreErr("archive", args[0], err)

			fmt.Printf("Archived %s\n", args[0])
			return nil
		},
	}
}

func newRestoreCmd[T types.Entity](kind string, coll collectionOf[T]) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <id>",
		Short: fmt.Sprintf("Restore an archived %s record", kind),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := attachStore()
			if err != nil {
				failSys("restore: %s", err)
			}
			defer st.Detach()

			err = coll(st).Restore(args[0])
			exitOnStoreErr("restore", args[0], err)

			fmt.Printf("Restored %s\n", args[0])
			return nil
		},
	}
}

func newDeleteCmd[T types.Entity](kind string, coll collectionOf[T]) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: fmt.Sprintf("Permanently remove a %s record", kind),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := attachStore()
			if err != nil {
				failSys("delete: %s", err)
			}
			defer st.Detach()

			err = coll(st).Delete(args[0])
			exitOnStoreErr("delete", args[0], err)

			fmt.Printf("Deleted %s\n", args[0])
			return nil
		},
	}
}

// boardCommands bundles the subcommands every board kind shares.
func boardCommands[T types.Entity](kind string, coll collectionOf[T], line func(T) string) []*cobra.Command {
	return []*cobra.Command{
		newListCmd(kind, coll, line),
		newShowCmd(kind, coll),
		newReorderCmd(kind, coll),
		newMoveCmd(kind, coll),
		newArchiveCmd(kind, coll),
		newRestoreCmd(kind, coll),
		newDeleteCmd(kind, coll),
	}
}

// flatCommands bundles the subcommands for kinds without board grouping.
func flatCommands[T types.Entity](kind string, coll collectionOf[T], line func(T) string) []*cobra.Command {
	return []*cobra.Command{
		newListCmd(kind, coll, line),
		newShowCmd(kind, coll),
		newReorderCmd(kind, coll),
		newArchiveCmd(kind, coll),
		newRestoreCmd(kind, coll),
		newDeleteCmd(kind, coll),
	}
}
