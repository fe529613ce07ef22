package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leondli/diary/internal/client/store"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an entry",
	Long: `Delete removes an entry and its tag associations.

Example:
  diary delete 42`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := parseEntryID(args[0])
	if err != nil {
		return err
	}

	if err := apiClient.DeleteEntry(cmd.Context(), id); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	entryStore.Dispatch(store.RemoveOne(id))

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry %d\n", id)
	return nil
}
