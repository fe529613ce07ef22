package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leondli/diary/internal/client/store"
)

var flagListTags string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries, newest first",
	Long: `List fetches all entries from the server, optionally filtered
by tag names.

Example:
  diary list
  diary list --tags Work,Goals
  diary list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&flagListTags, "tags", "", "comma-joined tag names to filter by")
}

func runList(cmd *cobra.Command, args []string) error {
	var tags []string
	if flagListTags != "" {
		tags = strings.Split(flagListTags, ",")
	}

	entries, err := apiClient.ListEntries(cmd.Context(), tags)
	if err != nil {
		return fmt.Errorf("list entries: %w", err)
	}

	entryStore.Dispatch(store.ReplaceAll(entries))

	if flagJSON {
		return printJSON(cmd.OutOrStdout(), entryStore.Entries())
	}

	if entryStore.Len() == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No entries to show")
		return nil
	}

	for _, e := range entryStore.Entries() {
		printEntrySummary(cmd.OutOrStdout(), &e)
	}
	return nil
}
