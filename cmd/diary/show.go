package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single entry",
	Long: `Show retrieves one entry by its ID.

Example:
  diary show 42
  diary show 42 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := parseEntryID(args[0])
	if err != nil {
		return err
	}

	e, err := apiClient.GetEntry(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("show entry: %w", err)
	}

	if flagJSON {
		return printJSON(cmd.OutOrStdout(), e)
	}

	printEntryDetail(cmd.OutOrStdout(), e)
	return nil
}
