package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the tag vocabulary",
	Args:  cobra.NoArgs,
	RunE:  runTags,
}

func runTags(cmd *cobra.Command, args []string) error {
	tags, err := apiClient.ListTags(cmd.Context())
	if err != nil {
		return fmt.Errorf("list tags: %w", err)
	}

	if flagJSON {
		return printJSON(cmd.OutOrStdout(), tags)
	}

	for _, t := range tags {
		fmt.Fprintln(cmd.OutOrStdout(), t.Name)
	}
	return nil
}
