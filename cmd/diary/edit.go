package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leondli/diary/internal/client"
	"github.com/leondli/diary/internal/client/store"
)

var (
	flagEditTitle   string
	flagEditContent string
	flagEditMood    string
	flagEditTags    string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an entry",
	Long: `Edit updates an entry. The server replaces the whole entry, so
fields not given as flags keep their current value; --tags replaces the
entire tag set.

Example:
  diary edit 42 --mood Negative
  diary edit 42 --tags Family`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&flagEditTitle, "title", "", "new title")
	editCmd.Flags().StringVar(&flagEditContent, "content", "", "new content")
	editCmd.Flags().StringVar(&flagEditMood, "mood", "", "new mood: Positive, Neutral or Negative")
	editCmd.Flags().StringVar(&flagEditTags, "tags", "", "comma-joined tag names, replaces the current set")
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := parseEntryID(args[0])
	if err != nil {
		return err
	}

	// The PUT contract wants the full entry, start from the server copy
	current, err := apiClient.GetEntry(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("edit entry: %w", err)
	}

	input := client.EntryInput{
		Title:   current.Title,
		Content: current.Content,
		Mood:    string(current.Mood),
		Tags:    current.TagSet(),
	}
	if cmd.Flags().Changed("title") {
		input.Title = flagEditTitle
	}
	if cmd.Flags().Changed("content") {
		input.Content = flagEditContent
	}
	if cmd.Flags().Changed("mood") {
		input.Mood = flagEditMood
	}
	if cmd.Flags().Changed("tags") {
		input.Tags = splitTags(flagEditTags)
	}

	e, err := apiClient.UpdateEntry(cmd.Context(), id, input)
	if err != nil {
		return fmt.Errorf("edit entry: %w", err)
	}

	entryStore.Dispatch(store.MergeOne(e))

	if flagJSON {
		return printJSON(cmd.OutOrStdout(), e)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated entry %d\n", e.ID)
	return nil
}
