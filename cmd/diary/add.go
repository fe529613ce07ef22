package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leondli/diary/internal/client"
	"github.com/leondli/diary/internal/client/store"
)

var (
	flagAddTitle   string
	flagAddContent string
	flagAddMood    string
	flagAddTags    string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new entry",
	Long: `Add creates a new diary entry. Content is taken from --content,
or read from stdin when the flag is omitted.

Example:
  diary add --title "Day One" --mood Positive --tags Work,Travel --content "..."
  echo "long day" | diary add --title "Day Two" --mood Neutral`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&flagAddTitle, "title", "", "entry title (required)")
	addCmd.Flags().StringVar(&flagAddContent, "content", "", "entry content (default: read from stdin)")
	addCmd.Flags().StringVar(&flagAddMood, "mood", "", "entry mood: Positive, Neutral or Negative (required)")
	addCmd.Flags().StringVar(&flagAddTags, "tags", "", "comma-joined tag names")
	addCmd.MarkFlagRequired("title")
	addCmd.MarkFlagRequired("mood")
}

func runAdd(cmd *cobra.Command, args []string) error {
	content := flagAddContent
	if content == "" {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read content from stdin: %w", err)
		}
		content = strings.TrimSpace(string(raw))
	}

	input := client.EntryInput{
		Title:   flagAddTitle,
		Content: content,
		Mood:    flagAddMood,
		Tags:    splitTags(flagAddTags),
	}

	e, err := apiClient.CreateEntry(cmd.Context(), input)
	if err != nil {
		return fmt.Errorf("add entry: %w", err)
	}

	entryStore.Dispatch(store.PrependOne(e))

	if flagJSON {
		return printJSON(cmd.OutOrStdout(), e)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created entry %d\n", e.ID)
	return nil
}
