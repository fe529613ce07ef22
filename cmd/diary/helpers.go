package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/leondli/diary/internal/domain/entity"
)

// parseEntryID parses a positional id argument
func parseEntryID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid entry id %q", arg)
	}
	return id, nil
}

// splitTags splits a comma-joined flag value into tag names.
// An empty value yields an empty, non-nil slice so the server sees
// an explicit empty tag set.
func splitTags(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

// printJSON writes v as indented JSON
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printEntrySummary writes the one-line list representation
func printEntrySummary(w io.Writer, e *entity.EntryResponse) {
	line := fmt.Sprintf("%d\t%s\t%s", e.ID, e.CreatedAt.Format("2006-01-02 15:04"), e.Title)
	if e.Tags != "" {
		line += "\t[" + e.Tags + "]"
	}
	fmt.Fprintln(w, line)
}

// printEntryDetail writes the full entry representation
func printEntryDetail(w io.Writer, e *entity.EntryResponse) {
	fmt.Fprintf(w, "ID:      %d\n", e.ID)
	fmt.Fprintf(w, "Title:   %s\n", e.Title)
	fmt.Fprintf(w, "Mood:    %s\n", e.Mood)
	if e.Tags != "" {
		fmt.Fprintf(w, "Tags:    %s\n", e.Tags)
	}
	fmt.Fprintf(w, "Created: %s\n", e.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "Updated: %s\n", e.UpdatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "\n%s\n", e.Content)
}
