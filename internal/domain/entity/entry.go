package entity

import (
	"strings"
	"time"
)

// Mood represents the emotional rating attached to an entry
type Mood string

const (
	MoodPositive Mood = "Positive"
	MoodNeutral  Mood = "Neutral"
	MoodNegative Mood = "Negative"
)

// IsValid checks if the mood is one of the fixed vocabulary.
// Values are matched exactly, no case or whitespace normalization.
func (m Mood) IsValid() bool {
	switch m {
	case MoodPositive, MoodNeutral, MoodNegative:
		return true
	}
	return false
}

// Entry represents a single diary record
type Entry struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mood      Mood      `json:"mood"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations (not stored in DB)
	Tags []Tag `json:"tags,omitempty"`
}

// EntryInput represents the data needed to create or update an entry.
// Updates carry full replace-the-association-set semantics for TagNames.
type EntryInput struct {
	Title    string
	Content  string
	Mood     Mood
	TagNames []string
}

// EntryResponse represents the entry data returned to clients.
// Tags is the aggregated comma-joined list of associated tag names,
// computed at read time; empty when the entry has no tags.
type EntryResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mood      Mood      `json:"mood"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Tags      string    `json:"tags"`
}

// ToResponse converts Entry to EntryResponse
func (e *Entry) ToResponse() *EntryResponse {
	names := make([]string, len(e.Tags))
	for i, tag := range e.Tags {
		names[i] = tag.Name
	}

	return &EntryResponse{
		ID:        e.ID,
		Title:     e.Title,
		Content:   e.Content,
		Mood:      e.Mood,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
		Tags:      strings.Join(names, ","),
	}
}

// TagSet returns the response's tag names as a slice, split on commas.
// An empty aggregate yields an empty slice.
func (r *EntryResponse) TagSet() []string {
	if r.Tags == "" {
		return nil
	}
	return strings.Split(r.Tags, ",")
}
