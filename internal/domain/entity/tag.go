package entity

// TagNames is the closed vocabulary of diary tags. Tags are reference
// data, seeded once and never created or deleted by entry operations.
var TagNames = []string{
	"Thoughts",
	"Goals",
	"Work",
	"School",
	"Family",
	"Love",
	"Travel",
	"Others",
}

// Tag represents a tag entity
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// EntryTag represents the junction between entry and tag
type EntryTag struct {
	EntryID int64 `json:"entry_id"`
	TagID   int64 `json:"tag_id"`
}
