package repository

import (
	"context"

	"github.com/leondli/diary/internal/domain/entity"
)

// EntryRepository defines the interface for entry data access
type EntryRepository interface {
	// List retrieves all entries with their tags, newest created first
	List(ctx context.Context) ([]entity.Entry, error)

	// ListByTags retrieves entries associated with at least one of the
	// given tag names. An entry matching several names appears once.
	ListByTags(ctx context.Context, tagNames []string) ([]entity.Entry, error)

	// GetByID retrieves a single entry with its tags
	GetByID(ctx context.Context, id int64) (*entity.Entry, error)

	// Create inserts a new entry, associates the resolvable tag names
	// and returns the freshly read entry. Unknown names are dropped.
	Create(ctx context.Context, input *entity.EntryInput) (*entity.Entry, error)

	// Update rewrites the scalar fields and replaces the whole tag
	// association set, then returns the freshly read entry
	Update(ctx context.Context, id int64, input *entity.EntryInput) (*entity.Entry, error)

	// Delete removes an entry together with its tag associations
	Delete(ctx context.Context, id int64) error
}
