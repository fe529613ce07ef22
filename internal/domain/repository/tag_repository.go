package repository

import (
	"context"

	"github.com/leondli/diary/internal/domain/entity"
)

// TagRepository defines the interface for tag data access
type TagRepository interface {
	// List lists the tag vocabulary
	List(ctx context.Context) ([]entity.Tag, error)
}
