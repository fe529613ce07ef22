package tag

import (
	"context"

	"github.com/leondli/diary/internal/domain/entity"
	"github.com/leondli/diary/internal/domain/repository"
	apperrors "github.com/leondli/diary/pkg/errors"
)

// UseCase defines the tag use case interface
type UseCase interface {
	List(ctx context.Context) ([]entity.Tag, error)
}

type tagUseCase struct {
	tagRepo repository.TagRepository
}

// NewUseCase creates a new tag use case
func NewUseCase(tagRepo repository.TagRepository) UseCase {
	return &tagUseCase{tagRepo: tagRepo}
}

func (u *tagUseCase) List(ctx context.Context) ([]entity.Tag, error) {
	tags, err := u.tagRepo.List(ctx)
	if err != nil {
		return nil, apperrors.InternalError("failed to list tags", err)
	}
	return tags, nil
}
