package entry

import (
	"context"

	"github.com/leondli/diary/internal/domain/entity"
	"github.com/leondli/diary/internal/domain/repository"
	apperrors "github.com/leondli/diary/pkg/errors"
)

// UseCase defines the entry use case interface
type UseCase interface {
	List(ctx context.Context, tagNames []string) ([]entity.EntryResponse, error)
	GetByID(ctx context.Context, id int64) (*entity.EntryResponse, error)
	Create(ctx context.Context, input *Input) (*entity.EntryResponse, error)
	Update(ctx context.Context, id int64, input *Input) (*entity.EntryResponse, error)
	Delete(ctx context.Context, id int64) error
}

// Input represents entry creation/update input.
// Tags is a pointer so a missing field is rejected while an empty
// array is accepted, matching the wire contract.
type Input struct {
	Title   string    `json:"title" binding:"required"`
	Content string    `json:"content" binding:"required"`
	Mood    string    `json:"mood" binding:"required,oneof=Positive Neutral Negative"`
	Tags    *[]string `json:"tags" binding:"required"`
}

func (i *Input) toEntryInput() *entity.EntryInput {
	var tagNames []string
	if i.Tags != nil {
		tagNames = *i.Tags
	}
	return &entity.EntryInput{
		Title:    i.Title,
		Content:  i.Content,
		Mood:     entity.Mood(i.Mood),
		TagNames: tagNames,
	}
}

type entryUseCase struct {
	entryRepo repository.EntryRepository
}

// NewUseCase creates a new entry use case
func NewUseCase(entryRepo repository.EntryRepository) UseCase {
	return &entryUseCase{entryRepo: entryRepo}
}

func (u *entryUseCase) List(ctx context.Context, tagNames []string) ([]entity.EntryResponse, error) {
	var (
		entries []entity.Entry
		err     error
	)
	if len(tagNames) > 0 {
		entries, err = u.entryRepo.ListByTags(ctx, tagNames)
	} else {
		entries, err = u.entryRepo.List(ctx)
	}
	if err != nil {
		return nil, apperrors.InternalError("failed to list entries", err)
	}

	responses := make([]entity.EntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = *e.ToResponse()
	}
	return responses, nil
}

func (u *entryUseCase) GetByID(ctx context.Context, id int64) (*entity.EntryResponse, error) {
	e, err := u.entryRepo.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundError("entry")
		}
		return nil, apperrors.InternalError("failed to get entry", err)
	}
	return e.ToResponse(), nil
}

func (u *entryUseCase) Create(ctx context.Context, input *Input) (*entity.EntryResponse, error) {
	e, err := u.entryRepo.Create(ctx, input.toEntryInput())
	if err != nil {
		return nil, apperrors.InternalError("failed to create entry", err)
	}
	return e.ToResponse(), nil
}

func (u *entryUseCase) Update(ctx context.Context, id int64, input *Input) (*entity.EntryResponse, error) {
	e, err := u.entryRepo.Update(ctx, id, input.toEntryInput())
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundError("entry")
		}
		return nil, apperrors.InternalError("failed to update entry", err)
	}
	return e.ToResponse(), nil
}

func (u *entryUseCase) Delete(ctx context.Context, id int64) error {
	if err := u.entryRepo.Delete(ctx, id); err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NotFoundError("entry")
		}
		return apperrors.InternalError("failed to delete entry", err)
	}
	return nil
}
