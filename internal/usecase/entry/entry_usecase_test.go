package entry

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leondli/diary/internal/domain/entity"
	apperrors "github.com/leondli/diary/pkg/errors"
)

// stubRepo implements repository.EntryRepository with function fields
type stubRepo struct {
	list       func(ctx context.Context) ([]entity.Entry, error)
	listByTags func(ctx context.Context, tagNames []string) ([]entity.Entry, error)
	getByID    func(ctx context.Context, id int64) (*entity.Entry, error)
	create     func(ctx context.Context, input *entity.EntryInput) (*entity.Entry, error)
	update     func(ctx context.Context, id int64, input *entity.EntryInput) (*entity.Entry, error)
	delete     func(ctx context.Context, id int64) error
}

func (s *stubRepo) List(ctx context.Context) ([]entity.Entry, error) {
	return s.list(ctx)
}

func (s *stubRepo) ListByTags(ctx context.Context, tagNames []string) ([]entity.Entry, error) {
	return s.listByTags(ctx, tagNames)
}

func (s *stubRepo) GetByID(ctx context.Context, id int64) (*entity.Entry, error) {
	return s.getByID(ctx, id)
}

func (s *stubRepo) Create(ctx context.Context, input *entity.EntryInput) (*entity.Entry, error) {
	return s.create(ctx, input)
}

func (s *stubRepo) Update(ctx context.Context, id int64, input *entity.EntryInput) (*entity.Entry, error) {
	return s.update(ctx, id, input)
}

func (s *stubRepo) Delete(ctx context.Context, id int64) error {
	return s.delete(ctx, id)
}

func sampleEntry() *entity.Entry {
	return &entity.Entry{
		ID:      7,
		Title:   "Day One",
		Content: "content",
		Mood:    entity.MoodPositive,
		Tags:    []entity.Tag{{ID: 3, Name: "Work"}, {ID: 7, Name: "Travel"}},
	}
}

func TestListDispatch(t *testing.T) {
	var listCalled, listByTagsCalled bool
	var gotFilter []string

	uc := NewUseCase(&stubRepo{
		list: func(ctx context.Context) ([]entity.Entry, error) {
			listCalled = true
			return []entity.Entry{*sampleEntry()}, nil
		},
		listByTags: func(ctx context.Context, tagNames []string) ([]entity.Entry, error) {
			listByTagsCalled = true
			gotFilter = tagNames
			return nil, nil
		},
	})

	// Empty filter goes through the unfiltered listing
	responses, err := uc.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.True(t, listCalled)
	assert.False(t, listByTagsCalled)

	// Aggregated tags come comma-joined
	assert.Equal(t, "Work,Travel", responses[0].Tags)

	// A non-empty filter goes through the tag listing
	_, err = uc.List(context.Background(), []string{"Work", "Goals"})
	require.NoError(t, err)
	assert.True(t, listByTagsCalled)
	assert.Equal(t, []string{"Work", "Goals"}, gotFilter)
}

func TestListStoreErrorIsInternal(t *testing.T) {
	uc := NewUseCase(&stubRepo{
		list: func(ctx context.Context) ([]entity.Entry, error) {
			return nil, errors.New("connection refused")
		},
	})

	_, err := uc.List(context.Background(), nil)
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.Contains(t, appErr.Error(), "connection refused")
}

func TestGetByIDNotFoundMapping(t *testing.T) {
	uc := NewUseCase(&stubRepo{
		getByID: func(ctx context.Context, id int64) (*entity.Entry, error) {
			return nil, apperrors.ErrNotFound
		},
	})

	_, err := uc.GetByID(context.Background(), 99)
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCreatePassesInputThrough(t *testing.T) {
	var got *entity.EntryInput
	uc := NewUseCase(&stubRepo{
		create: func(ctx context.Context, input *entity.EntryInput) (*entity.Entry, error) {
			got = input
			return sampleEntry(), nil
		},
	})

	tags := []string{"Work", "Travel"}
	resp, err := uc.Create(context.Background(), &Input{
		Title:   "Day One",
		Content: "content",
		Mood:    "Positive",
		Tags:    &tags,
	})
	require.NoError(t, err)

	assert.Equal(t, "Day One", got.Title)
	assert.Equal(t, entity.MoodPositive, got.Mood)
	assert.Equal(t, []string{"Work", "Travel"}, got.TagNames)
	assert.EqualValues(t, 7, resp.ID)
}

func TestUpdateNotFoundMapping(t *testing.T) {
	uc := NewUseCase(&stubRepo{
		update: func(ctx context.Context, id int64, input *entity.EntryInput) (*entity.Entry, error) {
			return nil, apperrors.ErrNotFound
		},
	})

	tags := []string{}
	_, err := uc.Update(context.Background(), 99, &Input{
		Title:   "x",
		Content: "y",
		Mood:    "Neutral",
		Tags:    &tags,
	})

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
}

func TestDeleteMapping(t *testing.T) {
	tests := []struct {
		name     string
		repoErr  error
		wantCode int
	}{
		{name: "success", repoErr: nil, wantCode: 0},
		{name: "not found", repoErr: apperrors.ErrNotFound, wantCode: http.StatusNotFound},
		{name: "store error", repoErr: errors.New("disk gone"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(&stubRepo{
				delete: func(ctx context.Context, id int64) error {
					return tt.repoErr
				},
			})

			err := uc.Delete(context.Background(), 1)
			if tt.wantCode == 0 {
				assert.NoError(t, err)
				return
			}

			appErr := apperrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantCode, appErr.Code)
		})
	}
}
