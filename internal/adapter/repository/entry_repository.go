package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/leondli/diary/internal/domain/entity"
	"github.com/leondli/diary/internal/domain/repository"
	apperrors "github.com/leondli/diary/pkg/errors"
)

// EntryModel is the Gorm model for entries table
type EntryModel struct {
	ID        int64  `gorm:"primaryKey"`
	Title     string `gorm:"size:255;not null"`
	Content   string `gorm:"type:text;not null"`
	Mood      string `gorm:"size:20;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Relations
	Tags []TagModel `gorm:"many2many:entry_tags;foreignKey:ID;joinForeignKey:entry_id;References:ID;joinReferences:tag_id"`
}

// TableName returns the table name
func (EntryModel) TableName() string {
	return "entries"
}

// ToEntity converts EntryModel to entity.Entry
func (m *EntryModel) ToEntity() *entity.Entry {
	e := &entity.Entry{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		Mood:      entity.Mood(m.Mood),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	if len(m.Tags) > 0 {
		e.Tags = make([]entity.Tag, len(m.Tags))
		for i, tag := range m.Tags {
			e.Tags[i] = *tag.ToEntity()
		}
	}

	return e
}

// EntryTagModel is the Gorm model for entry_tags join table
type EntryTagModel struct {
	EntryID int64 `gorm:"primaryKey"`
	TagID   int64 `gorm:"primaryKey"`
}

// TableName returns the table name
func (EntryTagModel) TableName() string {
	return "entry_tags"
}

// entryRepository implements repository.EntryRepository
type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository creates a new entry repository
func NewEntryRepository(db *gorm.DB) repository.EntryRepository {
	return &entryRepository{db: db}
}

func (r *entryRepository) List(ctx context.Context) ([]entity.Entry, error) {
	var models []EntryModel
	if err := r.db.WithContext(ctx).
		Preload("Tags").
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, err
	}
	return toEntities(models), nil
}

func (r *entryRepository) ListByTags(ctx context.Context, tagNames []string) ([]entity.Entry, error) {
	var models []EntryModel
	if err := r.db.WithContext(ctx).
		Preload("Tags").
		Select("entries.*").
		Joins("JOIN entry_tags ON entry_tags.entry_id = entries.id").
		Joins("JOIN tags ON tags.id = entry_tags.tag_id").
		Where("tags.name IN ?", tagNames).
		Group("entries.id").
		Order("entries.created_at DESC").
		Find(&models).Error; err != nil {
		return nil, err
	}
	return toEntities(models), nil
}

func (r *entryRepository) GetByID(ctx context.Context, id int64) (*entity.Entry, error) {
	var model EntryModel
	if err := r.db.WithContext(ctx).
		Preload("Tags").
		Where("id = ?", id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

func (r *entryRepository) Create(ctx context.Context, input *entity.EntryInput) (*entity.Entry, error) {
	var id int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := &EntryModel{
			Title:   input.Title,
			Content: input.Content,
			Mood:    string(input.Mood),
		}
		if err := tx.Create(model).Error; err != nil {
			return err
		}
		id = model.ID
		return insertAssociations(tx, id, input.TagNames)
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *entryRepository) Update(ctx context.Context, id int64, input *entity.EntryInput) (*entity.Entry, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&EntryModel{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"title":   input.Title,
				"content": input.Content,
				"mood":    string(input.Mood),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrNotFound
		}

		// Replace-all semantics: old associations go, new set comes in
		if err := tx.Delete(&EntryTagModel{}, "entry_id = ?", id).Error; err != nil {
			return err
		}
		return insertAssociations(tx, id, input.TagNames)
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *entryRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Associations first, no dangling entry_tags rows
		if err := tx.Delete(&EntryTagModel{}, "entry_id = ?", id).Error; err != nil {
			return err
		}

		res := tx.Delete(&EntryModel{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrNotFound
		}
		return nil
	})
}

// resolveTagIDs maps tag names to ids of existing tags. Names outside
// the vocabulary resolve to nothing and are dropped.
func resolveTagIDs(tx *gorm.DB, names []string) ([]int64, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var ids []int64
	if err := tx.Model(&TagModel{}).
		Where("name IN ?", names).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// insertAssociations resolves names and inserts one join row per
// resolved tag id
func insertAssociations(tx *gorm.DB, entryID int64, names []string) error {
	ids, err := resolveTagIDs(tx, names)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	rows := make([]EntryTagModel, len(ids))
	for i, tagID := range ids {
		rows[i] = EntryTagModel{EntryID: entryID, TagID: tagID}
	}
	return tx.Create(&rows).Error
}

func toEntities(models []EntryModel) []entity.Entry {
	entries := make([]entity.Entry, len(models))
	for i, m := range models {
		entries[i] = *m.ToEntity()
	}
	return entries
}
