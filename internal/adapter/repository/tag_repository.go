package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/leondli/diary/internal/domain/entity"
	"github.com/leondli/diary/internal/domain/repository"
)

// TagModel is the Gorm model for tags table
type TagModel struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:50;not null"`
}

// TableName returns the table name
func (TagModel) TableName() string {
	return "tags"
}

// ToEntity converts TagModel to entity.Tag
func (m *TagModel) ToEntity() *entity.Tag {
	return &entity.Tag{
		ID:   m.ID,
		Name: m.Name,
	}
}

// tagRepository implements repository.TagRepository
type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new tag repository
func NewTagRepository(db *gorm.DB) repository.TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) List(ctx context.Context) ([]entity.Tag, error) {
	var models []TagModel
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&models).Error; err != nil {
		return nil, err
	}

	tags := make([]entity.Tag, len(models))
	for i, m := range models {
		tags[i] = *m.ToEntity()
	}
	return tags, nil
}
