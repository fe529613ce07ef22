package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/leondli/diary/internal/domain/entity"
)

// Migrate syncs the schema and seeds the fixed tag vocabulary.
// Seeding is idempotent, existing tag rows are left untouched.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&EntryModel{}, &TagModel{}, &EntryTagModel{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	for _, name := range entity.TagNames {
		tag := TagModel{Name: name}
		if err := db.Where(&TagModel{Name: name}).FirstOrCreate(&tag).Error; err != nil {
			return fmt.Errorf("failed to seed tag %q: %w", name, err)
		}
	}

	return nil
}
