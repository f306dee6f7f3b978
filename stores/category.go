package stores

import (
	"context"

	"github.com/orgmatch/orgmatch/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryStore struct {
	BaseStore
}

func CreateCategoryStore(db *gorm.DB) *CategoryStore {
	return &CategoryStore{BaseStore: BaseStore{db: db}}
}

func (s *CategoryStore) ListActive(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := s.GetDB(ctx).
		Where("is_active = TRUE").
		Order("category_name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// Upsert resolves a category name to an id, creating the category when it
// does not exist yet. The insert is a single ON CONFLICT DO NOTHING keyed by
// the unique slug, so concurrent creations of the same name cannot race into
// duplicates; whichever insert loses the conflict re-reads the winner's row.
func (s *CategoryStore) Upsert(ctx context.Context, name string) (uint, error) {
	slug := models.Slugify(name)

	category := models.Category{
		CategoryName: name,
		Slug:         slug,
		IsActive:     true,
	}
	err := s.GetDB(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoNothing: true,
		}).
		Create(&category).Error
	if err != nil {
		return 0, err
	}
	if category.CategoryID != 0 {
		return category.CategoryID, nil
	}

	var existing models.Category
	if err := s.GetDB(ctx).Where("slug = ?", slug).First(&existing).Error; err != nil {
		return 0, err
	}
	return existing.CategoryID, nil
}

// EnsureDefault guarantees the fallback "Uncategorized" category exists and
// returns its fixed id.
func (s *CategoryStore) EnsureDefault(ctx context.Context) (uint, error) {
	category := models.Category{
		CategoryID:   models.DefaultCategoryID,
		CategoryName: "Uncategorized",
		Slug:         "uncategorized",
		IsActive:     true,
	}
	err := s.GetDB(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&category).Error
	if err != nil {
		return 0, err
	}
	return models.DefaultCategoryID, nil
}
