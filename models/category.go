package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DefaultCategoryID is the fallback category ("Uncategorized") used when a
// listing request resolves no category at all.
const DefaultCategoryID uint = 1

type Category struct {
	CategoryID   uint      `json:"category_id" gorm:"column:category_id;primaryKey;autoIncrement"`
	CategoryName string    `json:"category_name" gorm:"not null"`
	Slug         string    `json:"slug" gorm:"uniqueIndex;not null"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Category) TableName() string {
	return "item_category"
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowers a category name into its unique slug. Names that reduce to
// nothing get a timestamped fallback so the insert still has a distinct key.
func Slugify(name string) string {
	slug := strings.ToLower(name)
	slug = slugPattern.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = fmt.Sprintf("cat-%d", time.Now().UnixMilli())
	}
	return slug
}
