package store

import (
	"time"

	"gorm.io/datatypes"
)

// GORM models used for persistence. The unique indexes double as the
// conflict targets for seed upserts.
type CarModel struct {
	ID           string `gorm:"primaryKey"`
	Make         string `gorm:"not null;uniqueIndex:idx_cars_identity"`
	Model        string `gorm:"not null;uniqueIndex:idx_cars_identity"`
	Variant      string `gorm:"uniqueIndex:idx_cars_identity"`
	Year         int    `gorm:"not null"`
	PriceCents   int64  `gorm:"not null"`
	MileageKM    int
	Fuel         string `gorm:"not null"`
	Transmission string `gorm:"not null"`
	Color        string
	Description  string         `gorm:"type:text"`
	Specs        datatypes.JSON `gorm:"type:jsonb"`
	PhotoKey     string
	Status       string    `gorm:"not null;index"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

type AdminUserModel struct {
	ID           string `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"not null"`
	Status       string
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time
}

type ForumCategoryModel struct {
	ID          string `gorm:"primaryKey"`
	Slug        string `gorm:"uniqueIndex;not null"`
	Title       string `gorm:"not null"`
	Description string
	Position    int       `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time
}

type ForumPostModel struct {
	ID         string `gorm:"primaryKey"`
	CategoryID string `gorm:"not null;uniqueIndex:idx_posts_category_slug;index"`
	Slug       string `gorm:"not null;uniqueIndex:idx_posts_category_slug"`
	Title      string `gorm:"not null"`
	Body       string `gorm:"type:text;not null"`
	Author     string `gorm:"not null"`
	Pinned     bool
	CreatedAt  time.Time `gorm:"not null;index"`
	UpdatedAt  time.Time
}
