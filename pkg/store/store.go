package store

import (
	"errors"

	"mrgcar/pkg/domain"
)

// ErrDuplicate is returned by create operations when a row with the
// same unique key already exists. Upserts never return it.
var ErrDuplicate = errors.New("duplicate row")

// CarFilter narrows ListCars results.
type CarFilter struct {
	Make   string
	Status domain.CarStatus
	Limit  int
}

// Store is the persistence boundary for listings, admins and the forum.
// Upsert methods are keyed on the unique constraints the seed commands
// rely on: cars (make, model, variant), admin_users (email),
// forum_categories (slug), forum_posts (category_id, slug).
type Store interface {
	UpsertCar(car domain.Car) error
	GetCar(id string) (domain.Car, bool, error)
	ListCars(filter CarFilter) ([]domain.Car, error)
	SetCarPhoto(id, photoKey string) error

	UpsertAdminUser(user domain.AdminUser) error
	GetAdminByEmail(email string) (domain.AdminUser, bool, error)

	UpsertForumCategory(category domain.ForumCategory) error
	ListCategories() ([]domain.ForumCategory, error)
	GetCategoryBySlug(slug string) (domain.ForumCategory, bool, error)
	GetCategory(id string) (domain.ForumCategory, bool, error)

	UpsertForumPost(post domain.ForumPost) error
	CreateForumPost(post domain.ForumPost) error
	ListPostsByCategory(categoryID string, limit int) ([]domain.ForumPost, error)
}
