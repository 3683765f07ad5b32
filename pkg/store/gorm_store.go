package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"mrgcar/pkg/domain"
)

const migrateLockID int64 = 52601413

// GormStore implements Store using GORM + Postgres.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore opens the DB and runs auto-migrations. Migrations run
// under a Postgres advisory lock so concurrent instances don't race.
func NewGormStore(dsn string) (*GormStore, error) {
	gormLog := gormlogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormLog,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := withMigrationLock(db, func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(&CarModel{}, &AdminUserModel{}, &ForumCategoryModel{}, &ForumPostModel{}); err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func withMigrationLock(db *gorm.DB, fn func(*gorm.DB) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return fmt.Errorf("open sql conn: %w", err)
	}
	defer conn.Close()
	if err := execAdvisory(ctx, conn, "SELECT pg_advisory_lock($1)", migrateLockID); err != nil {
		return fmt.Errorf("acquire migrate lock: %w", err)
	}
	defer func() {
		_ = execAdvisory(ctx, conn, "SELECT pg_advisory_unlock($1)", migrateLockID)
	}()
	return fn(db)
}

func execAdvisory(ctx context.Context, conn *sql.Conn, query string, lockID int64) error {
	_, err := conn.ExecContext(ctx, query, lockID)
	return err
}

// UpsertCar inserts a listing or refreshes it when the (make, model,
// variant) triple already exists.
func (s *GormStore) UpsertCar(car domain.Car) error {
	model := carToModel(car)
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "make"}, {Name: "model"}, {Name: "variant"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"year", "price_cents", "mileage_km", "fuel", "transmission",
			"color", "description", "specs", "status", "updated_at",
		}),
	}).Create(&model).Error
}

// GetCar retrieves a listing by ID.
func (s *GormStore) GetCar(id string) (domain.Car, bool, error) {
	var model CarModel
	if err := s.db.First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.Car{}, false, nil
		}
		return domain.Car{}, false, err
	}
	return carFromModel(model), true, nil
}

// ListCars returns listings, newest first, optionally filtered.
func (s *GormStore) ListCars(filter CarFilter) ([]domain.Car, error) {
	tx := s.db.Order("created_at DESC")
	if mk := strings.TrimSpace(filter.Make); mk != "" {
		tx = tx.Where("make ILIKE ?", mk)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", string(filter.Status))
	}
	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}
	var models []CarModel
	if err := tx.Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]domain.Car, 0, len(models))
	for _, m := range models {
		res = append(res, carFromModel(m))
	}
	return res, nil
}

// SetCarPhoto records the object-storage key of the listing photo.
func (s *GormStore) SetCarPhoto(id, photoKey string) error {
	return s.db.Model(&CarModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"photo_key":  photoKey,
			"updated_at": time.Now().UTC(),
		}).Error
}

// UpsertAdminUser registers or updates an admin keyed on email.
func (s *GormStore) UpsertAdminUser(user domain.AdminUser) error {
	model := adminToModel(user)
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"password_hash", "role", "status", "updated_at"}),
	}).Create(&model).Error
}

// GetAdminByEmail looks up an admin by email.
func (s *GormStore) GetAdminByEmail(email string) (domain.AdminUser, bool, error) {
	var model AdminUserModel
	if err := s.db.Where("email = ?", email).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.AdminUser{}, false, nil
		}
		return domain.AdminUser{}, false, err
	}
	return adminFromModel(model), true, nil
}

// UpsertForumCategory inserts or refreshes a category keyed on slug.
func (s *GormStore) UpsertForumCategory(category domain.ForumCategory) error {
	model := categoryToModel(category)
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "description", "position", "updated_at"}),
	}).Create(&model).Error
}

// ListCategories returns all categories ordered by position.
func (s *GormStore) ListCategories() ([]domain.ForumCategory, error) {
	var models []ForumCategoryModel
	if err := s.db.Order("position ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]domain.ForumCategory, 0, len(models))
	for _, m := range models {
		res = append(res, categoryFromModel(m))
	}
	return res, nil
}

// GetCategoryBySlug looks up a category by its slug.
func (s *GormStore) GetCategoryBySlug(slug string) (domain.ForumCategory, bool, error) {
	var model ForumCategoryModel
	if err := s.db.Where("slug = ?", slug).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.ForumCategory{}, false, nil
		}
		return domain.ForumCategory{}, false, err
	}
	return categoryFromModel(model), true, nil
}

// GetCategory returns one category by ID.
func (s *GormStore) GetCategory(id string) (domain.ForumCategory, bool, error) {
	var model ForumCategoryModel
	if err := s.db.First(&model, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return domain.ForumCategory{}, false, nil
		}
		return domain.ForumCategory{}, false, err
	}
	return categoryFromModel(model), true, nil
}

// UpsertForumPost inserts or refreshes a post keyed on (category_id, slug).
func (s *GormStore) UpsertForumPost(post domain.ForumPost) error {
	model := postToModel(post)
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category_id"}, {Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "body", "author", "pinned", "updated_at"}),
	}).Create(&model).Error
}

// CreateForumPost records a new post. A unique-key violation on
// (category_id, slug) comes back as ErrDuplicate; anything else is an
// infrastructure error and passes through unchanged.
func (s *GormStore) CreateForumPost(post domain.ForumPost) error {
	model := postToModel(post)
	if err := s.db.Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("post %q in category %s: %w", post.Slug, post.CategoryID, ErrDuplicate)
		}
		return err
	}
	return nil
}

// ListPostsByCategory returns posts in a category, pinned first then newest.
func (s *GormStore) ListPostsByCategory(categoryID string, limit int) ([]domain.ForumPost, error) {
	tx := s.db.Where("category_id = ?", categoryID).
		Order("pinned DESC").
		Order("created_at DESC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	var models []ForumPostModel
	if err := tx.Find(&models).Error; err != nil {
		return nil, err
	}
	res := make([]domain.ForumPost, 0, len(models))
	for _, m := range models {
		res = append(res, postFromModel(m))
	}
	return res, nil
}

func carToModel(c domain.Car) CarModel {
	specs, _ := json.Marshal(c.Specs)
	return CarModel{
		ID:           c.ID,
		Make:         c.Make,
		Model:        c.Model,
		Variant:      c.Variant,
		Year:         c.Year,
		PriceCents:   c.PriceCents,
		MileageKM:    c.MileageKM,
		Fuel:         string(c.Fuel),
		Transmission: string(c.Transmission),
		Color:        c.Color,
		Description:  c.Description,
		Specs:        specs,
		PhotoKey:     c.PhotoKey,
		Status:       string(c.Status),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func carFromModel(m CarModel) domain.Car {
	var specs map[string]string
	if len(m.Specs) > 0 {
		_ = json.Unmarshal(m.Specs, &specs)
	}
	status := domain.CarStatus(m.Status)
	if status == "" {
		status = domain.CarAvailable
	}
	return domain.Car{
		ID:           m.ID,
		Make:         m.Make,
		Model:        m.Model,
		Variant:      m.Variant,
		Year:         m.Year,
		PriceCents:   m.PriceCents,
		MileageKM:    m.MileageKM,
		Fuel:         domain.FuelType(m.Fuel),
		Transmission: domain.Transmission(m.Transmission),
		Color:        m.Color,
		Description:  m.Description,
		Specs:        specs,
		PhotoKey:     m.PhotoKey,
		Status:       status,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func adminToModel(u domain.AdminUser) AdminUserModel {
	return AdminUserModel{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		Status:       string(u.Status),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func adminFromModel(m AdminUserModel) domain.AdminUser {
	status := domain.AdminStatus(m.Status)
	if status == "" {
		status = domain.StatusActive
	}
	return domain.AdminUser{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         domain.AdminRole(m.Role),
		Status:       status,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func categoryToModel(c domain.ForumCategory) ForumCategoryModel {
	return ForumCategoryModel{
		ID:          c.ID,
		Slug:        c.Slug,
		Title:       c.Title,
		Description: c.Description,
		Position:    c.Position,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func categoryFromModel(m ForumCategoryModel) domain.ForumCategory {
	return domain.ForumCategory{
		ID:          m.ID,
		Slug:        m.Slug,
		Title:       m.Title,
		Description: m.Description,
		Position:    m.Position,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func postToModel(p domain.ForumPost) ForumPostModel {
	return ForumPostModel{
		ID:         p.ID,
		CategoryID: p.CategoryID,
		Slug:       p.Slug,
		Title:      p.Title,
		Body:       p.Body,
		Author:     p.Author,
		Pinned:     p.Pinned,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func postFromModel(m ForumPostModel) domain.ForumPost {
	return domain.ForumPost{
		ID:         m.ID,
		CategoryID: m.CategoryID,
		Slug:       m.Slug,
		Title:      m.Title,
		Body:       m.Body,
		Author:     m.Author,
		Pinned:     m.Pinned,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
