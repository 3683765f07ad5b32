// Package seed loads the static starter datasets into the store.
// Every row is upserted on its natural key, so re-running a seed is
// safe and updates rows in place instead of duplicating them.
package seed

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"mrgcar/pkg/auth"
	"mrgcar/pkg/domain"
	"mrgcar/pkg/store"
)

// Result counts per-row outcomes of one seed run.
type Result struct {
	OK     int
	Failed int
}

// Seeder writes the static datasets through the Store interface.
// Rows are processed sequentially; a failed row is counted and skipped,
// never retried.
type Seeder struct {
	store store.Store
	logf  func(format string, args ...any)
}

// New builds a Seeder. logf receives one progress line per row and may
// be nil to silence output.
func New(s store.Store, logf func(format string, args ...any)) *Seeder {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &Seeder{store: s, logf: logf}
}

// SeedCars upserts the starter inventory.
func (s *Seeder) SeedCars() Result {
	var res Result
	now := time.Now().UTC()
	for _, rec := range Cars {
		car := domain.Car{
			ID:           uuid.NewString(),
			Make:         rec.Make,
			Model:        rec.Model,
			Variant:      rec.Variant,
			Year:         rec.Year,
			PriceCents:   rec.PriceCents,
			MileageKM:    rec.MileageKM,
			Fuel:         rec.Fuel,
			Transmission: rec.Transmission,
			Color:        rec.Color,
			Description:  rec.Description,
			Specs:        rec.Specs,
			Status:       domain.CarAvailable,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.store.UpsertCar(car); err != nil {
			res.Failed++
			s.logf("FAIL %s %s %s: %v", rec.Make, rec.Model, rec.Variant, err)
			continue
		}
		res.OK++
		s.logf("ok   %s %s %s (%d)", rec.Make, rec.Model, rec.Variant, rec.Year)
	}
	return res
}

// SeedAdmin upserts the administrator account keyed on email.
func (s *Seeder) SeedAdmin(email, password string) Result {
	var res Result
	hash, err := auth.HashPassword(password)
	if err != nil {
		res.Failed++
		s.logf("FAIL %s: hash password: %v", email, err)
		return res
	}
	now := time.Now().UTC()
	admin := domain.AdminUser{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		Status:       domain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.UpsertAdminUser(admin); err != nil {
		res.Failed++
		s.logf("FAIL %s: %v", admin.Email, err)
		return res
	}
	res.OK++
	s.logf("ok   admin %s", admin.Email)
	return res
}

// SeedForum upserts categories first, then the starter posts. A post
// whose category failed to seed is counted as failed too.
func (s *Seeder) SeedForum() Result {
	var res Result
	now := time.Now().UTC()

	categoryIDs := make(map[string]string, len(Categories))
	for _, rec := range Categories {
		category := domain.ForumCategory{
			ID:          uuid.NewString(),
			Slug:        rec.Slug,
			Title:       rec.Title,
			Description: rec.Description,
			Position:    rec.Position,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.store.UpsertForumCategory(category); err != nil {
			res.Failed++
			s.logf("FAIL category %s: %v", rec.Slug, err)
			continue
		}
		// Upserts keyed on slug may keep a pre-existing row ID; read it
		// back so posts reference the stored category.
		stored, ok, err := s.store.GetCategoryBySlug(rec.Slug)
		if err != nil || !ok {
			res.Failed++
			s.logf("FAIL category %s: read back: %v", rec.Slug, err)
			continue
		}
		categoryIDs[rec.Slug] = stored.ID
		res.OK++
		s.logf("ok   category %s", rec.Slug)
	}

	for _, rec := range Posts {
		categoryID, ok := categoryIDs[rec.CategorySlug]
		if !ok {
			res.Failed++
			s.logf("FAIL post %q: category %s not seeded", rec.Title, rec.CategorySlug)
			continue
		}
		post := domain.ForumPost{
			ID:         uuid.NewString(),
			CategoryID: categoryID,
			Slug:       domain.Slugify(rec.Title),
			Title:      rec.Title,
			Body:       rec.Body,
			Author:     rec.Author,
			Pinned:     rec.Pinned,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := s.store.UpsertForumPost(post); err != nil {
			res.Failed++
			s.logf("FAIL post %q: %v", rec.Title, err)
			continue
		}
		res.OK++
		s.logf("ok   post %q", rec.Title)
	}
	return res
}

// Summary formats a result for the one-line stdout report.
func (r Result) Summary() string {
	return fmt.Sprintf("ok=%d failed=%d", r.OK, r.Failed)
}
