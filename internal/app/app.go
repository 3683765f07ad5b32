// Package app holds the application core: everything the HTTP layer
// does goes through here, against the Store interface.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"mrgcar/internal/util"
	"mrgcar/pkg/auth"
	"mrgcar/pkg/domain"
	"mrgcar/pkg/queue"
	"mrgcar/pkg/storage"
	"mrgcar/pkg/store"
	"mrgcar/pkg/validate"
)

const defaultPhotoURLExpiry = 15 * time.Minute

// Config wires the application dependencies. Events and Photos are
// optional; the corresponding features degrade gracefully when absent.
type Config struct {
	Store          store.Store
	Sessions       *auth.Sessions
	Events         queue.Publisher
	Photos         storage.PhotoStore
	PhotoURLExpiry time.Duration
}

// App implements the application use cases.
type App struct {
	store          store.Store
	sessions       *auth.Sessions
	events         queue.Publisher
	photos         storage.PhotoStore
	photoURLExpiry time.Duration
}

// New validates the config and builds the app core.
func New(cfg Config) (*App, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("app requires a store")
	}
	if cfg.Sessions == nil {
		return nil, fmt.Errorf("app requires a session signer")
	}
	expiry := cfg.PhotoURLExpiry
	if expiry <= 0 {
		expiry = defaultPhotoURLExpiry
	}
	return &App{
		store:          cfg.Store,
		sessions:       cfg.Sessions,
		events:         cfg.Events,
		photos:         cfg.Photos,
		photoURLExpiry: expiry,
	}, nil
}

// ListCars returns listings with presigned photo URLs when available.
func (a *App) ListCars(ctx context.Context, filter store.CarFilter) ([]domain.Car, error) {
	cars, err := a.store.ListCars(filter)
	if err != nil {
		return nil, err
	}
	for i := range cars {
		a.fillPhotoURL(ctx, &cars[i])
	}
	return cars, nil
}

// GetCar returns one listing.
func (a *App) GetCar(ctx context.Context, id string) (domain.Car, error) {
	car, ok, err := a.store.GetCar(id)
	if err != nil {
		return domain.Car{}, err
	}
	if !ok {
		return domain.Car{}, ErrCarNotFound
	}
	a.fillPhotoURL(ctx, &car)
	return car, nil
}

// CreateCar records a listing. Listings are keyed on
// (make, model, variant); posting the same identity again updates it.
func (a *App) CreateCar(ctx context.Context, req validate.CreateCarRequest) (domain.Car, error) {
	now := time.Now().UTC()
	car := domain.Car{
		ID:           uuid.NewString(),
		Make:         strings.TrimSpace(req.Make),
		Model:        strings.TrimSpace(req.Model),
		Variant:      strings.TrimSpace(req.Variant),
		Year:         req.Year,
		PriceCents:   req.PriceCents,
		MileageKM:    req.MileageKM,
		Fuel:         domain.FuelType(req.Fuel),
		Transmission: domain.Transmission(req.Transmission),
		Color:        strings.TrimSpace(req.Color),
		Description:  req.Description,
		Specs:        req.Specs,
		Status:       domain.CarAvailable,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := a.store.UpsertCar(car); err != nil {
		return domain.Car{}, err
	}
	a.publish(ctx, queue.Event{Type: queue.EventCarListed, EntityID: car.ID})
	return car, nil
}

// AttachCarPhoto stores the photo object and records its key. Each
// upload gets a fresh key so cached URLs of the old photo go stale
// instead of silently changing content; the old object is removed
// best-effort.
func (a *App) AttachCarPhoto(ctx context.Context, carID string, r io.Reader, size int64, contentType string) (string, error) {
	if a.photos == nil {
		return "", ErrPhotosDisabled
	}
	car, ok, err := a.store.GetCar(carID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrCarNotFound
	}
	key := "cars/" + carID + "/" + util.NewID()
	if err := a.photos.Put(ctx, key, r, size, contentType); err != nil {
		return "", fmt.Errorf("store photo: %w", err)
	}
	if err := a.store.SetCarPhoto(carID, key); err != nil {
		return "", err
	}
	if car.PhotoKey != "" && car.PhotoKey != key {
		if err := a.photos.Delete(ctx, car.PhotoKey); err != nil {
			util.LoggerFromContext(ctx).Warn("delete old photo", "car_id", carID, "key", car.PhotoKey, "err", err)
		}
	}
	return key, nil
}

// ListCategories returns the forum structure.
func (a *App) ListCategories(ctx context.Context) ([]domain.ForumCategory, error) {
	return a.store.ListCategories()
}

// ListPostsBySlug returns posts of the category with the given slug.
func (a *App) ListPostsBySlug(ctx context.Context, slug string, limit int) ([]domain.ForumPost, error) {
	category, ok, err := a.store.GetCategoryBySlug(slug)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCategoryNotFound
	}
	return a.store.ListPostsByCategory(category.ID, limit)
}

// CreatePost records a forum post in an existing category.
func (a *App) CreatePost(ctx context.Context, req validate.CreateForumPostRequest) (domain.ForumPost, error) {
	if _, ok, err := a.store.GetCategory(req.CategoryID); err != nil {
		return domain.ForumPost{}, err
	} else if !ok {
		return domain.ForumPost{}, ErrCategoryNotFound
	}
	now := time.Now().UTC()
	post := domain.ForumPost{
		ID:         uuid.NewString(),
		CategoryID: req.CategoryID,
		Slug:       domain.Slugify(req.Title),
		Title:      strings.TrimSpace(req.Title),
		Body:       req.Body,
		Author:     strings.TrimSpace(req.Author),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := a.store.CreateForumPost(post); err != nil {
		// The unique (category_id, slug) index is the duplicate signal;
		// any other store error is an infrastructure failure.
		if errors.Is(err, store.ErrDuplicate) {
			return domain.ForumPost{}, ErrDuplicatePost
		}
		return domain.ForumPost{}, err
	}
	a.publish(ctx, queue.Event{Type: queue.EventForumPostCreated, EntityID: post.ID})
	return post, nil
}

// Login checks admin credentials and issues a session token.
func (a *App) Login(ctx context.Context, email, password string) (string, domain.AdminUser, error) {
	admin, ok, err := a.store.GetAdminByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", domain.AdminUser{}, err
	}
	if !ok || !auth.CheckPassword(password, admin.PasswordHash) {
		return "", domain.AdminUser{}, ErrInvalidCredentials
	}
	if admin.Status == domain.StatusDisabled {
		return "", domain.AdminUser{}, ErrAdminDisabled
	}
	token, err := a.sessions.Issue(auth.SessionClaims{
		AdminID: admin.ID,
		Email:   admin.Email,
		Role:    string(admin.Role),
	})
	if err != nil {
		return "", domain.AdminUser{}, err
	}
	return token, admin, nil
}

// AuthenticateToken verifies a session token.
func (a *App) AuthenticateToken(token string) (auth.SessionClaims, error) {
	return a.sessions.Verify(token)
}

func (a *App) fillPhotoURL(ctx context.Context, car *domain.Car) {
	if a.photos == nil || car.PhotoKey == "" {
		return
	}
	url, err := a.photos.PresignGet(ctx, car.PhotoKey, a.photoURLExpiry)
	if err != nil {
		util.LoggerFromContext(ctx).Warn("presign photo url", "car_id", car.ID, "err", err)
		return
	}
	car.PhotoURL = url
}

// publish delivers an event best-effort; a broker outage never fails
// the originating request.
func (a *App) publish(ctx context.Context, event queue.Event) {
	if a.events == nil {
		return
	}
	if err := a.events.Publish(ctx, event); err != nil {
		util.LoggerFromContext(ctx).Warn("publish event", "type", event.Type, "entity_id", event.EntityID, "err", err)
	}
}
