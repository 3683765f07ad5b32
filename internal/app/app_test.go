package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"mrgcar/pkg/auth"
	"mrgcar/pkg/domain"
	"mrgcar/pkg/queue"
	"mrgcar/pkg/seed"
	"mrgcar/pkg/store"
	"mrgcar/pkg/validate"
)

type capturedEvents struct {
	events []queue.Event
}

func (c *capturedEvents) Publish(_ context.Context, event queue.Event) error {
	c.events = append(c.events, event)
	return nil
}

type fakePhotos struct {
	objects map[string][]byte
}

func (f *fakePhotos) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if f.objects == nil {
		f.objects = map[string][]byte{}
	}
	f.objects[key] = data
	return nil
}

func (f *fakePhotos) PresignGet(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://photos.test/" + key, nil
}

func (f *fakePhotos) Delete(_ context.Context, key string) error {
	delete(f.objects, key)
	return nil
}

func newTestApp(t *testing.T, cfg Config) (*App, *store.MemoryStore) {
	t.Helper()
	mem := store.NewMemoryStore()
	if cfg.Store == nil {
		cfg.Store = mem
	}
	if cfg.Sessions == nil {
		sessions, err := auth.NewSessions("app-test-secret", time.Hour)
		if err != nil {
			t.Fatalf("new sessions: %v", err)
		}
		cfg.Sessions = sessions
	}
	a, err := New(cfg)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return a, mem
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	a, mem := newTestApp(t, Config{})
	seed.New(mem, nil).SeedAdmin("admin@mrgcar.test", "correct-horse-battery")

	token, admin, err := a.Login(context.Background(), "Admin@mrgcar.test", "correct-horse-battery")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if admin.Email != "admin@mrgcar.test" {
		t.Fatalf("unexpected admin: %+v", admin)
	}
	claims, err := a.AuthenticateToken(token)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if claims.AdminID != admin.ID || claims.Role != string(domain.RoleAdmin) {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestLoginRejectsBadPasswordAndUnknownEmail(t *testing.T) {
	a, mem := newTestApp(t, Config{})
	seed.New(mem, nil).SeedAdmin("admin@mrgcar.test", "correct-horse-battery")

	if _, _, err := a.Login(context.Background(), "admin@mrgcar.test", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("bad password: err = %v", err)
	}
	if _, _, err := a.Login(context.Background(), "nobody@mrgcar.test", "whatever"); err != ErrInvalidCredentials {
		t.Fatalf("unknown email: err = %v", err)
	}
}

func TestLoginRejectsDisabledAdmin(t *testing.T) {
	a, mem := newTestApp(t, Config{})
	hash, _ := auth.HashPassword("correct-horse-battery")
	_ = mem.UpsertAdminUser(domain.AdminUser{
		ID: "adm-1", Email: "admin@mrgcar.test", PasswordHash: hash,
		Role: domain.RoleAdmin, Status: domain.StatusDisabled,
	})

	if _, _, err := a.Login(context.Background(), "admin@mrgcar.test", "correct-horse-battery"); err != ErrAdminDisabled {
		t.Fatalf("disabled admin: err = %v", err)
	}
}

func TestCreateCarPublishesEvent(t *testing.T) {
	events := &capturedEvents{}
	a, _ := newTestApp(t, Config{Events: events})

	car, err := a.CreateCar(context.Background(), validate.CreateCarRequest{
		Make: "Toyota", Model: "Corolla", Variant: "1.8", Year: 2021,
		PriceCents: 100, Fuel: "hybrid", Transmission: "automatic",
	})
	if err != nil {
		t.Fatalf("create car: %v", err)
	}
	if len(events.events) != 1 || events.events[0].Type != queue.EventCarListed || events.events[0].EntityID != car.ID {
		t.Fatalf("unexpected events: %+v", events.events)
	}
}

func TestCreatePostRejectsUnknownCategoryAndDuplicates(t *testing.T) {
	events := &capturedEvents{}
	a, mem := newTestApp(t, Config{Events: events})
	seed.New(mem, nil).SeedForum()
	category, _, _ := mem.GetCategoryBySlug("general")

	req := validate.CreateForumPostRequest{
		CategoryID: category.ID,
		Title:      "Road trip recommendations",
		Body:       "Planning a 2000 km loop this summer.",
		Author:     "wanderer",
	}
	post, err := a.CreatePost(context.Background(), req)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if post.Slug != "road-trip-recommendations" {
		t.Fatalf("unexpected slug %q", post.Slug)
	}
	if len(events.events) != 1 || events.events[0].Type != queue.EventForumPostCreated {
		t.Fatalf("unexpected events: %+v", events.events)
	}

	if _, err := a.CreatePost(context.Background(), req); err != ErrDuplicatePost {
		t.Fatalf("duplicate post: err = %v", err)
	}

	req.CategoryID = "missing-category"
	if _, err := a.CreatePost(context.Background(), req); err != ErrCategoryNotFound {
		t.Fatalf("unknown category: err = %v", err)
	}
}

type brokenPostStore struct {
	store.Store
	err error
}

func (b *brokenPostStore) CreateForumPost(domain.ForumPost) error { return b.err }

func TestCreatePostPropagatesStoreFailure(t *testing.T) {
	mem := store.NewMemoryStore()
	seed.New(mem, nil).SeedForum()
	category, ok, err := mem.GetCategoryBySlug("general")
	if err != nil || !ok {
		t.Fatalf("general category missing: ok=%v err=%v", ok, err)
	}

	storeErr := errors.New("driver: bad connection")
	a, _ := newTestApp(t, Config{Store: &brokenPostStore{Store: mem, err: storeErr}})

	_, err = a.CreatePost(context.Background(), validate.CreateForumPostRequest{
		CategoryID: category.ID,
		Title:      "Coolant flush interval",
		Body:       "Handbook says never, dealer says every two years.",
		Author:     "thermostat",
	})
	if !errors.Is(err, storeErr) {
		t.Fatalf("store failure not propagated: %v", err)
	}
	if errors.Is(err, ErrDuplicatePost) {
		t.Fatal("infrastructure failure must not look like a duplicate")
	}
}

func TestAttachCarPhotoStoresObjectAndKey(t *testing.T) {
	photos := &fakePhotos{}
	a, mem := newTestApp(t, Config{Photos: photos})
	_ = mem.UpsertCar(domain.Car{ID: "car-1", Make: "Kia", Model: "Ceed", Variant: "1.4"})

	key, err := a.AttachCarPhoto(context.Background(), "car-1", bytes.NewReader([]byte("jpeg-bytes")), 10, "image/jpeg")
	if err != nil {
		t.Fatalf("attach photo: %v", err)
	}
	if !strings.HasPrefix(key, "cars/car-1/") {
		t.Fatalf("unexpected key %q", key)
	}
	if string(photos.objects[key]) != "jpeg-bytes" {
		t.Fatal("photo bytes not stored")
	}

	car, err := a.GetCar(context.Background(), "car-1")
	if err != nil {
		t.Fatalf("get car: %v", err)
	}
	if car.PhotoURL != "https://photos.test/"+key {
		t.Fatalf("photo url not presigned: %q", car.PhotoURL)
	}
}

func TestAttachCarPhotoReplacesOldObject(t *testing.T) {
	photos := &fakePhotos{}
	a, mem := newTestApp(t, Config{Photos: photos})
	_ = mem.UpsertCar(domain.Car{ID: "car-1", Make: "Kia", Model: "Ceed", Variant: "1.4"})

	first, err := a.AttachCarPhoto(context.Background(), "car-1", bytes.NewReader([]byte("v1")), 2, "image/jpeg")
	if err != nil {
		t.Fatalf("first upload: %v", err)
	}
	second, err := a.AttachCarPhoto(context.Background(), "car-1", bytes.NewReader([]byte("v2")), 2, "image/jpeg")
	if err != nil {
		t.Fatalf("second upload: %v", err)
	}
	if first == second {
		t.Fatalf("expected a fresh key per upload, got %q twice", first)
	}
	if _, ok := photos.objects[first]; ok {
		t.Fatalf("old object %q should have been removed", first)
	}
	if string(photos.objects[second]) != "v2" {
		t.Fatal("new photo bytes not stored")
	}
}

func TestAttachCarPhotoWithoutStorage(t *testing.T) {
	a, mem := newTestApp(t, Config{})
	_ = mem.UpsertCar(domain.Car{ID: "car-1", Make: "Kia", Model: "Ceed", Variant: "1.4"})

	if _, err := a.AttachCarPhoto(context.Background(), "car-1", bytes.NewReader(nil), 0, "image/jpeg"); err != ErrPhotosDisabled {
		t.Fatalf("expected ErrPhotosDisabled, got %v", err)
	}
}
