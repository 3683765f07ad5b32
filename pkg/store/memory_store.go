package store

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"mrgcar/pkg/domain"
)

// MemoryStore keeps everything in-process. It mirrors the Postgres
// store's uniqueness semantics so seeder and handler tests exercise the
// same upsert behavior without a database.
type MemoryStore struct {
	mu         sync.RWMutex
	cars       map[string]domain.Car // key: car ID
	carKeys    map[string]string     // make|model|variant -> car ID
	carOrder   []string
	admins     map[string]domain.AdminUser // key: email
	categories map[string]domain.ForumCategory
	catSlugs   map[string]string // slug -> category ID
	posts      map[string]domain.ForumPost
	postKeys   map[string]string // categoryID|slug -> post ID
	postOrder  []string
}

// NewMemoryStore initializes an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cars:       make(map[string]domain.Car),
		carKeys:    make(map[string]string),
		admins:     make(map[string]domain.AdminUser),
		categories: make(map[string]domain.ForumCategory),
		catSlugs:   make(map[string]string),
		posts:      make(map[string]domain.ForumPost),
		postKeys:   make(map[string]string),
	}
}

func carIdentity(c domain.Car) string {
	return strings.ToLower(c.Make) + "|" + strings.ToLower(c.Model) + "|" + strings.ToLower(c.Variant)
}

// UpsertCar inserts or replaces a car keyed on (make, model, variant).
func (m *MemoryStore) UpsertCar(car domain.Car) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := carIdentity(car)
	if existingID, ok := m.carKeys[key]; ok {
		existing := m.cars[existingID]
		car.ID = existing.ID
		car.CreatedAt = existing.CreatedAt
		car.UpdatedAt = time.Now().UTC()
		m.cars[existingID] = car
		return nil
	}
	m.carKeys[key] = car.ID
	m.carOrder = append(m.carOrder, car.ID)
	m.cars[car.ID] = car
	return nil
}

// GetCar retrieves a car by ID.
func (m *MemoryStore) GetCar(id string) (domain.Car, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.cars[id]
	return c, ok, nil
}

// ListCars returns cars in reverse insertion order (newest first).
func (m *MemoryStore) ListCars(filter CarFilter) ([]domain.Car, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]domain.Car, 0, len(m.carOrder))
	for i := len(m.carOrder) - 1; i >= 0; i-- {
		c, ok := m.cars[m.carOrder[i]]
		if !ok {
			continue
		}
		if filter.Make != "" && !strings.EqualFold(filter.Make, c.Make) {
			continue
		}
		if filter.Status != "" && filter.Status != c.Status {
			continue
		}
		res = append(res, c)
		if filter.Limit > 0 && len(res) >= filter.Limit {
			break
		}
	}
	return res, nil
}

// SetCarPhoto records the photo key on an existing car.
func (m *MemoryStore) SetCarPhoto(id, photoKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.cars[id]
	if !ok {
		return fmt.Errorf("car %s not found", id)
	}
	c.PhotoKey = photoKey
	c.UpdatedAt = time.Now().UTC()
	m.cars[id] = c
	return nil
}

// UpsertAdminUser registers or updates an admin keyed on email.
func (m *MemoryStore) UpsertAdminUser(user domain.AdminUser) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	email := strings.ToLower(user.Email)
	if existing, ok := m.admins[email]; ok {
		user.ID = existing.ID
		user.CreatedAt = existing.CreatedAt
		user.UpdatedAt = time.Now().UTC()
	}
	m.admins[email] = user
	return nil
}

// GetAdminByEmail looks up an admin by email.
func (m *MemoryStore) GetAdminByEmail(email string) (domain.AdminUser, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.admins[strings.ToLower(email)]
	return u, ok, nil
}

// UpsertForumCategory inserts or refreshes a category keyed on slug.
func (m *MemoryStore) UpsertForumCategory(category domain.ForumCategory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existingID, ok := m.catSlugs[category.Slug]; ok {
		existing := m.categories[existingID]
		category.ID = existing.ID
		category.CreatedAt = existing.CreatedAt
		category.UpdatedAt = time.Now().UTC()
		m.categories[existingID] = category
		return nil
	}
	m.catSlugs[category.Slug] = category.ID
	m.categories[category.ID] = category
	return nil
}

// ListCategories returns categories ordered by position.
func (m *MemoryStore) ListCategories() ([]domain.ForumCategory, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]domain.ForumCategory, 0, len(m.categories))
	for _, c := range m.categories {
		res = append(res, c)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Position < res[j].Position })
	return res, nil
}

// GetCategoryBySlug looks up a category by slug.
func (m *MemoryStore) GetCategoryBySlug(slug string) (domain.ForumCategory, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.catSlugs[slug]
	if !ok {
		return domain.ForumCategory{}, false, nil
	}
	c, ok := m.categories[id]
	return c, ok, nil
}

// GetCategory returns one category by ID.
func (m *MemoryStore) GetCategory(id string) (domain.ForumCategory, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.categories[id]
	return c, ok, nil
}

// UpsertForumPost inserts or refreshes a post keyed on (categoryID, slug).
func (m *MemoryStore) UpsertForumPost(post domain.ForumPost) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := post.CategoryID + "|" + post.Slug
	if existingID, ok := m.postKeys[key]; ok {
		existing := m.posts[existingID]
		post.ID = existing.ID
		post.CreatedAt = existing.CreatedAt
		post.UpdatedAt = time.Now().UTC()
		m.posts[existingID] = post
		return nil
	}
	m.postKeys[key] = post.ID
	m.postOrder = append(m.postOrder, post.ID)
	m.posts[post.ID] = post
	return nil
}

// CreateForumPost records a new post; duplicate (categoryID, slug) fails.
func (m *MemoryStore) CreateForumPost(post domain.ForumPost) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := post.CategoryID + "|" + post.Slug
	if _, ok := m.postKeys[key]; ok {
		return fmt.Errorf("post %q in category %s: %w", post.Slug, post.CategoryID, ErrDuplicate)
	}
	m.postKeys[key] = post.ID
	m.postOrder = append(m.postOrder, post.ID)
	m.posts[post.ID] = post
	return nil
}

// ListPostsByCategory returns posts in a category, pinned first then newest.
func (m *MemoryStore) ListPostsByCategory(categoryID string, limit int) ([]domain.ForumPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	pinned := make([]domain.ForumPost, 0)
	rest := make([]domain.ForumPost, 0)
	for i := len(m.postOrder) - 1; i >= 0; i-- {
		p, ok := m.posts[m.postOrder[i]]
		if !ok || p.CategoryID != categoryID {
			continue
		}
		if p.Pinned {
			pinned = append(pinned, p)
		} else {
			rest = append(rest, p)
		}
	}
	res := append(pinned, rest...)
	if limit > 0 && len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}
