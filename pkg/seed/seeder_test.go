package seed

import (
	"testing"

	"mrgcar/pkg/domain"
	"mrgcar/pkg/store"
)

func TestSeedCarsIsIdempotent(t *testing.T) {
	s := store.NewMemoryStore()
	seeder := New(s, nil)

	first := seeder.SeedCars()
	if first.Failed != 0 || first.OK != len(Cars) {
		t.Fatalf("first run: %+v", first)
	}

	second := seeder.SeedCars()
	if second.Failed != 0 || second.OK != first.OK {
		t.Fatalf("second run: %+v", second)
	}

	cars, err := s.ListCars(store.CarFilter{})
	if err != nil {
		t.Fatalf("list cars: %v", err)
	}
	if len(cars) != len(Cars) {
		t.Fatalf("re-seed duplicated rows: %d cars for %d records", len(cars), len(Cars))
	}
}

func TestSeedAdminRotatesPassword(t *testing.T) {
	s := store.NewMemoryStore()
	seeder := New(s, nil)

	if res := seeder.SeedAdmin("Admin@mrgcar.test", "first-password"); res.OK != 1 {
		t.Fatalf("first seed: %+v", res)
	}
	before, _, _ := s.GetAdminByEmail("admin@mrgcar.test")

	if res := seeder.SeedAdmin("admin@mrgcar.test", "second-password"); res.OK != 1 {
		t.Fatalf("second seed: %+v", res)
	}
	after, ok, err := s.GetAdminByEmail("admin@mrgcar.test")
	if err != nil || !ok {
		t.Fatalf("get admin: ok=%v err=%v", ok, err)
	}
	if after.ID != before.ID {
		t.Fatalf("re-seed must keep admin ID: %s vs %s", after.ID, before.ID)
	}
	if after.PasswordHash == before.PasswordHash {
		t.Fatal("re-seed with a new password must rotate the hash")
	}
	if after.Role != domain.RoleAdmin || after.Status != domain.StatusActive {
		t.Fatalf("unexpected admin: %+v", after)
	}
}

func TestSeedForumLinksPostsToStoredCategories(t *testing.T) {
	s := store.NewMemoryStore()
	seeder := New(s, nil)

	res := seeder.SeedForum()
	if res.Failed != 0 || res.OK != len(Categories)+len(Posts) {
		t.Fatalf("forum seed: %+v", res)
	}

	categories, err := s.ListCategories()
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(categories) != len(Categories) {
		t.Fatalf("got %d categories, want %d", len(categories), len(Categories))
	}
	if categories[0].Slug != "announcements" {
		t.Fatalf("categories not ordered by position: %+v", categories[0])
	}

	posts, err := s.ListPostsByCategory(categories[0].ID, 0)
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("announcements should hold 2 posts, got %d", len(posts))
	}
	if !posts[0].Pinned {
		t.Fatal("pinned welcome post should come first")
	}

	// Second run keeps category IDs stable and does not duplicate posts.
	res2 := seeder.SeedForum()
	if res2.Failed != 0 || res2.OK != res.OK {
		t.Fatalf("forum re-seed: %+v", res2)
	}
	postsAgain, _ := s.ListPostsByCategory(categories[0].ID, 0)
	if len(postsAgain) != 2 {
		t.Fatalf("re-seed duplicated posts: %d", len(postsAgain))
	}
}

func TestSeededPostSlugsAreStable(t *testing.T) {
	s := store.NewMemoryStore()
	seeder := New(s, nil)
	seeder.SeedForum()

	category, ok, err := s.GetCategoryBySlug("announcements")
	if err != nil || !ok {
		t.Fatalf("get category: ok=%v err=%v", ok, err)
	}
	posts, _ := s.ListPostsByCategory(category.ID, 0)
	for _, p := range posts {
		if p.Slug != domain.Slugify(p.Title) {
			t.Fatalf("post slug %q does not match title %q", p.Slug, p.Title)
		}
	}
}
