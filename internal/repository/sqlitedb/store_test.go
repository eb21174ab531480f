package sqlitedb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/firstpost/journal/internal/models"
	"github.com/firstpost/journal/internal/repository"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close(context.Background()) })
	return store
}

func TestPostCRUD(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	post := &models.Post{Title: "Hello World", Slug: "hello-world", Content: "body"}
	if err := store.Posts().Create(ctx, post); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if post.ID == "" {
		t.Fatal("Create should assign a UUID")
	}

	got, err := store.Posts().GetBySlug(ctx, "hello-world")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if got.Title != "Hello World" {
		t.Errorf("Title = %q", got.Title)
	}

	got.Title = "Hello Again"
	if err := store.Posts().Update(ctx, got); err != nil {
		t.Fatalf("Update: %v", err)
	}
	updated, err := store.Posts().GetByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if updated.Title != "Hello Again" {
		t.Errorf("Title after update = %q", updated.Title)
	}
	if updated.Slug != "hello-world" {
		t.Errorf("Slug changed on update: %q", updated.Slug)
	}

	if err := store.Posts().Delete(ctx, post.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Posts().GetByID(ctx, post.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound after delete", err)
	}
}

func TestPostSlugUnique(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Posts().Create(ctx, &models.Post{Title: "A", Slug: "same"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	err := store.Posts().Create(ctx, &models.Post{Title: "B", Slug: "same"})
	if !errors.Is(err, repository.ErrDuplicate) {
		t.Fatalf("err = %v, want ErrDuplicate", err)
	}

	exists, err := store.Posts().SlugExists(ctx, "same")
	if err != nil || !exists {
		t.Errorf("SlugExists = %v, %v; want true, nil", exists, err)
	}
}

func TestPostListSearchAndPaging(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	titles := []string{
		"Go Concurrency Patterns", "Cooking Pasta", "Concurrency In Practice",
		"Travel Notes", "More Go", "Even More Go", "Yet More Go",
	}
	for i, title := range titles {
		post := &models.Post{Title: title, Slug: "p-" + string(rune('a'+i)), Content: "text"}
		if err := store.Posts().Create(ctx, post); err != nil {
			t.Fatalf("Create %q: %v", title, err)
		}
		// created_at drives ordering; gorm fills it at insert time
		time.Sleep(2 * time.Millisecond)
	}

	posts, total, err := store.Posts().List(ctx, repository.PostFilter{Search: "concurrency"}, repository.Page{Page: 1, Size: 6})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 2 || len(posts) != 2 {
		t.Errorf("search matched total=%d len=%d, want 2", total, len(posts))
	}

	page1, total, err := store.Posts().List(ctx, repository.PostFilter{}, repository.Page{Page: 1, Size: 6})
	if err != nil {
		t.Fatalf("List page 1: %v", err)
	}
	if total != 7 || len(page1) != 6 {
		t.Errorf("page1 total=%d len=%d, want 7/6", total, len(page1))
	}
	page2, _, err := store.Posts().List(ctx, repository.PostFilter{}, repository.Page{Page: 2, Size: 6})
	if err != nil {
		t.Fatalf("List page 2: %v", err)
	}
	if len(page2) != 1 {
		t.Errorf("page2 len=%d, want 1", len(page2))
	}
	if page1[0].Title != "Yet More Go" {
		t.Errorf("newest-first expected, got %q first", page1[0].Title)
	}
}

func TestIncrementViewsIsAtomic(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	post := &models.Post{Title: "Counted", Slug: "counted"}
	if err := store.Posts().Create(ctx, post); err != nil {
		t.Fatalf("Create: %v", err)
	}

	for i := 0; i < 10; i++ {
		if err := store.Posts().IncrementViews(ctx, post.ID); err != nil {
			t.Fatalf("IncrementViews: %v", err)
		}
	}
	got, err := store.Posts().GetByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ViewsCount != 10 {
		t.Errorf("ViewsCount = %d, want 10", got.ViewsCount)
	}

	total, err := store.Posts().TotalViews(ctx)
	if err != nil || total != 10 {
		t.Errorf("TotalViews = %d, %v; want 10", total, err)
	}
}

func TestDeletedCategoryLeavesPostsUncategorized(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	cat := &models.Category{Name: "Tech", Slug: "tech"}
	if err := store.Categories().Create(ctx, cat); err != nil {
		t.Fatalf("create category: %v", err)
	}
	post := &models.Post{Title: "Tagged", Slug: "tagged", CategoryID: &cat.ID}
	if err := store.Posts().Create(ctx, post); err != nil {
		t.Fatalf("create post: %v", err)
	}

	if err := store.Categories().Delete(ctx, cat.ID); err != nil {
		t.Fatalf("delete category: %v", err)
	}

	got, err := store.Posts().GetByID(ctx, post.ID)
	if err != nil {
		t.Fatalf("post must survive category deletion: %v", err)
	}
	if got.CategoryName() != "Uncategorized" {
		t.Errorf("CategoryName = %q, want Uncategorized", got.CategoryName())
	}
}

func TestSubscriberEmailUnique(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	sub := &models.Subscriber{Email: "reader@example.com", IsActive: true}
	if err := store.Subscribers().Create(ctx, sub); err != nil {
		t.Fatalf("Create: %v", err)
	}
	err := store.Subscribers().Create(ctx, &models.Subscriber{Email: "reader@example.com"})
	if !errors.Is(err, repository.ErrDuplicate) {
		t.Fatalf("err = %v, want ErrDuplicate", err)
	}

	if err := store.Subscribers().SetActive(ctx, sub.ID, false); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	stats, err := store.Subscribers().Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Total != 1 || stats.Active != 0 || stats.Blocked != 1 {
		t.Errorf("Stats = %+v", stats)
	}

	active, err := store.Subscribers().ListActive(ctx)
	if err != nil || len(active) != 0 {
		t.Errorf("ListActive = %d items, %v; want 0, nil", len(active), err)
	}
}

func TestHeroSlideOrdering(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	slides := []models.HeroSlide{
		{Title: "Second", SortOrder: 2, IsActive: true},
		{Title: "First", SortOrder: 1, IsActive: true},
		{Title: "Hidden", SortOrder: 0, IsActive: false},
	}
	for i := range slides {
		if err := store.HeroSlides().Create(ctx, &slides[i]); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	active, err := store.HeroSlides().ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("active slides = %d, want 2", len(active))
	}
	if active[0].Title != "First" || active[1].Title != "Second" {
		t.Errorf("order = %q, %q; want First, Second", active[0].Title, active[1].Title)
	}

	all, err := store.HeroSlides().ListAll(ctx)
	if err != nil || len(all) != 3 {
		t.Errorf("ListAll = %d items, %v; want 3, nil", len(all), err)
	}
}

func TestUserUniqueUsername(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Users().Create(ctx, &models.User{Username: "admin", Password: "hash"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	err := store.Users().Create(ctx, &models.User{Username: "admin", Password: "hash2"})
	if !errors.Is(err, repository.ErrDuplicate) {
		t.Fatalf("err = %v, want ErrDuplicate", err)
	}

	user, err := store.Users().GetByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if user.Password != "hash" {
		t.Errorf("Password = %q", user.Password)
	}

	count, err := store.Users().Count(ctx)
	if err != nil || count != 1 {
		t.Errorf("Count = %d, %v; want 1, nil", count, err)
	}
}
