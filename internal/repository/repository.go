package repository

import (
	"context"
	"errors"

	"github.com/firstpost/journal/internal/models"
)

// Sentinel errors shared by both backends. Drivers map their native
// failures onto these so callers never branch on driver types.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// Page is a limit/offset window. Page numbers are 1-based.
type Page struct {
	Page int
	Size int
}

func (p Page) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Size
}

// PostFilter narrows post listings. Search matches title/content and
// AdminSearch matches title/slug, both case-insensitive substring.
// CategoryID, when set, restricts to posts referencing that category.
type PostFilter struct {
	Search      string
	AdminSearch string
	CategoryID  string
}

// SubscriberFilter narrows subscriber listings. Status is "", "active"
// or "blocked".
type SubscriberFilter struct {
	Search string
	Status string
}

// SubscriberStats are the admin list aggregates.
type SubscriberStats struct {
	Total   int64 `json:"total"`
	Active  int64 `json:"active"`
	Blocked int64 `json:"blocked"`
}

// PostRepository persists posts. List and search results are ordered
// newest-first; TopByViews breaks view-count ties newest-first.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, filter PostFilter, page Page) ([]models.Post, int64, error)
	Latest(ctx context.Context, limit int) ([]models.Post, error)
	IncrementViews(ctx context.Context, id string) error
	TopByViews(ctx context.Context, limit int) ([]models.Post, error)
	TotalViews(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// CategoryRepository persists categories, listed by name ascending.
type CategoryRepository interface {
	List(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	Create(ctx context.Context, cat *models.Category) error
	Update(ctx context.Context, cat *models.Category) error
	Delete(ctx context.Context, id string) error
}

// SubscriberRepository persists newsletter subscribers.
type SubscriberRepository interface {
	Create(ctx context.Context, sub *models.Subscriber) error
	GetByID(ctx context.Context, id string) (*models.Subscriber, error)
	GetByEmail(ctx context.Context, email string) (*models.Subscriber, error)
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter SubscriberFilter) ([]models.Subscriber, error)
	ListActive(ctx context.Context) ([]models.Subscriber, error)
	Stats(ctx context.Context) (SubscriberStats, error)
}

// ContactRepository persists contact-form messages.
type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	List(ctx context.Context, search string) ([]models.Contact, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// HeroSlideRepository persists homepage hero slides. Listings are
// ordered sort_order ascending, then created_at descending.
type HeroSlideRepository interface {
	ListAll(ctx context.Context) ([]models.HeroSlide, error)
	ListActive(ctx context.Context) ([]models.HeroSlide, error)
	GetByID(ctx context.Context, id string) (*models.HeroSlide, error)
	Create(ctx context.Context, slide *models.HeroSlide) error
	Update(ctx context.Context, slide *models.HeroSlide) error
	Delete(ctx context.Context, id string) error
}

// UserRepository persists admin credentials.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Count(ctx context.Context) (int64, error)
}

// Store aggregates the entity repositories. Two interchangeable
// implementations exist: a document store (mongo) and an embedded
// relational store (sqlite), selected at startup by configuration.
type Store interface {
	Posts() PostRepository
	Categories() CategoryRepository
	Subscribers() SubscriberRepository
	Contacts() ContactRepository
	HeroSlides() HeroSlideRepository
	Users() UserRepository
	Close(ctx context.Context) error
}
