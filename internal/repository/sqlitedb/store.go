// Package sqlitedb implements the repository interfaces on an embedded
// SQLite database through gorm. It is the zero-dependency deployment
// option; the mongodocs package is the document-store counterpart.
package sqlitedb

import (
	"context"
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/firstpost/journal/internal/models"
	"github.com/firstpost/journal/internal/repository"
)

// Store is the SQLite-backed repository.Store.
type Store struct {
	db *gorm.DB

	posts       *postRepo
	categories  *categoryRepo
	subscribers *subscriberRepo
	contacts    *contactRepo
	heroSlides  *heroSlideRepo
	users       *userRepo
}

// Open opens (creating if needed) the database at path and migrates the
// schema. Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}

	if err := db.AutoMigrate(
		&models.Post{},
		&models.Category{},
		&models.Subscriber{},
		&models.Contact{},
		&models.HeroSlide{},
		&models.User{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	s := &Store{db: db}
	s.posts = &postRepo{db: db}
	s.categories = &categoryRepo{db: db}
	s.subscribers = &subscriberRepo{db: db}
	s.contacts = &contactRepo{db: db}
	s.heroSlides = &heroSlideRepo{db: db}
	s.users = &userRepo{db: db}
	return s, nil
}

func (s *Store) Posts() repository.PostRepository             { return s.posts }
func (s *Store) Categories() repository.CategoryRepository    { return s.categories }
func (s *Store) Subscribers() repository.SubscriberRepository { return s.subscribers }
func (s *Store) Contacts() repository.ContactRepository       { return s.contacts }
func (s *Store) HeroSlides() repository.HeroSlideRepository   { return s.heroSlides }
func (s *Store) Users() repository.UserRepository             { return s.users }

func (s *Store) Close(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// translate maps gorm errors onto the repository sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repository.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return repository.ErrDuplicate
	default:
		return err
	}
}
