// Package database opens the configured persistence backend and seeds
// the initial content a fresh deployment needs.
package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/firstpost/journal/internal/config"
	"github.com/firstpost/journal/internal/models"
	"github.com/firstpost/journal/internal/repository"
	"github.com/firstpost/journal/internal/repository/mongodocs"
	"github.com/firstpost/journal/internal/repository/sqlitedb"
)

// Open builds the repository.Store selected by the config.
func Open(ctx context.Context, cfg *config.AppConfig) (repository.Store, error) {
	switch cfg.Database.Driver {
	case config.DriverMongo:
		return mongodocs.Open(ctx, cfg.Database.Mongo.URI, cfg.Database.Mongo.Name)
	case config.DriverSQLite:
		path := cfg.Database.SQLite.Path
		if dir := filepath.Dir(path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create data dir %q: %w", dir, err)
			}
		}
		return sqlitedb.Open(path)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
}

var defaultCategories = []models.Category{
	{Name: "Technology", Slug: "technology"},
	{Name: "Travel", Slug: "travel"},
	{Name: "Food", Slug: "food"},
	{Name: "Lifestyle", Slug: "lifestyle"},
	{Name: "Health", Slug: "health"},
	{Name: "Business", Slug: "business"},
	{Name: "Entertainment", Slug: "entertainment"},
	{Name: "Sports", Slug: "sports"},
	{Name: "Education", Slug: "education"},
}

// Seed provisions first-run data: the admin credential, the default
// category set and one hero slide. Each step is skipped when data of
// that kind already exists, so repeated startups are no-ops.
func Seed(ctx context.Context, store repository.Store, cfg *config.AppConfig, logger *zap.Logger) error {
	if err := seedAdmin(ctx, store, cfg, logger); err != nil {
		return err
	}
	if err := seedCategories(ctx, store, logger); err != nil {
		return err
	}
	return seedHeroSlide(ctx, store, logger)
}

func seedAdmin(ctx context.Context, store repository.Store, cfg *config.AppConfig, logger *zap.Logger) error {
	count, err := store.Users().Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	user := models.User{Username: cfg.Admin.Username, Password: string(hash)}
	if err := store.Users().Create(ctx, &user); err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}
	logger.Info("seeded admin user", zap.String("username", user.Username))
	return nil
}

func seedCategories(ctx context.Context, store repository.Store, logger *zap.Logger) error {
	existing, err := store.Categories().List(ctx)
	if err != nil {
		return fmt.Errorf("list categories: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for i := range defaultCategories {
		cat := defaultCategories[i]
		if err := store.Categories().Create(ctx, &cat); err != nil {
			return fmt.Errorf("seed category %q: %w", cat.Slug, err)
		}
	}
	logger.Info("seeded default categories", zap.Int("count", len(defaultCategories)))
	return nil
}

func seedHeroSlide(ctx context.Context, store repository.Store, logger *zap.Logger) error {
	existing, err := store.HeroSlides().ListAll(ctx)
	if err != nil {
		return fmt.Errorf("list hero slides: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	slide := models.HeroSlide{
		Title:      "Welcome to FirstPost",
		Subtitle:   "Stories worth your time, delivered fresh",
		ImageURL:   "/images/hero-default.jpg",
		ButtonText: "Start Reading",
		ButtonLink: "/search",
		IsActive:   true,
		SortOrder:  0,
	}
	if err := store.HeroSlides().Create(ctx, &slide); err != nil {
		return fmt.Errorf("seed hero slide: %w", err)
	}
	logger.Info("seeded default hero slide")
	return nil
}
