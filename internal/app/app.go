package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/firstpost/journal/internal/config"
	"github.com/firstpost/journal/internal/database"
	"github.com/firstpost/journal/internal/middleware"
	"github.com/firstpost/journal/internal/pkg/jwt"
	"github.com/firstpost/journal/internal/pkg/mail"
	"github.com/firstpost/journal/internal/repository"
)

// App holds all application dependencies.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	store  repository.Store
	logger *zap.Logger
}

// New initializes the application: config → store → seed → routes.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	jwt.SetSecret(cfg.JWTSecret)

	ctx := context.Background()
	store, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	if err := database.Seed(ctx, store, cfg, logger); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	logger.Info("store ready", zap.String("driver", cfg.Database.Driver))

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	router.Use(cors.New(corsConfig(cfg)))

	sender := mail.New(cfg.Mail)

	app := &App{cfg: cfg, router: router, store: store, logger: logger}
	app.registerRoutes(sender)
	return app, nil
}

func corsConfig(cfg *config.AppConfig) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}
	if len(cfg.AllowedOrigins) > 0 && !cfg.IsDev() {
		c.AllowOriginFunc = originMatcher(cfg.AllowedOrigins)
	} else {
		c.AllowOriginFunc = func(origin string) bool { return true }
	}
	return c
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

// Shutdown closes the store.
func (a *App) Shutdown(ctx context.Context) error {
	return a.store.Close(ctx)
}
