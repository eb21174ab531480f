package app

import (
	"github.com/gin-gonic/gin"

	"github.com/firstpost/journal/internal/middleware"
	"github.com/firstpost/journal/internal/modules/auth"
	"github.com/firstpost/journal/internal/modules/category"
	"github.com/firstpost/journal/internal/modules/contact"
	"github.com/firstpost/journal/internal/modules/hero"
	"github.com/firstpost/journal/internal/modules/post"
	"github.com/firstpost/journal/internal/modules/stats"
	"github.com/firstpost/journal/internal/modules/subscriber"
	"github.com/firstpost/journal/internal/pkg/mail"
	"github.com/firstpost/journal/internal/pkg/response"
)

func (a *App) registerRoutes(sender *mail.Sender) {
	r := a.router
	store := a.store
	authMW := middleware.Auth()

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.GET("/health", func(c *gin.Context) {
		response.OK(c, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	authSvc := auth.NewService(store.Users())
	auth.NewHandler(authSvc).RegisterRoutes(api, authMW)

	postSvc := post.NewService(store, sender, a.cfg.BaseURL, a.logger)
	post.NewHandler(postSvc).RegisterRoutes(api, authMW)

	categorySvc := category.NewService(store.Categories())
	category.NewHandler(categorySvc).RegisterRoutes(api, authMW)

	subscriberSvc := subscriber.NewService(store.Subscribers())
	subscriber.NewHandler(subscriberSvc).RegisterRoutes(api, authMW)

	contactSvc := contact.NewService(store.Contacts())
	contact.NewHandler(contactSvc).RegisterRoutes(api, authMW)

	heroSvc := hero.NewService(store.HeroSlides())
	hero.NewHandler(heroSvc).RegisterRoutes(api, authMW)

	statsSvc := stats.NewService(store)
	stats.NewHandler(statsSvc).RegisterRoutes(api, authMW)
}
