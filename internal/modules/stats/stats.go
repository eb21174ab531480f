package stats

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/firstpost/journal/internal/models"
	"github.com/firstpost/journal/internal/pkg/response"
	"github.com/firstpost/journal/internal/repository"
)

// Overview is the admin dashboard aggregate.
type Overview struct {
	TotalPosts      int64                      `json:"total_posts"`
	TotalViews      int64                      `json:"total_views"`
	TotalContacts   int64                      `json:"total_contacts"`
	Subscribers     repository.SubscriberStats `json:"subscribers"`
	TopPostsByViews []models.Post              `json:"top_posts_by_views"`
}

type Service struct {
	posts       repository.PostRepository
	contacts    repository.ContactRepository
	subscribers repository.SubscriberRepository
}

func NewService(store repository.Store) *Service {
	return &Service{
		posts:       store.Posts(),
		contacts:    store.Contacts(),
		subscribers: store.Subscribers(),
	}
}

// Overview assembles the dashboard numbers. Top posts are capped at 10,
// view-count ties break newest-first.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	totalPosts, err := s.posts.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalViews, err := s.posts.TotalViews(ctx)
	if err != nil {
		return nil, err
	}
	totalContacts, err := s.contacts.Count(ctx)
	if err != nil {
		return nil, err
	}
	subStats, err := s.subscribers.Stats(ctx)
	if err != nil {
		return nil, err
	}
	top, err := s.posts.TopByViews(ctx, 10)
	if err != nil {
		return nil, err
	}

	return &Overview{
		TotalPosts:      totalPosts,
		TotalViews:      totalViews,
		TotalContacts:   totalContacts,
		Subscribers:     subStats,
		TopPostsByViews: top,
	}, nil
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	a := rg.Group("/admin/stats", authMW)
	a.GET("", h.overview)
}

// GET /admin/stats
func (h *Handler) overview(c *gin.Context) {
	overview, err := h.svc.Overview(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, overview)
}
