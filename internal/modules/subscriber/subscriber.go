package subscriber

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/firstpost/journal/internal/models"
	"github.com/firstpost/journal/internal/pkg/response"
	"github.com/firstpost/journal/internal/repository"
)

// ErrInvalidEmail rejects empty or malformed subscribe requests.
var ErrInvalidEmail = errors.New("a valid email address is required")

type SubscribeDTO struct {
	Email string `json:"email" binding:"required,email"`
}

type Service struct {
	subscribers repository.SubscriberRepository
}

func NewService(subscribers repository.SubscriberRepository) *Service {
	return &Service{subscribers: subscribers}
}

// Subscribe adds the email, reactivating an existing record instead of
// duplicating it. The email is normalized before lookup so the unique
// index holds one row per address regardless of input casing.
func (s *Service) Subscribe(ctx context.Context, email string) (*models.Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, ErrInvalidEmail
	}

	existing, err := s.subscribers.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if !existing.IsActive {
			if err := s.subscribers.SetActive(ctx, existing.ID, true); err != nil {
				return nil, err
			}
			existing.IsActive = true
		}
		return existing, nil
	case errors.Is(err, repository.ErrNotFound):
		sub := &models.Subscriber{Email: email, IsActive: true}
		if err := s.subscribers.Create(ctx, sub); err != nil {
			return nil, err
		}
		return sub, nil
	default:
		return nil, err
	}
}

func (s *Service) List(ctx context.Context, filter repository.SubscriberFilter) ([]models.Subscriber, error) {
	return s.subscribers.List(ctx, filter)
}

func (s *Service) Stats(ctx context.Context) (repository.SubscriberStats, error) {
	return s.subscribers.Stats(ctx)
}

// Toggle flips the active flag of one subscriber.
func (s *Service) Toggle(ctx context.Context, id string) (*models.Subscriber, error) {
	sub, err := s.subscribers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.subscribers.SetActive(ctx, id, !sub.IsActive); err != nil {
		return nil, err
	}
	sub.IsActive = !sub.IsActive
	return sub, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.subscribers.Delete(ctx, id)
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/subscribe", h.subscribe)

	a := rg.Group("/admin/subscribers", authMW)
	a.GET("", h.list)
	a.GET("/stats", h.stats)
	a.PATCH("/:id/toggle", h.toggle)
	a.DELETE("/:id", h.delete)
}

// POST /subscribe
func (h *Handler) subscribe(c *gin.Context) {
	var dto SubscribeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, ErrInvalidEmail.Error())
		return
	}
	sub, err := h.svc.Subscribe(c.Request.Context(), dto.Email)
	if err != nil {
		if errors.Is(err, ErrInvalidEmail) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"email": sub.Email, "is_active": sub.IsActive})
}

// GET /admin/subscribers?search=&status=
func (h *Handler) list(c *gin.Context) {
	filter := repository.SubscriberFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
	}
	subs, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, subs)
}

// GET /admin/subscribers/stats
func (h *Handler) stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, stats)
}

// PATCH /admin/subscribers/:id/toggle
func (h *Handler) toggle(c *gin.Context) {
	sub, err := h.svc.Toggle(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFoundMsg(c, "subscriber not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, sub)
}

// DELETE /admin/subscribers/:id
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFoundMsg(c, "subscriber not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
