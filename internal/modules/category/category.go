package category

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/firstpost/journal/internal/models"
	"github.com/firstpost/journal/internal/pkg/response"
	"github.com/firstpost/journal/internal/pkg/slug"
	"github.com/firstpost/journal/internal/repository"
)

// ErrEmptySlug rejects names that derive to an empty slug.
var ErrEmptySlug = errors.New("name must contain at least one letter or digit")

type SaveDTO struct {
	Name string `json:"name" binding:"required"`
}

type Service struct {
	categories repository.CategoryRepository
}

func NewService(categories repository.CategoryRepository) *Service {
	return &Service{categories: categories}
}

func (s *Service) List(ctx context.Context) ([]models.Category, error) {
	return s.categories.List(ctx)
}

func (s *Service) GetBySlug(ctx context.Context, categorySlug string) (*models.Category, error) {
	return s.categories.GetBySlug(ctx, categorySlug)
}

func (s *Service) Create(ctx context.Context, dto *SaveDTO) (*models.Category, error) {
	derived := slug.Derive(dto.Name)
	if derived == "" {
		return nil, ErrEmptySlug
	}
	cat := &models.Category{Name: strings.TrimSpace(dto.Name), Slug: derived}
	if err := s.categories.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *Service) Update(ctx context.Context, id string, dto *SaveDTO) (*models.Category, error) {
	cat, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	derived := slug.Derive(dto.Name)
	if derived == "" {
		return nil, ErrEmptySlug
	}
	cat.Name = strings.TrimSpace(dto.Name)
	cat.Slug = derived
	if err := s.categories.Update(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// Delete removes the category. Posts referencing it are left untouched
// and surface as Uncategorized.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.categories.Delete(ctx, id)
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/categories", h.list)

	a := rg.Group("/admin/categories", authMW)
	a.POST("", h.create)
	a.PUT("/:id", h.update)
	a.DELETE("/:id", h.delete)
}

// GET /categories
func (h *Handler) list(c *gin.Context) {
	cats, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, cats)
}

// POST /admin/categories
func (h *Handler) create(c *gin.Context) {
	var dto SaveDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "name is required")
		return
	}
	cat, err := h.svc.Create(c.Request.Context(), &dto)
	if err != nil {
		h.saveError(c, err)
		return
	}
	response.Created(c, cat)
}

// PUT /admin/categories/:id
func (h *Handler) update(c *gin.Context) {
	var dto SaveDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "name is required")
		return
	}
	cat, err := h.svc.Update(c.Request.Context(), c.Param("id"), &dto)
	if err != nil {
		h.saveError(c, err)
		return
	}
	response.OK(c, cat)
}

// DELETE /admin/categories/:id
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFoundMsg(c, "category not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) saveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmptySlug):
		response.BadRequest(c, err.Error())
	case errors.Is(err, repository.ErrDuplicate):
		response.Conflict(c, "a category with this name already exists")
	case errors.Is(err, repository.ErrNotFound):
		response.NotFoundMsg(c, "category not found")
	default:
		response.InternalError(c, err)
	}
}
