package hero

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/firstpost/journal/internal/models"
	"github.com/firstpost/journal/internal/pkg/response"
	"github.com/firstpost/journal/internal/repository"
)

// ErrMissingTitle rejects slides without a title.
var ErrMissingTitle = errors.New("title is required")

type SaveDTO struct {
	Title      string `json:"title" binding:"required"`
	Subtitle   string `json:"subtitle"`
	ImageURL   string `json:"image_url"`
	ButtonText string `json:"button_text"`
	ButtonLink string `json:"button_link"`
	IsActive   *bool  `json:"is_active"`
	SortOrder  int    `json:"sort_order"`
}

func (dto *SaveDTO) apply(slide *models.HeroSlide) {
	slide.Title = strings.TrimSpace(dto.Title)
	slide.Subtitle = dto.Subtitle
	slide.ImageURL = strings.TrimSpace(dto.ImageURL)
	slide.ButtonText = dto.ButtonText
	slide.ButtonLink = dto.ButtonLink
	if dto.IsActive != nil {
		slide.IsActive = *dto.IsActive
	}
	slide.SortOrder = dto.SortOrder
}

type Service struct {
	slides repository.HeroSlideRepository
}

func NewService(slides repository.HeroSlideRepository) *Service {
	return &Service{slides: slides}
}

func (s *Service) ListAll(ctx context.Context) ([]models.HeroSlide, error) {
	return s.slides.ListAll(ctx)
}

func (s *Service) ListActive(ctx context.Context) ([]models.HeroSlide, error) {
	return s.slides.ListActive(ctx)
}

// Save creates a slide when id is empty, otherwise updates that slide.
func (s *Service) Save(ctx context.Context, id string, dto *SaveDTO) (*models.HeroSlide, error) {
	if strings.TrimSpace(dto.Title) == "" {
		return nil, ErrMissingTitle
	}

	if id != "" {
		slide, err := s.slides.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		dto.apply(slide)
		if err := s.slides.Update(ctx, slide); err != nil {
			return nil, err
		}
		return slide, nil
	}

	slide := &models.HeroSlide{IsActive: true}
	dto.apply(slide)
	if err := s.slides.Create(ctx, slide); err != nil {
		return nil, err
	}
	return slide, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.slides.Delete(ctx, id)
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/hero-slides", h.listActive)

	a := rg.Group("/admin/hero-slides", authMW)
	a.GET("", h.listAll)
	a.POST("", h.create)
	a.PUT("/:id", h.update)
	a.DELETE("/:id", h.delete)
}

// GET /hero-slides
func (h *Handler) listActive(c *gin.Context) {
	slides, err := h.svc.ListActive(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, slides)
}

// GET /admin/hero-slides
func (h *Handler) listAll(c *gin.Context) {
	slides, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, slides)
}

// POST /admin/hero-slides
func (h *Handler) create(c *gin.Context) {
	var dto SaveDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, ErrMissingTitle.Error())
		return
	}
	slide, err := h.svc.Save(c.Request.Context(), "", &dto)
	if err != nil {
		h.saveError(c, err)
		return
	}
	response.Created(c, slide)
}

// PUT /admin/hero-slides/:id
func (h *Handler) update(c *gin.Context) {
	var dto SaveDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, ErrMissingTitle.Error())
		return
	}
	slide, err := h.svc.Save(c.Request.Context(), c.Param("id"), &dto)
	if err != nil {
		h.saveError(c, err)
		return
	}
	response.OK(c, slide)
}

// DELETE /admin/hero-slides/:id
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFoundMsg(c, "hero slide not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) saveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMissingTitle):
		response.BadRequest(c, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		response.NotFoundMsg(c, "hero slide not found")
	default:
		response.InternalError(c, err)
	}
}
