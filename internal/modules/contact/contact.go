package contact

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/firstpost/journal/internal/models"
	"github.com/firstpost/journal/internal/pkg/response"
	"github.com/firstpost/journal/internal/repository"
)

// ErrMissingFields rejects submissions with any blank field.
var ErrMissingFields = errors.New("name, email and message are all required")

type SubmitDTO struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

type Service struct {
	contacts repository.ContactRepository
}

func NewService(contacts repository.ContactRepository) *Service {
	return &Service{contacts: contacts}
}

func (s *Service) Submit(ctx context.Context, dto *SubmitDTO) (*models.Contact, error) {
	name := strings.TrimSpace(dto.Name)
	email := strings.TrimSpace(dto.Email)
	message := strings.TrimSpace(dto.Message)
	if name == "" || email == "" || message == "" {
		return nil, ErrMissingFields
	}

	contact := &models.Contact{Name: name, Email: email, Message: message}
	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *Service) List(ctx context.Context, search string) ([]models.Contact, error) {
	return s.contacts.List(ctx, search)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.contacts.Delete(ctx, id)
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.contacts.Count(ctx)
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/contact", h.submit)

	a := rg.Group("/admin/contacts", authMW)
	a.GET("", h.list)
	a.DELETE("/:id", h.delete)
}

// POST /contact
func (h *Handler) submit(c *gin.Context) {
	var dto SubmitDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, ErrMissingFields.Error())
		return
	}
	contact, err := h.svc.Submit(c.Request.Context(), &dto)
	if err != nil {
		if errors.Is(err, ErrMissingFields) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, contact)
}

// GET /admin/contacts?search=
func (h *Handler) list(c *gin.Context) {
	contacts, err := h.svc.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, contacts)
}

// DELETE /admin/contacts/:id
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFoundMsg(c, "contact not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}
