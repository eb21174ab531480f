package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/firstpost/journal/internal/middleware"
	"github.com/firstpost/journal/internal/models"
	"github.com/firstpost/journal/internal/pkg/jwt"
	"github.com/firstpost/journal/internal/pkg/response"
	"github.com/firstpost/journal/internal/repository"
)

// ErrInvalidCredentials is returned for any login failure. Unknown
// username and wrong password are indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid username or password")

type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type Service struct {
	users repository.UserRepository
}

func NewService(users repository.UserRepository) *Service {
	return &Service{users: users}
}

// Login verifies the credential and returns a signed token.
func (s *Service) Login(ctx context.Context, dto *LoginDTO) (string, *models.User, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(dto.Username))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(dto.Password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := jwt.Sign(user.ID, user.Username)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *Service) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.users.GetByUsername(ctx, username)
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/auth")
	g.POST("/login", h.login)
	g.POST("/logout", h.logout)

	a := g.Group("", authMW)
	a.GET("/me", h.me)
}

// POST /auth/login
func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "username and password are required")
		return
	}

	token, user, err := h.svc.Login(c.Request.Context(), &dto)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Unauthorized(c)
			return
		}
		response.InternalError(c, err)
		return
	}

	c.SetCookie("token", token, int(jwt.TokenTTL.Seconds()), "/", "", false, true)
	response.OK(c, gin.H{
		"token": token,
		"user":  gin.H{"id": user.ID, "username": user.Username},
	})
}

// POST /auth/logout
func (h *Handler) logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	response.OK(c, gin.H{"ok": 1})
}

// GET /auth/me
func (h *Handler) me(c *gin.Context) {
	response.OK(c, gin.H{"user_id": middleware.CurrentUserID(c)})
}
