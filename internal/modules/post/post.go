package post

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/firstpost/journal/internal/models"
	"github.com/firstpost/journal/internal/pkg/mail"
	"github.com/firstpost/journal/internal/pkg/pagination"
	"github.com/firstpost/journal/internal/pkg/response"
	"github.com/firstpost/journal/internal/pkg/slug"
	"github.com/firstpost/journal/internal/repository"
)

// ErrEmptySlug rejects titles that derive to an empty slug.
var ErrEmptySlug = errors.New("title must contain at least one letter or digit")

// SaveDTO is the admin create/update payload.
type SaveDTO struct {
	Title      string  `json:"title" binding:"required"`
	Content    string  `json:"content"`
	ImageURL   string  `json:"image_url"`
	CategoryID *string `json:"category_id"`

	AffiliateImageURL string `json:"affiliate_image_url"`
	AffiliateLinkURL  string `json:"affiliate_link_url"`
	AffiliateEnabled  *bool  `json:"affiliate_enabled"`

	PromoImageURL string `json:"promo_image_url"`
	PromoVideoURL string `json:"promo_video_url"`
	PromoLinkURL  string `json:"promo_link_url"`
	PromoEnabled  *bool  `json:"promo_enabled"`

	AdsterraEnabled *bool  `json:"adsterra_enabled"`
	AdTopCode       string `json:"ad_top_code"`
	AdMiddleCode    string `json:"ad_middle_code"`
	AdLeftCode      string `json:"ad_left_code"`
	AdRightCode     string `json:"ad_right_code"`
}

func (dto *SaveDTO) apply(post *models.Post) {
	post.Title = strings.TrimSpace(dto.Title)
	post.Content = dto.Content
	post.ImageURL = strings.TrimSpace(dto.ImageURL)
	post.CategoryID = normalizeCategoryID(dto.CategoryID)

	post.AffiliateImageURL = dto.AffiliateImageURL
	post.AffiliateLinkURL = dto.AffiliateLinkURL
	post.AffiliateEnabled = boolOr(dto.AffiliateEnabled, true)

	post.PromoImageURL = dto.PromoImageURL
	post.PromoVideoURL = dto.PromoVideoURL
	post.PromoLinkURL = dto.PromoLinkURL
	post.PromoEnabled = boolOr(dto.PromoEnabled, true)

	post.AdsterraEnabled = boolOr(dto.AdsterraEnabled, false)
	post.AdTopCode = dto.AdTopCode
	post.AdMiddleCode = dto.AdMiddleCode
	post.AdLeftCode = dto.AdLeftCode
	post.AdRightCode = dto.AdRightCode
}

func normalizeCategoryID(id *string) *string {
	if id == nil {
		return nil
	}
	v := strings.TrimSpace(*id)
	if v == "" {
		return nil
	}
	return &v
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// Notifier delivers the new-post notification to one recipient.
// *mail.Sender satisfies it.
type Notifier interface {
	SendNewPost(to string, data mail.NewPostData) error
}

// HomeData is the public listing payload: the filtered page plus the
// sidebar content every listing view carries.
type HomeData struct {
	Posts      []models.Post       `json:"posts"`
	Latest     []models.Post       `json:"latest"`
	Categories []models.Category   `json:"categories"`
	HeroSlides []models.HeroSlide  `json:"hero_slides"`
	Pagination response.Pagination `json:"pagination"`
}

type Service struct {
	posts       repository.PostRepository
	categories  repository.CategoryRepository
	subscribers repository.SubscriberRepository
	heroSlides  repository.HeroSlideRepository
	notifier    Notifier
	baseURL     string
	logger      *zap.Logger
}

func NewService(store repository.Store, notifier Notifier, baseURL string, logger *zap.Logger) *Service {
	return &Service{
		posts:       store.Posts(),
		categories:  store.Categories(),
		subscribers: store.Subscribers(),
		heroSlides:  store.HeroSlides(),
		notifier:    notifier,
		baseURL:     baseURL,
		logger:      logger,
	}
}

// Save creates a post when id is empty, otherwise updates that post in
// full. The slug is derived from the title on create and never
// recomputed afterwards; renaming a post keeps its public URL stable.
// Subscriber notification happens only for newly created posts.
func (s *Service) Save(ctx context.Context, id string, dto *SaveDTO) (*models.Post, error) {
	derived := slug.Derive(dto.Title)

	if id != "" {
		post, err := s.posts.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		dto.apply(post)
		if err := s.posts.Update(ctx, post); err != nil {
			return nil, err
		}
		return post, nil
	}

	if derived == "" {
		return nil, ErrEmptySlug
	}
	exists, err := s.posts.SlugExists(ctx, derived)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, repository.ErrDuplicate
	}

	post := &models.Post{Slug: derived}
	dto.apply(post)
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		go s.notifySubscribers(*post)
	}
	return post, nil
}

// notifySubscribers fans the new-post email out to every active
// subscriber, one goroutine per recipient. Failures are logged and
// swallowed; there is no retry. Returns the number of dispatches, which
// tests assert on by calling this directly.
func (s *Service) notifySubscribers(post models.Post) int {
	ctx := context.Background()
	subs, err := s.subscribers.ListActive(ctx)
	if err != nil {
		s.logger.Warn("subscriber lookup failed, notifying nobody",
			zap.String("slug", post.Slug), zap.Error(err))
		return 0
	}

	data := mail.NewPostData{
		Title:   post.Title,
		Slug:    post.Slug,
		PostURL: mail.PostURL(s.baseURL, post.Slug),
	}

	var wg sync.WaitGroup
	for _, sub := range subs {
		wg.Add(1)
		go func(email string) {
			defer wg.Done()
			if err := s.notifier.SendNewPost(email, data); err != nil {
				s.logger.Warn("new post notification failed",
					zap.String("email", email),
					zap.String("slug", post.Slug),
					zap.Error(err))
			}
		}(sub.Email)
	}
	wg.Wait()
	return len(subs)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.posts.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (*models.Post, error) {
	return s.posts.GetByID(ctx, id)
}

// PublicBySlug returns a post for the public detail view and counts the
// read. The increment is atomic at the store; a failed increment does
// not fail the read.
func (s *Service) PublicBySlug(ctx context.Context, postSlug string) (*models.Post, error) {
	post, err := s.posts.GetBySlug(ctx, postSlug)
	if err != nil {
		return nil, err
	}
	if err := s.posts.IncrementViews(ctx, post.ID); err != nil {
		s.logger.Warn("view count increment failed",
			zap.String("slug", postSlug), zap.Error(err))
	} else {
		post.ViewsCount++
	}
	return post, nil
}

// AdminList pages posts for the dashboard, searching title and slug.
func (s *Service) AdminList(ctx context.Context, search string, page repository.Page) ([]models.Post, response.Pagination, error) {
	posts, total, err := s.posts.List(ctx, repository.PostFilter{AdminSearch: search}, page)
	if err != nil {
		return nil, response.Pagination{}, err
	}
	return posts, pagination.Meta(total, page), nil
}

// PublicList assembles the public listing: the filtered post page plus
// latest posts, categories and active hero slides. A nonexistent
// category slug yields an empty page, not an error.
func (s *Service) PublicList(ctx context.Context, search, categorySlug string, page repository.Page) (*HomeData, error) {
	data := &HomeData{}

	filter := repository.PostFilter{Search: strings.TrimSpace(search)}
	categoryMissing := false
	if categorySlug = strings.TrimSpace(categorySlug); categorySlug != "" {
		cat, err := s.categories.GetBySlug(ctx, categorySlug)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			categoryMissing = true
		case err != nil:
			return nil, err
		default:
			filter.CategoryID = cat.ID
		}
	}

	if categoryMissing {
		data.Posts = []models.Post{}
		data.Pagination = pagination.Meta(0, page)
	} else {
		posts, total, err := s.posts.List(ctx, filter, page)
		if err != nil {
			return nil, err
		}
		data.Posts = posts
		data.Pagination = pagination.Meta(total, page)
	}

	latest, err := s.posts.Latest(ctx, 5)
	if err != nil {
		return nil, err
	}
	data.Latest = latest

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	data.Categories = categories

	slides, err := s.heroSlides.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	data.HeroSlides = slides
	return data, nil
}

// SendTestEmail sends a sample notification so operators can verify
// the mail configuration end to end.
func (s *Service) SendTestEmail(to string) error {
	if s.notifier == nil {
		return errors.New("mail sender not configured")
	}
	return s.notifier.SendNewPost(to, mail.NewPostData{
		Title:   "Mail configuration test",
		Slug:    "mail-test",
		PostURL: mail.PostURL(s.baseURL, "mail-test"),
	})
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/posts", h.publicList)
	rg.GET("/posts/:slug", h.publicGet)

	a := rg.Group("/admin/posts", authMW)
	a.GET("", h.adminList)
	a.GET("/:id", h.adminGet)
	a.POST("", h.create)
	a.PUT("/:id", h.update)
	a.DELETE("/:id", h.delete)

	rg.Group("/admin", authMW).GET("/test-email", h.testEmail)
}

// GET /posts?q=&category=&page=
func (h *Handler) publicList(c *gin.Context) {
	page := pagination.PublicFromContext(c)
	data, err := h.svc.PublicList(c.Request.Context(), c.Query("q"), c.Query("category"), page)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, data)
}

// GET /posts/:slug
func (h *Handler) publicGet(c *gin.Context) {
	post, err := h.svc.PublicBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFoundMsg(c, "post not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, post)
}

// GET /admin/posts?search=&page=&size=
func (h *Handler) adminList(c *gin.Context) {
	page := pagination.FromContext(c)
	posts, meta, err := h.svc.AdminList(c.Request.Context(), c.Query("search"), page)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, posts, meta)
}

// GET /admin/posts/:id
func (h *Handler) adminGet(c *gin.Context) {
	post, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFoundMsg(c, "post not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, post)
}

// POST /admin/posts
func (h *Handler) create(c *gin.Context) {
	var dto SaveDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "title is required")
		return
	}
	post, err := h.svc.Save(c.Request.Context(), "", &dto)
	if err != nil {
		h.saveError(c, err)
		return
	}
	response.Created(c, post)
}

// PUT /admin/posts/:id
func (h *Handler) update(c *gin.Context) {
	var dto SaveDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "title is required")
		return
	}
	post, err := h.svc.Save(c.Request.Context(), c.Param("id"), &dto)
	if err != nil {
		h.saveError(c, err)
		return
	}
	response.OK(c, post)
}

// DELETE /admin/posts/:id
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFoundMsg(c, "post not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.NoContent(c)
}

// GET /admin/test-email?to=addr
func (h *Handler) testEmail(c *gin.Context) {
	to := strings.TrimSpace(c.Query("to"))
	if to == "" {
		response.BadRequest(c, "query parameter to is required")
		return
	}
	if err := h.svc.SendTestEmail(to); err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"sent": true, "to": to})
}

func (h *Handler) saveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmptySlug):
		response.BadRequest(c, err.Error())
	case errors.Is(err, repository.ErrDuplicate):
		response.Conflict(c, "a post with this title already exists")
	case errors.Is(err, repository.ErrNotFound):
		response.NotFoundMsg(c, "post not found")
	default:
		response.InternalError(c, err)
	}
}
