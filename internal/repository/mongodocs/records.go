package mongodocs

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/firstpost/journal/internal/models"
)

// Document shapes. Kept separate from the domain models so ObjectIDs
// and bson tags never leak past the repository boundary.

type postDoc struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty"`
	Title      string              `bson:"title"`
	Slug       string              `bson:"slug"`
	Content    string              `bson:"content"`
	ImageURL   string              `bson:"image_url"`
	CategoryID *primitive.ObjectID `bson:"category_id,omitempty"`

	AffiliateImageURL string `bson:"affiliate_image_url"`
	AffiliateLinkURL  string `bson:"affiliate_link_url"`
	AffiliateEnabled  bool   `bson:"affiliate_enabled"`

	PromoImageURL string `bson:"promo_image_url"`
	PromoVideoURL string `bson:"promo_video_url"`
	PromoLinkURL  string `bson:"promo_link_url"`
	PromoEnabled  bool   `bson:"promo_enabled"`

	AdsterraEnabled bool   `bson:"adsterra_enabled"`
	AdTopCode       string `bson:"ad_top_code"`
	AdMiddleCode    string `bson:"ad_middle_code"`
	AdLeftCode      string `bson:"ad_left_code"`
	AdRightCode     string `bson:"ad_right_code"`

	ViewsCount int       `bson:"views_count"`
	CreatedAt  time.Time `bson:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at"`
}

func (d postDoc) toModel() models.Post {
	p := models.Post{
		Base: models.Base{
			ID:        d.ID.Hex(),
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
		Title:             d.Title,
		Slug:              d.Slug,
		Content:           d.Content,
		ImageURL:          d.ImageURL,
		AffiliateImageURL: d.AffiliateImageURL,
		AffiliateLinkURL:  d.AffiliateLinkURL,
		AffiliateEnabled:  d.AffiliateEnabled,
		PromoImageURL:     d.PromoImageURL,
		PromoVideoURL:     d.PromoVideoURL,
		PromoLinkURL:      d.PromoLinkURL,
		PromoEnabled:      d.PromoEnabled,
		AdsterraEnabled:   d.AdsterraEnabled,
		AdTopCode:         d.AdTopCode,
		AdMiddleCode:      d.AdMiddleCode,
		AdLeftCode:        d.AdLeftCode,
		AdRightCode:       d.AdRightCode,
		ViewsCount:        d.ViewsCount,
	}
	if d.CategoryID != nil {
		hex := d.CategoryID.Hex()
		p.CategoryID = &hex
	}
	return p
}

func postDocFrom(p *models.Post) (postDoc, error) {
	d := postDoc{
		Title:             p.Title,
		Slug:              p.Slug,
		Content:           p.Content,
		ImageURL:          p.ImageURL,
		AffiliateImageURL: p.AffiliateImageURL,
		AffiliateLinkURL:  p.AffiliateLinkURL,
		AffiliateEnabled:  p.AffiliateEnabled,
		PromoImageURL:     p.PromoImageURL,
		PromoVideoURL:     p.PromoVideoURL,
		PromoLinkURL:      p.PromoLinkURL,
		PromoEnabled:      p.PromoEnabled,
		AdsterraEnabled:   p.AdsterraEnabled,
		AdTopCode:         p.AdTopCode,
		AdMiddleCode:      p.AdMiddleCode,
		AdLeftCode:        p.AdLeftCode,
		AdRightCode:       p.AdRightCode,
		ViewsCount:        p.ViewsCount,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
	if p.CategoryID != nil && *p.CategoryID != "" {
		oid, err := primitive.ObjectIDFromHex(*p.CategoryID)
		if err != nil {
			return d, err
		}
		d.CategoryID = &oid
	}
	return d, nil
}

type categoryDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Slug      string             `bson:"slug"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d categoryDoc) toModel() models.Category {
	return models.Category{
		Base: models.Base{ID: d.ID.Hex(), CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt},
		Name: d.Name,
		Slug: d.Slug,
	}
}

type subscriberDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	IsActive  bool               `bson:"is_active"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d subscriberDoc) toModel() models.Subscriber {
	return models.Subscriber{
		Base:     models.Base{ID: d.ID.Hex(), CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt},
		Email:    d.Email,
		IsActive: d.IsActive,
	}
}

type contactDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Message   string             `bson:"message"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d contactDoc) toModel() models.Contact {
	return models.Contact{
		Base:    models.Base{ID: d.ID.Hex(), CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt},
		Name:    d.Name,
		Email:   d.Email,
		Message: d.Message,
	}
}

type heroSlideDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Title      string             `bson:"title"`
	Subtitle   string             `bson:"subtitle"`
	ImageURL   string             `bson:"image_url"`
	ButtonText string             `bson:"button_text"`
	ButtonLink string             `bson:"button_link"`
	IsActive   bool               `bson:"is_active"`
	SortOrder  int                `bson:"sort_order"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func (d heroSlideDoc) toModel() models.HeroSlide {
	return models.HeroSlide{
		Base:       models.Base{ID: d.ID.Hex(), CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt},
		Title:      d.Title,
		Subtitle:   d.Subtitle,
		ImageURL:   d.ImageURL,
		ButtonText: d.ButtonText,
		ButtonLink: d.ButtonLink,
		IsActive:   d.IsActive,
		SortOrder:  d.SortOrder,
	}
}

type userDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Username  string             `bson:"username"`
	Password  string             `bson:"password"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d userDoc) toModel() models.User {
	return models.User{
		Base:     models.Base{ID: d.ID.Hex(), CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt},
		Username: d.Username,
		Password: d.Password,
	}
}
