package models

// Post is a published article.
type Post struct {
	Base
	Title      string    `json:"title"       gorm:"not null"`
	Slug       string    `json:"slug"        gorm:"uniqueIndex;not null"`
	Content    string    `json:"content"     gorm:"type:text"`
	ImageURL   string    `json:"image_url"`
	CategoryID *string   `json:"category_id" gorm:"index"`
	Category   *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`

	// affiliate block
	AffiliateImageURL string `json:"affiliate_image_url"`
	AffiliateLinkURL  string `json:"affiliate_link_url"`
	AffiliateEnabled  bool   `json:"affiliate_enabled" gorm:"default:true"`

	// paid promotion block
	PromoImageURL string `json:"promo_image_url"`
	PromoVideoURL string `json:"promo_video_url"`
	PromoLinkURL  string `json:"promo_link_url"`
	PromoEnabled  bool   `json:"promo_enabled" gorm:"default:true"`

	// ad slots
	AdsterraEnabled bool   `json:"adsterra_enabled" gorm:"default:false"`
	AdTopCode       string `json:"ad_top_code"    gorm:"type:text"`
	AdMiddleCode    string `json:"ad_middle_code" gorm:"type:text"`
	AdLeftCode      string `json:"ad_left_code"   gorm:"type:text"`
	AdRightCode     string `json:"ad_right_code"  gorm:"type:text"`

	ViewsCount int `json:"views_count" gorm:"default:0"`
}

func (Post) TableName() string { return "posts" }

// CategoryName resolves the display name, falling back to Uncategorized
// when the category reference is absent or dangling.
func (p Post) CategoryName() string {
	if p.Category != nil {
		return p.Category.Name
	}
	return "Uncategorized"
}
