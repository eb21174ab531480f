package models

// HeroSlide is a homepage promotional banner entry.
type HeroSlide struct {
	Base
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	ImageURL   string `json:"image_url"`
	ButtonText string `json:"button_text"`
	ButtonLink string `json:"button_link"`
	IsActive   bool   `json:"is_active"  gorm:"default:true"`
	SortOrder  int    `json:"sort_order" gorm:"default:0"`
}

func (HeroSlide) TableName() string { return "hero_slides" }
