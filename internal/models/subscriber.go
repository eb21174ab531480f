package models

// Subscriber is a newsletter recipient. Email is unique; resubscribing
// an existing address reactivates the record instead of duplicating it.
type Subscriber struct {
	Base
	Email    string `json:"email"     gorm:"uniqueIndex;not null"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}

func (Subscriber) TableName() string { return "subscribers" }
