package models

// Contact is a message from the public contact form. Immutable once
// created; only deletable.
type Contact struct {
	Base
	Name    string `json:"name"    gorm:"not null"`
	Email   string `json:"email"   gorm:"not null"`
	Message string `json:"message" gorm:"type:text;not null"`
}

func (Contact) TableName() string { return "contacts" }
