package models

// Category groups posts. Posts hold the reference; deleting a category
// leaves its posts in place as Uncategorized.
type Category struct {
	Base
	Name string `json:"name" gorm:"not null"`
	Slug string `json:"slug" gorm:"uniqueIndex;not null"`
}

func (Category) TableName() string { return "categories" }
