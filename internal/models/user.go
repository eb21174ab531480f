package models

// User is the admin credential. Password holds a bcrypt hash.
type User struct {
	Base
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-"        gorm:"not null"`
}

func (User) TableName() string { return "users" }
