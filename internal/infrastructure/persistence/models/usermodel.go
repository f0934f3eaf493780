package models

import "time"

// UserModel represents the database persistence model for admin accounts
type UserModel struct {
	ID        uint   `gorm:"primarykey"`
	Email     string `gorm:"uniqueIndex;not null;size:200"`
	Password  string `gorm:"not null;size:100"`
	Name      string `gorm:"not null;size:150"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}
