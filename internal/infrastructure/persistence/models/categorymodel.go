package models

import "time"

// CategoryModel represents the database persistence model for theme categories
type CategoryModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"uniqueIndex;not null;size:100"`
	CreatedAt time.Time
}

// TableName specifies the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}
