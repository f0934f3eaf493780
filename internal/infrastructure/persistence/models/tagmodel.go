package models

import "time"

// TagModel represents the database persistence model for theme tags
type TagModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"uniqueIndex;not null;size:100"`
	Color     string `gorm:"not null;size:100"`
	Icon      string `gorm:"not null;size:50;default:Star"`
	CreatedAt time.Time
}

// TableName specifies the table name for GORM
func (TagModel) TableName() string {
	return "tags"
}
