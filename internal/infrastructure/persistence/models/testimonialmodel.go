package models

import "time"

// TestimonialModel represents the database persistence model for testimonials
type TestimonialModel struct {
	ID         uint    `gorm:"primarykey"`
	Name       string  `gorm:"not null;size:150"`
	Role       string  `gorm:"size:100;default:Pasangan Pengantin"`
	Email      *string `gorm:"size:255"`
	Content    string  `gorm:"not null;size:2000"`
	Rating     int     `gorm:"default:5"`
	Event      string  `gorm:"not null;size:150"`
	Image      *string `gorm:"size:500"`
	WeddingOn  *time.Time
	ThemeID    *uint `gorm:"index"`
	IsActive   bool  `gorm:"default:true"`
	IsApproved bool  `gorm:"default:false"`
	IsFeatured bool `gorm:"default:false"`
	Priority   int  `gorm:"default:0"`
	ApprovedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (TestimonialModel) TableName() string {
	return "testimonials"
}

// TestimonialSettingsModel is the singleton settings row for moderation
type TestimonialSettingsModel struct {
	ID              uint `gorm:"primarykey"`
	MaxDisplay      int  `gorm:"default:6"`
	AutoApprove     bool `gorm:"default:false"`
	RequireApproval bool `gorm:"default:true"`
	UpdatedAt       time.Time
}

// TableName specifies the table name for GORM
func (TestimonialSettingsModel) TableName() string {
	return "testimonial_settings"
}
