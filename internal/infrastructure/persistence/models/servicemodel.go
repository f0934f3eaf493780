package models

import (
	"time"

	"gorm.io/datatypes"
)

// ServiceModel represents the database persistence model for service cards
type ServiceModel struct {
	ID          uint   `gorm:"primarykey"`
	Title       string `gorm:"not null;size:150"`
	Description string `gorm:"not null;size:1000"`
	Icon        string `gorm:"not null;size:50;default:Star"`
	Color       string `gorm:"not null;size:100"`
	Image       *string `gorm:"size:500"`
	Features    datatypes.JSON
	ButtonText  string  `gorm:"size:100"`
	ButtonLink  *string `gorm:"size:500"`
	IsActive    bool    `gorm:"default:true"`
	IsFeatured  bool    `gorm:"default:false"`
	Priority    int     `gorm:"default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (ServiceModel) TableName() string {
	return "services"
}

// ServiceSettingsModel is the singleton settings row for the services section
type ServiceSettingsModel struct {
	ID                  uint `gorm:"primarykey"`
	MaxDisplay          int  `gorm:"default:3"`
	EnableFlipAnimation bool `gorm:"default:true"`
	AutoRotate          bool `gorm:"default:false"`
	AutoRotateInterval  int  `gorm:"default:5000"`
	UpdatedAt           time.Time
}

// TableName specifies the table name for GORM
func (ServiceSettingsModel) TableName() string {
	return "service_settings"
}
