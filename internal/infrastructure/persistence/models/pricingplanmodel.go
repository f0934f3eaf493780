package models

import (
	"time"

	"gorm.io/datatypes"
)

// PricingPlanModel represents the database persistence model for pricing plans
type PricingPlanModel struct {
	ID                 uint       `gorm:"primarykey"`
	Name               string     `gorm:"not null;size:100"`
	Price              int        `gorm:"not null"`
	DiscountPrice      *int
	DiscountEndDate    *time.Time
	Period             string `gorm:"size:50;default:/undangan"`
	Description        string `gorm:"size:1000"`
	Features           datatypes.JSON
	IsPopular          bool   `gorm:"default:false"`
	IsActive           bool   `gorm:"default:true"`
	Priority           int     `gorm:"default:0"`
	Icon               string  `gorm:"size:50;default:Star"`
	ButtonText         string  `gorm:"size:100"`
	ButtonStyle        string  `gorm:"size:300"`
	BackgroundGradient string  `gorm:"size:100"`
	BorderHighlight    bool    `gorm:"default:false"`
	WhatsappMessage    *string `gorm:"size:1000"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName specifies the table name for GORM
func (PricingPlanModel) TableName() string {
	return "pricing_plans"
}

// PricingSettingsModel is the singleton settings row for the pricing section
type PricingSettingsModel struct {
	ID             uint   `gorm:"primarykey"`
	MaxDisplay     int    `gorm:"default:3"`
	WhatsappNumber string `gorm:"size:30"`
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (PricingSettingsModel) TableName() string {
	return "pricing_settings"
}
