package dto

import (
	"time"

	"github.com/lamaran-inc/lamaran/internal/domain/display"
	"github.com/lamaran-inc/lamaran/internal/domain/pricing"
)

// PlanDTO is the presentation shape of a pricing plan for the admin table
type PlanDTO struct {
	ID                 uint       `json:"id"`
	Name               string     `json:"name"`
	Price              int        `json:"price"`
	DiscountPrice      *int       `json:"discountPrice"`
	DiscountEndDate    *time.Time `json:"discountEndDate"`
	Period             string     `json:"period"`
	Description        string     `json:"description"`
	Features           []string   `json:"features"`
	IsPopular          bool       `json:"isPopular"`
	IsActive           bool       `json:"isActive"`
	Priority           int        `json:"priority"`
	Icon               string     `json:"icon"`
	ButtonText         string     `json:"buttonText"`
	ButtonStyle        string     `json:"buttonStyle"`
	BackgroundGradient string     `json:"backgroundGradient"`
	BorderHighlight    bool       `json:"borderHighlight"`
	WhatsappMessage    *string    `json:"whatsappMessage"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// PublicPlanDTO is the visitor-facing shape with the discount window applied.
// OriginalPrice is null unless a discount is live.
type PublicPlanDTO struct {
	ID                 uint     `json:"id"`
	Name               string   `json:"name"`
	Price              int      `json:"price"`
	OriginalPrice      *int     `json:"originalPrice"`
	IsDiscounted       bool     `json:"isDiscounted"`
	Period             string   `json:"period"`
	Description        string   `json:"description"`
	Features           []string `json:"features"`
	IsPopular          bool     `json:"isPopular"`
	Icon               string   `json:"icon"`
	ButtonText         string   `json:"buttonText"`
	ButtonStyle        string   `json:"buttonStyle"`
	BackgroundGradient string   `json:"backgroundGradient"`
	BorderHighlight    bool     `json:"borderHighlight"`
	WhatsappMessage    *string  `json:"whatsappMessage"`
}

// PricingSettingsDTO is the presentation shape of the pricing section settings
type PricingSettingsDTO struct {
	MaxDisplay     int    `json:"maxDisplay"`
	WhatsappNumber string `json:"whatsappNumber"`
}

// PublicPricingDTO bundles visible plans with the contact number the page
// wires into its call-to-action buttons
type PublicPricingDTO struct {
	Plans    []*PublicPlanDTO    `json:"plans"`
	Settings *PricingSettingsDTO `json:"settings"`
}

// ToPlanDTO converts a Plan entity to its admin presentation shape
func ToPlanDTO(plan *pricing.Plan) *PlanDTO {
	if plan == nil {
		return nil
	}
	features := plan.Features()
	if features == nil {
		features = []string{}
	}
	return &PlanDTO{
		ID:                 plan.ID(),
		Name:               plan.Name(),
		Price:              plan.Price(),
		DiscountPrice:      plan.DiscountPrice(),
		DiscountEndDate:    plan.DiscountEndDate(),
		Period:             plan.Period(),
		Description:        plan.Description(),
		Features:           features,
		IsPopular:          plan.IsPopular(),
		IsActive:           plan.IsActive(),
		Priority:           plan.Priority(),
		Icon:               plan.Icon().String(),
		WhatsappMessage:    plan.WhatsappMessage(),
		ButtonText:         plan.ButtonText(),
		ButtonStyle:        plan.ButtonStyle().String(),
		BackgroundGradient: plan.BackgroundGradient().String(),
		BorderHighlight:    plan.BorderHighlight(),
		CreatedAt:          plan.CreatedAt(),
		UpdatedAt:          plan.UpdatedAt(),
	}
}

// ToPlanDTOList batch converts plans, returning an empty slice for nil input
func ToPlanDTOList(plans []*pricing.Plan) []*PlanDTO {
	dtos := make([]*PlanDTO, 0, len(plans))
	for _, plan := range plans {
		if plan != nil {
			dtos = append(dtos, ToPlanDTO(plan))
		}
	}
	return dtos
}

// ToPublicPlanDTO converts a plan with its resolved price quote
func ToPublicPlanDTO(plan *pricing.Plan, quote display.PriceQuote) *PublicPlanDTO {
	if plan == nil {
		return nil
	}
	features := plan.Features()
	if features == nil {
		features = []string{}
	}
	return &PublicPlanDTO{
		ID:                 plan.ID(),
		Name:               plan.Name(),
		Price:              quote.Amount,
		OriginalPrice:      quote.OriginalAmount,
		IsDiscounted:       quote.IsDiscounted,
		Period:             plan.Period(),
		Description:        plan.Description(),
		Features:           features,
		IsPopular:          plan.IsPopular(),
		Icon:               plan.Icon().String(),
		WhatsappMessage:    plan.WhatsappMessage(),
		ButtonText:         plan.ButtonText(),
		ButtonStyle:        plan.ButtonStyle().String(),
		BackgroundGradient: plan.BackgroundGradient().String(),
		BorderHighlight:    plan.BorderHighlight(),
	}
}

// ToPricingSettingsDTO converts settings to the presentation shape
func ToPricingSettingsDTO(settings *pricing.PricingSettings) *PricingSettingsDTO {
	if settings == nil {
		return nil
	}
	return &PricingSettingsDTO{
		MaxDisplay:     settings.MaxDisplay(),
		WhatsappNumber: settings.WhatsappNumber(),
	}
}
