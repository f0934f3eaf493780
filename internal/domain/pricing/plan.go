// Package pricing models the pricing plans offered on the marketing site,
// including time-limited discount windows.
package pricing

import (
	"fmt"
	"strings"
	"time"

	"github.com/lamaran-inc/lamaran/internal/domain/appearance"
)

// Plan is one pricing tier shown on the public site.
type Plan struct {
	id              uint
	name            string
	price           int
	discountPrice   *int
	discountEndDate *time.Time
	period          string
	description     string
	features        []string
	isPopular       bool
	isActive        bool
	priority        int
	icon            appearance.IconName
	buttonText      string
	buttonStyle     appearance.ButtonStyle
	backgroundGrad  appearance.GradientToken
	borderHighlight bool
	whatsappMessage *string
	createdAt       time.Time
	updatedAt       time.Time
}

// DefaultPeriod is the unit suffix shown after the price.
const DefaultPeriod = "/undangan"

func NewPlan(name string, price int, description string, features []string) (*Plan, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if price < 0 {
		return nil, fmt.Errorf("plan price cannot be negative")
	}

	cleaned := cleanFeatures(features)
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("plan needs at least one feature")
	}

	now := time.Now()
	return &Plan{
		name:           name,
		price:          price,
		period:         DefaultPeriod,
		description:    strings.TrimSpace(description),
		features:       cleaned,
		isActive:       true,
		icon:           appearance.DefaultIcon,
		buttonText:     "Pilih Paket",
		buttonStyle:    appearance.DefaultButtonStyle,
		backgroundGrad: appearance.DefaultPlanGradient,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func cleanFeatures(features []string) []string {
	cleaned := make([]string, 0, len(features))
	for _, f := range features {
		f = strings.TrimSpace(f)
		if f != "" {
			cleaned = append(cleaned, f)
		}
	}
	return cleaned
}

func ReconstructPlan(id uint, name string, price int, discountPrice *int, discountEndDate *time.Time,
	period, description string, features []string, isPopular, isActive bool, priority int,
	icon, buttonText string, buttonStyle, backgroundGradient string, borderHighlight bool,
	whatsappMessage *string, createdAt, updatedAt time.Time) (*Plan, error) {

	if id == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}
	return &Plan{
		id:              id,
		name:            name,
		price:           price,
		discountPrice:   discountPrice,
		discountEndDate: discountEndDate,
		period:          period,
		description:     description,
		features:        features,
		isPopular:       isPopular,
		isActive:        isActive,
		priority:        priority,
		icon:            appearance.IconName(icon),
		buttonText:      buttonText,
		buttonStyle:     appearance.ButtonStyle(buttonStyle),
		backgroundGrad:  appearance.GradientToken(backgroundGradient),
		borderHighlight: borderHighlight,
		whatsappMessage: whatsappMessage,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}, nil
}

func (p *Plan) ID() uint                                      { return p.id }
func (p *Plan) Name() string                                  { return p.name }
func (p *Plan) Price() int                                    { return p.price }
func (p *Plan) DiscountPrice() *int                           { return p.discountPrice }
func (p *Plan) DiscountEndDate() *time.Time                   { return p.discountEndDate }
func (p *Plan) Period() string                                { return p.period }
func (p *Plan) Description() string                           { return p.description }
func (p *Plan) Features() []string                            { return p.features }
func (p *Plan) IsPopular() bool                               { return p.isPopular }
func (p *Plan) IsActive() bool                                { return p.isActive }
func (p *Plan) Priority() int                                 { return p.priority }
func (p *Plan) Icon() appearance.IconName                     { return p.icon }
func (p *Plan) WhatsappMessage() *string                      { return p.whatsappMessage }
func (p *Plan) ButtonText() string                            { return p.buttonText }
func (p *Plan) ButtonStyle() appearance.ButtonStyle           { return p.buttonStyle }
func (p *Plan) BackgroundGradient() appearance.GradientToken  { return p.backgroundGrad }
func (p *Plan) BorderHighlight() bool                         { return p.borderHighlight }
func (p *Plan) CreatedAt() time.Time                          { return p.createdAt }
func (p *Plan) UpdatedAt() time.Time                          { return p.updatedAt }

func (p *Plan) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("plan ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Plan) Update(name string, price int, period, description string, features []string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("plan name is required")
	}
	if price < 0 {
		return fmt.Errorf("plan price cannot be negative")
	}
	if strings.TrimSpace(period) == "" {
		period = DefaultPeriod
	}

	cleaned := cleanFeatures(features)
	if len(cleaned) == 0 {
		return fmt.Errorf("plan needs at least one feature")
	}

	p.name = name
	p.price = price
	p.period = period
	p.description = strings.TrimSpace(description)
	p.features = cleaned
	p.updatedAt = time.Now()
	return nil
}

// SetDiscount installs a discount window. Both fields must be set together;
// passing nil for either clears the discount.
func (p *Plan) SetDiscount(discountPrice *int, endDate *time.Time) error {
	if discountPrice == nil || endDate == nil {
		p.discountPrice = nil
		p.discountEndDate = nil
		p.updatedAt = time.Now()
		return nil
	}
	if *discountPrice < 0 {
		return fmt.Errorf("discount price cannot be negative")
	}
	if *discountPrice >= p.price {
		return fmt.Errorf("discount price must be lower than the regular price")
	}
	p.discountPrice = discountPrice
	p.discountEndDate = endDate
	p.updatedAt = time.Now()
	return nil
}

func (p *Plan) SetAppearance(icon appearance.IconName, buttonText string, buttonStyle appearance.ButtonStyle, backgroundGradient appearance.GradientToken, borderHighlight bool) {
	if icon.IsValid() {
		p.icon = icon
	}
	if strings.TrimSpace(buttonText) != "" {
		p.buttonText = buttonText
	}
	if buttonStyle != "" {
		p.buttonStyle = buttonStyle
	}
	if backgroundGradient.IsValid() {
		p.backgroundGrad = backgroundGradient
	}
	p.borderHighlight = borderHighlight
	p.updatedAt = time.Now()
}

// SetWhatsappMessage installs the prefilled order message; blank clears it.
func (p *Plan) SetWhatsappMessage(message *string) {
	if message != nil {
		clean := strings.TrimSpace(*message)
		if clean == "" {
			message = nil
		} else {
			message = &clean
		}
	}
	p.whatsappMessage = message
	p.updatedAt = time.Now()
}

func (p *Plan) SetFlags(isPopular, isActive bool, priority int) {
	p.isPopular = isPopular
	p.isActive = isActive
	p.priority = priority
	p.updatedAt = time.Now()
}

// DiscountActiveAt reports whether the discount window covers the given time.
// A plan with no discount price or no end date has no active window.
func (p *Plan) DiscountActiveAt(at time.Time) bool {
	return p.discountPrice != nil && p.discountEndDate != nil && p.discountEndDate.After(at)
}
