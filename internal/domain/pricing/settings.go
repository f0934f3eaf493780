package pricing

import (
	"fmt"
	"strings"
	"time"
)

// PricingSettings is the singleton row controlling the public pricing section.
type PricingSettings struct {
	id             uint
	maxDisplay     int
	whatsappNumber string
	updatedAt      time.Time
}

const (
	DefaultPricingMaxDisplay = 3
	DefaultWhatsappNumber    = "6281248406898"
)

func DefaultPricingSettings() *PricingSettings {
	return &PricingSettings{
		maxDisplay:     DefaultPricingMaxDisplay,
		whatsappNumber: DefaultWhatsappNumber,
		updatedAt:      time.Now(),
	}
}

func ReconstructPricingSettings(id uint, maxDisplay int, whatsappNumber string, updatedAt time.Time) *PricingSettings {
	return &PricingSettings{
		id:             id,
		maxDisplay:     maxDisplay,
		whatsappNumber: whatsappNumber,
		updatedAt:      updatedAt,
	}
}

func (s *PricingSettings) ID() uint               { return s.id }
func (s *PricingSettings) MaxDisplay() int        { return s.maxDisplay }
func (s *PricingSettings) WhatsappNumber() string { return s.whatsappNumber }
func (s *PricingSettings) UpdatedAt() time.Time   { return s.updatedAt }

func (s *PricingSettings) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("pricing settings ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("pricing settings ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *PricingSettings) Update(maxDisplay int, whatsappNumber string) error {
	if maxDisplay < 1 {
		return fmt.Errorf("max display must be at least 1")
	}
	whatsappNumber = strings.TrimSpace(whatsappNumber)
	if whatsappNumber == "" {
		return fmt.Errorf("whatsapp number is required")
	}
	s.maxDisplay = maxDisplay
	s.whatsappNumber = whatsappNumber
	s.updatedAt = time.Now()
	return nil
}
