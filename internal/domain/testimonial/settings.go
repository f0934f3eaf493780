package testimonial

import (
	"fmt"
	"time"
)

// TestimonialSettings is the singleton row controlling moderation and the
// public testimonials section.
type TestimonialSettings struct {
	id               uint
	maxDisplay       int
	autoApprove      bool
	requireApproval  bool
	updatedAt        time.Time
}

const DefaultTestimonialMaxDisplay = 6

func DefaultSettings() *TestimonialSettings {
	return &TestimonialSettings{
		maxDisplay:      DefaultTestimonialMaxDisplay,
		autoApprove:     false,
		requireApproval: true,
		updatedAt:       time.Now(),
	}
}

func ReconstructSettings(id uint, maxDisplay int, autoApprove, requireApproval bool, updatedAt time.Time) *TestimonialSettings {
	return &TestimonialSettings{
		id:              id,
		maxDisplay:      maxDisplay,
		autoApprove:     autoApprove,
		requireApproval: requireApproval,
		updatedAt:       updatedAt,
	}
}

func (s *TestimonialSettings) ID() uint              { return s.id }
func (s *TestimonialSettings) MaxDisplay() int       { return s.maxDisplay }
func (s *TestimonialSettings) AutoApprove() bool     { return s.autoApprove }
func (s *TestimonialSettings) RequireApproval() bool { return s.requireApproval }
func (s *TestimonialSettings) UpdatedAt() time.Time  { return s.updatedAt }

func (s *TestimonialSettings) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("testimonial settings ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("testimonial settings ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *TestimonialSettings) Update(maxDisplay int, autoApprove, requireApproval bool) error {
	if maxDisplay < 1 {
		return fmt.Errorf("max display must be at least 1")
	}
	s.maxDisplay = maxDisplay
	s.autoApprove = autoApprove
	s.requireApproval = requireApproval
	s.updatedAt = time.Now()
	return nil
}
