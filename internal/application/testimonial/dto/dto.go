package dto

import (
	"time"

	"github.com/lamaran-inc/lamaran/internal/domain/testimonial"
)

// ThemeRefDTO is the resolved weak theme reference. When the theme has been
// deleted the testimonial keeps its identifier and the reference is omitted.
type ThemeRefDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// TestimonialDTO is the presentation shape of a testimonial for the admin table
type TestimonialDTO struct {
	ID         uint         `json:"id"`
	Name       string       `json:"name"`
	Role       string       `json:"role"`
	Email      *string      `json:"email"`
	Content    string       `json:"content"`
	Rating     int          `json:"rating"`
	Event      string       `json:"event"`
	Image      *string      `json:"image"`
	WeddingOn  *time.Time   `json:"weddingDate"`
	ThemeID    *uint        `json:"themeId"`
	Theme      *ThemeRefDTO `json:"theme"`
	IsActive   bool         `json:"isActive"`
	IsApproved bool         `json:"isApproved"`
	IsFeatured bool         `json:"isFeatured"`
	Priority   int          `json:"priority"`
	ApprovedAt *time.Time   `json:"approvedAt"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}

// PublicTestimonialDTO hides moderation fields from visitors
type PublicTestimonialDTO struct {
	ID         uint         `json:"id"`
	Name       string       `json:"name"`
	Role       string       `json:"role"`
	Content    string       `json:"content"`
	Rating     int          `json:"rating"`
	Event      string       `json:"event"`
	Image      *string      `json:"image"`
	WeddingOn  *time.Time   `json:"weddingDate"`
	Theme      *ThemeRefDTO `json:"theme"`
	IsFeatured bool         `json:"isFeatured"`
}

// PublicTestimonialsDTO bundles the visible testimonials with the settings the
// landing page section needs to render itself
type PublicTestimonialsDTO struct {
	Testimonials []*PublicTestimonialDTO `json:"testimonials"`
	Settings     *TestimonialSettingsDTO `json:"settings"`
}

// TestimonialSettingsDTO is the presentation shape of moderation settings
type TestimonialSettingsDTO struct {
	MaxDisplay      int  `json:"maxDisplay"`
	AutoApprove     bool `json:"autoApprove"`
	RequireApproval bool `json:"requireApproval"`
}

func themeRef(tm *testimonial.Testimonial, themeNames map[uint]string) *ThemeRefDTO {
	if tm.ThemeID() == nil {
		return nil
	}
	name, ok := themeNames[*tm.ThemeID()]
	if !ok {
		return nil
	}
	return &ThemeRefDTO{ID: *tm.ThemeID(), Name: name}
}

// ToTestimonialDTO converts a Testimonial entity to its admin presentation
// shape, resolving the theme reference against the given name directory
func ToTestimonialDTO(tm *testimonial.Testimonial, themeNames map[uint]string) *TestimonialDTO {
	if tm == nil {
		return nil
	}
	return &TestimonialDTO{
		ID:         tm.ID(),
		Name:       tm.Name(),
		Role:       tm.Role(),
		Email:      tm.Email(),
		Content:    tm.Content(),
		Rating:     tm.Rating(),
		Event:      tm.Event(),
		Image:      tm.Image(),
		WeddingOn:  tm.WeddingOn(),
		ThemeID:    tm.ThemeID(),
		Theme:      themeRef(tm, themeNames),
		IsActive:   tm.IsActive(),
		IsApproved: tm.IsApproved(),
		IsFeatured: tm.IsFeatured(),
		Priority:   tm.Priority(),
		ApprovedAt: tm.ApprovedAt(),
		CreatedAt:  tm.CreatedAt(),
		UpdatedAt:  tm.UpdatedAt(),
	}
}

// ToTestimonialDTOList batch converts testimonials, returning an empty slice for nil input
func ToTestimonialDTOList(testimonials []*testimonial.Testimonial, themeNames map[uint]string) []*TestimonialDTO {
	dtos := make([]*TestimonialDTO, 0, len(testimonials))
	for _, tm := range testimonials {
		if tm != nil {
			dtos = append(dtos, ToTestimonialDTO(tm, themeNames))
		}
	}
	return dtos
}

// ToPublicTestimonialDTO converts a Testimonial entity to the visitor shape
func ToPublicTestimonialDTO(tm *testimonial.Testimonial, themeNames map[uint]string) *PublicTestimonialDTO {
	if tm == nil {
		return nil
	}
	return &PublicTestimonialDTO{
		ID:         tm.ID(),
		Name:       tm.Name(),
		Role:       tm.Role(),
		Content:    tm.Content(),
		Rating:     tm.Rating(),
		Event:      tm.Event(),
		Image:      tm.Image(),
		WeddingOn:  tm.WeddingOn(),
		Theme:      themeRef(tm, themeNames),
		IsFeatured: tm.IsFeatured(),
	}
}

// ToPublicTestimonialDTOList batch converts testimonials to the visitor shape
func ToPublicTestimonialDTOList(testimonials []*testimonial.Testimonial, themeNames map[uint]string) []*PublicTestimonialDTO {
	dtos := make([]*PublicTestimonialDTO, 0, len(testimonials))
	for _, tm := range testimonials {
		if tm != nil {
			dtos = append(dtos, ToPublicTestimonialDTO(tm, themeNames))
		}
	}
	return dtos
}

// ToTestimonialSettingsDTO converts settings to the presentation shape
func ToTestimonialSettingsDTO(settings *testimonial.TestimonialSettings) *TestimonialSettingsDTO {
	if settings == nil {
		return nil
	}
	return &TestimonialSettingsDTO{
		MaxDisplay:      settings.MaxDisplay(),
		AutoApprove:     settings.AutoApprove(),
		RequireApproval: settings.RequireApproval(),
	}
}
