package testimonial

import "context"

// Repository persists testimonials.
// List returns rows ordered by priority desc, createdAt desc, id desc.
// ListVisible returns active approved rows ordered by isFeatured desc,
// priority desc, createdAt desc, id desc.
type Repository interface {
	Create(ctx context.Context, testimonial *Testimonial) error
	GetByID(ctx context.Context, id uint) (*Testimonial, error)
	List(ctx context.Context) ([]*Testimonial, error)
	ListVisible(ctx context.Context) ([]*Testimonial, error)
	Update(ctx context.Context, testimonial *Testimonial) error
	Delete(ctx context.Context, id uint) error
}

// ThemeDirectory resolves catalog theme names for the weak theme reference.
// Identifiers that no longer exist are absent from the result.
type ThemeDirectory interface {
	NamesByIDs(ctx context.Context, ids []uint) (map[uint]string, error)
}

// SettingsRepository manages the singleton settings row.
// GetOrCreate persists the defaults on first read.
type SettingsRepository interface {
	GetOrCreate(ctx context.Context) (*TestimonialSettings, error)
	Update(ctx context.Context, settings *TestimonialSettings) error
}
