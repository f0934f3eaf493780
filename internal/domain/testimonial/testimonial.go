// Package testimonial models customer reviews and the moderation workflow
// that gates them before the public site shows them.
package testimonial

import (
	"fmt"
	"strings"
	"time"
)

// Testimonial is one customer review. The theme reference is weak: it points
// at a catalog theme by ID only, so deleting the theme leaves the testimonial
// intact.
type Testimonial struct {
	id         uint
	name       string
	role       string
	email      *string
	content    string
	rating     int
	event      string
	image      *string
	weddingOn  *time.Time
	themeID    *uint
	isActive   bool
	isApproved bool
	isFeatured bool
	priority   int
	approvedAt *time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

const (
	// DefaultRole is used when a submitter leaves the role blank.
	DefaultRole = "Pasangan Pengantin"

	DefaultRating = 5
	MinRating     = 1
	MaxRating     = 5

	MaxContentLength = 2000
)

func NewTestimonial(name, role, content, event string, rating int) (*Testimonial, error) {
	name = strings.TrimSpace(name)
	role = strings.TrimSpace(role)
	content = strings.TrimSpace(content)
	event = strings.TrimSpace(event)

	if name == "" {
		return nil, fmt.Errorf("testimonial name is required")
	}
	if content == "" {
		return nil, fmt.Errorf("testimonial content is required")
	}
	if event == "" {
		return nil, fmt.Errorf("testimonial event is required")
	}
	if len(content) > MaxContentLength {
		return nil, fmt.Errorf("testimonial content cannot exceed %d characters", MaxContentLength)
	}
	if role == "" {
		role = DefaultRole
	}
	if rating == 0 {
		rating = DefaultRating
	}
	if rating < MinRating || rating > MaxRating {
		return nil, fmt.Errorf("rating must be between %d and %d", MinRating, MaxRating)
	}

	now := time.Now()
	return &Testimonial{
		name:      name,
		role:      role,
		content:   content,
		rating:    rating,
		event:     event,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructTestimonial(id uint, name, role string, email *string, content string, rating int,
	event string, image *string, weddingOn *time.Time, themeID *uint,
	isActive, isApproved, isFeatured bool, priority int, approvedAt *time.Time,
	createdAt, updatedAt time.Time) (*Testimonial, error) {

	if id == 0 {
		return nil, fmt.Errorf("testimonial ID cannot be zero")
	}
	return &Testimonial{
		id:         id,
		name:       name,
		role:       role,
		email:      email,
		content:    content,
		rating:     rating,
		event:      event,
		image:      image,
		weddingOn:  weddingOn,
		themeID:    themeID,
		isActive:   isActive,
		isApproved: isApproved,
		isFeatured: isFeatured,
		priority:   priority,
		approvedAt: approvedAt,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (t *Testimonial) ID() uint               { return t.id }
func (t *Testimonial) Name() string           { return t.name }
func (t *Testimonial) Role() string           { return t.role }
func (t *Testimonial) Email() *string         { return t.email }
func (t *Testimonial) Content() string        { return t.content }
func (t *Testimonial) Rating() int            { return t.rating }
func (t *Testimonial) Event() string          { return t.event }
func (t *Testimonial) Image() *string         { return t.image }
func (t *Testimonial) WeddingOn() *time.Time  { return t.weddingOn }
func (t *Testimonial) ThemeID() *uint         { return t.themeID }
func (t *Testimonial) IsActive() bool         { return t.isActive }
func (t *Testimonial) IsApproved() bool       { return t.isApproved }
func (t *Testimonial) IsFeatured() bool       { return t.isFeatured }
func (t *Testimonial) Priority() int          { return t.priority }
func (t *Testimonial) ApprovedAt() *time.Time { return t.approvedAt }
func (t *Testimonial) CreatedAt() time.Time   { return t.createdAt }
func (t *Testimonial) UpdatedAt() time.Time   { return t.updatedAt }

func (t *Testimonial) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("testimonial ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("testimonial ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Testimonial) Update(name, role, content, event string, rating int) error {
	name = strings.TrimSpace(name)
	role = strings.TrimSpace(role)
	content = strings.TrimSpace(content)
	event = strings.TrimSpace(event)

	if name == "" {
		return fmt.Errorf("testimonial name is required")
	}
	if content == "" {
		return fmt.Errorf("testimonial content is required")
	}
	if event == "" {
		return fmt.Errorf("testimonial event is required")
	}
	if len(content) > MaxContentLength {
		return fmt.Errorf("testimonial content cannot exceed %d characters", MaxContentLength)
	}
	if role == "" {
		role = DefaultRole
	}
	if rating < MinRating || rating > MaxRating {
		return fmt.Errorf("rating must be between %d and %d", MinRating, MaxRating)
	}

	t.name = name
	t.role = role
	t.content = content
	t.event = event
	t.rating = rating
	t.updatedAt = time.Now()
	return nil
}

func (t *Testimonial) SetDetails(email *string, weddingOn *time.Time, themeID *uint) {
	t.email = email
	t.weddingOn = weddingOn
	t.themeID = themeID
	t.updatedAt = time.Now()
}

func (t *Testimonial) SetImage(url string) {
	t.image = &url
	t.updatedAt = time.Now()
}

func (t *Testimonial) HasImage() bool {
	return t.image != nil && *t.image != ""
}

func (t *Testimonial) SetActive(active bool) {
	t.isActive = active
	t.updatedAt = time.Now()
}

// Approve marks the testimonial as publishable. The approval timestamp is
// recorded only on the false-to-true transition; re-approving keeps the
// original moment.
func (t *Testimonial) Approve() {
	if !t.isApproved {
		now := time.Now()
		t.approvedAt = &now
	}
	t.isApproved = true
	t.updatedAt = time.Now()
}

// Unapprove hides the testimonial again. The approval timestamp is kept as a
// historical record.
func (t *Testimonial) Unapprove() {
	t.isApproved = false
	t.updatedAt = time.Now()
}

func (t *Testimonial) SetFeatured(featured bool, priority int) {
	t.isFeatured = featured
	t.priority = priority
	t.updatedAt = time.Now()
}
