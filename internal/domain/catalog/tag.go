package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/lamaran-inc/lamaran/internal/domain/appearance"
)

// Tag is a display badge attached to themes ("New", "Best Seller", ...).
// Names are globally unique; color and icon come from the closed appearance sets.
type Tag struct {
	id        uint
	name      string
	color     appearance.GradientToken
	icon      appearance.IconName
	createdAt time.Time
}

func NewTag(name string, color appearance.GradientToken, icon appearance.IconName) (*Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("tag name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("tag name too long (max 100 characters)")
	}
	if !color.IsValid() {
		return nil, fmt.Errorf("invalid tag color: %s", color)
	}
	if !icon.IsValid() {
		return nil, fmt.Errorf("invalid tag icon: %s", icon)
	}

	return &Tag{
		name:      name,
		color:     color,
		icon:      icon,
		createdAt: time.Now(),
	}, nil
}

func ReconstructTag(id uint, name, color, icon string, createdAt time.Time) (*Tag, error) {
	if id == 0 {
		return nil, fmt.Errorf("tag ID cannot be zero")
	}
	return &Tag{
		id:        id,
		name:      name,
		color:     appearance.GradientToken(color),
		icon:      appearance.IconName(icon),
		createdAt: createdAt,
	}, nil
}

func (t *Tag) ID() uint {
	return t.id
}

func (t *Tag) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("tag ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("tag ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Tag) Name() string {
	return t.name
}

func (t *Tag) Color() appearance.GradientToken {
	return t.color
}

func (t *Tag) Icon() appearance.IconName {
	return t.icon
}

func (t *Tag) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Tag) Update(name string, color appearance.GradientToken, icon appearance.IconName) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("tag name is required")
	}
	if !color.IsValid() {
		return fmt.Errorf("invalid tag color: %s", color)
	}
	if !icon.IsValid() {
		return fmt.Errorf("invalid tag icon: %s", icon)
	}
	t.name = name
	t.color = color
	t.icon = icon
	return nil
}
