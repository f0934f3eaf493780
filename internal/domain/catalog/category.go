package catalog

import (
	"fmt"
	"strings"
	"time"
)

// Category groups themes for the public gallery filter.
// Names are globally unique.
type Category struct {
	id        uint
	name      string
	createdAt time.Time
}

func NewCategory(name string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("category name too long (max 100 characters)")
	}

	return &Category{
		name:      name,
		createdAt: time.Now(),
	}, nil
}

func ReconstructCategory(id uint, name string, createdAt time.Time) (*Category, error) {
	if id == 0 {
		return nil, fmt.Errorf("category ID cannot be zero")
	}
	return &Category{
		id:        id,
		name:      name,
		createdAt: createdAt,
	}, nil
}

func (c *Category) ID() uint {
	return c.id
}

func (c *Category) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("category ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("category ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Category) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("category name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("category name too long (max 100 characters)")
	}
	c.name = name
	return nil
}
