package catalog

import (
	"fmt"
	"strings"
	"time"
)

// Theme is an invitation template offered for sale. A theme always belongs to
// at least one category; tags are optional. The image field holds the asset
// store URL, or nil when no preview has been uploaded.
type Theme struct {
	id         uint
	name       string
	price      int
	demoURL    string
	image      *string
	categories []*Category
	tags       []*Tag
	createdAt  time.Time
	updatedAt  time.Time
}

func NewTheme(name string, price int, demoURL string, categories []*Category, tags []*Tag) (*Theme, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("theme name is required")
	}
	if price < 0 {
		return nil, fmt.Errorf("theme price cannot be negative")
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("theme requires at least one category")
	}

	now := time.Now()
	return &Theme{
		name:       name,
		price:      price,
		demoURL:    demoURL,
		categories: categories,
		tags:       tags,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructTheme(id uint, name string, price int, demoURL string, image *string,
	categories []*Category, tags []*Tag, createdAt, updatedAt time.Time) (*Theme, error) {

	if id == 0 {
		return nil, fmt.Errorf("theme ID cannot be zero")
	}
	return &Theme{
		id:         id,
		name:       name,
		price:      price,
		demoURL:    demoURL,
		image:      image,
		categories: categories,
		tags:       tags,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (t *Theme) ID() uint {
	return t.id
}

func (t *Theme) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("theme ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("theme ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Theme) Name() string {
	return t.name
}

func (t *Theme) Price() int {
	return t.price
}

func (t *Theme) DemoURL() string {
	return t.demoURL
}

func (t *Theme) Image() *string {
	return t.image
}

func (t *Theme) Categories() []*Category {
	return t.categories
}

func (t *Theme) Tags() []*Tag {
	return t.tags
}

func (t *Theme) CategoryIDs() []uint {
	ids := make([]uint, 0, len(t.categories))
	for _, c := range t.categories {
		ids = append(ids, c.ID())
	}
	return ids
}

func (t *Theme) TagIDs() []uint {
	ids := make([]uint, 0, len(t.tags))
	for _, tag := range t.tags {
		ids = append(ids, tag.ID())
	}
	return ids
}

func (t *Theme) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Theme) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Theme) Update(name string, price int, demoURL string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("theme name is required")
	}
	if price < 0 {
		return fmt.Errorf("theme price cannot be negative")
	}
	t.name = name
	t.price = price
	t.demoURL = demoURL
	t.updatedAt = time.Now()
	return nil
}

// ReplaceCategories swaps the whole category set. The set may never be empty.
func (t *Theme) ReplaceCategories(categories []*Category) error {
	if len(categories) == 0 {
		return fmt.Errorf("theme requires at least one category")
	}
	t.categories = categories
	t.updatedAt = time.Now()
	return nil
}

// ReplaceTags swaps the whole tag set. An empty set is allowed.
func (t *Theme) ReplaceTags(tags []*Tag) {
	t.tags = tags
	t.updatedAt = time.Now()
}

// SetImage points the theme at a newly stored asset URL
func (t *Theme) SetImage(url string) {
	t.image = &url
	t.updatedAt = time.Now()
}

// ClearImage detaches the current asset URL
func (t *Theme) ClearImage() {
	t.image = nil
	t.updatedAt = time.Now()
}

// HasImage reports whether an asset URL is attached
func (t *Theme) HasImage() bool {
	return t.image != nil && *t.image != ""
}
