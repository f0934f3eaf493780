package dto

import "time"

// CategoryDTO is the presentation shape of a category
type CategoryDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// TagDTO is the presentation shape of a tag
type TagDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"createdAt"`
}

// ThemeDTO is the presentation shape of a theme with its relations resolved
type ThemeDTO struct {
	ID         uint          `json:"id"`
	Name       string        `json:"name"`
	Price      int           `json:"price"`
	DemoURL    string        `json:"demoUrl"`
	Image      *string       `json:"image"`
	Categories []*CategoryDTO `json:"categories"`
	Tags       []*TagDTO      `json:"tags"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}
