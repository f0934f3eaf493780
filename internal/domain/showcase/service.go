// Package showcase models the services section of the marketing site:
// the offering cards an admin curates and the display settings that control
// how many of them the public page shows.
package showcase

import (
	"fmt"
	"strings"
	"time"

	"github.com/lamaran-inc/lamaran/internal/domain/appearance"
)

// Service is one offering card (custom design, rush delivery, ...).
type Service struct {
	id          uint
	title       string
	description string
	icon        appearance.IconName
	color       appearance.GradientToken
	image       *string
	features    []string
	buttonText  string
	buttonLink  *string
	isActive    bool
	isFeatured  bool
	priority    int
	createdAt   time.Time
	updatedAt   time.Time
}

// DefaultButtonText is the Indonesian call-to-action used when none is given
const DefaultButtonText = "Lihat Tema Ini"

// MaxFeatures caps the feature bullet list per card
const MaxFeatures = 5

func NewService(title, description string, icon appearance.IconName, color appearance.GradientToken, features []string) (*Service, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" {
		return nil, fmt.Errorf("service title is required")
	}
	if description == "" {
		return nil, fmt.Errorf("service description is required")
	}
	if !icon.IsValid() {
		return nil, fmt.Errorf("invalid service icon: %s", icon)
	}
	if !color.IsValid() {
		return nil, fmt.Errorf("invalid service color: %s", color)
	}

	cleaned, err := cleanFeatures(features)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Service{
		title:       title,
		description: description,
		icon:        icon,
		color:       color,
		features:    cleaned,
		buttonText:  DefaultButtonText,
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructService(id uint, title, description, icon, color string, image *string,
	features []string, buttonText string, buttonLink *string,
	isActive, isFeatured bool, priority int, createdAt, updatedAt time.Time) (*Service, error) {

	if id == 0 {
		return nil, fmt.Errorf("service ID cannot be zero")
	}
	return &Service{
		id:          id,
		title:       title,
		description: description,
		icon:        appearance.IconName(icon),
		color:       appearance.GradientToken(color),
		image:       image,
		features:    features,
		buttonText:  buttonText,
		buttonLink:  buttonLink,
		isActive:    isActive,
		isFeatured:  isFeatured,
		priority:    priority,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (s *Service) ID() uint                        { return s.id }
func (s *Service) Title() string                   { return s.title }
func (s *Service) Description() string             { return s.description }
func (s *Service) Icon() appearance.IconName       { return s.icon }
func (s *Service) Color() appearance.GradientToken { return s.color }
func (s *Service) Image() *string                  { return s.image }
func (s *Service) Features() []string              { return s.features }
func (s *Service) ButtonText() string              { return s.buttonText }
func (s *Service) ButtonLink() *string             { return s.buttonLink }
func (s *Service) IsActive() bool                  { return s.isActive }
func (s *Service) IsFeatured() bool                { return s.isFeatured }
func (s *Service) Priority() int                   { return s.priority }
func (s *Service) CreatedAt() time.Time            { return s.createdAt }
func (s *Service) UpdatedAt() time.Time            { return s.updatedAt }

func (s *Service) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("service ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("service ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Service) Update(title, description string, icon appearance.IconName, color appearance.GradientToken, features []string) error {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" {
		return fmt.Errorf("service title is required")
	}
	if description == "" {
		return fmt.Errorf("service description is required")
	}
	if !icon.IsValid() {
		return fmt.Errorf("invalid service icon: %s", icon)
	}
	if !color.IsValid() {
		return fmt.Errorf("invalid service color: %s", color)
	}

	cleaned, err := cleanFeatures(features)
	if err != nil {
		return err
	}

	s.title = title
	s.description = description
	s.icon = icon
	s.color = color
	s.features = cleaned
	s.updatedAt = time.Now()
	return nil
}

func (s *Service) SetButton(text string, link *string) {
	if strings.TrimSpace(text) == "" {
		text = DefaultButtonText
	}
	s.buttonText = text
	s.buttonLink = link
	s.updatedAt = time.Now()
}

func (s *Service) SetFlags(isActive, isFeatured bool, priority int) {
	s.isActive = isActive
	s.isFeatured = isFeatured
	s.priority = priority
	s.updatedAt = time.Now()
}

func (s *Service) SetImage(url string) {
	s.image = &url
	s.updatedAt = time.Now()
}

func (s *Service) HasImage() bool {
	return s.image != nil && *s.image != ""
}

func cleanFeatures(features []string) ([]string, error) {
	cleaned := make([]string, 0, len(features))
	for _, f := range features {
		f = strings.TrimSpace(f)
		if f != "" {
			cleaned = append(cleaned, f)
		}
	}
	if len(cleaned) > MaxFeatures {
		return nil, fmt.Errorf("too many features (max %d)", MaxFeatures)
	}
	return cleaned, nil
}
