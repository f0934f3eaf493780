package dto

import (
	"time"

	"github.com/lamaran-inc/lamaran/internal/domain/showcase"
)

// ServiceDTO is the presentation shape of a service card
type ServiceDTO struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Color       string   `json:"color"`
	Image       *string  `json:"image"`
	Features    []string `json:"features"`
	ButtonText  string   `json:"buttonText"`
	ButtonLink  *string  `json:"buttonLink"`
	IsActive    bool     `json:"isActive"`
	IsFeatured  bool     `json:"isFeatured"`
	Priority    int      `json:"priority"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ServiceSettingsDTO is the presentation shape of the services section settings
type ServiceSettingsDTO struct {
	MaxDisplay          int  `json:"maxDisplay"`
	EnableFlipAnimation bool `json:"enableFlipAnimation"`
	AutoRotate          bool `json:"autoRotate"`
	AutoRotateInterval  int  `json:"autoRotateInterval"`
}

// PublicServicesDTO bundles the visible cards with the display settings the
// public page needs to render them
type PublicServicesDTO struct {
	Services []*ServiceDTO       `json:"services"`
	Settings *ServiceSettingsDTO `json:"settings"`
}

// ToServiceDTO converts a Service entity to its presentation shape
func ToServiceDTO(service *showcase.Service) *ServiceDTO {
	if service == nil {
		return nil
	}
	features := service.Features()
	if features == nil {
		features = []string{}
	}
	return &ServiceDTO{
		ID:          service.ID(),
		Title:       service.Title(),
		Description: service.Description(),
		Icon:        service.Icon().String(),
		Color:       service.Color().String(),
		Image:       service.Image(),
		Features:    features,
		ButtonText:  service.ButtonText(),
		ButtonLink:  service.ButtonLink(),
		IsActive:    service.IsActive(),
		IsFeatured:  service.IsFeatured(),
		Priority:    service.Priority(),
		CreatedAt:   service.CreatedAt(),
		UpdatedAt:   service.UpdatedAt(),
	}
}

// ToServiceDTOList batch converts services, returning an empty slice for nil input
func ToServiceDTOList(services []*showcase.Service) []*ServiceDTO {
	dtos := make([]*ServiceDTO, 0, len(services))
	for _, service := range services {
		if service != nil {
			dtos = append(dtos, ToServiceDTO(service))
		}
	}
	return dtos
}

// ToServiceSettingsDTO converts settings to the presentation shape
func ToServiceSettingsDTO(settings *showcase.ServiceSettings) *ServiceSettingsDTO {
	if settings == nil {
		return nil
	}
	return &ServiceSettingsDTO{
		MaxDisplay:          settings.MaxDisplay(),
		EnableFlipAnimation: settings.EnableFlipAnimation(),
		AutoRotate:          settings.AutoRotate(),
		AutoRotateInterval:  settings.AutoRotateInterval(),
	}
}
