package showcase

import "context"

// ServiceRepository persists service cards.
// List returns rows ordered by priority asc, createdAt asc, id asc.
type ServiceRepository interface {
	Create(ctx context.Context, service *Service) error
	GetByID(ctx context.Context, id uint) (*Service, error)
	List(ctx context.Context) ([]*Service, error)
	Update(ctx context.Context, service *Service) error
	Delete(ctx context.Context, id uint) error
}

// SettingsRepository manages the singleton settings row.
// GetOrCreate persists the defaults on first read.
type SettingsRepository interface {
	GetOrCreate(ctx context.Context) (*ServiceSettings, error)
	Update(ctx context.Context, settings *ServiceSettings) error
}
