package handlers

import (
	"context"

	"github.com/lamaran-inc/lamaran/internal/application/showcase/dto"
	"github.com/lamaran-inc/lamaran/internal/application/showcase/usecases"
)

// Use case interfaces for ServiceHandler - enable unit testing with mocks.

type createServiceUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateServiceCommand) (*dto.ServiceDTO, error)
}

type updateServiceUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateServiceCommand) (*dto.ServiceDTO, error)
}

type deleteServiceUseCase interface {
	Execute(ctx context.Context, id uint) error
}

type listServicesUseCase interface {
	Execute(ctx context.Context) ([]*dto.ServiceDTO, error)
}

type getPublicServicesUseCase interface {
	Execute(ctx context.Context) (*dto.PublicServicesDTO, error)
}

type getServiceSettingsUseCase interface {
	Execute(ctx context.Context) (*dto.ServiceSettingsDTO, error)
}

type updateServiceSettingsUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateServiceSettingsCommand) (*dto.ServiceSettingsDTO, error)
}
