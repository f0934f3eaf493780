package usecases

import (
	"context"
	"fmt"

	"github.com/lamaran-inc/lamaran/internal/application/showcase/dto"
	"github.com/lamaran-inc/lamaran/internal/domain/display"
	"github.com/lamaran-inc/lamaran/internal/domain/showcase"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type GetPublicServicesUseCase struct {
	serviceRepo  showcase.ServiceRepository
	settingsRepo showcase.SettingsRepository
	logger       logger.Interface
}

func NewGetPublicServicesUseCase(
	serviceRepo showcase.ServiceRepository,
	settingsRepo showcase.SettingsRepository,
	logger logger.Interface,
) *GetPublicServicesUseCase {
	return &GetPublicServicesUseCase{
		serviceRepo:  serviceRepo,
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Execute returns the cards a visitor sees: active only, repository order,
// capped at the configured max.
func (uc *GetPublicServicesUseCase) Execute(ctx context.Context) (*dto.PublicServicesDTO, error) {
	settings, err := uc.settingsRepo.GetOrCreate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load service settings", "error", err)
		return nil, fmt.Errorf("failed to load service settings: %w", err)
	}

	services, err := uc.serviceRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list services", "error", err)
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	visible := display.Truncate(display.VisibleServices(services), settings.MaxDisplay())

	return &dto.PublicServicesDTO{
		Services: dto.ToServiceDTOList(visible),
		Settings: dto.ToServiceSettingsDTO(settings),
	}, nil
}
