package usecases

import (
	"context"
	"fmt"

	"github.com/lamaran-inc/lamaran/internal/application/showcase/dto"
	"github.com/lamaran-inc/lamaran/internal/domain/showcase"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type GetServiceSettingsUseCase struct {
	settingsRepo showcase.SettingsRepository
	logger       logger.Interface
}

func NewGetServiceSettingsUseCase(settingsRepo showcase.SettingsRepository, logger logger.Interface) *GetServiceSettingsUseCase {
	return &GetServiceSettingsUseCase{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

func (uc *GetServiceSettingsUseCase) Execute(ctx context.Context) (*dto.ServiceSettingsDTO, error) {
	settings, err := uc.settingsRepo.GetOrCreate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load service settings", "error", err)
		return nil, fmt.Errorf("failed to load service settings: %w", err)
	}

	return dto.ToServiceSettingsDTO(settings), nil
}

type UpdateServiceSettingsCommand struct {
	MaxDisplay          int
	EnableFlipAnimation bool
	AutoRotate          bool
	AutoRotateInterval  int
}

type UpdateServiceSettingsUseCase struct {
	settingsRepo showcase.SettingsRepository
	logger       logger.Interface
}

func NewUpdateServiceSettingsUseCase(settingsRepo showcase.SettingsRepository, logger logger.Interface) *UpdateServiceSettingsUseCase {
	return &UpdateServiceSettingsUseCase{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

func (uc *UpdateServiceSettingsUseCase) Execute(ctx context.Context, cmd UpdateServiceSettingsCommand) (*dto.ServiceSettingsDTO, error) {
	settings, err := uc.settingsRepo.GetOrCreate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load service settings", "error", err)
		return nil, fmt.Errorf("failed to load service settings: %w", err)
	}

	if err := settings.Update(cmd.MaxDisplay, cmd.EnableFlipAnimation, cmd.AutoRotate, cmd.AutoRotateInterval); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.settingsRepo.Update(ctx, settings); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update service settings", "error", err)
		return nil, fmt.Errorf("failed to update service settings: %w", err)
	}

	uc.logger.Infow("service settings updated")
	return dto.ToServiceSettingsDTO(settings), nil
}
