package usecases

import (
	"context"
	"fmt"

	"github.com/lamaran-inc/lamaran/internal/application/pricing/dto"
	"github.com/lamaran-inc/lamaran/internal/domain/pricing"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type GetPricingSettingsUseCase struct {
	settingsRepo pricing.SettingsRepository
	logger       logger.Interface
}

func NewGetPricingSettingsUseCase(settingsRepo pricing.SettingsRepository, logger logger.Interface) *GetPricingSettingsUseCase {
	return &GetPricingSettingsUseCase{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

func (uc *GetPricingSettingsUseCase) Execute(ctx context.Context) (*dto.PricingSettingsDTO, error) {
	settings, err := uc.settingsRepo.GetOrCreate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load pricing settings", "error", err)
		return nil, fmt.Errorf("failed to load pricing settings: %w", err)
	}

	return dto.ToPricingSettingsDTO(settings), nil
}

type UpdatePricingSettingsCommand struct {
	MaxDisplay     int
	WhatsappNumber string
}

type UpdatePricingSettingsUseCase struct {
	settingsRepo pricing.SettingsRepository
	logger       logger.Interface
}

func NewUpdatePricingSettingsUseCase(settingsRepo pricing.SettingsRepository, logger logger.Interface) *UpdatePricingSettingsUseCase {
	return &UpdatePricingSettingsUseCase{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

func (uc *UpdatePricingSettingsUseCase) Execute(ctx context.Context, cmd UpdatePricingSettingsCommand) (*dto.PricingSettingsDTO, error) {
	settings, err := uc.settingsRepo.GetOrCreate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load pricing settings", "error", err)
		return nil, fmt.Errorf("failed to load pricing settings: %w", err)
	}

	if err := settings.Update(cmd.MaxDisplay, cmd.WhatsappNumber); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.settingsRepo.Update(ctx, settings); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update pricing settings", "error", err)
		return nil, fmt.Errorf("failed to update pricing settings: %w", err)
	}

	uc.logger.Infow("pricing settings updated")
	return dto.ToPricingSettingsDTO(settings), nil
}
