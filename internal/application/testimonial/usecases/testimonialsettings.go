package usecases

import (
	"context"
	"fmt"

	"github.com/lamaran-inc/lamaran/internal/application/testimonial/dto"
	"github.com/lamaran-inc/lamaran/internal/domain/testimonial"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type GetTestimonialSettingsUseCase struct {
	settingsRepo testimonial.SettingsRepository
	logger       logger.Interface
}

func NewGetTestimonialSettingsUseCase(settingsRepo testimonial.SettingsRepository, logger logger.Interface) *GetTestimonialSettingsUseCase {
	return &GetTestimonialSettingsUseCase{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

func (uc *GetTestimonialSettingsUseCase) Execute(ctx context.Context) (*dto.TestimonialSettingsDTO, error) {
	settings, err := uc.settingsRepo.GetOrCreate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load testimonial settings", "error", err)
		return nil, fmt.Errorf("failed to load testimonial settings: %w", err)
	}

	return dto.ToTestimonialSettingsDTO(settings), nil
}

type UpdateTestimonialSettingsCommand struct {
	MaxDisplay      int
	AutoApprove     bool
	RequireApproval bool
}

type UpdateTestimonialSettingsUseCase struct {
	settingsRepo testimonial.SettingsRepository
	logger       logger.Interface
}

func NewUpdateTestimonialSettingsUseCase(settingsRepo testimonial.SettingsRepository, logger logger.Interface) *UpdateTestimonialSettingsUseCase {
	return &UpdateTestimonialSettingsUseCase{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

func (uc *UpdateTestimonialSettingsUseCase) Execute(ctx context.Context, cmd UpdateTestimonialSettingsCommand) (*dto.TestimonialSettingsDTO, error) {
	settings, err := uc.settingsRepo.GetOrCreate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load testimonial settings", "error", err)
		return nil, fmt.Errorf("failed to load testimonial settings: %w", err)
	}

	if err := settings.Update(cmd.MaxDisplay, cmd.AutoApprove, cmd.RequireApproval); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.settingsRepo.Update(ctx, settings); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update testimonial settings", "error", err)
		return nil, fmt.Errorf("failed to update testimonial settings: %w", err)
	}

	uc.logger.Infow("testimonial settings updated")
	return dto.ToTestimonialSettingsDTO(settings), nil
}
