package usecases

import (
	"context"
	"fmt"

	"github.com/lamaran-inc/lamaran/internal/application/testimonial/dto"
	"github.com/lamaran-inc/lamaran/internal/domain/display"
	"github.com/lamaran-inc/lamaran/internal/domain/testimonial"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type GetPublicTestimonialsUseCase struct {
	testimonialRepo testimonial.Repository
	settingsRepo    testimonial.SettingsRepository
	themes          testimonial.ThemeDirectory
	logger          logger.Interface
}

func NewGetPublicTestimonialsUseCase(
	testimonialRepo testimonial.Repository,
	settingsRepo testimonial.SettingsRepository,
	themes testimonial.ThemeDirectory,
	logger logger.Interface,
) *GetPublicTestimonialsUseCase {
	return &GetPublicTestimonialsUseCase{
		testimonialRepo: testimonialRepo,
		settingsRepo:    settingsRepo,
		themes:          themes,
		logger:          logger,
	}
}

// Execute returns the reviews a visitor sees: active approved rows only,
// featured ones first, capped at the configured display count. The
// require-approval toggle governs the submission flow, never this filter.
func (uc *GetPublicTestimonialsUseCase) Execute(ctx context.Context) (*dto.PublicTestimonialsDTO, error) {
	settings, err := uc.settingsRepo.GetOrCreate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load testimonial settings", "error", err)
		return nil, fmt.Errorf("failed to load testimonial settings: %w", err)
	}

	testimonials, err := uc.testimonialRepo.ListVisible(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list testimonials", "error", err)
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}

	visible := display.Truncate(display.VisibleTestimonials(testimonials), settings.MaxDisplay())

	themeNames, err := resolveThemeNames(ctx, uc.themes, visible...)
	if err != nil {
		uc.logger.Errorw("failed to resolve theme references", "error", err)
		return nil, err
	}

	return &dto.PublicTestimonialsDTO{
		Testimonials: dto.ToPublicTestimonialDTOList(visible, themeNames),
		Settings:     dto.ToTestimonialSettingsDTO(settings),
	}, nil
}
