package usecases

import (
	"context"
	"fmt"

	"github.com/lamaran-inc/lamaran/internal/application/testimonial/dto"
	"github.com/lamaran-inc/lamaran/internal/domain/testimonial"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type ListTestimonialsUseCase struct {
	testimonialRepo testimonial.Repository
	themes          testimonial.ThemeDirectory
	logger          logger.Interface
}

func NewListTestimonialsUseCase(testimonialRepo testimonial.Repository, themes testimonial.ThemeDirectory, logger logger.Interface) *ListTestimonialsUseCase {
	return &ListTestimonialsUseCase{
		testimonialRepo: testimonialRepo,
		themes:          themes,
		logger:          logger,
	}
}

func (uc *ListTestimonialsUseCase) Execute(ctx context.Context) ([]*dto.TestimonialDTO, error) {
	testimonials, err := uc.testimonialRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list testimonials", "error", err)
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}

	themeNames, err := resolveThemeNames(ctx, uc.themes, testimonials...)
	if err != nil {
		uc.logger.Errorw("failed to resolve theme references", "error", err)
		return nil, err
	}

	return dto.ToTestimonialDTOList(testimonials, themeNames), nil
}
