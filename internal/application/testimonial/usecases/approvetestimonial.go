package usecases

import (
	"context"
	"fmt"

	"github.com/lamaran-inc/lamaran/internal/application/testimonial/dto"
	"github.com/lamaran-inc/lamaran/internal/domain/testimonial"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type ApproveTestimonialCommand struct {
	ID       uint
	Approved bool
}

type ApproveTestimonialUseCase struct {
	testimonialRepo testimonial.Repository
	themes          testimonial.ThemeDirectory
	logger          logger.Interface
}

func NewApproveTestimonialUseCase(testimonialRepo testimonial.Repository, themes testimonial.ThemeDirectory, logger logger.Interface) *ApproveTestimonialUseCase {
	return &ApproveTestimonialUseCase{
		testimonialRepo: testimonialRepo,
		themes:          themes,
		logger:          logger,
	}
}

func (uc *ApproveTestimonialUseCase) Execute(ctx context.Context, cmd ApproveTestimonialCommand) (*dto.TestimonialDTO, error) {
	tm, err := uc.testimonialRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to load testimonial", "error", err, "testimonial_id", cmd.ID)
		return nil, fmt.Errorf("failed to load testimonial: %w", err)
	}
	if tm == nil {
		return nil, errors.NewNotFoundError("testimonial not found")
	}

	if cmd.Approved {
		tm.Approve()
	} else {
		tm.Unapprove()
	}

	if err := uc.testimonialRepo.Update(ctx, tm); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update testimonial approval", "error", err, "testimonial_id", cmd.ID)
		return nil, fmt.Errorf("failed to update testimonial approval: %w", err)
	}

	themeNames, err := resolveThemeNames(ctx, uc.themes, tm)
	if err != nil {
		uc.logger.Errorw("failed to resolve theme reference", "error", err)
		return nil, err
	}

	uc.logger.Infow("testimonial approval changed",
		"testimonial_id", tm.ID(), "approved", tm.IsApproved())
	return dto.ToTestimonialDTO(tm, themeNames), nil
}
