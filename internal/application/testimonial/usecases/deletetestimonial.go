package usecases

import (
	"context"
	"fmt"

	"github.com/lamaran-inc/lamaran/internal/domain/asset"
	"github.com/lamaran-inc/lamaran/internal/domain/testimonial"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type DeleteTestimonialUseCase struct {
	testimonialRepo testimonial.Repository
	assets          asset.Store
	logger          logger.Interface
}

func NewDeleteTestimonialUseCase(testimonialRepo testimonial.Repository, assets asset.Store, logger logger.Interface) *DeleteTestimonialUseCase {
	return &DeleteTestimonialUseCase{
		testimonialRepo: testimonialRepo,
		assets:          assets,
		logger:          logger,
	}
}

func (uc *DeleteTestimonialUseCase) Execute(ctx context.Context, id uint) error {
	tm, err := uc.testimonialRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to load testimonial", "error", err, "testimonial_id", id)
		return fmt.Errorf("failed to load testimonial: %w", err)
	}
	if tm == nil {
		return errors.NewNotFoundError("testimonial not found")
	}

	if err := uc.testimonialRepo.Delete(ctx, id); err != nil {
		if errors.IsAppError(err) {
			return err
		}
		uc.logger.Errorw("failed to delete testimonial", "error", err, "testimonial_id", id)
		return fmt.Errorf("failed to delete testimonial: %w", err)
	}

	if tm.HasImage() {
		if err := uc.assets.Delete(ctx, *tm.Image()); err != nil {
			uc.logger.Warnw("failed to delete testimonial image",
				"error", err, "url", *tm.Image())
		}
	}

	uc.logger.Infow("testimonial deleted", "testimonial_id", id)
	return nil
}
