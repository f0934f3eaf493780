package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/lamaran-inc/lamaran/internal/application/testimonial/dto"
	"github.com/lamaran-inc/lamaran/internal/domain/asset"
	"github.com/lamaran-inc/lamaran/internal/domain/testimonial"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type UpdateTestimonialCommand struct {
	ID         uint
	Name       string
	Role       string
	Email      *string
	Content    string
	Rating     int
	Event      string
	WeddingOn  *time.Time
	ThemeID    *uint
	IsActive   bool
	IsApproved bool
	IsFeatured bool
	Priority   int
	Image      *ImageUpload
}

type UpdateTestimonialUseCase struct {
	testimonialRepo testimonial.Repository
	themes          testimonial.ThemeDirectory
	assets          asset.Store
	logger          logger.Interface
}

func NewUpdateTestimonialUseCase(
	testimonialRepo testimonial.Repository,
	themes testimonial.ThemeDirectory,
	assets asset.Store,
	logger logger.Interface,
) *UpdateTestimonialUseCase {
	return &UpdateTestimonialUseCase{
		testimonialRepo: testimonialRepo,
		themes:          themes,
		assets:          assets,
		logger:          logger,
	}
}

func (uc *UpdateTestimonialUseCase) Execute(ctx context.Context, cmd UpdateTestimonialCommand) (*dto.TestimonialDTO, error) {
	tm, err := uc.testimonialRepo.GetByID(ctx, cmd.ID)
	if err != nil {
		uc.logger.Errorw("failed to load testimonial", "error", err, "testimonial_id", cmd.ID)
		return nil, fmt.Errorf("failed to load testimonial: %w", err)
	}
	if tm == nil {
		return nil, errors.NewNotFoundError("testimonial not found")
	}

	if err := tm.Update(cmd.Name, cmd.Role, cmd.Content, cmd.Event, cmd.Rating); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	tm.SetDetails(cmd.Email, cmd.WeddingOn, cmd.ThemeID)
	tm.SetActive(cmd.IsActive)
	tm.SetFeatured(cmd.IsFeatured, cmd.Priority)
	if cmd.IsApproved {
		tm.Approve()
	} else {
		tm.Unapprove()
	}

	var oldImage *string
	if cmd.Image != nil {
		if tm.HasImage() {
			prev := *tm.Image()
			oldImage = &prev
		}
		url, err := uc.assets.Store(ctx, cmd.Image.Content, asset.FolderTestimonials, cmd.Image.Filename)
		if err != nil {
			if errors.IsAppError(err) {
				return nil, err
			}
			uc.logger.Errorw("failed to store testimonial image", "error", err)
			return nil, errors.NewStorageError("failed to store testimonial image")
		}
		tm.SetImage(url)
	}

	if err := uc.testimonialRepo.Update(ctx, tm); err != nil {
		if cmd.Image != nil && tm.HasImage() {
			if delErr := uc.assets.Delete(ctx, *tm.Image()); delErr != nil {
				uc.logger.Warnw("failed to clean up orphaned testimonial image",
					"error", delErr, "url", *tm.Image())
			}
		}
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update testimonial", "error", err, "testimonial_id", cmd.ID)
		return nil, fmt.Errorf("failed to update testimonial: %w", err)
	}

	if oldImage != nil {
		if err := uc.assets.Delete(ctx, *oldImage); err != nil {
			uc.logger.Warnw("failed to delete replaced testimonial image",
				"error", err, "url", *oldImage)
		}
	}

	themeNames, err := resolveThemeNames(ctx, uc.themes, tm)
	if err != nil {
		uc.logger.Errorw("failed to resolve theme reference", "error", err)
		return nil, err
	}

	uc.logger.Infow("testimonial updated", "testimonial_id", tm.ID())
	return dto.ToTestimonialDTO(tm, themeNames), nil
}
