package usecases

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/lamaran-inc/lamaran/internal/application/testimonial/dto"
	"github.com/lamaran-inc/lamaran/internal/domain/asset"
	"github.com/lamaran-inc/lamaran/internal/domain/testimonial"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

// ImageUpload carries a decoded multipart file into a usecase.
type ImageUpload struct {
	Content  io.Reader
	Filename string
}

type CreateTestimonialCommand struct {
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

// CreateTestimonialUseCase is the admin path: the operator vouches for the
// content, so it is stored as-is and may be approved immediately.
type CreateTestimonialUseCase struct {
	testimonialRepo testimonial.Repository
	themes          testimonial.ThemeDirectory
	assets          asset.Store
	logger          logger.Interface
}

func NewCreateTestimonialUseCase(
	testimonialRepo testimonial.Repository,
	themes testimonial.ThemeDirectory,
	assets asset.Store,
	logger logger.Interface,
) *CreateTestimonialUseCase {
	return &CreateTestimonialUseCase{
		testimonialRepo: testimonialRepo,
		themes:          themes,
		assets:          assets,
		logger:          logger,
	}
}

func (uc *CreateTestimonialUseCase) Execute(ctx context.Context, cmd CreateTestimonialCommand) (*dto.TestimonialDTO, error) {
	tm, err := testimonial.NewTestimonial(cmd.Name, cmd.Role, cmd.Content, cmd.Event, cmd.Rating)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	tm.SetDetails(cmd.Email, cmd.WeddingOn, cmd.ThemeID)
	tm.SetActive(cmd.IsActive)
	tm.SetFeatured(cmd.IsFeatured, cmd.Priority)
	if cmd.IsApproved {
		tm.Approve()
	}

	if cmd.Image != nil {
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

	if err := uc.testimonialRepo.Create(ctx, tm); err != nil {
		if tm.HasImage() {
			if delErr := uc.assets.Delete(ctx, *tm.Image()); delErr != nil {
				uc.logger.Warnw("failed to clean up orphaned testimonial image",
					"error", delErr, "url", *tm.Image())
			}
		}
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to persist testimonial", "error", err)
		return nil, fmt.Errorf("failed to persist testimonial: %w", err)
	}

	themeNames, err := resolveThemeNames(ctx, uc.themes, tm)
	if err != nil {
		uc.logger.Errorw("failed to resolve theme reference", "error", err)
		return nil, err
	}

	uc.logger.Infow("testimonial created", "testimonial_id", tm.ID(), "name", tm.Name())
	return dto.ToTestimonialDTO(tm, themeNames), nil
}

// resolveThemeNames collects the distinct theme identifiers the given
// testimonials point at and looks up their names in one query.
func resolveThemeNames(ctx context.Context, themes testimonial.ThemeDirectory, items ...*testimonial.Testimonial) (map[uint]string, error) {
	seen := make(map[uint]bool)
	ids := make([]uint, 0)
	for _, tm := range items {
		if tm == nil || tm.ThemeID() == nil {
			continue
		}
		if !seen[*tm.ThemeID()] {
			seen[*tm.ThemeID()] = true
			ids = append(ids, *tm.ThemeID())
		}
	}
	if len(ids) == 0 {
		return map[uint]string{}, nil
	}
	names, err := themes.NamesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve theme names: %w", err)
	}
	return names, nil
}
