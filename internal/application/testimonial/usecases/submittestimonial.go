package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/lamaran-inc/lamaran/internal/application/testimonial/dto"
	"github.com/lamaran-inc/lamaran/internal/domain/testimonial"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type SubmitTestimonialCommand struct {
	Name      string
	Role      string
	Email     *string
	Content   string
	Rating    int
	Event     string
	WeddingOn *time.Time
	ThemeID   *uint
}

// SubmitTestimonialUseCase is the public path: anything a visitor types is
// stripped to plain text, and the review stays hidden until an admin approves
// it unless auto-approval is switched on.
type SubmitTestimonialUseCase struct {
	testimonialRepo testimonial.Repository
	settingsRepo    testimonial.SettingsRepository
	themes          testimonial.ThemeDirectory
	sanitizer       *bluemonday.Policy
	logger          logger.Interface
}

func NewSubmitTestimonialUseCase(
	testimonialRepo testimonial.Repository,
	settingsRepo testimonial.SettingsRepository,
	themes testimonial.ThemeDirectory,
	logger logger.Interface,
) *SubmitTestimonialUseCase {
	return &SubmitTestimonialUseCase{
		testimonialRepo: testimonialRepo,
		settingsRepo:    settingsRepo,
		themes:          themes,
		sanitizer:       bluemonday.StrictPolicy(),
		logger:          logger,
	}
}

func (uc *SubmitTestimonialUseCase) Execute(ctx context.Context, cmd SubmitTestimonialCommand) (*dto.PublicTestimonialDTO, error) {
	name := strings.TrimSpace(uc.sanitizer.Sanitize(cmd.Name))
	role := strings.TrimSpace(uc.sanitizer.Sanitize(cmd.Role))
	content := strings.TrimSpace(uc.sanitizer.Sanitize(cmd.Content))
	event := strings.TrimSpace(uc.sanitizer.Sanitize(cmd.Event))

	tm, err := testimonial.NewTestimonial(name, role, content, event, cmd.Rating)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var email *string
	if cmd.Email != nil {
		clean := strings.TrimSpace(uc.sanitizer.Sanitize(*cmd.Email))
		if clean != "" {
			email = &clean
		}
	}
	tm.SetDetails(email, cmd.WeddingOn, cmd.ThemeID)

	settings, err := uc.settingsRepo.GetOrCreate(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load testimonial settings", "error", err)
		return nil, fmt.Errorf("failed to load testimonial settings: %w", err)
	}
	if settings.AutoApprove() {
		tm.Approve()
	}

	if err := uc.testimonialRepo.Create(ctx, tm); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to persist testimonial submission", "error", err)
		return nil, fmt.Errorf("failed to persist testimonial submission: %w", err)
	}

	themeNames, err := resolveThemeNames(ctx, uc.themes, tm)
	if err != nil {
		uc.logger.Errorw("failed to resolve theme reference", "error", err)
		return nil, err
	}

	uc.logger.Infow("testimonial submitted",
		"testimonial_id", tm.ID(),
		"auto_approved", tm.IsApproved())
	return dto.ToPublicTestimonialDTO(tm, themeNames), nil
}
