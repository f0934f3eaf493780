package usecases

import (
	"context"
	"fmt"

	"github.com/lamaran-inc/lamaran/internal/domain/asset"
	"github.com/lamaran-inc/lamaran/internal/domain/catalog"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type DeleteThemeUseCase struct {
	themeRepo catalog.ThemeRepository
	assets    asset.Store
	logger    logger.Interface
}

func NewDeleteThemeUseCase(themeRepo catalog.ThemeRepository, assets asset.Store, logger logger.Interface) *DeleteThemeUseCase {
	return &DeleteThemeUseCase{
		themeRepo: themeRepo,
		assets:    assets,
		logger:    logger,
	}
}

// Execute removes the theme with its join rows and then its stored image.
// Asset removal is best effort; the record deletion has already committed.
func (uc *DeleteThemeUseCase) Execute(ctx context.Context, id uint) error {
	theme, err := uc.themeRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to load theme", "error", err, "theme_id", id)
		return fmt.Errorf("failed to load theme: %w", err)
	}
	if theme == nil {
		return errors.NewNotFoundError("theme not found")
	}

	if err := uc.themeRepo.Delete(ctx, id); err != nil {
		if errors.IsAppError(err) {
			return err
		}
		uc.logger.Errorw("failed to delete theme", "error", err, "theme_id", id)
		return fmt.Errorf("failed to delete theme: %w", err)
	}

	if theme.HasImage() {
		if err := uc.assets.Delete(ctx, *theme.Image()); err != nil {
			uc.logger.Warnw("failed to delete theme image",
				"error", err, "url", *theme.Image())
		}
	}

	uc.logger.Infow("theme deleted", "theme_id", id)
	return nil
}
