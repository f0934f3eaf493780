package usecases

import (
	"context"
	"fmt"

	"github.com/lamaran-inc/lamaran/internal/application/catalog/dto"
	"github.com/lamaran-inc/lamaran/internal/domain/catalog"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type GetThemeUseCase struct {
	themeRepo catalog.ThemeRepository
	logger    logger.Interface
}

func NewGetThemeUseCase(themeRepo catalog.ThemeRepository, logger logger.Interface) *GetThemeUseCase {
	return &GetThemeUseCase{
		themeRepo: themeRepo,
		logger:    logger,
	}
}

func (uc *GetThemeUseCase) Execute(ctx context.Context, id uint) (*dto.ThemeDTO, error) {
	theme, err := uc.themeRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get theme", "error", err, "theme_id", id)
		return nil, fmt.Errorf("failed to get theme: %w", err)
	}
	if theme == nil {
		return nil, errors.NewNotFoundError("theme not found")
	}

	return dto.ToThemeDTO(theme), nil
}
