package usecases

import (
	"context"
	"fmt"

	"github.com/lamaran-inc/lamaran/internal/application/catalog/dto"
	"github.com/lamaran-inc/lamaran/internal/domain/catalog"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type ListThemesUseCase struct {
	themeRepo catalog.ThemeRepository
	logger    logger.Interface
}

func NewListThemesUseCase(themeRepo catalog.ThemeRepository, logger logger.Interface) *ListThemesUseCase {
	return &ListThemesUseCase{
		themeRepo: themeRepo,
		logger:    logger,
	}
}

func (uc *ListThemesUseCase) Execute(ctx context.Context) ([]*dto.ThemeDTO, error) {
	themes, err := uc.themeRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list themes", "error", err)
		return nil, fmt.Errorf("failed to list themes: %w", err)
	}

	return dto.ToThemeDTOList(themes), nil
}
