package usecases

import (
	"context"
	"fmt"

	"github.com/lamaran-inc/lamaran/internal/application/catalog/dto"
	"github.com/lamaran-inc/lamaran/internal/domain/catalog"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type ListCategoriesUseCase struct {
	categoryRepo catalog.CategoryRepository
	logger       logger.Interface
}

func NewListCategoriesUseCase(categoryRepo catalog.CategoryRepository, logger logger.Interface) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context) ([]*dto.CategoryDTO, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list categories", "error", err)
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return dto.ToCategoryDTOList(categories), nil
}
