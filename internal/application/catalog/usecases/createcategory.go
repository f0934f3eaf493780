package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/lamaran-inc/lamaran/internal/application/catalog/dto"
	"github.com/lamaran-inc/lamaran/internal/domain/catalog"
	"github.com/lamaran-inc/lamaran/internal/shared/errors"
	"github.com/lamaran-inc/lamaran/internal/shared/logger"
)

type CreateCategoryCommand struct {
	Name string
}

type CreateCategoryUseCase struct {
	categoryRepo catalog.CategoryRepository
	logger       logger.Interface
}

func NewCreateCategoryUseCase(categoryRepo catalog.CategoryRepository, logger logger.Interface) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *CreateCategoryUseCase) Execute(ctx context.Context, cmd CreateCategoryCommand) (*dto.CategoryDTO, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, errors.NewValidationError("category name is required")
	}

	exists, err := uc.categoryRepo.ExistsByName(ctx, name)
	if err != nil {
		uc.logger.Errorw("failed to check category name", "error", err, "name", name)
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}
	if exists {
		return nil, errors.NewDuplicateNameError("category name already exists")
	}

	category, err := catalog.NewCategory(name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to persist category", "error", err)
		return nil, fmt.Errorf("failed to persist category: %w", err)
	}

	uc.logger.Infow("category created", "category_id", category.ID(), "name", category.Name())
	return dto.ToCategoryDTO(category), nil
}
